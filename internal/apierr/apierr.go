package apierr

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// Kind classifies a domain error for response mapping.
type Kind int

const (
	KindValidation Kind = iota
	KindNotFound
	KindUnauthorized
	KindForbidden
	KindConflict
	KindUnavailable
	KindInternal
)

// Error is a classified domain error. Message is what the client sees;
// Err carries the underlying cause for server-side logs only.
type Error struct {
	Kind    Kind
	Message string
	Err     error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

func (e *Error) Unwrap() error {
	return e.Err
}

func New(kind Kind, message string) *Error {
	return &Error{Kind: kind, Message: message}
}

func Wrap(kind Kind, message string, err error) *Error {
	return &Error{Kind: kind, Message: message, Err: err}
}

func Validation(message string) *Error   { return New(KindValidation, message) }
func NotFound(message string) *Error     { return New(KindNotFound, message) }
func Unauthorized(message string) *Error { return New(KindUnauthorized, message) }
func Forbidden(message string) *Error    { return New(KindForbidden, message) }
func Conflict(message string) *Error     { return New(KindConflict, message) }

// Unavailable marks an upstream failure. The cause is logged, never
// surfaced to the client.
func Unavailable(err error) *Error {
	return Wrap(KindUnavailable, "External catalog is currently unavailable", err)
}

func status(kind Kind) int {
	switch kind {
	case KindValidation, KindConflict:
		return http.StatusBadRequest
	case KindNotFound:
		return http.StatusNotFound
	case KindUnauthorized:
		return http.StatusUnauthorized
	case KindForbidden:
		return http.StatusForbidden
	case KindUnavailable, KindInternal:
		return http.StatusInternalServerError
	}
	return http.StatusInternalServerError
}

// Respond maps any error onto the HTTP response. Every handler funnels
// its failure paths through here so the taxonomy-to-status mapping
// lives in one place.
func Respond(c *gin.Context, err error) {
	var apiErr *Error
	if !errors.As(err, &apiErr) {
		apiErr = classify(err)
	}

	if apiErr.Err != nil || apiErr.Kind == KindInternal || apiErr.Kind == KindUnavailable {
		log.Printf("%s %s: %v", c.Request.Method, c.Request.URL.Path, err)
	}

	c.JSON(status(apiErr.Kind), gin.H{"error": apiErr.Message})
}

// classify maps unclassified errors, mainly from the data layer.
func classify(err error) *Error {
	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		return New(KindNotFound, "Record not found")
	case errors.Is(err, gorm.ErrDuplicatedKey):
		return New(KindConflict, "Record already exists")
	}
	return Wrap(KindInternal, "Internal server error", err)
}
