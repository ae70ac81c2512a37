package handler

import (
	"io"
	"net/http"
	"strconv"
	"strings"
	"time"
	"unicode/utf8"

	"hitbox/backend/internal/apierr"
	"hitbox/backend/internal/database"
	"hitbox/backend/internal/hub"
	"hitbox/backend/internal/models"

	"github.com/gin-gonic/gin"
)

// region --- DTOs ---

// CommentInput defines the structure for posting a comment.
type CommentInput struct {
	Text string `json:"text" binding:"required"`
}

// CommentResponse is a comment as the API serves it.
type CommentResponse struct {
	ID        uint      `json:"id"`
	ListID    uint      `json:"list_id"`
	UserID    uint      `json:"user_id"`
	Username  string    `json:"username,omitempty"`
	Text      string    `json:"text"`
	CreatedAt time.Time `json:"created_at"`
}

func newCommentResponse(comment models.Comment, username string) CommentResponse {
	return CommentResponse{
		ID:        comment.ID,
		ListID:    comment.ListID,
		UserID:    comment.UserID,
		Username:  username,
		Text:      comment.Text,
		CreatedAt: comment.CreatedAt,
	}
}

// endregion

// region --- Handlers ---

// GetListComments godoc
// @Summary      List comments on a list
// @Description  Returns comments newest first.
// @Tags         comments
// @Produce      json
// @Param        listId path int true "List ID"
// @Success      200  {array}   CommentResponse
// @Failure      404  {object}  ErrorResponse
// @Router       /comments/list/{listId} [get]
func GetListComments(c *gin.Context) {
	listID, err := strconv.Atoi(c.Param("listId"))
	if err != nil {
		apierr.Respond(c, apierr.Validation("Invalid list ID"))
		return
	}

	var list models.List
	if err := database.DB.First(&list, listID).Error; err != nil {
		apierr.Respond(c, apierr.NotFound("List not found"))
		return
	}

	var comments []models.Comment
	if err := database.DB.Where("list_id = ?", listID).Order("created_at DESC").Find(&comments).Error; err != nil {
		apierr.Respond(c, err)
		return
	}

	response := make([]CommentResponse, 0, len(comments))
	for _, comment := range comments {
		var user models.User
		username := ""
		if err := database.DB.First(&user, comment.UserID).Error; err == nil {
			username = user.Username
		}
		response = append(response, newCommentResponse(comment, username))
	}

	c.JSON(http.StatusOK, response)
}

// CreateComment godoc
// @Summary      Comment on a list
// @Description  Posts a comment. Text must be non-empty after trimming and at most 1000 characters.
// @Tags         comments
// @Accept       json
// @Produce      json
// @Security     TokenAuth
// @Param        listId path int          true "List ID"
// @Param        input  body CommentInput true "Comment"
// @Success      201  {object}  CommentResponse
// @Failure      400  {object}  ErrorResponse
// @Failure      401  {object}  ErrorResponse
// @Failure      404  {object}  ErrorResponse
// @Router       /comments/list/{listId} [post]
func CreateComment(c *gin.Context) {
	userID := c.GetUint("userID")

	listID, err := strconv.Atoi(c.Param("listId"))
	if err != nil {
		apierr.Respond(c, apierr.Validation("Invalid list ID"))
		return
	}

	var input CommentInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	text := strings.TrimSpace(input.Text)
	if text == "" {
		apierr.Respond(c, apierr.Validation("Comment text must not be empty"))
		return
	}
	if utf8.RuneCountInString(text) > models.MaxCommentLength {
		apierr.Respond(c, apierr.Validation("Comment text must be at most 1000 characters"))
		return
	}

	var list models.List
	if err := database.DB.First(&list, listID).Error; err != nil {
		apierr.Respond(c, apierr.NotFound("List not found"))
		return
	}

	comment := models.Comment{
		ListID: uint(listID),
		UserID: userID,
		Text:   text,
	}
	if err := database.DB.Create(&comment).Error; err != nil {
		apierr.Respond(c, err)
		return
	}

	var user models.User
	username := ""
	if err := database.DB.First(&user, userID).Error; err == nil {
		username = user.Username
	}
	response := newCommentResponse(comment, username)

	hub.GlobalHub.Broadcast(uint(listID), hub.Event{
		Type:    "comment_created",
		Payload: response,
	})

	c.JSON(http.StatusCreated, response)
}

// DeleteComment godoc
// @Summary      Delete a comment
// @Description  Deletes the caller's own comment.
// @Tags         comments
// @Produce      json
// @Security     TokenAuth
// @Param        commentId path int true "Comment ID"
// @Success      200  {object}  map[string]string "{"message": "Comment deleted"}"
// @Failure      401  {object}  ErrorResponse
// @Failure      403  {object}  ErrorResponse
// @Failure      404  {object}  ErrorResponse
// @Router       /comments/{commentId} [delete]
func DeleteComment(c *gin.Context) {
	userID := c.GetUint("userID")

	commentID, err := strconv.Atoi(c.Param("commentId"))
	if err != nil {
		apierr.Respond(c, apierr.Validation("Invalid comment ID"))
		return
	}

	var comment models.Comment
	if err := database.DB.First(&comment, commentID).Error; err != nil {
		apierr.Respond(c, apierr.NotFound("Comment not found"))
		return
	}
	if comment.UserID != userID {
		apierr.Respond(c, apierr.Forbidden("You do not own this comment"))
		return
	}

	if err := database.DB.Delete(&comment).Error; err != nil {
		apierr.Respond(c, err)
		return
	}

	hub.GlobalHub.Broadcast(comment.ListID, hub.Event{
		Type:    "comment_deleted",
		Payload: gin.H{"id": comment.ID},
	})

	c.JSON(http.StatusOK, gin.H{"message": "Comment deleted"})
}

// StreamListComments godoc
// @Summary      Subscribe to a list's comment feed
// @Description  Server-sent event stream of comment_created and comment_deleted events for one list.
// @Tags         comments
// @Produce      text/event-stream
// @Param        listId path int true "List ID"
// @Success      200  {string}  string "event stream"
// @Failure      404  {object}  ErrorResponse
// @Router       /comments/list/{listId}/events [get]
func StreamListComments(c *gin.Context) {
	listID, err := strconv.Atoi(c.Param("listId"))
	if err != nil {
		apierr.Respond(c, apierr.Validation("Invalid list ID"))
		return
	}

	var list models.List
	if err := database.DB.First(&list, listID).Error; err != nil {
		apierr.Respond(c, apierr.NotFound("List not found"))
		return
	}

	client := make(hub.Client, 16)
	hub.GlobalHub.Subscribe(uint(listID), client)
	defer hub.GlobalHub.Unsubscribe(uint(listID), client)

	ctx := c.Request.Context()
	c.Stream(func(w io.Writer) bool {
		select {
		case message, ok := <-client:
			if !ok {
				return false
			}
			c.SSEvent("message", string(message))
			return true
		case <-ctx.Done():
			return false
		}
	})
}

// endregion
