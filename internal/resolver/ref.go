package resolver

import (
	"encoding/json"
	"strconv"
	"strings"

	"hitbox/backend/internal/apierr"
	"hitbox/backend/internal/models"

	"github.com/google/uuid"
)

// GameRef is a tagged identifier decided once at the API boundary:
// either the ID of a local record or a provider-qualified external
// catalog ID. Local records use UUIDs, so the two shapes never collide.
type GameRef struct {
	local      uuid.UUID
	isLocal    bool
	provider   models.Provider
	externalID int64
}

// LocalRef names an existing local game record.
func LocalRef(id uuid.UUID) GameRef {
	return GameRef{local: id, isLocal: true}
}

// ExternalRef names a game by a catalog's own numeric ID.
func ExternalRef(provider models.Provider, id int64) GameRef {
	return GameRef{provider: provider, externalID: id}
}

func (r GameRef) IsLocal() bool { return r.isLocal }

func (r GameRef) LocalID() uuid.UUID { return r.local }

func (r GameRef) External() (models.Provider, int64) { return r.provider, r.externalID }

// WithProvider re-tags an external ref to another catalog. Local refs
// are returned unchanged.
func (r GameRef) WithProvider(provider models.Provider) GameRef {
	if !r.isLocal {
		r.provider = provider
	}
	return r
}

// ParseRef interprets an identifier string: UUIDs name local records,
// plain numbers are IGDB catalog IDs.
func ParseRef(s string) (GameRef, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return GameRef{}, apierr.Validation("Game ID is required")
	}

	if id, err := uuid.Parse(s); err == nil {
		return LocalRef(id), nil
	}
	if id, err := strconv.ParseInt(s, 10, 64); err == nil && id > 0 {
		return ExternalRef(models.ProviderIGDB, id), nil
	}

	return GameRef{}, apierr.Validation("Invalid game ID")
}

// UnmarshalJSON accepts either a JSON number (external catalog ID) or
// a string holding a UUID or number, so request DTOs can take a game
// identifier in one field.
func (r *GameRef) UnmarshalJSON(data []byte) error {
	var raw interface{}
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	switch v := raw.(type) {
	case float64:
		if v <= 0 || v != float64(int64(v)) {
			return apierr.Validation("Invalid game ID")
		}
		*r = ExternalRef(models.ProviderIGDB, int64(v))
		return nil
	case string:
		ref, err := ParseRef(v)
		if err != nil {
			return err
		}
		*r = ref
		return nil
	}

	return apierr.Validation("Invalid game ID")
}
