// Package resolver turns an incoming game identifier, which may name a
// local record or a remote catalog entry, into a persisted local Game.
// Status updates, review creation and list-add all resolve through the
// same path.
package resolver

import (
	"context"
	"errors"

	"hitbox/backend/internal/apierr"
	"hitbox/backend/internal/catalog"
	"hitbox/backend/internal/database"
	"hitbox/backend/internal/models"

	"gorm.io/gorm"
)

// Resolver resolves GameRefs, reaching out to the catalogs for games
// not cached locally.
type Resolver struct {
	igdb *catalog.Client
	rawg *catalog.RAWGClient
}

func New(igdb *catalog.Client, rawg *catalog.RAWGClient) *Resolver {
	return &Resolver{igdb: igdb, rawg: rawg}
}

// Resolve returns the local game a ref names, fetching and persisting
// it from the owning catalog on first reference.
func (r *Resolver) Resolve(ctx context.Context, ref GameRef) (*models.Game, error) {
	if ref.IsLocal() {
		var game models.Game
		if err := database.DB.First(&game, "id = ?", ref.LocalID()).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, apierr.NotFound("Game not found")
			}
			return nil, err
		}
		return &game, nil
	}

	provider, externalID := ref.External()

	column := "igdb_id"
	if provider == models.ProviderRAWG {
		column = "rawg_id"
	}

	var game models.Game
	err := database.DB.Where(column+" = ?", externalID).First(&game).Error
	if err == nil {
		return &game, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	mapped, err := r.fetchRemote(ctx, provider, externalID)
	if err != nil {
		if errors.Is(err, catalog.ErrUnavailable) {
			return nil, apierr.Unavailable(err)
		}
		return nil, err
	}
	if mapped == nil {
		return nil, apierr.NotFound("Game not found")
	}

	if err := database.DB.Create(mapped).Error; err != nil {
		// A concurrent resolution of the same external ID won the
		// unique-index race; use its row.
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			if err := database.DB.Where(column+" = ?", externalID).First(&game).Error; err != nil {
				return nil, err
			}
			return &game, nil
		}
		return nil, err
	}

	return mapped, nil
}

func (r *Resolver) fetchRemote(ctx context.Context, provider models.Provider, externalID int64) (*models.Game, error) {
	switch provider {
	case models.ProviderRAWG:
		remote, err := r.rawg.GameByID(ctx, externalID)
		if err != nil || remote == nil {
			return nil, err
		}
		game := remote.ToModel()
		return &game, nil
	default:
		remote, err := r.igdb.GameByID(ctx, externalID)
		if err != nil || remote == nil {
			return nil, err
		}
		game := remote.ToModel()
		return &game, nil
	}
}
