package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Provider identifies an external game catalog.
type Provider string

const (
	ProviderIGDB Provider = "igdb"
	ProviderRAWG Provider = "rawg"
)

// Game is a locally cached game record. Games are created lazily the
// first time a review, list entry or status references them; browse
// results served straight from the catalog are never persisted.
type Game struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	CreatedAt time.Time
	UpdatedAt time.Time

	Title         string `gorm:"size:512;not null"`
	Description   string
	CoverURL      string `gorm:"size:512"`
	ReleaseDate   *time.Time
	Genres        []string `gorm:"serializer:json"`
	Platforms     []string `gorm:"serializer:json"`
	Developer     string   `gorm:"size:255"`
	Publisher     string   `gorm:"size:255"`
	AverageRating float64  `gorm:"not null;default:0"`

	// External catalog IDs, unique when set so concurrent first
	// resolutions of the same remote game collapse to one row.
	IGDBID *int64 `gorm:"uniqueIndex"`
	RAWGID *int64 `gorm:"uniqueIndex"`
}

// BeforeCreate assigns the record ID. UUIDs keep local identifiers
// distinguishable from the catalogs' numeric ID schemes.
func (g *Game) BeforeCreate(tx *gorm.DB) error {
	if g.ID == uuid.Nil {
		g.ID = uuid.New()
	}
	return nil
}
