package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// List is a user-owned, ordered collection of games.
// List names are unique per user.
type List struct {
	gorm.Model
	UserID      uint   `gorm:"not null;uniqueIndex:idx_lists_user_name"`
	Name        string `gorm:"size:255;not null;uniqueIndex:idx_lists_user_name"`
	Description string `gorm:"size:1000"`
	IsDefault   bool   `gorm:"not null;default:false"`
}

// ListGame is one entry in a list. Position carries the insertion
// order; a game appears at most once per list. Entries delete hard so
// a removed game can be re-added without tripping the unique index.
type ListGame struct {
	ID        uint `gorm:"primaryKey"`
	CreatedAt time.Time

	ListID   uint      `gorm:"not null;uniqueIndex:idx_list_games_list_game"`
	GameID   uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_list_games_list_game"`
	Position int       `gorm:"not null"`
}
