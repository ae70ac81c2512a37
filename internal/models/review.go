package models

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Review is a user's rating and write-up for a game.
// A user reviews a given game at most once.
type Review struct {
	gorm.Model
	UserID uint      `gorm:"not null;uniqueIndex:idx_reviews_user_game"`
	GameID uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_reviews_user_game"`
	Rating int       `gorm:"not null"`
	Text   string    `gorm:"size:5000"`
}
