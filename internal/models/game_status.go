package models

import (
	"time"

	"github.com/google/uuid"
)

// Status is a user's per-game tracking state.
type Status string

const (
	StatusPlayed     Status = "played"
	StatusPlaying    Status = "playing"
	StatusWantToPlay Status = "want_to_play"
)

// Statuses lists every valid status value, in the order count
// summaries report them.
var Statuses = []Status{StatusPlayed, StatusPlaying, StatusWantToPlay}

// Valid reports whether s is one of the known status values.
func (s Status) Valid() bool {
	switch s {
	case StatusPlayed, StatusPlaying, StatusWantToPlay:
		return true
	}
	return false
}

// GameStatus tracks one user's state for one game. Setting a status is
// an upsert; at most one record exists per (user, game). Statuses
// delete hard so a removed status can be set again without tripping
// the unique index.
type GameStatus struct {
	ID        uint `gorm:"primaryKey"`
	CreatedAt time.Time
	UpdatedAt time.Time

	UserID uint      `gorm:"not null;uniqueIndex:idx_game_statuses_user_game"`
	GameID uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_game_statuses_user_game"`
	Status Status    `gorm:"type:varchar(20);not null"`
}
