package models

import (
	"time"

	"gorm.io/gorm"
)

// BlacklistedToken records a session token revoked by logout. Expired
// rows are harmless; the token would be rejected anyway.
type BlacklistedToken struct {
	gorm.Model
	Token     string    `gorm:"size:512;uniqueIndex;not null"`
	UserID    uint      `gorm:"not null"`
	ExpiresAt time.Time `gorm:"not null"`
}
