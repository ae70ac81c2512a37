package models

import "gorm.io/gorm"

// User represents a registered member.
type User struct {
	gorm.Model
	Username       string `gorm:"size:255;unique;not null"`
	Email          string `gorm:"size:255;unique;not null"`
	PasswordHash   string `gorm:"size:255;not null"`
	Bio            string `gorm:"size:1000"`
	ProfilePicture string `gorm:"size:512"`
}
