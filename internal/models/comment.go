package models

import "gorm.io/gorm"

// MaxCommentLength bounds comment text, enforced before persistence.
const MaxCommentLength = 1000

// Comment is a remark left on a list.
type Comment struct {
	gorm.Model
	ListID uint   `gorm:"not null;index"`
	UserID uint   `gorm:"not null"`
	Text   string `gorm:"size:1000;not null"`
}
