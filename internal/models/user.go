package models

import (
	"time"
)

// User is an account holder. PasswordHash is never serialized.
type User struct {
	ID              uint      `gorm:"primarykey" json:"id"`
	Username        string    `gorm:"size:50;uniqueIndex;not null" json:"username"`
	Email           string    `gorm:"size:255;uniqueIndex;not null" json:"email"`
	PasswordHash    string    `gorm:"not null" json:"-"`
	ProfileImageURL string    `gorm:"size:512" json:"profile_image"`
	CreatedAt       time.Time `json:"created_at"`
}
