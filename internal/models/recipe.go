package models

import (
	"time"
)

// Recipe is owned by exactly one user. Ingredients and instructions are
// newline-delimited free text; the client imposes list semantics.
type Recipe struct {
	ID           uint      `gorm:"primarykey" json:"id"`
	Title        string    `gorm:"size:255;not null" json:"title"`
	Description  string    `gorm:"type:text" json:"description"`
	Ingredients  string    `gorm:"type:text;not null" json:"ingredients"`
	Instructions string    `gorm:"type:text;not null" json:"instructions"`
	ImageURL     string    `gorm:"size:512" json:"image_url"`
	UserID       uint      `gorm:"not null;index" json:"user_id"`
	User         *User     `gorm:"constraint:OnDelete:CASCADE" json:"-"`
	CreatedAt    time.Time `json:"created_at"`
}
