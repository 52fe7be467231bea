package models

import (
	"time"
)

// Favorite is a user-recipe bookmark, unique per pair. The surrogate id
// carries no independent meaning.
type Favorite struct {
	ID        uint      `gorm:"primarykey" json:"id"`
	UserID    uint      `gorm:"not null;uniqueIndex:idx_favorites_user_recipe" json:"user_id"`
	RecipeID  uint      `gorm:"not null;uniqueIndex:idx_favorites_user_recipe" json:"recipe_id"`
	User      *User     `gorm:"constraint:OnDelete:CASCADE" json:"-"`
	Recipe    *Recipe   `gorm:"constraint:OnDelete:CASCADE" json:"-"`
	CreatedAt time.Time `json:"created_at"`
}

func (Favorite) TableName() string {
	return "favorites"
}
