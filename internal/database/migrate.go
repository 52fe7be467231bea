package database

import (
	"github.com/recipebox/backend/internal/models"
	"gorm.io/gorm"
)

// AutoMigrate creates or updates the schema for all application models.
// cmd/migrate runs the equivalent SQL migrations for production databases.
func AutoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.User{},
		&models.Recipe{},
		&models.Favorite{},
	)
}
