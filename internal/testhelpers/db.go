package testhelpers

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/recipebox/backend/internal/database"
	"github.com/recipebox/backend/internal/models"
)

// SetupTestDB opens an in-memory sqlite database with the full schema.
// A single connection keeps every query on the same in-memory database,
// and foreign keys are enabled so cascade rules hold.
func SetupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Silent),
		TranslateError: true,
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	sqlDB.SetMaxIdleConns(1)

	require.NoError(t, db.Exec("PRAGMA foreign_keys = ON").Error)
	require.NoError(t, database.AutoMigrate(db))

	return db
}

// CreateTestUser inserts a user whose password is "password123".
func CreateTestUser(t *testing.T, db *gorm.DB, username, email string) *models.User {
	t.Helper()

	hash, err := bcrypt.GenerateFromPassword([]byte("password123"), bcrypt.MinCost)
	require.NoError(t, err)

	user := &models.User{
		Username:     username,
		Email:        email,
		PasswordHash: string(hash),
	}
	require.NoError(t, db.Create(user).Error)
	return user
}

// CreateTestRecipe inserts a recipe owned by the given user with an
// explicit creation time so ordering assertions are deterministic.
func CreateTestRecipe(t *testing.T, db *gorm.DB, ownerID uint, title string, createdAt time.Time) *models.Recipe {
	t.Helper()

	recipe := &models.Recipe{
		Title:        title,
		Ingredients:  "1 cup flour\n2 eggs",
		Instructions: "Mix.\nBake.",
		UserID:       ownerID,
		CreatedAt:    createdAt,
	}
	require.NoError(t, db.Create(recipe).Error)
	return recipe
}
