package service

import (
	"context"
	"errors"

	"github.com/recipebox/backend/internal/models"
	"github.com/recipebox/backend/internal/types"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// FavoriteService maintains the user-recipe bookmark relation.
type FavoriteService struct {
	db *gorm.DB
}

func NewFavoriteService(db *gorm.DB) *FavoriteService {
	return &FavoriteService{db: db}
}

// Add inserts the (user, recipe) pair. The insert is idempotent: an existing
// pair is left untouched and reported as created=false.
func (s *FavoriteService) Add(ctx context.Context, userID, recipeID uint) (bool, error) {
	fav := models.Favorite{
		UserID:   userID,
		RecipeID: recipeID,
	}
	res := s.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "user_id"}, {Name: "recipe_id"}},
			DoNothing: true,
		}).
		Create(&fav)
	if res.Error != nil {
		if errors.Is(res.Error, gorm.ErrForeignKeyViolated) {
			return false, ErrRecipeNotFound
		}
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}

// Remove deletes the pair, reporting whether anything was removed.
func (s *FavoriteService) Remove(ctx context.Context, userID, recipeID uint) (bool, error) {
	res := s.db.WithContext(ctx).
		Where("user_id = ? AND recipe_id = ?", userID, recipeID).
		Delete(&models.Favorite{})
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}

// IsFavorite reports whether the user has bookmarked the recipe.
func (s *FavoriteService) IsFavorite(ctx context.Context, userID, recipeID uint) (bool, error) {
	var count int64
	err := s.db.WithContext(ctx).
		Model(&models.Favorite{}).
		Where("user_id = ? AND recipe_id = ?", userID, recipeID).
		Count(&count).Error
	return count > 0, err
}

// ListForUser returns the user's favorite recipes joined with the owner's
// display fields, most recently favorited first.
func (s *FavoriteService) ListForUser(ctx context.Context, userID uint) ([]types.RecipeView, error) {
	views := []types.RecipeView{}
	err := s.db.WithContext(ctx).
		Table("recipes").
		Select(recipeViewColumns, userID).
		Joins("JOIN favorites ON favorites.recipe_id = recipes.id").
		Joins("JOIN users ON users.id = recipes.user_id").
		Where("favorites.user_id = ?", userID).
		Order("favorites.created_at DESC, favorites.id DESC").
		Scan(&views).Error
	return views, err
}
