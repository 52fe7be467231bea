package service

import (
	"context"
	"errors"
	"strings"

	"github.com/recipebox/backend/internal/models"
	"github.com/recipebox/backend/internal/types"
	"gorm.io/gorm"
)

// recipeViewColumns projects a recipe joined with its owner's public display
// fields plus the requesting user's favorite flag. The correlated EXISTS is
// evaluated per call so two users always see independent annotations.
const recipeViewColumns = `recipes.id, recipes.title, recipes.description,
recipes.ingredients, recipes.instructions, recipes.image_url,
recipes.user_id, recipes.created_at,
users.username AS author,
users.profile_image_url AS author_profile_image,
EXISTS(SELECT 1 FROM favorites f WHERE f.user_id = ? AND f.recipe_id = recipes.id) AS is_favorite`

// RecipeService persists recipes and composes the annotated read views.
type RecipeService struct {
	db *gorm.DB
}

func NewRecipeService(db *gorm.DB) *RecipeService {
	return &RecipeService{db: db}
}

// Create validates and stores a new recipe. The id and creation timestamp
// are assigned server-side.
func (s *RecipeService) Create(ctx context.Context, recipe *models.Recipe) error {
	if strings.TrimSpace(recipe.Title) == "" ||
		strings.TrimSpace(recipe.Ingredients) == "" ||
		strings.TrimSpace(recipe.Instructions) == "" {
		return ErrMissingFields
	}
	return s.db.WithContext(ctx).Create(recipe).Error
}

// Get returns a recipe without ownership filtering.
func (s *RecipeService) Get(ctx context.Context, id uint) (*models.Recipe, error) {
	var recipe models.Recipe
	if err := s.db.WithContext(ctx).First(&recipe, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrRecipeNotFound
		}
		return nil, err
	}
	return &recipe, nil
}

// ListByOwner returns the user's own recipes, newest first.
func (s *RecipeService) ListByOwner(ctx context.Context, ownerID uint) ([]models.Recipe, error) {
	recipes := []models.Recipe{}
	err := s.db.WithContext(ctx).
		Where("user_id = ?", ownerID).
		Order("created_at DESC, id DESC").
		Find(&recipes).Error
	return recipes, err
}

// ListAllForUser returns every recipe, newest first, annotated with the
// requesting user's favorite status and the owner's display fields.
func (s *RecipeService) ListAllForUser(ctx context.Context, requesterID uint) ([]types.RecipeView, error) {
	views := []types.RecipeView{}
	err := s.db.WithContext(ctx).
		Table("recipes").
		Select(recipeViewColumns, requesterID).
		Joins("JOIN users ON users.id = recipes.user_id").
		Order("recipes.created_at DESC, recipes.id DESC").
		Scan(&views).Error
	return views, err
}

// GetViewForUser returns one annotated recipe view or ErrRecipeNotFound.
func (s *RecipeService) GetViewForUser(ctx context.Context, recipeID, requesterID uint) (*types.RecipeView, error) {
	var view types.RecipeView
	res := s.db.WithContext(ctx).
		Table("recipes").
		Select(recipeViewColumns, requesterID).
		Joins("JOIN users ON users.id = recipes.user_id").
		Where("recipes.id = ?", recipeID).
		Scan(&view)
	if res.Error != nil {
		return nil, res.Error
	}
	if res.RowsAffected == 0 {
		return nil, ErrRecipeNotFound
	}
	return &view, nil
}
