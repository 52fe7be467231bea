package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/recipebox/backend/internal/middleware"
	"github.com/recipebox/backend/internal/models"
	"github.com/recipebox/backend/internal/service"
	"github.com/recipebox/backend/internal/types"
)

// RecipeHandler serves recipe creation and the annotated read views.
type RecipeHandler struct {
	recipes  *service.RecipeService
	uploader ImageUploader
}

func NewRecipeHandler(recipes *service.RecipeService, uploader ImageUploader) *RecipeHandler {
	return &RecipeHandler{
		recipes:  recipes,
		uploader: uploader,
	}
}

// ListRecipes returns every recipe, newest first, annotated with the
// requesting user's favorite status.
func (h *RecipeHandler) ListRecipes(c *gin.Context) {
	userID, ok := middleware.UserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "user not authenticated"})
		return
	}

	views, err := h.recipes.ListAllForUser(c.Request.Context(), userID)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, views)
}

// CreateRecipe stores a new recipe owned by the requesting user. An
// optional image file part is uploaded before the row is written.
func (h *RecipeHandler) CreateRecipe(c *gin.Context) {
	userID, ok := middleware.UserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "user not authenticated"})
		return
	}

	var req types.CreateRecipeRequest
	if err := c.ShouldBind(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	data, contentType, filename, hasImage, err := formImage(c, "image")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var imageURL string
	if hasImage {
		if h.uploader == nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "image uploads are not configured"})
			return
		}
		imageURL, err = h.uploader.Upload(c.Request.Context(), data, contentType, service.RecipeImageKey(userID, filename))
		if err != nil {
			logrus.WithError(err).Error("recipe image upload failed")
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to upload recipe image"})
			return
		}
	}

	recipe := models.Recipe{
		Title:        req.Title,
		Description:  req.Description,
		Ingredients:  req.Ingredients,
		Instructions: req.Instructions,
		ImageURL:     imageURL,
		UserID:       userID,
	}
	if err := h.recipes.Create(c.Request.Context(), &recipe); err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "recipe created successfully",
		"recipe":  recipe,
	})
}

// ListMyRecipes returns the requesting user's own recipes, newest first,
// without favorite annotation.
func (h *RecipeHandler) ListMyRecipes(c *gin.Context) {
	userID, ok := middleware.UserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "user not authenticated"})
		return
	}

	recipes, err := h.recipes.ListByOwner(c.Request.Context(), userID)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, recipes)
}

// GetRecipe returns one annotated recipe view.
func (h *RecipeHandler) GetRecipe(c *gin.Context) {
	userID, ok := middleware.UserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "user not authenticated"})
		return
	}

	recipeID, ok := recipeIDParam(c)
	if !ok {
		return
	}

	view, err := h.recipes.GetViewForUser(c.Request.Context(), recipeID, userID)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, view)
}
