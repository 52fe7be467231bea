package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/recipebox/backend/internal/middleware"
	"github.com/recipebox/backend/internal/service"
)

// FavoriteHandler serves the user-recipe bookmark operations.
type FavoriteHandler struct {
	favorites *service.FavoriteService
}

func NewFavoriteHandler(favorites *service.FavoriteService) *FavoriteHandler {
	return &FavoriteHandler{favorites: favorites}
}

// AddFavorite bookmarks a recipe. Favoriting an already-favorited recipe is
// reported as a client error.
func (h *FavoriteHandler) AddFavorite(c *gin.Context) {
	userID, ok := middleware.UserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "user not authenticated"})
		return
	}

	recipeID, ok := recipeIDParam(c)
	if !ok {
		return
	}

	created, err := h.favorites.Add(c.Request.Context(), userID, recipeID)
	if err != nil {
		writeError(c, err)
		return
	}
	if !created {
		writeError(c, service.ErrAlreadyFavorited)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "recipe added to favorites"})
}

// RemoveFavorite deletes the bookmark; removing a non-favorite is a client
// error and alters nothing.
func (h *FavoriteHandler) RemoveFavorite(c *gin.Context) {
	userID, ok := middleware.UserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "user not authenticated"})
		return
	}

	recipeID, ok := recipeIDParam(c)
	if !ok {
		return
	}

	removed, err := h.favorites.Remove(c.Request.Context(), userID, recipeID)
	if err != nil {
		writeError(c, err)
		return
	}
	if !removed {
		writeError(c, service.ErrNotFavorited)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "recipe removed from favorites"})
}

// CheckFavorite reports whether the requesting user has bookmarked the
// recipe.
func (h *FavoriteHandler) CheckFavorite(c *gin.Context) {
	userID, ok := middleware.UserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "user not authenticated"})
		return
	}

	recipeID, ok := recipeIDParam(c)
	if !ok {
		return
	}

	isFavorite, err := h.favorites.IsFavorite(c.Request.Context(), userID, recipeID)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"isFavorite": isFavorite})
}

// ListFavorites returns the requesting user's favorite recipes, most
// recently favorited first.
func (h *FavoriteHandler) ListFavorites(c *gin.Context) {
	userID, ok := middleware.UserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "user not authenticated"})
		return
	}

	views, err := h.favorites.ListForUser(c.Request.Context(), userID)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, views)
}
