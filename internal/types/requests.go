package types

import (
	"time"
)

// RegisterRequest is the body of POST /api/register. An optional
// profile_image file part accompanies the form fields.
type RegisterRequest struct {
	Username        string `json:"username" form:"username"`
	Email           string `json:"email" form:"email"`
	Password        string `json:"password" form:"password"`
	ConfirmPassword string `json:"confirmPassword" form:"confirmPassword"`
}

// LoginRequest is the body of POST /api/login.
type LoginRequest struct {
	Username string `json:"username" form:"username"`
	Password string `json:"password" form:"password"`
}

// UpdateProfileRequest is the body of PUT /api/profile. An optional
// profile_image file part replaces the stored image URL.
type UpdateProfileRequest struct {
	Username string `json:"username" form:"username"`
	Email    string `json:"email" form:"email"`
}

// CreateRecipeRequest is the body of POST /api/recipes. An optional image
// file part accompanies the form fields.
type CreateRecipeRequest struct {
	Title        string `json:"title" form:"title"`
	Description  string `json:"description" form:"description"`
	Ingredients  string `json:"ingredients" form:"ingredients"`
	Instructions string `json:"instructions" form:"instructions"`
}

// RecipeView is a recipe annotated with the requesting user's favorite
// status and the owner's public display fields. The owner's email and
// credential hash are never part of this projection.
type RecipeView struct {
	ID                 uint      `json:"id"`
	Title              string    `json:"title"`
	Description        string    `json:"description"`
	Ingredients        string    `json:"ingredients"`
	Instructions       string    `json:"instructions"`
	ImageURL           string    `json:"image_url"`
	UserID             uint      `json:"user_id"`
	CreatedAt          time.Time `json:"created_at"`
	Author             string    `json:"author"`
	AuthorProfileImage string    `json:"author_profile_image"`
	IsFavorite         bool      `json:"is_favorite"`
}
