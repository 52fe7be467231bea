package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/recipebox/backend/internal/middleware"
	"github.com/recipebox/backend/internal/service"
	"github.com/recipebox/backend/internal/types"
)

// AuthHandler serves registration, login and token verification.
type AuthHandler struct {
	auth     *service.AuthService
	uploader ImageUploader
}

func NewAuthHandler(auth *service.AuthService, uploader ImageUploader) *AuthHandler {
	return &AuthHandler{
		auth:     auth,
		uploader: uploader,
	}
}

// Register creates an account. An optional profile_image file part is
// uploaded before the user row is written; an upload failure fails the
// whole request.
func (h *AuthHandler) Register(c *gin.Context) {
	var req types.RegisterRequest
	if err := c.ShouldBind(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	data, contentType, filename, hasImage, err := formImage(c, "profile_image")
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
		imageURL, err = h.uploader.Upload(c.Request.Context(), data, contentType, service.ProfileImageKey(filename))
		if err != nil {
			logrus.WithError(err).Error("profile image upload failed")
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to upload profile image"})
			return
		}
	}

	user, err := h.auth.Register(c.Request.Context(), req.Username, req.Email, req.Password, req.ConfirmPassword, imageURL)
	if err != nil {
		writeError(c, err)
		return
	}

	token, err := h.auth.GenerateToken(user)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "user created successfully",
		"token":   token,
		"user":    user,
	})
}

// Login verifies credentials and issues a session token.
func (h *AuthHandler) Login(c *gin.Context) {
	var req types.LoginRequest
	if err := c.ShouldBind(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	user, err := h.auth.Login(c.Request.Context(), req.Username, req.Password)
	if err != nil {
		writeError(c, err)
		return
	}

	token, err := h.auth.GenerateToken(user)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "login successful",
		"token":   token,
		"user":    user,
	})
}

// VerifyToken echoes the decoded claims of a valid token.
func (h *AuthHandler) VerifyToken(c *gin.Context) {
	userID, _ := middleware.UserID(c)
	username := c.GetString("username")

	c.JSON(http.StatusOK, gin.H{
		"message": "token is valid",
		"user": gin.H{
			"id":       userID,
			"username": username,
		},
	})
}
