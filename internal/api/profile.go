package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/recipebox/backend/internal/middleware"
	"github.com/recipebox/backend/internal/service"
	"github.com/recipebox/backend/internal/types"
)

// ProfileHandler serves the authenticated user's profile.
type ProfileHandler struct {
	profiles *service.ProfileService
	uploader ImageUploader
}

func NewProfileHandler(profiles *service.ProfileService, uploader ImageUploader) *ProfileHandler {
	return &ProfileHandler{
		profiles: profiles,
		uploader: uploader,
	}
}

// GetProfile returns the requesting user. 404 covers an account deleted
// after the token was issued.
func (h *ProfileHandler) GetProfile(c *gin.Context) {
	userID, ok := middleware.UserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "user not authenticated"})
		return
	}

	user, err := h.profiles.Get(c.Request.Context(), userID)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, user)
}

// UpdateProfile changes username, email and optionally the profile image.
// A new image is uploaded before the row is updated; without one the stored
// URL is kept.
func (h *ProfileHandler) UpdateProfile(c *gin.Context) {
	userID, ok := middleware.UserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "user not authenticated"})
		return
	}

	var req types.UpdateProfileRequest
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

	user, err := h.profiles.Update(c.Request.Context(), userID, req.Username, req.Email, imageURL)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "profile updated successfully",
		"user":    user,
	})
}
