package service

import (
	"context"
	"errors"

	"github.com/recipebox/backend/internal/models"
	"gorm.io/gorm"
)

// ProfileService reads and updates user accounts.
type ProfileService struct {
	db *gorm.DB
}

func NewProfileService(db *gorm.DB) *ProfileService {
	return &ProfileService{db: db}
}

// Get returns the user by id. The caller serializes the result; the
// credential hash is excluded by the model's json tag.
func (s *ProfileService) Get(ctx context.Context, id uint) (*models.User, error) {
	var user models.User
	if err := s.db.WithContext(ctx).First(&user, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	return &user, nil
}

// Update changes username, email and optionally the profile image URL. An
// empty imageURL keeps the stored one. Collisions with a different user id
// are rejected; the unique constraints back the pre-check against races.
func (s *ProfileService) Update(ctx context.Context, id uint, username, email, imageURL string) (*models.User, error) {
	if username == "" || email == "" {
		return nil, ErrMissingFields
	}

	var existing models.User
	err := s.db.WithContext(ctx).
		Where("(username = ? OR email = ?) AND id != ?", username, email, id).
		First(&existing).Error
	if err == nil {
		return nil, ErrDuplicateUser
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	updates := map[string]interface{}{
		"username": username,
		"email":    email,
	}
	if imageURL != "" {
		updates["profile_image_url"] = imageURL
	}

	res := s.db.WithContext(ctx).Model(&models.User{}).Where("id = ?", id).Updates(updates)
	if res.Error != nil {
		if errors.Is(res.Error, gorm.ErrDuplicatedKey) {
			return nil, ErrDuplicateUser
		}
		return nil, res.Error
	}
	if res.RowsAffected == 0 {
		return nil, ErrUserNotFound
	}

	return s.Get(ctx, id)
}
