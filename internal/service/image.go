package service

import (
	"bytes"
	"context"
	"fmt"
	"path/filepath"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/google/uuid"
	"github.com/recipebox/backend/config"
	"github.com/sirupsen/logrus"
)

// ImageService relays in-memory image buffers to S3 and hands back public
// URLs. Uploads complete before any record referencing the URL is written;
// an upload failure fails the whole request.
type ImageService struct {
	s3Config *config.S3Config
}

func NewImageService(s3Config *config.S3Config) *ImageService {
	return &ImageService{s3Config: s3Config}
}

// Upload stores the buffer under the given object key and returns its
// public URL.
func (s *ImageService) Upload(ctx context.Context, data []byte, contentType, key string) (string, error) {
	_, err := s.s3Config.Client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(s.s3Config.BucketName),
		Key:         aws.String(key),
		Body:        bytes.NewReader(data),
		ContentType: aws.String(contentType),
	})
	if err != nil {
		return "", fmt.Errorf("failed to upload to S3: %w", err)
	}

	publicURL := fmt.Sprintf("https://%s.s3.amazonaws.com/%s", s.s3Config.BucketName, key)
	logrus.WithField("url", publicURL).Info("uploaded image")
	return publicURL, nil
}

// ProfileImageKey builds a unique object key for a profile picture.
func ProfileImageKey(filename string) string {
	return fmt.Sprintf("profile-pictures/%s%s", uuid.New().String(), filepath.Ext(filename))
}

// RecipeImageKey builds a unique object key for a recipe image.
func RecipeImageKey(userID uint, filename string) string {
	return fmt.Sprintf("recipe-images/%d-%s%s", userID, uuid.New().String(), filepath.Ext(filename))
}
