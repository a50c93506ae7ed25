package service

import (
	"context"
	"errors"
	"io"
	"path/filepath"
	"strings"
	"unicode/utf8"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"travel-vote-api/internal/domain"
	"travel-vote-api/internal/dto"
	"travel-vote-api/internal/response"
	"travel-vote-api/internal/storage"
)

// DefaultMaxUploadSize is the image size limit when none is configured
const DefaultMaxUploadSize int64 = 5 << 20

const maxAltTextLength = 200

var allowedImageExtensions = map[string]string{
	".jpg":  "image/jpeg",
	".jpeg": "image/jpeg",
	".png":  "image/png",
	".gif":  "image/gif",
	".webp": "image/webp",
}

// ImageUpload is an image file received for an accommodation
type ImageUpload struct {
	Filename    string
	ContentType string
	Size        int64
	Body        io.Reader
	AltText     string
	Order       int
}

func (s *accommodationServiceImpl) validateUpload(upload *ImageUpload) (string, error) {
	if upload == nil || upload.Body == nil {
		return "", response.NewValidationError("Image file is required", "")
	}
	ext := strings.ToLower(filepath.Ext(upload.Filename))
	defaultType, ok := allowedImageExtensions[ext]
	if !ok {
		return "", response.NewValidationError("Unsupported image type", "allowed: .jpg, .jpeg, .png, .gif, .webp")
	}
	if upload.Size > s.maxUploadSize {
		return "", response.NewValidationError("Image is too large", "images must be at most 5MB")
	}
	if utf8.RuneCountInString(upload.AltText) > maxAltTextLength {
		return "", response.NewValidationError("Alt text is too long", "alt_text must be at most 200 characters")
	}
	if upload.Order < 0 {
		return "", response.NewValidationError("Invalid order", "order must be zero or greater")
	}

	contentType := upload.ContentType
	if contentType == "" || contentType == "application/octet-stream" {
		contentType = defaultType
	}
	return contentType, nil
}

// ListImages lists the images of an accommodation in display order
func (s *accommodationServiceImpl) ListImages(ctx context.Context, accommodationID uuid.UUID) ([]*dto.ImageResponse, error) {
	if _, err := s.findAccommodation(ctx, accommodationID); err != nil {
		return nil, err
	}

	images, err := s.imageRepo.FindByAccommodationID(ctx, accommodationID)
	if err != nil {
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to list images", err.Error())
	}

	result := make([]*dto.ImageResponse, 0, len(images))
	for _, img := range images {
		resp := toImageResponse(img, s.files)
		result = append(result, &resp)
	}
	return result, nil
}

// UploadImage stores the file under accommodations/{id}/ and records it
func (s *accommodationServiceImpl) UploadImage(ctx context.Context, accommodationID uuid.UUID, upload *ImageUpload) (*dto.ImageResponse, error) {
	contentType, err := s.validateUpload(upload)
	if err != nil {
		return nil, err
	}
	if _, err := s.findAccommodation(ctx, accommodationID); err != nil {
		return nil, err
	}
	if s.files == nil {
		return nil, response.NewAppError(response.ErrCodeInternal, "Image storage is not configured", "")
	}

	key, err := storage.AvailableKey(ctx, s.files, storage.ImageKey(accommodationID, upload.Filename))
	if err != nil {
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to allocate image key", err.Error())
	}
	if err := s.files.Save(ctx, key, upload.Body, upload.Size, contentType); err != nil {
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to store image", err.Error())
	}

	image := &domain.AccommodationImage{
		AccommodationID: accommodationID,
		File:            key,
		AltText:         strings.TrimSpace(upload.AltText),
		Order:           upload.Order,
	}
	if err := s.imageRepo.Create(ctx, image); err != nil {
		s.deleteFile(ctx, key)
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to save image", err.Error())
	}

	s.metrics.IncrementImageUploaded()
	s.logger.Info("Image stored",
		zap.String("accommodation_id", accommodationID.String()),
		zap.String("key", key),
		zap.Int64("size", upload.Size))

	resp := toImageResponse(image, s.files)
	return &resp, nil
}

// DeleteImage removes the image row and its stored file
func (s *accommodationServiceImpl) DeleteImage(ctx context.Context, imageID uuid.UUID) error {
	image, err := s.imageRepo.FindByID(ctx, imageID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return response.NewNotFoundError("Image not found", "")
		}
		return response.NewAppError(response.ErrCodeInternal, "Failed to get image", err.Error())
	}

	if err := s.imageRepo.Delete(ctx, imageID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return response.NewNotFoundError("Image not found", "")
		}
		return response.NewAppError(response.ErrCodeInternal, "Failed to delete image", err.Error())
	}
	s.deleteFile(ctx, image.File)

	s.logger.Info("Image removed",
		zap.String("image_id", imageID.String()),
		zap.String("key", image.File))
	return nil
}
