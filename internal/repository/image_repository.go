package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"travel-vote-api/internal/domain"
)

// ImageRepository defines the interface for accommodation image data access
type ImageRepository interface {
	Create(ctx context.Context, image *domain.AccommodationImage) error
	FindByID(ctx context.Context, id uuid.UUID) (*domain.AccommodationImage, error)
	FindByAccommodationID(ctx context.Context, accommodationID uuid.UUID) ([]*domain.AccommodationImage, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

// imageRepositoryImpl is the GORM implementation of ImageRepository
type imageRepositoryImpl struct {
	db *gorm.DB
}

// NewImageRepository creates a new instance of ImageRepository
func NewImageRepository(db *gorm.DB) ImageRepository {
	return &imageRepositoryImpl{db: db}
}

// Create creates a new image row
func (r *imageRepositoryImpl) Create(ctx context.Context, image *domain.AccommodationImage) error {
	return r.db.WithContext(ctx).Create(image).Error
}

// FindByID finds an image by ID
func (r *imageRepositoryImpl) FindByID(ctx context.Context, id uuid.UUID) (*domain.AccommodationImage, error) {
	var image domain.AccommodationImage
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&image).Error; err != nil {
		return nil, err
	}
	return &image, nil
}

// FindByAccommodationID lists the images of an accommodation by (order, created_at)
func (r *imageRepositoryImpl) FindByAccommodationID(ctx context.Context, accommodationID uuid.UUID) ([]*domain.AccommodationImage, error) {
	var images []*domain.AccommodationImage
	if err := orderedImages(r.db.WithContext(ctx)).
		Where("accommodation_id = ?", accommodationID).
		Find(&images).Error; err != nil {
		return nil, err
	}
	return images, nil
}

// Delete deletes an image row
func (r *imageRepositoryImpl) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Where("id = ?", id).Delete(&domain.AccommodationImage{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
