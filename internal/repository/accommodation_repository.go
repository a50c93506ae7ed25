package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"travel-vote-api/internal/domain"
)

// PriceStats holds price aggregates over all accommodations
type PriceStats struct {
	Total        int64
	AveragePrice float64
	MinPrice     int64
	MaxPrice     int64
}

// AccommodationRepository defines the interface for accommodation data access
type AccommodationRepository interface {
	Create(ctx context.Context, accommodation *domain.Accommodation) error
	FindByID(ctx context.Context, id uuid.UUID) (*domain.Accommodation, error)
	FindAll(ctx context.Context) ([]*domain.Accommodation, error)
	Update(ctx context.Context, accommodation *domain.Accommodation) error
	DeleteWithRelations(ctx context.Context, id uuid.UUID) ([]string, error)
	Count(ctx context.Context) (int64, error)
	PriceStats(ctx context.Context) (*PriceStats, error)
}

// accommodationRepositoryImpl is the GORM implementation of AccommodationRepository
type accommodationRepositoryImpl struct {
	db *gorm.DB
}

// NewAccommodationRepository creates a new instance of AccommodationRepository
func NewAccommodationRepository(db *gorm.DB) AccommodationRepository {
	return &accommodationRepositoryImpl{db: db}
}

func orderedImages(db *gorm.DB) *gorm.DB {
	return db.Order("sort_order ASC, created_at ASC")
}

// Create creates a new accommodation
func (r *accommodationRepositoryImpl) Create(ctx context.Context, accommodation *domain.Accommodation) error {
	return r.db.WithContext(ctx).Omit("Images").Create(accommodation).Error
}

// FindByID finds an accommodation with its images
func (r *accommodationRepositoryImpl) FindByID(ctx context.Context, id uuid.UUID) (*domain.Accommodation, error) {
	var accommodation domain.Accommodation
	if err := r.db.WithContext(ctx).
		Preload("Images", orderedImages).
		Where("id = ?", id).
		First(&accommodation).Error; err != nil {
		return nil, err
	}
	return &accommodation, nil
}

// FindAll returns all accommodations, newest first, with their images
func (r *accommodationRepositoryImpl) FindAll(ctx context.Context) ([]*domain.Accommodation, error) {
	var accommodations []*domain.Accommodation
	if err := r.db.WithContext(ctx).
		Preload("Images", orderedImages).
		Order("created_at DESC").
		Find(&accommodations).Error; err != nil {
		return nil, err
	}
	return accommodations, nil
}

// Update saves accommodation fields (images are managed separately)
func (r *accommodationRepositoryImpl) Update(ctx context.Context, accommodation *domain.Accommodation) error {
	return r.db.WithContext(ctx).Omit("Images").Save(accommodation).Error
}

// DeleteWithRelations deletes the accommodation with its votes, comments and
// image rows in one transaction and returns the storage keys of the removed images
func (r *accommodationRepositoryImpl) DeleteWithRelations(ctx context.Context, id uuid.UUID) ([]string, error) {
	var keys []string
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&domain.AccommodationImage{}).
			Where("accommodation_id = ?", id).
			Pluck("file", &keys).Error; err != nil {
			return err
		}
		if err := tx.Where("accommodation_id = ?", id).Delete(&domain.Vote{}).Error; err != nil {
			return err
		}
		if err := tx.Where("accommodation_id = ?", id).Delete(&domain.Comment{}).Error; err != nil {
			return err
		}
		if err := tx.Where("accommodation_id = ?", id).Delete(&domain.AccommodationImage{}).Error; err != nil {
			return err
		}
		result := tx.Where("id = ?", id).Delete(&domain.Accommodation{})
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return keys, nil
}

// Count returns the number of accommodations
func (r *accommodationRepositoryImpl) Count(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&domain.Accommodation{}).Count(&count).Error
	return count, err
}

// PriceStats aggregates prices; all values are 0 when there are no accommodations
func (r *accommodationRepositoryImpl) PriceStats(ctx context.Context) (*PriceStats, error) {
	var stats PriceStats
	err := r.db.WithContext(ctx).Model(&domain.Accommodation{}).
		Select("COUNT(*) AS total, " +
			"COALESCE(AVG(price), 0) AS average_price, " +
			"COALESCE(MIN(price), 0) AS min_price, " +
			"COALESCE(MAX(price), 0) AS max_price").
		Scan(&stats).Error
	if err != nil {
		return nil, err
	}
	return &stats, nil
}
