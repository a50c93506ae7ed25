package service

import (
	"context"
	"errors"
	"math"
	"strings"
	"unicode/utf8"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"travel-vote-api/internal/domain"
	"travel-vote-api/internal/dto"
	"travel-vote-api/internal/metrics"
	"travel-vote-api/internal/repository"
	"travel-vote-api/internal/response"
	"travel-vote-api/internal/storage"
	"travel-vote-api/internal/util"
)

const (
	maxAccommodationTextLength = 200
	popularLimit               = 5
	defaultCheckIn             = "15:00"
	defaultCheckOut            = "11:00"
)

// AccommodationService defines the interface for accommodation business logic
type AccommodationService interface {
	CreateAccommodation(ctx context.Context, req *dto.CreateAccommodationRequest) (*dto.AccommodationResponse, error)
	ListAccommodations(ctx context.Context) ([]*dto.AccommodationResponse, error)
	GetAccommodation(ctx context.Context, accommodationID uuid.UUID) (*dto.AccommodationResponse, error)
	UpdateAccommodation(ctx context.Context, accommodationID uuid.UUID, req *dto.UpdateAccommodationRequest) (*dto.AccommodationResponse, error)
	DeleteAccommodation(ctx context.Context, accommodationID uuid.UUID) error
	GetAccommodationStats(ctx context.Context) (*dto.AccommodationStatsResponse, error)
	GetPopularAccommodations(ctx context.Context) ([]*dto.PopularAccommodationResponse, error)
	ListImages(ctx context.Context, accommodationID uuid.UUID) ([]*dto.ImageResponse, error)
	UploadImage(ctx context.Context, accommodationID uuid.UUID, upload *ImageUpload) (*dto.ImageResponse, error)
	DeleteImage(ctx context.Context, imageID uuid.UUID) error
}

// accommodationServiceImpl is the implementation of AccommodationService
type accommodationServiceImpl struct {
	accommodationRepo repository.AccommodationRepository
	imageRepo         repository.ImageRepository
	voteRepo          repository.VoteRepository
	files             storage.FileStorage
	maxUploadSize     int64
	metrics           *metrics.Metrics
	logger            *zap.Logger
}

// NewAccommodationService creates a new instance of AccommodationService
func NewAccommodationService(accommodationRepo repository.AccommodationRepository, imageRepo repository.ImageRepository, voteRepo repository.VoteRepository, files storage.FileStorage, maxUploadSize int64, m *metrics.Metrics, logger *zap.Logger) AccommodationService {
	if maxUploadSize <= 0 {
		maxUploadSize = DefaultMaxUploadSize
	}
	return &accommodationServiceImpl{
		accommodationRepo: accommodationRepo,
		imageRepo:         imageRepo,
		voteRepo:          voteRepo,
		files:             files,
		maxUploadSize:     maxUploadSize,
		metrics:           m,
		logger:            logger,
	}
}

func validateAccommodationText(field, value string) (string, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return "", response.NewValidationError(field+" is required", "")
	}
	if utf8.RuneCountInString(value) > maxAccommodationTextLength {
		return "", response.NewValidationError(field+" is too long", field+" must be at most 200 characters")
	}
	return value, nil
}

func validatePrice(price int64) error {
	if price < domain.MinPrice || price > domain.MaxPrice {
		return response.NewValidationError("Invalid price", "price must be between 1 and 10000000")
	}
	return nil
}

func normalizeClock(field, value, fallback string) (string, error) {
	if strings.TrimSpace(value) == "" {
		return fallback, nil
	}
	normalized, err := util.NormalizeClockTime(value)
	if err != nil {
		return "", response.NewValidationError("Invalid "+field, err.Error())
	}
	return normalized, nil
}

func (s *accommodationServiceImpl) findAccommodation(ctx context.Context, accommodationID uuid.UUID) (*domain.Accommodation, error) {
	accommodation, err := s.accommodationRepo.FindByID(ctx, accommodationID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, response.NewNotFoundError("Accommodation not found", "")
		}
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to get accommodation", err.Error())
	}
	return accommodation, nil
}

// buildResponse attaches the current rating aggregate
func (s *accommodationServiceImpl) buildResponse(ctx context.Context, accommodation *domain.Accommodation) (*dto.AccommodationResponse, error) {
	aggregates, err := s.voteRepo.AggregateByAccommodation(ctx, []uuid.UUID{accommodation.ID})
	if err != nil {
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to aggregate ratings", err.Error())
	}
	return toAccommodationResponse(accommodation, aggregates[accommodation.ID], s.files), nil
}

// CreateAccommodation validates and stores a new accommodation
func (s *accommodationServiceImpl) CreateAccommodation(ctx context.Context, req *dto.CreateAccommodationRequest) (*dto.AccommodationResponse, error) {
	name, err := validateAccommodationText("name", req.Name)
	if err != nil {
		return nil, err
	}
	location, err := validateAccommodationText("location", req.Location)
	if err != nil {
		return nil, err
	}
	if err := validatePrice(req.Price); err != nil {
		return nil, err
	}
	checkIn, err := normalizeClock("check_in", req.CheckIn, defaultCheckIn)
	if err != nil {
		return nil, err
	}
	checkOut, err := normalizeClock("check_out", req.CheckOut, defaultCheckOut)
	if err != nil {
		return nil, err
	}

	accommodation := &domain.Accommodation{
		Name:        name,
		Location:    location,
		Price:       req.Price,
		Description: strings.TrimSpace(req.Description),
		CheckIn:     checkIn,
		CheckOut:    checkOut,
	}
	if err := accommodation.SetAmenities(req.Amenities); err != nil {
		return nil, response.NewValidationError("Invalid amenities", err.Error())
	}

	if err := s.accommodationRepo.Create(ctx, accommodation); err != nil {
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to create accommodation", err.Error())
	}

	s.metrics.IncrementAccommodationCreated()
	s.logger.Info("Accommodation created",
		zap.String("accommodation_id", accommodation.ID.String()),
		zap.String("name", accommodation.Name))

	return toAccommodationResponse(accommodation, repository.RatingAggregate{}, s.files), nil
}

// ListAccommodations lists accommodations newest first with their ratings
func (s *accommodationServiceImpl) ListAccommodations(ctx context.Context) ([]*dto.AccommodationResponse, error) {
	accommodations, err := s.accommodationRepo.FindAll(ctx)
	if err != nil {
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to list accommodations", err.Error())
	}

	aggregates, err := s.voteRepo.AggregateByAccommodation(ctx, accommodationIDs(accommodations))
	if err != nil {
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to aggregate ratings", err.Error())
	}

	responses := make([]*dto.AccommodationResponse, 0, len(accommodations))
	for _, a := range accommodations {
		responses = append(responses, toAccommodationResponse(a, aggregates[a.ID], s.files))
	}
	return responses, nil
}

// GetAccommodation retrieves an accommodation with images and rating
func (s *accommodationServiceImpl) GetAccommodation(ctx context.Context, accommodationID uuid.UUID) (*dto.AccommodationResponse, error) {
	accommodation, err := s.findAccommodation(ctx, accommodationID)
	if err != nil {
		return nil, err
	}
	return s.buildResponse(ctx, accommodation)
}

// UpdateAccommodation applies the provided fields with the create validation
func (s *accommodationServiceImpl) UpdateAccommodation(ctx context.Context, accommodationID uuid.UUID, req *dto.UpdateAccommodationRequest) (*dto.AccommodationResponse, error) {
	accommodation, err := s.findAccommodation(ctx, accommodationID)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		if accommodation.Name, err = validateAccommodationText("name", *req.Name); err != nil {
			return nil, err
		}
	}
	if req.Location != nil {
		if accommodation.Location, err = validateAccommodationText("location", *req.Location); err != nil {
			return nil, err
		}
	}
	if req.Price != nil {
		if err := validatePrice(*req.Price); err != nil {
			return nil, err
		}
		accommodation.Price = *req.Price
	}
	if req.Description != nil {
		accommodation.Description = strings.TrimSpace(*req.Description)
	}
	if req.CheckIn != nil {
		if accommodation.CheckIn, err = normalizeClock("check_in", *req.CheckIn, defaultCheckIn); err != nil {
			return nil, err
		}
	}
	if req.CheckOut != nil {
		if accommodation.CheckOut, err = normalizeClock("check_out", *req.CheckOut, defaultCheckOut); err != nil {
			return nil, err
		}
	}
	if req.Amenities != nil {
		if err := accommodation.SetAmenities(*req.Amenities); err != nil {
			return nil, response.NewValidationError("Invalid amenities", err.Error())
		}
	}

	if err := s.accommodationRepo.Update(ctx, accommodation); err != nil {
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to update accommodation", err.Error())
	}
	return s.buildResponse(ctx, accommodation)
}

// DeleteAccommodation removes the accommodation with its images, votes and
// comments, then deletes the stored image files
func (s *accommodationServiceImpl) DeleteAccommodation(ctx context.Context, accommodationID uuid.UUID) error {
	keys, err := s.accommodationRepo.DeleteWithRelations(ctx, accommodationID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return response.NewNotFoundError("Accommodation not found", "")
		}
		return response.NewAppError(response.ErrCodeInternal, "Failed to delete accommodation", err.Error())
	}

	for _, key := range keys {
		s.deleteFile(ctx, key)
	}

	s.logger.Info("Accommodation deleted",
		zap.String("accommodation_id", accommodationID.String()),
		zap.Int("images_removed", len(keys)))
	return nil
}

// deleteFile removes a stored image; the row is already gone so failures are only logged
func (s *accommodationServiceImpl) deleteFile(ctx context.Context, key string) {
	if s.files == nil || key == "" {
		return
	}
	if err := s.files.Delete(ctx, key); err != nil {
		s.logger.Warn("Failed to delete image file",
			zap.String("key", key),
			zap.Error(err))
	}
}

// GetAccommodationStats returns price and rating statistics
func (s *accommodationServiceImpl) GetAccommodationStats(ctx context.Context) (*dto.AccommodationStatsResponse, error) {
	prices, err := s.accommodationRepo.PriceStats(ctx)
	if err != nil {
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to compute price statistics", err.Error())
	}
	votes, err := s.voteRepo.Summary(ctx)
	if err != nil {
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to compute vote statistics", err.Error())
	}

	return &dto.AccommodationStatsResponse{
		TotalAccommodations: prices.Total,
		AveragePrice:        int64(math.Round(prices.AveragePrice)),
		MinPrice:            prices.MinPrice,
		MaxPrice:            prices.MaxPrice,
		TotalVotes:          votes.TotalVotes,
		AverageRating:       util.RoundTo1(votes.AverageRating),
	}, nil
}

// GetPopularAccommodations returns the top voted accommodations
func (s *accommodationServiceImpl) GetPopularAccommodations(ctx context.Context) ([]*dto.PopularAccommodationResponse, error) {
	rows, err := s.voteRepo.Popular(ctx, popularLimit)
	if err != nil {
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to rank accommodations", err.Error())
	}

	result := make([]*dto.PopularAccommodationResponse, 0, len(rows))
	for _, row := range rows {
		result = append(result, &dto.PopularAccommodationResponse{
			ID:            row.ID,
			Name:          row.Name,
			Location:      row.Location,
			Price:         row.Price,
			AverageRating: util.RoundTo1(row.AverageRating),
			VoteCount:     row.VoteCount,
		})
	}
	return result, nil
}
