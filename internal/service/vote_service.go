package service

import (
	"context"
	"errors"
	"strconv"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"travel-vote-api/internal/domain"
	"travel-vote-api/internal/dto"
	"travel-vote-api/internal/metrics"
	"travel-vote-api/internal/repository"
	"travel-vote-api/internal/response"
	"travel-vote-api/internal/util"
)

// VoteService defines the interface for vote business logic
type VoteService interface {
	CastVote(ctx context.Context, req *dto.CastVoteRequest) (*dto.CastVoteResult, error)
	ListVotes(ctx context.Context, query dto.VoteListQuery) ([]*dto.VoteResponse, error)
	ListVotesByUser(ctx context.Context, userID uuid.UUID) ([]*dto.VoteResponse, error)
	ListVotesByAccommodation(ctx context.Context, accommodationID uuid.UUID) ([]*dto.VoteResponse, error)
	GetVote(ctx context.Context, voteID uuid.UUID) (*dto.VoteResponse, error)
	UpdateVote(ctx context.Context, voteID uuid.UUID, req *dto.UpdateVoteRequest) (*dto.VoteResponse, error)
	DeleteVote(ctx context.Context, voteID uuid.UUID) error
	GetVoteStats(ctx context.Context) (*dto.VoteStatsResponse, error)
}

// voteServiceImpl is the implementation of VoteService
type voteServiceImpl struct {
	voteRepo          repository.VoteRepository
	userRepo          repository.UserRepository
	accommodationRepo repository.AccommodationRepository
	metrics           *metrics.Metrics
	logger            *zap.Logger
}

// NewVoteService creates a new instance of VoteService
func NewVoteService(voteRepo repository.VoteRepository, userRepo repository.UserRepository, accommodationRepo repository.AccommodationRepository, m *metrics.Metrics, logger *zap.Logger) VoteService {
	return &voteServiceImpl{
		voteRepo:          voteRepo,
		userRepo:          userRepo,
		accommodationRepo: accommodationRepo,
		metrics:           m,
		logger:            logger,
	}
}

func validateRating(rating int) error {
	if !domain.IsValidRating(rating) {
		return response.NewValidationError("Invalid rating", "rating must be between 1 and 10")
	}
	return nil
}

// ensureUser and ensureAccommodation are shared with the comment service
func ensureUser(ctx context.Context, repo repository.UserRepository, userID uuid.UUID) (*domain.User, error) {
	user, err := repo.FindByID(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, response.NewNotFoundError("User not found", "")
		}
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to get user", err.Error())
	}
	return user, nil
}

func ensureAccommodation(ctx context.Context, repo repository.AccommodationRepository, accommodationID uuid.UUID) (*domain.Accommodation, error) {
	accommodation, err := repo.FindByID(ctx, accommodationID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, response.NewNotFoundError("Accommodation not found", "")
		}
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to get accommodation", err.Error())
	}
	return accommodation, nil
}

func (s *voteServiceImpl) findVote(ctx context.Context, voteID uuid.UUID) (*domain.Vote, error) {
	vote, err := s.voteRepo.FindByID(ctx, voteID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, response.NewNotFoundError("Vote not found", "")
		}
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to get vote", err.Error())
	}
	return vote, nil
}

// CastVote records the rating of a user for an accommodation. A second
// submission for the same pair overwrites the earlier rating.
func (s *voteServiceImpl) CastVote(ctx context.Context, req *dto.CastVoteRequest) (*dto.CastVoteResult, error) {
	if err := validateRating(req.Rating); err != nil {
		return nil, err
	}
	if _, err := ensureUser(ctx, s.userRepo, req.UserID); err != nil {
		return nil, err
	}
	if _, err := ensureAccommodation(ctx, s.accommodationRepo, req.AccommodationID); err != nil {
		return nil, err
	}

	vote := &domain.Vote{
		UserID:          req.UserID,
		AccommodationID: req.AccommodationID,
		Rating:          req.Rating,
	}
	created, err := s.voteRepo.Upsert(ctx, vote)
	if err != nil {
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to save vote", err.Error())
	}

	s.metrics.IncrementVoteCast(created)
	s.logger.Info("Vote cast",
		zap.String("vote_id", vote.ID.String()),
		zap.String("user_id", vote.UserID.String()),
		zap.String("accommodation_id", vote.AccommodationID.String()),
		zap.Int("rating", vote.Rating),
		zap.Bool("created", created))

	return &dto.CastVoteResult{Vote: toVoteResponse(vote), Created: created}, nil
}

// ListVotes lists votes matching the query, newest first
func (s *voteServiceImpl) ListVotes(ctx context.Context, query dto.VoteListQuery) ([]*dto.VoteResponse, error) {
	votes, err := s.voteRepo.FindAll(ctx, repository.VoteFilter{
		UserID:          query.UserID,
		AccommodationID: query.AccommodationID,
		MinRating:       query.MinRating,
		MaxRating:       query.MaxRating,
	})
	if err != nil {
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to list votes", err.Error())
	}
	return toVoteResponses(votes), nil
}

// ListVotesByUser lists the votes of an existing user
func (s *voteServiceImpl) ListVotesByUser(ctx context.Context, userID uuid.UUID) ([]*dto.VoteResponse, error) {
	if _, err := ensureUser(ctx, s.userRepo, userID); err != nil {
		return nil, err
	}
	return s.ListVotes(ctx, dto.VoteListQuery{UserID: &userID})
}

// ListVotesByAccommodation lists the votes of an existing accommodation
func (s *voteServiceImpl) ListVotesByAccommodation(ctx context.Context, accommodationID uuid.UUID) ([]*dto.VoteResponse, error) {
	if _, err := ensureAccommodation(ctx, s.accommodationRepo, accommodationID); err != nil {
		return nil, err
	}
	return s.ListVotes(ctx, dto.VoteListQuery{AccommodationID: &accommodationID})
}

// GetVote retrieves a vote by ID
func (s *voteServiceImpl) GetVote(ctx context.Context, voteID uuid.UUID) (*dto.VoteResponse, error) {
	vote, err := s.findVote(ctx, voteID)
	if err != nil {
		return nil, err
	}
	return toVoteResponse(vote), nil
}

// UpdateVote changes the rating of a vote
func (s *voteServiceImpl) UpdateVote(ctx context.Context, voteID uuid.UUID, req *dto.UpdateVoteRequest) (*dto.VoteResponse, error) {
	if err := validateRating(req.Rating); err != nil {
		return nil, err
	}
	vote, err := s.findVote(ctx, voteID)
	if err != nil {
		return nil, err
	}

	vote.Rating = req.Rating
	if err := s.voteRepo.Update(ctx, vote); err != nil {
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to update vote", err.Error())
	}

	s.logger.Info("Vote updated", zap.String("vote_id", voteID.String()), zap.Int("rating", vote.Rating))
	return toVoteResponse(vote), nil
}

// DeleteVote deletes a vote
func (s *voteServiceImpl) DeleteVote(ctx context.Context, voteID uuid.UUID) error {
	if err := s.voteRepo.Delete(ctx, voteID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return response.NewNotFoundError("Vote not found", "")
		}
		return response.NewAppError(response.ErrCodeInternal, "Failed to delete vote", err.Error())
	}
	s.logger.Info("Vote deleted", zap.String("vote_id", voteID.String()))
	return nil
}

// GetVoteStats returns global vote statistics. The distribution always has
// keys "1" to "10".
func (s *voteServiceImpl) GetVoteStats(ctx context.Context) (*dto.VoteStatsResponse, error) {
	summary, err := s.voteRepo.Summary(ctx)
	if err != nil {
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to summarize votes", err.Error())
	}
	buckets, err := s.voteRepo.RatingDistribution(ctx)
	if err != nil {
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to compute rating distribution", err.Error())
	}
	totalUsers, err := s.userRepo.Count(ctx)
	if err != nil {
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to count users", err.Error())
	}

	distribution := make(map[string]int64, domain.MaxRating)
	for r := domain.MinRating; r <= domain.MaxRating; r++ {
		distribution[strconv.Itoa(r)] = 0
	}
	for _, b := range buckets {
		if domain.IsValidRating(b.Rating) {
			distribution[strconv.Itoa(b.Rating)] = b.Count
		}
	}

	return &dto.VoteStatsResponse{
		TotalVotes:         summary.TotalVotes,
		AverageRating:      util.RoundTo1(summary.AverageRating),
		RatingDistribution: distribution,
		ParticipationRate:  participationRate(summary.VotedUsers, totalUsers),
		VotedUsers:         summary.VotedUsers,
		TotalUsers:         totalUsers,
	}, nil
}

// participationRate is the percentage of users who voted, 0 without users
func participationRate(votedUsers, totalUsers int64) float64 {
	if totalUsers <= 0 {
		return 0
	}
	return util.RoundTo1(float64(votedUsers) / float64(totalUsers) * 100)
}
