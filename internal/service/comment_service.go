package service

import (
	"context"
	"errors"
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
	"travel-vote-api/internal/util"
)

const rankingLimit = 5

// CommentService defines the interface for comment business logic
type CommentService interface {
	CreateComment(ctx context.Context, req *dto.CreateCommentRequest) (*dto.CommentResponse, error)
	ListComments(ctx context.Context, query dto.CommentListQuery) ([]*dto.CommentResponse, error)
	ListCommentsByUser(ctx context.Context, userID uuid.UUID) ([]*dto.CommentResponse, error)
	ListCommentsByAccommodation(ctx context.Context, accommodationID uuid.UUID) ([]*dto.CommentResponse, error)
	GetComment(ctx context.Context, commentID uuid.UUID) (*dto.CommentResponse, error)
	UpdateComment(ctx context.Context, commentID uuid.UUID, req *dto.UpdateCommentRequest) (*dto.CommentResponse, error)
	DeleteComment(ctx context.Context, commentID uuid.UUID, actingUserID *uuid.UUID) error
	GetCommentStats(ctx context.Context) (*dto.CommentStatsResponse, error)
}

// commentServiceImpl is the implementation of CommentService
type commentServiceImpl struct {
	commentRepo       repository.CommentRepository
	userRepo          repository.UserRepository
	accommodationRepo repository.AccommodationRepository
	metrics           *metrics.Metrics
	logger            *zap.Logger
}

// NewCommentService creates a new instance of CommentService
func NewCommentService(commentRepo repository.CommentRepository, userRepo repository.UserRepository, accommodationRepo repository.AccommodationRepository, m *metrics.Metrics, logger *zap.Logger) CommentService {
	return &commentServiceImpl{
		commentRepo:       commentRepo,
		userRepo:          userRepo,
		accommodationRepo: accommodationRepo,
		metrics:           m,
		logger:            logger,
	}
}

// normalizeCommentText trims text and enforces the 500 character limit
func normalizeCommentText(text string) (string, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return "", response.NewValidationError("Comment text is required", "")
	}
	if utf8.RuneCountInString(text) > domain.MaxCommentLength {
		return "", response.NewValidationError("Comment is too long", "text must be at most 500 characters")
	}
	return text, nil
}

func (s *commentServiceImpl) findComment(ctx context.Context, commentID uuid.UUID) (*domain.Comment, error) {
	comment, err := s.commentRepo.FindByID(ctx, commentID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, response.NewNotFoundError("Comment not found", "")
		}
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to get comment", err.Error())
	}
	return comment, nil
}

// CreateComment adds a comment by an existing user on an existing accommodation
func (s *commentServiceImpl) CreateComment(ctx context.Context, req *dto.CreateCommentRequest) (*dto.CommentResponse, error) {
	text, err := normalizeCommentText(req.Text)
	if err != nil {
		return nil, err
	}
	user, err := ensureUser(ctx, s.userRepo, req.UserID)
	if err != nil {
		return nil, err
	}
	accommodation, err := ensureAccommodation(ctx, s.accommodationRepo, req.AccommodationID)
	if err != nil {
		return nil, err
	}

	comment := &domain.Comment{
		UserID:          req.UserID,
		AccommodationID: req.AccommodationID,
		Text:            text,
	}
	if err := s.commentRepo.Create(ctx, comment); err != nil {
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to create comment", err.Error())
	}

	s.metrics.IncrementCommentCreated()
	s.logger.Info("Comment created",
		zap.String("comment_id", comment.ID.String()),
		zap.String("user_id", comment.UserID.String()),
		zap.String("accommodation_id", comment.AccommodationID.String()))

	comment.User = user
	comment.Accommodation = accommodation
	return toCommentResponse(comment), nil
}

// ListComments lists comments matching the query, newest first
func (s *commentServiceImpl) ListComments(ctx context.Context, query dto.CommentListQuery) ([]*dto.CommentResponse, error) {
	comments, err := s.commentRepo.FindAll(ctx, repository.CommentFilter{
		UserID:          query.UserID,
		AccommodationID: query.AccommodationID,
		Search:          query.Search,
	})
	if err != nil {
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to list comments", err.Error())
	}
	return toCommentResponses(comments), nil
}

// ListCommentsByUser lists the comments of an existing user
func (s *commentServiceImpl) ListCommentsByUser(ctx context.Context, userID uuid.UUID) ([]*dto.CommentResponse, error) {
	if _, err := ensureUser(ctx, s.userRepo, userID); err != nil {
		return nil, err
	}
	return s.ListComments(ctx, dto.CommentListQuery{UserID: &userID})
}

// ListCommentsByAccommodation lists the comments of an existing accommodation
func (s *commentServiceImpl) ListCommentsByAccommodation(ctx context.Context, accommodationID uuid.UUID) ([]*dto.CommentResponse, error) {
	if _, err := ensureAccommodation(ctx, s.accommodationRepo, accommodationID); err != nil {
		return nil, err
	}
	return s.ListComments(ctx, dto.CommentListQuery{AccommodationID: &accommodationID})
}

// GetComment retrieves a comment by ID
func (s *commentServiceImpl) GetComment(ctx context.Context, commentID uuid.UUID) (*dto.CommentResponse, error) {
	comment, err := s.findComment(ctx, commentID)
	if err != nil {
		return nil, err
	}
	return toCommentResponse(comment), nil
}

// UpdateComment edits the text; only the comment owner may do so
func (s *commentServiceImpl) UpdateComment(ctx context.Context, commentID uuid.UUID, req *dto.UpdateCommentRequest) (*dto.CommentResponse, error) {
	text, err := normalizeCommentText(req.Text)
	if err != nil {
		return nil, err
	}
	comment, err := s.findComment(ctx, commentID)
	if err != nil {
		return nil, err
	}
	if comment.UserID != req.UserID {
		return nil, response.NewForbiddenError("You can only edit your own comments", "본인이 작성한 댓글만 수정할 수 있습니다")
	}

	comment.Text = text
	if err := s.commentRepo.Update(ctx, comment); err != nil {
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to update comment", err.Error())
	}
	return toCommentResponse(comment), nil
}

// DeleteComment deletes a comment. When actingUserID is given it must be the owner.
func (s *commentServiceImpl) DeleteComment(ctx context.Context, commentID uuid.UUID, actingUserID *uuid.UUID) error {
	comment, err := s.findComment(ctx, commentID)
	if err != nil {
		return err
	}
	if actingUserID != nil && comment.UserID != *actingUserID {
		return response.NewForbiddenError("You can only delete your own comments", "본인이 작성한 댓글만 삭제할 수 있습니다")
	}

	if err := s.commentRepo.Delete(ctx, commentID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return response.NewNotFoundError("Comment not found", "")
		}
		return response.NewAppError(response.ErrCodeInternal, "Failed to delete comment", err.Error())
	}

	s.logger.Info("Comment deleted", zap.String("comment_id", commentID.String()))
	return nil
}

// GetCommentStats returns comment totals and the top 5 rankings
func (s *commentServiceImpl) GetCommentStats(ctx context.Context) (*dto.CommentStatsResponse, error) {
	total, err := s.commentRepo.Count(ctx)
	if err != nil {
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to count comments", err.Error())
	}
	accommodations, err := s.accommodationRepo.Count(ctx)
	if err != nil {
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to count accommodations", err.Error())
	}
	topUsers, err := s.commentRepo.TopUsers(ctx, rankingLimit)
	if err != nil {
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to rank users", err.Error())
	}
	topAccommodations, err := s.commentRepo.TopAccommodations(ctx, rankingLimit)
	if err != nil {
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to rank accommodations", err.Error())
	}

	users := make([]dto.UserCommentCount, 0, len(topUsers))
	for _, row := range topUsers {
		users = append(users, dto.UserCommentCount{UserID: row.UserID, Name: row.Name, CommentCount: row.CommentCount})
	}
	ranked := make([]dto.AccommodationCommentCount, 0, len(topAccommodations))
	for _, row := range topAccommodations {
		ranked = append(ranked, dto.AccommodationCommentCount{AccommodationID: row.AccommodationID, Name: row.Name, CommentCount: row.CommentCount})
	}

	var average float64
	if accommodations > 0 {
		average = util.RoundTo1(float64(total) / float64(accommodations))
	}

	return &dto.CommentStatsResponse{
		TotalComments:                   total,
		AverageCommentsPerAccommodation: average,
		MostActiveUsers:                 users,
		MostCommentedAccommodations:     ranked,
	}, nil
}
