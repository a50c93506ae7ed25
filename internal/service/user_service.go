package service

import (
	"context"
	"errors"
	"strings"
	"time"
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

// AdminPolicy decides which user names are granted admin rights
type AdminPolicy interface {
	IsAdminName(name string) bool
}

// TokenIssuer signs access tokens for logged-in users
type TokenIssuer interface {
	Issue(userID uuid.UUID, name string, isAdmin bool) (string, time.Time, error)
}

// Actor is the authenticated caller of an operation
type Actor struct {
	UserID  uuid.UUID
	IsAdmin bool
}

// UserService defines the interface for user business logic
type UserService interface {
	RegisterUser(ctx context.Context, req *dto.CreateUserRequest) (*dto.UserResponse, error)
	Login(ctx context.Context, req *dto.LoginRequest) (*dto.LoginResponse, error)
	ListUsers(ctx context.Context) ([]*dto.UserResponse, error)
	GetUser(ctx context.Context, userID uuid.UUID) (*dto.UserResponse, error)
	UpdateUser(ctx context.Context, userID uuid.UUID, actor Actor, req *dto.UpdateUserRequest) (*dto.UserResponse, error)
	DeleteUser(ctx context.Context, userID uuid.UUID) error
	GetUserStats(ctx context.Context) (*dto.UserStatsResponse, error)
	CheckAdmin(ctx context.Context, userID uuid.UUID) (*dto.CheckAdminResponse, error)
	GetUserActivity(ctx context.Context, userID uuid.UUID) (*dto.UserActivityResponse, error)
}

// userServiceImpl is the implementation of UserService
type userServiceImpl struct {
	userRepo    repository.UserRepository
	voteRepo    repository.VoteRepository
	commentRepo repository.CommentRepository
	admins      AdminPolicy
	tokens      TokenIssuer
	metrics     *metrics.Metrics
	logger      *zap.Logger
}

// NewUserService creates a new instance of UserService
func NewUserService(userRepo repository.UserRepository, voteRepo repository.VoteRepository, commentRepo repository.CommentRepository, admins AdminPolicy, tokens TokenIssuer, m *metrics.Metrics, logger *zap.Logger) UserService {
	return &userServiceImpl{
		userRepo:    userRepo,
		voteRepo:    voteRepo,
		commentRepo: commentRepo,
		admins:      admins,
		tokens:      tokens,
		metrics:     m,
		logger:      logger,
	}
}

// normalizeUserName trims the name and checks its length
func normalizeUserName(name string) (string, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return "", response.NewValidationError("Name is required", "")
	}
	if utf8.RuneCountInString(name) > domain.MaxUserNameLength {
		return "", response.NewValidationError("Name is too long", "name must be at most 50 characters")
	}
	return name, nil
}

func (s *userServiceImpl) isAdminName(name string) bool {
	return s.admins != nil && s.admins.IsAdminName(name)
}

// ensureNameAvailable fails with ALREADY_EXISTS when another user owns name
func (s *userServiceImpl) ensureNameAvailable(ctx context.Context, name string, self uuid.UUID) error {
	existing, err := s.userRepo.FindByName(ctx, name)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil
		}
		return response.NewAppError(response.ErrCodeInternal, "Failed to check user name", err.Error())
	}
	if existing != nil && existing.ID != self {
		return response.NewAlreadyExistsError("User name already exists", name)
	}
	return nil
}

func (s *userServiceImpl) findUser(ctx context.Context, userID uuid.UUID) (*domain.User, error) {
	user, err := s.userRepo.FindByID(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, response.NewNotFoundError("User not found", "")
		}
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to get user", err.Error())
	}
	return user, nil
}

// RegisterUser creates a user; admin rights come from the admin policy only
func (s *userServiceImpl) RegisterUser(ctx context.Context, req *dto.CreateUserRequest) (*dto.UserResponse, error) {
	name, err := normalizeUserName(req.Name)
	if err != nil {
		return nil, err
	}
	if err := s.ensureNameAvailable(ctx, name, uuid.Nil); err != nil {
		return nil, err
	}

	user := &domain.User{
		Name:    name,
		IsAdmin: s.isAdminName(name),
	}
	if err := s.userRepo.Create(ctx, user); err != nil {
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to create user", err.Error())
	}

	s.metrics.IncrementUserRegistered()
	s.logger.Info("User registered",
		zap.String("user_id", user.ID.String()),
		zap.Bool("is_admin", user.IsAdmin))

	return toUserResponse(user), nil
}

// Login looks the user up by name and issues an access token
func (s *userServiceImpl) Login(ctx context.Context, req *dto.LoginRequest) (*dto.LoginResponse, error) {
	name := strings.TrimSpace(req.Name)
	if name == "" {
		return nil, response.NewValidationError("Name is required", "")
	}

	user, err := s.userRepo.FindByName(ctx, name)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, response.NewNotFoundError("User not found", "해당 이름의 사용자가 존재하지 않습니다.")
		}
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to get user", err.Error())
	}

	token, expiresAt, err := s.tokens.Issue(user.ID, user.Name, user.IsAdmin)
	if err != nil {
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to issue token", err.Error())
	}

	s.logger.Info("User logged in", zap.String("user_id", user.ID.String()), zap.Bool("is_admin", user.IsAdmin))

	return &dto.LoginResponse{
		User:        *toUserResponse(user),
		IsAdmin:     user.IsAdmin,
		AccessToken: token,
		TokenType:   "Bearer",
		ExpiresAt:   expiresAt,
		Message:     user.Name + "님이 로그인했습니다.",
	}, nil
}

// ListUsers lists users ordered by name
func (s *userServiceImpl) ListUsers(ctx context.Context) ([]*dto.UserResponse, error) {
	users, err := s.userRepo.FindAll(ctx)
	if err != nil {
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to list users", err.Error())
	}

	responses := make([]*dto.UserResponse, 0, len(users))
	for _, u := range users {
		responses = append(responses, toUserResponse(u))
	}
	return responses, nil
}

// GetUser retrieves a user by ID
func (s *userServiceImpl) GetUser(ctx context.Context, userID uuid.UUID) (*dto.UserResponse, error) {
	user, err := s.findUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	return toUserResponse(user), nil
}

// UpdateUser renames a user. Only the user or an admin may do it.
// The admin flag never changes on rename, and configured admin names stay
// reserved for admin accounts.
func (s *userServiceImpl) UpdateUser(ctx context.Context, userID uuid.UUID, actor Actor, req *dto.UpdateUserRequest) (*dto.UserResponse, error) {
	if !actor.IsAdmin && actor.UserID != userID {
		return nil, response.NewForbiddenError("Cannot update another user", "본인 정보만 수정할 수 있습니다")
	}

	user, err := s.findUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		name, err := normalizeUserName(*req.Name)
		if err != nil {
			return nil, err
		}
		if name != user.Name {
			if !user.IsAdmin && s.isAdminName(name) {
				return nil, response.NewForbiddenError("Name is reserved for admins", "관리자 전용 이름입니다")
			}
			if err := s.ensureNameAvailable(ctx, name, user.ID); err != nil {
				return nil, err
			}
			user.Name = name
		}
	}

	if err := s.userRepo.Update(ctx, user); err != nil {
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to update user", err.Error())
	}
	return toUserResponse(user), nil
}

// DeleteUser deletes a regular user with their votes and comments.
// Admin users cannot be deleted.
func (s *userServiceImpl) DeleteUser(ctx context.Context, userID uuid.UUID) error {
	user, err := s.findUser(ctx, userID)
	if err != nil {
		return err
	}
	if user.IsAdmin {
		return response.NewForbiddenError("Admin users cannot be deleted", "관리자 계정은 삭제할 수 없습니다")
	}

	if err := s.userRepo.DeleteWithRelations(ctx, userID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return response.NewNotFoundError("User not found", "")
		}
		return response.NewAppError(response.ErrCodeInternal, "Failed to delete user", err.Error())
	}

	s.logger.Info("User deleted", zap.String("user_id", userID.String()))
	return nil
}

// GetUserStats counts users and lists admins
func (s *userServiceImpl) GetUserStats(ctx context.Context) (*dto.UserStatsResponse, error) {
	total, err := s.userRepo.Count(ctx)
	if err != nil {
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to count users", err.Error())
	}
	admins, err := s.userRepo.FindAdmins(ctx)
	if err != nil {
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to list admins", err.Error())
	}

	adminList := make([]dto.UserSummary, 0, len(admins))
	for _, a := range admins {
		adminList = append(adminList, toUserSummary(a))
	}
	adminCount := int64(len(admins))

	return &dto.UserStatsResponse{
		TotalUsers:   total,
		AdminUsers:   adminCount,
		RegularUsers: total - adminCount,
		AdminList:    adminList,
	}, nil
}

// CheckAdmin reports whether the user is an admin
func (s *userServiceImpl) CheckAdmin(ctx context.Context, userID uuid.UUID) (*dto.CheckAdminResponse, error) {
	user, err := s.findUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	return &dto.CheckAdminResponse{UserID: user.ID, Name: user.Name, IsAdmin: user.IsAdmin}, nil
}

// GetUserActivity summarizes the votes and comments of a user
func (s *userServiceImpl) GetUserActivity(ctx context.Context, userID uuid.UUID) (*dto.UserActivityResponse, error) {
	user, err := s.findUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	summary, err := s.voteRepo.SummaryByUser(ctx, userID)
	if err != nil {
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to summarize votes", err.Error())
	}
	commentCount, err := s.commentRepo.CountByUser(ctx, userID)
	if err != nil {
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to count comments", err.Error())
	}
	votes, err := s.voteRepo.FindAll(ctx, repository.VoteFilter{UserID: &userID})
	if err != nil {
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to list votes", err.Error())
	}

	voted := make([]dto.VotedAccommodation, 0, len(votes))
	for _, v := range votes {
		item := dto.VotedAccommodation{
			AccommodationID: v.AccommodationID,
			Rating:          v.Rating,
			VotedAt:         v.CreatedAt,
		}
		if v.Accommodation != nil {
			item.AccommodationName = v.Accommodation.Name
		}
		voted = append(voted, item)
	}

	return &dto.UserActivityResponse{
		User:                toUserSummary(user),
		VoteCount:           summary.TotalVotes,
		CommentCount:        commentCount,
		AverageRating:       util.RoundTo1(summary.AverageRating),
		VotedAccommodations: voted,
	}, nil
}
