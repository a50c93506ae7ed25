package handler

import (
	"context"

	"github.com/google/uuid"

	"travel-vote-api/internal/dto"
	"travel-vote-api/internal/service"
)

// MockUserService is a mock implementation of UserService
type MockUserService struct {
	RegisterUserFunc    func(ctx context.Context, req *dto.CreateUserRequest) (*dto.UserResponse, error)
	LoginFunc           func(ctx context.Context, req *dto.LoginRequest) (*dto.LoginResponse, error)
	ListUsersFunc       func(ctx context.Context) ([]*dto.UserResponse, error)
	GetUserFunc         func(ctx context.Context, userID uuid.UUID) (*dto.UserResponse, error)
	UpdateUserFunc      func(ctx context.Context, userID uuid.UUID, actor service.Actor, req *dto.UpdateUserRequest) (*dto.UserResponse, error)
	DeleteUserFunc      func(ctx context.Context, userID uuid.UUID) error
	GetUserStatsFunc    func(ctx context.Context) (*dto.UserStatsResponse, error)
	CheckAdminFunc      func(ctx context.Context, userID uuid.UUID) (*dto.CheckAdminResponse, error)
	GetUserActivityFunc func(ctx context.Context, userID uuid.UUID) (*dto.UserActivityResponse, error)
}

var _ service.UserService = (*MockUserService)(nil)

func (m *MockUserService) RegisterUser(ctx context.Context, req *dto.CreateUserRequest) (*dto.UserResponse, error) {
	if m.RegisterUserFunc != nil {
		return m.RegisterUserFunc(ctx, req)
	}
	return &dto.UserResponse{ID: uuid.New(), Name: req.Name}, nil
}

func (m *MockUserService) Login(ctx context.Context, req *dto.LoginRequest) (*dto.LoginResponse, error) {
	if m.LoginFunc != nil {
		return m.LoginFunc(ctx, req)
	}
	return &dto.LoginResponse{TokenType: "Bearer"}, nil
}

func (m *MockUserService) ListUsers(ctx context.Context) ([]*dto.UserResponse, error) {
	if m.ListUsersFunc != nil {
		return m.ListUsersFunc(ctx)
	}
	return []*dto.UserResponse{}, nil
}

func (m *MockUserService) GetUser(ctx context.Context, userID uuid.UUID) (*dto.UserResponse, error) {
	if m.GetUserFunc != nil {
		return m.GetUserFunc(ctx, userID)
	}
	return &dto.UserResponse{ID: userID}, nil
}

func (m *MockUserService) UpdateUser(ctx context.Context, userID uuid.UUID, actor service.Actor, req *dto.UpdateUserRequest) (*dto.UserResponse, error) {
	if m.UpdateUserFunc != nil {
		return m.UpdateUserFunc(ctx, userID, actor, req)
	}
	return &dto.UserResponse{ID: userID}, nil
}

func (m *MockUserService) DeleteUser(ctx context.Context, userID uuid.UUID) error {
	if m.DeleteUserFunc != nil {
		return m.DeleteUserFunc(ctx, userID)
	}
	return nil
}

func (m *MockUserService) GetUserStats(ctx context.Context) (*dto.UserStatsResponse, error) {
	if m.GetUserStatsFunc != nil {
		return m.GetUserStatsFunc(ctx)
	}
	return &dto.UserStatsResponse{}, nil
}

func (m *MockUserService) CheckAdmin(ctx context.Context, userID uuid.UUID) (*dto.CheckAdminResponse, error) {
	if m.CheckAdminFunc != nil {
		return m.CheckAdminFunc(ctx, userID)
	}
	return &dto.CheckAdminResponse{UserID: userID}, nil
}

func (m *MockUserService) GetUserActivity(ctx context.Context, userID uuid.UUID) (*dto.UserActivityResponse, error) {
	if m.GetUserActivityFunc != nil {
		return m.GetUserActivityFunc(ctx, userID)
	}
	return &dto.UserActivityResponse{}, nil
}

// MockAccommodationService is a mock implementation of AccommodationService
type MockAccommodationService struct {
	CreateAccommodationFunc      func(ctx context.Context, req *dto.CreateAccommodationRequest) (*dto.AccommodationResponse, error)
	ListAccommodationsFunc       func(ctx context.Context) ([]*dto.AccommodationResponse, error)
	GetAccommodationFunc         func(ctx context.Context, id uuid.UUID) (*dto.AccommodationResponse, error)
	UpdateAccommodationFunc      func(ctx context.Context, id uuid.UUID, req *dto.UpdateAccommodationRequest) (*dto.AccommodationResponse, error)
	DeleteAccommodationFunc      func(ctx context.Context, id uuid.UUID) error
	GetAccommodationStatsFunc    func(ctx context.Context) (*dto.AccommodationStatsResponse, error)
	GetPopularAccommodationsFunc func(ctx context.Context) ([]*dto.PopularAccommodationResponse, error)
	ListImagesFunc               func(ctx context.Context, id uuid.UUID) ([]*dto.ImageResponse, error)
	UploadImageFunc              func(ctx context.Context, id uuid.UUID, upload *service.ImageUpload) (*dto.ImageResponse, error)
	DeleteImageFunc              func(ctx context.Context, imageID uuid.UUID) error
}

var _ service.AccommodationService = (*MockAccommodationService)(nil)

func (m *MockAccommodationService) CreateAccommodation(ctx context.Context, req *dto.CreateAccommodationRequest) (*dto.AccommodationResponse, error) {
	if m.CreateAccommodationFunc != nil {
		return m.CreateAccommodationFunc(ctx, req)
	}
	return &dto.AccommodationResponse{ID: uuid.New(), Name: req.Name}, nil
}

func (m *MockAccommodationService) ListAccommodations(ctx context.Context) ([]*dto.AccommodationResponse, error) {
	if m.ListAccommodationsFunc != nil {
		return m.ListAccommodationsFunc(ctx)
	}
	return []*dto.AccommodationResponse{}, nil
}

func (m *MockAccommodationService) GetAccommodation(ctx context.Context, id uuid.UUID) (*dto.AccommodationResponse, error) {
	if m.GetAccommodationFunc != nil {
		return m.GetAccommodationFunc(ctx, id)
	}
	return &dto.AccommodationResponse{ID: id}, nil
}

func (m *MockAccommodationService) UpdateAccommodation(ctx context.Context, id uuid.UUID, req *dto.UpdateAccommodationRequest) (*dto.AccommodationResponse, error) {
	if m.UpdateAccommodationFunc != nil {
		return m.UpdateAccommodationFunc(ctx, id, req)
	}
	return &dto.AccommodationResponse{ID: id}, nil
}

func (m *MockAccommodationService) DeleteAccommodation(ctx context.Context, id uuid.UUID) error {
	if m.DeleteAccommodationFunc != nil {
		return m.DeleteAccommodationFunc(ctx, id)
	}
	return nil
}

func (m *MockAccommodationService) GetAccommodationStats(ctx context.Context) (*dto.AccommodationStatsResponse, error) {
	if m.GetAccommodationStatsFunc != nil {
		return m.GetAccommodationStatsFunc(ctx)
	}
	return &dto.AccommodationStatsResponse{}, nil
}

func (m *MockAccommodationService) GetPopularAccommodations(ctx context.Context) ([]*dto.PopularAccommodationResponse, error) {
	if m.GetPopularAccommodationsFunc != nil {
		return m.GetPopularAccommodationsFunc(ctx)
	}
	return []*dto.PopularAccommodationResponse{}, nil
}

func (m *MockAccommodationService) ListImages(ctx context.Context, id uuid.UUID) ([]*dto.ImageResponse, error) {
	if m.ListImagesFunc != nil {
		return m.ListImagesFunc(ctx, id)
	}
	return []*dto.ImageResponse{}, nil
}

func (m *MockAccommodationService) UploadImage(ctx context.Context, id uuid.UUID, upload *service.ImageUpload) (*dto.ImageResponse, error) {
	if m.UploadImageFunc != nil {
		return m.UploadImageFunc(ctx, id, upload)
	}
	return &dto.ImageResponse{ID: uuid.New(), AccommodationID: id}, nil
}

func (m *MockAccommodationService) DeleteImage(ctx context.Context, imageID uuid.UUID) error {
	if m.DeleteImageFunc != nil {
		return m.DeleteImageFunc(ctx, imageID)
	}
	return nil
}

// MockVoteService is a mock implementation of VoteService
type MockVoteService struct {
	CastVoteFunc                 func(ctx context.Context, req *dto.CastVoteRequest) (*dto.CastVoteResult, error)
	ListVotesFunc                func(ctx context.Context, query dto.VoteListQuery) ([]*dto.VoteResponse, error)
	ListVotesByUserFunc          func(ctx context.Context, userID uuid.UUID) ([]*dto.VoteResponse, error)
	ListVotesByAccommodationFunc func(ctx context.Context, accommodationID uuid.UUID) ([]*dto.VoteResponse, error)
	GetVoteFunc                  func(ctx context.Context, voteID uuid.UUID) (*dto.VoteResponse, error)
	UpdateVoteFunc               func(ctx context.Context, voteID uuid.UUID, req *dto.UpdateVoteRequest) (*dto.VoteResponse, error)
	DeleteVoteFunc               func(ctx context.Context, voteID uuid.UUID) error
	GetVoteStatsFunc             func(ctx context.Context) (*dto.VoteStatsResponse, error)
}

var _ service.VoteService = (*MockVoteService)(nil)

func (m *MockVoteService) CastVote(ctx context.Context, req *dto.CastVoteRequest) (*dto.CastVoteResult, error) {
	if m.CastVoteFunc != nil {
		return m.CastVoteFunc(ctx, req)
	}
	return &dto.CastVoteResult{Vote: &dto.VoteResponse{ID: uuid.New(), Rating: req.Rating}, Created: true}, nil
}

func (m *MockVoteService) ListVotes(ctx context.Context, query dto.VoteListQuery) ([]*dto.VoteResponse, error) {
	if m.ListVotesFunc != nil {
		return m.ListVotesFunc(ctx, query)
	}
	return []*dto.VoteResponse{}, nil
}

func (m *MockVoteService) ListVotesByUser(ctx context.Context, userID uuid.UUID) ([]*dto.VoteResponse, error) {
	if m.ListVotesByUserFunc != nil {
		return m.ListVotesByUserFunc(ctx, userID)
	}
	return []*dto.VoteResponse{}, nil
}

func (m *MockVoteService) ListVotesByAccommodation(ctx context.Context, accommodationID uuid.UUID) ([]*dto.VoteResponse, error) {
	if m.ListVotesByAccommodationFunc != nil {
		return m.ListVotesByAccommodationFunc(ctx, accommodationID)
	}
	return []*dto.VoteResponse{}, nil
}

func (m *MockVoteService) GetVote(ctx context.Context, voteID uuid.UUID) (*dto.VoteResponse, error) {
	if m.GetVoteFunc != nil {
		return m.GetVoteFunc(ctx, voteID)
	}
	return &dto.VoteResponse{ID: voteID}, nil
}

func (m *MockVoteService) UpdateVote(ctx context.Context, voteID uuid.UUID, req *dto.UpdateVoteRequest) (*dto.VoteResponse, error) {
	if m.UpdateVoteFunc != nil {
		return m.UpdateVoteFunc(ctx, voteID, req)
	}
	return &dto.VoteResponse{ID: voteID, Rating: req.Rating}, nil
}

func (m *MockVoteService) DeleteVote(ctx context.Context, voteID uuid.UUID) error {
	if m.DeleteVoteFunc != nil {
		return m.DeleteVoteFunc(ctx, voteID)
	}
	return nil
}

func (m *MockVoteService) GetVoteStats(ctx context.Context) (*dto.VoteStatsResponse, error) {
	if m.GetVoteStatsFunc != nil {
		return m.GetVoteStatsFunc(ctx)
	}
	return &dto.VoteStatsResponse{}, nil
}

// MockCommentService is a mock implementation of CommentService
type MockCommentService struct {
	CreateCommentFunc               func(ctx context.Context, req *dto.CreateCommentRequest) (*dto.CommentResponse, error)
	ListCommentsFunc                func(ctx context.Context, query dto.CommentListQuery) ([]*dto.CommentResponse, error)
	ListCommentsByUserFunc          func(ctx context.Context, userID uuid.UUID) ([]*dto.CommentResponse, error)
	ListCommentsByAccommodationFunc func(ctx context.Context, accommodationID uuid.UUID) ([]*dto.CommentResponse, error)
	GetCommentFunc                  func(ctx context.Context, commentID uuid.UUID) (*dto.CommentResponse, error)
	UpdateCommentFunc               func(ctx context.Context, commentID uuid.UUID, req *dto.UpdateCommentRequest) (*dto.CommentResponse, error)
	DeleteCommentFunc               func(ctx context.Context, commentID uuid.UUID, actingUserID *uuid.UUID) error
	GetCommentStatsFunc             func(ctx context.Context) (*dto.CommentStatsResponse, error)
}

var _ service.CommentService = (*MockCommentService)(nil)

func (m *MockCommentService) CreateComment(ctx context.Context, req *dto.CreateCommentRequest) (*dto.CommentResponse, error) {
	if m.CreateCommentFunc != nil {
		return m.CreateCommentFunc(ctx, req)
	}
	return &dto.CommentResponse{ID: uuid.New(), Text: req.Text}, nil
}

func (m *MockCommentService) ListComments(ctx context.Context, query dto.CommentListQuery) ([]*dto.CommentResponse, error) {
	if m.ListCommentsFunc != nil {
		return m.ListCommentsFunc(ctx, query)
	}
	return []*dto.CommentResponse{}, nil
}

func (m *MockCommentService) ListCommentsByUser(ctx context.Context, userID uuid.UUID) ([]*dto.CommentResponse, error) {
	if m.ListCommentsByUserFunc != nil {
		return m.ListCommentsByUserFunc(ctx, userID)
	}
	return []*dto.CommentResponse{}, nil
}

func (m *MockCommentService) ListCommentsByAccommodation(ctx context.Context, accommodationID uuid.UUID) ([]*dto.CommentResponse, error) {
	if m.ListCommentsByAccommodationFunc != nil {
		return m.ListCommentsByAccommodationFunc(ctx, accommodationID)
	}
	return []*dto.CommentResponse{}, nil
}

func (m *MockCommentService) GetComment(ctx context.Context, commentID uuid.UUID) (*dto.CommentResponse, error) {
	if m.GetCommentFunc != nil {
		return m.GetCommentFunc(ctx, commentID)
	}
	return &dto.CommentResponse{ID: commentID}, nil
}

func (m *MockCommentService) UpdateComment(ctx context.Context, commentID uuid.UUID, req *dto.UpdateCommentRequest) (*dto.CommentResponse, error) {
	if m.UpdateCommentFunc != nil {
		return m.UpdateCommentFunc(ctx, commentID, req)
	}
	return &dto.CommentResponse{ID: commentID, Text: req.Text}, nil
}

func (m *MockCommentService) DeleteComment(ctx context.Context, commentID uuid.UUID, actingUserID *uuid.UUID) error {
	if m.DeleteCommentFunc != nil {
		return m.DeleteCommentFunc(ctx, commentID, actingUserID)
	}
	return nil
}

func (m *MockCommentService) GetCommentStats(ctx context.Context) (*dto.CommentStatsResponse, error) {
	if m.GetCommentStatsFunc != nil {
		return m.GetCommentStatsFunc(ctx)
	}
	return &dto.CommentStatsResponse{}, nil
}
