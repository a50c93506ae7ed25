package service

import (
	"context"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"travel-vote-api/internal/domain"
	"travel-vote-api/internal/repository"
)

// MockUserRepository is a mock implementation of UserRepository
type MockUserRepository struct {
	CreateFunc              func(ctx context.Context, user *domain.User) error
	FindByIDFunc            func(ctx context.Context, id uuid.UUID) (*domain.User, error)
	FindByNameFunc          func(ctx context.Context, name string) (*domain.User, error)
	FindAllFunc             func(ctx context.Context) ([]*domain.User, error)
	FindAdminsFunc          func(ctx context.Context) ([]*domain.User, error)
	UpdateFunc              func(ctx context.Context, user *domain.User) error
	DeleteWithRelationsFunc func(ctx context.Context, id uuid.UUID) error
	CountFunc               func(ctx context.Context) (int64, error)
	CountAdminsFunc         func(ctx context.Context) (int64, error)
}

func (m *MockUserRepository) Create(ctx context.Context, user *domain.User) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, user)
	}
	if user.ID == uuid.Nil {
		user.ID = uuid.New()
	}
	return nil
}

func (m *MockUserRepository) FindByID(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	if m.FindByIDFunc != nil {
		return m.FindByIDFunc(ctx, id)
	}
	return &domain.User{BaseModel: domain.BaseModel{ID: id}, Name: "tester"}, nil
}

func (m *MockUserRepository) FindByName(ctx context.Context, name string) (*domain.User, error) {
	if m.FindByNameFunc != nil {
		return m.FindByNameFunc(ctx, name)
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *MockUserRepository) FindAll(ctx context.Context) ([]*domain.User, error) {
	if m.FindAllFunc != nil {
		return m.FindAllFunc(ctx)
	}
	return nil, nil
}

func (m *MockUserRepository) FindAdmins(ctx context.Context) ([]*domain.User, error) {
	if m.FindAdminsFunc != nil {
		return m.FindAdminsFunc(ctx)
	}
	return nil, nil
}

func (m *MockUserRepository) Update(ctx context.Context, user *domain.User) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, user)
	}
	return nil
}

func (m *MockUserRepository) DeleteWithRelations(ctx context.Context, id uuid.UUID) error {
	if m.DeleteWithRelationsFunc != nil {
		return m.DeleteWithRelationsFunc(ctx, id)
	}
	return nil
}

func (m *MockUserRepository) Count(ctx context.Context) (int64, error) {
	if m.CountFunc != nil {
		return m.CountFunc(ctx)
	}
	return 0, nil
}

func (m *MockUserRepository) CountAdmins(ctx context.Context) (int64, error) {
	if m.CountAdminsFunc != nil {
		return m.CountAdminsFunc(ctx)
	}
	return 0, nil
}

// MockAccommodationRepository is a mock implementation of AccommodationRepository
type MockAccommodationRepository struct {
	CreateFunc              func(ctx context.Context, accommodation *domain.Accommodation) error
	FindByIDFunc            func(ctx context.Context, id uuid.UUID) (*domain.Accommodation, error)
	FindAllFunc             func(ctx context.Context) ([]*domain.Accommodation, error)
	UpdateFunc              func(ctx context.Context, accommodation *domain.Accommodation) error
	DeleteWithRelationsFunc func(ctx context.Context, id uuid.UUID) ([]string, error)
	CountFunc               func(ctx context.Context) (int64, error)
	PriceStatsFunc          func(ctx context.Context) (*repository.PriceStats, error)
}

func (m *MockAccommodationRepository) Create(ctx context.Context, accommodation *domain.Accommodation) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, accommodation)
	}
	if accommodation.ID == uuid.Nil {
		accommodation.ID = uuid.New()
	}
	return nil
}

func (m *MockAccommodationRepository) FindByID(ctx context.Context, id uuid.UUID) (*domain.Accommodation, error) {
	if m.FindByIDFunc != nil {
		return m.FindByIDFunc(ctx, id)
	}
	return &domain.Accommodation{BaseModel: domain.BaseModel{ID: id}, Name: "숙소", Location: "서울", Price: 100000}, nil
}

func (m *MockAccommodationRepository) FindAll(ctx context.Context) ([]*domain.Accommodation, error) {
	if m.FindAllFunc != nil {
		return m.FindAllFunc(ctx)
	}
	return nil, nil
}

func (m *MockAccommodationRepository) Update(ctx context.Context, accommodation *domain.Accommodation) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, accommodation)
	}
	return nil
}

func (m *MockAccommodationRepository) DeleteWithRelations(ctx context.Context, id uuid.UUID) ([]string, error) {
	if m.DeleteWithRelationsFunc != nil {
		return m.DeleteWithRelationsFunc(ctx, id)
	}
	return nil, nil
}

func (m *MockAccommodationRepository) Count(ctx context.Context) (int64, error) {
	if m.CountFunc != nil {
		return m.CountFunc(ctx)
	}
	return 0, nil
}

func (m *MockAccommodationRepository) PriceStats(ctx context.Context) (*repository.PriceStats, error) {
	if m.PriceStatsFunc != nil {
		return m.PriceStatsFunc(ctx)
	}
	return &repository.PriceStats{}, nil
}

// MockImageRepository is a mock implementation of ImageRepository
type MockImageRepository struct {
	CreateFunc                func(ctx context.Context, image *domain.AccommodationImage) error
	FindByIDFunc              func(ctx context.Context, id uuid.UUID) (*domain.AccommodationImage, error)
	FindByAccommodationIDFunc func(ctx context.Context, accommodationID uuid.UUID) ([]*domain.AccommodationImage, error)
	DeleteFunc                func(ctx context.Context, id uuid.UUID) error
}

func (m *MockImageRepository) Create(ctx context.Context, image *domain.AccommodationImage) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, image)
	}
	if image.ID == uuid.Nil {
		image.ID = uuid.New()
	}
	image.CreatedAt = time.Now()
	return nil
}

func (m *MockImageRepository) FindByID(ctx context.Context, id uuid.UUID) (*domain.AccommodationImage, error) {
	if m.FindByIDFunc != nil {
		return m.FindByIDFunc(ctx, id)
	}
	return &domain.AccommodationImage{BaseModel: domain.BaseModel{ID: id}}, nil
}

func (m *MockImageRepository) FindByAccommodationID(ctx context.Context, accommodationID uuid.UUID) ([]*domain.AccommodationImage, error) {
	if m.FindByAccommodationIDFunc != nil {
		return m.FindByAccommodationIDFunc(ctx, accommodationID)
	}
	return nil, nil
}

func (m *MockImageRepository) Delete(ctx context.Context, id uuid.UUID) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, id)
	}
	return nil
}

// MockVoteRepository is a mock implementation of VoteRepository
type MockVoteRepository struct {
	UpsertFunc                   func(ctx context.Context, vote *domain.Vote) (bool, error)
	FindByIDFunc                 func(ctx context.Context, id uuid.UUID) (*domain.Vote, error)
	FindAllFunc                  func(ctx context.Context, filter repository.VoteFilter) ([]*domain.Vote, error)
	UpdateFunc                   func(ctx context.Context, vote *domain.Vote) error
	DeleteFunc                   func(ctx context.Context, id uuid.UUID) error
	AggregateByAccommodationFunc func(ctx context.Context, ids []uuid.UUID) (map[uuid.UUID]repository.RatingAggregate, error)
	PopularFunc                  func(ctx context.Context, limit int) ([]repository.PopularRow, error)
	SummaryFunc                  func(ctx context.Context) (*repository.VoteSummary, error)
	RatingDistributionFunc       func(ctx context.Context) ([]repository.RatingBucket, error)
	SummaryByUserFunc            func(ctx context.Context, userID uuid.UUID) (*repository.VoteSummary, error)
}

func (m *MockVoteRepository) Upsert(ctx context.Context, vote *domain.Vote) (bool, error) {
	if m.UpsertFunc != nil {
		return m.UpsertFunc(ctx, vote)
	}
	if vote.ID == uuid.Nil {
		vote.ID = uuid.New()
	}
	return true, nil
}

func (m *MockVoteRepository) FindByID(ctx context.Context, id uuid.UUID) (*domain.Vote, error) {
	if m.FindByIDFunc != nil {
		return m.FindByIDFunc(ctx, id)
	}
	return nil, nil
}

func (m *MockVoteRepository) FindAll(ctx context.Context, filter repository.VoteFilter) ([]*domain.Vote, error) {
	if m.FindAllFunc != nil {
		return m.FindAllFunc(ctx, filter)
	}
	return nil, nil
}

func (m *MockVoteRepository) Update(ctx context.Context, vote *domain.Vote) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, vote)
	}
	return nil
}

func (m *MockVoteRepository) Delete(ctx context.Context, id uuid.UUID) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, id)
	}
	return nil
}

func (m *MockVoteRepository) AggregateByAccommodation(ctx context.Context, ids []uuid.UUID) (map[uuid.UUID]repository.RatingAggregate, error) {
	if m.AggregateByAccommodationFunc != nil {
		return m.AggregateByAccommodationFunc(ctx, ids)
	}
	return map[uuid.UUID]repository.RatingAggregate{}, nil
}

func (m *MockVoteRepository) Popular(ctx context.Context, limit int) ([]repository.PopularRow, error) {
	if m.PopularFunc != nil {
		return m.PopularFunc(ctx, limit)
	}
	return nil, nil
}

func (m *MockVoteRepository) Summary(ctx context.Context) (*repository.VoteSummary, error) {
	if m.SummaryFunc != nil {
		return m.SummaryFunc(ctx)
	}
	return &repository.VoteSummary{}, nil
}

func (m *MockVoteRepository) RatingDistribution(ctx context.Context) ([]repository.RatingBucket, error) {
	if m.RatingDistributionFunc != nil {
		return m.RatingDistributionFunc(ctx)
	}
	return nil, nil
}

func (m *MockVoteRepository) SummaryByUser(ctx context.Context, userID uuid.UUID) (*repository.VoteSummary, error) {
	if m.SummaryByUserFunc != nil {
		return m.SummaryByUserFunc(ctx, userID)
	}
	return &repository.VoteSummary{}, nil
}

// MockCommentRepository is a mock implementation of CommentRepository
type MockCommentRepository struct {
	CreateFunc            func(ctx context.Context, comment *domain.Comment) error
	FindByIDFunc          func(ctx context.Context, id uuid.UUID) (*domain.Comment, error)
	FindAllFunc           func(ctx context.Context, filter repository.CommentFilter) ([]*domain.Comment, error)
	UpdateFunc            func(ctx context.Context, comment *domain.Comment) error
	DeleteFunc            func(ctx context.Context, id uuid.UUID) error
	CountFunc             func(ctx context.Context) (int64, error)
	CountByUserFunc       func(ctx context.Context, userID uuid.UUID) (int64, error)
	TopUsersFunc          func(ctx context.Context, limit int) ([]repository.UserCommentCountRow, error)
	TopAccommodationsFunc func(ctx context.Context, limit int) ([]repository.AccommodationCommentCountRow, error)
}

func (m *MockCommentRepository) Create(ctx context.Context, comment *domain.Comment) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, comment)
	}
	if comment.ID == uuid.Nil {
		comment.ID = uuid.New()
	}
	return nil
}

func (m *MockCommentRepository) FindByID(ctx context.Context, id uuid.UUID) (*domain.Comment, error) {
	if m.FindByIDFunc != nil {
		return m.FindByIDFunc(ctx, id)
	}
	return nil, nil
}

func (m *MockCommentRepository) FindAll(ctx context.Context, filter repository.CommentFilter) ([]*domain.Comment, error) {
	if m.FindAllFunc != nil {
		return m.FindAllFunc(ctx, filter)
	}
	return nil, nil
}

func (m *MockCommentRepository) Update(ctx context.Context, comment *domain.Comment) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, comment)
	}
	return nil
}

func (m *MockCommentRepository) Delete(ctx context.Context, id uuid.UUID) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, id)
	}
	return nil
}

func (m *MockCommentRepository) Count(ctx context.Context) (int64, error) {
	if m.CountFunc != nil {
		return m.CountFunc(ctx)
	}
	return 0, nil
}

func (m *MockCommentRepository) CountByUser(ctx context.Context, userID uuid.UUID) (int64, error) {
	if m.CountByUserFunc != nil {
		return m.CountByUserFunc(ctx, userID)
	}
	return 0, nil
}

func (m *MockCommentRepository) TopUsers(ctx context.Context, limit int) ([]repository.UserCommentCountRow, error) {
	if m.TopUsersFunc != nil {
		return m.TopUsersFunc(ctx, limit)
	}
	return nil, nil
}

func (m *MockCommentRepository) TopAccommodations(ctx context.Context, limit int) ([]repository.AccommodationCommentCountRow, error) {
	if m.TopAccommodationsFunc != nil {
		return m.TopAccommodationsFunc(ctx, limit)
	}
	return nil, nil
}

// mockAdminPolicy grants admin rights to a fixed set of names
type mockAdminPolicy map[string]bool

func (p mockAdminPolicy) IsAdminName(name string) bool {
	return p[name]
}

// MockTokenIssuer is a mock implementation of TokenIssuer
type MockTokenIssuer struct {
	IssueFunc func(userID uuid.UUID, name string, isAdmin bool) (string, time.Time, error)
}

func (m *MockTokenIssuer) Issue(userID uuid.UUID, name string, isAdmin bool) (string, time.Time, error) {
	if m.IssueFunc != nil {
		return m.IssueFunc(userID, name, isAdmin)
	}
	return "test-token", time.Now().Add(time.Hour), nil
}
