package service

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"travel-vote-api/internal/domain"
	"travel-vote-api/internal/dto"
	"travel-vote-api/internal/repository"
	"travel-vote-api/internal/response"
)

func TestVoteService_CastVote(t *testing.T) {
	userID := uuid.New()
	accommodationID := uuid.New()

	tests := []struct {
		name        string
		rating      int
		mockUser    func(*MockUserRepository)
		mockAcc     func(*MockAccommodationRepository)
		mockVote    func(*MockVoteRepository)
		wantErrCode string
		wantCreated bool
	}{
		{name: "성공: 최소 평점 1", rating: 1, wantCreated: true},
		{name: "성공: 최대 평점 10", rating: 10, wantCreated: true},
		{
			name:   "성공: 기존 투표 덮어쓰기",
			rating: 5,
			mockVote: func(m *MockVoteRepository) {
				m.UpsertFunc = func(ctx context.Context, vote *domain.Vote) (bool, error) {
					vote.ID = uuid.New()
					return false, nil
				}
			},
			wantCreated: false,
		},
		{name: "실패: 평점 0", rating: 0, wantErrCode: response.ErrCodeValidation},
		{name: "실패: 평점 11", rating: 11, wantErrCode: response.ErrCodeValidation},
		{
			name:   "실패: 없는 사용자",
			rating: 5,
			mockUser: func(m *MockUserRepository) {
				m.FindByIDFunc = func(ctx context.Context, id uuid.UUID) (*domain.User, error) {
					return nil, gorm.ErrRecordNotFound
				}
			},
			wantErrCode: response.ErrCodeNotFound,
		},
		{
			name:   "실패: 없는 숙소",
			rating: 5,
			mockAcc: func(m *MockAccommodationRepository) {
				m.FindByIDFunc = func(ctx context.Context, id uuid.UUID) (*domain.Accommodation, error) {
					return nil, gorm.ErrRecordNotFound
				}
			},
			wantErrCode: response.ErrCodeNotFound,
		},
		{
			name:   "실패: 저장 오류",
			rating: 5,
			mockVote: func(m *MockVoteRepository) {
				m.UpsertFunc = func(ctx context.Context, vote *domain.Vote) (bool, error) {
					return false, errors.New("constraint")
				}
			},
			wantErrCode: response.ErrCodeInternal,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			userRepo := &MockUserRepository{}
			accRepo := &MockAccommodationRepository{}
			voteRepo := &MockVoteRepository{}
			if tt.mockUser != nil {
				tt.mockUser(userRepo)
			}
			if tt.mockAcc != nil {
				tt.mockAcc(accRepo)
			}
			if tt.mockVote != nil {
				tt.mockVote(voteRepo)
			}
			svc := NewVoteService(voteRepo, userRepo, accRepo, nil, zap.NewNop())

			got, err := svc.CastVote(context.Background(), &dto.CastVoteRequest{
				UserID:          userID,
				AccommodationID: accommodationID,
				Rating:          tt.rating,
			})
			if tt.wantErrCode != "" {
				assertAppErrorCode(t, err, tt.wantErrCode)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantCreated, got.Created)
			assert.Equal(t, tt.rating, got.Vote.Rating)
			assert.Equal(t, userID, got.Vote.UserID)
		})
	}
}

func TestVoteService_GetVoteStats(t *testing.T) {
	voteRepo := &MockVoteRepository{
		SummaryFunc: func(ctx context.Context) (*repository.VoteSummary, error) {
			return &repository.VoteSummary{TotalVotes: 4, AverageRating: 6.25, VotedUsers: 2}, nil
		},
		RatingDistributionFunc: func(ctx context.Context) ([]repository.RatingBucket, error) {
			return []repository.RatingBucket{{Rating: 3, Count: 1}, {Rating: 8, Count: 3}}, nil
		},
	}
	userRepo := &MockUserRepository{
		CountFunc: func(ctx context.Context) (int64, error) { return 3, nil },
	}
	svc := NewVoteService(voteRepo, userRepo, &MockAccommodationRepository{}, nil, zap.NewNop())

	got, err := svc.GetVoteStats(context.Background())
	require.NoError(t, err)
	assert.Equal(t, int64(4), got.TotalVotes)
	assert.Equal(t, 6.3, got.AverageRating)
	assert.Equal(t, 66.7, got.ParticipationRate)
	assert.Equal(t, int64(2), got.VotedUsers)
	assert.Equal(t, int64(3), got.TotalUsers)
	require.Len(t, got.RatingDistribution, 10)
	assert.Equal(t, int64(1), got.RatingDistribution["3"])
	assert.Equal(t, int64(3), got.RatingDistribution["8"])
	assert.Equal(t, int64(0), got.RatingDistribution["1"])
	assert.Equal(t, int64(0), got.RatingDistribution["10"])
}

func TestVoteService_GetVoteStats_NoUsers(t *testing.T) {
	svc := NewVoteService(&MockVoteRepository{}, &MockUserRepository{}, &MockAccommodationRepository{}, nil, zap.NewNop())

	got, err := svc.GetVoteStats(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 0.0, got.ParticipationRate)
	assert.Equal(t, 0.0, got.AverageRating)
	assert.Len(t, got.RatingDistribution, 10)
}

func TestVoteService_UpdateVote(t *testing.T) {
	voteID := uuid.New()
	var saved int
	voteRepo := &MockVoteRepository{
		FindByIDFunc: func(ctx context.Context, id uuid.UUID) (*domain.Vote, error) {
			if id != voteID {
				return nil, gorm.ErrRecordNotFound
			}
			return &domain.Vote{BaseModel: domain.BaseModel{ID: id}, Rating: 3}, nil
		},
		UpdateFunc: func(ctx context.Context, vote *domain.Vote) error {
			saved = vote.Rating
			return nil
		},
	}
	svc := NewVoteService(voteRepo, &MockUserRepository{}, &MockAccommodationRepository{}, nil, zap.NewNop())

	got, err := svc.UpdateVote(context.Background(), voteID, &dto.UpdateVoteRequest{Rating: 9})
	require.NoError(t, err)
	assert.Equal(t, 9, got.Rating)
	assert.Equal(t, 9, saved)

	_, err = svc.UpdateVote(context.Background(), voteID, &dto.UpdateVoteRequest{Rating: 0})
	assertAppErrorCode(t, err, response.ErrCodeValidation)

	_, err = svc.UpdateVote(context.Background(), uuid.New(), &dto.UpdateVoteRequest{Rating: 5})
	assertAppErrorCode(t, err, response.ErrCodeNotFound)
}

func TestVoteService_DeleteVote(t *testing.T) {
	voteRepo := &MockVoteRepository{
		DeleteFunc: func(ctx context.Context, id uuid.UUID) error {
			return gorm.ErrRecordNotFound
		},
	}
	svc := NewVoteService(voteRepo, &MockUserRepository{}, &MockAccommodationRepository{}, nil, zap.NewNop())

	err := svc.DeleteVote(context.Background(), uuid.New())
	assertAppErrorCode(t, err, response.ErrCodeNotFound)
}

func TestVoteService_ListVotesByUser(t *testing.T) {
	userID := uuid.New()
	userRepo := &MockUserRepository{
		FindByIDFunc: func(ctx context.Context, id uuid.UUID) (*domain.User, error) {
			if id != userID {
				return nil, gorm.ErrRecordNotFound
			}
			return &domain.User{BaseModel: domain.BaseModel{ID: id}}, nil
		},
	}
	voteRepo := &MockVoteRepository{
		FindAllFunc: func(ctx context.Context, filter repository.VoteFilter) ([]*domain.Vote, error) {
			require.NotNil(t, filter.UserID)
			return []*domain.Vote{{UserID: *filter.UserID, Rating: 4}}, nil
		},
	}
	svc := NewVoteService(voteRepo, userRepo, &MockAccommodationRepository{}, nil, zap.NewNop())

	got, err := svc.ListVotesByUser(context.Background(), userID)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, 4, got[0].Rating)

	_, err = svc.ListVotesByUser(context.Background(), uuid.New())
	assertAppErrorCode(t, err, response.ErrCodeNotFound)
}

func TestParticipationRate(t *testing.T) {
	assert.Equal(t, 0.0, participationRate(0, 0))
	assert.Equal(t, 100.0, participationRate(3, 3))
	assert.Equal(t, 33.3, participationRate(1, 3))
}
