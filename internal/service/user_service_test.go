package service

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

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

func newTestUserService(userRepo *MockUserRepository, voteRepo *MockVoteRepository, commentRepo *MockCommentRepository) UserService {
	return NewUserService(userRepo, voteRepo, commentRepo, mockAdminPolicy{"관리자": true}, &MockTokenIssuer{}, nil, zap.NewNop())
}

func assertAppErrorCode(t *testing.T, err error, code string) {
	t.Helper()
	require.Error(t, err)
	var appErr *response.AppError
	require.True(t, errors.As(err, &appErr), "expected AppError, got %T", err)
	assert.Equal(t, code, appErr.Code)
}

func TestUserService_RegisterUser(t *testing.T) {
	tests := []struct {
		name        string
		reqName     string
		mockSetup   func(*MockUserRepository)
		wantErrCode string
		wantName    string
		wantAdmin   bool
	}{
		{
			name:     "성공: 일반 사용자 등록",
			reqName:  "  홍길동  ",
			wantName: "홍길동",
		},
		{
			name:      "성공: 관리자 이름은 관리자 권한 부여",
			reqName:   "관리자",
			wantName:  "관리자",
			wantAdmin: true,
		},
		{
			name:        "실패: 빈 이름",
			reqName:     "   ",
			wantErrCode: response.ErrCodeValidation,
		},
		{
			name:        "실패: 51자 이름",
			reqName:     strings.Repeat("가", 51),
			wantErrCode: response.ErrCodeValidation,
		},
		{
			name:    "실패: 중복 이름",
			reqName: "홍길동",
			mockSetup: func(m *MockUserRepository) {
				m.FindByNameFunc = func(ctx context.Context, name string) (*domain.User, error) {
					return &domain.User{BaseModel: domain.BaseModel{ID: uuid.New()}, Name: name}, nil
				}
			},
			wantErrCode: response.ErrCodeAlreadyExists,
		},
		{
			name:    "실패: 저장소 오류",
			reqName: "홍길동",
			mockSetup: func(m *MockUserRepository) {
				m.CreateFunc = func(ctx context.Context, user *domain.User) error {
					return errors.New("db down")
				}
			},
			wantErrCode: response.ErrCodeInternal,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			userRepo := &MockUserRepository{}
			if tt.mockSetup != nil {
				tt.mockSetup(userRepo)
			}
			svc := newTestUserService(userRepo, &MockVoteRepository{}, &MockCommentRepository{})

			got, err := svc.RegisterUser(context.Background(), &dto.CreateUserRequest{Name: tt.reqName})
			if tt.wantErrCode != "" {
				assertAppErrorCode(t, err, tt.wantErrCode)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantName, got.Name)
			assert.Equal(t, tt.wantAdmin, got.IsAdmin)
			assert.NotEqual(t, uuid.Nil, got.ID)
		})
	}
}

func TestUserService_Login(t *testing.T) {
	userID := uuid.New()
	expires := time.Now().Add(time.Hour)

	userRepo := &MockUserRepository{
		FindByNameFunc: func(ctx context.Context, name string) (*domain.User, error) {
			if name == "관리자" {
				return &domain.User{BaseModel: domain.BaseModel{ID: userID}, Name: name, IsAdmin: true}, nil
			}
			return nil, gorm.ErrRecordNotFound
		},
	}
	var issuedFor uuid.UUID
	tokens := &MockTokenIssuer{
		IssueFunc: func(id uuid.UUID, name string, isAdmin bool) (string, time.Time, error) {
			issuedFor = id
			assert.True(t, isAdmin)
			return "signed", expires, nil
		},
	}
	svc := NewUserService(userRepo, &MockVoteRepository{}, &MockCommentRepository{}, mockAdminPolicy{}, tokens, nil, zap.NewNop())

	got, err := svc.Login(context.Background(), &dto.LoginRequest{Name: " 관리자 "})
	require.NoError(t, err)
	assert.Equal(t, userID, issuedFor)
	assert.Equal(t, "signed", got.AccessToken)
	assert.Equal(t, "Bearer", got.TokenType)
	assert.True(t, got.IsAdmin)
	assert.Equal(t, expires, got.ExpiresAt)
	assert.Equal(t, "관리자님이 로그인했습니다.", got.Message)

	_, err = svc.Login(context.Background(), &dto.LoginRequest{Name: "없는사람"})
	assertAppErrorCode(t, err, response.ErrCodeNotFound)

	_, err = svc.Login(context.Background(), &dto.LoginRequest{Name: "  "})
	assertAppErrorCode(t, err, response.ErrCodeValidation)
}

func TestUserService_DeleteUser(t *testing.T) {
	adminID := uuid.New()
	regularID := uuid.New()

	tests := []struct {
		name        string
		userID      uuid.UUID
		wantErrCode string
		wantDeleted bool
	}{
		{name: "성공: 일반 사용자 삭제", userID: regularID, wantDeleted: true},
		{name: "실패: 관리자 삭제 불가", userID: adminID, wantErrCode: response.ErrCodeForbidden},
		{name: "실패: 없는 사용자", userID: uuid.New(), wantErrCode: response.ErrCodeNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			deleted := false
			userRepo := &MockUserRepository{
				FindByIDFunc: func(ctx context.Context, id uuid.UUID) (*domain.User, error) {
					switch id {
					case adminID:
						return &domain.User{BaseModel: domain.BaseModel{ID: id}, Name: "관리자", IsAdmin: true}, nil
					case regularID:
						return &domain.User{BaseModel: domain.BaseModel{ID: id}, Name: "일반"}, nil
					}
					return nil, gorm.ErrRecordNotFound
				},
				DeleteWithRelationsFunc: func(ctx context.Context, id uuid.UUID) error {
					deleted = true
					return nil
				},
			}
			svc := newTestUserService(userRepo, &MockVoteRepository{}, &MockCommentRepository{})

			err := svc.DeleteUser(context.Background(), tt.userID)
			if tt.wantErrCode != "" {
				assertAppErrorCode(t, err, tt.wantErrCode)
			} else {
				require.NoError(t, err)
			}
			assert.Equal(t, tt.wantDeleted, deleted)
		})
	}
}

func TestUserService_UpdateUser(t *testing.T) {
	userID := uuid.New()
	otherID := uuid.New()
	adminID := uuid.New()
	self := Actor{UserID: userID}

	newRepo := func() *MockUserRepository {
		return &MockUserRepository{
			FindByIDFunc: func(ctx context.Context, id uuid.UUID) (*domain.User, error) {
				if id == adminID {
					return &domain.User{BaseModel: domain.BaseModel{ID: adminID}, Name: "관리자", IsAdmin: true}, nil
				}
				return &domain.User{BaseModel: domain.BaseModel{ID: id}, Name: "before"}, nil
			},
			FindByNameFunc: func(ctx context.Context, name string) (*domain.User, error) {
				if name == "taken" {
					return &domain.User{BaseModel: domain.BaseModel{ID: otherID}, Name: name}, nil
				}
				return nil, gorm.ErrRecordNotFound
			},
		}
	}

	t.Run("성공: 본인 이름 변경", func(t *testing.T) {
		svc := newTestUserService(newRepo(), &MockVoteRepository{}, &MockCommentRepository{})
		name := "after"
		got, err := svc.UpdateUser(context.Background(), userID, self, &dto.UpdateUserRequest{Name: &name})
		require.NoError(t, err)
		assert.Equal(t, "after", got.Name)
		assert.False(t, got.IsAdmin)
	})

	t.Run("성공: 관리자가 다른 사용자 이름 변경", func(t *testing.T) {
		svc := newTestUserService(newRepo(), &MockVoteRepository{}, &MockCommentRepository{})
		name := "after"
		got, err := svc.UpdateUser(context.Background(), userID, Actor{UserID: adminID, IsAdmin: true}, &dto.UpdateUserRequest{Name: &name})
		require.NoError(t, err)
		assert.Equal(t, "after", got.Name)
	})

	t.Run("성공: 관리자가 이름을 바꿔도 관리자 유지", func(t *testing.T) {
		var saved *domain.User
		repo := newRepo()
		repo.UpdateFunc = func(ctx context.Context, user *domain.User) error {
			saved = user
			return nil
		}
		svc := newTestUserService(repo, &MockVoteRepository{}, &MockCommentRepository{})
		name := "mallory"
		got, err := svc.UpdateUser(context.Background(), adminID, Actor{UserID: adminID, IsAdmin: true}, &dto.UpdateUserRequest{Name: &name})
		require.NoError(t, err)
		assert.True(t, got.IsAdmin)
		require.NotNil(t, saved)
		assert.True(t, saved.IsAdmin)
	})

	t.Run("실패: 다른 사용자 수정", func(t *testing.T) {
		svc := newTestUserService(newRepo(), &MockVoteRepository{}, &MockCommentRepository{})
		name := "mallory"
		_, err := svc.UpdateUser(context.Background(), adminID, Actor{UserID: otherID}, &dto.UpdateUserRequest{Name: &name})
		assertAppErrorCode(t, err, response.ErrCodeForbidden)
	})

	t.Run("실패: 일반 사용자가 관리자 이름 사용", func(t *testing.T) {
		svc := newTestUserService(newRepo(), &MockVoteRepository{}, &MockCommentRepository{})
		name := " 관리자 "
		_, err := svc.UpdateUser(context.Background(), userID, self, &dto.UpdateUserRequest{Name: &name})
		assertAppErrorCode(t, err, response.ErrCodeForbidden)
	})

	t.Run("실패: 다른 사용자의 이름", func(t *testing.T) {
		svc := newTestUserService(newRepo(), &MockVoteRepository{}, &MockCommentRepository{})
		name := "taken"
		_, err := svc.UpdateUser(context.Background(), userID, self, &dto.UpdateUserRequest{Name: &name})
		assertAppErrorCode(t, err, response.ErrCodeAlreadyExists)
	})
}

func TestUserService_GetUserStats(t *testing.T) {
	admin := &domain.User{BaseModel: domain.BaseModel{ID: uuid.New()}, Name: "관리자", IsAdmin: true}
	userRepo := &MockUserRepository{
		CountFunc: func(ctx context.Context) (int64, error) { return 4, nil },
		FindAdminsFunc: func(ctx context.Context) ([]*domain.User, error) {
			return []*domain.User{admin}, nil
		},
	}
	svc := newTestUserService(userRepo, &MockVoteRepository{}, &MockCommentRepository{})

	got, err := svc.GetUserStats(context.Background())
	require.NoError(t, err)
	assert.Equal(t, int64(4), got.TotalUsers)
	assert.Equal(t, int64(1), got.AdminUsers)
	assert.Equal(t, int64(3), got.RegularUsers)
	require.Len(t, got.AdminList, 1)
	assert.Equal(t, admin.ID, got.AdminList[0].ID)
}

func TestUserService_GetUserActivity(t *testing.T) {
	userID := uuid.New()
	accommodationID := uuid.New()
	votedAt := time.Now()

	voteRepo := &MockVoteRepository{
		SummaryByUserFunc: func(ctx context.Context, id uuid.UUID) (*repository.VoteSummary, error) {
			return &repository.VoteSummary{TotalVotes: 3, AverageRating: 7.6667}, nil
		},
		FindAllFunc: func(ctx context.Context, filter repository.VoteFilter) ([]*domain.Vote, error) {
			require.NotNil(t, filter.UserID)
			assert.Equal(t, userID, *filter.UserID)
			return []*domain.Vote{{
				BaseModel:       domain.BaseModel{ID: uuid.New(), CreatedAt: votedAt, UpdatedAt: votedAt.Add(time.Hour)},
				UserID:          userID,
				AccommodationID: accommodationID,
				Rating:          9,
				Accommodation:   &domain.Accommodation{BaseModel: domain.BaseModel{ID: accommodationID}, Name: "한옥"},
			}}, nil
		},
	}
	commentRepo := &MockCommentRepository{
		CountByUserFunc: func(ctx context.Context, id uuid.UUID) (int64, error) { return 2, nil },
	}
	svc := newTestUserService(&MockUserRepository{}, voteRepo, commentRepo)

	got, err := svc.GetUserActivity(context.Background(), userID)
	require.NoError(t, err)
	assert.Equal(t, int64(3), got.VoteCount)
	assert.Equal(t, int64(2), got.CommentCount)
	assert.Equal(t, 7.7, got.AverageRating)
	require.Len(t, got.VotedAccommodations, 1)
	assert.Equal(t, "한옥", got.VotedAccommodations[0].AccommodationName)
	assert.Equal(t, 9, got.VotedAccommodations[0].Rating)
	assert.True(t, votedAt.Equal(got.VotedAccommodations[0].VotedAt), "voted_at follows the created_at ordering")
}

func TestUserService_CheckAdmin(t *testing.T) {
	userID := uuid.New()
	userRepo := &MockUserRepository{
		FindByIDFunc: func(ctx context.Context, id uuid.UUID) (*domain.User, error) {
			if id == userID {
				return &domain.User{BaseModel: domain.BaseModel{ID: id}, Name: "관리자", IsAdmin: true}, nil
			}
			return nil, gorm.ErrRecordNotFound
		},
	}
	svc := newTestUserService(userRepo, &MockVoteRepository{}, &MockCommentRepository{})

	got, err := svc.CheckAdmin(context.Background(), userID)
	require.NoError(t, err)
	assert.True(t, got.IsAdmin)

	_, err = svc.CheckAdmin(context.Background(), uuid.New())
	assertAppErrorCode(t, err, response.ErrCodeNotFound)
}
