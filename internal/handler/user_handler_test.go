package handler

import (
	"context"
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"travel-vote-api/internal/dto"
	"travel-vote-api/internal/response"
	"travel-vote-api/internal/service"
)

func setupUserRouter(svc *MockUserService) *gin.Engine {
	h := NewUserHandler(svc)
	r := gin.New()
	r.GET("/users/", h.ListUsers)
	r.POST("/users/", h.RegisterUser)
	r.POST("/users/login/", h.Login)
	r.GET("/users/stats/", h.GetUserStats)
	r.GET("/users/:id/", h.GetUser)
	r.PUT("/users/:id/", h.UpdateUser)
	r.PATCH("/users/:id/", h.UpdateUser)
	r.DELETE("/users/:id/", h.DeleteUser)
	r.GET("/users/:id/check-admin/", h.CheckAdmin)
	r.GET("/users/:id/activity/", h.GetUserActivity)
	return r
}

func TestUserHandler_RegisterUser(t *testing.T) {
	tests := []struct {
		name           string
		body           interface{}
		mockService    func(*MockUserService)
		expectedStatus int
		expectedCode   string
	}{
		{
			name:           "성공: 사용자 등록",
			body:           dto.CreateUserRequest{Name: "홍길동"},
			expectedStatus: http.StatusCreated,
		},
		{
			name:           "실패: 이름 누락",
			body:           map[string]string{},
			expectedStatus: http.StatusBadRequest,
			expectedCode:   response.ErrCodeValidation,
		},
		{
			name:           "실패: 잘못된 JSON",
			body:           "{not-json",
			expectedStatus: http.StatusBadRequest,
			expectedCode:   response.ErrCodeValidation,
		},
		{
			name: "실패: 중복 이름",
			body: dto.CreateUserRequest{Name: "홍길동"},
			mockService: func(m *MockUserService) {
				m.RegisterUserFunc = func(ctx context.Context, req *dto.CreateUserRequest) (*dto.UserResponse, error) {
					return nil, response.NewAlreadyExistsError("User name already exists", "")
				}
			},
			expectedStatus: http.StatusConflict,
			expectedCode:   response.ErrCodeAlreadyExists,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := &MockUserService{}
			if tt.mockService != nil {
				tt.mockService(svc)
			}

			w := performRequest(setupUserRouter(svc), http.MethodPost, "/users/", tt.body)

			assert.Equal(t, tt.expectedStatus, w.Code)
			if tt.expectedCode != "" {
				assert.Equal(t, tt.expectedCode, errorCode(t, w.Body.Bytes()))
				return
			}
			resp := decodeEnvelope(t, w.Body.Bytes())
			assert.Equal(t, true, resp["success"])
			assert.Equal(t, "홍길동", resp["data"].(map[string]interface{})["name"])
		})
	}
}

func TestUserHandler_Login(t *testing.T) {
	userID := uuid.New()
	svc := &MockUserService{
		LoginFunc: func(ctx context.Context, req *dto.LoginRequest) (*dto.LoginResponse, error) {
			if req.Name != "관리자" {
				return nil, response.NewNotFoundError("User not found", "")
			}
			return &dto.LoginResponse{
				User:        dto.UserResponse{ID: userID, Name: req.Name, IsAdmin: true},
				IsAdmin:     true,
				AccessToken: "token",
				TokenType:   "Bearer",
				Message:     "관리자님이 로그인했습니다.",
			}, nil
		},
	}
	r := setupUserRouter(svc)

	w := performRequest(r, http.MethodPost, "/users/login/", dto.LoginRequest{Name: "관리자"})
	require.Equal(t, http.StatusOK, w.Code)
	resp := decodeEnvelope(t, w.Body.Bytes())
	assert.Equal(t, "관리자님이 로그인했습니다.", resp["message"])
	data := resp["data"].(map[string]interface{})
	assert.Equal(t, "token", data["access_token"])
	assert.Equal(t, true, data["is_admin"])

	w = performRequest(r, http.MethodPost, "/users/login/", dto.LoginRequest{Name: "없는사람"})
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestUserHandler_InvalidID(t *testing.T) {
	r := setupUserRouter(&MockUserService{})

	paths := []struct {
		method string
		path   string
	}{
		{http.MethodGet, "/users/not-a-uuid/"},
		{http.MethodPut, "/users/not-a-uuid/"},
		{http.MethodDelete, "/users/not-a-uuid/"},
		{http.MethodGet, "/users/not-a-uuid/check-admin/"},
		{http.MethodGet, "/users/not-a-uuid/activity/"},
	}

	for _, p := range paths {
		t.Run(p.method+" "+p.path, func(t *testing.T) {
			w := performRequest(r, p.method, p.path, dto.UpdateUserRequest{})
			assert.Equal(t, http.StatusBadRequest, w.Code)
			assert.Equal(t, response.ErrCodeValidation, errorCode(t, w.Body.Bytes()))
		})
	}
}

func TestUserHandler_DeleteUser(t *testing.T) {
	adminID := uuid.New()
	svc := &MockUserService{
		DeleteUserFunc: func(ctx context.Context, userID uuid.UUID) error {
			if userID == adminID {
				return response.NewForbiddenError("Admin users cannot be deleted", "")
			}
			return nil
		},
	}
	r := setupUserRouter(svc)

	w := performRequest(r, http.MethodDelete, "/users/"+uuid.New().String()+"/", nil)
	assert.Equal(t, http.StatusNoContent, w.Code)

	w = performRequest(r, http.MethodDelete, "/users/"+adminID.String()+"/", nil)
	assert.Equal(t, http.StatusForbidden, w.Code)
	assert.Equal(t, response.ErrCodeForbidden, errorCode(t, w.Body.Bytes()))
}

// withActor stands in for the auth middleware
func withActor(userID uuid.UUID, isAdmin bool) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set("user_id", userID)
		c.Set("is_admin", isAdmin)
		c.Next()
	}
}

func TestUserHandler_PatchUsesUpdate(t *testing.T) {
	userID := uuid.New()
	var gotName string
	var gotActor service.Actor
	svc := &MockUserService{
		UpdateUserFunc: func(ctx context.Context, id uuid.UUID, actor service.Actor, req *dto.UpdateUserRequest) (*dto.UserResponse, error) {
			require.NotNil(t, req.Name)
			gotName = *req.Name
			gotActor = actor
			return &dto.UserResponse{ID: id, Name: *req.Name}, nil
		},
	}
	h := NewUserHandler(svc)
	r := gin.New()
	r.PATCH("/users/:id/", withActor(userID, false), h.UpdateUser)

	w := performRequest(r, http.MethodPatch, "/users/"+userID.String()+"/", map[string]string{"name": "김철수"})
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "김철수", gotName)
	assert.Equal(t, service.Actor{UserID: userID}, gotActor)
}

func TestUserHandler_UpdateUser_Unauthenticated(t *testing.T) {
	called := false
	svc := &MockUserService{
		UpdateUserFunc: func(ctx context.Context, id uuid.UUID, actor service.Actor, req *dto.UpdateUserRequest) (*dto.UserResponse, error) {
			called = true
			return &dto.UserResponse{ID: id}, nil
		},
	}

	w := performRequest(setupUserRouter(svc), http.MethodPut, "/users/"+uuid.New().String()+"/", map[string]string{"name": "mallory"})
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Equal(t, response.ErrCodeUnauthorized, errorCode(t, w.Body.Bytes()))
	assert.False(t, called)
}

func TestUserHandler_UpdateUser_Forbidden(t *testing.T) {
	svc := &MockUserService{
		UpdateUserFunc: func(ctx context.Context, id uuid.UUID, actor service.Actor, req *dto.UpdateUserRequest) (*dto.UserResponse, error) {
			return nil, response.NewForbiddenError("Cannot update another user", "")
		},
	}
	h := NewUserHandler(svc)
	r := gin.New()
	r.PUT("/users/:id/", withActor(uuid.New(), false), h.UpdateUser)

	w := performRequest(r, http.MethodPut, "/users/"+uuid.New().String()+"/", map[string]string{"name": "mallory"})
	assert.Equal(t, http.StatusForbidden, w.Code)
	assert.Equal(t, response.ErrCodeForbidden, errorCode(t, w.Body.Bytes()))
}

func TestUserHandler_GetUser_NotFound(t *testing.T) {
	svc := &MockUserService{
		GetUserFunc: func(ctx context.Context, userID uuid.UUID) (*dto.UserResponse, error) {
			return nil, response.NewNotFoundError("User not found", "")
		},
	}

	w := performRequest(setupUserRouter(svc), http.MethodGet, "/users/"+uuid.New().String()+"/", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, response.ErrCodeNotFound, errorCode(t, w.Body.Bytes()))
}
