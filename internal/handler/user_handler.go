package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"travel-vote-api/internal/dto"
	"travel-vote-api/internal/response"
	"travel-vote-api/internal/service"
)

// UserHandler handles user requests
type UserHandler struct {
	userService service.UserService
}

// NewUserHandler creates a new UserHandler
func NewUserHandler(userService service.UserService) *UserHandler {
	return &UserHandler{
		userService: userService,
	}
}

// ListUsers godoc
// @Summary      사용자 목록 조회
// @Description  모든 사용자를 이름순으로 조회합니다
// @Tags         users
// @Produce      json
// @Success      200 {object} response.SuccessResponse{data=[]dto.UserResponse} "사용자 목록 조회 성공"
// @Failure      500 {object} response.ErrorResponse "서버 에러"
// @Router       /users/ [get]
func (h *UserHandler) ListUsers(c *gin.Context) {
	users, err := h.userService.ListUsers(c.Request.Context())
	if err != nil {
		handleServiceError(c, err)
		return
	}

	response.SendSuccess(c, http.StatusOK, users)
}

// RegisterUser godoc
// @Summary      사용자 등록
// @Description  이름으로 사용자를 등록합니다. 관리자 이름으로 등록하면 관리자 권한이 부여됩니다
// @Tags         users
// @Accept       json
// @Produce      json
// @Param        request body dto.CreateUserRequest true "사용자 등록 요청"
// @Success      201 {object} response.SuccessResponse{data=dto.UserResponse} "사용자 등록 성공"
// @Failure      400 {object} response.ErrorResponse "잘못된 요청"
// @Failure      409 {object} response.ErrorResponse "이미 존재하는 이름"
// @Failure      500 {object} response.ErrorResponse "서버 에러"
// @Router       /users/ [post]
func (h *UserHandler) RegisterUser(c *gin.Context) {
	var req dto.CreateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.SendError(c, http.StatusBadRequest, response.ErrCodeValidation, "Invalid request body")
		return
	}

	user, err := h.userService.RegisterUser(c.Request.Context(), &req)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	response.SendSuccess(c, http.StatusCreated, user)
}

// Login godoc
// @Summary      이름으로 로그인
// @Description  등록된 이름으로 로그인하고 액세스 토큰을 발급합니다
// @Tags         users
// @Accept       json
// @Produce      json
// @Param        request body dto.LoginRequest true "로그인 요청"
// @Success      200 {object} response.SuccessResponse{data=dto.LoginResponse} "로그인 성공"
// @Failure      400 {object} response.ErrorResponse "잘못된 요청"
// @Failure      404 {object} response.ErrorResponse "사용자를 찾을 수 없음"
// @Failure      500 {object} response.ErrorResponse "서버 에러"
// @Router       /users/login/ [post]
func (h *UserHandler) Login(c *gin.Context) {
	var req dto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.SendError(c, http.StatusBadRequest, response.ErrCodeValidation, "Invalid request body")
		return
	}

	result, err := h.userService.Login(c.Request.Context(), &req)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	response.SendSuccessWithMessage(c, http.StatusOK, result.Message, result)
}

// GetUserStats godoc
// @Summary      사용자 통계
// @Tags         users
// @Produce      json
// @Success      200 {object} response.SuccessResponse{data=dto.UserStatsResponse} "사용자 통계 조회 성공"
// @Failure      500 {object} response.ErrorResponse "서버 에러"
// @Router       /users/stats/ [get]
func (h *UserHandler) GetUserStats(c *gin.Context) {
	stats, err := h.userService.GetUserStats(c.Request.Context())
	if err != nil {
		handleServiceError(c, err)
		return
	}

	response.SendSuccess(c, http.StatusOK, stats)
}

// GetUser godoc
// @Summary      사용자 조회
// @Tags         users
// @Produce      json
// @Param        id path string true "User ID (UUID)"
// @Success      200 {object} response.SuccessResponse{data=dto.UserResponse} "사용자 조회 성공"
// @Failure      400 {object} response.ErrorResponse "잘못된 User ID"
// @Failure      404 {object} response.ErrorResponse "사용자를 찾을 수 없음"
// @Router       /users/{id}/ [get]
func (h *UserHandler) GetUser(c *gin.Context) {
	userID, ok := parseIDParam(c, "id", "user")
	if !ok {
		return
	}

	user, err := h.userService.GetUser(c.Request.Context(), userID)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	response.SendSuccess(c, http.StatusOK, user)
}

// UpdateUser godoc
// @Summary      사용자 수정
// @Description  사용자 이름을 변경합니다. 본인 또는 관리자만 수정할 수 있으며 관리자 여부는 바뀌지 않습니다
// @Tags         users
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id path string true "User ID (UUID)"
// @Param        request body dto.UpdateUserRequest true "사용자 수정 요청"
// @Success      200 {object} response.SuccessResponse{data=dto.UserResponse} "사용자 수정 성공"
// @Failure      400 {object} response.ErrorResponse "잘못된 요청"
// @Failure      401 {object} response.ErrorResponse "인증 필요"
// @Failure      403 {object} response.ErrorResponse "권한 없음"
// @Failure      404 {object} response.ErrorResponse "사용자를 찾을 수 없음"
// @Failure      409 {object} response.ErrorResponse "이미 존재하는 이름"
// @Router       /users/{id}/ [put]
func (h *UserHandler) UpdateUser(c *gin.Context) {
	userID, ok := parseIDParam(c, "id", "user")
	if !ok {
		return
	}

	actor, ok := currentActor(c)
	if !ok {
		return
	}

	var req dto.UpdateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.SendError(c, http.StatusBadRequest, response.ErrCodeValidation, "Invalid request body")
		return
	}

	user, err := h.userService.UpdateUser(c.Request.Context(), userID, actor, &req)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	response.SendSuccess(c, http.StatusOK, user)
}

// DeleteUser godoc
// @Summary      사용자 삭제
// @Description  사용자와 그 사용자의 투표, 댓글을 삭제합니다. 관리자는 삭제할 수 없습니다
// @Tags         users
// @Produce      json
// @Security     BearerAuth
// @Param        id path string true "User ID (UUID)"
// @Success      204 "사용자 삭제 성공"
// @Failure      401 {object} response.ErrorResponse "인증 필요"
// @Failure      403 {object} response.ErrorResponse "관리자 계정 삭제 불가"
// @Failure      404 {object} response.ErrorResponse "사용자를 찾을 수 없음"
// @Router       /users/{id}/ [delete]
func (h *UserHandler) DeleteUser(c *gin.Context) {
	userID, ok := parseIDParam(c, "id", "user")
	if !ok {
		return
	}

	if err := h.userService.DeleteUser(c.Request.Context(), userID); err != nil {
		handleServiceError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// CheckAdmin godoc
// @Summary      관리자 여부 확인
// @Tags         users
// @Produce      json
// @Param        id path string true "User ID (UUID)"
// @Success      200 {object} response.SuccessResponse{data=dto.CheckAdminResponse} "조회 성공"
// @Failure      404 {object} response.ErrorResponse "사용자를 찾을 수 없음"
// @Router       /users/{id}/check-admin/ [get]
func (h *UserHandler) CheckAdmin(c *gin.Context) {
	userID, ok := parseIDParam(c, "id", "user")
	if !ok {
		return
	}

	result, err := h.userService.CheckAdmin(c.Request.Context(), userID)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	response.SendSuccess(c, http.StatusOK, result)
}

// GetUserActivity godoc
// @Summary      사용자 활동 요약
// @Description  투표 수, 댓글 수, 평균 평점, 투표한 숙소 목록을 조회합니다
// @Tags         users
// @Produce      json
// @Param        id path string true "User ID (UUID)"
// @Success      200 {object} response.SuccessResponse{data=dto.UserActivityResponse} "조회 성공"
// @Failure      404 {object} response.ErrorResponse "사용자를 찾을 수 없음"
// @Router       /users/{id}/activity/ [get]
func (h *UserHandler) GetUserActivity(c *gin.Context) {
	userID, ok := parseIDParam(c, "id", "user")
	if !ok {
		return
	}

	activity, err := h.userService.GetUserActivity(c.Request.Context(), userID)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	response.SendSuccess(c, http.StatusOK, activity)
}
