package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"travel-vote-api/internal/dto"
	"travel-vote-api/internal/response"
	"travel-vote-api/internal/service"
)

// CommentHandler handles comment requests
type CommentHandler struct {
	commentService service.CommentService
}

// NewCommentHandler creates a new CommentHandler
func NewCommentHandler(commentService service.CommentService) *CommentHandler {
	return &CommentHandler{
		commentService: commentService,
	}
}

// ListComments godoc
// @Summary      댓글 목록 조회
// @Description  댓글을 최신순으로 조회합니다. search는 대소문자를 구분하지 않는 부분 일치입니다
// @Tags         comments
// @Produce      json
// @Param        user_id query string false "User ID (UUID)"
// @Param        accommodation_id query string false "Accommodation ID (UUID)"
// @Param        search query string false "검색어"
// @Success      200 {object} response.SuccessResponse{data=[]dto.CommentResponse} "조회 성공"
// @Failure      400 {object} response.ErrorResponse "잘못된 필터"
// @Router       /comments/ [get]
func (h *CommentHandler) ListComments(c *gin.Context) {
	query := dto.CommentListQuery{Search: c.Query("search")}
	var ok bool
	if query.UserID, ok = parseOptionalUUIDQuery(c, "user_id"); !ok {
		return
	}
	if query.AccommodationID, ok = parseOptionalUUIDQuery(c, "accommodation_id"); !ok {
		return
	}

	comments, err := h.commentService.ListComments(c.Request.Context(), query)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	response.SendSuccess(c, http.StatusOK, comments)
}

// CreateComment godoc
// @Summary      댓글 작성
// @Description  숙소에 최대 500자의 댓글을 작성합니다
// @Tags         comments
// @Accept       json
// @Produce      json
// @Param        request body dto.CreateCommentRequest true "댓글 작성 요청"
// @Success      201 {object} response.SuccessResponse{data=dto.CommentResponse} "작성 성공"
// @Failure      400 {object} response.ErrorResponse "잘못된 요청"
// @Failure      404 {object} response.ErrorResponse "사용자 또는 숙소를 찾을 수 없음"
// @Router       /comments/ [post]
func (h *CommentHandler) CreateComment(c *gin.Context) {
	var req dto.CreateCommentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.SendError(c, http.StatusBadRequest, response.ErrCodeValidation, "Invalid request body")
		return
	}

	comment, err := h.commentService.CreateComment(c.Request.Context(), &req)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	response.SendSuccess(c, http.StatusCreated, comment)
}

// GetCommentStats godoc
// @Summary      댓글 통계
// @Tags         comments
// @Produce      json
// @Success      200 {object} response.SuccessResponse{data=dto.CommentStatsResponse} "조회 성공"
// @Router       /comments/stats/ [get]
func (h *CommentHandler) GetCommentStats(c *gin.Context) {
	stats, err := h.commentService.GetCommentStats(c.Request.Context())
	if err != nil {
		handleServiceError(c, err)
		return
	}

	response.SendSuccess(c, http.StatusOK, stats)
}

// GetComment godoc
// @Summary      댓글 조회
// @Tags         comments
// @Produce      json
// @Param        id path string true "Comment ID (UUID)"
// @Success      200 {object} response.SuccessResponse{data=dto.CommentResponse} "조회 성공"
// @Failure      404 {object} response.ErrorResponse "댓글을 찾을 수 없음"
// @Router       /comments/{id}/ [get]
func (h *CommentHandler) GetComment(c *gin.Context) {
	commentID, ok := parseIDParam(c, "id", "comment")
	if !ok {
		return
	}

	comment, err := h.commentService.GetComment(c.Request.Context(), commentID)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	response.SendSuccess(c, http.StatusOK, comment)
}

// UpdateComment godoc
// @Summary      댓글 수정
// @Description  작성자만 댓글을 수정할 수 있습니다
// @Tags         comments
// @Accept       json
// @Produce      json
// @Param        id path string true "Comment ID (UUID)"
// @Param        request body dto.UpdateCommentRequest true "댓글 수정 요청"
// @Success      200 {object} response.SuccessResponse{data=dto.CommentResponse} "수정 성공"
// @Failure      400 {object} response.ErrorResponse "잘못된 요청"
// @Failure      403 {object} response.ErrorResponse "작성자가 아님"
// @Failure      404 {object} response.ErrorResponse "댓글을 찾을 수 없음"
// @Router       /comments/{id}/ [put]
func (h *CommentHandler) UpdateComment(c *gin.Context) {
	commentID, ok := parseIDParam(c, "id", "comment")
	if !ok {
		return
	}

	var req dto.UpdateCommentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.SendError(c, http.StatusBadRequest, response.ErrCodeValidation, "Invalid request body")
		return
	}

	comment, err := h.commentService.UpdateComment(c.Request.Context(), commentID, &req)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	response.SendSuccess(c, http.StatusOK, comment)
}

// DeleteComment godoc
// @Summary      댓글 삭제
// @Description  user_id를 전달하면 작성자 본인인지 확인합니다
// @Tags         comments
// @Param        id path string true "Comment ID (UUID)"
// @Param        user_id query string false "요청한 사용자 ID (UUID)"
// @Success      204 "삭제 성공"
// @Failure      403 {object} response.ErrorResponse "작성자가 아님"
// @Failure      404 {object} response.ErrorResponse "댓글을 찾을 수 없음"
// @Router       /comments/{id}/ [delete]
func (h *CommentHandler) DeleteComment(c *gin.Context) {
	commentID, ok := parseIDParam(c, "id", "comment")
	if !ok {
		return
	}
	actingUserID, ok := parseOptionalUUIDQuery(c, "user_id")
	if !ok {
		return
	}

	if err := h.commentService.DeleteComment(c.Request.Context(), commentID, actingUserID); err != nil {
		handleServiceError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// ListCommentsByUser godoc
// @Summary      사용자의 댓글 목록
// @Tags         comments
// @Produce      json
// @Param        id path string true "User ID (UUID)"
// @Success      200 {object} response.SuccessResponse{data=[]dto.CommentResponse} "조회 성공"
// @Failure      404 {object} response.ErrorResponse "사용자를 찾을 수 없음"
// @Router       /users/{id}/comments/ [get]
func (h *CommentHandler) ListCommentsByUser(c *gin.Context) {
	userID, ok := parseIDParam(c, "id", "user")
	if !ok {
		return
	}

	comments, err := h.commentService.ListCommentsByUser(c.Request.Context(), userID)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	response.SendSuccess(c, http.StatusOK, comments)
}

// ListCommentsByAccommodation godoc
// @Summary      숙소의 댓글 목록
// @Tags         comments
// @Produce      json
// @Param        id path string true "Accommodation ID (UUID)"
// @Success      200 {object} response.SuccessResponse{data=[]dto.CommentResponse} "조회 성공"
// @Failure      404 {object} response.ErrorResponse "숙소를 찾을 수 없음"
// @Router       /accommodations/{id}/comments/ [get]
func (h *CommentHandler) ListCommentsByAccommodation(c *gin.Context) {
	accommodationID, ok := parseIDParam(c, "id", "accommodation")
	if !ok {
		return
	}

	comments, err := h.commentService.ListCommentsByAccommodation(c.Request.Context(), accommodationID)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	response.SendSuccess(c, http.StatusOK, comments)
}
