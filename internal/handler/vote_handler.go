package handler

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"travel-vote-api/internal/dto"
	"travel-vote-api/internal/response"
	"travel-vote-api/internal/service"
)

// VoteHandler handles vote requests
type VoteHandler struct {
	voteService service.VoteService
}

// NewVoteHandler creates a new VoteHandler
func NewVoteHandler(voteService service.VoteService) *VoteHandler {
	return &VoteHandler{
		voteService: voteService,
	}
}

// ListVotes godoc
// @Summary      투표 목록 조회
// @Description  투표를 최신순으로 조회합니다. 사용자, 숙소, 평점 범위로 필터링할 수 있습니다
// @Tags         votes
// @Produce      json
// @Param        user_id query string false "User ID (UUID)"
// @Param        accommodation_id query string false "Accommodation ID (UUID)"
// @Param        min_rating query int false "최소 평점"
// @Param        max_rating query int false "최대 평점"
// @Success      200 {object} response.SuccessResponse{data=[]dto.VoteResponse} "조회 성공"
// @Failure      400 {object} response.ErrorResponse "잘못된 필터"
// @Router       /votes/ [get]
func (h *VoteHandler) ListVotes(c *gin.Context) {
	var query dto.VoteListQuery
	var ok bool
	if query.UserID, ok = parseOptionalUUIDQuery(c, "user_id"); !ok {
		return
	}
	if query.AccommodationID, ok = parseOptionalUUIDQuery(c, "accommodation_id"); !ok {
		return
	}
	if query.MinRating, ok = parseOptionalIntQuery(c, "min_rating"); !ok {
		return
	}
	if query.MaxRating, ok = parseOptionalIntQuery(c, "max_rating"); !ok {
		return
	}

	votes, err := h.voteService.ListVotes(c.Request.Context(), query)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	response.SendSuccess(c, http.StatusOK, votes)
}

// CastVote godoc
// @Summary      투표하기
// @Description  숙소에 1~10점으로 투표합니다. 같은 사용자가 같은 숙소에 다시 투표하면 기존 평점을 덮어씁니다
// @Tags         votes
// @Accept       json
// @Produce      json
// @Param        request body dto.CastVoteRequest true "투표 요청"
// @Success      201 {object} response.SuccessResponse{data=dto.VoteResponse} "새 투표 생성"
// @Success      200 {object} response.SuccessResponse{data=dto.VoteResponse} "기존 투표 갱신"
// @Failure      400 {object} response.ErrorResponse "잘못된 평점"
// @Failure      404 {object} response.ErrorResponse "사용자 또는 숙소를 찾을 수 없음"
// @Router       /votes/ [post]
func (h *VoteHandler) CastVote(c *gin.Context) {
	var req dto.CastVoteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.SendError(c, http.StatusBadRequest, response.ErrCodeValidation, "Invalid request body")
		return
	}

	result, err := h.voteService.CastVote(c.Request.Context(), &req)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	status := http.StatusOK
	if result.Created {
		status = http.StatusCreated
	}
	response.SendSuccess(c, status, result.Vote)
}

// GetVoteStats godoc
// @Summary      투표 통계
// @Description  전체 투표 수, 평균 평점, 평점 분포, 참여율을 조회합니다
// @Tags         votes
// @Produce      json
// @Success      200 {object} response.SuccessResponse{data=dto.VoteStatsResponse} "조회 성공"
// @Router       /votes/stats/ [get]
func (h *VoteHandler) GetVoteStats(c *gin.Context) {
	stats, err := h.voteService.GetVoteStats(c.Request.Context())
	if err != nil {
		handleServiceError(c, err)
		return
	}

	response.SendSuccess(c, http.StatusOK, stats)
}

// GetVote godoc
// @Summary      투표 조회
// @Tags         votes
// @Produce      json
// @Param        id path string true "Vote ID (UUID)"
// @Success      200 {object} response.SuccessResponse{data=dto.VoteResponse} "조회 성공"
// @Failure      404 {object} response.ErrorResponse "투표를 찾을 수 없음"
// @Router       /votes/{id}/ [get]
func (h *VoteHandler) GetVote(c *gin.Context) {
	voteID, ok := parseIDParam(c, "id", "vote")
	if !ok {
		return
	}

	vote, err := h.voteService.GetVote(c.Request.Context(), voteID)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	response.SendSuccess(c, http.StatusOK, vote)
}

// UpdateVote godoc
// @Summary      투표 수정
// @Description  평점만 변경할 수 있습니다
// @Tags         votes
// @Accept       json
// @Produce      json
// @Param        id path string true "Vote ID (UUID)"
// @Param        request body dto.UpdateVoteRequest true "투표 수정 요청"
// @Success      200 {object} response.SuccessResponse{data=dto.VoteResponse} "수정 성공"
// @Failure      400 {object} response.ErrorResponse "잘못된 평점"
// @Failure      404 {object} response.ErrorResponse "투표를 찾을 수 없음"
// @Router       /votes/{id}/ [put]
func (h *VoteHandler) UpdateVote(c *gin.Context) {
	voteID, ok := parseIDParam(c, "id", "vote")
	if !ok {
		return
	}

	var req dto.UpdateVoteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.SendError(c, http.StatusBadRequest, response.ErrCodeValidation, "Invalid request body")
		return
	}

	vote, err := h.voteService.UpdateVote(c.Request.Context(), voteID, &req)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	response.SendSuccess(c, http.StatusOK, vote)
}

// DeleteVote godoc
// @Summary      투표 삭제
// @Tags         votes
// @Param        id path string true "Vote ID (UUID)"
// @Success      204 "삭제 성공"
// @Failure      404 {object} response.ErrorResponse "투표를 찾을 수 없음"
// @Router       /votes/{id}/ [delete]
func (h *VoteHandler) DeleteVote(c *gin.Context) {
	voteID, ok := parseIDParam(c, "id", "vote")
	if !ok {
		return
	}

	if err := h.voteService.DeleteVote(c.Request.Context(), voteID); err != nil {
		handleServiceError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// ListVotesByUser godoc
// @Summary      사용자의 투표 목록
// @Tags         votes
// @Produce      json
// @Param        id path string true "User ID (UUID)"
// @Success      200 {object} response.SuccessResponse{data=[]dto.VoteResponse} "조회 성공"
// @Failure      404 {object} response.ErrorResponse "사용자를 찾을 수 없음"
// @Router       /users/{id}/votes/ [get]
func (h *VoteHandler) ListVotesByUser(c *gin.Context) {
	userID, ok := parseIDParam(c, "id", "user")
	if !ok {
		return
	}

	votes, err := h.voteService.ListVotesByUser(c.Request.Context(), userID)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	response.SendSuccess(c, http.StatusOK, votes)
}

// ListVotesByAccommodation godoc
// @Summary      숙소의 투표 목록
// @Tags         votes
// @Produce      json
// @Param        id path string true "Accommodation ID (UUID)"
// @Success      200 {object} response.SuccessResponse{data=[]dto.VoteResponse} "조회 성공"
// @Failure      404 {object} response.ErrorResponse "숙소를 찾을 수 없음"
// @Router       /accommodations/{id}/votes/ [get]
func (h *VoteHandler) ListVotesByAccommodation(c *gin.Context) {
	accommodationID, ok := parseIDParam(c, "id", "accommodation")
	if !ok {
		return
	}

	votes, err := h.voteService.ListVotesByAccommodation(c.Request.Context(), accommodationID)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	response.SendSuccess(c, http.StatusOK, votes)
}

func parseOptionalIntQuery(c *gin.Context, name string) (*int, bool) {
	raw := c.Query(name)
	if raw == "" {
		return nil, true
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		response.SendError(c, http.StatusBadRequest, response.ErrCodeValidation, "Invalid "+name)
		return nil, false
	}
	return &v, true
}
