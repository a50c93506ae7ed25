package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"travel-vote-api/internal/dto"
	"travel-vote-api/internal/response"
	"travel-vote-api/internal/service"
)

// AccommodationHandler handles accommodation and accommodation image requests
type AccommodationHandler struct {
	accommodationService service.AccommodationService
}

// NewAccommodationHandler creates a new AccommodationHandler
func NewAccommodationHandler(accommodationService service.AccommodationService) *AccommodationHandler {
	return &AccommodationHandler{
		accommodationService: accommodationService,
	}
}

// ListAccommodations godoc
// @Summary      숙소 목록 조회
// @Description  모든 숙소를 최신순으로 조회합니다. 평균 평점, 투표 수, 이미지를 포함합니다
// @Tags         accommodations
// @Produce      json
// @Success      200 {object} response.SuccessResponse{data=[]dto.AccommodationResponse} "숙소 목록 조회 성공"
// @Failure      500 {object} response.ErrorResponse "서버 에러"
// @Router       /accommodations/ [get]
func (h *AccommodationHandler) ListAccommodations(c *gin.Context) {
	accommodations, err := h.accommodationService.ListAccommodations(c.Request.Context())
	if err != nil {
		handleServiceError(c, err)
		return
	}

	response.SendSuccess(c, http.StatusOK, accommodations)
}

// CreateAccommodation godoc
// @Summary      숙소 등록
// @Tags         accommodations
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        request body dto.CreateAccommodationRequest true "숙소 등록 요청"
// @Success      201 {object} response.SuccessResponse{data=dto.AccommodationResponse} "숙소 등록 성공"
// @Failure      400 {object} response.ErrorResponse "잘못된 요청"
// @Failure      401 {object} response.ErrorResponse "인증 필요"
// @Failure      403 {object} response.ErrorResponse "관리자 권한 필요"
// @Router       /accommodations/ [post]
func (h *AccommodationHandler) CreateAccommodation(c *gin.Context) {
	var req dto.CreateAccommodationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.SendError(c, http.StatusBadRequest, response.ErrCodeValidation, "Invalid request body")
		return
	}

	accommodation, err := h.accommodationService.CreateAccommodation(c.Request.Context(), &req)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	response.SendSuccess(c, http.StatusCreated, accommodation)
}

// GetAccommodationStats godoc
// @Summary      숙소 통계
// @Description  숙소 수, 가격 통계, 전체 투표 수와 평균 평점을 조회합니다
// @Tags         accommodations
// @Produce      json
// @Success      200 {object} response.SuccessResponse{data=dto.AccommodationStatsResponse} "조회 성공"
// @Router       /accommodations/stats/ [get]
func (h *AccommodationHandler) GetAccommodationStats(c *gin.Context) {
	stats, err := h.accommodationService.GetAccommodationStats(c.Request.Context())
	if err != nil {
		handleServiceError(c, err)
		return
	}

	response.SendSuccess(c, http.StatusOK, stats)
}

// GetPopularAccommodations godoc
// @Summary      인기 숙소
// @Description  평균 평점이 높은 숙소 최대 5개를 조회합니다. 투표가 없는 숙소는 제외됩니다
// @Tags         accommodations
// @Produce      json
// @Success      200 {object} response.SuccessResponse{data=[]dto.PopularAccommodationResponse} "조회 성공"
// @Router       /accommodations/popular/ [get]
func (h *AccommodationHandler) GetPopularAccommodations(c *gin.Context) {
	popular, err := h.accommodationService.GetPopularAccommodations(c.Request.Context())
	if err != nil {
		handleServiceError(c, err)
		return
	}

	response.SendSuccess(c, http.StatusOK, popular)
}

// GetAccommodation godoc
// @Summary      숙소 조회
// @Tags         accommodations
// @Produce      json
// @Param        id path string true "Accommodation ID (UUID)"
// @Success      200 {object} response.SuccessResponse{data=dto.AccommodationResponse} "숙소 조회 성공"
// @Failure      400 {object} response.ErrorResponse "잘못된 Accommodation ID"
// @Failure      404 {object} response.ErrorResponse "숙소를 찾을 수 없음"
// @Router       /accommodations/{id}/ [get]
func (h *AccommodationHandler) GetAccommodation(c *gin.Context) {
	accommodationID, ok := parseIDParam(c, "id", "accommodation")
	if !ok {
		return
	}

	accommodation, err := h.accommodationService.GetAccommodation(c.Request.Context(), accommodationID)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	response.SendSuccess(c, http.StatusOK, accommodation)
}

// UpdateAccommodation godoc
// @Summary      숙소 수정
// @Description  전달된 필드만 수정합니다. PUT과 PATCH 모두 부분 수정입니다
// @Tags         accommodations
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id path string true "Accommodation ID (UUID)"
// @Param        request body dto.UpdateAccommodationRequest true "숙소 수정 요청"
// @Success      200 {object} response.SuccessResponse{data=dto.AccommodationResponse} "숙소 수정 성공"
// @Failure      400 {object} response.ErrorResponse "잘못된 요청"
// @Failure      404 {object} response.ErrorResponse "숙소를 찾을 수 없음"
// @Router       /accommodations/{id}/ [put]
func (h *AccommodationHandler) UpdateAccommodation(c *gin.Context) {
	accommodationID, ok := parseIDParam(c, "id", "accommodation")
	if !ok {
		return
	}

	var req dto.UpdateAccommodationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.SendError(c, http.StatusBadRequest, response.ErrCodeValidation, "Invalid request body")
		return
	}

	accommodation, err := h.accommodationService.UpdateAccommodation(c.Request.Context(), accommodationID, &req)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	response.SendSuccess(c, http.StatusOK, accommodation)
}

// DeleteAccommodation godoc
// @Summary      숙소 삭제
// @Description  숙소와 이미지, 투표, 댓글을 함께 삭제합니다
// @Tags         accommodations
// @Security     BearerAuth
// @Param        id path string true "Accommodation ID (UUID)"
// @Success      204 "숙소 삭제 성공"
// @Failure      404 {object} response.ErrorResponse "숙소를 찾을 수 없음"
// @Router       /accommodations/{id}/ [delete]
func (h *AccommodationHandler) DeleteAccommodation(c *gin.Context) {
	accommodationID, ok := parseIDParam(c, "id", "accommodation")
	if !ok {
		return
	}

	if err := h.accommodationService.DeleteAccommodation(c.Request.Context(), accommodationID); err != nil {
		handleServiceError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// ListImages godoc
// @Summary      숙소 이미지 목록
// @Tags         accommodations
// @Produce      json
// @Param        id path string true "Accommodation ID (UUID)"
// @Success      200 {object} response.SuccessResponse{data=[]dto.ImageResponse} "조회 성공"
// @Failure      404 {object} response.ErrorResponse "숙소를 찾을 수 없음"
// @Router       /accommodations/{id}/images/ [get]
func (h *AccommodationHandler) ListImages(c *gin.Context) {
	accommodationID, ok := parseIDParam(c, "id", "accommodation")
	if !ok {
		return
	}

	images, err := h.accommodationService.ListImages(c.Request.Context(), accommodationID)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	response.SendSuccess(c, http.StatusOK, images)
}

// UploadImage godoc
// @Summary      숙소 이미지 업로드
// @Description  jpg, jpeg, png, gif, webp 이미지를 최대 5MB까지 업로드합니다
// @Tags         accommodations
// @Accept       multipart/form-data
// @Produce      json
// @Security     BearerAuth
// @Param        id path string true "Accommodation ID (UUID)"
// @Param        image formData file true "이미지 파일"
// @Param        alt_text formData string false "대체 텍스트"
// @Param        order formData int false "표시 순서"
// @Success      201 {object} response.SuccessResponse{data=dto.ImageResponse} "업로드 성공"
// @Failure      400 {object} response.ErrorResponse "잘못된 파일"
// @Failure      404 {object} response.ErrorResponse "숙소를 찾을 수 없음"
// @Router       /accommodations/{id}/images/upload/ [post]
func (h *AccommodationHandler) UploadImage(c *gin.Context) {
	accommodationID, ok := parseIDParam(c, "id", "accommodation")
	if !ok {
		return
	}

	fileHeader, err := c.FormFile("image")
	if err != nil {
		response.SendError(c, http.StatusBadRequest, response.ErrCodeValidation, "Image file is required")
		return
	}

	var req dto.UploadImageRequest
	if err := c.ShouldBind(&req); err != nil {
		response.SendError(c, http.StatusBadRequest, response.ErrCodeValidation, "Invalid upload fields")
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		response.SendError(c, http.StatusBadRequest, response.ErrCodeValidation, "Failed to read image file")
		return
	}
	defer file.Close()

	image, err := h.accommodationService.UploadImage(c.Request.Context(), accommodationID, &service.ImageUpload{
		Filename:    fileHeader.Filename,
		ContentType: fileHeader.Header.Get("Content-Type"),
		Size:        fileHeader.Size,
		Body:        file,
		AltText:     req.AltText,
		Order:       req.Order,
	})
	if err != nil {
		handleServiceError(c, err)
		return
	}

	response.SendSuccess(c, http.StatusCreated, image)
}

// DeleteImage godoc
// @Summary      숙소 이미지 삭제
// @Tags         accommodations
// @Security     BearerAuth
// @Param        id path string true "Image ID (UUID)"
// @Success      204 "삭제 성공"
// @Failure      404 {object} response.ErrorResponse "이미지를 찾을 수 없음"
// @Router       /accommodations/images/{id}/ [delete]
func (h *AccommodationHandler) DeleteImage(c *gin.Context) {
	imageID, ok := parseIDParam(c, "id", "image")
	if !ok {
		return
	}

	if err := h.accommodationService.DeleteImage(c.Request.Context(), imageID); err != nil {
		handleServiceError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}
