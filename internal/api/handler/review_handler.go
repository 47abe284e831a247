package handler

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"teamup/internal/api/middleware"
	"teamup/internal/dto"
	"teamup/internal/service"
	"teamup/pkg/responses"
	"teamup/pkg/utils"
)

type ReviewHandler struct {
	reviewService service.ReviewService
}

func NewReviewHandler(reviewService service.ReviewService) *ReviewHandler {
	return &ReviewHandler{
		reviewService: reviewService,
	}
}

// Submit 提交评价
// @Summary 对已完成团队的队友批量提交评价
// @Tags Review
// @Accept json
// @Produce json
// @Param id path int64 true "团队ID"
// @Param request body dto.ReviewCreateRequest true "评价请求"
// @Success 200 {object} responses.Response
// @Router /api/v1/review/team/{id} [post]
func (h *ReviewHandler) Submit(c *gin.Context) {
	var param dto.IDParam
	if err := c.ShouldBindUri(&param); err != nil {
		responses.ErrorWithDetail(c, http.StatusBadRequest, "请求参数错误", utils.FormatValidationError(err))
		return
	}
	var req dto.ReviewCreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		responses.ErrorWithDetail(c, http.StatusBadRequest, "请求参数错误", utils.FormatValidationError(err))
		return
	}

	if err := h.reviewService.Submit(c.Request.Context(), middleware.GetUserID(c), param.ID, &req, time.Now()); err != nil {
		responses.Error(c, err)
		return
	}
	responses.SuccessWithMessage(c, "评价已提交", nil)
}

// ListReviewableTeams 可评价团队列表
// @Summary 可评价的已完成团队列表
// @Tags Review
// @Produce json
// @Success 200 {object} responses.Response{data=[]dto.ReviewableTeamResponse}
// @Router /api/v1/review/team [get]
func (h *ReviewHandler) ListReviewableTeams(c *gin.Context) {
	teams, err := h.reviewService.ListReviewableTeams(middleware.GetUserID(c), time.Now())
	if err != nil {
		responses.Error(c, err)
		return
	}
	responses.Success(c, teams)
}
