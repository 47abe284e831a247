package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"teamup/internal/api/middleware"
	"teamup/internal/dto"
	"teamup/internal/service"
	"teamup/pkg/responses"
	"teamup/pkg/utils"
)

type OfferHandler struct {
	offerService service.OfferService
}

func NewOfferHandler(offerService service.OfferService) *OfferHandler {
	return &OfferHandler{
		offerService: offerService,
	}
}

// Apply 申请加入团队
// @Summary 用户向团队发起加入申请
// @Tags Offer
// @Accept json
// @Produce json
// @Param request body dto.OfferApplyRequest true "申请请求"
// @Success 200 {object} responses.Response{data=dto.OfferResponse}
// @Router /api/v1/offer/apply [post]
func (h *OfferHandler) Apply(c *gin.Context) {
	var req dto.OfferApplyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		responses.ErrorWithDetail(c, http.StatusBadRequest, "请求参数错误", utils.FormatValidationError(err))
		return
	}

	offer, err := h.offerService.Apply(c.Request.Context(), middleware.GetUserID(c), &req)
	if err != nil {
		responses.Error(c, err)
		return
	}
	responses.Success(c, offer)
}

// Invite 邀请用户加入
// @Summary 队长向用户发出邀请
// @Tags Offer
// @Accept json
// @Produce json
// @Param request body dto.OfferInviteRequest true "邀请请求"
// @Success 200 {object} responses.Response{data=dto.OfferResponse}
// @Router /api/v1/offer/invite [post]
func (h *OfferHandler) Invite(c *gin.Context) {
	var req dto.OfferInviteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		responses.ErrorWithDetail(c, http.StatusBadRequest, "请求参数错误", utils.FormatValidationError(err))
		return
	}

	offer, err := h.offerService.Invite(c.Request.Context(), middleware.GetUserID(c), &req)
	if err != nil {
		responses.Error(c, err)
		return
	}
	responses.Success(c, offer)
}

// Accept 接受提议
// @Summary 接受提议, 成功后加入团队
// @Tags Offer
// @Produce json
// @Param id path int64 true "提议ID"
// @Success 200 {object} responses.Response
// @Router /api/v1/offer/{id}/accept [post]
func (h *OfferHandler) Accept(c *gin.Context) {
	var param dto.IDParam
	if err := c.ShouldBindUri(&param); err != nil {
		responses.ErrorWithDetail(c, http.StatusBadRequest, "请求参数错误", utils.FormatValidationError(err))
		return
	}

	if err := h.offerService.Accept(c.Request.Context(), middleware.GetUserID(c), param.ID); err != nil {
		responses.Error(c, err)
		return
	}
	responses.SuccessWithMessage(c, "提议已接受", nil)
}

// Decline 拒绝提议
// @Summary 拒绝提议
// @Tags Offer
// @Produce json
// @Param id path int64 true "提议ID"
// @Success 200 {object} responses.Response
// @Router /api/v1/offer/{id}/decline [post]
func (h *OfferHandler) Decline(c *gin.Context) {
	var param dto.IDParam
	if err := c.ShouldBindUri(&param); err != nil {
		responses.ErrorWithDetail(c, http.StatusBadRequest, "请求参数错误", utils.FormatValidationError(err))
		return
	}

	if err := h.offerService.Decline(c.Request.Context(), middleware.GetUserID(c), param.ID); err != nil {
		responses.Error(c, err)
		return
	}
	responses.SuccessWithMessage(c, "提议已拒绝", nil)
}

// Cancel 撤回提议
// @Summary 发起方撤回待处理的提议
// @Tags Offer
// @Produce json
// @Param id path int64 true "提议ID"
// @Success 200 {object} responses.Response
// @Router /api/v1/offer/{id}/cancel [post]
func (h *OfferHandler) Cancel(c *gin.Context) {
	var param dto.IDParam
	if err := c.ShouldBindUri(&param); err != nil {
		responses.ErrorWithDetail(c, http.StatusBadRequest, "请求参数错误", utils.FormatValidationError(err))
		return
	}

	if err := h.offerService.Cancel(c.Request.Context(), middleware.GetUserID(c), param.ID); err != nil {
		responses.Error(c, err)
		return
	}
	responses.SuccessWithMessage(c, "提议已撤回", nil)
}

// ListByUser 我的提议分页
// @Summary 我收到或发出的提议分页
// @Tags Offer
// @Produce json
// @Param offered_by query string true "发起方" Enums(USER, LEADER)
// @Success 200 {object} responses.Response{data=dto.PageResponse}
// @Router /api/v1/offer/user [get]
func (h *OfferHandler) ListByUser(c *gin.Context) {
	var query dto.OfferListQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		responses.ErrorWithDetail(c, http.StatusBadRequest, "请求参数错误", utils.FormatValidationError(err))
		return
	}

	offers, total, err := h.offerService.ListByUser(middleware.GetUserID(c), &query)
	if err != nil {
		responses.Error(c, err)
		return
	}
	responses.Success(c, dto.NewPageResponse(offers, total, query.GetPage(), query.GetPageSize()))
}

// ListByTeam 团队提议分页
// @Summary 本团队收到或发出的提议分页, 仅队长可查看
// @Tags Offer
// @Produce json
// @Param offered_by query string true "发起方" Enums(USER, LEADER)
// @Success 200 {object} responses.Response{data=dto.PageResponse}
// @Router /api/v1/offer/team [get]
func (h *OfferHandler) ListByTeam(c *gin.Context) {
	var query dto.OfferListQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		responses.ErrorWithDetail(c, http.StatusBadRequest, "请求参数错误", utils.FormatValidationError(err))
		return
	}

	offers, total, err := h.offerService.ListByTeam(middleware.GetUserID(c), &query)
	if err != nil {
		responses.Error(c, err)
		return
	}
	responses.Success(c, dto.NewPageResponse(offers, total, query.GetPage(), query.GetPageSize()))
}
