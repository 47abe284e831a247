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

type UserHandler struct {
	userService   service.UserService
	reviewService service.ReviewService
}

func NewUserHandler(userService service.UserService, reviewService service.ReviewService) *UserHandler {
	return &UserHandler{
		userService:   userService,
		reviewService: reviewService,
	}
}

// GetMe 获取我的资料
// @Summary 获取我的资料
// @Tags User
// @Produce json
// @Success 200 {object} responses.Response{data=dto.UserResponse}
// @Router /api/v1/user/me [get]
func (h *UserHandler) GetMe(c *gin.Context) {
	user, err := h.userService.GetByID(middleware.GetUserID(c))
	if err != nil {
		responses.Error(c, err)
		return
	}
	responses.Success(c, user)
}

// GetByID 获取用户资料
// @Summary 获取用户资料
// @Tags User
// @Produce json
// @Param id path int64 true "用户ID"
// @Success 200 {object} responses.Response{data=dto.UserResponse}
// @Router /api/v1/user/{id} [get]
func (h *UserHandler) GetByID(c *gin.Context) {
	var param dto.IDParam
	if err := c.ShouldBindUri(&param); err != nil {
		responses.ErrorWithDetail(c, http.StatusBadRequest, "请求参数错误", utils.FormatValidationError(err))
		return
	}

	user, err := h.userService.GetByID(param.ID)
	if err != nil {
		responses.Error(c, err)
		return
	}
	responses.Success(c, user)
}

// Update 更新我的资料
// @Summary 更新我的资料
// @Tags User
// @Accept json
// @Produce json
// @Param request body dto.UserUpdateRequest true "更新请求"
// @Success 200 {object} responses.Response{data=dto.UserResponse}
// @Router /api/v1/user/me [put]
func (h *UserHandler) Update(c *gin.Context) {
	var req dto.UserUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		responses.ErrorWithDetail(c, http.StatusBadRequest, "请求参数错误", utils.FormatValidationError(err))
		return
	}

	user, err := h.userService.Update(middleware.GetUserID(c), &req)
	if err != nil {
		responses.Error(c, err)
		return
	}
	responses.Success(c, user)
}

// ListReviews 用户收到的评价分页
// @Summary 用户收到的评价分页
// @Tags User
// @Produce json
// @Param id path int64 true "用户ID"
// @Success 200 {object} responses.Response{data=dto.PageResponse}
// @Router /api/v1/user/{id}/review [get]
func (h *UserHandler) ListReviews(c *gin.Context) {
	var param dto.IDParam
	if err := c.ShouldBindUri(&param); err != nil {
		responses.ErrorWithDetail(c, http.StatusBadRequest, "请求参数错误", utils.FormatValidationError(err))
		return
	}
	var query dto.PageQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		responses.ErrorWithDetail(c, http.StatusBadRequest, "请求参数错误", utils.FormatValidationError(err))
		return
	}

	reviews, total, err := h.reviewService.ListPageByUser(param.ID, query.GetPage(), query.GetPageSize())
	if err != nil {
		responses.Error(c, err)
		return
	}
	responses.Success(c, dto.NewPageResponse(reviews, total, query.GetPage(), query.GetPageSize()))
}
