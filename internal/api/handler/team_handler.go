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

type TeamHandler struct {
	teamService service.TeamService
}

func NewTeamHandler(teamService service.TeamService) *TeamHandler {
	return &TeamHandler{
		teamService: teamService,
	}
}

// Create 创建团队
// @Summary 创建团队, 创建者成为队长
// @Tags Team
// @Accept json
// @Produce json
// @Param request body dto.TeamCreateRequest true "创建请求"
// @Success 200 {object} responses.Response{data=dto.TeamResponse}
// @Router /api/v1/team [post]
func (h *TeamHandler) Create(c *gin.Context) {
	var req dto.TeamCreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		responses.ErrorWithDetail(c, http.StatusBadRequest, "请求参数错误", utils.FormatValidationError(err))
		return
	}

	team, err := h.teamService.Create(c.Request.Context(), middleware.GetUserID(c), &req)
	if err != nil {
		responses.Error(c, err)
		return
	}
	responses.Success(c, team)
}

// Update 更新团队信息
// @Summary 更新团队信息, 仅队长可操作
// @Tags Team
// @Accept json
// @Produce json
// @Param request body dto.TeamUpdateRequest true "更新请求"
// @Success 200 {object} responses.Response{data=dto.TeamResponse}
// @Router /api/v1/team [put]
func (h *TeamHandler) Update(c *gin.Context) {
	var req dto.TeamUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		responses.ErrorWithDetail(c, http.StatusBadRequest, "请求参数错误", utils.FormatValidationError(err))
		return
	}

	team, err := h.teamService.Update(middleware.GetUserID(c), &req)
	if err != nil {
		responses.Error(c, err)
		return
	}
	responses.Success(c, team)
}

// GetByID 获取团队详情
// @Summary 获取团队详情, 非队员访问时累计浏览量
// @Tags Team
// @Produce json
// @Param id path int64 true "团队ID"
// @Success 200 {object} responses.Response{data=dto.TeamResponse}
// @Router /api/v1/team/{id} [get]
func (h *TeamHandler) GetByID(c *gin.Context) {
	var param dto.IDParam
	if err := c.ShouldBindUri(&param); err != nil {
		responses.ErrorWithDetail(c, http.StatusBadRequest, "请求参数错误", utils.FormatValidationError(err))
		return
	}

	team, err := h.teamService.GetByID(middleware.GetUserID(c), param.ID)
	if err != nil {
		responses.Error(c, err)
		return
	}
	responses.Success(c, team)
}

// GetCurrent 获取我所在的团队
// @Summary 获取我当前所在的团队
// @Tags Team
// @Produce json
// @Success 200 {object} responses.Response{data=dto.TeamResponse}
// @Router /api/v1/team/current [get]
func (h *TeamHandler) GetCurrent(c *gin.Context) {
	team, err := h.teamService.GetCurrent(middleware.GetUserID(c))
	if err != nil {
		responses.Error(c, err)
		return
	}
	responses.Success(c, team)
}

// ListRecruiting 招募中团队分页
// @Summary 招募中团队分页, 可按职位过滤
// @Tags Team
// @Produce json
// @Param position query string false "职位" Enums(DESIGNER, BACKEND, FRONTEND, MANAGER)
// @Success 200 {object} responses.Response{data=dto.PageResponse}
// @Router /api/v1/team [get]
func (h *TeamHandler) ListRecruiting(c *gin.Context) {
	var query dto.TeamListQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		responses.ErrorWithDetail(c, http.StatusBadRequest, "请求参数错误", utils.FormatValidationError(err))
		return
	}

	teams, total, err := h.teamService.ListRecruiting(&query)
	if err != nil {
		responses.Error(c, err)
		return
	}
	responses.Success(c, dto.NewPageResponse(teams, total, query.GetPage(), query.GetPageSize()))
}

// Fire 移出队员
// @Summary 移出队员, 仅队长可操作
// @Tags Team
// @Accept json
// @Produce json
// @Param request body dto.FireMemberRequest true "移出请求"
// @Success 200 {object} responses.Response
// @Router /api/v1/team/fire [post]
func (h *TeamHandler) Fire(c *gin.Context) {
	var req dto.FireMemberRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		responses.ErrorWithDetail(c, http.StatusBadRequest, "请求参数错误", utils.FormatValidationError(err))
		return
	}

	if err := h.teamService.Fire(c.Request.Context(), middleware.GetUserID(c), req.UserID); err != nil {
		responses.Error(c, err)
		return
	}
	responses.SuccessWithMessage(c, "队员已移出", nil)
}

// Quit 退出团队
// @Summary 退出团队, 队长不可退出
// @Tags Team
// @Produce json
// @Success 200 {object} responses.Response
// @Router /api/v1/team/quit [post]
func (h *TeamHandler) Quit(c *gin.Context) {
	if err := h.teamService.Quit(c.Request.Context(), middleware.GetUserID(c)); err != nil {
		responses.Error(c, err)
		return
	}
	responses.SuccessWithMessage(c, "已退出团队", nil)
}

// Complete 项目完成
// @Summary 标记项目完成, 仅队长可操作
// @Tags Team
// @Accept json
// @Produce json
// @Param request body dto.TeamCompleteRequest true "完成请求"
// @Success 200 {object} responses.Response
// @Router /api/v1/team/complete [post]
func (h *TeamHandler) Complete(c *gin.Context) {
	var req dto.TeamCompleteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		responses.ErrorWithDetail(c, http.StatusBadRequest, "请求参数错误", utils.FormatValidationError(err))
		return
	}

	if err := h.teamService.Complete(c.Request.Context(), middleware.GetUserID(c), &req); err != nil {
		responses.Error(c, err)
		return
	}
	responses.SuccessWithMessage(c, "项目已完成", nil)
}

// Disband 解散团队
// @Summary 解散团队, 仅队长可操作
// @Tags Team
// @Produce json
// @Success 200 {object} responses.Response
// @Router /api/v1/team/disband [post]
func (h *TeamHandler) Disband(c *gin.Context) {
	if err := h.teamService.Disband(c.Request.Context(), middleware.GetUserID(c)); err != nil {
		responses.Error(c, err)
		return
	}
	responses.SuccessWithMessage(c, "团队已解散", nil)
}
