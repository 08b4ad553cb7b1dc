package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"ArcadeFlow/internal/api"
	"ArcadeFlow/internal/config"
	"ArcadeFlow/internal/logging"
	"ArcadeFlow/internal/repository"
	"ArcadeFlow/internal/service"
	"ArcadeFlow/internal/session"

	"github.com/gin-contrib/pprof"
	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"
)

func newServeCmd(cfgFile *string) *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Start the HTTP API",
		RunE: func(cmd *cobra.Command, args []string) error {
			return serve(*cfgFile)
		},
	}
}

func serve(cfgFile string) error {
	// 1. 加载配置文件
	cfg, err := config.LoadConfig(cfgFile)
	if err != nil {
		return err
	}

	// 2. 初始化日志
	logger := logging.New(cfg.Log)
	logger.Info("配置文件加载成功")

	// 3. 存储
	repos, closeRepos, err := openRepositories(cfg, logger)
	if err != nil {
		return err
	}
	defer closeRepos()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if cfg.Store.Seed {
		seeded, err := repository.Seed(ctx, repos, time.Now())
		if err != nil {
			return fmt.Errorf("写入演示数据失败: %w", err)
		}
		if seeded {
			logger.Info("空库，已写入演示数据")
		}
	}

	// 4. 会话与业务服务
	store, closeSessions, err := openSessionStore(cfg, logger)
	if err != nil {
		return err
	}
	defer closeSessions()
	sessions := session.NewService(store, cfg.Session.TTL, logger)
	svc := service.NewServices(repos, logger)

	if cfg.Sweeper.Cron != "" {
		c, err := svc.Sweeper.Schedule(cfg.Sweeper.Cron, cfg.Sweeper.Timeout)
		if err != nil {
			return err
		}
		defer c.Stop()
	}

	// 5. Gin
	gin.SetMode(cfg.Server.Mode)
	r := gin.New()
	r.Use(gin.Recovery(), api.RequestLogger(logger), api.CORS(cfg.Server.CORSOrigins))

	// 注册ppof 方便调试和监测性能问题
	pprof.Register(r)
	logger.Infof("Gin运行模式: %s", cfg.Server.Mode)

	api.RegisterRoutes(r, svc, sessions, api.AdminAuth{
		Username: cfg.Admin.Username,
		Password: cfg.Admin.Password,
	}, logger)

	// 6. 启动服务，收到信号后优雅退出
	srv := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.Server.Port),
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}
	errCh := make(chan error, 1)
	go func() {
		logger.Infof("服务启动成功，端口：%d", cfg.Server.Port)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("启动服务失败: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	logger.Info("收到退出信号，正在关闭服务…")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("关闭服务失败: %w", err)
	}
	return nil
}
