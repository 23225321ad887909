package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"

	_ "github.com/jcpao-csu/staff-directory-api/api/swagger"
	"github.com/jcpao-csu/staff-directory-api/internal/handler"
	"github.com/jcpao-csu/staff-directory-api/internal/middleware"
	"github.com/jcpao-csu/staff-directory-api/internal/repository"
	"github.com/jcpao-csu/staff-directory-api/internal/service"
	"github.com/jcpao-csu/staff-directory-api/pkg/cache"
	"github.com/jcpao-csu/staff-directory-api/pkg/config"
	"github.com/jcpao-csu/staff-directory-api/pkg/database"
	"github.com/jcpao-csu/staff-directory-api/pkg/logger"
	corsmiddleware "github.com/jcpao-csu/staff-directory-api/pkg/middleware/cors"
	reqidmiddleware "github.com/jcpao-csu/staff-directory-api/pkg/middleware/requestid"
	"github.com/jcpao-csu/staff-directory-api/pkg/storage"
)

// @title JCPAO Staff Directory API
// @version 1.0.0
// @description Staff directory, birthdays and workforce analytics
// @BasePath /api/v1
// @schemes http https

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	logr, err := logger.New(cfg)
	if err != nil {
		log.Fatalf("failed to init logger: %v", err)
	}
	defer logr.Sync() //nolint:errcheck

	if cfg.Env == config.EnvProduction {
		gin.SetMode(gin.ReleaseMode)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	db, err := database.NewPostgres(ctx, cfg.Database)
	if err != nil {
		logr.Sugar().Fatalw("database unavailable", "error", err)
	}
	defer db.Close()

	metrics := service.NewMetricsService()

	// cacheClient stays a nil interface when Redis is off so the repository treats it as absent.
	var cacheClient redis.UniversalClient
	if cfg.Directory.CacheEnabled {
		rc, err := cache.NewRedis(ctx, cfg.Redis)
		if err != nil {
			logr.Sugar().Warnw("redis unavailable, directory cache disabled", "error", err)
		} else {
			cacheClient = rc
		}
	}
	cacheRepo := repository.NewCacheRepository(cacheClient, logr)
	defer cacheRepo.Close() //nolint:errcheck
	cacheSvc := service.NewCacheService(cacheRepo, metrics, cfg.Directory.CacheTTL, logr, cacheClient != nil)

	dirRepo := repository.NewDirectoryRepository(db, cfg.Directory.EmployeeView, cfg.Directory.PetView).WithObserver(metrics)
	activityRepo := repository.NewActivityRepository(db, cfg.Directory.ActivityTable)

	dirSvc := service.NewDirectoryService(dirRepo, cacheSvc, metrics, service.DirectoryServiceConfig{CacheTTL: cfg.Directory.CacheTTL}, logr)
	dashboardSvc := service.NewDashboardService(dirSvc, logr)
	activitySvc := service.NewActivityService(activityRepo, metrics, service.ActivityConfig{
		Workers:    cfg.Activity.Workers,
		BufferSize: cfg.Activity.BufferSize,
		MaxRetries: cfg.Activity.MaxRetries,
		RetryDelay: cfg.Activity.RetryDelay,
		Timeout:    cfg.Activity.Timeout,
	}, logr)
	activitySvc.Start(ctx)
	defer activitySvc.Stop()

	if _, err := dirSvc.BuildDirectory(ctx); err != nil {
		logr.Sugar().Warnw("initial directory build failed", "error", err)
	}

	validate := handler.NewValidator()
	checks := map[string]handler.Pinger{"database": dirRepo}
	if cacheClient != nil {
		checks["cache"] = cacheRepo
	}

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(reqidmiddleware.Middleware())
	r.Use(logger.GinMiddleware(logr))
	r.Use(corsmiddleware.New(cfg.CORS.AllowedOrigins))
	r.Use(middleware.Metrics(metrics, "/metrics"))

	metricsHandler := handler.NewMetricsHandler(metrics, checks)
	r.GET("/health", metricsHandler.Health)
	r.GET("/ready", metricsHandler.Ready)
	r.GET("/metrics", metricsHandler.Prometheus)

	if cfg.Env != config.EnvProduction {
		r.GET("/docs/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	api := r.Group(cfg.APIPrefix)
	api.Use(middleware.WithResponseMeta())

	directoryHandler := handler.NewDirectoryHandler(dirSvc, validate)
	api.GET("/directory", directoryHandler.List)
	api.GET("/directory/options", directoryHandler.Options)
	api.GET("/directory/birthdays", directoryHandler.Birthdays)
	api.GET("/directory/profile", directoryHandler.Profile)
	api.POST("/directory/refresh", directoryHandler.Refresh)

	dashboardHandler := handler.NewDashboardHandler(dashboardSvc)
	api.GET("/dashboard", dashboardHandler.Dashboard)
	api.GET("/dashboard/breakdowns/:field", dashboardHandler.Breakdown)

	activityHandler := handler.NewActivityHandler(activitySvc, validate)
	api.POST("/activity", activityHandler.Log)

	api.GET("/metrics/summary", metricsHandler.Snapshot)

	if cfg.Exports.Enabled {
		exportSvc, err := newExportService(cfg, dirSvc, metrics, logr)
		if err != nil {
			logr.Sugar().Fatalw("exports storage unavailable", "error", err)
		}
		exportHandler := handler.NewExportHandler(exportSvc, validate)
		api.POST("/directory/exports", exportHandler.Create)
		api.GET("/export/:token", exportHandler.Download)
		go runExportCleanup(ctx, exportSvc, cfg.Exports.CleanupInterval, logr)
	}

	srv := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.Port),
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		logr.Sugar().Infow("server starting", "addr", srv.Addr, "env", cfg.Env)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logr.Sugar().Fatalw("server failed", "error", err)
		}
	}()

	<-ctx.Done()
	logr.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logr.Sugar().Errorw("graceful shutdown failed", "error", err)
	}
}

func newExportService(cfg *config.Config, dir *service.DirectoryService, metrics *service.MetricsService, logr *zap.Logger) (*service.ExportService, error) {
	store, err := storage.NewLocalStorage(cfg.Exports.StorageDir)
	if err != nil {
		return nil, err
	}
	signer := storage.NewSignedURLSigner(cfg.Exports.SignedURLSecret, cfg.Exports.SignedURLTTL)
	return service.NewExportService(dir, store, signer, metrics, service.ExportConfig{
		APIPrefix: cfg.APIPrefix,
		ResultTTL: cfg.Exports.SignedURLTTL,
	}, logr), nil
}

func runExportCleanup(ctx context.Context, svc *service.ExportService, interval time.Duration, logr *zap.Logger) {
	if interval <= 0 {
		return
	}
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			removed, err := svc.Cleanup(0)
			if err != nil {
				logr.Sugar().Warnw("export cleanup failed", "error", err)
				continue
			}
			if len(removed) > 0 {
				logr.Sugar().Infow("expired exports removed", "count", len(removed))
			}
		}
	}
}
