package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"nutrilens-api/internal/api"
	"nutrilens-api/internal/core/nutrition"
	"nutrilens-api/internal/core/translate"
	"nutrilens-api/internal/infrastructure/config"
	"nutrilens-api/internal/infrastructure/database"
	"nutrilens-api/internal/pkg/common"

	"go.uber.org/zap"
)

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		fmt.Printf("Failed to load config: %v\n", err)
		os.Exit(1)
	}

	if err := common.InitLogger(cfg.LogLevel); err != nil {
		fmt.Printf("Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer common.Sync()

	common.LogInfo("Configuration loaded",
		zap.String("env", cfg.App.Env),
		zap.String("catalog_path", cfg.Catalog.Path),
		zap.String("target_language", cfg.Google.TargetLanguage),
	)

	// The pipeline cannot serve a single request without its catalog, so a
	// load failure is fatal here rather than per-request.
	catalog, err := nutrition.Load(cfg.Catalog.Path)
	if err != nil {
		common.LogFatal("Failed to load nutrition catalog", zap.Error(err))
	}

	db, err := database.Connect(cfg)
	if err != nil {
		common.LogFatal("Failed to connect to database", zap.Error(err))
	}

	translationCache, err := translate.NewCache(&cfg.Cache)
	if err != nil {
		// Cache is an optimization, not a dependency.
		common.LogWarn("Translation cache unavailable, continuing without it", zap.Error(err))
		translationCache = nil
	}
	defer translationCache.Close()

	router, err := api.SetupRouter(cfg, db, catalog, translationCache)
	if err != nil {
		common.LogError("Failed to setup router", zap.Error(err))
		os.Exit(1)
	}

	srv := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Server.Port),
		Handler:      router,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	go func() {
		common.LogInfo("Starting server",
			zap.String("version", cfg.App.Version),
			zap.String("env", cfg.App.Env),
			zap.Int("port", cfg.Server.Port),
		)

		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			common.LogError("Failed to start server", zap.Error(err))
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	common.LogInfo("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		common.LogError("Server forced to shutdown", zap.Error(err))
		os.Exit(1)
	}

	common.LogInfo("Server exited")
}
