package api

import (
	"context"
	"net/http"
	"time"

	authHandler "nutrilens-api/internal/api/handlers/auth"
	foodHandler "nutrilens-api/internal/api/handlers/food"
	"nutrilens-api/internal/api/handlers/health"
	mealsHandler "nutrilens-api/internal/api/handlers/meals"
	"nutrilens-api/internal/api/middleware"
	"nutrilens-api/internal/core/analysis"
	"nutrilens-api/internal/core/meal"
	"nutrilens-api/internal/core/nutrition"
	"nutrilens-api/internal/core/translate"
	"nutrilens-api/internal/core/user"
	"nutrilens-api/internal/core/vision"
	"nutrilens-api/internal/infrastructure/config"
	"nutrilens-api/internal/pkg/common"

	"github.com/gin-contrib/cors"
	"github.com/gin-contrib/requestid"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

const (
	// Per-request deadline. Covers the Vision call plus the translation
	// fan-out on the analyze route.
	timeoutDuration = 60 * time.Second
	// Request body ceiling across all routes; per-route upload limits are
	// tighter.
	maxBodySize = 10 << 20
)

// SetupRouter wires services and routes onto a gin engine.
func SetupRouter(cfg *config.Config, db *gorm.DB, catalog *nutrition.Catalog, translationCache *translate.Cache) (*gin.Engine, error) {
	common.LogInfo("Starting router setup",
		zap.Bool("debug_mode", cfg.App.Debug),
		zap.String("version", cfg.App.Version),
		zap.String("environment", cfg.App.Env),
	)

	if !cfg.App.Debug {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()

	router.Use(middleware.Recovery())
	router.Use(middleware.Logger())
	router.Use(requestid.New())

	router.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization", "X-Request-ID"},
		ExposeHeaders:    []string{"Content-Length", "X-Request-ID"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	router.Use(middleware.BodySizeLimit(maxBodySize))

	if cfg.RateLimit.Enabled {
		router.Use(middleware.RateLimit(cfg.RateLimit.Requests, cfg.RateLimit.Window))
	}

	// Per-request timeout.
	router.Use(func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(c.Request.Context(), timeoutDuration)
		defer cancel()

		c.Request = c.Request.WithContext(ctx)
		c.Next()

		if ctx.Err() == context.DeadlineExceeded {
			common.LogError("Request timeout",
				zap.String("path", c.Request.URL.Path),
				zap.String("request_id", c.GetHeader("X-Request-ID")),
				zap.Duration("timeout", timeoutDuration),
			)
			c.AbortWithStatusJSON(http.StatusGatewayTimeout, gin.H{
				"error": "Request timeout",
				"code":  common.ErrCodeGatewayTimeout,
			})
		}
	})

	common.LogInfo("Initializing services",
		zap.Int("catalog_records", catalog.Len()),
		zap.Bool("translation_cache", translationCache != nil),
		zap.String("target_language", cfg.Google.TargetLanguage),
	)

	visionClient := vision.NewClient(cfg)
	translator := translate.NewService(cfg, translationCache)
	pipeline := analysis.NewPipeline(translator, catalog)

	userSvc := user.NewService(db, &cfg.Auth)
	mealSvc := meal.NewService(db)

	authH := authHandler.NewHandler(userSvc)
	mealsH := mealsHandler.NewHandler(mealSvc, cfg)

	router.GET("/health", health.HealthCheck(cfg))
	router.GET("/ready", health.ReadinessCheck(db))
	router.GET("/live", health.LivenessCheck)

	// Uploaded meal photos are served back as static files.
	router.Static("/uploads", cfg.Upload.Dir)

	api := router.Group("/api/v1")
	{
		authGroup := api.Group("/auth")
		{
			authGroup.POST("/register", authH.HandleRegister)
			authGroup.POST("/login", authH.HandleLogin)
		}

		foodGroup := api.Group("/food")
		{
			foodGroup.POST("/analyze", foodHandler.HandleAnalyze(cfg, visionClient, pipeline))
		}

		mealsGroup := api.Group("/meals")
		mealsGroup.Use(middleware.Auth(&cfg.Auth))
		{
			mealsGroup.POST("", mealsH.HandleCreate)
			mealsGroup.GET("", mealsH.HandleList)
			mealsGroup.GET("/:id", mealsH.HandleGet)
			mealsGroup.DELETE("/:id", mealsH.HandleDelete)
		}
	}

	common.LogInfo("Router setup completed",
		zap.Bool("debug_mode", cfg.App.Debug),
		zap.String("version", cfg.App.Version),
		zap.Duration("timeout", timeoutDuration),
		zap.Int64("max_body_size", maxBodySize),
	)

	return router, nil
}
