package api

import (
	"context"
	"net/http"
	"time"

	"plantlens/internal/api/handlers/health"
	plantHandler "plantlens/internal/api/handlers/plant"
	"plantlens/internal/api/middleware"
	"plantlens/internal/core/care"
	"plantlens/internal/core/gallery"
	"plantlens/internal/core/identify"
	imageService "plantlens/internal/core/image"
	"plantlens/internal/infrastructure/config"
	"plantlens/internal/pkg/common"

	"github.com/gin-contrib/cors"
	"github.com/gin-contrib/requestid"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

const (
	// 請求超時：辨識需上傳圖片到外部服務，放寬至 60 秒
	timeoutDuration = 60 * time.Second
	// 請求體大小上限需略高於圖片上限，容納 multipart 邊界與其他欄位
	bodySizeMargin = 1 << 20
)

// SetupRouter 設置路由。galleryStore 可為 nil（圖鑑儲存停用）。
func SetupRouter(cfg *config.Config, galleryStore *gallery.Store) (*gin.Engine, error) {
	common.LogInfo("Starting router setup",
		zap.Bool("debug_mode", cfg.App.Debug),
		zap.String("version", cfg.App.Version),
		zap.String("environment", cfg.App.Env),
	)

	// 設置 gin 模式
	if !cfg.App.Debug {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()

	// 註冊基礎中間件
	router.Use(middleware.Recovery())
	router.Use(middleware.Logger())
	router.Use(requestid.New())

	// CORS 設置
	router.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization", "X-Request-ID", "X-User-ID"},
		ExposeHeaders:    []string{"Content-Length", "X-Request-ID"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	// 請求體大小限制
	router.Use(middleware.BodySizeLimit(cfg.Image.MaxSizeBytes + bodySizeMargin))

	// 限流
	if cfg.RateLimit.Enabled {
		router.Use(middleware.RateLimit(cfg.RateLimit.Requests, cfg.RateLimit.Window))
	}

	// 請求去重
	router.Use(middleware.Deduplication(cfg))

	common.LogInfo("Initializing services",
		zap.Bool("cache_enabled", cfg.Cache.Enabled),
		zap.Bool("gallery_enabled", cfg.Gallery.Enabled),
		zap.Bool("perenual_configured", cfg.Perenual.APIKey != ""),
		zap.Duration("timeout", timeoutDuration),
	)

	// 初始化服務
	imageSvc := imageService.NewService(cfg.Image.MaxSizeBytes)
	identifySvc := identify.NewService(identify.NewClient(cfg))
	reconciler := care.NewReconciler(
		care.NewClient(cfg),
		care.NewDataset(),
		care.NewOutcomeCache(cfg),
	)

	// 全局中間件：設置超時與上下文注入
	router.Use(func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(c.Request.Context(), timeoutDuration)
		defer cancel()
		c.Request = c.Request.WithContext(ctx)

		c.Set("config", cfg)
		c.Set("gallery_store", galleryStore)

		c.Next()

		if ctx.Err() == context.DeadlineExceeded {
			common.LogError("Request timeout",
				zap.String("path", c.Request.URL.Path),
				zap.String("request_id", c.GetHeader("X-Request-ID")),
				zap.Duration("timeout", timeoutDuration),
			)
			c.JSON(http.StatusGatewayTimeout, gin.H{
				"error": "Request timeout",
				"code":  "REQUEST_TIMEOUT",
				"details": gin.H{
					"timeout": timeoutDuration.String(),
				},
			})
			c.Abort()
			return
		}
	})

	// 健康檢查路由
	router.GET("/health", health.HealthCheck)
	router.GET("/ready", health.ReadinessCheck)
	router.GET("/live", health.LivenessCheck)

	// API 路由組
	api := router.Group("/api/v1")
	{
		plantsGroup := api.Group("/plants")
		{
			// 植物辨識
			plantsGroup.POST("/identify", plantHandler.HandleIdentify(identifySvc, imageSvc))

			// 照護資料（外部來源 + 本地後備）
			plantsGroup.GET("/care", plantHandler.HandleCare(reconciler))

			// 照護資料（僅本地）
			plantsGroup.GET("/care/local", plantHandler.HandleCareLocal(reconciler))

			// 目錄瀏覽
			plantsGroup.GET("/browse", plantHandler.HandleBrowse())
		}

		galleryGroup := api.Group("/gallery")
		{
			galleryGroup.POST("", plantHandler.HandleGallerySave(galleryStore))
			galleryGroup.GET("", plantHandler.HandleGalleryList(galleryStore))
			galleryGroup.DELETE("/:id", plantHandler.HandleGalleryDelete(galleryStore))
		}
	}

	common.LogInfo("Router setup completed successfully",
		zap.Bool("debug_mode", cfg.App.Debug),
		zap.String("version", cfg.App.Version),
		zap.String("environment", cfg.App.Env),
		zap.Bool("gallery_store_initialized", galleryStore != nil),
		zap.Duration("timeout", timeoutDuration),
		zap.Int64("max_body_size", cfg.Image.MaxSizeBytes+bodySizeMargin),
	)

	return router, nil
}
