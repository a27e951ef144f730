package health

import (
	"net/http"
	"runtime"
	"time"

	"plantlens/internal/core/gallery"
	"plantlens/internal/infrastructure/config"
	"plantlens/internal/pkg/common"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// HealthResponse 健康檢查響應
type HealthResponse struct {
	Status    string                 `json:"status"`
	Timestamp time.Time              `json:"timestamp"`
	Version   string                 `json:"version"`
	Runtime   map[string]interface{} `json:"runtime"`
	Gallery   *GalleryStatus         `json:"gallery,omitempty"`
}

// GalleryStatus 圖鑑儲存後端狀態
type GalleryStatus struct {
	Enabled   bool `json:"enabled"`
	Reachable bool `json:"reachable"`
}

// HealthCheck 健康檢查處理器
func HealthCheck(c *gin.Context) {
	cfg, exists := c.Get("config")
	if !exists {
		common.LogError("Configuration not found in context")
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Configuration not found",
		})
		return
	}
	config, ok := cfg.(*config.Config)
	if !ok {
		common.LogError("Invalid configuration type in context")
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Invalid configuration type",
		})
		return
	}

	// 獲取運行時信息
	var m runtime.MemStats
	runtime.ReadMemStats(&m)

	response := HealthResponse{
		Status:    "ok",
		Timestamp: time.Now(),
		Version:   config.App.Version,
		Runtime: map[string]interface{}{
			"goroutines": runtime.NumGoroutine(),
			"memory": map[string]interface{}{
				"alloc":       m.Alloc,
				"total_alloc": m.TotalAlloc,
				"sys":         m.Sys,
				"num_gc":      m.NumGC,
			},
		},
	}

	// 圖鑑儲存後端狀態
	status := &GalleryStatus{Enabled: config.Gallery.Enabled}
	if store, exists := c.Get("gallery_store"); exists {
		if s, ok := store.(*gallery.Store); ok && s != nil {
			status.Reachable = s.Ping(c.Request.Context()) == nil
		}
	}
	response.Gallery = status

	common.LogDebug("Health check request",
		zap.String("client_ip", c.ClientIP()),
		zap.String("path", c.Request.URL.Path),
	)

	c.JSON(http.StatusOK, response)
}

// ReadinessCheck 就緒檢查處理器。
// 圖鑑儲存啟用但不可達時回報未就緒，其餘外部來源皆為盡力而為。
func ReadinessCheck(c *gin.Context) {
	if store, exists := c.Get("gallery_store"); exists {
		if s, ok := store.(*gallery.Store); ok && s != nil {
			if err := s.Ping(c.Request.Context()); err != nil {
				c.JSON(http.StatusServiceUnavailable, gin.H{
					"status": "not ready",
					"reason": "gallery storage unreachable",
				})
				return
			}
		}
	}

	c.JSON(http.StatusOK, gin.H{
		"status": "ready",
	})
}

// LivenessCheck 存活檢查處理器
func LivenessCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status": "alive",
	})
}
