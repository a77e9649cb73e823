package health

import (
	"net/http"
	"runtime"
	"time"

	"recipe-admin/internal/core/catalog"
	"recipe-admin/internal/infrastructure/config"
	"recipe-admin/internal/pkg/common"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// HealthResponse 健康檢查響應
type HealthResponse struct {
	Status    string                 `json:"status"`
	Timestamp time.Time              `json:"timestamp"`
	Version   string                 `json:"version"`
	Runtime   map[string]interface{} `json:"runtime"`
	Catalog   *CatalogStatus         `json:"catalog,omitempty"`
}

// CatalogStatus 食材目錄狀態
type CatalogStatus struct {
	Ingredients int `json:"ingredients"`
	Categories  int `json:"categories"`
}

// HealthCheck 健康檢查處理器
func HealthCheck(c *gin.Context) {
	// 獲取配置
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

	// 目錄狀態
	if raw, exists := c.Get("catalog"); exists {
		if cat, ok := raw.(*catalog.Catalog); ok {
			response.Catalog = &CatalogStatus{
				Ingredients: len(cat.All()),
				Categories:  len(catalog.Categories),
			}
		}
	}

	common.LogInfo("Health check request",
		zap.String("client_ip", c.ClientIP()),
		zap.String("path", c.Request.URL.Path),
	)

	c.JSON(http.StatusOK, response)
}

// ReadinessCheck 就緒檢查處理器：目錄未載入視為未就緒
func ReadinessCheck(c *gin.Context) {
	raw, exists := c.Get("catalog")
	if !exists {
		c.JSON(http.StatusServiceUnavailable, gin.H{
			"status": "not ready",
			"error":  common.ErrCatalogNotLoaded.Message,
		})
		return
	}
	cat, ok := raw.(*catalog.Catalog)
	if !ok || len(cat.All()) == 0 {
		c.JSON(http.StatusServiceUnavailable, gin.H{
			"status": "not ready",
			"error":  common.ErrCatalogNotLoaded.Message,
		})
		return
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
