package api

import (
	"context"
	"net/http"
	"time"

	"recipe-admin/internal/api/handlers"
	"recipe-admin/internal/api/handlers/health"
	"recipe-admin/internal/api/middleware"
	"recipe-admin/internal/core/cache"
	"recipe-admin/internal/core/catalog"
	"recipe-admin/internal/core/importer"
	"recipe-admin/internal/core/ingredient"
	"recipe-admin/internal/core/mealplan"
	"recipe-admin/internal/core/nutrition"
	"recipe-admin/internal/infrastructure/config"
	"recipe-admin/internal/pkg/common"

	"github.com/gin-contrib/cors"
	"github.com/gin-contrib/requestid"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

const (
	// 超時設置
	timeoutDuration = 60 * time.Second
	// 請求體大小限制 (10MB)
	maxBodySize = 10 << 20
)

// SetupRouter 設置路由
func SetupRouter(cfg *config.Config, cat *catalog.Catalog, cacheStore cache.Store) (*gin.Engine, error) {
	common.LogInfo("Starting router setup",
		zap.Bool("debug_mode", cfg.App.Debug),
		zap.String("version", cfg.App.Version),
		zap.String("environment", cfg.App.Env),
	)

	// 設置 gin 模式
	if !cfg.App.Debug {
		gin.SetMode(gin.ReleaseMode)
	}

	// 創建路由引擎
	router := gin.New()

	// 註冊基礎中間件
	router.Use(middleware.Recovery())
	router.Use(middleware.Logger())
	router.Use(requestid.New()) // 自動生成請求 ID

	// CORS 設置
	router.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization", "X-Request-ID"},
		ExposeHeaders:    []string{"Content-Length", "X-Request-ID"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	// 請求體大小限制
	router.Use(middleware.BodySizeLimit(maxBodySize))

	// 速率限制與重複請求抑制
	if cfg.RateLimit.Enabled {
		router.Use(middleware.RateLimit(cfg.RateLimit.Requests, cfg.RateLimit.Window))
	}
	router.Use(middleware.Deduplication(cfg))

	common.LogInfo("Initializing services",
		zap.Bool("cache_enabled", cfg.Cache.Enabled),
		zap.Int("import_workers", cfg.Import.Workers),
		zap.String("extractor_url", cfg.Import.ExtractorURL),
		zap.Duration("timeout", timeoutDuration),
	)

	// 初始化核心服務
	normalizer := ingredient.NewNormalizer(cat)
	aggregator := nutrition.NewAggregator(cat, normalizer)
	planner := mealplan.NewPlanner(cat, normalizer)

	extractClient := importer.NewExtractClient(cfg)
	importSvc := importer.NewService(cfg, extractClient, cacheStore)

	// 全局中間件：設置超時與共用依賴
	router.Use(func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(c.Request.Context(), timeoutDuration)
		defer cancel()
		c.Request = c.Request.WithContext(ctx)

		c.Set("config", cfg)
		c.Set("catalog", cat)

		c.Next()

		// 檢查是否超時
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
		ingredientHandler := handlers.NewIngredientHandler(normalizer)
		nutritionHandler := handlers.NewNutritionHandler(aggregator)
		importHandler := handlers.NewImportHandler(importSvc)
		mealPlanHandler := handlers.NewMealPlanHandler(planner)

		// 食材解析與目錄查詢
		ingredientGroup := api.Group("/ingredients")
		{
			ingredientGroup.POST("/parse", ingredientHandler.HandleParse)
			ingredientGroup.POST("/format", ingredientHandler.HandleFormat)
			ingredientGroup.GET("/search", ingredientHandler.HandleSearch)
			ingredientGroup.GET("/categories", ingredientHandler.HandleCategories)
		}

		// 營養計算
		nutritionGroup := api.Group("/nutrition")
		{
			nutritionGroup.POST("/calculate", nutritionHandler.HandleCalculate)
			nutritionGroup.POST("/compare", nutritionHandler.HandleCompare)
		}

		// 批次匯入
		importGroup := api.Group("/import")
		{
			importGroup.POST("/batch", importHandler.HandleBatch)
			importGroup.POST("/duplicates", importHandler.HandleDuplicates)
		}

		// 餐期規劃
		mealPlanGroup := api.Group("/mealplan")
		{
			mealPlanGroup.POST("/shopping-list", mealPlanHandler.HandleShoppingList)
		}
	}

	common.LogInfo("Router setup completed successfully",
		zap.Bool("debug_mode", cfg.App.Debug),
		zap.String("version", cfg.App.Version),
		zap.String("environment", cfg.App.Env),
		zap.Int("catalog_size", len(cat.All())),
		zap.Duration("timeout", timeoutDuration),
		zap.Int64("max_body_size", maxBodySize),
	)

	return router, nil
}
