package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"recipe-admin/internal/api"
	"recipe-admin/internal/core/cache"
	"recipe-admin/internal/core/catalog"
	"recipe-admin/internal/infrastructure/config"
	"recipe-admin/internal/pkg/common"

	"github.com/joho/godotenv"
	"go.uber.org/zap"
)

func main() {
	// 載入 .env
	if err := godotenv.Load(); err != nil {
		fmt.Println("Warning: .env file not found")
	}

	// 載入設定
	cfg, err := config.LoadConfig()
	if err != nil {
		fmt.Printf("Failed to load config: %v\n", err)
		os.Exit(1)
	}

	// 初始化 logger（需在載入 config 後）
	if err := common.InitLogger(cfg.LogLevel); err != nil {
		fmt.Printf("Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer common.Sync()

	common.LogInfo("載入設定",
		zap.String("catalog_path", cfg.Catalog.Path),
		zap.String("extractor_url", cfg.Import.ExtractorURL),
		zap.String("cache_backend", cfg.Cache.Backend),
	)

	// 載入食材目錄；目錄缺失時服務無法運作
	cat, err := catalog.Load(cfg.Catalog.Path)
	if err != nil {
		common.LogFatal("Failed to load ingredient catalog",
			zap.String("path", cfg.Catalog.Path),
			zap.Error(err),
		)
	}

	// 初始化快取
	cacheStore, err := cache.NewStore(cfg)
	if err != nil {
		// 只在快取開啟但初始化失敗時才 Fatal
		common.LogFatal("Failed to initialize cache store", zap.Error(err))
	}
	if cacheStore != nil {
		defer cacheStore.Close()
	}

	// 設置路由
	router, err := api.SetupRouter(cfg, cat, cacheStore)
	if err != nil {
		common.LogError("Failed to setup router", zap.Error(err))
		os.Exit(1)
	}

	// 設置 HTTP 服務器
	srv := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Server.Port),
		Handler:      router,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	// 啟動服務器
	go func() {
		common.LogInfo("啟動應用",
			zap.String("version", cfg.App.Version),
			zap.String("env", cfg.App.Env),
			zap.Bool("debug", cfg.App.Debug),
			zap.Int("port", cfg.Server.Port),
		)

		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			common.LogError("Failed to start server",
				zap.Error(err),
			)
			os.Exit(1)
		}
	}()

	// 等待中斷信號
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	common.LogInfo("Shutting down server...")

	// 設置關閉超時
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		common.LogError("Server forced to shutdown",
			zap.Error(err),
		)
		os.Exit(1)
	}

	common.LogInfo("Server exited")
}
