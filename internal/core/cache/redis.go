package cache

import (
	"context"
	"fmt"

	"recipe-admin/internal/infrastructure/config"
	"recipe-admin/internal/pkg/common"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
)

// RedisStore Redis 快取後端
type RedisStore struct {
	client *redis.Client
	config *config.CacheConfig
}

// NewRedisStore 創建 Redis 快取後端並測試連線
func NewRedisStore(cfg *config.CacheConfig) (*RedisStore, error) {
	client := redis.NewClient(&redis.Options{
		Addr: cfg.RedisAddr,
	})

	// 測試連接
	if err := client.Ping(context.Background()).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}

	common.LogInfo("Redis 快取已連線", zap.String("位址", cfg.RedisAddr))

	return &RedisStore{
		client: client,
		config: cfg,
	}, nil
}

// Get 獲取快取
func (s *RedisStore) Get(ctx context.Context, key string) (string, error) {
	data, err := s.client.Get(ctx, s.redisKey(key)).Result()
	if err != nil {
		if err == redis.Nil {
			common.LogCacheMiss("redis", key)
			return "", common.ErrCacheMiss
		}
		return "", fmt.Errorf("failed to get cache: %w", err)
	}

	common.LogCacheHit("redis", key)
	return data, nil
}

// Set 設置快取
func (s *RedisStore) Set(ctx context.Context, key, value string) error {
	if err := s.client.Set(ctx, s.redisKey(key), value, s.config.TTL).Err(); err != nil {
		return fmt.Errorf("failed to set cache: %w", err)
	}
	return nil
}

// redisKey 生成帶前綴的 Redis 鍵
func (s *RedisStore) redisKey(key string) string {
	return "extract:" + hashKey(key)
}

// Close 關閉 Redis 連線
func (s *RedisStore) Close() error {
	return s.client.Close()
}

// NewStore 依設定選擇快取後端；快取停用時返回 nil
func NewStore(cfg *config.Config) (Store, error) {
	if !cfg.Cache.Enabled {
		return nil, nil
	}

	if cfg.Cache.Backend == "redis" {
		return NewRedisStore(&cfg.Cache)
	}

	m := NewManager(cfg)
	if m == nil {
		return nil, nil
	}
	return m, nil
}
