package cache

import (
	"context"
	"os"
	"testing"
	"time"

	"recipe-admin/internal/infrastructure/config"
	"recipe-admin/internal/pkg/common"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestMain(m *testing.M) {
	common.Logger = zap.NewNop()
	os.Exit(m.Run())
}

func newCacheConfig(maxSize int, ttl time.Duration) *config.Config {
	return &config.Config{
		Cache: config.CacheConfig{
			Enabled:         true,
			Backend:         "memory",
			MaxSize:         maxSize,
			TTL:             ttl,
			CleanupInterval: time.Hour,
		},
	}
}

func TestManagerSetGet(t *testing.T) {
	m := NewManager(newCacheConfig(10, time.Minute))
	defer m.Close()
	ctx := context.Background()

	require.NoError(t, m.Set(ctx, "https://example.com/pho", `{"title":"Phở"}`))

	val, err := m.Get(ctx, "https://example.com/pho")
	require.NoError(t, err)
	assert.Equal(t, `{"title":"Phở"}`, val)
}

func TestManagerMiss(t *testing.T) {
	m := NewManager(newCacheConfig(10, time.Minute))
	defer m.Close()

	_, err := m.Get(context.Background(), "missing")
	assert.ErrorIs(t, err, common.ErrCacheMiss)
}

func TestManagerTTLExpiry(t *testing.T) {
	m := NewManager(newCacheConfig(10, 20*time.Millisecond))
	defer m.Close()
	ctx := context.Background()

	require.NoError(t, m.Set(ctx, "key", "value"))
	time.Sleep(50 * time.Millisecond)

	_, err := m.Get(ctx, "key")
	assert.ErrorIs(t, err, common.ErrCacheMiss)
}

func TestManagerLRUEviction(t *testing.T) {
	m := NewManager(newCacheConfig(2, time.Minute))
	defer m.Close()
	ctx := context.Background()

	require.NoError(t, m.Set(ctx, "a", "1"))
	require.NoError(t, m.Set(ctx, "b", "2"))

	// 提高 a 的使用次數，容量滿時應淘汰 b
	_, err := m.Get(ctx, "a")
	require.NoError(t, err)

	require.NoError(t, m.Set(ctx, "c", "3"))

	_, err = m.Get(ctx, "b")
	assert.ErrorIs(t, err, common.ErrCacheMiss)

	val, err := m.Get(ctx, "a")
	require.NoError(t, err)
	assert.Equal(t, "1", val)

	val, err = m.Get(ctx, "c")
	require.NoError(t, err)
	assert.Equal(t, "3", val)
}

func TestManagerDisabledReturnsNil(t *testing.T) {
	cfg := &config.Config{Cache: config.CacheConfig{Enabled: false}}
	assert.Nil(t, NewManager(cfg))
}

func TestManagerStats(t *testing.T) {
	m := NewManager(newCacheConfig(10, time.Minute))
	defer m.Close()
	ctx := context.Background()

	require.NoError(t, m.Set(ctx, "a", "1"))
	_, _ = m.Get(ctx, "a")
	_, _ = m.Get(ctx, "missing")

	stats := m.Stats()
	assert.Equal(t, int64(1), stats["hits"])
	assert.Equal(t, int64(1), stats["misses"])
	assert.Equal(t, 1, stats["size"])
}

func TestManagerCloseIdempotent(t *testing.T) {
	m := NewManager(newCacheConfig(10, time.Minute))
	require.NoError(t, m.Close())
	require.NoError(t, m.Close())
}

func TestNewStoreSelection(t *testing.T) {
	// 快取停用：無 store
	store, err := NewStore(&config.Config{Cache: config.CacheConfig{Enabled: false}})
	require.NoError(t, err)
	assert.Nil(t, store)

	// 記憶體後端
	store, err = NewStore(newCacheConfig(10, time.Minute))
	require.NoError(t, err)
	require.NotNil(t, store)
	defer store.Close()
	_, ok := store.(*Manager)
	assert.True(t, ok)
}
