package middleware

import (
	"bytes"
	"crypto/sha256"
	"encoding/hex"
	"io"
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"recipe-admin/internal/infrastructure/config"
	"recipe-admin/internal/pkg/common"
)

// defaultDedupWindow 設定缺漏 dedup_window 時的去重視窗
const defaultDedupWindow = 1 * time.Second

// seenRequests 近期 POST 請求的指紋與時間，用於短視窗去重
var seenRequests = struct {
	sync.Mutex
	at map[string]time.Time
}{at: make(map[string]time.Time)}

var dedupCleanupOnce sync.Once

// dedupWindowOf 取得設定的去重視窗
func dedupWindowOf(cfg *config.Config) time.Duration {
	if cfg != nil && cfg.DedupWindow > 0 {
		return cfg.DedupWindow
	}
	return defaultDedupWindow
}

// startDedupCleanup 定期清除過期指紋（只啟動一次）
func startDedupCleanup(window time.Duration) {
	dedupCleanupOnce.Do(func() {
		go func() {
			ticker := time.NewTicker(10 * time.Minute)
			defer ticker.Stop()
			for range ticker.C {
				cutoff := time.Now().Add(-10 * window)
				seenRequests.Lock()
				for fp, at := range seenRequests.at {
					if at.Before(cutoff) {
						delete(seenRequests.at, fp)
					}
				}
				seenRequests.Unlock()
			}
		}()
	})
}

// requestFingerprint 以方法、路徑與請求體的 SHA-256 組成指紋。
// 請求體讀出後必須放回，後續處理程序才能再讀
func requestFingerprint(c *gin.Context) (string, error) {
	fp := c.Request.Method + ":" + c.Request.URL.Path
	if c.Request.Body == nil {
		return fp, nil
	}

	body, err := io.ReadAll(c.Request.Body)
	if err != nil {
		return "", err
	}
	c.Request.Body = io.NopCloser(bytes.NewReader(body))

	sum := sha256.Sum256(body)
	return fp + ":" + hex.EncodeToString(sum[:]), nil
}

// Deduplication 在 dedup_window 內抑制重複的 POST 請求
func Deduplication(cfg *config.Config) gin.HandlerFunc {
	window := dedupWindowOf(cfg)
	startDedupCleanup(window)

	return func(c *gin.Context) {
		if c.Request.Method != http.MethodPost {
			c.Next()
			return
		}

		fp, err := requestFingerprint(c)
		if err != nil {
			common.LogError("讀取請求體失敗", zap.Error(err))
			c.Next()
			return
		}

		now := time.Now()
		seenRequests.Lock()
		last, seen := seenRequests.at[fp]
		duplicate := seen && now.Sub(last) <= window
		if !duplicate {
			seenRequests.at[fp] = now
		}
		seenRequests.Unlock()

		if duplicate {
			c.AbortWithStatusJSON(http.StatusTooManyRequests, gin.H{
				"error": "Duplicate request",
				"code":  common.ErrCodeTooManyRequests,
			})
			return
		}

		c.Next()
	}
}
