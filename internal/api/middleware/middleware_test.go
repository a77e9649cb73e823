package middleware

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"

	"recipe-admin/internal/infrastructure/config"
	"recipe-admin/internal/pkg/common"
)

func TestMain(m *testing.M) {
	common.Logger = zap.NewNop()
	gin.SetMode(gin.TestMode)
	os.Exit(m.Run())
}

func perform(router *gin.Engine, method, path, body string) *httptest.ResponseRecorder {
	var reader *bytes.Reader
	if body == "" {
		reader = bytes.NewReader(nil)
	} else {
		reader = bytes.NewReader([]byte(body))
	}
	req := httptest.NewRequest(method, path, reader)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestBodySizeLimitRejectsOversized(t *testing.T) {
	router := gin.New()
	router.Use(BodySizeLimit(16))
	router.POST("/echo", func(c *gin.Context) {
		c.Status(http.StatusOK)
	})

	w := perform(router, http.MethodPost, "/echo", strings.Repeat("x", 32))
	assert.Equal(t, http.StatusRequestEntityTooLarge, w.Code)
	assert.Contains(t, w.Body.String(), "Request body too large")
}

func TestBodySizeLimitAllowsSmall(t *testing.T) {
	router := gin.New()
	router.Use(BodySizeLimit(16))
	router.POST("/echo", func(c *gin.Context) {
		c.Status(http.StatusOK)
	})

	w := perform(router, http.MethodPost, "/echo", "ok")
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestDeduplicationBlocksRepeatedPost(t *testing.T) {
	cfg := &config.Config{DedupWindow: 200 * time.Millisecond}
	router := gin.New()
	router.Use(Deduplication(cfg))
	router.POST("/import", func(c *gin.Context) {
		c.Status(http.StatusOK)
	})

	body := `{"urls":["https://example.com/pho"]}`

	first := perform(router, http.MethodPost, "/import", body)
	assert.Equal(t, http.StatusOK, first.Code)

	second := perform(router, http.MethodPost, "/import", body)
	assert.Equal(t, http.StatusTooManyRequests, second.Code)
	assert.Contains(t, second.Body.String(), common.ErrCodeTooManyRequests)
}

func TestDeduplicationDistinguishesBodies(t *testing.T) {
	cfg := &config.Config{DedupWindow: 200 * time.Millisecond}
	router := gin.New()
	router.Use(Deduplication(cfg))
	router.POST("/import", func(c *gin.Context) {
		c.Status(http.StatusOK)
	})

	first := perform(router, http.MethodPost, "/import", `{"urls":["https://example.com/a"]}`)
	assert.Equal(t, http.StatusOK, first.Code)

	second := perform(router, http.MethodPost, "/import", `{"urls":["https://example.com/b"]}`)
	assert.Equal(t, http.StatusOK, second.Code)
}

func TestDeduplicationAllowsAfterWindow(t *testing.T) {
	cfg := &config.Config{DedupWindow: 20 * time.Millisecond}
	router := gin.New()
	router.Use(Deduplication(cfg))
	router.POST("/retry", func(c *gin.Context) {
		c.Status(http.StatusOK)
	})

	body := `{"urls":["https://example.com/bun-bo"]}`

	first := perform(router, http.MethodPost, "/retry", body)
	assert.Equal(t, http.StatusOK, first.Code)

	time.Sleep(50 * time.Millisecond)

	again := perform(router, http.MethodPost, "/retry", body)
	assert.Equal(t, http.StatusOK, again.Code)
}

func TestDeduplicationIgnoresGet(t *testing.T) {
	cfg := &config.Config{DedupWindow: time.Second}
	router := gin.New()
	router.Use(Deduplication(cfg))
	router.GET("/list", func(c *gin.Context) {
		c.Status(http.StatusOK)
	})

	for i := 0; i < 3; i++ {
		w := perform(router, http.MethodGet, "/list", "")
		assert.Equal(t, http.StatusOK, w.Code)
	}
}
