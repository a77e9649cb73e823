package handlers

import (
	"net/http"
	"testing"
	"time"

	"recipe-admin/internal/core/importer"
	"recipe-admin/internal/infrastructure/config"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func newImportRouter(maxQueue int) *gin.Engine {
	cfg := &config.Config{
		Import: config.ImportConfig{
			Workers:      1,
			MaxQueueSize: maxQueue,
			ExtractorURL: "http://127.0.0.1:1",
			Timeout:      time.Second,
		},
	}
	svc := importer.NewService(cfg, importer.NewExtractClient(cfg), nil)
	handler := NewImportHandler(svc)

	router := gin.New()
	router.POST("/import/batch", handler.HandleBatch)
	return router
}

func TestHandleBatchOversizedRejected(t *testing.T) {
	router := newImportRouter(2)

	w := postJSON(t, router, "/import/batch", gin.H{
		"urls": []string{
			"https://example.com/pho-bo",
			"https://example.com/bun-cha",
			"https://example.com/goi-cuon",
		},
	})

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "exceeds limit")
}

func TestHandleBatchInvalidBody(t *testing.T) {
	router := newImportRouter(5)

	w := postJSON(t, router, "/import/batch", gin.H{"urls": []string{}})

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "Invalid request format")
}
