package handlers

import (
	"net/http"

	"recipe-admin/internal/core/importer"
	"recipe-admin/internal/pkg/common"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// ImportHandler 批次匯入處理程序
type ImportHandler struct {
	service *importer.Service
}

// NewImportHandler 創建批次匯入處理程序
func NewImportHandler(svc *importer.Service) *ImportHandler {
	return &ImportHandler{service: svc}
}

// BatchRequest 批次匯入請求
type BatchRequest struct {
	URLs     []string                 `json:"urls" binding:"required,min=1"`
	Existing importer.ExistingRecipes `json:"existing"`
}

// HandleBatch 批次擷取候選網址並標記重複
func (h *ImportHandler) HandleBatch(c *gin.Context) {
	requestID := ensureRequestID(c)

	var req BatchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		common.LogError("請求格式無效",
			zap.Error(err),
			zap.String("request_id", requestID),
		)
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	result, err := h.service.ImportBatch(c.Request.Context(), req.URLs, req.Existing)
	if err != nil {
		common.LogError("批次匯入失敗",
			zap.Error(err),
			zap.String("request_id", requestID),
		)

		common.WriteErrorResponse(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}

// DuplicatesRequest 重複偵測請求
type DuplicatesRequest struct {
	Candidates []importer.RecipeCandidate `json:"candidates" binding:"required"`
	Existing   importer.ExistingRecipes   `json:"existing"`
}

// HandleDuplicates 比對候選與既有食譜的相似度並標記重複
func (h *ImportHandler) HandleDuplicates(c *gin.Context) {
	requestID := ensureRequestID(c)

	var req DuplicatesRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		common.LogError("請求格式無效",
			zap.Error(err),
			zap.String("request_id", requestID),
		)
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	candidates := importer.DetectDuplicates(req.Candidates, req.Existing)

	duplicates := 0
	for _, cand := range candidates {
		if cand.IsDuplicate {
			duplicates++
		}
	}

	c.JSON(http.StatusOK, gin.H{
		"candidates": candidates,
		"duplicates": duplicates,
	})
}
