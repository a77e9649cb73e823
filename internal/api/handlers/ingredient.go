package handlers

import (
	"net/http"
	"strconv"

	"recipe-admin/internal/core/catalog"
	"recipe-admin/internal/core/ingredient"
	"recipe-admin/internal/pkg/common"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// IngredientHandler 食材處理程序
type IngredientHandler struct {
	normalizer *ingredient.Normalizer
}

// NewIngredientHandler 創建食材處理程序
func NewIngredientHandler(norm *ingredient.Normalizer) *IngredientHandler {
	return &IngredientHandler{normalizer: norm}
}

// ParseRequest 文字解析請求
type ParseRequest struct {
	Text string `json:"text"` // 多行食材文字，可為空
}

// ParseResponse 文字解析響應
type ParseResponse struct {
	Ingredients []common.RecipeIngredient `json:"ingredients"`
}

// HandleParse 解析多行食材文字為結構化清單
func (h *IngredientHandler) HandleParse(c *gin.Context) {
	requestID := ensureRequestID(c)

	var req ParseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		common.LogError("請求格式無效",
			zap.Error(err),
			zap.String("request_id", requestID),
		)
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	ingredients := h.normalizer.ParseText(req.Text)

	common.LogInfo("食材文字解析完成",
		zap.String("request_id", requestID),
		zap.Int("食材數", len(ingredients)),
	)

	c.JSON(http.StatusOK, ParseResponse{
		Ingredients: ingredients,
	})
}

// FormatRequest 文字還原請求
type FormatRequest struct {
	Ingredients []common.RecipeIngredient `json:"ingredients" binding:"required"`
}

// FormatResponse 文字還原響應
type FormatResponse struct {
	Text string `json:"text"`
}

// HandleFormat 將結構化食材還原為多行文字
func (h *IngredientHandler) HandleFormat(c *gin.Context) {
	requestID := ensureRequestID(c)

	var req FormatRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		common.LogError("請求格式無效",
			zap.Error(err),
			zap.String("request_id", requestID),
		)
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	c.JSON(http.StatusOK, FormatResponse{
		Text: h.normalizer.FormatText(req.Ingredients),
	})
}

// SearchResponse 目錄搜尋響應
type SearchResponse struct {
	Ingredients []catalog.StandardIngredient `json:"ingredients"`
}

// HandleSearch 目錄名稱搜尋
func (h *IngredientHandler) HandleSearch(c *gin.Context) {
	term := c.Query("q")
	if term == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing query parameter: q"})
		return
	}

	limit := catalog.DefaultSearchLimit
	if raw := c.Query("limit"); raw != "" {
		if v, err := strconv.Atoi(raw); err == nil && v > 0 {
			limit = v
		}
	}

	c.JSON(http.StatusOK, SearchResponse{
		Ingredients: h.normalizer.Search(term, limit),
	})
}

// HandleCategories 依分類返回全部目錄條目
func (h *IngredientHandler) HandleCategories(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"categories": h.normalizer.ByCategory(),
	})
}

// ensureRequestID 取出或生成請求 ID
func ensureRequestID(c *gin.Context) string {
	requestID := c.GetHeader("X-Request-ID")
	if requestID == "" {
		requestID = common.GenerateUUID()
		c.Header("X-Request-ID", requestID)
	}
	return requestID
}
