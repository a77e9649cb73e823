package handlers

import (
	"net/http"

	"recipe-admin/internal/core/nutrition"
	"recipe-admin/internal/pkg/common"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// NutritionHandler 營養計算處理程序
type NutritionHandler struct {
	aggregator *nutrition.Aggregator
}

// NewNutritionHandler 創建營養計算處理程序
func NewNutritionHandler(agg *nutrition.Aggregator) *NutritionHandler {
	return &NutritionHandler{aggregator: agg}
}

// CalculateRequest 營養計算請求
//
// Ingredients 與 Text 二擇一；同時提供時以 Ingredients 為準。
type CalculateRequest struct {
	Ingredients []common.RecipeIngredient `json:"ingredients"`
	Text        string                    `json:"text"`
	Servings    int                       `json:"servings"`
}

// HandleCalculate 計算食譜營養成分
func (h *NutritionHandler) HandleCalculate(c *gin.Context) {
	requestID := ensureRequestID(c)

	var req CalculateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		common.LogError("請求格式無效",
			zap.Error(err),
			zap.String("request_id", requestID),
		)
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	ingredients := req.Ingredients
	if len(ingredients) == 0 && req.Text != "" {
		ingredients = h.aggregator.ParseText(req.Text)
	}

	breakdown := h.aggregator.Calculate(ingredients, req.Servings)

	common.LogInfo("營養計算完成",
		zap.String("request_id", requestID),
		zap.Int("食材數", len(ingredients)),
		zap.Int("健康評分", breakdown.HealthScore),
	)

	c.JSON(http.StatusOK, breakdown)
}

// CompareRequest 營養目標比對請求
type CompareRequest struct {
	Nutrition common.NutritionInfo `json:"nutrition" binding:"required"`
	Goals     nutrition.Goals      `json:"goals" binding:"required"`
}

// HandleCompare 將每份營養與每日目標比對
func (h *NutritionHandler) HandleCompare(c *gin.Context) {
	requestID := ensureRequestID(c)

	var req CompareRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		common.LogError("請求格式無效",
			zap.Error(err),
			zap.String("request_id", requestID),
		)
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	c.JSON(http.StatusOK, nutrition.CompareWithGoals(req.Nutrition, req.Goals))
}
