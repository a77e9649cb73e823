package handlers

import (
	"net/http"

	"recipe-admin/internal/core/mealplan"
	"recipe-admin/internal/pkg/common"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// MealPlanHandler 餐期規劃處理程序
type MealPlanHandler struct {
	planner *mealplan.Planner
}

// NewMealPlanHandler 創建餐期規劃處理程序
func NewMealPlanHandler(planner *mealplan.Planner) *MealPlanHandler {
	return &MealPlanHandler{planner: planner}
}

// ShoppingListRequest 採購清單請求
type ShoppingListRequest struct {
	Recipes []mealplan.PlannedRecipe `json:"recipes" binding:"required,min=1"`
}

// HandleShoppingList 合併多道食譜為一份採購清單
func (h *MealPlanHandler) HandleShoppingList(c *gin.Context) {
	requestID := ensureRequestID(c)

	var req ShoppingListRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		common.LogError("請求格式無效",
			zap.Error(err),
			zap.String("request_id", requestID),
		)
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	list := h.planner.BuildShoppingList(req.Recipes)

	common.LogInfo("採購清單產生完成",
		zap.String("request_id", requestID),
		zap.Int("食譜數", len(req.Recipes)),
		zap.Int("項目數", len(list.Items)),
	)

	c.JSON(http.StatusOK, list)
}
