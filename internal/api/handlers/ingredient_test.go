package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"

	"recipe-admin/internal/core/catalog"
	"recipe-admin/internal/core/ingredient"
	"recipe-admin/internal/core/mealplan"
	"recipe-admin/internal/core/nutrition"
	"recipe-admin/internal/pkg/common"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestMain(m *testing.M) {
	common.Logger = zap.NewNop()
	gin.SetMode(gin.TestMode)
	os.Exit(m.Run())
}

func newTestRouter(t *testing.T) *gin.Engine {
	t.Helper()

	cat, err := catalog.Load("")
	require.NoError(t, err)
	norm := ingredient.NewNormalizer(cat)
	agg := nutrition.NewAggregator(cat, norm)
	planner := mealplan.NewPlanner(cat, norm)

	ingredientHandler := NewIngredientHandler(norm)
	nutritionHandler := NewNutritionHandler(agg)
	mealPlanHandler := NewMealPlanHandler(planner)

	router := gin.New()
	router.POST("/ingredients/parse", ingredientHandler.HandleParse)
	router.POST("/ingredients/format", ingredientHandler.HandleFormat)
	router.GET("/ingredients/search", ingredientHandler.HandleSearch)
	router.GET("/ingredients/categories", ingredientHandler.HandleCategories)
	router.POST("/nutrition/calculate", nutritionHandler.HandleCalculate)
	router.POST("/nutrition/compare", nutritionHandler.HandleCompare)
	router.POST("/mealplan/shopping-list", mealPlanHandler.HandleShoppingList)
	return router
}

func postJSON(t *testing.T, router *gin.Engine, path string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()
	data, err := json.Marshal(body)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(data))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestHandleParse(t *testing.T) {
	router := newTestRouter(t)

	w := postJSON(t, router, "/ingredients/parse", gin.H{
		"text": "- 500g thịt bò\n- 200g bánh phở",
	})
	require.Equal(t, http.StatusOK, w.Code)
	assert.NotEmpty(t, w.Header().Get("X-Request-ID"))

	var resp ParseResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Len(t, resp.Ingredients, 2)
	assert.Equal(t, "thit-bo", resp.Ingredients[0].IngredientID)
	assert.Equal(t, "banh-pho", resp.Ingredients[1].IngredientID)
}

func TestHandleParseInvalidBody(t *testing.T) {
	router := newTestRouter(t)

	req := httptest.NewRequest(http.MethodPost, "/ingredients/parse", bytes.NewBufferString("not json"))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandleFormat(t *testing.T) {
	router := newTestRouter(t)

	w := postJSON(t, router, "/ingredients/format", gin.H{
		"ingredients": []common.RecipeIngredient{
			{IngredientID: "thit-bo", Amount: 500, Unit: "g"},
		},
	})
	require.Equal(t, http.StatusOK, w.Code)

	var resp FormatResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "500 g Thịt bò", resp.Text)
}

func TestHandleSearch(t *testing.T) {
	router := newTestRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/ingredients/search?q=thit&limit=2", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	require.Equal(t, http.StatusOK, w.Code)

	var resp SearchResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Len(t, resp.Ingredients, 2)
	assert.Equal(t, "Thịt bò", resp.Ingredients[0].Name)
}

func TestHandleSearchMissingQuery(t *testing.T) {
	router := newTestRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/ingredients/search", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandleCategories(t *testing.T) {
	router := newTestRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/ingredients/categories", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Categories map[string][]catalog.StandardIngredient `json:"categories"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.NotEmpty(t, resp.Categories["meat"])
	assert.NotEmpty(t, resp.Categories["spice"])
}

func TestHandleCalculateFromText(t *testing.T) {
	router := newTestRouter(t)

	w := postJSON(t, router, "/nutrition/calculate", gin.H{
		"text":     "200g thịt bò",
		"servings": 2,
	})
	require.Equal(t, http.StatusOK, w.Code)

	var resp nutrition.Breakdown
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, 2, resp.Servings)
	assert.InDelta(t, 500, resp.Total.Calories, 0.001)
	assert.InDelta(t, 250, resp.PerServing.Calories, 0.001)
}

func TestHandleCalculateFromIngredients(t *testing.T) {
	router := newTestRouter(t)

	w := postJSON(t, router, "/nutrition/calculate", gin.H{
		"ingredients": []common.RecipeIngredient{
			{IngredientID: "thit-bo", Amount: 100, Unit: "g"},
		},
		"servings": 1,
	})
	require.Equal(t, http.StatusOK, w.Code)

	var resp nutrition.Breakdown
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.InDelta(t, 250, resp.Total.Calories, 0.001)
}

func TestHandleCompare(t *testing.T) {
	router := newTestRouter(t)

	w := postJSON(t, router, "/nutrition/compare", gin.H{
		"nutrition": common.NutritionInfo{Calories: 500},
		"goals":     nutrition.Goals{Calories: 500},
	})
	require.Equal(t, http.StatusOK, w.Code)

	var resp nutrition.GoalComparison
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.InDelta(t, 100, resp.OverallScore, 0.001)
}

func TestHandleShoppingList(t *testing.T) {
	router := newTestRouter(t)

	w := postJSON(t, router, "/mealplan/shopping-list", gin.H{
		"recipes": []mealplan.PlannedRecipe{
			{Title: "Phở bò", Ingredients: []common.RecipeIngredient{
				{IngredientID: "thit-bo", Amount: 500, Unit: "g"},
			}},
		},
	})
	require.Equal(t, http.StatusOK, w.Code)

	var resp mealplan.ShoppingList
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Len(t, resp.Items, 1)
	assert.Equal(t, "thit-bo", resp.Items[0].IngredientID)
}

func TestHandleShoppingListEmptyRejected(t *testing.T) {
	router := newTestRouter(t)

	w := postJSON(t, router, "/mealplan/shopping-list", gin.H{"recipes": []mealplan.PlannedRecipe{}})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}
