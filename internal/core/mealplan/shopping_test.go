package mealplan

import (
	"os"
	"testing"

	"recipe-admin/internal/core/catalog"
	"recipe-admin/internal/core/ingredient"
	"recipe-admin/internal/pkg/common"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestMain(m *testing.M) {
	common.Logger = zap.NewNop()
	os.Exit(m.Run())
}

func newTestPlanner(t *testing.T) *Planner {
	t.Helper()
	cat, err := catalog.Load("")
	require.NoError(t, err)
	norm := ingredient.NewNormalizer(cat)
	return NewPlanner(cat, norm)
}

func findItem(t *testing.T, list *ShoppingList, id string) ShoppingItem {
	t.Helper()
	for _, item := range list.Items {
		if item.IngredientID == id {
			return item
		}
	}
	t.Fatalf("item %s not in shopping list", id)
	return ShoppingItem{}
}

func TestBuildShoppingListMergesCatalogItems(t *testing.T) {
	p := newTestPlanner(t)

	// 同一食材不同單位：0.5 kg 與 500 g 合併為 1000 g
	list := p.BuildShoppingList([]PlannedRecipe{
		{Title: "Phở bò", Ingredients: []common.RecipeIngredient{
			{IngredientID: "thit-bo", Amount: 0.5, Unit: "kg"},
		}},
		{Title: "Bò lúc lắc", Ingredients: []common.RecipeIngredient{
			{IngredientID: "thit-bo", Amount: 500, Unit: "g"},
		}},
	})

	item := findItem(t, list, "thit-bo")
	assert.InDelta(t, 1000, item.Amount, 0.001)
	assert.Equal(t, "g", item.Unit)
	assert.Equal(t, "Thịt bò", item.Name)
	assert.InDelta(t, 300000, item.EstimatedCost, 0.001) // 1000 × 300 VND
}

func TestBuildShoppingListScalesServings(t *testing.T) {
	p := newTestPlanner(t)

	// 食譜 2 人份，餐期要 4 人份：數量加倍
	list := p.BuildShoppingList([]PlannedRecipe{
		{
			Title:        "Cơm gà",
			Servings:     2,
			PlanServings: 4,
			Ingredients: []common.RecipeIngredient{
				{IngredientID: "thit-ga", Amount: 300, Unit: "g"},
			},
		},
	})

	item := findItem(t, list, "thit-ga")
	assert.InDelta(t, 600, item.Amount, 0.001)
}

func TestBuildShoppingListCustomIngredients(t *testing.T) {
	p := newTestPlanner(t)

	list := p.BuildShoppingList([]PlannedRecipe{
		{Title: "A", Ingredients: []common.RecipeIngredient{
			{IngredientID: "custom-kem-tuoi", Amount: 1, Unit: "hộp", Note: "kem tươi"},
			{IngredientID: "custom-kem-tuoi", Amount: 2, Unit: "hộp", Note: "kem tươi"},
			{IngredientID: "custom-kem-tuoi", Amount: 100, Unit: "ml", Note: "kem tươi"},
		}},
	})

	// 自訂食材只在單位相同時合併，且沒有價格資料
	require.Len(t, list.Items, 2)
	assert.Equal(t, 2, list.UnpricedItems)
	assert.InDelta(t, 0, list.TotalCost, 0.001)

	var boxes, ml float64
	for _, item := range list.Items {
		switch item.Unit {
		case "hộp":
			boxes = item.Amount
		case "ml":
			ml = item.Amount
		}
	}
	assert.InDelta(t, 3, boxes, 0.001)
	assert.InDelta(t, 100, ml, 0.001)
}

func TestBuildShoppingListCategoryOrder(t *testing.T) {
	p := newTestPlanner(t)

	// 輸入順序打亂，輸出依分類固定順序
	list := p.BuildShoppingList([]PlannedRecipe{
		{Title: "Canh chua", Ingredients: []common.RecipeIngredient{
			{IngredientID: "nuoc-mam", Amount: 30, Unit: "ml"}, // spice
			{IngredientID: "ca-chua", Amount: 200, Unit: "g"},  // vegetable
			{IngredientID: "ca-basa", Amount: 400, Unit: "g"},  // meat
		}},
	})

	require.Len(t, list.Items, 3)
	assert.Equal(t, "ca-basa", list.Items[0].IngredientID)
	assert.Equal(t, "ca-chua", list.Items[1].IngredientID)
	assert.Equal(t, "nuoc-mam", list.Items[2].IngredientID)
}

func TestBuildShoppingListTotalCost(t *testing.T) {
	p := newTestPlanner(t)

	list := p.BuildShoppingList([]PlannedRecipe{
		{Title: "A", Ingredients: []common.RecipeIngredient{
			{IngredientID: "thit-bo", Amount: 100, Unit: "g"}, // 100 × 300
			{IngredientID: "gao", Amount: 200, Unit: "g"},     // 200 × 20
		}},
	})

	assert.InDelta(t, 34000, list.TotalCost, 0.001)
	assert.Equal(t, 0, list.UnpricedItems)
}

func TestBuildShoppingListEmpty(t *testing.T) {
	p := newTestPlanner(t)

	list := p.BuildShoppingList(nil)
	assert.Empty(t, list.Items)
	assert.InDelta(t, 0, list.TotalCost, 0.001)
}
