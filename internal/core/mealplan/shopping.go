package mealplan

import (
	"sort"

	"recipe-admin/internal/core/catalog"
	"recipe-admin/internal/core/ingredient"
	"recipe-admin/internal/pkg/common"
)

// PlannedRecipe 排入餐期的食譜：食材清單與預計份數
type PlannedRecipe struct {
	Title        string                    `json:"title"`
	Ingredients  []common.RecipeIngredient `json:"ingredients"`
	Servings     int                       `json:"servings"`      // 食譜原始份數
	PlanServings int                       `json:"plan_servings"` // 餐期需要的份數，0 表示照原份數
}

// ShoppingItem 採購清單的單一項目
type ShoppingItem struct {
	IngredientID  string  `json:"ingredient_id"`
	Name          string  `json:"name"`
	Amount        float64 `json:"amount"`
	Unit          string  `json:"unit"`
	Category      string  `json:"category"`
	EstimatedCost float64 `json:"estimated_cost,omitempty"` // 0 表示無價格資料
}

// ShoppingList 採購清單，依分類分組
type ShoppingList struct {
	Items         []ShoppingItem `json:"items"`
	TotalCost     float64        `json:"total_cost"`     // 只加總有價格的項目
	UnpricedItems int            `json:"unpriced_items"` // 無價格資料的項目數
}

// Planner 採購清單產生器
type Planner struct {
	catalog    *catalog.Catalog
	normalizer *ingredient.Normalizer
}

// NewPlanner 創建採購清單產生器
func NewPlanner(cat *catalog.Catalog, norm *ingredient.Normalizer) *Planner {
	return &Planner{
		catalog:    cat,
		normalizer: norm,
	}
}

// mergeKey 合併鍵：目錄食材按 id 合併，自訂食材按 id 加單位
type mergeKey struct {
	id   string
	unit string
}

// BuildShoppingList 合併多道食譜的食材為一份採購清單。
// 目錄食材換算到基準單位後按 id 合併；自訂食材只在單位相同時合併。
// 份數縮放：plan_servings > 0 時按 plan/original 比例縮放
func (p *Planner) BuildShoppingList(recipes []PlannedRecipe) *ShoppingList {
	merged := make(map[mergeKey]*ShoppingItem)
	var order []mergeKey

	for _, recipe := range recipes {
		factor := 1.0
		if recipe.PlanServings > 0 && recipe.Servings > 0 {
			factor = float64(recipe.PlanServings) / float64(recipe.Servings)
		}

		for _, ing := range recipe.Ingredients {
			item, found := p.catalog.Get(ing.IngredientID)

			var key mergeKey
			var amount float64
			var unit string
			if found {
				// 目錄食材：換算到基準單位後合併
				key = mergeKey{id: item.ID}
				amount = ingredient.ConvertToBase(ing.Amount, ing.Unit, item.BaseUnit) * factor
				unit = item.BaseUnit
			} else {
				// 自訂食材：單位相同才能合併
				key = mergeKey{id: ing.IngredientID, unit: ing.Unit}
				amount = ing.Amount * factor
				unit = ing.Unit
			}

			if existing, ok := merged[key]; ok {
				existing.Amount += amount
				continue
			}

			entry := &ShoppingItem{
				IngredientID: ing.IngredientID,
				Name:         p.normalizer.DisplayName(ing),
				Amount:       amount,
				Unit:         unit,
				Category:     string(catalog.CategoryOther),
			}
			if found {
				entry.Category = string(item.Category)
			}
			merged[key] = entry
			order = append(order, key)
		}
	}

	list := &ShoppingList{}
	for _, key := range order {
		item := merged[key]

		// 成本估算：均價 × 基準單位數量
		if cat, ok := p.catalog.Get(item.IngredientID); ok && cat.AveragePrice > 0 {
			item.EstimatedCost = item.Amount * cat.AveragePrice
			list.TotalCost += item.EstimatedCost
		} else {
			list.UnpricedItems++
		}

		list.Items = append(list.Items, *item)
	}

	// 依分類固定順序排序，同分類保持出現順序
	rank := make(map[string]int, len(catalog.Categories))
	for i, c := range catalog.Categories {
		rank[string(c)] = i
	}
	sort.SliceStable(list.Items, func(i, j int) bool {
		ri, okI := rank[list.Items[i].Category]
		rj, okJ := rank[list.Items[j].Category]
		if !okI {
			ri = len(rank)
		}
		if !okJ {
			rj = len(rank)
		}
		if ri != rj {
			return ri < rj
		}
		return false
	})

	return list
}
