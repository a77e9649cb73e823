package catalog

import (
	"recipe-admin/internal/pkg/common"
)

// Category 食材分類
type Category string

const (
	CategoryMeat      Category = "meat"      // 肉類與海鮮
	CategoryVegetable Category = "vegetable" // 蔬菜類
	CategorySpice     Category = "spice"     // 香料與調味粉
	CategoryDairy     Category = "dairy"     // 乳製品與蛋
	CategoryOther     Category = "other"     // 其他
)

// Categories 固定分類清單（顯示順序）
var Categories = []Category{
	CategoryMeat,
	CategoryVegetable,
	CategorySpice,
	CategoryDairy,
	CategoryOther,
}

// StandardIngredient 標準食材（目錄條目，啟動時載入後唯讀）
type StandardIngredient struct {
	ID              string               `json:"id"`
	Name            string               `json:"name"`
	Category        Category             `json:"category"`
	BaseUnit        string               `json:"base_unit"`               // 基準單位（g、ml、quả 等）
	NutritionPer100 common.NutritionInfo `json:"nutrition_per_100"`       // 每 100 基準單位的營養
	AveragePrice    float64              `json:"average_price,omitempty"` // 每基準單位均價（VND），0 表示未知
}
