package common

import (
	"fmt"
	"strings"
)

// NutritionInfo 營養資訊（每份或整道菜的總量）
type NutritionInfo struct {
	Calories float64 `json:"calories"` // 大卡
	Protein  float64 `json:"protein"`  // 克
	Carbs    float64 `json:"carbs"`    // 克
	Fat      float64 `json:"fat"`      // 克
	Fiber    float64 `json:"fiber"`    // 克
	Sodium   float64 `json:"sodium"`   // 毫克
}

// Add 累加另一份營養資訊
func (n *NutritionInfo) Add(other NutritionInfo) {
	n.Calories += other.Calories
	n.Protein += other.Protein
	n.Carbs += other.Carbs
	n.Fat += other.Fat
	n.Fiber += other.Fiber
	n.Sodium += other.Sodium
}

// Scale 按比例縮放營養資訊
func (n NutritionInfo) Scale(factor float64) NutritionInfo {
	return NutritionInfo{
		Calories: n.Calories * factor,
		Protein:  n.Protein * factor,
		Carbs:    n.Carbs * factor,
		Fat:      n.Fat * factor,
		Fiber:    n.Fiber * factor,
		Sodium:   n.Sodium * factor,
	}
}

// RecipeIngredient 食譜中的單一食材項目
type RecipeIngredient struct {
	IngredientID string  `json:"ingredient_id"`  // 目錄 id 或 custom-<n>
	Amount       float64 `json:"amount"`         // 數量（單位由 Unit 決定）
	Unit         string  `json:"unit"`           // 單位，可能需要換算成 baseUnit
	Note         string  `json:"note,omitempty"` // 備註，不影響計算
}

// RecipeRecord 既有食譜（重複比對用）
type RecipeRecord struct {
	Title        string `json:"title"`
	Ingredients  string `json:"ingredients"`
	Instructions string `json:"instructions"`
}

// ContentText 組合食材與作法文字，供內容相似度比對
func (r RecipeRecord) ContentText() string {
	return strings.TrimSpace(r.Ingredients + " " + r.Instructions)
}

// FormatAmount 格式化數量，整數不帶小數點
func FormatAmount(amount float64) string {
	if amount == float64(int64(amount)) {
		return fmt.Sprintf("%d", int64(amount))
	}
	return strings.TrimRight(strings.TrimRight(fmt.Sprintf("%.2f", amount), "0"), ".")
}

// StringSliceToString 將字符串切片轉換為頓號分隔的字符串
func StringSliceToString(slice []string) string {
	if len(slice) == 0 {
		return ""
	}
	return strings.Join(slice, "、")
}
