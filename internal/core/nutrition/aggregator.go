package nutrition

import (
	"math"

	"recipe-admin/internal/core/catalog"
	"recipe-admin/internal/core/ingredient"
	"recipe-admin/internal/pkg/common"
)

// 參考每日攝取量
const (
	DailyCalories = 2000 // 大卡
	DailyProtein  = 50   // 克
	DailyCarbs    = 300  // 克
	DailyFat      = 65   // 克
	DailyFiber    = 25   // 克
	DailySodium   = 2300 // 毫克
)

// BaselineHealthScore 空食譜的中性健康分數
const BaselineHealthScore = 50

// MacroDistribution 三大營養素熱量佔比，總和為 100
type MacroDistribution struct {
	ProteinPercent float64 `json:"protein_percent"`
	CarbsPercent   float64 `json:"carbs_percent"`
	FatPercent     float64 `json:"fat_percent"`
}

// IngredientBreakdown 單一食材的營養明細
type IngredientBreakdown struct {
	Name       string               `json:"name"`
	Amount     float64              `json:"amount"`
	Unit       string               `json:"unit"`
	Nutrition  common.NutritionInfo `json:"nutrition"`
	Percentage float64              `json:"percentage"` // 佔整道菜熱量的百分比
}

// Breakdown 營養彙總結果，純推導值，輸入相同結果必然相同
type Breakdown struct {
	Servings          int                   `json:"servings"`
	Total             common.NutritionInfo  `json:"total"`
	PerServing        common.NutritionInfo  `json:"per_serving"`
	DailyValuePercent common.NutritionInfo  `json:"daily_value_percent"` // 整數百分比
	MacroDistribution MacroDistribution     `json:"macro_distribution"`
	HealthScore       int                   `json:"health_score"` // 0–100
	Ingredients       []IngredientBreakdown `json:"ingredients"`
	Warnings          []string              `json:"warnings"`
	Recommendations   []string              `json:"recommendations"`
}

// Aggregator 營養彙總器
type Aggregator struct {
	catalog    *catalog.Catalog
	normalizer *ingredient.Normalizer
}

// NewAggregator 創建營養彙總器
func NewAggregator(cat *catalog.Catalog, norm *ingredient.Normalizer) *Aggregator {
	return &Aggregator{
		catalog:    cat,
		normalizer: norm,
	}
}

// ParseText 解析多行食材文字，供直接由原始文字計算營養使用
func (a *Aggregator) ParseText(text string) []common.RecipeIngredient {
	return a.normalizer.ParseText(text)
}

// Calculate 由食材清單與份數計算營養彙總。
// servings 小於 1 一律按 1 計；未知食材按零營養計，不回傳錯誤
func (a *Aggregator) Calculate(ingredients []common.RecipeIngredient, servings int) *Breakdown {
	if servings < 1 {
		servings = 1
	}

	result := &Breakdown{
		Servings:    servings,
		Ingredients: make([]IngredientBreakdown, 0, len(ingredients)),
	}

	// 逐項換算並累加
	for _, ing := range ingredients {
		item, found := a.catalog.Get(ing.IngredientID)

		var contribution common.NutritionInfo
		if found {
			baseAmount := ingredient.ConvertToBase(ing.Amount, ing.Unit, item.BaseUnit)
			contribution = item.NutritionPer100.Scale(baseAmount / 100)
		}
		// 未知或自訂食材：零營養，名稱退回備註或原始 id

		result.Total.Add(contribution)
		result.Ingredients = append(result.Ingredients, IngredientBreakdown{
			Name:      a.normalizer.DisplayName(ing),
			Amount:    ing.Amount,
			Unit:      ing.Unit,
			Nutrition: contribution,
		})
	}

	// 每份營養
	result.PerServing = result.Total.Scale(1 / float64(servings))

	// 每項食材的熱量佔比
	for i := range result.Ingredients {
		if result.Total.Calories > 0 {
			result.Ingredients[i].Percentage = round1(result.Ingredients[i].Nutrition.Calories / result.Total.Calories * 100)
		}
	}

	// 每日攝取量百分比（整數）
	result.DailyValuePercent = common.NutritionInfo{
		Calories: math.Round(result.PerServing.Calories / DailyCalories * 100),
		Protein:  math.Round(result.PerServing.Protein / DailyProtein * 100),
		Carbs:    math.Round(result.PerServing.Carbs / DailyCarbs * 100),
		Fat:      math.Round(result.PerServing.Fat / DailyFat * 100),
		Fiber:    math.Round(result.PerServing.Fiber / DailyFiber * 100),
		Sodium:   math.Round(result.PerServing.Sodium / DailySodium * 100),
	}

	// 三大營養素熱量佔比
	result.MacroDistribution = macroDistribution(result.PerServing)

	// 健康分數與提示
	result.HealthScore = healthScore(result)
	result.Warnings = buildWarnings(result)
	result.Recommendations = buildRecommendations(result)

	return result
}

// macroDistribution 按 4/4/9 大卡換算三大營養素熱量佔比，正規化使總和為 100
func macroDistribution(n common.NutritionInfo) MacroDistribution {
	proteinCal := n.Protein * 4
	carbsCal := n.Carbs * 4
	fatCal := n.Fat * 9
	total := proteinCal + carbsCal + fatCal
	if total <= 0 {
		return MacroDistribution{}
	}

	return MacroDistribution{
		ProteinPercent: round1(proteinCal / total * 100),
		CarbsPercent:   round1(carbsCal / total * 100),
		FatPercent:     round1(fatCal / total * 100),
	}
}

// healthScore 啟發式健康分數：基準 50，
// 纖維與蛋白質加分，鈉與脂肪超標扣分，夾限在 [0,100]
func healthScore(b *Breakdown) int {
	// 空食譜維持中性基準
	if b.Total.Calories == 0 {
		return BaselineHealthScore
	}

	score := BaselineHealthScore

	if b.PerServing.Fiber >= 7 {
		score += 15
	} else if b.PerServing.Fiber >= 4 {
		score += 8
	}
	if b.PerServing.Protein >= 20 {
		score += 15
	}
	if b.MacroDistribution.ProteinPercent >= 25 {
		score += 10
	}

	if b.DailyValuePercent.Sodium > 100 {
		score -= 20
	} else if b.DailyValuePercent.Sodium > 60 {
		score -= 10
	}
	if b.DailyValuePercent.Fat > 100 {
		score -= 15
	}
	if b.MacroDistribution.FatPercent > 45 {
		score -= 10
	}

	if score < 0 {
		return 0
	}
	if score > 100 {
		return 100
	}
	return score
}

// buildWarnings 依門檻產生警告文字，順序固定
func buildWarnings(b *Breakdown) []string {
	var warnings []string

	if b.DailyValuePercent.Sodium > 100 {
		warnings = append(warnings, "鈉含量超過每日建議攝取量")
	}
	if b.DailyValuePercent.Fat > 100 {
		warnings = append(warnings, "脂肪含量超過每日建議攝取量")
	}
	if b.PerServing.Calories > 800 {
		warnings = append(warnings, "單份熱量偏高（超過 800 大卡）")
	}

	return warnings
}

// buildRecommendations 依門檻產生建議文字，順序固定
func buildRecommendations(b *Breakdown) []string {
	var recs []string

	// 空食譜不給建議
	if b.Total.Calories == 0 {
		return recs
	}

	if b.DailyValuePercent.Fiber < 20 {
		recs = append(recs, "建議增加蔬菜或其他高纖食材")
	}
	if b.MacroDistribution.ProteinPercent < 15 {
		recs = append(recs, "建議補充蛋白質來源")
	}
	if b.DailyValuePercent.Sodium > 60 {
		recs = append(recs, "建議減少鹽或魚露等調味料用量")
	}

	return recs
}

// round1 四捨五入到一位小數
func round1(v float64) float64 {
	return math.Round(v*10) / 10
}
