package nutrition

import (
	"math"

	"recipe-admin/internal/pkg/common"
)

// GoalStatus 營養素與目標的比對結果
type GoalStatus string

const (
	GoalStatusGood  GoalStatus = "good"  // 在目標 ±10% 以內
	GoalStatusUnder GoalStatus = "under" // 低於目標
	GoalStatusOver  GoalStatus = "over"  // 高於目標
)

// goalTolerance 目標容許區間（±10%）
const goalTolerance = 0.10

// NutrientComparison 單一營養素的比對明細
type NutrientComparison struct {
	Actual     float64    `json:"actual"`
	Goal       float64    `json:"goal"`
	Percentage float64    `json:"percentage"` // actual/goal × 100
	Status     GoalStatus `json:"status"`
}

// GoalComparison 與營養目標的比對結果
type GoalComparison struct {
	Nutrients    map[string]NutrientComparison `json:"nutrients"`
	OverallScore float64                       `json:"overall_score"` // 各追蹤營養素的平均達成分數
}

// Goals 使用者的營養目標，零值欄位視為未追蹤
type Goals struct {
	Calories float64 `json:"calories,omitempty"`
	Protein  float64 `json:"protein,omitempty"`
	Carbs    float64 `json:"carbs,omitempty"`
	Fat      float64 `json:"fat,omitempty"`
	Fiber    float64 `json:"fiber,omitempty"`
	Sodium   float64 `json:"sodium,omitempty"`
}

// CompareWithGoals 逐項比對實際營養與目標。
// 未設定的目標欄位直接略過，不做預設
func CompareWithGoals(actual common.NutritionInfo, goals Goals) *GoalComparison {
	result := &GoalComparison{
		Nutrients: make(map[string]NutrientComparison),
	}

	tracked := []struct {
		key    string
		actual float64
		goal   float64
	}{
		{"calories", actual.Calories, goals.Calories},
		{"protein", actual.Protein, goals.Protein},
		{"carbs", actual.Carbs, goals.Carbs},
		{"fat", actual.Fat, goals.Fat},
		{"fiber", actual.Fiber, goals.Fiber},
		{"sodium", actual.Sodium, goals.Sodium},
	}

	var totalScore float64
	var count int

	for _, t := range tracked {
		if t.goal <= 0 {
			continue
		}

		percentage := t.actual / t.goal * 100
		status := GoalStatusGood
		switch {
		case percentage < (1-goalTolerance)*100:
			status = GoalStatusUnder
		case percentage > (1+goalTolerance)*100:
			status = GoalStatusOver
		}

		result.Nutrients[t.key] = NutrientComparison{
			Actual:     t.actual,
			Goal:       t.goal,
			Percentage: round1(percentage),
			Status:     status,
		}

		// 達成分數：偏離目標越遠分數越低
		totalScore += math.Max(0, 100-math.Abs(percentage-100))
		count++
	}

	if count > 0 {
		result.OverallScore = round1(totalScore / float64(count))
	}

	return result
}
