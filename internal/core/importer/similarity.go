package importer

import (
	"strings"
	"unicode/utf8"
)

// 重複判定門檻
const (
	TitleThreshold   = 0.8 // 標題相似度
	ContentThreshold = 0.7 // 內容（食材+作法）相似度
)

// minTokenLength 短於等於此長度的詞不參與比對
const minTokenLength = 2

// tokenize 轉小寫、按空白切詞、去除過短的詞，返回詞集合
func tokenize(text string) map[string]struct{} {
	set := make(map[string]struct{})
	for _, token := range strings.Fields(strings.ToLower(text)) {
		if utf8.RuneCountInString(token) <= minTokenLength {
			continue
		}
		set[token] = struct{}{}
	}
	return set
}

// Similarity 計算兩段文字的 Jaccard 相似度，結果在 [0,1]。
// 任一輸入為空直接返回 0，避免空集合聯集除以零
func Similarity(a, b string) float64 {
	if strings.TrimSpace(a) == "" || strings.TrimSpace(b) == "" {
		return 0
	}

	setA := tokenize(a)
	setB := tokenize(b)

	intersection := 0
	union := len(setB)
	for token := range setA {
		if _, ok := setB[token]; ok {
			intersection++
		} else {
			union++
		}
	}

	if union == 0 {
		return 0
	}
	return float64(intersection) / float64(union)
}

// DetectDuplicates 標記批次中的疑似重複：
// 與既有食譜比對標題與內容，與同批其他候選只比對標題。
// 只做標記，項目保留給呼叫端決定去留
func DetectDuplicates(candidates []RecipeCandidate, existing ExistingRecipes) []RecipeCandidate {
	out := make([]RecipeCandidate, len(candidates))
	copy(out, candidates)

	for i := range out {
		if out[i].Parsed == nil {
			continue
		}
		out[i].IsDuplicate = false
		out[i].DuplicateOf = nil

		// 與既有食譜比對
		for _, rec := range existing {
			titleSim := Similarity(out[i].Parsed.Title, rec.Title)
			contentSim := Similarity(out[i].Parsed.ContentText(), rec.ContentText())
			if titleSim > TitleThreshold || contentSim > ContentThreshold {
				out[i].IsDuplicate = true
				out[i].DuplicateOf = append(out[i].DuplicateOf, rec.Title)
			}
		}

		// 與同批其他候選比對（只看標題）
		for j := range out {
			if j == i || out[j].Parsed == nil {
				continue
			}
			if Similarity(out[i].Parsed.Title, out[j].Parsed.Title) > TitleThreshold {
				out[i].IsDuplicate = true
				out[i].DuplicateOf = append(out[i].DuplicateOf, out[j].Parsed.Title)
			}
		}
	}

	return out
}
