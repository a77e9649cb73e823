package importer

import (
	"recipe-admin/internal/pkg/common"
)

// CandidateStatus 候選項目的擷取狀態
type CandidateStatus string

const (
	StatusPending CandidateStatus = "pending" // 尚未擷取
	StatusParsed  CandidateStatus = "parsed"  // 擷取成功，已有結構化資料
	StatusFailed  CandidateStatus = "failed"  // 擷取失敗
)

// ParsedRecipe 擷取服務回傳的結構化食譜
type ParsedRecipe struct {
	Title        string `json:"title"`
	Description  string `json:"description,omitempty"`
	Ingredients  string `json:"ingredients"`
	Instructions string `json:"instructions"`
	Servings     int    `json:"servings,omitempty"`
	SourceURL    string `json:"source_url,omitempty"`
}

// ContentText 組合食材與作法文字，供內容相似度比對
func (p *ParsedRecipe) ContentText() string {
	return p.Ingredients + " " + p.Instructions
}

// RecipeCandidate 批次匯入的候選項目。
// 欄位明確標示可選與否，重複標記只附加、不移除項目
type RecipeCandidate struct {
	SourceURL   string          `json:"source_url"`
	Status      CandidateStatus `json:"status"`
	Parsed      *ParsedRecipe   `json:"parsed,omitempty"`   // 擷取成功才有
	Error       string          `json:"error,omitempty"`    // 擷取失敗原因
	ErrorCode   string          `json:"error_code,omitempty"`
	Warnings    []string        `json:"warnings,omitempty"` // 擷取服務附帶的警告
	IsDuplicate bool            `json:"is_duplicate"`
	DuplicateOf []string        `json:"duplicate_of,omitempty"` // 相似食譜的標題
}

// BatchResult 批次匯入結果
type BatchResult struct {
	Candidates []RecipeCandidate `json:"candidates"`
	Extracted  int               `json:"extracted"`
	Failed     int               `json:"failed"`
	Duplicates int               `json:"duplicates"`
}

// ExistingRecipes 重複比對的既有食譜集合
type ExistingRecipes = []common.RecipeRecord
