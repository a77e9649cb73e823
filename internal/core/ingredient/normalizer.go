package ingredient

import (
	"regexp"
	"strconv"
	"strings"

	"recipe-admin/internal/core/catalog"
	"recipe-admin/internal/pkg/common"
)

// Normalizer 食材正規化器：自由文字與結構化食材的雙向轉換
type Normalizer struct {
	catalog *catalog.Catalog
}

// NewNormalizer 創建食材正規化器
func NewNormalizer(cat *catalog.Catalog) *Normalizer {
	return &Normalizer{catalog: cat}
}

var (
	// 行首項目符號
	bulletPattern = regexp.MustCompile(`^[\-•*+]+\s*`)
	// 行首編號（「1. 」「2) 」），需帶空白以免吃掉「1.5」這類數量
	numberedPattern = regexp.MustCompile(`^\d+[.)]\s+`)
	// 行首數量：整數、小數（點或逗號）、簡單分數
	amountPattern = regexp.MustCompile(`^(\d+(?:[.,]\d+)?(?:\s*/\s*\d+)?)\s*`)
	// 合成 id 的非法字符
	slugPattern = regexp.MustCompile(`[^a-z0-9]+`)
)

// ParseText 解析多行食材文字。每個非空白行為一個候選食材；
// 此函式不會失敗，無法判讀的行退化為單一自訂食材
func (n *Normalizer) ParseText(text string) []common.RecipeIngredient {
	var out []common.RecipeIngredient

	for _, rawLine := range strings.Split(text, "\n") {
		line := strings.TrimSpace(rawLine)
		line = bulletPattern.ReplaceAllString(line, "")
		line = numberedPattern.ReplaceAllString(line, "")
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}

		out = append(out, n.parseLine(line))
	}

	return out
}

// parseLine 解析單行：數量 → 單位 → 名稱[, 備註]
func (n *Normalizer) parseLine(line string) common.RecipeIngredient {
	amount := 1.0
	unit := ""
	rest := line

	// 提取行首數量
	if m := amountPattern.FindStringSubmatch(rest); m != nil {
		if v, ok := parseAmount(m[1]); ok {
			amount = v
			rest = strings.TrimSpace(rest[len(m[0]):])
		}
	}

	// 提取單位：先試三個詞（muỗng cà phê），再兩個詞，再一個詞
	fields := strings.Fields(rest)
	if len(fields) >= 3 {
		threeWord := fields[0] + " " + fields[1] + " " + fields[2]
		if def, ok := lookupUnit(threeWord); ok {
			unit = def.canonical
			rest = strings.TrimSpace(strings.Join(fields[3:], " "))
		}
	}
	if unit == "" && len(fields) >= 2 {
		twoWord := fields[0] + " " + fields[1]
		if def, ok := lookupUnit(twoWord); ok {
			unit = def.canonical
			rest = strings.TrimSpace(strings.Join(fields[2:], " "))
		}
	}
	if unit == "" && len(fields) >= 1 {
		if def, ok := lookupUnit(fields[0]); ok && len(fields) > 1 {
			// 單位不可吃掉整行，至少要留下名稱
			unit = def.canonical
			rest = strings.TrimSpace(strings.Join(fields[1:], " "))
		}
	}
	if unit == "" {
		unit = DefaultUnit
	}

	// 名稱後的逗號視為備註
	name := rest
	note := ""
	if idx := strings.Index(rest, ","); idx >= 0 {
		name = strings.TrimSpace(rest[:idx])
		note = strings.TrimSpace(rest[idx+1:])
	}
	if name == "" {
		// 整行只剩數量或單位，原始行退化為自訂名稱
		name = line
	}

	// 解析目錄食材；查不到就合成自訂 id 並保留原始名稱
	if item, ok := n.catalog.Resolve(name); ok {
		return common.RecipeIngredient{
			IngredientID: item.ID,
			Amount:       amount,
			Unit:         unit,
			Note:         note,
		}
	}

	return common.RecipeIngredient{
		IngredientID: customID(name),
		Amount:       amount,
		Unit:         unit,
		Note:         name,
	}
}

// customID 由正規化名稱合成穩定的自訂食材 id，
// 同一名稱每次解析都得到相同 id，往返轉換因此保持一致
func customID(name string) string {
	slug := slugPattern.ReplaceAllString(catalog.FoldName(name), "-")
	slug = strings.Trim(slug, "-")
	if slug == "" {
		slug = "unknown"
	}
	return "custom-" + slug
}

// parseAmount 解析數量字串，支援小數與簡單分數
func parseAmount(s string) (float64, bool) {
	s = strings.ReplaceAll(strings.TrimSpace(s), ",", ".")

	if idx := strings.Index(s, "/"); idx >= 0 {
		num, err1 := strconv.ParseFloat(strings.TrimSpace(s[:idx]), 64)
		den, err2 := strconv.ParseFloat(strings.TrimSpace(s[idx+1:]), 64)
		if err1 != nil || err2 != nil || den == 0 {
			return 0, false
		}
		return num / den, true
	}

	v, err := strconv.ParseFloat(s, 64)
	if err != nil || v <= 0 {
		return 0, false
	}
	return v, true
}

// FormatText 將結構化食材還原為多行文字："<數量> <單位> <名稱>[, <備註>]"。
// 與 ParseText 的往返轉換在 (id, 數量, 單位) 上保持穩定
func (n *Normalizer) FormatText(ingredients []common.RecipeIngredient) string {
	var lines []string

	for _, ing := range ingredients {
		name := n.DisplayName(ing)
		line := common.FormatAmount(ing.Amount) + " " + ing.Unit + " " + name

		// 自訂食材的備註就是名稱本身，不重複輸出
		if ing.Note != "" && !strings.HasPrefix(ing.IngredientID, "custom-") {
			line += ", " + ing.Note
		}
		lines = append(lines, line)
	}

	return strings.Join(lines, "\n")
}

// DisplayName 食材顯示名稱：目錄名稱 → 備註 → 原始 id
func (n *Normalizer) DisplayName(ing common.RecipeIngredient) string {
	if item, ok := n.catalog.Get(ing.IngredientID); ok {
		return item.Name
	}
	if ing.Note != "" {
		return ing.Note
	}
	return ing.IngredientID
}

// Search 目錄名稱搜尋（處理程序的便捷入口）
func (n *Normalizer) Search(term string, limit int) []catalog.StandardIngredient {
	return n.catalog.Search(term, limit)
}

// ByCategory 依分類取得目錄條目
func (n *Normalizer) ByCategory() map[catalog.Category][]catalog.StandardIngredient {
	return n.catalog.ByCategory()
}
