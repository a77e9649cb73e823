package catalog

import (
	"fmt"
	"sort"
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"

	"recipe-admin/internal/pkg/common"

	"go.uber.org/zap"
)

// DefaultSearchLimit 搜尋結果上限
const DefaultSearchLimit = 10

// Catalog 標準食材目錄，載入後唯讀，可安全併發讀取
type Catalog struct {
	items  []StandardIngredient
	byID   map[string]*StandardIngredient
	byCat  map[Category][]StandardIngredient
	folded []string // 與 items 同序的正規化名稱
}

var stripAccents = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

// FoldName 轉小寫並去除變音符號（越南語名稱比對用）
func FoldName(s string) string {
	folded, _, err := transform.String(stripAccents, strings.ToLower(strings.TrimSpace(s)))
	if err != nil {
		return strings.ToLower(strings.TrimSpace(s))
	}
	// đ 不屬於組合符號，需單獨處理
	return strings.ReplaceAll(folded, "đ", "d")
}

// New 以目錄條目建立索引，id 重複視為資料錯誤
func New(items []StandardIngredient) (*Catalog, error) {
	c := &Catalog{
		items:  items,
		byID:   make(map[string]*StandardIngredient, len(items)),
		byCat:  make(map[Category][]StandardIngredient),
		folded: make([]string, len(items)),
	}

	for i := range items {
		item := &c.items[i]
		if item.ID == "" {
			return nil, fmt.Errorf("catalog item %d has empty id", i)
		}
		if _, exists := c.byID[item.ID]; exists {
			return nil, fmt.Errorf("duplicate catalog id: %s", item.ID)
		}
		c.byID[item.ID] = item
		c.byCat[item.Category] = append(c.byCat[item.Category], *item)
		c.folded[i] = FoldName(item.Name)
	}

	common.LogInfo("食材目錄已建立索引",
		zap.Int("條目數", len(items)),
		zap.Int("分類數", len(c.byCat)),
	)

	return c, nil
}

// Get 依 id 查詢食材
func (c *Catalog) Get(id string) (StandardIngredient, bool) {
	item, ok := c.byID[id]
	if !ok {
		return StandardIngredient{}, false
	}
	return *item, true
}

// All 返回全部條目（複本）
func (c *Catalog) All() []StandardIngredient {
	out := make([]StandardIngredient, len(c.items))
	copy(out, c.items)
	return out
}

// ByCategory 依分類返回條目，分類順序固定
func (c *Catalog) ByCategory() map[Category][]StandardIngredient {
	out := make(map[Category][]StandardIngredient, len(c.byCat))
	for cat, items := range c.byCat {
		cp := make([]StandardIngredient, len(items))
		copy(cp, items)
		out[cat] = cp
	}
	return out
}

// searchHit 搜尋命中與排序鍵
type searchHit struct {
	item   StandardIngredient
	prefix bool
}

// Search 名稱模糊搜尋：不分大小寫、容忍變音符號，
// 前綴命中排在子字串命中之前，同級依名稱字典序
func (c *Catalog) Search(term string, limit int) []StandardIngredient {
	if limit <= 0 {
		limit = DefaultSearchLimit
	}

	folded := FoldName(term)
	if folded == "" {
		return nil
	}

	var hits []searchHit
	for i := range c.items {
		name := c.folded[i]
		if strings.HasPrefix(name, folded) {
			hits = append(hits, searchHit{item: c.items[i], prefix: true})
		} else if strings.Contains(name, folded) {
			hits = append(hits, searchHit{item: c.items[i], prefix: false})
		}
	}

	sort.SliceStable(hits, func(i, j int) bool {
		if hits[i].prefix != hits[j].prefix {
			return hits[i].prefix
		}
		return hits[i].item.Name < hits[j].item.Name
	})

	if len(hits) > limit {
		hits = hits[:limit]
	}

	out := make([]StandardIngredient, len(hits))
	for i, h := range hits {
		out[i] = h.item
	}
	return out
}

// Resolve 依名稱解析食材 id：先精確比對，再前綴，再子字串
func (c *Catalog) Resolve(name string) (StandardIngredient, bool) {
	folded := FoldName(name)
	if folded == "" {
		return StandardIngredient{}, false
	}

	// 精確比對
	for i := range c.items {
		if c.folded[i] == folded {
			return c.items[i], true
		}
	}

	// 查詢詞包含目錄名稱（「thịt bò tươi」命中「thịt bò」），取最長命中
	best := -1
	for i := range c.items {
		if strings.Contains(folded, c.folded[i]) {
			if best < 0 || len(c.folded[i]) > len(c.folded[best]) {
				best = i
			}
		}
	}
	if best >= 0 {
		return c.items[best], true
	}

	// 目錄名稱包含查詢詞
	for i := range c.items {
		if strings.Contains(c.folded[i], folded) {
			return c.items[i], true
		}
	}

	return StandardIngredient{}, false
}
