package ingredient

import (
	"strings"

	"recipe-admin/internal/core/catalog"
)

// unitKind 單位類型
type unitKind string

const (
	unitKindMass   unitKind = "mass"   // 基準 g
	unitKindVolume unitKind = "volume" // 基準 ml
	unitKindCount  unitKind = "count"  // 個數單位，1:1
)

// unitDef 單位定義
type unitDef struct {
	canonical string
	kind      unitKind
	toBase    float64 // 換算到基準單位的係數
}

// unitTable 已知單位詞彙，鍵為去變音小寫形式
var unitTable = map[string]unitDef{
	// 質量（基準 g）
	"mg":   {canonical: "mg", kind: unitKindMass, toBase: 0.001},
	"g":    {canonical: "g", kind: unitKindMass, toBase: 1},
	"gr":   {canonical: "g", kind: unitKindMass, toBase: 1},
	"gram": {canonical: "g", kind: unitKindMass, toBase: 1},
	"kg":   {canonical: "kg", kind: unitKindMass, toBase: 1000},
	"lang": {canonical: "lạng", kind: unitKindMass, toBase: 100}, // 越南常用：1 lạng = 100g

	// 體積（基準 ml）
	"ml":           {canonical: "ml", kind: unitKindVolume, toBase: 1},
	"l":            {canonical: "l", kind: unitKindVolume, toBase: 1000},
	"lit":          {canonical: "l", kind: unitKindVolume, toBase: 1000},
	"tsp":          {canonical: "muỗng cà phê", kind: unitKindVolume, toBase: 5},
	"muong ca phe": {canonical: "muỗng cà phê", kind: unitKindVolume, toBase: 5},
	"thia ca phe":  {canonical: "muỗng cà phê", kind: unitKindVolume, toBase: 5},
	"tbsp":         {canonical: "muỗng canh", kind: unitKindVolume, toBase: 15},
	"muong canh":   {canonical: "muỗng canh", kind: unitKindVolume, toBase: 15},
	"thia canh":    {canonical: "muỗng canh", kind: unitKindVolume, toBase: 15},
	"chen":         {canonical: "chén", kind: unitKindVolume, toBase: 200},
	"bat":          {canonical: "bát", kind: unitKindVolume, toBase: 250},
	"ly":           {canonical: "ly", kind: unitKindVolume, toBase: 200},
	"coc":          {canonical: "cốc", kind: unitKindVolume, toBase: 240},

	// 個數單位
	"qua":   {canonical: "quả", kind: unitKindCount, toBase: 1},
	"trai":  {canonical: "trái", kind: unitKindCount, toBase: 1},
	"cu":    {canonical: "củ", kind: unitKindCount, toBase: 1},
	"con":   {canonical: "con", kind: unitKindCount, toBase: 1},
	"cai":   {canonical: "cái", kind: unitKindCount, toBase: 1},
	"tep":   {canonical: "tép", kind: unitKindCount, toBase: 1},
	"lat":   {canonical: "lát", kind: unitKindCount, toBase: 1},
	"nhanh": {canonical: "nhánh", kind: unitKindCount, toBase: 1},
	"bo":    {canonical: "bó", kind: unitKindCount, toBase: 1},
	"goi":   {canonical: "gói", kind: unitKindCount, toBase: 1},
	"mieng": {canonical: "miếng", kind: unitKindCount, toBase: 1},
	"o":     {canonical: "ổ", kind: unitKindCount, toBase: 1},
	"phan":  {canonical: DefaultUnit, kind: unitKindCount, toBase: 1},
}

// DefaultUnit 無法判讀單位時的後備值（一份）
const DefaultUnit = "phần"

// lookupUnit 查詢單位詞彙
func lookupUnit(token string) (unitDef, bool) {
	def, ok := unitTable[catalog.FoldName(token)]
	return def, ok
}

// IsKnownUnit 檢查是否為已知單位
func IsKnownUnit(token string) bool {
	_, ok := lookupUnit(token)
	return ok
}

// unitKindOf 基準單位所屬類型；未知基準單位視為個數
func unitKindOf(baseUnit string) unitKind {
	switch strings.ToLower(baseUnit) {
	case "g":
		return unitKindMass
	case "ml":
		return unitKindVolume
	default:
		return unitKindCount
	}
}

// ConvertToBase 將數量換算成食材基準單位。
// 僅同類型單位可換算（質量對質量、體積對體積）；
// 無法換算時按 1:1 帶過，這是已知的近似處理
func ConvertToBase(amount float64, unit, baseUnit string) float64 {
	def, ok := lookupUnit(unit)
	if !ok {
		// 單位與基準單位相同時直接通過，其餘按 1:1 近似
		return amount
	}

	baseKind := unitKindOf(baseUnit)
	if def.kind != baseKind {
		// 類型不相容（如 muỗng canh 對 g），按 1:1 近似
		return amount
	}

	switch def.kind {
	case unitKindMass, unitKindVolume:
		return amount * def.toBase
	default:
		// 個數單位彼此 1:1
		return amount * def.toBase
	}
}
