package importer

import (
	"os"
	"testing"

	"recipe-admin/internal/pkg/common"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestMain(m *testing.M) {
	common.Logger = zap.NewNop()
	os.Exit(m.Run())
}

func TestSimilarityIdentical(t *testing.T) {
	assert.InDelta(t, 1.0, Similarity("Phở Bò Truyền Thống", "Phở Bò Truyền Thống"), 0.001)
}

func TestSimilarityEmptyInput(t *testing.T) {
	assert.InDelta(t, 0, Similarity("", "Phở Bò"), 0.001)
	assert.InDelta(t, 0, Similarity("Phở Bò", ""), 0.001)
	assert.InDelta(t, 0, Similarity("   ", "Phở Bò"), 0.001)
}

func TestSimilarityDisjoint(t *testing.T) {
	assert.InDelta(t, 0, Similarity("gỏi cuốn tôm thịt", "bánh kem sô-cô-la"), 0.001)
}

func TestSimilaritySymmetric(t *testing.T) {
	a := "bún chả hà nội truyền thống"
	b := "bún chả nướng than hoa"
	assert.InDelta(t, Similarity(a, b), Similarity(b, a), 0.001)
}

func TestSimilarityRange(t *testing.T) {
	sim := Similarity("thịt kho trứng nước dừa", "thịt kho tiêu đậm đà")
	assert.Greater(t, sim, 0.0)
	assert.Less(t, sim, 1.0)
}

func TestSimilarityIgnoresShortTokens(t *testing.T) {
	// 兩個詞全都過短，沒有可比對的詞彙
	assert.InDelta(t, 0, Similarity("bò gà", "bò gà"), 0.001)
}

func TestDetectDuplicatesAgainstExisting(t *testing.T) {
	candidates := []RecipeCandidate{
		{
			SourceURL: "https://example.com/pho",
			Status:    StatusParsed,
			Parsed:    &ParsedRecipe{Title: "Phở Bò Truyền Thống"},
		},
	}
	existing := ExistingRecipes{
		{Title: "Phở Bò Truyền Thống"},
	}

	out := DetectDuplicates(candidates, existing)
	require.Len(t, out, 1)
	assert.True(t, out[0].IsDuplicate)
	assert.Equal(t, []string{"Phở Bò Truyền Thống"}, out[0].DuplicateOf)
}

func TestDetectDuplicatesByContent(t *testing.T) {
	content := "thịt bò bánh phở hành tây gừng quế hồi nước mắm luộc xương hầm nhiều giờ"
	candidates := []RecipeCandidate{
		{
			Status: StatusParsed,
			Parsed: &ParsedRecipe{
				Title:       "Công Thức Nhà Làm",
				Ingredients: content,
			},
		},
	}
	existing := ExistingRecipes{
		{Title: "Phở Bò Hà Nội", Ingredients: content},
	}

	// 標題不同但內容幾乎一致，仍應標記
	out := DetectDuplicates(candidates, existing)
	require.Len(t, out, 1)
	assert.True(t, out[0].IsDuplicate)
}

func TestDetectDuplicatesLowOverlapNotFlagged(t *testing.T) {
	candidates := []RecipeCandidate{
		{
			Status: StatusParsed,
			Parsed: &ParsedRecipe{Title: "Bánh Mì Thịt Nướng"},
		},
	}
	existing := ExistingRecipes{
		{Title: "Bánh Mì Chả Cá"},
	}

	out := DetectDuplicates(candidates, existing)
	require.Len(t, out, 1)
	assert.False(t, out[0].IsDuplicate)
	assert.Empty(t, out[0].DuplicateOf)
}

func TestDetectDuplicatesIntraBatch(t *testing.T) {
	candidates := []RecipeCandidate{
		{Status: StatusParsed, Parsed: &ParsedRecipe{Title: "Cơm Tấm Sườn Nướng"}},
		{Status: StatusParsed, Parsed: &ParsedRecipe{Title: "Cơm Tấm Sườn Nướng"}},
	}

	// 同批重複互相標記
	out := DetectDuplicates(candidates, nil)
	require.Len(t, out, 2)
	assert.True(t, out[0].IsDuplicate)
	assert.True(t, out[1].IsDuplicate)
	assert.Contains(t, out[0].DuplicateOf, "Cơm Tấm Sườn Nướng")
	assert.Contains(t, out[1].DuplicateOf, "Cơm Tấm Sườn Nướng")
}

func TestDetectDuplicatesSkipsFailed(t *testing.T) {
	candidates := []RecipeCandidate{
		{SourceURL: "https://example.com/bad", Status: StatusFailed, Error: "fetch failed"},
	}

	out := DetectDuplicates(candidates, ExistingRecipes{{Title: "Phở Bò"}})
	require.Len(t, out, 1)
	assert.False(t, out[0].IsDuplicate)
	assert.Equal(t, StatusFailed, out[0].Status)
}

func TestDetectDuplicatesDoesNotMutateInput(t *testing.T) {
	candidates := []RecipeCandidate{
		{Status: StatusParsed, Parsed: &ParsedRecipe{Title: "Cơm Tấm Sườn Nướng"}},
		{Status: StatusParsed, Parsed: &ParsedRecipe{Title: "Cơm Tấm Sườn Nướng"}},
	}

	_ = DetectDuplicates(candidates, nil)
	assert.False(t, candidates[0].IsDuplicate)
}
