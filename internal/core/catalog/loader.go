package catalog

import (
	"fmt"
	"os"

	"recipe-admin/internal/pkg/common"

	"go.uber.org/zap"
)

// Load 載入食材目錄：path 為空時使用內建種子資料，
// 否則讀取 JSON 種子檔。載入失敗屬於部署錯誤，由呼叫端決定是否中止
func Load(path string) (*Catalog, error) {
	if path == "" {
		common.LogInfo("使用內建食材種子資料",
			zap.Int("條目數", len(seedIngredients)),
		)
		return New(seedIngredients)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read catalog file: %w", err)
	}

	var items []StandardIngredient
	if err := common.ParseJSONBytes(data, &items); err != nil {
		return nil, fmt.Errorf("failed to parse catalog file: %w", err)
	}
	if len(items) == 0 {
		return nil, fmt.Errorf("catalog file %s contains no ingredients", path)
	}

	common.LogInfo("已載入食材種子檔",
		zap.String("路徑", path),
		zap.Int("條目數", len(items)),
	)

	return New(items)
}
