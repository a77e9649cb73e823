package importer

import (
	"context"
	"fmt"
	"sync"

	"recipe-admin/internal/core/cache"
	"recipe-admin/internal/infrastructure/config"
	"recipe-admin/internal/pkg/common"

	"go.uber.org/zap"
)

// Service 批次匯入服務：逐筆擷取候選網址，完成後整批標記重複
type Service struct {
	config *config.Config
	client *ExtractClient
	cache  cache.Store
}

// NewService 創建批次匯入服務；cacheStore 可為 nil（停用快取）
func NewService(cfg *config.Config, client *ExtractClient, cacheStore cache.Store) *Service {
	return &Service{
		config: cfg,
		client: client,
		cache:  cacheStore,
	}
}

// ImportBatch 批次匯入：以固定數量的工作者擷取每個網址，
// 全部完成後與既有食譜及同批候選做重複比對。
// 單筆擷取失敗只標記該候選，不中斷整批
func (s *Service) ImportBatch(ctx context.Context, urls []string, existing ExistingRecipes) (*BatchResult, error) {
	if len(urls) > s.config.Import.MaxQueueSize {
		return nil, common.NewValidationError(
			fmt.Sprintf("batch size %d exceeds limit %d", len(urls), s.config.Import.MaxQueueSize))
	}

	candidates := make([]RecipeCandidate, len(urls))
	for i, url := range urls {
		candidates[i] = RecipeCandidate{SourceURL: url, Status: StatusPending}
	}

	// 工作者池：索引經由通道分發，結果按原位置寫回
	jobs := make(chan int)
	var wg sync.WaitGroup

	workers := s.config.Import.Workers
	if workers > len(urls) {
		workers = len(urls)
	}

	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := range jobs {
				s.extractOne(ctx, &candidates[i])
			}
		}()
	}

	for i := range candidates {
		jobs <- i
	}
	close(jobs)
	wg.Wait()

	// 擷取完成後整批比對重複
	candidates = DetectDuplicates(candidates, existing)

	result := &BatchResult{Candidates: candidates}
	for _, c := range candidates {
		switch c.Status {
		case StatusParsed:
			result.Extracted++
		case StatusFailed:
			result.Failed++
		}
		if c.IsDuplicate {
			result.Duplicates++
		}
	}

	common.LogInfo("批次匯入完成",
		zap.Int("總數", len(urls)),
		zap.Int("成功", result.Extracted),
		zap.Int("失敗", result.Failed),
		zap.Int("疑似重複", result.Duplicates),
	)

	return result, nil
}

// extractOne 擷取單一候選，結果寫回候選本身
func (s *Service) extractOne(ctx context.Context, candidate *RecipeCandidate) {
	// 先查快取
	if s.cache != nil {
		if val, err := s.cache.Get(ctx, candidate.SourceURL); err == nil && val != "" {
			var parsed ParsedRecipe
			if err := common.ParseJSON(val, &parsed); err == nil {
				candidate.Parsed = &parsed
				candidate.Status = StatusParsed
				return
			}
		}
	}

	parsed, warnings, err := s.client.Extract(ctx, candidate.SourceURL)
	if err != nil {
		candidate.Status = StatusFailed
		candidate.Error = err.Error()
		if ce, ok := err.(*common.CustomError); ok {
			candidate.ErrorCode = ce.Code
		} else {
			candidate.ErrorCode = common.ErrExtractionFailed.Code
		}
		return
	}

	candidate.Parsed = parsed
	candidate.Warnings = warnings
	candidate.Status = StatusParsed

	// 成功結果寫入快取
	if s.cache != nil {
		if data, err := common.ToJSON(parsed); err == nil {
			if err := s.cache.Set(ctx, candidate.SourceURL, data); err != nil {
				common.LogWarn("快取寫入失敗",
					zap.String("url", candidate.SourceURL),
					zap.Error(err),
				)
			}
		}
	}
}
