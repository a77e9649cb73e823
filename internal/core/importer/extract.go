package importer

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"recipe-admin/internal/infrastructure/config"
	"recipe-admin/internal/pkg/common"

	"github.com/go-resty/resty/v2"
)

// ExtractClient 外部食譜擷取服務的客戶端。
// 擷取服務負責抓取與解析網頁，本服務只消費其結構化結果
type ExtractClient struct {
	config *config.Config
	client *resty.Client
}

// NewExtractClient 創建擷取服務客戶端
func NewExtractClient(cfg *config.Config) *ExtractClient {
	client := resty.New().
		SetBaseURL(cfg.Import.ExtractorURL).
		SetTimeout(cfg.Import.Timeout).
		SetHeader("Accept", "application/json")

	return &ExtractClient{
		config: cfg,
		client: client,
	}
}

// extractResponse 擷取服務的回應格式
type extractResponse struct {
	Success   bool          `json:"success"`
	Data      *ParsedRecipe `json:"data,omitempty"`
	Warnings  []string      `json:"warnings,omitempty"`
	Error     string        `json:"error,omitempty"`
	ErrorCode string        `json:"error_code,omitempty"`
}

// Extract 擷取單一網址的食譜內容
func (c *ExtractClient) Extract(ctx context.Context, url string) (*ParsedRecipe, []string, error) {
	start := time.Now()

	resp, err := c.client.R().
		SetContext(ctx).
		SetBody(map[string]string{"url": url}).
		Post("/extract")

	common.LogExtractCall(url, time.Since(start), err, "")

	if err != nil {
		if ctx.Err() == context.DeadlineExceeded {
			return nil, nil, common.ErrExtractionTimeout
		}
		return nil, nil, fmt.Errorf("failed to reach extractor: %w", err)
	}

	if resp.StatusCode() != http.StatusOK {
		return nil, nil, common.NewError(common.ErrExtractionFailed.Code,
			fmt.Sprintf("extractor returned status %d", resp.StatusCode()),
			http.StatusBadGateway, nil)
	}

	var result extractResponse
	if err := common.ParseJSONBytes(resp.Body(), &result); err != nil {
		return nil, nil, fmt.Errorf("failed to parse extractor response: %w", err)
	}

	if !result.Success || result.Data == nil {
		code := result.ErrorCode
		if code == "" {
			code = common.ErrExtractionFailed.Code
		}
		return nil, nil, common.NewError(code, result.Error, http.StatusBadGateway, nil)
	}

	if result.Data.SourceURL == "" {
		result.Data.SourceURL = url
	}

	return result.Data, result.Warnings, nil
}
