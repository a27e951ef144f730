package identify

import (
	"bytes"
	"context"
	"fmt"
	"net/http"
	"time"

	"plantlens/internal/infrastructure/config"
	"plantlens/internal/pkg/common"

	"github.com/go-resty/resty/v2"
)

// UpstreamError 辨識服務回傳的非 200 回應。
// 狀態碼與原始內容會透傳給呼叫端，方便除錯配額或金鑰問題。
type UpstreamError struct {
	StatusCode int
	Body       string
}

func (e *UpstreamError) Error() string {
	return fmt.Sprintf("plantnet returned status %d: %s", e.StatusCode, e.Body)
}

// Client 植物辨識服務（PlantNet）客戶端
type Client struct {
	client *resty.Client
	apiKey string
	organ  string
}

// NewClient 創建植物辨識客戶端
func NewClient(cfg *config.Config) *Client {
	client := resty.New().
		SetBaseURL(cfg.PlantNet.BaseURL).
		SetTimeout(cfg.PlantNet.Timeout)

	return &Client{
		client: client,
		apiKey: cfg.PlantNet.APIKey,
		organ:  cfg.PlantNet.Organ,
	}
}

// Identify 送出圖片進行辨識，回傳原始回應內容
func (c *Client) Identify(ctx context.Context, image []byte) ([]byte, error) {
	start := time.Now()
	resp, err := c.client.R().
		SetContext(ctx).
		SetQueryParam("api-key", c.apiKey).
		SetFileReader("images", "image.jpg", bytes.NewReader(image)).
		SetFormData(map[string]string{"organs": c.organ}).
		Post("/identify/all")
	common.LogUpstreamCall("plantnet", c.organ, time.Since(start), err)

	if err != nil {
		return nil, fmt.Errorf("failed to send request to PlantNet: %w", err)
	}

	if resp.StatusCode() != http.StatusOK {
		return nil, &UpstreamError{
			StatusCode: resp.StatusCode(),
			Body:       resp.String(),
		}
	}

	return resp.Body(), nil
}
