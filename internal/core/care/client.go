package care

import (
	"context"
	"net/http"
	"strings"
	"time"

	"plantlens/internal/infrastructure/config"
	"plantlens/internal/pkg/common"

	"github.com/go-resty/resty/v2"
	"go.uber.org/zap"
)

// Client 外部照護資料庫（Perenual）客戶端。
// 所有失敗皆降級為查無資料，由調和層決定後備來源，不向呼叫端回傳錯誤。
type Client struct {
	client   *resty.Client
	apiKey   string
	detector PaywallDetector
}

// NewClient 創建照護資料庫客戶端
func NewClient(cfg *config.Config) *Client {
	client := resty.New().
		SetBaseURL(cfg.Perenual.BaseURL).
		SetTimeout(cfg.Perenual.Timeout).
		SetHeader("Accept", "application/json")

	return &Client{
		client:   client,
		apiKey:   cfg.Perenual.APIKey,
		detector: NewPhraseDetector(),
	}
}

// Configured 是否已設定 API Key。未設定時呼叫端應直接使用本地資料。
func (c *Client) Configured() bool {
	return c.apiKey != ""
}

// FetchCareData 以單一查詢詞取得照護資料，內含多段重試：
//  1. 原詞完全查詢
//  2. HTTP 失敗時以屬名（第一個詞）重試
//  3. 查無結果時移除內部空白做模糊重試
//  4. 仍無結果時以屬名做部分比對重試
//
// 任一階段取得資料或偵測到付費牆即停止。
func (c *Client) FetchCareData(ctx context.Context, term string) AttemptResult {
	term = strings.TrimSpace(term)
	if term == "" {
		return AttemptResult{Status: AttemptNotFound, Term: term}
	}

	result, httpOK := c.query(ctx, term)
	if !httpOK {
		genus := genusTerm(term)
		if genus == "" || genus == term {
			return AttemptResult{Status: AttemptNotFound, Term: term}
		}
		result, httpOK = c.query(ctx, genus)
		if !httpOK {
			return AttemptResult{Status: AttemptNotFound, Term: term}
		}
	}
	if result.Status != AttemptNotFound {
		return result
	}

	// 模糊重試：移除空白（例如 "Aloe vera" → "Aloevera"）
	if collapsed := collapseTerm(term); collapsed != term && len(collapsed) > 2 {
		if r, ok := c.query(ctx, collapsed); ok && r.Status != AttemptNotFound {
			return r
		}
	}

	// 屬名部分比對重試
	if genus := genusTerm(term); genus != term && len(genus) > 3 {
		if r, ok := c.query(ctx, genus); ok && r.Status != AttemptNotFound {
			return r
		}
	}

	return AttemptResult{Status: AttemptNotFound, Term: term}
}

// query 送出單次查詢並解讀回應，第二個回傳值表示 HTTP 層是否成功
func (c *Client) query(ctx context.Context, term string) (AttemptResult, bool) {
	start := time.Now()
	resp, err := c.client.R().
		SetContext(ctx).
		SetQueryParam("key", c.apiKey).
		SetQueryParam("q", term).
		Get("")
	common.LogUpstreamCall("perenual", term, time.Since(start), err)

	if err != nil {
		return AttemptResult{Status: AttemptNotFound, Term: term}, false
	}
	if resp.StatusCode() != http.StatusOK {
		common.LogWarn("照護資料查詢回應異常",
			zap.String("term", term),
			zap.Int("status", resp.StatusCode()),
		)
		return AttemptResult{Status: AttemptNotFound, Term: term}, false
	}

	body := resp.Body()

	if entry, ok := extractSpecies(body); ok {
		// 部分方案會在資料列內夾帶付費提示，需再掃描一次
		if c.detector.Detect(entry) {
			return AttemptResult{Status: AttemptPaywalled, Term: term}, true
		}
		return AttemptResult{Status: AttemptFound, Term: term, Entry: entry}, true
	}

	// 空的 data 陣列搭配付費提示語即為付費牆
	if hasEmptyDataArray(body) && c.detector.Detect(body) {
		return AttemptResult{Status: AttemptPaywalled, Term: term}, true
	}

	return AttemptResult{Status: AttemptNotFound, Term: term}, true
}
