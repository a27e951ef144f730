package care

import (
	"context"
	"fmt"

	"plantlens/internal/pkg/common"

	"go.uber.org/zap"
)

// 各後備情境的說明文字，隨結果回傳供呈現層顯示
const (
	noteNotConfigured = "Perenual API key not configured; returning local curated data"
	notePaywalled     = "Perenual data requires a paid subscription; showing local curated data instead"
	noteUnavailable   = "Perenual API unavailable or returned no matches; using local curated data"
	noteLocalOnly     = "Using curated local plant database"
	noteNoLocalData   = "No curated data available for this plant."
)

// Provider 外部照護資料來源
type Provider interface {
	Configured() bool
	FetchCareData(ctx context.Context, term string) AttemptResult
}

// Reconciler 照護資料調和器。外部來源優先，
// 付費牆或查詢失敗時降級為本地精選資料，永不回傳錯誤。
type Reconciler struct {
	provider Provider
	dataset  *Dataset
	cache    *OutcomeCache
}

// NewReconciler 創建照護資料調和器，cache 可為 nil（表示停用）
func NewReconciler(provider Provider, dataset *Dataset, cache *OutcomeCache) *Reconciler {
	return &Reconciler{
		provider: provider,
		dataset:  dataset,
		cache:    cache,
	}
}

// Reconcile 依查詢詞優先順序取得照護資料。
// 外部查詢逐詞依序進行，首個命中即停；偵測到付費牆立即中止後續查詢。
func (r *Reconciler) Reconcile(ctx context.Context, query Query) Outcome {
	if query.IsEmpty() {
		return r.localOutcome(query, noteUnavailable)
	}

	if outcome, ok := r.cache.Get(query); ok {
		return outcome
	}

	// 未設定 API Key 時直接使用本地資料
	if !r.provider.Configured() {
		common.LogInfo("外部照護來源未設定，使用本地資料",
			zap.String("term", query.FirstTerm()),
		)
		return r.localOutcome(query, noteNotConfigured)
	}

	var outcome Outcome
	paywalled := false

	for _, term := range query.Terms() {
		result := r.provider.FetchCareData(ctx, term)
		if result.Status == AttemptPaywalled {
			common.LogWarn("偵測到付費牆，改用本地資料",
				zap.String("term", result.Term),
			)
			paywalled = true
			break
		}
		if result.Status == AttemptFound {
			outcome = Outcome{
				Source: "perenual",
				Note:   fmt.Sprintf("Data from Perenual API (matched term: %s)", result.Term),
				Data:   mapSpecies(result.Entry),
			}
			break
		}
	}

	switch {
	case paywalled:
		outcome = r.localOutcome(query, notePaywalled)
	case outcome.Source == "":
		common.LogInfo("外部照護來源查無資料，使用本地資料",
			zap.String("term", query.FirstTerm()),
		)
		outcome = r.localOutcome(query, noteUnavailable)
	}

	r.cache.Set(query, outcome)
	return outcome
}

// localOutcome 以第一個查詢詞查找本地精選資料。
// 查無資料時仍回傳 source "local" 與全空欄位，保持回應結構一致。
func (r *Reconciler) localOutcome(query Query, note string) Outcome {
	data := &Record{Images: []Image{}}
	if entry, ok := r.dataset.Lookup(query.FirstTerm()); ok {
		data = entry.Record()
		data.Images = []Image{}
	}
	return Outcome{
		Source: "local",
		Note:   note,
		Data:   data,
	}
}

// LookupLocal 僅查詢本地精選資料，不觸發外部呼叫。
// 未命中時回傳帶通用值的 fallback 結果而非錯誤。
func (r *Reconciler) LookupLocal(term string) Outcome {
	if entry, ok := r.dataset.Lookup(term); ok {
		return Outcome{
			Source: "local",
			Note:   noteLocalOnly,
			Data:   entry.Record(),
		}
	}

	return Outcome{
		Source: "fallback",
		Note:   noteNoLocalData,
		Data: &Record{
			FoundIn:   optional("Information unavailable"),
			Edibility: optional("Unknown"),
			Medicinal: optional("Information not available"),
			Toxicity:  optional("Information not available"),
			Usage:     optional("Indoor/Outdoor"),
		},
	}
}
