package care

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"plantlens/internal/infrastructure/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeProvider 以查詢詞對照表模擬外部照護來源
type fakeProvider struct {
	configured bool
	results    map[string]AttemptResult
	calls      []string
}

func (p *fakeProvider) Configured() bool {
	return p.configured
}

func (p *fakeProvider) FetchCareData(_ context.Context, term string) AttemptResult {
	p.calls = append(p.calls, term)
	if result, ok := p.results[term]; ok {
		return result
	}
	return AttemptResult{Status: AttemptNotFound, Term: term}
}

func newTestReconciler(provider Provider, cache *OutcomeCache) *Reconciler {
	return NewReconciler(provider, NewDataset(), cache)
}

func TestReconcileUnconfiguredKey(t *testing.T) {
	provider := &fakeProvider{configured: false}
	reconciler := newTestReconciler(provider, nil)

	outcome := reconciler.Reconcile(context.Background(), Query{Primary: "Epipremnum aureum"})

	assert.Equal(t, "local", outcome.Source)
	assert.Equal(t, noteNotConfigured, outcome.Note)
	require.NotNil(t, outcome.Data)
	require.NotNil(t, outcome.Data.Toxicity)
	assert.Contains(t, *outcome.Data.Toxicity, "Toxic to humans and pets")
	assert.Empty(t, provider.calls, "未設定金鑰時不應呼叫外部來源")
}

func TestReconcileFound(t *testing.T) {
	provider := &fakeProvider{
		configured: true,
		results: map[string]AttemptResult{
			"Epipremnum aureum": {
				Status: AttemptFound,
				Term:   "Epipremnum aureum",
				Entry:  json.RawMessage(`{"common_name":"Golden Pothos","indoor":true}`),
			},
		},
	}
	reconciler := newTestReconciler(provider, nil)

	outcome := reconciler.Reconcile(context.Background(), Query{Primary: "Epipremnum aureum"})

	assert.Equal(t, "perenual", outcome.Source)
	assert.Equal(t, "Data from Perenual API (matched term: Epipremnum aureum)", outcome.Note)
	require.NotNil(t, outcome.Data)
	require.NotNil(t, outcome.Data.CommonName)
	assert.Equal(t, "Golden Pothos", *outcome.Data.CommonName)
	require.NotNil(t, outcome.Data.Usage)
	assert.Equal(t, "Indoor plant", *outcome.Data.Usage)
}

func TestReconcileTermPriority(t *testing.T) {
	// 主要詞查無資料時依序嘗試替代詞與俗名
	provider := &fakeProvider{
		configured: true,
		results: map[string]AttemptResult{
			"Golden Pothos": {
				Status: AttemptFound,
				Term:   "Golden Pothos",
				Entry:  json.RawMessage(`{"common_name":"Golden Pothos"}`),
			},
		},
	}
	reconciler := newTestReconciler(provider, nil)

	outcome := reconciler.Reconcile(context.Background(), Query{
		Primary:   "Epipremnum aureum",
		Alternate: "Epipremnum",
		Common:    "Golden Pothos",
	})

	assert.Equal(t, "perenual", outcome.Source)
	assert.Equal(t, []string{"Epipremnum aureum", "Epipremnum", "Golden Pothos"}, provider.calls)
}

func TestReconcilePaywallStopsChain(t *testing.T) {
	provider := &fakeProvider{
		configured: true,
		results: map[string]AttemptResult{
			"Epipremnum aureum": {Status: AttemptPaywalled, Term: "Epipremnum aureum"},
		},
	}
	reconciler := newTestReconciler(provider, nil)

	outcome := reconciler.Reconcile(context.Background(), Query{
		Primary: "Epipremnum aureum",
		Common:  "Golden Pothos",
	})

	assert.Equal(t, "local", outcome.Source)
	assert.Equal(t, notePaywalled, outcome.Note)
	require.NotNil(t, outcome.Data)
	assert.NotNil(t, outcome.Data.Toxicity)
	assert.Equal(t, []string{"Epipremnum aureum"}, provider.calls, "付費牆應中止後續查詢")
}

func TestReconcileAllAttemptsFailed(t *testing.T) {
	provider := &fakeProvider{configured: true}
	reconciler := newTestReconciler(provider, nil)

	outcome := reconciler.Reconcile(context.Background(), Query{Primary: "Monstera deliciosa"})

	assert.Equal(t, "local", outcome.Source)
	assert.Equal(t, noteUnavailable, outcome.Note)
	require.NotNil(t, outcome.Data)
	require.NotNil(t, outcome.Data.FoundIn)
	assert.Contains(t, *outcome.Data.FoundIn, "Mexico")
}

func TestReconcileLocalMiss(t *testing.T) {
	// 本地也查無資料時仍回傳結構一致的空白結果
	provider := &fakeProvider{configured: true}
	reconciler := newTestReconciler(provider, nil)

	outcome := reconciler.Reconcile(context.Background(), Query{Primary: "Nonexistus plantus"})

	assert.Equal(t, "local", outcome.Source)
	assert.Equal(t, noteUnavailable, outcome.Note)
	require.NotNil(t, outcome.Data)
	assert.Nil(t, outcome.Data.FoundIn)
}

func TestReconcileUsesCache(t *testing.T) {
	cfg := &config.Config{}
	cfg.Cache.Enabled = true
	cfg.Cache.MaxSize = 10
	cfg.Cache.TTL = time.Minute
	cfg.Cache.CleanupInterval = time.Minute

	cache := NewOutcomeCache(cfg)
	t.Cleanup(func() { cache.Close() })

	provider := &fakeProvider{
		configured: true,
		results: map[string]AttemptResult{
			"Aloe vera": {
				Status: AttemptFound,
				Term:   "Aloe vera",
				Entry:  json.RawMessage(`{"common_name":"Aloe"}`),
			},
		},
	}
	reconciler := newTestReconciler(provider, cache)

	query := Query{Primary: "Aloe vera"}
	first := reconciler.Reconcile(context.Background(), query)
	second := reconciler.Reconcile(context.Background(), query)

	assert.Equal(t, first, second)
	assert.Len(t, provider.calls, 1, "第二次查詢應命中快取")
}

func TestLookupLocal(t *testing.T) {
	reconciler := newTestReconciler(&fakeProvider{}, nil)

	t.Run("命中本地資料", func(t *testing.T) {
		outcome := reconciler.LookupLocal("Aloe vera")
		assert.Equal(t, "local", outcome.Source)
		assert.Equal(t, noteLocalOnly, outcome.Note)
		require.NotNil(t, outcome.Data)
		require.NotNil(t, outcome.Data.Medicinal)
		assert.Contains(t, *outcome.Data.Medicinal, "burns")
	})

	t.Run("未命中回傳通用值", func(t *testing.T) {
		outcome := reconciler.LookupLocal("Nonexistus plantus")
		assert.Equal(t, "fallback", outcome.Source)
		assert.Equal(t, noteNoLocalData, outcome.Note)
		require.NotNil(t, outcome.Data)
		assert.Equal(t, "Unknown", *outcome.Data.Edibility)
		assert.Equal(t, "Indoor/Outdoor", *outcome.Data.Usage)
	})
}
