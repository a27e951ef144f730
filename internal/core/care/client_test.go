package care

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"plantlens/internal/infrastructure/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	cfg := &config.Config{}
	cfg.Perenual.APIKey = "test-key"
	cfg.Perenual.BaseURL = server.URL
	cfg.Perenual.Timeout = 5 * time.Second

	return NewClient(cfg)
}

func TestClientConfigured(t *testing.T) {
	cfg := &config.Config{}
	cfg.Perenual.BaseURL = "https://example.com"
	assert.False(t, NewClient(cfg).Configured())

	cfg.Perenual.APIKey = "key"
	assert.True(t, NewClient(cfg).Configured())
}

func TestFetchCareDataExactMatch(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "test-key", r.URL.Query().Get("key"))
		assert.Equal(t, "Epipremnum aureum", r.URL.Query().Get("q"))
		w.Write([]byte(`{"data":[{"common_name":"Golden Pothos"}]}`))
	})

	result := client.FetchCareData(context.Background(), "Epipremnum aureum")
	assert.Equal(t, AttemptFound, result.Status)
	assert.Equal(t, "Epipremnum aureum", result.Term)
	assert.JSONEq(t, `{"common_name":"Golden Pothos"}`, string(result.Entry))
}

func TestFetchCareDataPaywall(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"data":[],"message":"please upgrade to access this species"}`))
	})

	result := client.FetchCareData(context.Background(), "Epipremnum aureum")
	assert.Equal(t, AttemptPaywalled, result.Status)
}

func TestFetchCareDataEntryPaywallScan(t *testing.T) {
	// 付費提示夾帶在資料列內也要攔截
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"data":[{"description":"See our upgrade plans for full data"}]}`))
	})

	result := client.FetchCareData(context.Background(), "Aloe vera")
	assert.Equal(t, AttemptPaywalled, result.Status)
}

func TestFetchCareDataFuzzyRetry(t *testing.T) {
	var queries []string
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query().Get("q")
		queries = append(queries, q)
		if q == "Aloevera" {
			w.Write([]byte(`{"data":[{"common_name":"Aloe"}]}`))
			return
		}
		w.Write([]byte(`{"data":[]}`))
	})

	result := client.FetchCareData(context.Background(), "Aloe vera")
	require.Equal(t, AttemptFound, result.Status)
	assert.Equal(t, "Aloevera", result.Term)
	assert.Contains(t, queries, "Aloe vera")
}

func TestFetchCareDataGenusRetryAfterHTTPFailure(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Query().Get("q") == "Monstera deliciosa" {
			w.WriteHeader(http.StatusInternalServerError)
			return
		}
		w.Write([]byte(`{"data":[{"common_name":"Monstera"}]}`))
	})

	result := client.FetchCareData(context.Background(), "Monstera deliciosa")
	require.Equal(t, AttemptFound, result.Status)
	assert.Equal(t, "Monstera", result.Term)
}

func TestFetchCareDataGenusPartialRetry(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Query().Get("q") == "Lavandula" {
			w.Write([]byte(`{"data":[{"common_name":"Lavender"}]}`))
			return
		}
		w.Write([]byte(`{"data":[]}`))
	})

	result := client.FetchCareData(context.Background(), "Lavandula angustifolia")
	require.Equal(t, AttemptFound, result.Status)
	assert.Equal(t, "Lavandula", result.Term)
}

func TestFetchCareDataNotFound(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"data":[]}`))
	})

	result := client.FetchCareData(context.Background(), "Fern")
	assert.Equal(t, AttemptNotFound, result.Status)
	assert.Nil(t, result.Entry)
}

func TestFetchCareDataEmptyTerm(t *testing.T) {
	requested := false
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		requested = true
	})
	defer func() { assert.False(t, requested, "不應送出任何請求") }()

	result := client.FetchCareData(context.Background(), "   ")
	assert.Equal(t, AttemptNotFound, result.Status)
}
