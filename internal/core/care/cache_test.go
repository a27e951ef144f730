package care

import (
	"fmt"
	"testing"
	"time"

	"plantlens/internal/infrastructure/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestCache(t *testing.T, maxSize int, ttl time.Duration) *OutcomeCache {
	t.Helper()
	cfg := &config.Config{}
	cfg.Cache.Enabled = true
	cfg.Cache.MaxSize = maxSize
	cfg.Cache.TTL = ttl
	cfg.Cache.CleanupInterval = time.Hour

	cache := NewOutcomeCache(cfg)
	require.NotNil(t, cache)
	t.Cleanup(func() { cache.Close() })
	return cache
}

func TestOutcomeCacheSetGet(t *testing.T) {
	cache := newTestCache(t, 10, time.Minute)
	query := Query{Primary: "Aloe vera"}
	outcome := Outcome{Source: "perenual", Note: "test"}

	_, ok := cache.Get(query)
	assert.False(t, ok)

	cache.Set(query, outcome)

	got, ok := cache.Get(query)
	require.True(t, ok)
	assert.Equal(t, outcome, got)

	// 查詢詞大小寫不影響快取鍵
	got, ok = cache.Get(Query{Primary: "ALOE VERA"})
	require.True(t, ok)
	assert.Equal(t, outcome, got)
}

func TestOutcomeCacheExpiry(t *testing.T) {
	cache := newTestCache(t, 10, 10*time.Millisecond)
	query := Query{Primary: "Aloe vera"}
	cache.Set(query, Outcome{Source: "perenual"})

	time.Sleep(30 * time.Millisecond)

	_, ok := cache.Get(query)
	assert.False(t, ok)
}

func TestOutcomeCacheEviction(t *testing.T) {
	cache := newTestCache(t, 3, time.Minute)
	for i := 0; i < 5; i++ {
		cache.Set(Query{Primary: fmt.Sprintf("plant-%d", i)}, Outcome{Source: "local"})
	}

	stats := cache.Stats()
	assert.LessOrEqual(t, stats["size"].(int), 3)
}

func TestOutcomeCacheNilSafe(t *testing.T) {
	var cache *OutcomeCache

	_, ok := cache.Get(Query{Primary: "Aloe vera"})
	assert.False(t, ok)

	// 停用時寫入與關閉皆為 no-op
	cache.Set(Query{Primary: "Aloe vera"}, Outcome{})
	assert.NoError(t, cache.Close())
	assert.Equal(t, false, cache.Stats()["enabled"])
}
