package care

import (
	"strings"
	"sync"
	"time"

	"plantlens/internal/infrastructure/config"
	"plantlens/internal/pkg/common"

	"go.uber.org/zap"
)

// OutcomeCache 調和結果快取。照護資料變動極少，
// 以查詢詞組為鍵在記憶體中保留結果，避免重複呼叫外部 API。
type OutcomeCache struct {
	config *config.Config
	mu     sync.RWMutex
	store  map[string]outcomeEntry
	stats  cacheStats
}

// outcomeEntry 快取條目
type outcomeEntry struct {
	outcome     Outcome
	expiresAt   time.Time
	createdAt   time.Time
	lastAccess  time.Time
	accessCount int
}

// cacheStats 快取統計
type cacheStats struct {
	hits      int64
	misses    int64
	evictions int64
}

// NewOutcomeCache 創建調和結果快取，停用時回傳 nil
func NewOutcomeCache(cfg *config.Config) *OutcomeCache {
	if !cfg.Cache.Enabled {
		common.LogInfo("Care cache disabled")
		return nil
	}

	c := &OutcomeCache{
		config: cfg,
		store:  make(map[string]outcomeEntry),
	}

	// 啟動清理過期條目的協程
	go c.startCleanup()

	common.LogInfo("照護快取已初始化",
		zap.Int("最大容量", cfg.Cache.MaxSize),
		zap.Duration("存活時間", cfg.Cache.TTL),
		zap.Duration("清理間隔", cfg.Cache.CleanupInterval),
	)

	return c
}

// cacheKey 以小寫查詢詞組生成快取鍵，詞序視為有意義
func cacheKey(query Query) string {
	return strings.ToLower(strings.Join(query.Terms(), "|"))
}

// Get 取得快取的調和結果
func (c *OutcomeCache) Get(query Query) (Outcome, bool) {
	if c == nil {
		return Outcome{}, false
	}

	key := cacheKey(query)

	c.mu.Lock()
	defer c.mu.Unlock()

	entry, exists := c.store[key]
	if !exists {
		c.stats.misses++
		return Outcome{}, false
	}

	if time.Now().After(entry.expiresAt) {
		delete(c.store, key)
		c.stats.evictions++
		c.stats.misses++
		return Outcome{}, false
	}

	entry.lastAccess = time.Now()
	entry.accessCount++
	c.store[key] = entry
	c.stats.hits++

	common.LogDebug("照護快取命中", zap.String("鍵", key))
	return entry.outcome, true
}

// Set 寫入調和結果，容量滿時先清理過期條目再做 LRU 淘汰
func (c *OutcomeCache) Set(query Query, outcome Outcome) {
	if c == nil {
		return
	}

	key := cacheKey(query)

	c.mu.Lock()
	defer c.mu.Unlock()

	if len(c.store) >= c.config.Cache.MaxSize {
		c.cleanup()
		if len(c.store) >= c.config.Cache.MaxSize {
			c.evictLRU()
		}
	}

	now := time.Now()
	c.store[key] = outcomeEntry{
		outcome:    outcome,
		expiresAt:  now.Add(c.config.Cache.TTL),
		createdAt:  now,
		lastAccess: now,
	}
}

// startCleanup 啟動清理過期條目的協程
func (c *OutcomeCache) startCleanup() {
	ticker := time.NewTicker(c.config.Cache.CleanupInterval)
	defer ticker.Stop()

	for range ticker.C {
		c.mu.Lock()
		count := c.cleanup()
		c.mu.Unlock()
		if count > 0 {
			common.LogInfo("照護快取清理完成", zap.Int("清理數量", count))
		}
	}
}

// cleanup 清理過期條目，呼叫端需持有寫鎖
func (c *OutcomeCache) cleanup() int {
	now := time.Now()
	count := 0
	for key, entry := range c.store {
		if now.After(entry.expiresAt) {
			delete(c.store, key)
			count++
			c.stats.evictions++
		}
	}
	return count
}

// evictLRU 淘汰最少使用的條目，呼叫端需持有寫鎖
func (c *OutcomeCache) evictLRU() {
	var oldestKey string
	var oldestAccess time.Time
	var lowestAccessCount int

	for key, entry := range c.store {
		if oldestKey == "" ||
			entry.accessCount < lowestAccessCount ||
			(entry.accessCount == lowestAccessCount && entry.lastAccess.Before(oldestAccess)) {
			oldestKey = key
			oldestAccess = entry.lastAccess
			lowestAccessCount = entry.accessCount
		}
	}

	if oldestKey != "" {
		delete(c.store, oldestKey)
		c.stats.evictions++
		common.LogDebug("照護快取已淘汰(LRU)", zap.String("鍵", oldestKey))
	}
}

// Stats 取得快取統計資訊
func (c *OutcomeCache) Stats() map[string]interface{} {
	if c == nil {
		return map[string]interface{}{"enabled": false}
	}

	c.mu.RLock()
	defer c.mu.RUnlock()

	return map[string]interface{}{
		"enabled":   true,
		"size":      len(c.store),
		"max_size":  c.config.Cache.MaxSize,
		"hits":      c.stats.hits,
		"misses":    c.stats.misses,
		"evictions": c.stats.evictions,
	}
}

// Close 關閉快取並輸出統計
func (c *OutcomeCache) Close() error {
	if c == nil {
		return nil
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	c.store = make(map[string]outcomeEntry)
	common.LogInfo("照護快取已關閉",
		zap.Int64("命中次數", c.stats.hits),
		zap.Int64("未命中次數", c.stats.misses),
	)
	return nil
}
