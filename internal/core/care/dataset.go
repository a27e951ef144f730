package care

import (
	"sort"
	"strings"
)

// Dataset 本地精選照護資料集。程序啟動時建立一次，
// 之後只讀不寫，可供多個請求並行查找而無需加鎖。
type Dataset struct {
	entries map[string]CuratedEntry
	lower   map[string]string // 小寫鍵 → 標準鍵
	keys    []string          // 排序後的標準鍵，屬名前綴掃描用（確保結果穩定）
}

// NewDataset 以內建精選資料表建立資料集
func NewDataset() *Dataset {
	return newDataset(curatedPlants)
}

func newDataset(entries map[string]CuratedEntry) *Dataset {
	d := &Dataset{
		entries: entries,
		lower:   make(map[string]string, len(entries)),
		keys:    make([]string, 0, len(entries)),
	}
	for key := range entries {
		d.lower[strings.ToLower(key)] = key
		d.keys = append(d.keys, key)
	}
	sort.Strings(d.keys)
	return d
}

// Len 回傳資料集大小
func (d *Dataset) Len() int {
	return len(d.entries)
}

// Lookup 依正規化候選鍵順序查找，首個命中即回傳；
// 全部未命中回傳 false（呼叫端視為「無本地資料」，非錯誤）。
func (d *Dataset) Lookup(rawName string) (CuratedEntry, bool) {
	candidates := normalizeCandidates(rawName)
	if len(candidates) == 0 {
		return CuratedEntry{}, false
	}

	for _, candidate := range candidates {
		if entry, ok := d.entries[candidate]; ok {
			return entry, true
		}
		if key, ok := d.lower[strings.ToLower(candidate)]; ok {
			return d.entries[key], true
		}
	}

	// 最後嘗試屬名前綴：任何小寫鍵以原始名稱的屬名開頭即命中
	genus := strings.ToLower(genusTerm(rawName))
	if genus != "" {
		for _, key := range d.keys {
			if strings.HasPrefix(strings.ToLower(key), genus) {
				return d.entries[key], true
			}
		}
	}

	return CuratedEntry{}, false
}
