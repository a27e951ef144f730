package care

import (
	"regexp"
	"strings"
)

// 括號內的命名者或附註，例如 "Monstera deliciosa (Liebm.)"
var parenthesized = regexp.MustCompile(`\(.*?\)`)

// normalizeCandidates 將原始學名展開為查找鍵序列，依序為：
//  1. 原字串（完全比對）
//  2. 去除括號附註後的前兩個詞（屬名+種名）
//  3. 小寫完全比對
//  4. 小寫屬名前綴（比對任何以此屬名開頭的資料鍵）
//
// 序列為有限且預先算好，查找時依序嘗試、首個命中即停。
func normalizeCandidates(raw string) []string {
	if raw == "" {
		return nil
	}

	candidates := []string{raw}

	// 屬名+種名：去括號、修剪、取前兩個詞
	stripped := strings.TrimSpace(parenthesized.ReplaceAllString(raw, ""))
	fields := strings.Fields(stripped)
	if len(fields) >= 2 {
		genusSpecies := fields[0] + " " + fields[1]
		if genusSpecies != raw {
			candidates = append(candidates, genusSpecies)
		}
	}

	// 小寫完全比對
	lower := strings.ToLower(raw)
	if lower != raw {
		candidates = append(candidates, lower)
	}

	// 小寫屬名前綴
	if lowerFields := strings.Fields(lower); len(lowerFields) > 0 {
		genus := lowerFields[0]
		if genus != lower {
			candidates = append(candidates, genus)
		}
	}

	return candidates
}

// genusTerm 取查詢詞的第一個詞（視為屬名）
func genusTerm(term string) string {
	fields := strings.Fields(term)
	if len(fields) == 0 {
		return ""
	}
	return fields[0]
}

// collapseTerm 移除查詢詞內部空白，用於模糊重試
func collapseTerm(term string) string {
	return strings.Join(strings.Fields(term), "")
}
