package care

import "strings"

// PaywallDetector 判斷外部回應是否為付費牆訊息
type PaywallDetector interface {
	Detect(payload []byte) bool
}

// 免費方案常見的付費牆提示語，比對時一律轉小寫
var defaultPaywallPhrases = []string{
	"upgrade plans",
	"subscription-api-pricing",
	"i'm sorry",
	"please upgrade",
}

// PhraseDetector 以子字串掃描偵測付費牆訊息
type PhraseDetector struct {
	phrases []string
}

// NewPhraseDetector 建立預設提示語的偵測器
func NewPhraseDetector() *PhraseDetector {
	return &PhraseDetector{phrases: defaultPaywallPhrases}
}

// Detect 掃描回應內容，任一提示語命中即視為付費牆
func (d *PhraseDetector) Detect(payload []byte) bool {
	if len(payload) == 0 {
		return false
	}
	haystack := strings.ToLower(string(payload))
	for _, phrase := range d.phrases {
		if strings.Contains(haystack, phrase) {
			return true
		}
	}
	return false
}
