package care

import (
	"encoding/json"
	"strings"
)

// Query 照護資料查詢詞，依優先順序排列（主要學名、屬名替代詞、俗名）
type Query struct {
	Primary   string `json:"q"`
	Alternate string `json:"alt,omitempty"`
	Common    string `json:"common,omitempty"`
}

// Terms 依序回傳所有非空查詢詞
func (q Query) Terms() []string {
	terms := make([]string, 0, 3)
	for _, t := range []string{q.Primary, q.Alternate, q.Common} {
		if strings.TrimSpace(t) != "" {
			terms = append(terms, t)
		}
	}
	return terms
}

// FirstTerm 回傳第一個非空查詢詞，全空時回傳空字串
func (q Query) FirstTerm() string {
	if terms := q.Terms(); len(terms) > 0 {
		return terms[0]
	}
	return ""
}

// IsEmpty 檢查是否沒有任何查詢詞
func (q Query) IsEmpty() bool {
	return len(q.Terms()) == 0
}

// AttemptStatus 單次外部查詢的結果狀態
type AttemptStatus int

const (
	// AttemptNotFound 查無資料（含網路錯誤，一律不視為致命）
	AttemptNotFound AttemptStatus = iota
	// AttemptFound 取得可用的物種資料
	AttemptFound
	// AttemptPaywalled 回應中偵測到付費牆訊息
	AttemptPaywalled
)

// AttemptResult 單次外部查詢的結果
type AttemptResult struct {
	Status AttemptStatus
	Term   string          // 觸發此結果的查詢詞
	Entry  json.RawMessage // Status 為 AttemptFound 時的原始物種資料
}

// Image 照護資料中的圖片
type Image struct {
	URL       string `json:"url"`
	Thumbnail string `json:"thumbnail,omitempty"`
}

// Record 統一的照護資料結構。所有欄位皆可為 null，
// 缺值代表「未知」而非錯誤，欄位名稱即對外 JSON 契約。
type Record struct {
	CommonName     *string `json:"commonName"`
	ScientificName *string `json:"scientificName"`
	OtherNames     *string `json:"otherNames"`
	Family         *string `json:"family"`
	Origin         *string `json:"origin"`
	Type           *string `json:"type"`
	Dimension      *string `json:"dimension"`
	Cycle          *string `json:"cycle"`
	Watering       *string `json:"watering"`
	Sunlight       *string `json:"sunlight"`
	Maintenance    *string `json:"maintenance"`
	GrowthRate     *string `json:"growthRate"`
	Indoor         *string `json:"indoor"`

	CareLevel   *string `json:"care_level"`
	Description *string `json:"description"`

	Propagation *string `json:"propagation"`
	Hardiness   *string `json:"hardiness"`

	Flowers         *string `json:"flowers"`
	FloweringSeason *string `json:"flowering_season"`
	Fruits          *string `json:"fruits"`
	FruitColor      *string `json:"fruit_color"`

	PoisonousToHumans *string `json:"poisonous_to_humans"`
	PoisonousToPets   *string `json:"poisonous_to_pets"`

	Thumbnail *string `json:"thumbnail"`
	Images    []Image `json:"images"`

	Edibility       *string `json:"edibility"`
	DroughtTolerant *string `json:"drought_tolerant"`
	SaltTolerant    *string `json:"salt_tolerant"`
	Thorny          *string `json:"thorny"`
	Invasive        *string `json:"invasive"`
	Tropical        *string `json:"tropical"`

	Medicinal *string `json:"medicinal"`
	Cuisine   *string `json:"cuisine"`

	// 由原始欄位推導的摘要
	Toxicity *string `json:"toxicity"`
	Usage    *string `json:"usage"`

	// 本地精選資料特有欄位
	FoundIn      *string `json:"foundIn"`
	AirPurifying *string `json:"airPurifying"`
	Image        *string `json:"image"`
}

// Outcome 調和後的最終結果，source 記錄資料來源供呈現層顯示
type Outcome struct {
	Source string  `json:"source"` // "perenual" | "local" | "fallback"
	Note   string  `json:"note"`   // 說明為何使用該來源
	Data   *Record `json:"data"`
}

// CuratedEntry 本地精選資料列，以標準學名為鍵，執行期不可變
type CuratedEntry struct {
	FoundIn      string `json:"foundIn"`
	Edibility    string `json:"edibility"`
	Medicinal    string `json:"medicinal"`
	Toxicity     string `json:"toxicity"`
	Usage        string `json:"usage"`
	AirPurifying string `json:"airPurifying"`
	Image        string `json:"image"`
}

// Record 將精選資料列轉為統一照護資料
func (e CuratedEntry) Record() *Record {
	return &Record{
		FoundIn:      optional(e.FoundIn),
		Edibility:    optional(e.Edibility),
		Medicinal:    optional(e.Medicinal),
		Toxicity:     optional(e.Toxicity),
		Usage:        optional(e.Usage),
		AirPurifying: optional(e.AirPurifying),
		Image:        optional(e.Image),
	}
}

// optional 空字串轉為 nil
func optional(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
