package care

import (
	"encoding/json"
	"strconv"
	"strings"

	"plantlens/internal/pkg/common"

	"go.uber.org/zap"
)

// 外部照護 API 的欄位型別不穩定（字串或陣列、布林或 0/1），
// 以下包裝型別在解碼時吸收這些差異。

// flexString 接受字串或數字
type flexString string

func (f *flexString) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		*f = flexString(s)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(data, &n); err == nil {
		*f = flexString(n.String())
		return nil
	}
	*f = ""
	return nil
}

// stringList 接受字串或字串陣列，Join 以逗號串接
type stringList []string

func (l *stringList) UnmarshalJSON(data []byte) error {
	var list []string
	if err := json.Unmarshal(data, &list); err == nil {
		*l = list
		return nil
	}
	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		if s != "" {
			*l = []string{s}
		}
		return nil
	}
	*l = nil
	return nil
}

func (l stringList) Join() string {
	return strings.Join(l, ", ")
}

// flexBool 接受布林、0/1 數字或 "true"/"false" 字串
type flexBool struct {
	value *bool
}

func (f *flexBool) UnmarshalJSON(data []byte) error {
	var b bool
	if err := json.Unmarshal(data, &b); err == nil {
		f.value = &b
		return nil
	}
	var n float64
	if err := json.Unmarshal(data, &n); err == nil {
		b := n != 0
		f.value = &b
		return nil
	}
	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		if parsed, err := strconv.ParseBool(s); err == nil {
			f.value = &parsed
		}
		return nil
	}
	return nil
}

// species 外部照護 API 的物種資料列
type species struct {
	CommonName     flexString `json:"common_name"`
	ScientificName stringList `json:"scientific_name"`
	OtherName      stringList `json:"other_name"`
	Family         flexString `json:"family"`
	Origin         stringList `json:"origin"`
	Type           flexString `json:"type"`
	Dimension      flexString `json:"dimension"`
	Cycle          flexString `json:"cycle"`
	Watering       flexString `json:"watering"`
	Sunlight       stringList `json:"sunlight"`
	Maintenance    flexString `json:"maintenance"`
	GrowthRate     flexString `json:"growth_rate"`
	Indoor         flexBool   `json:"indoor"`

	CareLevel   flexString `json:"care_level"`
	Description flexString `json:"description"`

	Propagation stringList `json:"propagation"`
	Hardiness   *struct {
		Min flexString `json:"min"`
		Max flexString `json:"max"`
	} `json:"hardiness"`

	Flowers         flexBool   `json:"flowers"`
	FloweringSeason flexString `json:"flowering_season"`
	Fruits          flexBool   `json:"fruits"`
	FruitColor      stringList `json:"fruit_color"`

	PoisonousToHumans flexBool `json:"poisonous_to_humans"`
	PoisonousToPets   flexBool `json:"poisonous_to_pets"`

	DefaultImage *struct {
		Thumbnail   string `json:"thumbnail"`
		SmallURL    string `json:"small_url"`
		MediumURL   string `json:"medium_url"`
		RegularURL  string `json:"regular_url"`
		OriginalURL string `json:"original_url"`
	} `json:"default_image"`

	EdibleLeaf      flexBool   `json:"edible_leaf"`
	DroughtTolerant flexBool   `json:"drought_tolerant"`
	SaltTolerant    flexBool   `json:"salt_tolerant"`
	Thorny          flexBool   `json:"thorny"`
	Invasive        flexBool   `json:"invasive"`
	Tropical        flexBool   `json:"tropical"`
	Medicinal       flexBool   `json:"medicinal"`
	Cuisine         flexBool   `json:"cuisine"`
}

// mapSpecies 將外部物種資料正規化為統一照護資料。
// 解碼失敗時回傳空的 Record，缺欄位一律視為未知。
func mapSpecies(raw json.RawMessage) *Record {
	var sp species
	if err := json.Unmarshal(raw, &sp); err != nil {
		common.LogWarn("外部物種資料解析失敗", zap.Error(err))
		return &Record{}
	}

	record := &Record{
		CommonName:     optional(string(sp.CommonName)),
		ScientificName: optional(sp.ScientificName.Join()),
		OtherNames:     optional(sp.OtherName.Join()),
		Family:         optional(string(sp.Family)),
		Origin:         optional(sp.Origin.Join()),
		Type:           optional(string(sp.Type)),
		Dimension:      optional(string(sp.Dimension)),
		Cycle:          optional(string(sp.Cycle)),
		Watering:       optional(string(sp.Watering)),
		Sunlight:       optional(sp.Sunlight.Join()),
		Maintenance:    optional(string(sp.Maintenance)),
		GrowthRate:     optional(string(sp.GrowthRate)),
		Indoor:         yesNo(sp.Indoor.value),

		CareLevel:   optional(string(sp.CareLevel)),
		Description: optional(string(sp.Description)),

		Propagation: optional(sp.Propagation.Join()),

		Flowers:         yesNo(sp.Flowers.value),
		FloweringSeason: optional(string(sp.FloweringSeason)),
		Fruits:          yesNo(sp.Fruits.value),
		FruitColor:      optional(sp.FruitColor.Join()),

		PoisonousToHumans: yesNo(sp.PoisonousToHumans.value),
		PoisonousToPets:   yesNo(sp.PoisonousToPets.value),

		DroughtTolerant: yesNo(sp.DroughtTolerant.value),
		SaltTolerant:    yesNo(sp.SaltTolerant.value),
		Thorny:          yesNo(sp.Thorny.value),
		Invasive:        yesNo(sp.Invasive.value),
		Tropical:        yesNo(sp.Tropical.value),
		Medicinal:       yesNo(sp.Medicinal.value),
		Cuisine:         yesNo(sp.Cuisine.value),

		Images: []Image{},
	}

	// 耐寒區間：兩端皆有值才組合
	if sp.Hardiness != nil && sp.Hardiness.Min != "" && sp.Hardiness.Max != "" {
		record.Hardiness = optional(string(sp.Hardiness.Min) + "-" + string(sp.Hardiness.Max))
	}

	if img := sp.DefaultImage; img != nil {
		record.Thumbnail = optional(firstNonEmpty(img.Thumbnail, img.SmallURL))
		if url := firstNonEmpty(img.OriginalURL, img.RegularURL, img.MediumURL, img.SmallURL); url != "" {
			record.Images = append(record.Images, Image{URL: url, Thumbnail: img.Thumbnail})
		}
	}

	// 可食性摘要
	if sp.EdibleLeaf.value != nil {
		if *sp.EdibleLeaf.value {
			record.Edibility = optional("Leaves edible")
		} else {
			record.Edibility = optional("Not edible")
		}
	}

	record.Toxicity = deriveToxicity(sp.PoisonousToHumans.value, sp.PoisonousToPets.value)
	record.Usage = deriveUsage(sp.Indoor.value)

	return record
}

// deriveToxicity 由毒性旗標推導摘要，兩者皆未知時回傳 nil
func deriveToxicity(humans, pets *bool) *string {
	switch {
	case humans != nil && *humans && pets != nil && *pets:
		return optional("Poisonous to humans and pets")
	case humans != nil && *humans:
		return optional("Poisonous to humans")
	case pets != nil && *pets:
		return optional("Poisonous to pets")
	case humans != nil && pets != nil:
		return optional("Non-toxic")
	default:
		return nil
	}
}

// deriveUsage 由室內旗標推導用途摘要
func deriveUsage(indoor *bool) *string {
	if indoor == nil {
		return nil
	}
	if *indoor {
		return optional("Indoor plant")
	}
	return optional("Outdoor plant")
}

// yesNo 布林轉 "Yes"/"No"，未知回傳 nil
func yesNo(b *bool) *string {
	if b == nil {
		return nil
	}
	if *b {
		return optional("Yes")
	}
	return optional("No")
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
