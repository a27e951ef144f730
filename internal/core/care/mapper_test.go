package care

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func strValue(t *testing.T, p *string) string {
	t.Helper()
	require.NotNil(t, p)
	return *p
}

func TestMapSpecies(t *testing.T) {
	raw := json.RawMessage(`{
		"common_name": "Golden Pothos",
		"scientific_name": ["Epipremnum aureum"],
		"other_name": ["Devil's Ivy", "Money Plant"],
		"family": "Araceae",
		"origin": ["French Polynesia"],
		"type": "Vine",
		"cycle": "Perennial",
		"watering": "Average",
		"sunlight": ["part shade", "full shade"],
		"maintenance": "Low",
		"growth_rate": "High",
		"indoor": true,
		"care_level": "Easy",
		"propagation": ["Cutting", "Division"],
		"hardiness": {"min": "10", "max": "12"},
		"flowers": false,
		"fruits": false,
		"fruit_color": [],
		"poisonous_to_humans": 1,
		"poisonous_to_pets": 1,
		"default_image": {
			"thumbnail": "https://img.example/thumb.jpg",
			"small_url": "https://img.example/small.jpg",
			"regular_url": "https://img.example/regular.jpg"
		},
		"edible_leaf": false,
		"drought_tolerant": false,
		"tropical": true
	}`)

	record := mapSpecies(raw)
	require.NotNil(t, record)

	assert.Equal(t, "Golden Pothos", strValue(t, record.CommonName))
	assert.Equal(t, "Epipremnum aureum", strValue(t, record.ScientificName))
	assert.Equal(t, "Devil's Ivy, Money Plant", strValue(t, record.OtherNames))
	assert.Equal(t, "part shade, full shade", strValue(t, record.Sunlight))
	assert.Equal(t, "Cutting, Division", strValue(t, record.Propagation))
	assert.Equal(t, "10-12", strValue(t, record.Hardiness))
	assert.Equal(t, "Yes", strValue(t, record.Indoor))
	assert.Equal(t, "No", strValue(t, record.Flowers))
	assert.Equal(t, "Yes", strValue(t, record.PoisonousToHumans))
	assert.Equal(t, "Yes", strValue(t, record.PoisonousToPets))
	assert.Equal(t, "Not edible", strValue(t, record.Edibility))
	assert.Equal(t, "Yes", strValue(t, record.Tropical))

	// 推導欄位
	assert.Equal(t, "Poisonous to humans and pets", strValue(t, record.Toxicity))
	assert.Equal(t, "Indoor plant", strValue(t, record.Usage))

	// 圖片：縮圖優先 thumbnail，主圖優先 original > regular
	assert.Equal(t, "https://img.example/thumb.jpg", strValue(t, record.Thumbnail))
	require.Len(t, record.Images, 1)
	assert.Equal(t, "https://img.example/regular.jpg", record.Images[0].URL)
	assert.Equal(t, "https://img.example/thumb.jpg", record.Images[0].Thumbnail)

	// 未提供的欄位維持 nil
	assert.Nil(t, record.Description)
	assert.Nil(t, record.FruitColor)
	assert.Nil(t, record.SaltTolerant)
}

func TestMapSpeciesDerivedToxicity(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want string
	}{
		{"僅對人有毒", `{"poisonous_to_humans": true, "poisonous_to_pets": false}`, "Poisonous to humans"},
		{"僅對寵物有毒", `{"poisonous_to_humans": false, "poisonous_to_pets": true}`, "Poisonous to pets"},
		{"皆無毒", `{"poisonous_to_humans": false, "poisonous_to_pets": false}`, "Non-toxic"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			record := mapSpecies(json.RawMessage(tt.raw))
			assert.Equal(t, tt.want, strValue(t, record.Toxicity))
		})
	}

	t.Run("毒性未知時為 nil", func(t *testing.T) {
		record := mapSpecies(json.RawMessage(`{"common_name":"x"}`))
		assert.Nil(t, record.Toxicity)
		assert.Nil(t, record.Usage)
	})
}

func TestMapSpeciesFlexibleTypes(t *testing.T) {
	t.Run("字串形式的列表欄位", func(t *testing.T) {
		record := mapSpecies(json.RawMessage(`{"scientific_name": "Aloe vera", "sunlight": "full sun"}`))
		assert.Equal(t, "Aloe vera", strValue(t, record.ScientificName))
		assert.Equal(t, "full sun", strValue(t, record.Sunlight))
	})

	t.Run("數字形式的耐寒區間", func(t *testing.T) {
		record := mapSpecies(json.RawMessage(`{"hardiness": {"min": 4, "max": 9}}`))
		assert.Equal(t, "4-9", strValue(t, record.Hardiness))
	})

	t.Run("單端缺失的耐寒區間", func(t *testing.T) {
		record := mapSpecies(json.RawMessage(`{"hardiness": {"min": "4"}}`))
		assert.Nil(t, record.Hardiness)
	})

	t.Run("室外植物", func(t *testing.T) {
		record := mapSpecies(json.RawMessage(`{"indoor": 0}`))
		assert.Equal(t, "Outdoor plant", strValue(t, record.Usage))
		assert.Equal(t, "No", strValue(t, record.Indoor))
	})
}

func TestMapSpeciesInvalidPayload(t *testing.T) {
	record := mapSpecies(json.RawMessage(`[1,2,3]`))
	require.NotNil(t, record)
	assert.Nil(t, record.CommonName)
	assert.Nil(t, record.Toxicity)
}
