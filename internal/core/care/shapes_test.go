package care

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtractSpecies(t *testing.T) {
	tests := []struct {
		name string
		body string
		want string
	}{
		{
			name: "data 陣列",
			body: `{"data":[{"id":1,"common_name":"pothos"},{"id":2}]}`,
			want: `{"id":1,"common_name":"pothos"}`,
		},
		{
			name: "species 陣列",
			body: `{"species":[{"id":7}]}`,
			want: `{"id":7}`,
		},
		{
			name: "species 單一物件",
			body: `{"species":{"id":9,"common_name":"aloe"}}`,
			want: `{"id":9,"common_name":"aloe"}`,
		},
		{
			name: "results 陣列",
			body: `{"results":[{"scientific_name":"Aloe vera"}]}`,
			want: `{"scientific_name":"Aloe vera"}`,
		},
		{
			name: "裸物種物件",
			body: `{"scientific_name":"Aloe vera","common_name":"aloe"}`,
			want: `{"scientific_name":"Aloe vera","common_name":"aloe"}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			entry, ok := extractSpecies([]byte(tt.body))
			require.True(t, ok)
			assert.JSONEq(t, tt.want, string(entry))
		})
	}

	t.Run("空 data 陣列", func(t *testing.T) {
		_, ok := extractSpecies([]byte(`{"data":[]}`))
		assert.False(t, ok)
	})

	t.Run("無法辨認的形狀", func(t *testing.T) {
		_, ok := extractSpecies([]byte(`{"message":"hello"}`))
		assert.False(t, ok)
	})

	t.Run("非 JSON", func(t *testing.T) {
		_, ok := extractSpecies([]byte(`<html>`))
		assert.False(t, ok)
	})
}

func TestHasEmptyDataArray(t *testing.T) {
	assert.True(t, hasEmptyDataArray([]byte(`{"data":[]}`)))
	assert.False(t, hasEmptyDataArray([]byte(`{"data":[{"id":1}]}`)))
	assert.False(t, hasEmptyDataArray([]byte(`{"results":[]}`)))
	assert.False(t, hasEmptyDataArray([]byte(`not json`)))
}

func TestPhraseDetector(t *testing.T) {
	detector := NewPhraseDetector()

	assert.True(t, detector.Detect([]byte(`{"data":[],"message":"Please Upgrade your plan"}`)))
	assert.True(t, detector.Detect([]byte(`see our Upgrade Plans for details`)))
	assert.True(t, detector.Detect([]byte(`https://perenual.com/subscription-api-pricing`)))
	assert.True(t, detector.Detect([]byte(`I'm sorry, this data is restricted`)))
	assert.False(t, detector.Detect([]byte(`{"data":[{"id":1}]}`)))
	assert.False(t, detector.Detect(nil))
}
