package identify

import (
	"context"
	"errors"
	"os"
	"testing"

	"plantlens/internal/pkg/common"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestMain(m *testing.M) {
	common.Logger = zap.NewNop()
	os.Exit(m.Run())
}

// fakeClassifier 回傳固定回應的辨識來源
type fakeClassifier struct {
	body []byte
	err  error
}

func (f *fakeClassifier) Identify(_ context.Context, _ []byte) ([]byte, error) {
	return f.body, f.err
}

const sampleResponse = `{
	"results": [
		{
			"score": 0.876,
			"species": {
				"scientificNameWithoutAuthor": "Epipremnum aureum",
				"commonNames": ["Golden Pothos", "Devil's Ivy"],
				"family": {"scientificNameWithoutAuthor": "Araceae"},
				"genus": {"scientificNameWithoutAuthor": "Epipremnum"}
			},
			"images": [
				{
					"organ": "leaf",
					"author": "someone",
					"license": "cc-by-sa",
					"url": {"o": "https://img.example/o.jpg", "m": "https://img.example/m.jpg"}
				},
				{
					"organ": "leaf",
					"url": {"m": "https://img.example/m2.jpg"}
				}
			]
		},
		{"score": 0.051, "species": {"scientificNameWithoutAuthor": "Epipremnum pinnatum"}},
		{"score": 0.032, "species": {"scientificNameWithoutAuthor": "Scindapsus pictus", "commonNames": ["Satin Pothos"]}},
		{"score": 0.021, "species": {"scientificNameWithoutAuthor": "Philodendron hederaceum"}},
		{"score": 0.011, "species": {"scientificNameWithoutAuthor": "Monstera adansonii"}}
	]
}`

func TestIdentify(t *testing.T) {
	svc := NewService(&fakeClassifier{body: []byte(sampleResponse)})

	result, err := svc.Identify(context.Background(), []byte("fake-image"))
	require.NoError(t, err)

	assert.Equal(t, "Epipremnum aureum", result.ScientificName)
	assert.Equal(t, []string{"Golden Pothos", "Devil's Ivy"}, result.CommonNames)
	assert.Equal(t, "Araceae", result.Family)
	assert.Equal(t, "Epipremnum", result.Genus)
	assert.Equal(t, 88, result.Score)
	assert.NotEmpty(t, result.EcoFact)

	// 圖片 URL 優先序 o > m > s
	require.Len(t, result.Images, 2)
	assert.Equal(t, "https://img.example/o.jpg", result.Images[0].URL)
	assert.Equal(t, "cc-by-sa", result.Images[0].License)
	assert.Equal(t, "https://img.example/m2.jpg", result.Images[1].URL)

	// 最多三筆替代候選
	require.Len(t, result.AlternativeMatches, 3)
	assert.Equal(t, "Epipremnum pinnatum", result.AlternativeMatches[0].ScientificName)
	assert.Equal(t, 5, result.AlternativeMatches[0].Score)
	assert.Equal(t, []string{}, result.AlternativeMatches[0].CommonNames)
	assert.Equal(t, []string{"Satin Pothos"}, result.AlternativeMatches[1].CommonNames)
}

func TestIdentifyUnknownDefaults(t *testing.T) {
	body := `{"results": [{"score": 0.5, "species": {}}]}`
	svc := NewService(&fakeClassifier{body: []byte(body)})

	result, err := svc.Identify(context.Background(), []byte("fake-image"))
	require.NoError(t, err)

	assert.Equal(t, "Unknown", result.ScientificName)
	assert.Equal(t, "Unknown", result.Family)
	assert.Equal(t, "Unknown", result.Genus)
	assert.Equal(t, []string{}, result.CommonNames)
	assert.Empty(t, result.AlternativeMatches)
	assert.Empty(t, result.Images)
}

func TestIdentifyNoImage(t *testing.T) {
	svc := NewService(&fakeClassifier{})

	_, err := svc.Identify(context.Background(), nil)
	assert.ErrorIs(t, err, common.ErrNoImage)
}

func TestIdentifyNoMatch(t *testing.T) {
	svc := NewService(&fakeClassifier{body: []byte(`{"results": []}`)})

	_, err := svc.Identify(context.Background(), []byte("fake-image"))
	assert.ErrorIs(t, err, common.ErrNoPlantMatch)
}

func TestIdentifyUpstreamError(t *testing.T) {
	upstream := &UpstreamError{StatusCode: 429, Body: "quota exceeded"}
	svc := NewService(&fakeClassifier{err: upstream})

	_, err := svc.Identify(context.Background(), []byte("fake-image"))

	var ue *UpstreamError
	require.True(t, errors.As(err, &ue))
	assert.Equal(t, 429, ue.StatusCode)
	assert.Equal(t, "quota exceeded", ue.Body)
}

func TestRandomEcoFact(t *testing.T) {
	for i := 0; i < 50; i++ {
		assert.Contains(t, ecoFacts, randomEcoFact())
	}
}
