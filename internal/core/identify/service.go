package identify

import (
	"context"
	"fmt"
	"math"

	"plantlens/internal/pkg/common"

	"go.uber.org/zap"
)

// 回傳候選數上限（最佳結果之外另附最多三筆替代結果）
const maxAlternatives = 3

// ResultImage 辨識結果中的參考圖片
type ResultImage struct {
	URL     string `json:"url"`
	Organ   string `json:"organ,omitempty"`
	Author  string `json:"author,omitempty"`
	License string `json:"license,omitempty"`
}

// AlternativeMatch 替代候選結果
type AlternativeMatch struct {
	ScientificName string   `json:"scientificName"`
	CommonNames    []string `json:"commonNames"`
	Score          int      `json:"score"`
}

// Result 辨識結果。Score 為 0-100 的百分比信心值。
type Result struct {
	ScientificName     string             `json:"scientificName"`
	CommonNames        []string           `json:"commonNames"`
	Family             string             `json:"family"`
	Genus              string             `json:"genus"`
	Score              int                `json:"score"`
	Images             []ResultImage      `json:"images"`
	EcoFact            string             `json:"ecoFact"`
	AlternativeMatches []AlternativeMatch `json:"alternativeMatches"`
}

// plantNetResponse 辨識服務的回應結構
type plantNetResponse struct {
	Results []struct {
		Score   float64 `json:"score"`
		Species struct {
			ScientificNameWithoutAuthor string   `json:"scientificNameWithoutAuthor"`
			CommonNames                 []string `json:"commonNames"`
			Family                      *struct {
				ScientificNameWithoutAuthor string `json:"scientificNameWithoutAuthor"`
			} `json:"family"`
			Genus *struct {
				ScientificNameWithoutAuthor string `json:"scientificNameWithoutAuthor"`
			} `json:"genus"`
		} `json:"species"`
		Images []struct {
			Organ   string `json:"organ"`
			Author  string `json:"author"`
			License string `json:"license"`
			URL     struct {
				O string `json:"o"`
				M string `json:"m"`
				S string `json:"s"`
			} `json:"url"`
		} `json:"images"`
	} `json:"results"`
}

// Classifier 植物辨識來源
type Classifier interface {
	Identify(ctx context.Context, image []byte) ([]byte, error)
}

// Service 植物辨識服務，封裝外部辨識來源並整理回應
type Service struct {
	classifier Classifier
}

// NewService 創建植物辨識服務
func NewService(classifier Classifier) *Service {
	return &Service{classifier: classifier}
}

// Identify 辨識圖片中的植物。
// 無候選結果回傳 ErrNoPlantMatch，上游錯誤原樣透傳供呈現層轉換狀態碼。
func (s *Service) Identify(ctx context.Context, image []byte) (*Result, error) {
	if len(image) == 0 {
		return nil, common.ErrNoImage
	}

	body, err := s.classifier.Identify(ctx, image)
	if err != nil {
		return nil, err
	}

	var resp plantNetResponse
	if err := common.ParseJSONBytes(body, &resp); err != nil {
		return nil, fmt.Errorf("failed to parse PlantNet response: %w", err)
	}

	if len(resp.Results) == 0 {
		common.LogInfo("辨識無相符結果")
		return nil, common.ErrNoPlantMatch
	}

	best := resp.Results[0]

	result := &Result{
		ScientificName:     nameOrUnknown(best.Species.ScientificNameWithoutAuthor),
		CommonNames:        orEmpty(best.Species.CommonNames),
		Family:             "Unknown",
		Genus:              "Unknown",
		Score:              percentScore(best.Score),
		Images:             []ResultImage{},
		EcoFact:            randomEcoFact(),
		AlternativeMatches: []AlternativeMatch{},
	}
	if best.Species.Family != nil && best.Species.Family.ScientificNameWithoutAuthor != "" {
		result.Family = best.Species.Family.ScientificNameWithoutAuthor
	}
	if best.Species.Genus != nil && best.Species.Genus.ScientificNameWithoutAuthor != "" {
		result.Genus = best.Species.Genus.ScientificNameWithoutAuthor
	}

	for _, img := range best.Images {
		url := img.URL.O
		if url == "" {
			url = img.URL.M
		}
		if url == "" {
			url = img.URL.S
		}
		result.Images = append(result.Images, ResultImage{
			URL:     url,
			Organ:   img.Organ,
			Author:  img.Author,
			License: img.License,
		})
	}

	// 附帶次佳候選供前端顯示
	for i := 1; i < len(resp.Results) && i <= maxAlternatives; i++ {
		match := resp.Results[i]
		result.AlternativeMatches = append(result.AlternativeMatches, AlternativeMatch{
			ScientificName: match.Species.ScientificNameWithoutAuthor,
			CommonNames:    orEmpty(match.Species.CommonNames),
			Score:          percentScore(match.Score),
		})
	}

	common.LogInfo("植物辨識完成",
		zap.String("scientific_name", result.ScientificName),
		zap.Int("score", result.Score),
		zap.Int("alternatives", len(result.AlternativeMatches)),
	)

	return result, nil
}

// percentScore 將 0-1 信心值轉為四捨五入的百分比
func percentScore(score float64) int {
	return int(math.Round(score * 100))
}

func nameOrUnknown(name string) string {
	if name == "" {
		return "Unknown"
	}
	return name
}

func orEmpty(names []string) []string {
	if names == nil {
		return []string{}
	}
	return names
}
