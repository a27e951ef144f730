package plant

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
)

// CatalogPlant 瀏覽目錄中的植物
type CatalogPlant struct {
	ID             int    `json:"id"`
	ScientificName string `json:"scientificName"`
	CommonName     string `json:"commonName"`
	Family         string `json:"family"`
	Genus          string `json:"genus"`
	ImageURL       string `json:"imageUrl"`
	Year           int    `json:"year"`
	Slug           string `json:"slug"`
}

// 靜態瀏覽目錄，供前端的探索頁面使用
var catalogPlants = []CatalogPlant{
	{ID: 1, ScientificName: "Ficus lyrata", CommonName: "Fiddle Leaf Fig", Family: "Moraceae", Genus: "Ficus", ImageURL: "/plants/ficus-lyrata.jpg", Year: 1894, Slug: "ficus-lyrata"},
	{ID: 2, ScientificName: "Monstera deliciosa", CommonName: "Swiss Cheese Plant", Family: "Araceae", Genus: "Monstera", ImageURL: "/plants/monstera-deliciosa.jpg", Year: 1840, Slug: "monstera-deliciosa"},
	{ID: 3, ScientificName: "Epipremnum aureum", CommonName: "Golden Pothos", Family: "Araceae", Genus: "Epipremnum", ImageURL: "/plants/epipremnum-aureum.jpg", Year: 1880, Slug: "epipremnum-aureum"},
	{ID: 4, ScientificName: "Sansevieria trifasciata", CommonName: "Snake Plant", Family: "Asparagaceae", Genus: "Sansevieria", ImageURL: "/plants/sansevieria-trifasciata.jpg", Year: 1903, Slug: "sansevieria-trifasciata"},
	{ID: 5, ScientificName: "Spathiphyllum wallisii", CommonName: "Peace Lily", Family: "Araceae", Genus: "Spathiphyllum", ImageURL: "/plants/spathiphyllum-wallisii.jpg", Year: 1877, Slug: "spathiphyllum-wallisii"},
	{ID: 6, ScientificName: "Chlorophytum comosum", CommonName: "Spider Plant", Family: "Asparagaceae", Genus: "Chlorophytum", ImageURL: "/plants/chlorophytum-comosum.jpg", Year: 1862, Slug: "chlorophytum-comosum"},
	{ID: 7, ScientificName: "Aloe vera", CommonName: "Aloe", Family: "Asphodelaceae", Genus: "Aloe", ImageURL: "/plants/aloe-vera.jpg", Year: 1753, Slug: "aloe-vera"},
	{ID: 8, ScientificName: "Ficus elastica", CommonName: "Rubber Plant", Family: "Moraceae", Genus: "Ficus", ImageURL: "/plants/ficus-elastica.jpg", Year: 1819, Slug: "ficus-elastica"},
	{ID: 9, ScientificName: "Zamioculcas zamiifolia", CommonName: "ZZ Plant", Family: "Araceae", Genus: "Zamioculcas", ImageURL: "/plants/zamioculcas-zamiifolia.jpg", Year: 1856, Slug: "zamioculcas-zamiifolia"},
	{ID: 10, ScientificName: "Lavandula angustifolia", CommonName: "English Lavender", Family: "Lamiaceae", Genus: "Lavandula", ImageURL: "/plants/lavandula-angustifolia.jpg", Year: 1768, Slug: "lavandula-angustifolia"},
}

const (
	defaultBrowsePage  = 1
	defaultBrowseLimit = 15
)

// HandleBrowse 處理 /plants/browse 目錄瀏覽 API，支援關鍵字過濾與分頁
func HandleBrowse() gin.HandlerFunc {
	return func(c *gin.Context) {
		query := strings.ToLower(c.Query("q"))
		page := positiveIntQuery(c, "page", defaultBrowsePage)
		limit := positiveIntQuery(c, "limit", defaultBrowseLimit)

		filtered := catalogPlants
		if query != "" {
			filtered = make([]CatalogPlant, 0, len(catalogPlants))
			for _, p := range catalogPlants {
				if strings.Contains(strings.ToLower(p.ScientificName), query) ||
					strings.Contains(strings.ToLower(p.CommonName), query) ||
					strings.Contains(strings.ToLower(p.Family), query) ||
					strings.Contains(strings.ToLower(p.Genus), query) {
					filtered = append(filtered, p)
				}
			}
		}

		start := (page - 1) * limit
		end := start + limit
		if start > len(filtered) {
			start = len(filtered)
		}
		if end > len(filtered) {
			end = len(filtered)
		}

		c.JSON(http.StatusOK, gin.H{
			"plants": filtered[start:end],
			"meta": gin.H{
				"page":  page,
				"total": len(filtered),
			},
		})
	}
}

// positiveIntQuery 解析正整數查詢參數，無效值回退預設值
func positiveIntQuery(c *gin.Context, name string, fallback int) int {
	value, err := strconv.Atoi(c.Query(name))
	if err != nil || value < 1 {
		return fallback
	}
	return value
}
