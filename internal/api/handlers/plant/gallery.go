package plant

import (
	"net/http"

	"plantlens/internal/core/gallery"
	"plantlens/internal/pkg/common"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// SaveGalleryRequest 儲存辨識紀錄的請求。
// 使用者身分由 X-User-ID 標頭提供，身分驗證由外部閘道負責。
type SaveGalleryRequest struct {
	ScientificName string   `json:"scientificName" binding:"required"`
	CommonNames    []string `json:"commonNames"`
	Family         string   `json:"family"`
	Genus          string   `json:"genus"`
	Score          int      `json:"score"`
	UploadedImage  string   `json:"uploadedImage"`
}

// requireUser 取出 X-User-ID 標頭，缺少時寫入 400 回應
func requireUser(c *gin.Context) (string, bool) {
	userID := c.GetHeader("X-User-ID")
	if userID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing X-User-ID header"})
		return "", false
	}
	return userID, true
}

// requireStore 檢查圖鑑儲存是否啟用
func requireStore(c *gin.Context, store *gallery.Store) bool {
	if store == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "Gallery storage is disabled"})
		return false
	}
	return true
}

// HandleGallerySave 處理 POST /gallery 儲存辨識紀錄
func HandleGallerySave(store *gallery.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		if !requireStore(c, store) {
			return
		}
		userID, ok := requireUser(c)
		if !ok {
			return
		}

		var req SaveGalleryRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
			return
		}

		result, err := store.Save(c.Request.Context(), gallery.Item{
			UserID:         userID,
			ScientificName: req.ScientificName,
			CommonNames:    req.CommonNames,
			Family:         req.Family,
			Genus:          req.Genus,
			Score:          req.Score,
			UploadedImage:  req.UploadedImage,
		})
		if err != nil {
			if common.IsValidationError(err) {
				c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
				return
			}
			common.LogError("圖鑑儲存失敗",
				zap.Error(err),
				zap.String("user_id", userID),
			)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save plant result"})
			return
		}

		status := http.StatusCreated
		if result.Duplicate {
			status = http.StatusOK
		}
		c.JSON(status, result)
	}
}

// HandleGalleryList 處理 GET /gallery 取得使用者的辨識紀錄
func HandleGalleryList(store *gallery.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		if !requireStore(c, store) {
			return
		}
		userID, ok := requireUser(c)
		if !ok {
			return
		}

		items, err := store.List(c.Request.Context(), userID)
		if err != nil {
			common.LogError("圖鑑查詢失敗",
				zap.Error(err),
				zap.String("user_id", userID),
			)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch plant history"})
			return
		}

		c.JSON(http.StatusOK, gin.H{"items": items})
	}
}

// HandleGalleryDelete 處理 DELETE /gallery/:id 刪除辨識紀錄
func HandleGalleryDelete(store *gallery.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		if !requireStore(c, store) {
			return
		}
		userID, ok := requireUser(c)
		if !ok {
			return
		}

		id := c.Param("id")
		deleted, err := store.Delete(c.Request.Context(), userID, id)
		if err != nil {
			common.LogError("圖鑑刪除失敗",
				zap.Error(err),
				zap.String("user_id", userID),
				zap.String("id", id),
			)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete plant result"})
			return
		}
		if !deleted {
			c.JSON(http.StatusNotFound, gin.H{"error": "Plant result not found"})
			return
		}

		c.JSON(http.StatusOK, gin.H{"deleted": true})
	}
}
