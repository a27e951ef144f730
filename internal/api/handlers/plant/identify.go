package plant

import (
	"errors"
	"io"
	"net/http"

	"plantlens/internal/core/identify"
	imageService "plantlens/internal/core/image"
	"plantlens/internal/pkg/common"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// IdentifyRequest JSON 形式的辨識請求
// image: base64、data URI 或圖片 URL
type IdentifyRequest struct {
	Image string `json:"image" binding:"required"`
}

// HandleIdentify 處理 /plants/identify 植物辨識 API。
// 同時接受 multipart 表單（欄位 image）與 JSON 請求體。
func HandleIdentify(identifySvc *identify.Service, imageSvc *imageService.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		requestID := c.GetHeader("X-Request-ID")
		if requestID == "" {
			requestID = uuid.New().String()
			c.Header("X-Request-ID", requestID)
		}

		common.LogInfo("開始處理植物辨識請求",
			zap.String("request_id", requestID),
			zap.String("client_ip", c.ClientIP()),
			zap.String("content_type", c.ContentType()),
		)

		imageBytes, ok := readImage(c, imageSvc, requestID)
		if !ok {
			return
		}

		result, err := identifySvc.Identify(c.Request.Context(), imageBytes)
		if err != nil {
			writeIdentifyError(c, requestID, err)
			return
		}

		c.JSON(http.StatusOK, result)
	}
}

// readImage 從 multipart 表單或 JSON 請求體取出並驗證圖片。
// 失敗時自行寫入錯誤回應並回傳 false。
func readImage(c *gin.Context, imageSvc *imageService.Service, requestID string) ([]byte, bool) {
	// multipart 表單路徑
	if file, err := c.FormFile("image"); err == nil {
		f, err := file.Open()
		if err != nil {
			common.LogError("圖片檔案開啟失敗",
				zap.Error(err),
				zap.String("request_id", requestID),
			)
			c.JSON(http.StatusBadRequest, gin.H{"error": "No image provided"})
			return nil, false
		}
		defer f.Close()

		data, err := io.ReadAll(io.LimitReader(f, imageSvc.MaxSizeBytes()+1))
		if err != nil {
			common.LogError("圖片讀取失敗",
				zap.Error(err),
				zap.String("request_id", requestID),
			)
			c.JSON(http.StatusBadRequest, gin.H{"error": "No image provided"})
			return nil, false
		}

		validated, err := imageSvc.ValidateBytes(data)
		if err != nil {
			writeImageError(c, requestID, err)
			return nil, false
		}
		return validated, true
	}

	// JSON 路徑
	var req IdentifyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "No image provided"})
		return nil, false
	}

	data, err := imageSvc.ProcessImage(req.Image)
	if err != nil {
		common.LogError("圖片處理失敗",
			zap.Error(err),
			zap.String("request_id", requestID),
			zap.String("image_type", getImageType(req.Image)),
			zap.Int("image_length", len(req.Image)),
		)
		writeImageError(c, requestID, err)
		return nil, false
	}
	return data, true
}

// writeImageError 將圖片驗證錯誤轉為 HTTP 回應
func writeImageError(c *gin.Context, requestID string, err error) {
	var customErr *common.CustomError
	if errors.As(err, &customErr) {
		switch customErr.Code {
		case "NO_IMAGE":
			c.JSON(http.StatusBadRequest, gin.H{"error": "No image provided"})
		case "INVALID_IMAGE_SIZE":
			c.JSON(http.StatusBadRequest, gin.H{"error": "Image too large"})
		default:
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid image format"})
		}
		return
	}
	c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid image format", "details": err.Error()})
}

// writeIdentifyError 將辨識錯誤轉為 HTTP 回應。
// 上游錯誤透傳其狀態碼，配額與金鑰問題才不會偽裝成伺服器錯誤。
func writeIdentifyError(c *gin.Context, requestID string, err error) {
	var upstreamErr *identify.UpstreamError
	if errors.As(err, &upstreamErr) {
		common.LogError("辨識服務回應錯誤",
			zap.Int("status", upstreamErr.StatusCode),
			zap.String("request_id", requestID),
		)
		c.JSON(upstreamErr.StatusCode, gin.H{
			"error":   "Failed to identify plant",
			"details": upstreamErr.Body,
		})
		return
	}

	if errors.Is(err, common.ErrNoPlantMatch) {
		c.JSON(http.StatusNotFound, gin.H{
			"error": "No plant matches found. Please try a clearer image.",
		})
		return
	}

	if errors.Is(err, common.ErrNoImage) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "No image provided"})
		return
	}

	common.LogError("植物辨識失敗",
		zap.Error(err),
		zap.String("request_id", requestID),
	)
	c.JSON(http.StatusInternalServerError, gin.H{
		"error":   "Internal server error",
		"details": err.Error(),
	})
}
