package image

import (
	"bytes"
	"encoding/base64"
	"fmt"
	"image"
	"io"
	"net/http"
	"strings"
	"time"

	_ "image/gif"  // 支援 GIF
	_ "image/jpeg" // 支援 JPEG
	_ "image/png"  // 支援 PNG

	_ "golang.org/x/image/webp" // 支援 WebP

	"plantlens/internal/pkg/common"
)

// Service 圖片處理服務。接受 URL、data URI 或裸 base64 輸入，
// 驗證格式與大小後回傳原始圖片位元組供辨識服務上傳。
type Service struct {
	maxSizeBytes int64
	httpClient   *http.Client
}

// NewService 創建新的圖片處理服務
func NewService(maxSizeBytes int64) *Service {
	return &Service{
		maxSizeBytes: maxSizeBytes,
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
}

// ProcessImage 將各種輸入形式的圖片轉為位元組並驗證
func (s *Service) ProcessImage(imageData string) ([]byte, error) {
	imageData = strings.TrimSpace(imageData)
	if imageData == "" {
		return nil, common.ErrNoImage
	}

	// URL 形式：下載後驗證
	if strings.HasPrefix(imageData, "http://") || strings.HasPrefix(imageData, "https://") {
		return s.downloadImage(imageData)
	}

	// data URI 形式：去除前綴後解碼
	payload := imageData
	if strings.HasPrefix(imageData, "data:image/") {
		parts := strings.SplitN(imageData, ",", 2)
		if len(parts) != 2 {
			return nil, common.ErrInvalidImageFormat
		}
		payload = parts[1]
	}

	decoded, err := base64.StdEncoding.DecodeString(payload)
	if err != nil {
		return nil, common.ErrInvalidImageFormat
	}

	return s.validateBytes(decoded)
}

// ValidateBytes 驗證已上傳的圖片位元組（multipart 表單路徑）
func (s *Service) ValidateBytes(data []byte) ([]byte, error) {
	if len(data) == 0 {
		return nil, common.ErrNoImage
	}
	return s.validateBytes(data)
}

// MaxSizeBytes 圖片大小上限
func (s *Service) MaxSizeBytes() int64 {
	return s.maxSizeBytes
}

// downloadImage 下載圖片並驗證，下載量受大小上限約束
func (s *Service) downloadImage(url string) ([]byte, error) {
	resp, err := s.httpClient.Get(url)
	if err != nil {
		return nil, fmt.Errorf("failed to download image: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("failed to download image: status code %d", resp.StatusCode)
	}

	// 多讀一個位元組以偵測超限
	data, err := io.ReadAll(io.LimitReader(resp.Body, s.maxSizeBytes+1))
	if err != nil {
		return nil, fmt.Errorf("failed to read image data: %w", err)
	}

	return s.validateBytes(data)
}

// validateBytes 驗證圖片大小與格式
func (s *Service) validateBytes(data []byte) ([]byte, error) {
	if int64(len(data)) > s.maxSizeBytes {
		return nil, common.ErrInvalidImageSize
	}

	_, format, err := image.DecodeConfig(bytes.NewReader(data))
	if err != nil {
		return nil, common.ErrInvalidImageFormat
	}
	if !isSupportedFormat(format) {
		return nil, common.ErrInvalidImageFormat
	}

	return data, nil
}

// isSupportedFormat 檢查圖片格式是否支援
func isSupportedFormat(format string) bool {
	supportedFormats := map[string]bool{
		"jpeg": true,
		"jpg":  true,
		"png":  true,
		"gif":  true,
		"webp": true,
	}
	return supportedFormats[format]
}
