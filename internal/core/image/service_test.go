package image

import (
	"bytes"
	"encoding/base64"
	"image"
	"image/color"
	"image/png"
	"net/http"
	"net/http/httptest"
	"testing"

	"plantlens/internal/pkg/common"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// pngBytes 產生一張可解碼的測試圖片
func pngBytes(t *testing.T) []byte {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, 2, 2))
	img.Set(0, 0, color.RGBA{R: 34, G: 139, B: 34, A: 255})
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, img))
	return buf.Bytes()
}

func TestProcessImageBase64(t *testing.T) {
	svc := NewService(1 << 20)
	raw := pngBytes(t)
	encoded := base64.StdEncoding.EncodeToString(raw)

	t.Run("裸 base64", func(t *testing.T) {
		data, err := svc.ProcessImage(encoded)
		require.NoError(t, err)
		assert.Equal(t, raw, data)
	})

	t.Run("data URI", func(t *testing.T) {
		data, err := svc.ProcessImage("data:image/png;base64," + encoded)
		require.NoError(t, err)
		assert.Equal(t, raw, data)
	})
}

func TestProcessImageURL(t *testing.T) {
	raw := pngBytes(t)
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write(raw)
	}))
	t.Cleanup(server.Close)

	svc := NewService(1 << 20)
	data, err := svc.ProcessImage(server.URL + "/plant.png")
	require.NoError(t, err)
	assert.Equal(t, raw, data)
}

func TestProcessImageErrors(t *testing.T) {
	svc := NewService(1 << 20)

	t.Run("空輸入", func(t *testing.T) {
		_, err := svc.ProcessImage("")
		assert.ErrorIs(t, err, common.ErrNoImage)
	})

	t.Run("非 base64", func(t *testing.T) {
		_, err := svc.ProcessImage("not-valid-base64!!!")
		assert.ErrorIs(t, err, common.ErrInvalidImageFormat)
	})

	t.Run("非圖片內容", func(t *testing.T) {
		encoded := base64.StdEncoding.EncodeToString([]byte("plain text"))
		_, err := svc.ProcessImage(encoded)
		assert.ErrorIs(t, err, common.ErrInvalidImageFormat)
	})

	t.Run("損壞的 data URI", func(t *testing.T) {
		_, err := svc.ProcessImage("data:image/png;base64")
		assert.ErrorIs(t, err, common.ErrInvalidImageFormat)
	})
}

func TestValidateBytesSizeLimit(t *testing.T) {
	raw := pngBytes(t)
	svc := NewService(int64(len(raw) - 1))

	_, err := svc.ValidateBytes(raw)
	assert.ErrorIs(t, err, common.ErrInvalidImageSize)
}

func TestValidateBytesEmpty(t *testing.T) {
	svc := NewService(1 << 20)
	_, err := svc.ValidateBytes(nil)
	assert.ErrorIs(t, err, common.ErrNoImage)
}
