package handlers_test

import (
	"bytes"
	"image"
	"image/jpeg"
	"image/png"
	"net/http"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"roomlift-backend/internal/handlers"
	"roomlift-backend/internal/models"
)

func TestWatermarkApply(t *testing.T) {
	env := newTestEnv(t)

	img := image.NewNRGBA(image.Rect(0, 0, 320, 240))
	for i := range img.Pix {
		img.Pix[i] = 0xC0
	}
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, img))
	src := filepath.Join(t.TempDir(), "design.png")
	require.NoError(t, os.WriteFile(src, buf.Bytes(), 0644))

	w := env.do(t, "POST", "/api/v1/designs/watermark", models.WatermarkRequest{ImageURL: src})
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "image/jpeg", w.Header().Get("Content-Type"))

	stamped, err := jpeg.Decode(bytes.NewReader(w.Body.Bytes()))
	require.NoError(t, err)
	assert.Equal(t, 320, stamped.Bounds().Dx())
	assert.Equal(t, 240, stamped.Bounds().Dy())
}

func TestWatermarkRedirectsWhenSourceUnavailable(t *testing.T) {
	env := newTestEnv(t)

	missing := filepath.Join(t.TempDir(), "gone.png")
	w := env.do(t, "POST", "/api/v1/designs/watermark", models.WatermarkRequest{ImageURL: missing})

	assert.Equal(t, http.StatusTemporaryRedirect, w.Code)
	assert.Equal(t, "source-load", w.Header().Get(handlers.FallbackHeader))
	assert.Equal(t, missing, w.Header().Get("Location"))
}

func TestWatermarkRequiresImageURL(t *testing.T) {
	env := newTestEnv(t)

	w := env.do(t, "POST", "/api/v1/designs/watermark", models.WatermarkRequest{})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}
