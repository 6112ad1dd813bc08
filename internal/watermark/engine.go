// Package watermark stamps the product wordmark onto generated design images
// before download or share.
package watermark

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"image"
	"image/jpeg"
	"io"
	"net/http"
	"os"
	"strings"
	"time"

	_ "image/gif"
	_ "image/png"

	"github.com/fogleman/gg"
	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/gobold"
)

// ErrSourceLoad means the source image could not be fetched or decoded.
// Callers fall back to serving the unwatermarked original.
var ErrSourceLoad = errors.New("watermark: failed to load source image")

// ErrProcessing means the overlay or re-encode failed after a successful load.
var ErrProcessing = errors.New("watermark: failed to process image")

const (
	wordmark    = "Roomlift"
	padding     = 24.0
	fontSize    = 36.0
	jpegQuality = 90
	shadowShift = 2.0
)

type Engine struct {
	httpClient *http.Client
	fontFace   font.Face
}

func NewEngine() (*Engine, error) {
	parsed, err := truetype.Parse(gobold.TTF)
	if err != nil {
		return nil, fmt.Errorf("failed to parse wordmark font: %w", err)
	}
	face := truetype.NewFace(parsed, &truetype.Options{
		Size:    fontSize,
		DPI:     72,
		Hinting: font.HintingNone,
	})
	return &Engine{
		httpClient: &http.Client{Timeout: 30 * time.Second},
		fontFace:   face,
	}, nil
}

// Apply loads the image behind imageRef (remote URL or local path), overlays
// the wordmark in the top-right corner, and returns new JPEG bytes. The output
// dimensions equal the source dimensions and the result is deterministic for a
// given input.
func (e *Engine) Apply(ctx context.Context, imageRef string) ([]byte, error) {
	src, err := e.loadSource(ctx, imageRef)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrSourceLoad, err)
	}

	img, _, err := image.Decode(bytes.NewReader(src))
	if err != nil {
		return nil, fmt.Errorf("%w: decode: %v", ErrSourceLoad, err)
	}

	stamped, err := e.overlay(img)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrProcessing, err)
	}

	var out bytes.Buffer
	if err := jpeg.Encode(&out, stamped, &jpeg.Options{Quality: jpegQuality}); err != nil {
		return nil, fmt.Errorf("%w: encode: %v", ErrProcessing, err)
	}
	return out.Bytes(), nil
}

func (e *Engine) loadSource(ctx context.Context, imageRef string) ([]byte, error) {
	if !strings.HasPrefix(imageRef, "http://") && !strings.HasPrefix(imageRef, "https://") {
		data, err := os.ReadFile(imageRef)
		if err != nil {
			return nil, fmt.Errorf("read file: %w", err)
		}
		return data, nil
	}

	// Anonymous fetch: no credentials or cookies are attached, mirroring
	// crossorigin=anonymous loading.
	req, err := http.NewRequestWithContext(ctx, "GET", imageRef, nil)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}

	resp, err := e.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetch: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("fetch: status %d", resp.StatusCode)
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read body: %w", err)
	}
	return data, nil
}

func (e *Engine) overlay(img image.Image) (image.Image, error) {
	b := img.Bounds()
	w := float64(b.Dx())

	dc := gg.NewContext(b.Dx(), b.Dy())
	dc.DrawImage(img, 0, 0)
	dc.SetFontFace(e.fontFace)

	tw, th := dc.MeasureString(wordmark)
	x := w - tw - padding
	y := padding + th

	// Drop shadow first, for legibility over light interiors.
	dc.SetRGBA(0, 0, 0, 0.4)
	dc.DrawString(wordmark, x+shadowShift, y+shadowShift)

	// Gradient fill via an alpha mask: the wordmark is drawn as a mask, then
	// a horizontal gradient is filled through it.
	maskCtx := gg.NewContext(b.Dx(), b.Dy())
	maskCtx.SetFontFace(e.fontFace)
	maskCtx.SetRGB(1, 1, 1)
	maskCtx.DrawString(wordmark, x, y)

	if err := dc.SetMask(maskCtx.AsMask()); err != nil {
		return nil, fmt.Errorf("set mask: %w", err)
	}

	grad := gg.NewLinearGradient(x, y, x+tw, y)
	grad.AddColorStop(0, parseHexColor(0xF59E0B)) // amber
	grad.AddColorStop(1, parseHexColor(0xEF4444)) // red
	dc.SetFillStyle(grad)
	dc.DrawRectangle(x-1, y-th-1, tw+2, th+shadowShift+2)
	dc.Fill()

	return dc.Image(), nil
}
