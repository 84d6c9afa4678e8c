package encode

import (
	"bytes"

	"github.com/gen2brain/webp"

	"github.com/pspoerri/rastercast/internal/imageio"
	"github.com/pspoerri/rastercast/internal/raster"
)

// WebPEncoder encodes rasters as WebP using a pure-Go (WASM-based) encoder.
// No CGo or system libraries required; a system libwebp is picked up via
// purego when available, otherwise the WASM fallback is used.
type WebPEncoder struct {
	Quality int // 1-100, default 85
}

func (e *WebPEncoder) Encode(img raster.Image) ([]byte, error) {
	goImg, err := imageio.ToImage(img)
	if err != nil {
		return nil, err
	}
	quality := e.Quality
	if quality <= 0 {
		quality = 85
	}
	var buf bytes.Buffer
	opts := webp.Options{
		Lossless: false,
		Quality:  quality,
	}
	if err := webp.Encode(&buf, goImg, opts); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func (e *WebPEncoder) Format() string        { return "webp" }
func (e *WebPEncoder) FileExtension() string { return ".webp" }
