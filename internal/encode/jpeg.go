package encode

import (
	"bytes"
	"image/jpeg"

	"github.com/pspoerri/rastercast/internal/imageio"
	"github.com/pspoerri/rastercast/internal/raster"
)

// JPEGEncoder encodes rasters as JPEG.
type JPEGEncoder struct {
	Quality int // 1-100, default 85
}

func (e *JPEGEncoder) Encode(img raster.Image) ([]byte, error) {
	goImg, err := imageio.ToImage(img)
	if err != nil {
		return nil, err
	}
	quality := e.Quality
	if quality <= 0 {
		quality = 85
	}
	var buf bytes.Buffer
	if err := jpeg.Encode(&buf, goImg, &jpeg.Options{Quality: quality}); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func (e *JPEGEncoder) Format() string        { return "jpeg" }
func (e *JPEGEncoder) FileExtension() string { return ".jpg" }
