package encode

import (
	"bytes"

	"golang.org/x/image/tiff"

	"github.com/pspoerri/rastercast/internal/imageio"
	"github.com/pspoerri/rastercast/internal/raster"
)

// TIFFEncoder encodes rasters as deflate-compressed TIFF. Gray16 rasters
// keep their full 16-bit sample depth, which makes TIFF the only lossless
// round-trip format here for high-depth data.
type TIFFEncoder struct{}

func (e *TIFFEncoder) Encode(img raster.Image) ([]byte, error) {
	goImg, err := imageio.ToImage(img)
	if err != nil {
		return nil, err
	}
	var buf bytes.Buffer
	opts := &tiff.Options{Compression: tiff.Deflate}
	if err := tiff.Encode(&buf, goImg, opts); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func (e *TIFFEncoder) Format() string        { return "tiff" }
func (e *TIFFEncoder) FileExtension() string { return ".tif" }
