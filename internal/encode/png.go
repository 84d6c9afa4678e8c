package encode

import (
	"bytes"
	"image/png"

	"github.com/pspoerri/rastercast/internal/imageio"
	"github.com/pspoerri/rastercast/internal/raster"
)

// PNGEncoder encodes rasters as PNG: Gray8 as 8-bit gray, Gray16 as 16-bit
// gray, RGBA8 as color, Gray32F as 16-bit gray after requantizing its
// physical values.
type PNGEncoder struct{}

func (e *PNGEncoder) Encode(img raster.Image) ([]byte, error) {
	goImg, err := imageio.ToImage(img)
	if err != nil {
		return nil, err
	}
	var buf bytes.Buffer
	enc := &png.Encoder{CompressionLevel: png.BestSpeed}
	if err := enc.Encode(&buf, goImg); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func (e *PNGEncoder) Format() string        { return "png" }
func (e *PNGEncoder) FileExtension() string { return ".png" }
