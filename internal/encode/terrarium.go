package encode

import (
	"bytes"
	"fmt"
	"image"
	"image/color"
	"image/png"
	"math"

	"github.com/pspoerri/rastercast/internal/raster"
)

// TerrariumEncoder encodes a gray raster as Terrarium-format PNG. Terrarium
// packs an elevation into RGB as elevation = (R*256 + G + B/256) - 32768,
// covering roughly -32768 to +32767.996 meters.
//
// The encoded value is the pixel's PHYSICAL value — raw*scaling + offset
// under the buffer's calibration — so a Gray16 DEM stored in half-meter
// steps (scaling 0.5) encodes true meters, not raw sample values.
type TerrariumEncoder struct{}

func (e *TerrariumEncoder) Encode(img raster.Image) ([]byte, error) {
	var (
		width, height int
		physicalAt    func(x, y int) float64
	)

	if img == nil {
		return nil, raster.ErrNullImage
	}
	offset, scaling := img.Offset(), img.Scaling()
	switch src := img.(type) {
	case raster.Null:
		return nil, raster.ErrNullImage
	case *raster.Gray8:
		width, height = src.Width(), src.Height()
		physicalAt = func(x, y int) float64 { return float64(src.At(x, y))*scaling + offset }
	case *raster.Gray16:
		width, height = src.Width(), src.Height()
		physicalAt = func(x, y int) float64 { return float64(src.At(x, y))*scaling + offset }
	case *raster.Gray32F:
		width, height = src.Width(), src.Height()
		physicalAt = func(x, y int) float64 { return float64(src.At(x, y))*scaling + offset }
	default:
		return nil, fmt.Errorf("terrarium encoding requires a gray raster, got %s", img.DType())
	}

	out := image.NewNRGBA(image.Rect(0, 0, width, height))
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			out.SetNRGBA(x, y, ElevationToTerrarium(physicalAt(x, y)))
		}
	}

	var buf bytes.Buffer
	enc := &png.Encoder{CompressionLevel: png.BestSpeed}
	if err := enc.Encode(&buf, out); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func (e *TerrariumEncoder) Format() string        { return "terrarium" }
func (e *TerrariumEncoder) FileExtension() string { return ".png" }

// ElevationToTerrarium converts an elevation in meters to Terrarium RGB.
// NaN and infinite elevations map to a transparent nodata pixel; finite
// values clamp to the representable range.
func ElevationToTerrarium(elevation float64) color.NRGBA {
	if math.IsNaN(elevation) || math.IsInf(elevation, 0) {
		return color.NRGBA{} // nodata → transparent
	}

	value := elevation + 32768.0
	if value < 0 {
		value = 0
	}
	if value > 65535.996 {
		value = 65535.996
	}

	r := int(value / 256)
	remainder := value - float64(r)*256.0
	g := int(remainder)
	b := int((remainder - float64(g)) * 256.0)

	return color.NRGBA{
		R: uint8(clampChannel(r)),
		G: uint8(clampChannel(g)),
		B: uint8(clampChannel(b)),
		A: 255,
	}
}

// TerrariumToElevation converts a Terrarium RGB pixel back to an elevation.
// Transparent (nodata) pixels come back as NaN.
func TerrariumToElevation(c color.NRGBA) float64 {
	if c.A == 0 {
		return math.NaN()
	}
	return float64(c.R)*256.0 + float64(c.G) + float64(c.B)/256.0 - 32768.0
}

func clampChannel(v int) int {
	if v < 0 {
		return 0
	}
	if v > 255 {
		return 255
	}
	return v
}
