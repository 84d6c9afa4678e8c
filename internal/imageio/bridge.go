package imageio

import (
	"fmt"
	"image"
	"image/color"

	"github.com/pspoerri/rastercast/internal/raster"
)

// FromImage converts a decoded Go image into its natural raster variant:
// 8-bit gray images become Gray8, 16-bit gray images become Gray16, and
// everything else is flattened to packed RGBA8 with straight (non-
// premultiplied) channels. The result always has identity calibration.
func FromImage(img image.Image) raster.Image {
	bounds := img.Bounds()
	w, h := bounds.Dx(), bounds.Dy()

	switch src := img.(type) {
	case *image.Gray:
		dst := raster.NewGray8(w, h)
		for y := 0; y < h; y++ {
			for x := 0; x < w; x++ {
				dst.Set(x, y, src.GrayAt(bounds.Min.X+x, bounds.Min.Y+y).Y)
			}
		}
		return dst
	case *image.Gray16:
		dst := raster.NewGray16(w, h)
		for y := 0; y < h; y++ {
			for x := 0; x < w; x++ {
				dst.Set(x, y, src.Gray16At(bounds.Min.X+x, bounds.Min.Y+y).Y)
			}
		}
		return dst
	default:
		dst := raster.NewRGBA8(w, h)
		for y := 0; y < h; y++ {
			for x := 0; x < w; x++ {
				c := color.NRGBAModel.Convert(img.At(bounds.Min.X+x, bounds.Min.Y+y)).(color.NRGBA)
				dst.Set(x, y, raster.PackRGBA(c.R, c.G, c.B, c.A))
			}
		}
		return dst
	}
}

// ToImage converts a raster variant into a Go image for encoders: Gray8 to
// *image.Gray, Gray16 to *image.Gray16, RGBA8 to *image.NRGBA. Gray32F has
// no stdlib counterpart; it is materialized as 16-bit gray by requantizing
// its physical values through the cast engine (saturating at the 16-bit
// range). A null image cannot be materialized and fails with
// raster.ErrNullImage.
func ToImage(img raster.Image) (image.Image, error) {
	switch src := img.(type) {
	case nil, raster.Null:
		return nil, raster.ErrNullImage
	case *raster.Gray8:
		dst := image.NewGray(image.Rect(0, 0, src.Width(), src.Height()))
		for y := 0; y < src.Height(); y++ {
			for x := 0; x < src.Width(); x++ {
				dst.SetGray(x, y, color.Gray{Y: src.At(x, y)})
			}
		}
		return dst, nil
	case *raster.Gray16:
		dst := image.NewGray16(image.Rect(0, 0, src.Width(), src.Height()))
		for y := 0; y < src.Height(); y++ {
			for x := 0; x < src.Width(); x++ {
				dst.SetGray16(x, y, color.Gray16{Y: src.At(x, y)})
			}
		}
		return dst, nil
	case *raster.Gray32F:
		quantized, err := raster.CastGray16(src, 0.0, 1.0)
		if err != nil {
			return nil, err
		}
		return ToImage(quantized)
	case *raster.RGBA8:
		dst := image.NewNRGBA(image.Rect(0, 0, src.Width(), src.Height()))
		for y := 0; y < src.Height(); y++ {
			for x := 0; x < src.Width(); x++ {
				r, g, b, a := raster.UnpackRGBA(src.At(x, y))
				dst.SetNRGBA(x, y, color.NRGBA{R: r, G: g, B: b, A: a})
			}
		}
		return dst, nil
	default:
		return nil, fmt.Errorf("%w: %T", raster.ErrUnknownFormat, img)
	}
}
