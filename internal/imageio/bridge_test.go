package imageio

import (
	"errors"
	"image"
	"image/color"
	"testing"

	"github.com/pspoerri/rastercast/internal/raster"
)

func TestFromImage_Gray(t *testing.T) {
	src := image.NewGray(image.Rect(0, 0, 2, 2))
	src.SetGray(0, 0, color.Gray{Y: 0})
	src.SetGray(1, 0, color.Gray{Y: 128})
	src.SetGray(0, 1, color.Gray{Y: 200})
	src.SetGray(1, 1, color.Gray{Y: 255})

	out := FromImage(src)
	gray, ok := out.(*raster.Gray8)
	if !ok {
		t.Fatalf("FromImage type = %T, want *raster.Gray8", out)
	}
	want := []uint8{0, 128, 200, 255}
	for i, v := range gray.Pix() {
		if v != want[i] {
			t.Errorf("pixel %d = %d, want %d", i, v, want[i])
		}
	}
	if gray.Offset() != 0.0 || gray.Scaling() != 1.0 {
		t.Errorf("calibration = (%v, %v), want identity", gray.Offset(), gray.Scaling())
	}
}

func TestFromImage_Gray16(t *testing.T) {
	src := image.NewGray16(image.Rect(0, 0, 2, 1))
	src.SetGray16(0, 0, color.Gray16{Y: 40000})
	src.SetGray16(1, 0, color.Gray16{Y: 7})

	out := FromImage(src)
	gray, ok := out.(*raster.Gray16)
	if !ok {
		t.Fatalf("FromImage type = %T, want *raster.Gray16", out)
	}
	if gray.At(0, 0) != 40000 || gray.At(1, 0) != 7 {
		t.Errorf("pixels = %d, %d, want 40000, 7", gray.At(0, 0), gray.At(1, 0))
	}
}

func TestFromImage_NRGBA(t *testing.T) {
	src := image.NewNRGBA(image.Rect(0, 0, 1, 1))
	src.SetNRGBA(0, 0, color.NRGBA{R: 0x11, G: 0x22, B: 0x33, A: 0x44})

	out := FromImage(src)
	rgba, ok := out.(*raster.RGBA8)
	if !ok {
		t.Fatalf("FromImage type = %T, want *raster.RGBA8", out)
	}
	if got := rgba.At(0, 0); got != 0x44332211 {
		t.Errorf("pixel = %#x, want 0x44332211", got)
	}
}

func TestFromImage_NonZeroBounds(t *testing.T) {
	src := image.NewGray(image.Rect(3, 5, 5, 6))
	src.SetGray(3, 5, color.Gray{Y: 9})
	src.SetGray(4, 5, color.Gray{Y: 10})

	out := FromImage(src)
	gray := out.(*raster.Gray8)
	if gray.Width() != 2 || gray.Height() != 1 {
		t.Fatalf("dimensions = %dx%d, want 2x1", gray.Width(), gray.Height())
	}
	if gray.At(0, 0) != 9 || gray.At(1, 0) != 10 {
		t.Errorf("pixels = %d, %d, want 9, 10", gray.At(0, 0), gray.At(1, 0))
	}
}

func TestToImage_RoundTrips(t *testing.T) {
	t.Run("gray8", func(t *testing.T) {
		src := raster.NewGray8(2, 1)
		src.Set(0, 0, 5)
		src.Set(1, 0, 250)

		img, err := ToImage(src)
		if err != nil {
			t.Fatalf("ToImage: %v", err)
		}
		gray, ok := img.(*image.Gray)
		if !ok {
			t.Fatalf("type = %T, want *image.Gray", img)
		}
		if gray.GrayAt(0, 0).Y != 5 || gray.GrayAt(1, 0).Y != 250 {
			t.Error("pixel mismatch")
		}
	})

	t.Run("gray16", func(t *testing.T) {
		src := raster.NewGray16(1, 1)
		src.Set(0, 0, 40000)

		img, err := ToImage(src)
		if err != nil {
			t.Fatalf("ToImage: %v", err)
		}
		gray, ok := img.(*image.Gray16)
		if !ok {
			t.Fatalf("type = %T, want *image.Gray16", img)
		}
		if gray.Gray16At(0, 0).Y != 40000 {
			t.Errorf("pixel = %d, want 40000", gray.Gray16At(0, 0).Y)
		}
	})

	t.Run("rgba8", func(t *testing.T) {
		src := raster.NewRGBA8(1, 1)
		src.Set(0, 0, raster.PackRGBA(1, 2, 3, 4))

		img, err := ToImage(src)
		if err != nil {
			t.Fatalf("ToImage: %v", err)
		}
		nrgba, ok := img.(*image.NRGBA)
		if !ok {
			t.Fatalf("type = %T, want *image.NRGBA", img)
		}
		if got := nrgba.NRGBAAt(0, 0); got != (color.NRGBA{R: 1, G: 2, B: 3, A: 4}) {
			t.Errorf("pixel = %v", got)
		}
	})
}

func TestToImage_Gray32F(t *testing.T) {
	// Gray32F materializes as 16-bit gray via the cast engine: in-range
	// values truncate, out-of-range values saturate.
	src := raster.NewGray32F(3, 1)
	src.Set(0, 0, 1000.9)
	src.Set(1, 0, -5)
	src.Set(2, 0, 1e9)

	img, err := ToImage(src)
	if err != nil {
		t.Fatalf("ToImage: %v", err)
	}
	gray, ok := img.(*image.Gray16)
	if !ok {
		t.Fatalf("type = %T, want *image.Gray16", img)
	}
	want := []uint16{1000, 0, 65535}
	for x, w := range want {
		if got := gray.Gray16At(x, 0).Y; got != w {
			t.Errorf("pixel %d = %d, want %d", x, got, w)
		}
	}
}

func TestToImage_Null(t *testing.T) {
	if _, err := ToImage(raster.Null{}); !errors.Is(err, raster.ErrNullImage) {
		t.Errorf("error = %v, want ErrNullImage", err)
	}
}
