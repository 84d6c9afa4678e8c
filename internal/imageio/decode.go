package imageio

import (
	"bufio"
	"bytes"
	"fmt"
	"image"
	"io"
	"os"

	// Register the stdlib and x/image decoders with image.Decode.
	_ "image/jpeg"
	_ "image/png"

	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"

	"github.com/gen2brain/webp"
	"github.com/pspoerri/rastercast/internal/raster"
)

// Decode reads an encoded image (png, jpeg, tiff, bmp or webp) and returns
// it as its natural raster variant. 16-bit gray PNG and TIFF sources come
// back as Gray16; 8-bit gray as Gray8; color images as RGBA8.
func Decode(r io.Reader) (raster.Image, error) {
	br := bufio.NewReader(r)

	// WebP is not wired into the image.Decode registry; sniff the RIFF
	// container header and route it explicitly.
	magic, err := br.Peek(12)
	if err == nil && bytes.HasPrefix(magic, []byte("RIFF")) && bytes.Equal(magic[8:12], []byte("WEBP")) {
		img, err := webp.Decode(br)
		if err != nil {
			return nil, fmt.Errorf("decoding webp: %w", err)
		}
		return FromImage(img), nil
	}

	img, _, err := image.Decode(br)
	if err != nil {
		return nil, fmt.Errorf("decoding image: %w", err)
	}
	return FromImage(img), nil
}

// DecodeFile decodes the image file at path into a raster variant.
func DecodeFile(path string) (raster.Image, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening %s: %w", path, err)
	}
	defer f.Close()

	img, err := Decode(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return img, nil
}
