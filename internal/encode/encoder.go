package encode

import (
	"fmt"
	"os"

	"github.com/pspoerri/rastercast/internal/raster"
)

// Encoder encodes a raster variant into file bytes.
type Encoder interface {
	// Encode encodes a raster image to bytes in the target format.
	Encode(img raster.Image) ([]byte, error)

	// Format returns the format name (e.g. "png", "webp", "terrarium").
	Format() string

	// FileExtension returns the appropriate file extension.
	FileExtension() string
}

// NewEncoder creates an encoder for the given format and quality. Quality
// applies to jpeg and webp only.
func NewEncoder(format string, quality int) (Encoder, error) {
	switch format {
	case "png":
		return &PNGEncoder{}, nil
	case "jpeg", "jpg":
		return &JPEGEncoder{Quality: quality}, nil
	case "webp":
		return &WebPEncoder{Quality: quality}, nil
	case "tiff", "tif":
		return &TIFFEncoder{}, nil
	case "terrarium":
		return &TerrariumEncoder{}, nil
	default:
		return nil, fmt.Errorf("unsupported output format: %q (supported: png, jpeg, webp, tiff, terrarium)", format)
	}
}

// WriteFile encodes img in the given format and writes it to path.
func WriteFile(path string, img raster.Image, format string, quality int) error {
	enc, err := NewEncoder(format, quality)
	if err != nil {
		return err
	}
	data, err := enc.Encode(img)
	if err != nil {
		return fmt.Errorf("encoding %s: %w", enc.Format(), err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}
	return nil
}
