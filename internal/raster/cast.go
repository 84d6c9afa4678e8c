package raster

import "fmt"

// This file is the conversion engine. Conversions never mutate their source:
// every successful call allocates exactly one new buffer of the requested
// kind with the source's dimensions. Per-pixel overflow saturates via
// ClampCast; the only failures are a null source/target and an unrecognized
// target kind, and neither returns a partial buffer.

// castTo converts img into a new buffer of element type D using ClampCast on
// every pixel. A source that already has element type D is copied verbatim
// instead (pixels, dimensions and calibration bit-exact, no numeric
// recomputation); otherwise the result keeps the identity calibration.
func castTo[D Pixel](img Image) (*Buffer[D], error) {
	// Same-type sources take the identity path. This must stay a distinct
	// copy, not a run through the pixel loop, so that the output is
	// bit-exact and the calibration survives.
	if src, ok := img.(*Buffer[D]); ok {
		return src.Clone(), nil
	}
	switch src := img.(type) {
	case nil, Null:
		return nil, ErrNullImage
	case *RGBA8:
		return castPixels[uint32, D](src), nil
	case *Gray8:
		return castPixels[uint8, D](src), nil
	case *Gray16:
		return castPixels[uint16, D](src), nil
	case *Gray32F:
		return castPixels[float32, D](src), nil
	default:
		return nil, fmt.Errorf("%w: %T", ErrUnknownFormat, img)
	}
}

func castPixels[S, D Pixel](src *Buffer[S]) *Buffer[D] {
	dst := newBuffer[D](src.width, src.height)
	for i, v := range src.pix {
		dst.pix[i] = ClampCast[D](float64(v))
	}
	return dst
}

// castScaleTo converts img into a new buffer of element type D under a new
// calibration: each source pixel is lifted to its physical value using the
// source's own calibration, re-quantized under (offset, scaling), and stored
// through ClampCast. The result carries (offset, scaling) as its calibration.
//
// A source that already has element type D is copied verbatim, exactly as in
// castTo; the requested calibration is not applied on that path.
func castScaleTo[D Pixel](img Image, offset, scaling float64) (*Buffer[D], error) {
	if src, ok := img.(*Buffer[D]); ok {
		return src.Clone(), nil
	}
	switch src := img.(type) {
	case nil, Null:
		return nil, ErrNullImage
	case *RGBA8:
		return rescalePixels[uint32, D](src, offset, scaling), nil
	case *Gray8:
		return rescalePixels[uint8, D](src, offset, scaling), nil
	case *Gray16:
		return rescalePixels[uint16, D](src, offset, scaling), nil
	case *Gray32F:
		return rescalePixels[float32, D](src, offset, scaling), nil
	default:
		return nil, fmt.Errorf("%w: %T", ErrUnknownFormat, img)
	}
}

func rescalePixels[S, D Pixel](src *Buffer[S], offset, scaling float64) *Buffer[D] {
	srcOffset := src.offset
	srcScaling := src.scaling
	dst := newBuffer[D](src.width, src.height)
	dst.offset = offset
	dst.scaling = scaling
	for i, v := range src.pix {
		physical := float64(v)*srcScaling + srcOffset
		dst.pix[i] = ClampCast[D]((physical - offset) / scaling)
	}
	return dst
}

// castImage selects between the plain and rescaling paths. The plain path is
// taken only when both the requested calibration and the source's own
// calibration are exactly the identity; the strict equality matters, since
// it decides between a bit-exact copy and a recomputation even where the two
// would agree numerically.
func castImage[D Pixel](img Image, offset, scaling float64) (*Buffer[D], error) {
	if img == nil {
		return nil, ErrNullImage
	}
	if offset == 0.0 && scaling == 1.0 && img.Offset() == 0.0 && img.Scaling() == 1.0 {
		return castTo[D](img)
	}
	return castScaleTo[D](img, offset, scaling)
}

// CastRGBA8 converts img to a packed-RGBA buffer. The packed uint32 is
// treated as a plain numeric value, not channel-wise.
func CastRGBA8(img Image, offset, scaling float64) (*RGBA8, error) {
	return castImage[uint32](img, offset, scaling)
}

// CastGray8 converts img to an 8-bit gray buffer.
func CastGray8(img Image, offset, scaling float64) (*Gray8, error) {
	return castImage[uint8](img, offset, scaling)
}

// CastGray16 converts img to a 16-bit gray buffer.
func CastGray16(img Image, offset, scaling float64) (*Gray16, error) {
	return castImage[uint16](img, offset, scaling)
}

// CastGray32F converts img to a 32-bit float gray buffer.
func CastGray32F(img Image, offset, scaling float64) (*Gray32F, error) {
	return castImage[float32](img, offset, scaling)
}

// CastImage converts img to the kind named by dtype, under the requested
// calibration. Pass offset 0 and scaling 1 when no rescale is wanted. The
// result is a newly allocated buffer wrapped back into the variant; img is
// never modified. Casting from or to the null kind fails with ErrNullImage,
// and a dtype outside the enumeration fails with ErrUnknownFormat.
func CastImage(img Image, dtype DType, offset, scaling float64) (Image, error) {
	switch dtype {
	case DTypeRGBA8:
		return wrapCast(CastRGBA8(img, offset, scaling))
	case DTypeGray8:
		return wrapCast(CastGray8(img, offset, scaling))
	case DTypeGray16:
		return wrapCast(CastGray16(img, offset, scaling))
	case DTypeGray32F:
		return wrapCast(CastGray32F(img, offset, scaling))
	case DTypeNull:
		return nil, ErrNullImage
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnknownFormat, dtype)
	}
}

func wrapCast[D Pixel](b *Buffer[D], err error) (Image, error) {
	if err != nil {
		return nil, err
	}
	return b, nil
}
