package raster

// Pixel is the closed set of element types a raster buffer can store.
// uint32 is the packed RGBA color element; the unsigned and float types
// back the single-channel gray formats.
type Pixel interface {
	uint8 | uint16 | uint32 | float32
}

// Buffer is a concrete raster: a width×height grid of pixels of one fixed
// element type, stored row-major, plus an affine calibration mapping stored
// raw values to physical values (physical = raw*scaling + offset).
//
// The calibration applies uniformly to every pixel; it is buffer-level
// metadata, not per-pixel. A freshly constructed buffer has the identity
// calibration (offset 0, scaling 1), meaning raw values are physical values.
type Buffer[T Pixel] struct {
	width   int
	height  int
	pix     []T // exactly width*height elements
	offset  float64
	scaling float64
}

// The four concrete raster kinds. Each instantiation has a distinct element
// type, so the kinds stay distinguishable at runtime.
type (
	// RGBA8 stores packed 8-bit-per-channel RGBA colors, one uint32 per
	// pixel in r | g<<8 | b<<16 | a<<24 order.
	RGBA8 = Buffer[uint32]
	// Gray8 stores one 8-bit unsigned sample per pixel.
	Gray8 = Buffer[uint8]
	// Gray16 stores one 16-bit unsigned sample per pixel.
	Gray16 = Buffer[uint16]
	// Gray32F stores one 32-bit float sample per pixel.
	Gray32F = Buffer[float32]
)

func newBuffer[T Pixel](width, height int) *Buffer[T] {
	return &Buffer[T]{
		width:   width,
		height:  height,
		pix:     make([]T, width*height),
		scaling: 1.0,
	}
}

// NewRGBA8 creates a zero-filled packed-RGBA buffer with identity calibration.
func NewRGBA8(width, height int) *RGBA8 { return newBuffer[uint32](width, height) }

// NewGray8 creates a zero-filled 8-bit gray buffer with identity calibration.
func NewGray8(width, height int) *Gray8 { return newBuffer[uint8](width, height) }

// NewGray16 creates a zero-filled 16-bit gray buffer with identity calibration.
func NewGray16(width, height int) *Gray16 { return newBuffer[uint16](width, height) }

// NewGray32F creates a zero-filled 32-bit float gray buffer with identity calibration.
func NewGray32F(width, height int) *Gray32F { return newBuffer[float32](width, height) }

// Width returns the buffer width in pixels.
func (b *Buffer[T]) Width() int { return b.width }

// Height returns the buffer height in pixels.
func (b *Buffer[T]) Height() int { return b.height }

// At returns the pixel at (x, y). Coordinates outside the buffer panic.
func (b *Buffer[T]) At(x, y int) T {
	if x < 0 || x >= b.width || y < 0 || y >= b.height {
		panic("raster: pixel coordinates out of range")
	}
	return b.pix[y*b.width+x]
}

// Set stores v at (x, y). Coordinates outside the buffer panic.
func (b *Buffer[T]) Set(x, y int, v T) {
	if x < 0 || x >= b.width || y < 0 || y >= b.height {
		panic("raster: pixel coordinates out of range")
	}
	b.pix[y*b.width+x] = v
}

// Pix returns the backing pixel slice in row-major order. The slice is the
// buffer's own storage, not a copy.
func (b *Buffer[T]) Pix() []T { return b.pix }

// Offset returns the calibration offset.
func (b *Buffer[T]) Offset() float64 { return b.offset }

// Scaling returns the calibration scaling factor.
func (b *Buffer[T]) Scaling() float64 { return b.scaling }

// SetOffset sets the calibration offset.
func (b *Buffer[T]) SetOffset(offset float64) { b.offset = offset }

// SetScaling sets the calibration scaling factor.
func (b *Buffer[T]) SetScaling(scaling float64) { b.scaling = scaling }

// Clone returns a deep copy: same dimensions, same pixel data, same
// calibration, independent storage.
func (b *Buffer[T]) Clone() *Buffer[T] {
	dst := &Buffer[T]{
		width:   b.width,
		height:  b.height,
		pix:     make([]T, len(b.pix)),
		offset:  b.offset,
		scaling: b.scaling,
	}
	copy(dst.pix, b.pix)
	return dst
}

// PackRGBA packs four 8-bit channels into an RGBA8 pixel value.
func PackRGBA(r, g, b, a uint8) uint32 {
	return uint32(r) | uint32(g)<<8 | uint32(b)<<16 | uint32(a)<<24
}

// UnpackRGBA splits an RGBA8 pixel value into its channels.
func UnpackRGBA(v uint32) (r, g, b, a uint8) {
	return uint8(v), uint8(v >> 8), uint8(v >> 16), uint8(v >> 24)
}
