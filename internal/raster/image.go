package raster

import "fmt"

// Image is the closed variant over every raster kind: Null plus the four
// concrete buffer types. Exactly one kind is active per value. The interface
// is sealed; no type outside this package can implement it.
type Image interface {
	// DType reports the active kind.
	DType() DType
	// Offset returns the calibration offset (0 for Null).
	Offset() float64
	// Scaling returns the calibration scaling (1 for Null).
	Scaling() float64

	sealed()
}

// Null is the empty image variant. It carries no pixel data and no
// dimensions, and represents the absence of an image. It is never a valid
// conversion source or target.
type Null struct{}

// DType reports DTypeNull.
func (Null) DType() DType { return DTypeNull }

// Offset returns the identity calibration offset.
func (Null) Offset() float64 { return 0.0 }

// Scaling returns the identity calibration scaling.
func (Null) Scaling() float64 { return 1.0 }

func (Null) sealed() {}

// DType reports the kind corresponding to the buffer's element type.
func (b *Buffer[T]) DType() DType {
	var z T
	switch any(z).(type) {
	case uint32:
		return DTypeRGBA8
	case uint8:
		return DTypeGray8
	case uint16:
		return DTypeGray16
	case float32:
		return DTypeGray32F
	}
	return DTypeNull
}

func (*Buffer[T]) sealed() {}

// DType identifies a raster kind. It is the runtime selector used to request
// a conversion target at the CastImage boundary.
type DType int

const (
	DTypeNull DType = iota
	DTypeRGBA8
	DTypeGray8
	DTypeGray16
	DTypeGray32F
)

func (d DType) String() string {
	switch d {
	case DTypeNull:
		return "null"
	case DTypeRGBA8:
		return "rgba8"
	case DTypeGray8:
		return "gray8"
	case DTypeGray16:
		return "gray16"
	case DTypeGray32F:
		return "gray32f"
	}
	return fmt.Sprintf("dtype(%d)", int(d))
}

// ParseDType resolves a format name as accepted on CLI boundaries.
func ParseDType(s string) (DType, error) {
	switch s {
	case "rgba8", "rgba":
		return DTypeRGBA8, nil
	case "gray8":
		return DTypeGray8, nil
	case "gray16":
		return DTypeGray16, nil
	case "gray32f", "float32":
		return DTypeGray32F, nil
	default:
		return DTypeNull, fmt.Errorf("unsupported pixel format: %q (supported: rgba8, gray8, gray16, gray32f)", s)
	}
}
