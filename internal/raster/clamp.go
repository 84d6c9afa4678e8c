package raster

import "math"

// ClampCast converts v to the pixel type D, saturating at D's representable
// bounds. Values above D's maximum yield exactly the maximum, values below
// D's minimum yield exactly the minimum, and in-range values convert exactly
// (float values truncate toward zero for integer destinations). Out-of-range
// input is routine here, not an error; ClampCast never wraps around.
//
// Every supported element type embeds exactly in a float64, so funneling
// sources through float64 loses nothing.
//
// NaN maps to 0 for integer destinations and passes through to a float32
// destination unchanged.
func ClampCast[D Pixel](v float64) D {
	var zero D
	switch any(zero).(type) {
	case uint8:
		return D(clampUnsigned(v, math.MaxUint8))
	case uint16:
		return D(clampUnsigned(v, math.MaxUint16))
	case uint32:
		return D(clampUnsigned(v, math.MaxUint32))
	case float32:
		return D(clampFloat32(v))
	}
	return zero
}

func clampUnsigned(v float64, max uint32) uint32 {
	if v != v { // NaN
		return 0
	}
	if v <= 0 {
		return 0
	}
	if v >= float64(max) {
		return max
	}
	return uint32(v)
}

func clampFloat32(v float64) float32 {
	if v > math.MaxFloat32 {
		return math.MaxFloat32
	}
	if v < -math.MaxFloat32 {
		return -math.MaxFloat32
	}
	return float32(v)
}
