package raster

import "errors"

var (
	// ErrNullImage is returned when a conversion source or target denotes
	// the null image. Absence of an image is never convertible; whether it
	// is acceptable is for the caller to decide.
	ErrNullImage = errors.New("cannot cast a null image")

	// ErrUnknownFormat is returned when a target DType outside the closed
	// enumeration is supplied. This indicates a programming error at the
	// call site rather than a data condition.
	ErrUnknownFormat = errors.New("unknown image format")
)
