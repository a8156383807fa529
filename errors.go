package stackvec

import "errors"

var (
	// ErrCapacityOverflow signals an insertion that would exceed the fixed
	// capacity. The caller still holds the rejected element; nothing is lost.
	ErrCapacityOverflow = errors.New("stackvec: capacity exhausted")
	// ErrIndexOutOfBounds signals an invalid positional index or range.
	ErrIndexOutOfBounds = errors.New("stackvec: index out of bounds")
)
