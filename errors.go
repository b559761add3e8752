package painter

import "errors"

// Errors returned by the matrix conversion routines. Drawing never fails;
// invalid geometry simply draws nothing.
var (
	// ErrEmptySurface is returned when the destination image has no pixels.
	ErrEmptySurface = errors.New("painter: surface buffer is empty")

	// ErrInvalidScale is returned when the block scale is not positive.
	ErrInvalidScale = errors.New("painter: scale must be positive")

	// ErrSizeMismatch is returned when the destination image does not have
	// the scaled size of the source matrix.
	ErrSizeMismatch = errors.New("painter: surface size does not match matrix size")

	// ErrShortBuffer is returned when a raw pixel buffer is too small for
	// the requested dimensions.
	ErrShortBuffer = errors.New("painter: pixel buffer too small")
)
