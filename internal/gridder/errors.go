package gridder

import "errors"

// Domain errors for observation-grid construction. All validation
// happens before any points are generated.
var (
	// ErrInvalidMode indicates a grid mode outside {regular, random}.
	ErrInvalidMode = errors.New("gridder: invalid grid mode")

	// ErrBadShape indicates non-positive or otherwise unusable point counts.
	ErrBadShape = errors.New("gridder: bad point counts")

	// ErrHeightLength indicates a per-point height slice whose length does
	// not match the number of observation points.
	ErrHeightLength = errors.New("gridder: per-point heights length mismatch")
)
