package forward

import "errors"

// Domain errors for field accumulation. Inputs are validated before any
// computation starts; a failed call produces no partial results.
var (
	// ErrUnknownComponent indicates a field-component name outside the
	// fixed set gz, gxx, gxy, gxz, gyy, gyz, gzz.
	ErrUnknownComponent = errors.New("forward: unknown field component")

	// ErrUnsupportedComponent indicates a component the active formula
	// set has no formula for.
	ErrUnsupportedComponent = errors.New("forward: component not supported by formula set")

	// ErrMissingCoordinate indicates an observation set without one of
	// its x, y or z coordinate slices.
	ErrMissingCoordinate = errors.New("forward: observation set missing coordinate")

	// ErrLengthMismatch indicates coordinate slices of unequal length.
	ErrLengthMismatch = errors.New("forward: coordinate lengths differ")

	// ErrNilFormulaSet indicates that no formula set was supplied.
	ErrNilFormulaSet = errors.New("forward: nil formula set")
)
