package fractal

import (
	"errors"
	"fmt"
)

// Sentinel errors for the fractal package.
var (
	// ErrDimensionMismatch is returned when operand shapes or lengths disagree.
	ErrDimensionMismatch = errors.New("fractal: dimension mismatch")

	// ErrInvalidOperand is returned when an operation receives the wrong kind of
	// operand, e.g. a point where a vector is required.
	ErrInvalidOperand = errors.New("fractal: invalid operand")

	// ErrEmptyCollection is returned by positional access or application on an
	// empty IFS.
	ErrEmptyCollection = errors.New("fractal: empty collection")

	// ErrSingularMatrix is returned when inverting a non-invertible transform.
	ErrSingularMatrix = errors.New("fractal: singular matrix")

	// ErrDivideByZero is returned when normalizing a zero-length vector.
	ErrDivideByZero = errors.New("fractal: divide by zero")

	// ErrTooLarge is returned when a requested output size does not fit in an int.
	ErrTooLarge = errors.New("fractal: output size overflows int")
)

// DimensionError describes an operand shape mismatch.
// It matches ErrDimensionMismatch with errors.Is.
type DimensionError struct {
	Op   string
	Got  int
	Want int
}

func (e *DimensionError) Error() string {
	return fmt.Sprintf("fractal: %s: dimension mismatch: got %d, want %d", e.Op, e.Got, e.Want)
}

// Is reports whether target is ErrDimensionMismatch.
func (e *DimensionError) Is(target error) bool {
	return target == ErrDimensionMismatch
}

func invalidOperand(op, reason string) error {
	return fmt.Errorf("%w: %s: %s", ErrInvalidOperand, op, reason)
}

func wrapEmpty(op, reason string) error {
	return fmt.Errorf("%w: %s: %s", ErrEmptyCollection, op, reason)
}
