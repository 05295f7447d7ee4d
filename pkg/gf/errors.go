package gf

import "errors"

// The package distinguishes three failure kinds. Operations wrap these
// sentinels with context, so callers discriminate with errors.Is.
var (
	// ErrInvalidArgument is returned when a caller passes a value outside an
	// operation's domain, such as Log(0) or a negative monomial degree.
	ErrInvalidArgument = errors.New("gf: invalid argument")

	// ErrDivideByZero is returned for operations that are mathematically
	// undefined rather than merely out of domain, such as Inverse(0).
	ErrDivideByZero = errors.New("gf: divide by zero")

	// ErrOutOfRange is returned when a value is not an element of the field,
	// i.e. it lies outside [0, Size()).
	ErrOutOfRange = errors.New("gf: element out of range")
)
