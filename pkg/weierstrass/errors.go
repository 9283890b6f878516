package weierstrass

import "errors"

// Common errors returned by curve arithmetic.
var (
	// ErrNotInvertible is returned when a modular inverse is requested for
	// a value that shares a factor with the modulus (in particular, for a
	// value that is zero mod the modulus).
	ErrNotInvertible = errors.New("weierstrass: value has no inverse under the modulus")

	// ErrInvalidScalar is returned when a scalar lies outside the range an
	// operation requires, such as a negative multiplier or a private key
	// outside [1, N).
	ErrInvalidScalar = errors.New("weierstrass: scalar outside the required range")

	// ErrInvalidCurve is returned by NewCurve when the supplied parameters
	// do not describe a usable curve.
	ErrInvalidCurve = errors.New("weierstrass: malformed curve parameters")
)
