package quantum

import "errors"

var (
	// ErrInvalidDimension is returned when d < 2 is requested or supplied.
	// The conjectured bound (d−2)/(d−1) is undefined below two.
	ErrInvalidDimension = errors.New("quantum: dimension must be at least 2")

	// ErrMalformedStateSet indicates a set whose count differs from its
	// per-vector length, ragged vectors, or non-finite amplitudes.
	ErrMalformedStateSet = errors.New("quantum: malformed state set")

	// ErrNotUnitNorm indicates a vector whose Euclidean norm is not 1 within
	// the configured tolerance.
	ErrNotUnitNorm = errors.New("quantum: state is not unit norm")

	// ErrZeroVector is returned when normalising a vector of zero norm.
	ErrZeroVector = errors.New("quantum: cannot normalise the zero vector")

	// ErrDimensionMismatch indicates two states of different lengths.
	ErrDimensionMismatch = errors.New("quantum: state dimension mismatch")
)
