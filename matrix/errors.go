// SPDX-License-Identifier: MIT
// Package matrix: sentinel error set (unified, consistent).
// This file defines ONLY package-level sentinel errors used across the matrix
// package. All constructors and kernels MUST return these sentinels and tests
// MUST check them via errors.Is. No kernel should panic on user-triggered
// error conditions.

package matrix

import "errors"

// NOTE ON NAMING & PREFIXING
// --------------------------
// Every message is prefixed with "matrix: ..." for consistency and to allow
// easy grepping across logs. DO NOT %w wrap these sentinels when returning
// directly from validators; facades wrap with fmt.Errorf("Op: %w", ErrX)
// and callers still match with errors.Is.
//
// ERROR PRIORITY (documented, enforced in tests):
// nil -> shape -> NaN/Inf -> Hermitian structure -> spectral failures.

var (
	// ErrBadShape is returned when a requested order is invalid (n <= 0) or
	// when raw rows are ragged.
	ErrBadShape = errors.New("matrix: invalid shape")

	// ErrOutOfRange indicates that an index (row or column) is outside valid bounds.
	// Public indexers (At/Set) MUST return this, not panic.
	ErrOutOfRange = errors.New("matrix: index out of range")

	// ErrDimensionMismatch indicates incompatible orders between operands,
	// e.g. Add/Sub of different sizes or an outer product of a mismatched vector.
	ErrDimensionMismatch = errors.New("matrix: dimension mismatch")

	// ErrNotHermitian signals that a matrix expected to equal its conjugate
	// transpose violated that within the configured epsilon, or that a diagonal
	// entry carries a non-zero imaginary part.
	ErrNotHermitian = errors.New("matrix: matrix is not Hermitian within eps")

	// ErrNaNInf signals a NaN or ±Inf component was encountered where finite
	// values are required by the numeric policy.
	ErrNaNInf = errors.New("matrix: NaN or Inf encountered")

	// ErrNilMatrix indicates that a nil *Hermitian (receiver or argument) was used.
	ErrNilMatrix = errors.New("matrix: nil receiver")

	// ErrBadEmbedding indicates a real symmetric matrix that cannot be the
	// embedding of a complex matrix (odd order).
	ErrBadEmbedding = errors.New("matrix: not a complex embedding")

	// ErrEigenFailed indicates that the symmetric eigen-decomposition of the
	// real embedding did not converge.
	ErrEigenFailed = errors.New("matrix: eigen decomposition failed")
)
