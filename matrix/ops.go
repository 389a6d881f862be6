// SPDX-License-Identifier: MIT
// Package matrix provides the linear kernels on Hermitian matrices used by the
// solver and the oracle: sums, differences, real scaling and the real inner
// product Re Tr(AB).
//
// All kernels validate operands first, allocate a fresh result and leave the
// inputs untouched. The Hermitian cone is closed under these operations, so no
// re-symmetrisation is needed.

package matrix

import "fmt"

// Operation name constants for unified error wrapping.
const (
	opAdd   = "Add"
	opSub   = "Sub"
	opScale = "Scale"
	opInner = "Inner"
	opAxpy  = "Axpy"
)

// matrixErrorf wraps err with an operation tag, preserving it for errors.Is.
// Call only with a non-nil err.
func matrixErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// Add returns a + b.
// Errors: ErrNilMatrix, ErrDimensionMismatch.
// Complexity: O(n²).
func Add(a, b *Hermitian) (*Hermitian, error) {
	return axpby(opAdd, 1, a, 1, b)
}

// Sub returns a − b.
// Errors: ErrNilMatrix, ErrDimensionMismatch.
// Complexity: O(n²).
func Sub(a, b *Hermitian) (*Hermitian, error) {
	return axpby(opSub, 1, a, -1, b)
}

// Axpy returns alpha·x + y.
// Errors: ErrNilMatrix, ErrDimensionMismatch.
func Axpy(alpha float64, x, y *Hermitian) (*Hermitian, error) {
	return axpby(opAxpy, alpha, x, 1, y)
}

// Scale returns alpha·a. Real scaling keeps the result Hermitian.
// Errors: ErrNilMatrix.
func Scale(alpha float64, a *Hermitian) (*Hermitian, error) {
	if err := ValidateNotNil(a); err != nil {
		return nil, matrixErrorf(opScale, err)
	}
	out := &Hermitian{n: a.n, data: make([]complex128, len(a.data))}
	s := complex(alpha, 0)
	for i, z := range a.data {
		out.data[i] = s * z
	}

	return out, nil
}

// Inner returns the real inner product ⟨a,b⟩ = Re Tr(a·b) = Σ Re(a_ij·b_ji).
// For Hermitian operands Tr(a·b) is already real.
// Errors: ErrNilMatrix, ErrDimensionMismatch.
// Complexity: O(n²).
func Inner(a, b *Hermitian) (float64, error) {
	if err := ValidateSameDim(a, b); err != nil {
		return 0, matrixErrorf(opInner, err)
	}
	var (
		n    = a.n
		s    float64
		i, j int
	)
	for i = 0; i < n; i++ {
		for j = 0; j < n; j++ {
			s += real(a.data[i*n+j] * b.data[j*n+i])
		}
	}

	return s, nil
}

// axpby computes alpha·a + beta·b into a fresh matrix.
func axpby(tag string, alpha float64, a *Hermitian, beta float64, b *Hermitian) (*Hermitian, error) {
	if err := ValidateSameDim(a, b); err != nil {
		return nil, matrixErrorf(tag, err)
	}
	out := &Hermitian{n: a.n, data: make([]complex128, len(a.data))}
	ca, cb := complex(alpha, 0), complex(beta, 0)
	for i := range out.data {
		out.data[i] = ca*a.data[i] + cb*b.data[i]
	}

	return out, nil
}
