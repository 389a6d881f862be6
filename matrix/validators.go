// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//  - Provide a single, canonical source of truth for common validation checks.
//  - Keep kernels/facades minimal by delegating shape/nil/structure checks here.
//  - Return plain sentinel errors (no wrapping) so call sites can wrap uniformly.
//
// Determinism & Performance:
//  - All checks are pure, deterministic and allocate nothing.
//  - The Hermitian check runs O(n²) on the upper triangle only.

package matrix

import (
	"math/cmplx"
)

// ValidateNotNil ensures the matrix reference is non-nil.
// Complexity: O(1).
func ValidateNotNil(h *Hermitian) error {
	if h == nil {
		return ErrNilMatrix
	}

	return nil
}

// ValidateSameDim ensures a and b are non-nil and of equal order.
// Complexity: O(1).
func ValidateSameDim(a, b *Hermitian) error {
	if a == nil || b == nil {
		return ErrNilMatrix
	}
	if a.n != b.n {
		return ErrDimensionMismatch
	}

	return nil
}

// ValidateSquareRows checks that rows describe a non-empty n×n matrix.
// Returns ErrBadShape for empty or ragged input.
// Complexity: O(n).
func ValidateSquareRows(rows [][]complex128) error {
	n := len(rows)
	if n == 0 {
		return ErrBadShape
	}
	for _, r := range rows {
		if len(r) != n {
			return ErrBadShape
		}
	}

	return nil
}

// ValidateFiniteRows rejects any NaN or ±Inf component.
// Assumes rows already passed ValidateSquareRows.
// Complexity: O(n²).
func ValidateFiniteRows(rows [][]complex128) error {
	for _, r := range rows {
		for _, z := range r {
			if !isFinite(z) {
				return ErrNaNInf
			}
		}
	}

	return nil
}

// ValidateHermitianRows checks |a_ij − conj(a_ji)| ≤ eps for i < j and
// |imag(a_ii)| ≤ eps on the diagonal.
// Assumes rows already passed ValidateSquareRows.
// Complexity: O(n²) on the upper triangle.
func ValidateHermitianRows(rows [][]complex128, eps float64) error {
	n := len(rows)
	var i, j int
	for i = 0; i < n; i++ {
		if abs(imag(rows[i][i])) > eps {
			return ErrNotHermitian
		}
		for j = i + 1; j < n; j++ {
			if cmplx.Abs(rows[i][j]-cmplx.Conj(rows[j][i])) > eps {
				return ErrNotHermitian
			}
		}
	}

	return nil
}

// abs returns |x|.
func abs(x float64) float64 {
	if x < 0 {
		return -x
	}

	return x
}
