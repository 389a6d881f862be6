// SPDX-License-Identifier: MIT

// Package matrix: orthonormal real basis of the n²-dimensional real vector
// space of n×n Hermitian matrices under ⟨A,B⟩ = Re Tr(AB).
//
// Ordering (stable, documented because solvers index parameters by it):
//  1. n diagonal units E_aa, a = 0..n−1;
//  2. for each pair a < b in row-major order, the symmetric element
//     (E_ab + E_ba)/√2 followed by the antisymmetric element
//     (−i·E_ab + i·E_ba)/√2.
package matrix

import "math"

// BasisSize returns n², the real dimension of the n×n Hermitian space.
func BasisSize(n int) int { return n * n }

// HermitianBasis returns the n² orthonormal basis elements in the documented order.
// Returns ErrBadShape if n <= 0.
// Complexity: O(n⁴) memory, intended for the small orders the solver handles.
func HermitianBasis(n int) ([]*Hermitian, error) {
	if n <= 0 {
		return nil, matrixErrorf("HermitianBasis", ErrBadShape)
	}
	out := make([]*Hermitian, 0, n*n)
	for a := 0; a < n; a++ {
		e := &Hermitian{n: n, data: make([]complex128, n*n)}
		e.data[a*n+a] = 1
		out = append(out, e)
	}
	s := 1 / math.Sqrt2
	for a := 0; a < n; a++ {
		for b := a + 1; b < n; b++ {
			sym := &Hermitian{n: n, data: make([]complex128, n*n)}
			sym.data[a*n+b] = complex(s, 0)
			sym.data[b*n+a] = complex(s, 0)
			anti := &Hermitian{n: n, data: make([]complex128, n*n)}
			anti.data[a*n+b] = complex(0, -s)
			anti.data[b*n+a] = complex(0, s)
			out = append(out, sym, anti)
		}
	}

	return out, nil
}

// Coordinates returns x with x_k = ⟨h, E_k⟩ in the HermitianBasis order.
// Errors: ErrNilMatrix.
// Complexity: O(n²).
func Coordinates(h *Hermitian) ([]float64, error) {
	if err := ValidateNotNil(h); err != nil {
		return nil, matrixErrorf("Coordinates", err)
	}
	n := h.n
	x := make([]float64, 0, n*n)
	for a := 0; a < n; a++ {
		x = append(x, real(h.data[a*n+a]))
	}
	for a := 0; a < n; a++ {
		for b := a + 1; b < n; b++ {
			z := h.data[a*n+b]
			x = append(x, math.Sqrt2*real(z), -math.Sqrt2*imag(z))
		}
	}

	return x, nil
}

// FromCoordinates inverts Coordinates: Σ x_k E_k.
// Returns ErrBadShape if len(x) != n² or n <= 0.
// Complexity: O(n²).
func FromCoordinates(n int, x []float64) (*Hermitian, error) {
	if n <= 0 || len(x) != n*n {
		return nil, matrixErrorf("FromCoordinates", ErrBadShape)
	}
	h := &Hermitian{n: n, data: make([]complex128, n*n)}
	k := 0
	for a := 0; a < n; a++ {
		h.data[a*n+a] = complex(x[k], 0)
		k++
	}
	s := 1 / math.Sqrt2
	for a := 0; a < n; a++ {
		for b := a + 1; b < n; b++ {
			re, im := s*x[k], -s*x[k+1]
			h.data[a*n+b] = complex(re, im)
			h.data[b*n+a] = complex(re, -im)
			k += 2
		}
	}

	return h, nil
}
