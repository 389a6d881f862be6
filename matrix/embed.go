// SPDX-License-Identifier: MIT

// Package matrix: real-symmetric embedding of Hermitian matrices.
//
// The map
//
//	Φ(A) = ⎡ Re A  −Im A ⎤
//	       ⎣ Im A   Re A ⎦
//
// is an injective *-homomorphism from n×n Hermitian matrices into 2n×2n real
// symmetric matrices. It preserves products and inverses, doubles every
// eigenvalue's multiplicity (so A ⪰ 0 ⇔ Φ(A) ⪰ 0), doubles the trace and
// squares the determinant. This lets gonum's real Cholesky, LU and EigenSym
// kernels answer every complex question the solver asks.
package matrix

import (
	"fmt"

	"gonum.org/v1/gonum/mat"
)

// Embed returns Φ(h) as a freshly allocated *mat.SymDense of order 2n.
// Complexity: O(n²).
func (h *Hermitian) Embed() *mat.SymDense {
	n := h.n
	s := mat.NewSymDense(2*n, nil)
	var i, j int
	for i = 0; i < n; i++ {
		for j = i; j < n; j++ {
			z := h.data[i*n+j]
			s.SetSym(i, j, real(z))
			s.SetSym(n+i, n+j, real(z))
		}
		for j = 0; j < n; j++ {
			// upper-right block (row i, col n+j) holds −Im(h_ij)
			s.SetSym(i, n+j, -imag(h.data[i*n+j]))
		}
	}

	return s
}

// FromEmbedding inverts Embed. The two copies of each block are averaged, so a
// matrix that is only approximately of embedding form (e.g. a numerically
// computed inverse) is projected back onto it.
//
// Errors: ErrBadEmbedding for odd order, ErrNaNInf for non-finite entries.
// Complexity: O(n²).
func FromEmbedding(s mat.Symmetric) (*Hermitian, error) {
	m := s.SymmetricDim()
	if m == 0 || m%2 != 0 {
		return nil, fmt.Errorf("FromEmbedding: %w", ErrBadEmbedding)
	}
	n := m / 2
	h := &Hermitian{n: n, data: make([]complex128, n*n)}
	var i, j int
	for i = 0; i < n; i++ {
		for j = i; j < n; j++ {
			re := (s.At(i, j) + s.At(n+i, n+j)) / 2
			im := (s.At(n+i, j) - s.At(i, n+j)) / 2
			if i == j {
				im = 0
			}
			z := complex(re, im)
			if !isFinite(z) {
				return nil, fmt.Errorf("FromEmbedding: %w", ErrNaNInf)
			}
			h.data[i*n+j] = z
			h.data[j*n+i] = complex(re, -im)
		}
	}

	return h, nil
}
