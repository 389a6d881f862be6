// SPDX-License-Identifier: MIT

// Package matrix: Hermitian is the concrete complex matrix type used by the
// state, solver and oracle packages.
//
// Storage:
//   - Full row-major n×n []complex128 buffer; both triangles are kept in sync
//     by every mutator so At is a plain read.
//   - Diagonal entries are real by construction (Set rejects imaginary diagonal).
//
// Determinism:
//   - All loops are fixed i→j order; no hidden randomness or parallelism.
package matrix

import (
	"fmt"
	"math"
	"math/cmplx"
)

// Hermitian is a square complex matrix equal to its conjugate transpose.
// The zero value is not usable; construct with NewHermitian, NewHermitianFromRows,
// Identity or Outer.
type Hermitian struct {
	n    int          // order
	data []complex128 // row-major, len == n*n
}

// hermitianErrorf wraps err with a method tag for uniform reporting.
func hermitianErrorf(method string, err error) error {
	return fmt.Errorf("Hermitian.%s: %w", method, err)
}

// NewHermitian allocates an n×n zero Hermitian matrix.
// Returns ErrBadShape if n <= 0.
// Complexity: O(n²) time and memory.
func NewHermitian(n int) (*Hermitian, error) {
	if n <= 0 {
		return nil, hermitianErrorf("New", ErrBadShape)
	}

	return &Hermitian{n: n, data: make([]complex128, n*n)}, nil
}

// NewHermitianFromRows copies rows into a new Hermitian matrix after checking
// shape, finiteness (unless disabled) and Hermitian structure within eps.
//
// The stored matrix is the Hermitian part (A + Aᴴ)/2 of the input so that
// round-off below eps never leaks into later kernels.
//
// Errors: ErrBadShape, ErrNaNInf, ErrNotHermitian (in that priority).
// Complexity: O(n²).
func NewHermitianFromRows(rows [][]complex128, opts ...Option) (*Hermitian, error) {
	o := gatherOptions(opts...)
	n := len(rows)
	if err := ValidateSquareRows(rows); err != nil {
		return nil, hermitianErrorf("FromRows", err)
	}
	if o.validateNaNInf {
		if err := ValidateFiniteRows(rows); err != nil {
			return nil, hermitianErrorf("FromRows", err)
		}
	}
	if err := ValidateHermitianRows(rows, o.eps); err != nil {
		return nil, hermitianErrorf("FromRows", err)
	}

	h := &Hermitian{n: n, data: make([]complex128, n*n)}
	var i, j int
	for i = 0; i < n; i++ {
		h.data[i*n+i] = complex(real(rows[i][i]), 0)
		for j = i + 1; j < n; j++ {
			v := (rows[i][j] + cmplx.Conj(rows[j][i])) / 2
			h.data[i*n+j] = v
			h.data[j*n+i] = cmplx.Conj(v)
		}
	}

	return h, nil
}

// Identity returns the n×n identity matrix.
// Returns ErrBadShape if n <= 0.
func Identity(n int) (*Hermitian, error) {
	h, err := NewHermitian(n)
	if err != nil {
		return nil, err
	}
	for i := 0; i < n; i++ {
		h.data[i*n+i] = 1
	}

	return h, nil
}

// Outer returns the rank-one projector-like matrix |v⟩⟨v|, i.e. entry (a,b)
// equals v[a]·conj(v[b]). For a unit vector this is the density matrix of the
// pure state v.
//
// Errors: ErrBadShape for an empty vector, ErrNaNInf for non-finite components.
// Complexity: O(n²).
func Outer(v []complex128) (*Hermitian, error) {
	n := len(v)
	if n == 0 {
		return nil, hermitianErrorf("Outer", ErrBadShape)
	}
	for _, z := range v {
		if !isFinite(z) {
			return nil, hermitianErrorf("Outer", ErrNaNInf)
		}
	}

	h := &Hermitian{n: n, data: make([]complex128, n*n)}
	var a, b int
	for a = 0; a < n; a++ {
		h.data[a*n+a] = complex(real(v[a])*real(v[a])+imag(v[a])*imag(v[a]), 0)
		for b = a + 1; b < n; b++ {
			z := v[a] * cmplx.Conj(v[b])
			h.data[a*n+b] = z
			h.data[b*n+a] = cmplx.Conj(z)
		}
	}

	return h, nil
}

// Dim returns the order n.
func (h *Hermitian) Dim() int { return h.n }

// At returns entry (i,j).
// Returns ErrOutOfRange for invalid indices.
func (h *Hermitian) At(i, j int) (complex128, error) {
	if i < 0 || i >= h.n || j < 0 || j >= h.n {
		return 0, hermitianErrorf("At", ErrOutOfRange)
	}

	return h.data[i*h.n+j], nil
}

// Set assigns v at (i,j) and conj(v) at (j,i).
//
// Errors:
//   - ErrOutOfRange for invalid indices.
//   - ErrNaNInf for non-finite v.
//   - ErrNotHermitian when i == j and imag(v) != 0.
func (h *Hermitian) Set(i, j int, v complex128) error {
	if i < 0 || i >= h.n || j < 0 || j >= h.n {
		return hermitianErrorf("Set", ErrOutOfRange)
	}
	if !isFinite(v) {
		return hermitianErrorf("Set", ErrNaNInf)
	}
	if i == j {
		if imag(v) != 0 {
			return hermitianErrorf("Set", ErrNotHermitian)
		}
		h.data[i*h.n+i] = v

		return nil
	}
	h.data[i*h.n+j] = v
	h.data[j*h.n+i] = cmplx.Conj(v)

	return nil
}

// Clone returns a deep copy.
func (h *Hermitian) Clone() *Hermitian {
	out := &Hermitian{n: h.n, data: make([]complex128, len(h.data))}
	copy(out.data, h.data)

	return out
}

// Trace returns Tr(H). The trace of a Hermitian matrix is real.
func (h *Hermitian) Trace() float64 {
	var tr float64
	for i := 0; i < h.n; i++ {
		tr += real(h.data[i*h.n+i])
	}

	return tr
}

// Rows returns a freshly allocated [][]complex128 copy of the matrix.
func (h *Hermitian) Rows() [][]complex128 {
	out := make([][]complex128, h.n)
	for i := range out {
		out[i] = make([]complex128, h.n)
		copy(out[i], h.data[i*h.n:(i+1)*h.n])
	}

	return out
}

// FrobeniusNorm returns sqrt(Σ|h_ij|²).
func (h *Hermitian) FrobeniusNorm() float64 {
	var s float64
	for _, z := range h.data {
		s += real(z)*real(z) + imag(z)*imag(z)
	}

	return math.Sqrt(s)
}

// String renders the matrix row by row; intended for debugging and examples.
func (h *Hermitian) String() string {
	return fmt.Sprint(h.Rows())
}

// isFinite reports whether both parts of z are finite.
func isFinite(z complex128) bool {
	return !cmplx.IsNaN(z) && !cmplx.IsInf(z)
}
