package quantum

import (
	"fmt"
	"math"
	"math/cmplx"

	"github.com/katalvlaran/antidist/matrix"
)

// DefaultNormTolerance bounds |‖ψ‖ − 1| for a vector to count as a pure state.
// It admits amplitudes published to eight decimal places.
const DefaultNormTolerance = 1e-7

// State is a vector of complex amplitudes. A State inside a validated set has
// unit Euclidean norm.
type State []complex128

// Dim returns the length of the vector.
func (s State) Dim() int { return len(s) }

// Clone returns an independent copy.
func (s State) Clone() State {
	out := make(State, len(s))
	copy(out, s)

	return out
}

// Norm returns the Euclidean norm sqrt(Σ|s_k|²).
func (s State) Norm() float64 {
	var sum float64
	for _, z := range s {
		sum += real(z)*real(z) + imag(z)*imag(z)
	}

	return math.Sqrt(sum)
}

// Normalize returns s/‖s‖.
// Returns ErrZeroVector when ‖s‖ is zero or not finite.
func (s State) Normalize() (State, error) {
	n := s.Norm()
	if n == 0 || math.IsNaN(n) || math.IsInf(n, 0) {
		return nil, ErrZeroVector
	}
	out := make(State, len(s))
	inv := complex(1/n, 0)
	for i, z := range s {
		out[i] = z * inv
	}

	return out, nil
}

// Density returns the density matrix |s⟩⟨s|.
func (s State) Density() (*matrix.Hermitian, error) {
	return matrix.Outer(s)
}

// Inner returns ⟨a|b⟩ = Σ conj(a_k)·b_k.
// Returns ErrDimensionMismatch for vectors of different lengths.
func Inner(a, b State) (complex128, error) {
	if len(a) != len(b) {
		return 0, fmt.Errorf("Inner: %d vs %d: %w", len(a), len(b), ErrDimensionMismatch)
	}
	var sum complex128
	for k := range a {
		sum += cmplx.Conj(a[k]) * b[k]
	}

	return sum, nil
}

// Overlap returns |⟨a|b⟩|: 0 for orthogonal states, 1 for identical ones.
func Overlap(a, b State) (float64, error) {
	ip, err := Inner(a, b)
	if err != nil {
		return 0, err
	}

	return cmplx.Abs(ip), nil
}
