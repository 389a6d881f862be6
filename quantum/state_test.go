package quantum_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/antidist/quantum"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestState_NormalizeAndNorm(t *testing.T) {
	t.Parallel()

	s := quantum.State{3, 4i}
	assert.InDelta(t, 5.0, s.Norm(), 1e-12)

	u, err := s.Normalize()
	require.NoError(t, err)
	assert.InDelta(t, 1.0, u.Norm(), 1e-12)
	assert.InDelta(t, 0.6, real(u[0]), 1e-15)
	assert.InDelta(t, 0.8, imag(u[1]), 1e-15)
	assert.Equal(t, quantum.State{3, 4i}, s, "Normalize must not mutate the receiver")

	_, err = quantum.State{0, 0}.Normalize()
	require.ErrorIs(t, err, quantum.ErrZeroVector)
}

func TestInner_ConjugateLinearInFirstArgument(t *testing.T) {
	t.Parallel()

	a := quantum.State{1i, 0}
	b := quantum.State{1, 0}

	ip, err := quantum.Inner(a, b)
	require.NoError(t, err)
	assert.Equal(t, complex(0, -1), ip, "⟨i·e0|e0⟩ = −i")

	ov, err := quantum.Overlap(a, b)
	require.NoError(t, err)
	assert.InDelta(t, 1.0, ov, 1e-15)

	_, err = quantum.Inner(a, quantum.State{1})
	require.ErrorIs(t, err, quantum.ErrDimensionMismatch)
	_, err = quantum.Overlap(a, quantum.State{1})
	require.ErrorIs(t, err, quantum.ErrDimensionMismatch)
}

func TestOverlap_Orthogonal(t *testing.T) {
	t.Parallel()

	s := 1 / math.Sqrt2
	plus := quantum.State{complex(s, 0), complex(s, 0)}
	minus := quantum.State{complex(s, 0), complex(-s, 0)}

	ov, err := quantum.Overlap(plus, minus)
	require.NoError(t, err)
	assert.InDelta(t, 0.0, ov, 1e-15)
}

func TestState_Density(t *testing.T) {
	t.Parallel()

	rho, err := quantum.State{0, 1i}.Density()
	require.NoError(t, err)
	assert.InDelta(t, 1.0, rho.Trace(), 1e-15)
	v, err := rho.At(1, 1)
	require.NoError(t, err)
	assert.InDelta(t, 1.0, real(v), 1e-15)
	assert.InDelta(t, 0.0, imag(v), 1e-15)
}
