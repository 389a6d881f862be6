package sdp_test

import (
	"testing"

	"github.com/katalvlaran/antidist/matrix"
	"github.com/stretchr/testify/require"
)

// tol is the accuracy expected from a default-tolerance solve.
const tol = 1e-7

// mustHermitian builds a Hermitian matrix or fails the test.
func mustHermitian(t testing.TB, rows [][]complex128) *matrix.Hermitian {
	t.Helper()
	h, err := matrix.NewHermitianFromRows(rows)
	require.NoError(t, err)

	return h
}

// mustIdentity returns I_n.
func mustIdentity(t testing.TB, n int) *matrix.Hermitian {
	t.Helper()
	id, err := matrix.Identity(n)
	require.NoError(t, err)

	return id
}

// mustScale returns a·h.
func mustScale(t testing.TB, a float64, h *matrix.Hermitian) *matrix.Hermitian {
	t.Helper()
	out, err := matrix.Scale(a, h)
	require.NoError(t, err)

	return out
}

// basisDensities returns the projectors onto the standard basis of C^d.
func basisDensities(t testing.TB, d int) []*matrix.Hermitian {
	t.Helper()
	out := make([]*matrix.Hermitian, d)
	for i := range out {
		v := make([]complex128, d)
		v[i] = 1
		rho, err := matrix.Outer(v)
		require.NoError(t, err)
		out[i] = rho
	}

	return out
}

// requirePSD fails unless h ⪰ −eps·I.
func requirePSD(t testing.TB, h *matrix.Hermitian, eps float64) {
	t.Helper()
	ok, err := matrix.IsPSD(h, eps)
	require.NoError(t, err)
	require.True(t, ok, "expected PSD matrix, got %v", h)
}
