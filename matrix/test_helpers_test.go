// SPDX-License-Identifier: MIT
// Package matrix_test contains test helpers
//
// Purpose:
//   - Provide small, deterministic fixtures for Hermitian kernels.
//   - Keep all data finite and well-formed to avoid numeric-policy interference.

package matrix_test

import (
	"math/cmplx"
	"math/rand/v2"
	"testing"

	"github.com/katalvlaran/antidist/matrix"
	"github.com/stretchr/testify/require"
)

// tol is the comparison tolerance for floating-point results in this package.
const tol = 1e-10

// mustFromRows builds a Hermitian from rows or fails the test.
func mustFromRows(t testing.TB, rows [][]complex128) *matrix.Hermitian {
	t.Helper()
	h, err := matrix.NewHermitianFromRows(rows)
	require.NoError(t, err)

	return h
}

// randomHermitian returns a deterministic pseudo-random n×n Hermitian matrix.
func randomHermitian(t testing.TB, n int, seed uint64) *matrix.Hermitian {
	t.Helper()
	r := rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
	h, err := matrix.NewHermitian(n)
	require.NoError(t, err)
	for i := 0; i < n; i++ {
		require.NoError(t, h.Set(i, i, complex(r.NormFloat64(), 0)))
		for j := i + 1; j < n; j++ {
			require.NoError(t, h.Set(i, j, complex(r.NormFloat64(), r.NormFloat64())))
		}
	}

	return h
}

// requireClose asserts entrywise |a_ij − b_ij| ≤ eps.
func requireClose(t testing.TB, want, got *matrix.Hermitian, eps float64) {
	t.Helper()
	require.Equal(t, want.Dim(), got.Dim(), "dimension")
	w, g := want.Rows(), got.Rows()
	for i := range w {
		for j := range w[i] {
			require.LessOrEqualf(t, cmplx.Abs(w[i][j]-g[i][j]), eps, "entry (%d,%d): want %v got %v", i, j, w[i][j], g[i][j])
		}
	}
}
