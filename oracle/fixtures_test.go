package oracle_test

import (
	"context"
	"math"
	"sync/atomic"
	"testing"

	"github.com/katalvlaran/antidist/matrix"
	"github.com/katalvlaran/antidist/quantum"
	"github.com/katalvlaran/antidist/sdp"
	"github.com/stretchr/testify/require"
)

// publishedCounterexample is the four-state d=4 set of the known
// counterexample data set, amplitudes as published (eight decimals).
func publishedCounterexample() []quantum.State {
	return []quantum.State{
		{0.50127198 - 0.037607i, -0.00698152 - 0.590973i, 0.08186514 - 0.4497548i, -0.01299883 + 0.43458491i},
		{-0.07115345 - 0.27080326i, 0.82047712 + 0.26320823i, 0.22105089 - 0.2091996i, -0.23575591 - 0.1758769i},
		{0.31360906 + 0.46339313i, -0.0465825 - 0.47825017i, -0.10470394 - 0.11776404i, 0.60231515 + 0.26154959i},
		{-0.53532122 - 0.03654632i, 0.40955941 - 0.15150576i, -0.05741386 + 0.23873985i, -0.4737113 - 0.48652564i},
	}
}

// publishedOptimum is v* for publishedCounterexample.
const publishedOptimum = 3.938163e-4

// phaseCounterexample realises the Gram matrix with every off-diagonal entry
// 0.66 except G_23 = 0.66·e^{iπ/4}. All overlaps are 0.66 < 2/3, yet the set
// is not antidistinguishable.
func phaseCounterexample() []quantum.State {
	return []quantum.State{
		{1, 0, 0, 0},
		{0.66, 0.751265598839718, 0, 0},
		{0.66, 0.2986959609844661, 0.68933353530171904, 0},
		{0.66, 0.2986959609844661, complex(-0.084326089691646094, 0.6770169325634976), 0.098579442639910003},
	}
}

// phaseOptimum is v* for phaseCounterexample.
const phaseOptimum = 0.0116412782

// basis returns the standard basis of C^d.
func basis(d int) []quantum.State {
	out := make([]quantum.State, d)
	for i := range out {
		out[i] = make(quantum.State, d)
		out[i][i] = 1
	}

	return out
}

// duplicatedPair returns {e0, e0, e2, e3}. The repeated vector breaks the
// inequality, yet M_0 = P3, M_1 = 0, M_2 = P0 + P1, M_3 = P2 (P_k = |e_k⟩⟨e_k|)
// excludes every state.
func duplicatedPair() []quantum.State {
	s := basis(4)
	s[1] = s[0].Clone()

	return s
}

// identical returns d copies of e0.
func identical(d int) []quantum.State {
	out := make([]quantum.State, d)
	for i := range out {
		out[i] = make(quantum.State, d)
		out[i][0] = 1
	}

	return out
}

// equiangular returns d real unit vectors with every pairwise inner
// product equal to c, from the Cholesky factor of (1−c)I + cJ.
func equiangular(t testing.TB, d int, c float64) []quantum.State {
	t.Helper()
	l := make([][]float64, d)
	for i := range l {
		l[i] = make([]float64, d)
		for j := 0; j <= i; j++ {
			g := c
			if i == j {
				g = 1
			}
			s := g
			for k := 0; k < j; k++ {
				s -= l[i][k] * l[j][k]
			}
			if i == j {
				require.Positive(t, s, "Gram matrix must be positive definite")
				l[i][i] = math.Sqrt(s)
			} else {
				l[i][j] = s / l[j][j]
			}
		}
	}
	out := make([]quantum.State, d)
	for i := range out {
		out[i] = make(quantum.State, d)
		for k, v := range l[i] {
			out[i][k] = complex(v, 0)
		}
	}

	return out
}

// requireFinite fails if v is NaN or ±Inf.
func requireFinite(t testing.TB, v float64) {
	t.Helper()
	require.False(t, math.IsNaN(v) || math.IsInf(v, 0), "value %v is not finite", v)
}

// countingSolver forwards to the barrier solver and counts calls.
type countingSolver struct {
	calls atomic.Int32
	inner sdp.Solver
}

func newCountingSolver() *countingSolver {
	return &countingSolver{inner: sdp.NewBarrierSolver()}
}

func (c *countingSolver) Solve(ctx context.Context, p *sdp.Problem) (*sdp.Solution, error) {
	c.calls.Add(1)

	return c.inner.Solve(ctx, p)
}

// stubSolver returns a fixed solution or error.
type stubSolver struct {
	sol *sdp.Solution
	err error
}

func (s stubSolver) Solve(context.Context, *sdp.Problem) (*sdp.Solution, error) {
	return s.sol, s.err
}

// stubSolution returns a Solution with value v and d identity duals.
func stubSolution(t testing.TB, d int, v float64) *sdp.Solution {
	t.Helper()
	duals := make([]*matrix.Hermitian, d)
	for i := range duals {
		id, err := matrix.Identity(d)
		require.NoError(t, err)
		duals[i] = id
	}

	return &sdp.Solution{Value: v, DualValue: v, Duals: duals}
}
