package oracle_test

import (
	"context"
	"math"
	"testing"

	"github.com/katalvlaran/antidist/oracle"
	"github.com/katalvlaran/antidist/quantum"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConjecture_FourTruthCombinations(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name         string
		states       []quantum.State
		satisfied    bool
		antidist     bool
		wantViolated bool
	}{
		{"satisfied and antidistinguishable", basis(4), true, true, false},
		{"satisfied, not antidistinguishable", publishedCounterexample(), true, false, true},
		{"violated inequality, antidistinguishable", duplicatedPair(), false, true, false},
		{"violated inequality, not antidistinguishable", identical(4), false, false, false},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			o, err := oracle.New(tc.states)
			require.NoError(t, err)
			ctx := context.Background()

			assert.Equal(t, tc.satisfied, o.IsInequalitySatisfied())
			ad, err := o.IsAntidistinguishable(ctx)
			require.NoError(t, err)
			assert.Equal(t, tc.antidist, ad)

			violated, err := o.IsConjectureViolated(ctx)
			require.NoError(t, err)
			assert.Equal(t, tc.wantViolated, violated)
			assert.Equal(t, tc.satisfied && !tc.antidist, violated)

			v, err := o.Evaluate(ctx)
			require.NoError(t, err)
			assert.Equal(t, oracle.Verdict{
				InequalitySatisfied: tc.satisfied,
				Antidistinguishable: tc.antidist,
				ConjectureViolated:  tc.wantViolated,
				Solved:              true,
				OptimalValue:        o.OptimalValue(),
				SmallestOverlap:     o.SmallestOverlap(),
				LargestOverlap:      o.LargestOverlap(),
			}, v)
		})
	}
}

func TestConjecture_PublishedCounterexample(t *testing.T) {
	t.Parallel()

	o, err := oracle.New(publishedCounterexample())
	require.NoError(t, err)
	ctx := context.Background()

	assert.True(t, o.IsInequalitySatisfied(), "is_inequality_satisfied")
	ad, err := o.IsAntidistinguishable(ctx)
	require.NoError(t, err)
	assert.False(t, ad, "is_antidistinguishable")
	violated, err := o.IsConjectureViolated(ctx)
	require.NoError(t, err)
	assert.True(t, violated, "is_conjecture_violated")

	assert.InDelta(t, publishedOptimum, o.OptimalValue(), 1e-6)
	assert.Less(t, o.LargestOverlap(), o.UpperBound())
}

func TestConjecture_PhaseCounterexample(t *testing.T) {
	t.Parallel()

	o, err := oracle.New(phaseCounterexample())
	require.NoError(t, err)

	v, err := o.Evaluate(context.Background())
	require.NoError(t, err)
	assert.True(t, v.InequalitySatisfied)
	assert.False(t, v.Antidistinguishable)
	assert.True(t, v.ConjectureViolated)
	assert.InDelta(t, phaseOptimum, v.OptimalValue, 1e-6)
	assert.InDelta(t, 0.66, v.LargestOverlap, 1e-9)
}

func TestConjecture_ShortCircuitSkipsSolver(t *testing.T) {
	t.Parallel()

	ctx := context.Background()

	counting := newCountingSolver()
	o, err := oracle.New(identical(3), oracle.WithSolver(counting), oracle.WithShortCircuit(true))
	require.NoError(t, err)

	violated, err := o.IsConjectureViolated(ctx)
	require.NoError(t, err)
	assert.False(t, violated)
	v, err := o.Evaluate(ctx)
	require.NoError(t, err)
	assert.False(t, v.Solved)
	assert.False(t, v.ConjectureViolated)
	assert.Equal(t, int32(0), counting.calls.Load())

	// Without short-circuiting both calls solve.
	full := newCountingSolver()
	o, err = oracle.New(identical(3), oracle.WithSolver(full))
	require.NoError(t, err)
	violated, err = o.IsConjectureViolated(ctx)
	require.NoError(t, err)
	assert.False(t, violated)
	_, err = o.Evaluate(ctx)
	require.NoError(t, err)
	assert.Equal(t, int32(2), full.calls.Load())
}

func TestConjecture_ShortCircuitStillSolvesWhenSatisfied(t *testing.T) {
	t.Parallel()

	counting := newCountingSolver()
	o, err := oracle.New(publishedCounterexample(), oracle.WithSolver(counting), oracle.WithShortCircuit(true))
	require.NoError(t, err)

	violated, err := o.IsConjectureViolated(context.Background())
	require.NoError(t, err)
	assert.True(t, violated)
	assert.Equal(t, int32(1), counting.calls.Load())
}

func TestEvaluate_ErrorKeepsInequalityPart(t *testing.T) {
	t.Parallel()

	o, err := oracle.New(basis(3), oracle.WithSolver(stubSolver{err: context.DeadlineExceeded}))
	require.NoError(t, err)

	v, err := o.Evaluate(context.Background())
	require.ErrorIs(t, err, oracle.ErrSolverFailure)
	assert.True(t, v.InequalitySatisfied)
	assert.False(t, v.Solved)
}

func TestEvaluate_SkippedSolveHasNoOptimum(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	o, err := oracle.New(identical(4), oracle.WithShortCircuit(true))
	require.NoError(t, err)

	// A direct call still solves and records v* on the oracle.
	ad, err := o.IsAntidistinguishable(ctx)
	require.NoError(t, err)
	require.False(t, ad)
	require.InDelta(t, 1, o.OptimalValue(), 1e-6)

	v, err := o.Evaluate(ctx)
	require.NoError(t, err)
	assert.False(t, v.Solved)
	assert.False(t, v.InequalitySatisfied)
	assert.True(t, math.IsNaN(v.OptimalValue), "got %v", v.OptimalValue)
}
