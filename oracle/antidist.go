package oracle

import (
	"context"
	"fmt"
	"math"

	"github.com/katalvlaran/antidist/matrix"
	"github.com/katalvlaran/antidist/sdp"
)

// IsAntidistinguishable solves
//
//	maximize Tr(Y)  subject to  Y ⪯ ρ_i = |ψ_i⟩⟨ψ_i|  for every i
//
// and reports whether the optimum v* is zero within tolerance. Y = 0 is
// always feasible, so v* ≥ 0; v* > 0 means no measurement can rule out
// every state. The optimum and the constraint duals are kept on the oracle.
//
// Errors:
//   - ErrSolverFailure wrapping the solver's error (including sdp.ErrTimeout),
//     or when the solver reports a NaN or infinite optimum;
//   - ErrNegativeOptimum when v* < −AbsTol.
func (o *Oracle) IsAntidistinguishable(ctx context.Context) (bool, error) {
	v, err := o.solve(ctx)
	if err != nil {
		return false, err
	}

	return o.decide(v)
}

// solve builds and solves the SDP, recording v* and the duals.
func (o *Oracle) solve(ctx context.Context) (float64, error) {
	o.evaluated = false
	o.optimal = math.NaN()
	o.measurements = nil

	p, err := o.problem()
	if err != nil {
		return 0, fmt.Errorf("%w: %w", ErrSolverFailure, err)
	}
	if ctx == nil {
		ctx = context.Background()
	}
	if o.opts.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, o.opts.timeout)
		defer cancel()
	}

	sol, err := o.opts.solver.Solve(ctx, p)
	if err != nil {
		return 0, fmt.Errorf("%w: %w", ErrSolverFailure, err)
	}
	if math.IsNaN(sol.Value) || math.IsInf(sol.Value, 0) {
		return 0, fmt.Errorf("%w: non-finite optimum %g", ErrSolverFailure, sol.Value)
	}
	if len(sol.Duals) != o.d {
		return 0, fmt.Errorf("%w: %d duals for %d constraints", ErrSolverFailure, len(sol.Duals), o.d)
	}

	o.evaluated = true
	o.optimal = sol.Value
	o.measurements = sol.Duals

	return sol.Value, nil
}

// problem formulates the SDP for the oracle's states, starting at Y = −I,
// where every slack ρ_i + I is positive definite.
func (o *Oracle) problem() (*sdp.Problem, error) {
	p := sdp.NewProblem()
	y, err := p.AddVariable(o.d)
	if err != nil {
		return nil, err
	}
	for i, s := range o.states {
		rho, err := s.Density()
		if err != nil {
			return nil, fmt.Errorf("state %d: %w", i, err)
		}
		if err = p.AddConstraint(sdp.Var(y), sdp.Const(rho)); err != nil {
			return nil, err
		}
	}
	if err = p.SetObjective(sdp.Maximize, sdp.Trace(y)); err != nil {
		return nil, err
	}
	id, err := matrix.Identity(o.d)
	if err != nil {
		return nil, err
	}
	start, err := matrix.Scale(-1, id)
	if err != nil {
		return nil, err
	}
	if err = p.SetStart(y, start); err != nil {
		return nil, err
	}

	return p, nil
}

// decide applies the closeness rule |v − 0| ≤ AbsTol + RelTol·|0|.
func (o *Oracle) decide(v float64) (bool, error) {
	if v < -o.opts.absTol {
		return false, fmt.Errorf("%w: v*=%g", ErrNegativeOptimum, v)
	}

	return isClose(v, 0, o.opts.absTol, o.opts.relTol), nil
}

// isClose reports |a − b| ≤ abs + rel·|b|.
func isClose(a, b, abs, rel float64) bool {
	return math.Abs(a-b) <= abs+rel*math.Abs(b)
}
