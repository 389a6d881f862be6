package sdp

import (
	"context"
	"fmt"

	"github.com/katalvlaran/antidist/matrix"
	"gonum.org/v1/gonum/mat"
)

// Solver solves a semidefinite Problem.
//
// Implementations must honour ctx: cancellation or an expired deadline ends
// the solve with an error matching ErrTimeout.
type Solver interface {
	Solve(ctx context.Context, p *Problem) (*Solution, error)
}

// Solution is the result of a successful solve.
type Solution struct {
	// Value is the objective at the returned primal point.
	Value float64
	// DualValue is the objective bound certified by Duals. For a
	// maximisation Value ≤ optimum ≤ DualValue (reversed for Minimize).
	DualValue float64
	// Gap is the certified duality gap, non-negative up to round-off.
	Gap float64
	// Variables holds the primal point, indexed like the variables were added.
	Variables []*matrix.Hermitian
	// Duals holds one matrix Z_j ⪰ 0 per constraint, in insertion order.
	// For lhs ⪯ rhs the dual is the multiplier of rhs − lhs ⪰ 0.
	Duals []*matrix.Hermitian
	// Iterations counts Newton steps across phase I and phase II.
	Iterations int

	problem *Problem
}

// Variable returns the primal value of v, or nil if v is not part of the
// solved problem.
func (s *Solution) Variable(v Variable) *matrix.Hermitian {
	if v.p == nil || v.p != s.problem || v.id < 0 || v.id >= len(s.Variables) {
		return nil
	}

	return s.Variables[v.id]
}

// BarrierSolver is a primal log-barrier path-following solver.
//
// Hermitian variables are parameterised by their coordinates in the
// orthonormal matrix.HermitianBasis, every constraint is handled through the
// real embedding, and all dense linear algebra (Cholesky, LU, inverses,
// log-determinants) is done by gonum. The zero value is not usable; use
// NewBarrierSolver.
type BarrierSolver struct {
	opts Options
}

// NewBarrierSolver returns a solver configured by opts over the package defaults.
func NewBarrierSolver(opts ...Option) *BarrierSolver {
	return &BarrierSolver{opts: gatherOptions(opts...)}
}

// Solve implements Solver.
//
// The start point (SetStart, zero elsewhere) is used directly when every
// slack is positive definite there; otherwise phase I searches for such a
// point first. Duals are recovered as Z_j = S_j⁻¹ / t at the final barrier
// parameter t. If centering breaks down numerically at a large t, the last
// centered point is returned provided its gap bound is within
// WithAcceptableGap.
func (s *BarrierSolver) Solve(ctx context.Context, p *Problem) (*Solution, error) {
	if ctx == nil {
		ctx = context.Background()
	}
	pr, err := compile(p)
	if err != nil {
		return nil, err
	}
	if err = interrupted(ctx); err != nil {
		return nil, err
	}

	x := append([]float64(nil), pr.x0...)
	iterations := 0
	if !pr.strictlyFeasible(x) {
		n, err := s.phaseOne(ctx, pr, x)
		iterations += n
		if err != nil {
			return nil, fmt.Errorf("sdp: phase I: %w", err)
		}
	}

	res, err := s.follow(ctx, pr, x, pathHooks{limit: s.opts.unboundedLimit, fallback: true})
	iterations += res.iterations
	if err != nil {
		return nil, fmt.Errorf("sdp: %w", err)
	}

	sol, err := pr.solution(x, res.t)
	if err != nil {
		return nil, fmt.Errorf("sdp: %w", err)
	}
	sol.Iterations = iterations
	sol.problem = p

	return sol, nil
}

// solution assembles the primal point and the recovered duals.
func (pr *program) solution(x []float64, t float64) (*Solution, error) {
	f, ok := pr.factorize(x)
	if !ok {
		return nil, fmt.Errorf("solution: final point is not interior: %w", ErrNumerical)
	}

	primal := pr.objective(x)
	dual := primal
	duals := make([]*matrix.Hermitian, len(pr.lmis))
	for j := range pr.lmis {
		var inv mat.SymDense
		if err := f.chol[j].InverseTo(&inv); err != nil {
			if _, ok := err.(mat.Condition); !ok {
				return nil, fmt.Errorf("solution: dual %d: %w: %w", j, ErrNumerical, err)
			}
		}
		sinv, err := matrix.FromEmbedding(&inv)
		if err != nil {
			return nil, fmt.Errorf("solution: dual %d: %w: %w", j, ErrNumerical, err)
		}
		z, err := matrix.Scale(1/t, sinv)
		if err != nil {
			return nil, fmt.Errorf("solution: dual %d: %w", j, err)
		}
		slack, err := matrix.FromEmbedding(pr.lmis[j].slack(x))
		if err != nil {
			return nil, fmt.Errorf("solution: slack %d: %w: %w", j, ErrNumerical, err)
		}
		// Weak duality: dual objective = c·x + Σ_j Re Tr(Z_j S_j).
		ip, err := matrix.Inner(z, slack)
		if err != nil {
			return nil, fmt.Errorf("solution: %w", err)
		}
		dual += ip
		duals[j] = z
	}

	vars := make([]*matrix.Hermitian, len(pr.vars))
	for v, n := range pr.vars {
		h, err := matrix.FromCoordinates(n, x[pr.offsets[v]:pr.offsets[v]+n*n])
		if err != nil {
			return nil, fmt.Errorf("solution: variable %d: %w", v, err)
		}
		vars[v] = h
	}

	return &Solution{
		Value:     pr.sign * primal,
		DualValue: pr.sign * dual,
		Gap:       dual - primal,
		Variables: vars,
		Duals:     duals,
	}, nil
}
