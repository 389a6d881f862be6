package sdp

import (
	"context"
	"errors"
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
)

// factored holds the Cholesky factors of every slack at one point.
type factored struct {
	chol   []mat.Cholesky
	logdet float64 // Σ_j log det S_j (complex), i.e. ½ Σ_j log det Φ(S_j)
}

// factorize factors every slack at x. ok is false if any slack is not
// positive definite.
func (pr *program) factorize(x []float64) (f factored, ok bool) {
	f.chol = make([]mat.Cholesky, len(pr.lmis))
	for j := range pr.lmis {
		if !f.chol[j].Factorize(pr.lmis[j].slack(x)) {
			return factored{}, false
		}
		f.logdet += f.chol[j].LogDet() / 2
	}

	return f, true
}

// strictlyFeasible reports whether every slack at x is positive definite.
func (pr *program) strictlyFeasible(x []float64) bool {
	_, ok := pr.factorize(x)

	return ok
}

// derivatives returns the gradient and Hessian of
//
//	φ_t(x) = −t·c·x − Σ_j log det S_j(x)
//
// Writing P_jk = Φ(S_j)⁻¹ Φ(F_jk):
//
//	∂φ/∂x_k      = −t·c_k − ½ Σ_j Tr P_jk
//	∂²φ/∂x_k∂x_l =          ½ Σ_j Tr(P_jk P_jl)
func (pr *program) derivatives(t float64, f factored) ([]float64, *mat.SymDense, error) {
	grad := make([]float64, pr.nparams)
	for k := range grad {
		grad[k] = -t * pr.c[k]
	}
	hess := mat.NewSymDense(pr.nparams, nil)

	for j := range pr.lmis {
		l := &pr.lmis[j]
		var inv mat.SymDense
		if err := f.chol[j].InverseTo(&inv); err != nil {
			if _, ok := err.(mat.Condition); !ok {
				return nil, nil, fmt.Errorf("slack %d inverse: %w: %w", j, ErrNumerical, err)
			}
		}
		sinv := mat.NewDense(l.m, l.m, dense(&inv))

		ps := make([]*mat.Dense, len(l.idx))
		for q := range l.idx {
			p := mat.NewDense(l.m, l.m, nil)
			p.Mul(sinv, mat.NewDense(l.m, l.m, l.fk[q]))
			ps[q] = p
			grad[l.idx[q]] -= mat.Trace(p) / 2
		}
		for q, k := range l.idx {
			for r := q; r < len(l.idx); r++ {
				kl := l.idx[r]
				v := traceProduct(ps[q], ps[r], l.m) / 2
				if k <= kl {
					hess.SetSym(k, kl, hess.At(k, kl)+v)
				} else {
					hess.SetSym(kl, k, hess.At(kl, k)+v)
				}
			}
		}
	}

	return grad, hess, nil
}

// traceProduct returns Tr(A·B) for m×m matrices without forming the product.
func traceProduct(a, b *mat.Dense, m int) float64 {
	ra, rb := a.RawMatrix(), b.RawMatrix()
	var s float64
	for i := 0; i < m; i++ {
		for j := 0; j < m; j++ {
			s += ra.Data[i*ra.Stride+j] * rb.Data[j*rb.Stride+i]
		}
	}

	return s
}

// newtonStep solves H·Δ = −g. A finite condition-number warning from gonum
// is accepted.
func newtonStep(hess *mat.SymDense, grad []float64) ([]float64, error) {
	k := len(grad)
	neg := make([]float64, k)
	for i, g := range grad {
		neg[i] = -g
	}
	rhs := mat.NewVecDense(k, neg)

	var dx mat.VecDense
	if err := solveRegularized(&dx, hess, rhs); err != nil {
		cond, ok := err.(mat.Condition)
		if !ok || math.IsInf(float64(cond), 1) || math.IsNaN(float64(cond)) {
			return nil, fmt.Errorf("newton system: %w: %w", ErrNumerical, err)
		}
	}

	out := make([]float64, k)
	for i := range out {
		v := dx.AtVec(i)
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return nil, fmt.Errorf("newton system: non-finite step: %w", ErrNumerical)
		}
		out[i] = v
	}

	return out, nil
}

// solveRegularized solves H·Δ = r by Cholesky. When H is not numerically
// positive definite (a direction no slack or objective term curves, or
// curvature lost under a much larger scale) it retries with H + δ·I for a
// growing δ, and falls back to LU last.
func solveRegularized(dst *mat.VecDense, hess *mat.SymDense, rhs *mat.VecDense) error {
	var chol mat.Cholesky
	if chol.Factorize(hess) {
		return chol.SolveVecTo(dst, rhs)
	}

	k := hess.SymmetricDim()
	var scale float64
	for i := 0; i < k; i++ {
		scale = math.Max(scale, math.Abs(hess.At(i, i)))
	}
	if scale == 0 {
		scale = 1
	}
	shifted := mat.NewSymDense(k, nil)
	delta := regularizeStart * scale
	for try := 0; try < regularizeTries; try++ {
		shifted.CopySym(hess)
		for i := 0; i < k; i++ {
			shifted.SetSym(i, i, hess.At(i, i)+delta)
		}
		if chol.Factorize(shifted) {
			return chol.SolveVecTo(dst, rhs)
		}
		delta *= regularizeGrowth
	}

	return dst.SolveVec(hess, rhs)
}

// pathHooks customise path following. stop ends the solve early once the
// point is good enough; certify may reject the problem after a centering
// step; limit, if positive, bounds |c·x| before ErrUnbounded is reported.
// fallback allows returning the last centered point when centering at a
// larger t breaks down. phaseOne tags Progress records.
type pathHooks struct {
	stop     func(x []float64) bool
	certify  func(x []float64, t float64) error
	limit    float64
	fallback bool
	phaseOne bool
}

// pathResult summarises one run of the path-following loop.
type pathResult struct {
	t          float64
	iterations int
	stopped    bool
}

// interrupted converts a done context into ErrTimeout.
func interrupted(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return fmt.Errorf("%w: %w", ErrTimeout, err)
	}

	return nil
}

// center minimises φ_t from the strictly feasible x, updating x in place.
// It returns the Newton steps taken and whether hooks.stop fired.
//
// Centering ends when λ²/2 drops below the Newton tolerance, when no step
// of the line search lowers φ_t, or when the accepted decrease is at the
// rounding level of φ_t itself.
func (s *BarrierSolver) center(ctx context.Context, pr *program, x []float64, t float64, h pathHooks) (int, bool, error) {
	trial := make([]float64, len(x))
	for it := 0; it < s.opts.maxNewton; it++ {
		if err := interrupted(ctx); err != nil {
			return it, false, err
		}

		f, ok := pr.factorize(x)
		if !ok {
			return it, false, fmt.Errorf("center: slack lost definiteness: %w", ErrNumerical)
		}
		grad, hess, err := pr.derivatives(t, f)
		if err != nil {
			return it, false, fmt.Errorf("center: %w", err)
		}
		dx, err := newtonStep(hess, grad)
		if err != nil {
			return it, false, fmt.Errorf("center: %w", err)
		}

		// λ² = −g·Δ = Δᵀ H Δ; a negative value is gradient round-off.
		lambda2 := -floats.Dot(grad, dx)
		if math.IsNaN(lambda2) {
			return it, false, fmt.Errorf("center: NaN Newton decrement: %w", ErrNumerical)
		}
		if lambda2/2 < s.opts.newtonTol {
			return it, false, nil
		}

		cdx := floats.Dot(pr.c, dx)
		decrease := math.NaN()
		for alpha := 1.0; alpha >= minStep; alpha *= backtrackShrink {
			for i := range x {
				trial[i] = x[i] + alpha*dx[i]
			}
			ft, ok := pr.factorize(trial)
			if !ok {
				continue
			}
			// φ(x+αΔ) − φ(x), formed as a difference so the large t·c·x
			// term cancels exactly.
			diff := -t*alpha*cdx - (ft.logdet - f.logdet)
			if diff <= -armijoFraction*alpha*lambda2 {
				copy(x, trial)
				decrease = -diff
				break
			}
		}
		if math.IsNaN(decrease) {
			// No representable decrease is left at this t.
			return it + 1, false, nil
		}

		obj := pr.objective(x)
		if h.limit > 0 && math.Abs(obj) > h.limit {
			return it + 1, false, fmt.Errorf("center: objective %g: %w", pr.sign*obj, ErrUnbounded)
		}
		if h.stop != nil && h.stop(x) {
			return it + 1, true, nil
		}
		if decrease <= stallFraction*(1+math.Abs(t*obj)+math.Abs(f.logdet)) {
			return it + 1, false, nil
		}
	}

	return s.opts.maxNewton, false, fmt.Errorf("center: %d Newton steps at t=%g: %w", s.opts.maxNewton, t, ErrNotConverged)
}

// follow runs the outer loop: center, then grow t by mu, until the gap
// bound nu/t drops below the gap tolerance.
//
// With hooks.fallback set, a centering that fails with ErrNotConverged or
// ErrNumerical does not fail the solve when the previous centered point
// already has nu/t within the acceptable gap: x is reset to that point.
func (s *BarrierSolver) follow(ctx context.Context, pr *program, x []float64, h pathHooks) (pathResult, error) {
	nu := pr.nu()
	res := pathResult{t: 1}
	var (
		last  []float64 // last centered point
		lastT float64
	)
	for outer := 0; outer < s.opts.maxOuter; outer++ {
		n, stopped, err := s.center(ctx, pr, x, res.t, h)
		res.iterations += n
		if err != nil {
			if h.fallback && last != nil && recoverable(err) && nu/lastT <= s.opts.acceptGap {
				copy(x, last)
				res.t = lastT
				return res, nil
			}
			return res, err
		}
		if s.opts.progress != nil {
			s.opts.progress(Progress{
				PhaseOne:    h.phaseOne,
				Outer:       outer,
				T:           res.t,
				Objective:   pr.sign * pr.objective(x),
				GapBound:    nu / res.t,
				NewtonSteps: n,
			})
		}
		if stopped {
			res.stopped = true
			return res, nil
		}
		if h.certify != nil {
			if err := h.certify(x, res.t); err != nil {
				return res, err
			}
		}
		if nu/res.t < s.opts.gapTol {
			return res, nil
		}
		last = append(last[:0], x...)
		lastT = res.t
		res.t *= s.opts.mu
	}

	return res, fmt.Errorf("follow: %d centering steps: %w", s.opts.maxOuter, ErrNotConverged)
}

// recoverable reports whether err is a floating-point breakdown rather than
// a property of the problem or an interruption.
func recoverable(err error) bool {
	return errors.Is(err, ErrNotConverged) || errors.Is(err, ErrNumerical)
}
