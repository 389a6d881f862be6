package sdp

import (
	"context"
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
)

// phaseOne searches for a strictly feasible point of pr, starting from x and
// writing the result back into x. It solves
//
//	maximize −s  subject to  S_j(x) + s·I ⪰ 0,  s ≥ −1
//
// from a point where the shifted slacks are trivially definite, and stops as
// soon as s < 0. A certified optimum with s ≥ 0 means pr has no interior.
// The bound on s keeps the Newton system regular when x can absorb the
// shift (e.g. a constraint X ⪰ A lets X grow while s falls). Every variable
// is also boxed in −R·I ⪯ X ⪯ R·I so that directions no constraint limits
// cannot carry the barrier off to infinity; the infeasibility certificate
// is therefore relative to that box.
func (s *BarrierSolver) phaseOne(ctx context.Context, pr *program, x []float64) (int, error) {
	if err := pr.checkConstant(); err != nil {
		return 0, err
	}
	aux, err := pr.shifted(x)
	if err != nil {
		return 0, err
	}
	k := pr.nparams

	res, err := s.follow(ctx, aux, aux.x0, pathHooks{
		phaseOne: true,
		stop:     func(y []float64) bool { return y[k] < 0 },
		certify: func(y []float64, t float64) error {
			// −s* ≤ −s + nu/t; a negative bound proves s* > 0.
			if bound := aux.objective(y) + aux.nu()/t; bound < 0 {
				return fmt.Errorf("min shift ≥ %g: %w", -bound, ErrInfeasible)
			}
			return nil
		},
	})
	if err != nil {
		return res.iterations, err
	}
	if !res.stopped {
		return res.iterations, fmt.Errorf("min shift %g ≥ 0: %w", aux.x0[k], ErrInfeasible)
	}
	copy(x, aux.x0[:k])

	return res.iterations, nil
}

// checkConstant rejects constraints that involve no variable and do not
// hold strictly; no choice of x can repair them.
func (pr *program) checkConstant() error {
	for j := range pr.lmis {
		l := &pr.lmis[j]
		if len(l.idx) > 0 {
			continue
		}
		var chol mat.Cholesky
		if !chol.Factorize(l.slack(nil)) {
			return fmt.Errorf("constant constraint %d is not strictly satisfied: %w", j, ErrInfeasible)
		}
	}

	return nil
}

// shifted builds the phase-I program around pr: one extra parameter s that
// adds s·I to every slack, objective −s, start (x, s0) with s0 large enough
// for every shifted slack to be positive definite, the bound s ≥ −1 and a
// box around every variable.
func (pr *program) shifted(x []float64) (*program, error) {
	k := pr.nparams
	aux := &program{
		nparams: k + 1,
		c:       make([]float64, k+1),
		sign:    1,
		lmis:    make([]lmi, len(pr.lmis), len(pr.lmis)+1+2*len(pr.vars)),
		x0:      make([]float64, k+1),
		vars:    pr.vars,
		offsets: pr.offsets,
	}
	aux.c[k] = -1
	copy(aux.x0, x)

	lmin := math.Inf(1)
	for j, l := range pr.lmis {
		var es mat.EigenSym
		if !es.Factorize(l.slack(x), false) {
			return nil, fmt.Errorf("phase I start: slack %d eigenvalues: %w", j, ErrNumerical)
		}
		for _, v := range es.Values(nil) {
			lmin = math.Min(lmin, v)
		}

		id := make([]float64, l.m*l.m)
		for i := 0; i < l.m; i++ {
			id[i*l.m+i] = 1
		}
		aux.lmis[j] = lmi{
			n:   l.n,
			m:   l.m,
			f0:  l.f0,
			idx: append(append([]int(nil), l.idx...), k),
			fk:  append(append([][]float64(nil), l.fk...), id),
		}
	}
	aux.x0[k] = 1 - math.Min(lmin, 0)

	// s + 1 ≥ 0 as a 1×1 constraint; its embedding is the 2×2 identity.
	one := []float64{1, 0, 0, 1}
	aux.lmis = append(aux.lmis, lmi{n: 1, m: 2, f0: one, idx: []int{k}, fk: [][]float64{one}})

	cache := make(embeddedBasis)
	for v, n := range pr.vars {
		off := pr.offsets[v]
		coords := x[off : off+n*n]
		basis, err := cache.get(n)
		if err != nil {
			return nil, fmt.Errorf("phase I box: %w", err)
		}
		// ‖X‖₂ ≤ ‖X‖_F = ‖coords‖₂, so the start is strictly inside.
		r := phaseOneRadius * (1 + floats.Norm(coords, 2))
		m := 2 * n
		f0 := make([]float64, m*m)
		for i := 0; i < m; i++ {
			f0[i*m+i] = r
		}
		for _, sign := range [...]float64{-1, 1} {
			box := lmi{n: n, m: m, f0: f0, idx: make([]int, n*n), fk: make([][]float64, n*n)}
			for q, e := range basis {
				f := make([]float64, len(e))
				for i, val := range e {
					f[i] = sign * val
				}
				box.idx[q] = off + q
				box.fk[q] = f
			}
			aux.lmis = append(aux.lmis, box)
		}
	}

	return aux, nil
}
