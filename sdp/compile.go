package sdp

import (
	"fmt"

	"github.com/katalvlaran/antidist/matrix"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
)

// lmi is one constraint in standard form S(x) = F0 + Σ_k x_k F_k ⪰ 0,
// stored through the real embedding (every F is m×m, m = 2n, row-major).
type lmi struct {
	n   int
	m   int
	f0  []float64
	idx []int       // parameter indices with a non-zero coefficient
	fk  [][]float64 // aligned with idx
}

// program is a Problem lowered onto the real parameter vector x, which
// concatenates the HermitianBasis coordinates of every variable.
type program struct {
	nparams int
	c       []float64 // maximisation objective: c·x
	sign    float64   // +1 for Maximize, −1 for Minimize
	lmis    []lmi
	x0      []float64
	vars    []int // order of each variable
	offsets []int // first parameter index of each variable
}

// nu returns the barrier parameter Σ n_j; the duality gap on the central
// path at parameter t is nu/t.
func (pr *program) nu() float64 {
	var s int
	for _, l := range pr.lmis {
		s += l.n
	}

	return float64(s)
}

// objective returns c·x.
func (pr *program) objective(x []float64) float64 {
	return floats.Dot(pr.c, x)
}

// embeddedBasis caches the embedded HermitianBasis per order.
type embeddedBasis map[int][][]float64

// get returns the embedded basis of order n, computing it on first use.
func (b embeddedBasis) get(n int) ([][]float64, error) {
	if e, ok := b[n]; ok {
		return e, nil
	}
	basis, err := matrix.HermitianBasis(n)
	if err != nil {
		return nil, err
	}
	out := make([][]float64, len(basis))
	for k, h := range basis {
		out[k] = dense(h.Embed())
	}
	b[n] = out

	return out, nil
}

// dense copies a symmetric matrix into a full row-major buffer.
func dense(s mat.Symmetric) []float64 {
	m := s.SymmetricDim()
	out := make([]float64, m*m)
	for i := 0; i < m; i++ {
		for j := i; j < m; j++ {
			v := s.At(i, j)
			out[i*m+j] = v
			out[j*m+i] = v
		}
	}

	return out
}

// compile validates p and lowers it to a program.
func compile(p *Problem) (*program, error) {
	if p == nil {
		return nil, fmt.Errorf("compile: nil problem: %w", ErrInvalidProblem)
	}
	if len(p.vars) == 0 {
		return nil, fmt.Errorf("compile: no variables: %w", ErrInvalidProblem)
	}
	if len(p.constraints) == 0 {
		return nil, fmt.Errorf("compile: no constraints: %w", ErrInvalidProblem)
	}

	pr := &program{
		vars:    append([]int(nil), p.vars...),
		offsets: make([]int, len(p.vars)),
		sign:    1,
	}
	for v, n := range p.vars {
		pr.offsets[v] = pr.nparams
		pr.nparams += n * n
	}
	if p.sense == Minimize {
		pr.sign = -1
	}

	cache := make(embeddedBasis)
	used := make([]bool, len(p.vars))
	for j, con := range p.constraints {
		l, err := pr.lower(con, cache, used)
		if err != nil {
			return nil, fmt.Errorf("compile: constraint %d: %w", j, err)
		}
		pr.lmis = append(pr.lmis, l)
	}
	for v, ok := range used {
		if !ok {
			return nil, fmt.Errorf("compile: variable %d appears in no constraint: %w", v, ErrInvalidProblem)
		}
	}

	pr.c = make([]float64, pr.nparams)
	for _, t := range p.objective {
		off, n := pr.offsets[t.Var.id], t.Var.n
		if t.C == nil {
			// Tr(X) = Σ_a x_aa; the diagonal units come first in the basis.
			for a := 0; a < n; a++ {
				pr.c[off+a] += pr.sign
			}
			continue
		}
		coords, err := matrix.Coordinates(t.C)
		if err != nil {
			return nil, fmt.Errorf("compile: objective: %w", err)
		}
		for k, ck := range coords {
			pr.c[off+k] += pr.sign * ck
		}
	}

	pr.x0 = make([]float64, pr.nparams)
	for id, h := range p.start {
		coords, err := matrix.Coordinates(h)
		if err != nil {
			return nil, fmt.Errorf("compile: start: %w", err)
		}
		copy(pr.x0[pr.offsets[id]:], coords)
	}

	return pr, nil
}

// lower turns lhs ⪯ rhs into S = rhs − lhs in standard form.
func (pr *program) lower(con constraint, cache embeddedBasis, used []bool) (lmi, error) {
	n := con.rhs.n
	m := 2 * n
	l := lmi{n: n, m: m, f0: make([]float64, m*m)}

	addConst := func(h *matrix.Hermitian, sign float64) {
		if h == nil {
			return
		}
		for i, v := range dense(h.Embed()) {
			l.f0[i] += sign * v
		}
	}
	addConst(con.rhs.constant, 1)
	addConst(con.lhs.constant, -1)

	// Net coefficient per variable, in declaration order for determinism.
	coef := make([]float64, len(pr.vars))
	seen := make([]bool, len(pr.vars))
	for _, t := range con.rhs.terms {
		coef[t.v.id] += t.a
		seen[t.v.id] = true
	}
	for _, t := range con.lhs.terms {
		coef[t.v.id] -= t.a
		seen[t.v.id] = true
	}

	for v := range pr.vars {
		if !seen[v] {
			continue
		}
		if pr.vars[v] != n {
			return lmi{}, fmt.Errorf("variable %d is %d×%d in a %d×%d constraint: %w",
				v, pr.vars[v], pr.vars[v], n, n, ErrInvalidProblem)
		}
		if coef[v] == 0 {
			continue
		}
		basis, err := cache.get(n)
		if err != nil {
			return lmi{}, err
		}
		used[v] = true
		for k, e := range basis {
			f := make([]float64, len(e))
			for i, val := range e {
				f[i] = coef[v] * val
			}
			l.idx = append(l.idx, pr.offsets[v]+k)
			l.fk = append(l.fk, f)
		}
	}

	return l, nil
}

// slack evaluates S(x) through the embedding.
func (l *lmi) slack(x []float64) *mat.SymDense {
	buf := make([]float64, len(l.f0))
	copy(buf, l.f0)
	for q, k := range l.idx {
		xk := x[k]
		if xk == 0 {
			continue
		}
		for i, v := range l.fk[q] {
			buf[i] += xk * v
		}
	}

	return mat.NewSymDense(l.m, buf)
}
