package sdp

import (
	"fmt"

	"github.com/katalvlaran/antidist/matrix"
)

// Sense selects the optimisation direction.
type Sense int

const (
	// Maximize the objective (the default).
	Maximize Sense = iota
	// Minimize the objective.
	Minimize
)

// String implements fmt.Stringer.
func (s Sense) String() string {
	switch s {
	case Maximize:
		return "maximize"
	case Minimize:
		return "minimize"
	default:
		return fmt.Sprintf("Sense(%d)", int(s))
	}
}

// Variable is a handle to an n×n Hermitian decision variable of one Problem.
type Variable struct {
	p  *Problem
	id int
	n  int
}

// Dim returns the order n of the variable.
func (v Variable) Dim() int { return v.n }

// scaled is a·X for a variable X.
type scaled struct {
	v Variable
	a float64
}

// Expr is an affine Hermitian expression C + Σ a_k·X_k in which every
// matrix has the same order.
//
// Expressions are immutable values. Size errors are sticky: combining
// mismatched expressions yields an Expr whose Err is non-nil, and
// AddConstraint reports it.
type Expr struct {
	n        int
	constant *matrix.Hermitian // nil means zero
	terms    []scaled
	err      error
}

// Var returns the expression X for variable v.
func Var(v Variable) Expr {
	if v.p == nil || v.n <= 0 {
		return Expr{err: fmt.Errorf("Var: uninitialised variable: %w", ErrInvalidProblem)}
	}

	return Expr{n: v.n, terms: []scaled{{v: v, a: 1}}}
}

// Const returns the constant expression h.
func Const(h *matrix.Hermitian) Expr {
	if h == nil {
		return Expr{err: fmt.Errorf("Const: nil matrix: %w", ErrInvalidProblem)}
	}

	return Expr{n: h.Dim(), constant: h.Clone()}
}

// Identity returns the constant expression I_n.
func Identity(n int) Expr {
	id, err := matrix.Identity(n)
	if err != nil {
		return Expr{err: fmt.Errorf("Identity: %w: %w", ErrInvalidProblem, err)}
	}

	return Expr{n: n, constant: id}
}

// Zero returns the constant expression 0_n.
func Zero(n int) Expr {
	if n <= 0 {
		return Expr{err: fmt.Errorf("Zero: n=%d: %w", n, ErrInvalidProblem)}
	}

	return Expr{n: n}
}

// Dim returns the order of the expression, 0 if it is invalid.
func (e Expr) Dim() int { return e.n }

// Err returns the sticky construction error, if any.
func (e Expr) Err() error { return e.err }

// Plus returns e + f.
func (e Expr) Plus(f Expr) Expr {
	return e.combine(1, f)
}

// Minus returns e − f.
func (e Expr) Minus(f Expr) Expr {
	return e.combine(-1, f)
}

// Scale returns a·e.
func (e Expr) Scale(a float64) Expr {
	if e.err != nil {
		return e
	}
	out := Expr{n: e.n, terms: make([]scaled, len(e.terms))}
	for i, t := range e.terms {
		out.terms[i] = scaled{v: t.v, a: a * t.a}
	}
	if e.constant != nil {
		c, err := matrix.Scale(a, e.constant)
		if err != nil {
			return Expr{err: fmt.Errorf("Scale: %w", err)}
		}
		out.constant = c
	}

	return out
}

// combine returns e + sign·f.
func (e Expr) combine(sign float64, f Expr) Expr {
	switch {
	case e.err != nil:
		return e
	case f.err != nil:
		return f
	case e.n != f.n:
		return Expr{err: fmt.Errorf("Expr: orders %d and %d: %w", e.n, f.n, ErrInvalidProblem)}
	}
	g := f.Scale(sign)
	if g.err != nil {
		return g
	}

	out := Expr{n: e.n, terms: make([]scaled, 0, len(e.terms)+len(g.terms))}
	out.terms = append(out.terms, e.terms...)
	out.terms = append(out.terms, g.terms...)
	switch {
	case e.constant == nil:
		out.constant = g.constant
	case g.constant == nil:
		out.constant = e.constant
	default:
		c, err := matrix.Add(e.constant, g.constant)
		if err != nil {
			return Expr{err: fmt.Errorf("Expr: %w", err)}
		}
		out.constant = c
	}

	return out
}

// Term is one summand Re Tr(C·X) of a linear objective.
// A nil C stands for the identity, so Term{Var: x} is Tr(X).
type Term struct {
	Var Variable
	C   *matrix.Hermitian
}

// Trace returns the objective term Tr(X).
func Trace(v Variable) Term { return Term{Var: v} }

// constraint is lhs ⪯ rhs.
type constraint struct {
	lhs, rhs Expr
}

// Problem is a semidefinite program over Hermitian matrix variables:
//
//	maximize/minimize  Σ_k Re Tr(C_k X_k)
//	subject to         lhs_j ⪯ rhs_j   for every constraint j
//
// Build it with AddVariable, AddConstraint, SetObjective and optionally
// SetStart, then hand it to a Solver. A Problem is not safe for concurrent
// mutation; solvers only read it.
type Problem struct {
	vars        []int
	constraints []constraint
	sense       Sense
	objective   []Term
	start       map[int]*matrix.Hermitian
}

// NewProblem returns an empty maximisation problem.
func NewProblem() *Problem {
	return &Problem{start: make(map[int]*matrix.Hermitian)}
}

// NumVariables returns the number of matrix variables.
func (p *Problem) NumVariables() int { return len(p.vars) }

// NumConstraints returns the number of matrix inequalities.
func (p *Problem) NumConstraints() int { return len(p.constraints) }

// Sense returns the optimisation direction.
func (p *Problem) Sense() Sense { return p.sense }

// AddVariable declares a new n×n Hermitian variable.
// Returns ErrInvalidProblem if n <= 0.
func (p *Problem) AddVariable(n int) (Variable, error) {
	if n <= 0 {
		return Variable{}, fmt.Errorf("AddVariable: n=%d: %w", n, ErrInvalidProblem)
	}
	p.vars = append(p.vars, n)

	return Variable{p: p, id: len(p.vars) - 1, n: n}, nil
}

// owns reports whether v was created by p.
func (p *Problem) owns(v Variable) bool {
	return v.p == p && v.id >= 0 && v.id < len(p.vars) && p.vars[v.id] == v.n
}

// AddConstraint adds the linear matrix inequality lhs ⪯ rhs.
// Returns ErrInvalidProblem for invalid expressions, mismatched orders or
// variables that belong to another Problem.
func (p *Problem) AddConstraint(lhs, rhs Expr) error {
	for _, e := range [...]Expr{lhs, rhs} {
		if e.err != nil {
			return fmt.Errorf("AddConstraint: %w", e.err)
		}
		if e.n <= 0 {
			return fmt.Errorf("AddConstraint: empty expression: %w", ErrInvalidProblem)
		}
		for _, t := range e.terms {
			if !p.owns(t.v) {
				return fmt.Errorf("AddConstraint: foreign variable: %w", ErrInvalidProblem)
			}
		}
	}
	if lhs.n != rhs.n {
		return fmt.Errorf("AddConstraint: orders %d and %d: %w", lhs.n, rhs.n, ErrInvalidProblem)
	}
	p.constraints = append(p.constraints, constraint{lhs: lhs, rhs: rhs})

	return nil
}

// SetObjective replaces the objective with sense Σ Re Tr(C_k X_k).
// An empty term list is a pure feasibility problem.
func (p *Problem) SetObjective(sense Sense, terms ...Term) error {
	if sense != Maximize && sense != Minimize {
		return fmt.Errorf("SetObjective: %v: %w", sense, ErrInvalidProblem)
	}
	for i, t := range terms {
		if !p.owns(t.Var) {
			return fmt.Errorf("SetObjective: term %d: foreign variable: %w", i, ErrInvalidProblem)
		}
		if t.C != nil && t.C.Dim() != t.Var.n {
			return fmt.Errorf("SetObjective: term %d: C is %d×%d, variable is %d×%d: %w",
				i, t.C.Dim(), t.C.Dim(), t.Var.n, t.Var.n, ErrInvalidProblem)
		}
	}
	p.sense = sense
	p.objective = append([]Term(nil), terms...)

	return nil
}

// SetStart records an initial value for v. Variables without a start value
// begin at zero. A start point that is not strictly feasible triggers phase I.
func (p *Problem) SetStart(v Variable, x0 *matrix.Hermitian) error {
	if !p.owns(v) {
		return fmt.Errorf("SetStart: foreign variable: %w", ErrInvalidProblem)
	}
	if x0 == nil || x0.Dim() != v.n {
		return fmt.Errorf("SetStart: start point does not match a %d×%d variable: %w", v.n, v.n, ErrInvalidProblem)
	}
	p.start[v.id] = x0.Clone()

	return nil
}
