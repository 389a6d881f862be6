// Package sdp is a small semidefinite-programming toolkit over complex
// Hermitian matrix variables.
//
// A Problem is built from Hermitian variables, linear matrix inequalities
// lhs ⪯ rhs between affine expressions, and a linear objective
// Σ Re Tr(C_k X_k). A Solver turns it into a Solution carrying the primal
// point, one dual matrix per constraint and the certified duality gap.
//
//	p := sdp.NewProblem()
//	y, _ := p.AddVariable(d)
//	for _, rho := range densities {
//		_ = p.AddConstraint(sdp.Var(y), sdp.Const(rho)) // Y ⪯ ρ_i
//	}
//	_ = p.SetObjective(sdp.Maximize, sdp.Trace(y))
//	sol, err := sdp.NewBarrierSolver().Solve(ctx, p)
//
// # BarrierSolver
//
// The bundled solver follows the central path of the log-barrier
//
//	φ_t(x) = −t·c·x − Σ_j log det S_j(x),  S_j = rhs_j − lhs_j,
//
// where x are the coordinates of the variables in the orthonormal
// matrix.HermitianBasis. Each centering step is a damped Newton method with
// a backtracking line search that only accepts points where every slack
// passes a Cholesky test; t then grows by Mu until the gap bound Σ n_j / t
// drops under GapTolerance (DefaultGapTolerance). Centering ends on a small
// Newton decrement or once the accepted decrease of φ_t is at its rounding
// level; when centering at a large t still breaks down, the last centered
// point is returned if its gap bound is within WithAcceptableGap. A singular
// Newton system is regularised with a growing diagonal shift before LU is
// tried. Complex slacks are handled through the real
// embedding Φ, so every factorisation is a gonum real-symmetric one.
//
// When the start point is not strictly feasible, phase I first maximises −s
// subject to S_j + s·I ⪰ 0 and stops once s < 0. Every variable is boxed
// during phase I so that unconstrained directions stay bounded, and a
// constraint without variables that does not hold strictly is rejected
// before any iteration.
//
// WithProgress receives one Progress record per centering step of either
// phase.
//
// # Errors
//
// Failures are reported with the sentinels in errors.go; a cancelled or
// expired context yields ErrTimeout wrapping the context's own error.
//
// The solver targets the small dense problems of this module (a few
// variables of order ≲ 10). It is single-threaded and allocation-heavy.
package sdp
