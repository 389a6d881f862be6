// Package oracle decides, for d pure states in C^d, the three questions of
// the antidistinguishability conjecture:
//
//   - IsInequalitySatisfied: is every pairwise overlap |⟨ψ_i|ψ_j⟩| at most
//     (d−2)/(d−1)?
//   - IsAntidistinguishable: does some measurement {M_i} exist whose outcome i
//     never occurs for ψ_i? Decided by the SDP
//     max Tr(Y) s.t. Y ⪯ |ψ_i⟩⟨ψ_i|, whose optimum is zero exactly for
//     antidistinguishable sets.
//   - IsConjectureViolated: does the inequality hold while the set is not
//     antidistinguishable?
//
// An Oracle is built either from caller-supplied states (New) or from
// Haar-random ones (NewRandom). The SDP goes through an sdp.Solver, by
// default sdp.NewBarrierSolver(); solver failures are never turned into a
// verdict and surface as ErrSolverFailure.
//
// Tolerances are the documented Default* constants and can be overridden
// with options.
package oracle
