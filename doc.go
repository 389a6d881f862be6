// Package antidist is a numerical workbench for the antidistinguishability
// conjecture: for d pure states in C^d, if every pairwise overlap satisfies
// |⟨ψ_i|ψ_j⟩| ≤ (d−2)/(d−1), are the states always antidistinguishable?
//
// 🚀 What is antidist?
//
//	A small, dependency-light toolkit that brings together:
//		• Hermitian matrices: construction, Loewner order, real embedding for gonum
//		• Pure states: overlaps, density matrices, Haar-random sampling
//		• An SDP solver: log-barrier path following with phase I and duals
//		• The oracle: inequality check, antidistinguishability SDP, verdicts
//		• A CLI that runs independent random trials and reports violations
//
// ✨ Why this shape?
//
//   - Reproducible – every trial draws from its own seeded PCG stream
//   - Honest – solver failures are errors, never silently turned into verdicts
//   - Inspectable – optimum, overlap extrema and measurement operators are kept
//
// Under the hood, everything is organized under four subpackages:
//
//	matrix/  — complex Hermitian matrices, spectral checks, Hermitian basis
//	quantum/ — pure states, state-set validation, RNG streams, sampler
//	sdp/     — Problem builder, Solver interface, BarrierSolver
//	oracle/  — the three conjecture questions for one state set
//
// and one command:
//
//	cmd/antidist — antidist -d 4 -i 1000 --seed 42
//
// Antidistinguishability in one line:
//
//	max Tr(Y)  s.t.  Y ⪯ |ψ_i⟩⟨ψ_i|   has optimum 0  ⇔  the set is antidistinguishable
//
//	go install github.com/katalvlaran/antidist/cmd/antidist@latest
package antidist
