// Package quantum models pure quantum states as unit vectors in C^d and
// provides the few operations the antidistinguishability study needs.
//
// What lives here:
//
//   - State: a complex amplitude vector, with Norm, Normalize, Inner and
//     Overlap (|⟨ψ|φ⟩|), and Density (|ψ⟩⟨ψ| as a matrix.Hermitian).
//   - ValidateStateSet: the structural contract of a state set (d ≥ 2
//     vectors of length d, finite, unit norm within DefaultNormTolerance).
//   - SampleStates: d i.i.d. complex-Gaussian vectors normalised to the unit
//     sphere (Haar-random pure states).
//   - NewRNG / DeriveRNG: deterministic math/rand/v2 streams so that a run can
//     be replayed from its seed and every trial gets an independent stream.
//
// Nothing in this package logs or panics on user input; failures are the
// sentinels in errors.go.
package quantum
