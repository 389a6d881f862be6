package oracle

import "errors"

var (
	// ErrSolverFailure wraps every error returned by the SDP solver. The
	// solver's own sentinel (sdp.ErrInfeasible, sdp.ErrTimeout, ...) stays
	// reachable through errors.Is.
	ErrSolverFailure = errors.New("oracle: sdp solver failed")

	// ErrNegativeOptimum is returned when the solver reports an optimum below
	// −AbsTol. Y = 0 is always feasible, so such a value is a numerical
	// inconsistency rather than a verdict.
	ErrNegativeOptimum = errors.New("oracle: sdp optimum is meaningfully negative")

	// ErrNotEvaluated is returned by accessors that need a completed SDP
	// evaluation when none has run yet.
	ErrNotEvaluated = errors.New("oracle: antidistinguishability not evaluated yet")
)
