package sdp

import "errors"

var (
	// ErrInvalidProblem indicates a malformed Problem: no variables or
	// constraints, size mismatches, foreign variables, a variable that no
	// constraint mentions, or an invalid start point.
	ErrInvalidProblem = errors.New("sdp: invalid problem")

	// ErrInfeasible is returned when phase I certifies that no strictly
	// feasible point exists.
	ErrInfeasible = errors.New("sdp: problem is infeasible")

	// ErrUnbounded is returned when the objective leaves the configured
	// unbounded limit while following the central path.
	ErrUnbounded = errors.New("sdp: problem is unbounded")

	// ErrNotConverged is returned when an iteration cap is reached.
	ErrNotConverged = errors.New("sdp: did not converge")

	// ErrNumerical indicates a singular Newton system or a failed factorisation
	// of a slack that should be positive definite.
	ErrNumerical = errors.New("sdp: numerical failure")

	// ErrTimeout is returned when the context is cancelled or its deadline
	// passes during a solve. The context error is wrapped alongside it.
	ErrTimeout = errors.New("sdp: solve interrupted")
)
