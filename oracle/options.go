package oracle

import (
	"fmt"
	"math"
	"time"

	"github.com/katalvlaran/antidist/quantum"
	"github.com/katalvlaran/antidist/sdp"
)

// Decision constants.
const (
	// DefaultAbsTol is the absolute tolerance of the "v* ≈ 0" test.
	DefaultAbsTol = 1e-8

	// DefaultRelTol is the relative tolerance of the "v* ≈ 0" test. It is
	// multiplied by the reference value 0, so only DefaultAbsTol matters for
	// the verdict; it is kept to mirror the usual isclose(a, b) contract.
	DefaultRelTol = 1e-5

	// DefaultBoundSlack is added to (d−2)/(d−1) before comparing overlaps,
	// absorbing last-ulp rounding of an overlap that equals the bound.
	DefaultBoundSlack = 1e-12
)

// Options configures an Oracle.
type Options struct {
	solver       sdp.Solver
	timeout      time.Duration
	shortCircuit bool
	absTol       float64
	relTol       float64
	boundSlack   float64
	normTol      float64
}

// Option mutates Options.
type Option func(*Options)

// gatherOptions applies opts over the defaults, skipping nil entries.
func gatherOptions(opts ...Option) Options {
	o := Options{
		absTol:     DefaultAbsTol,
		relTol:     DefaultRelTol,
		boundSlack: DefaultBoundSlack,
		normTol:    quantum.DefaultNormTolerance,
	}
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}
	if o.solver == nil {
		o.solver = sdp.NewBarrierSolver()
	}

	return o
}

// nonNegative panics unless v is finite and ≥ 0.
func nonNegative(name string, v float64) {
	if v < 0 || math.IsNaN(v) || math.IsInf(v, 0) {
		panic(fmt.Sprintf("oracle: %s must be finite and >= 0, got %v", name, v))
	}
}

// WithSolver replaces the default sdp.BarrierSolver. Panics on nil.
func WithSolver(s sdp.Solver) Option {
	if s == nil {
		panic("oracle: WithSolver(nil)")
	}

	return func(o *Options) { o.solver = s }
}

// WithTimeout bounds every SDP solve; zero or negative means no limit.
// Expiry surfaces as ErrSolverFailure wrapping sdp.ErrTimeout.
func WithTimeout(d time.Duration) Option {
	return func(o *Options) { o.timeout = d }
}

// WithShortCircuit makes IsConjectureViolated and Evaluate skip the SDP when
// the inequality already fails. The violation verdict is unchanged.
func WithShortCircuit(on bool) Option {
	return func(o *Options) { o.shortCircuit = on }
}

// WithAbsTol sets the absolute tolerance of the "v* ≈ 0" test.
func WithAbsTol(tol float64) Option {
	nonNegative("WithAbsTol", tol)

	return func(o *Options) { o.absTol = tol }
}

// WithRelTol sets the relative tolerance of the "v* ≈ 0" test.
func WithRelTol(tol float64) Option {
	nonNegative("WithRelTol", tol)

	return func(o *Options) { o.relTol = tol }
}

// WithBoundSlack sets the slack added to the overlap bound.
func WithBoundSlack(slack float64) Option {
	nonNegative("WithBoundSlack", slack)

	return func(o *Options) { o.boundSlack = slack }
}

// WithNormTolerance sets the unit-norm tolerance used when validating states.
func WithNormTolerance(tol float64) Option {
	nonNegative("WithNormTolerance", tol)

	return func(o *Options) { o.normTol = tol }
}
