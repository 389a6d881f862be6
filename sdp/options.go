package sdp

import (
	"fmt"
	"math"
)

// Default tuning of the barrier method.
const (
	// DefaultGapTolerance stops the outer loop once the duality gap bound
	// Σ n_j / t falls below it.
	DefaultGapTolerance = 1e-9

	// DefaultAcceptableGap is the largest gap bound Σ n_j / t of a centered
	// point the solver falls back to when centering at the next t breaks
	// down in floating point.
	DefaultAcceptableGap = 1e-8

	// DefaultMu is the factor t grows by between centering steps.
	DefaultMu = 10.0

	// DefaultNewtonTolerance stops centering once λ²/2 falls below it,
	// λ being the Newton decrement.
	DefaultNewtonTolerance = 1e-10

	// DefaultMaxNewtonIterations caps Newton steps per centering.
	DefaultMaxNewtonIterations = 100

	// DefaultMaxOuterIterations caps the number of centering steps.
	DefaultMaxOuterIterations = 64

	// DefaultUnboundedLimit is the objective magnitude past which the
	// problem is reported as unbounded.
	DefaultUnboundedLimit = 1e12
)

// Line-search constants (Armijo fraction, shrink factor, smallest step).
const (
	armijoFraction  = 0.25
	backtrackShrink = 0.5
	minStep         = 1e-12
)

// stallFraction scales the rounding level of φ_t: a Newton step that lowers
// φ_t by less than stallFraction·(1 + |t·c·x| + |Σ log det S_j|) ends the
// centering.
const stallFraction = 1e-13

// Newton-system regularisation: δ starts at regularizeStart·max H_kk and
// grows by regularizeGrowth for at most regularizeTries attempts.
const (
	regularizeStart  = 1e-12
	regularizeGrowth = 100.0
	regularizeTries  = 5
)

// phaseOneRadius bounds every variable during phase I:
// −R·I ⪯ X ⪯ R·I with R = phaseOneRadius·(1 + ‖X_start‖_F).
const phaseOneRadius = 1e3

// Progress describes one finished centering step of the barrier method.
type Progress struct {
	// PhaseOne is true while searching for a strictly feasible point.
	PhaseOne bool
	// Outer is the zero-based index of the centering step.
	Outer int
	// T is the barrier parameter the point was centered for.
	T float64
	// Objective is the objective at the centered point, in the problem's
	// own sense (phase I reports −s).
	Objective float64
	// GapBound is Σ n_j / t.
	GapBound float64
	// NewtonSteps is the number of Newton steps the centering took.
	NewtonSteps int
}

// Options configures a BarrierSolver.
type Options struct {
	gapTol         float64
	mu             float64
	newtonTol      float64
	maxNewton      int
	maxOuter       int
	unboundedLimit float64
	acceptGap      float64
	progress       func(Progress)
}

// Option mutates Options.
type Option func(*Options)

// defaultOptions returns Options populated with the package defaults.
func defaultOptions() Options {
	return Options{
		gapTol:         DefaultGapTolerance,
		mu:             DefaultMu,
		newtonTol:      DefaultNewtonTolerance,
		maxNewton:      DefaultMaxNewtonIterations,
		maxOuter:       DefaultMaxOuterIterations,
		unboundedLimit: DefaultUnboundedLimit,
		acceptGap:      DefaultAcceptableGap,
	}
}

// gatherOptions applies opts over the defaults, skipping nil entries.
func gatherOptions(opts ...Option) Options {
	o := defaultOptions()
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}

	return o
}

// positiveFinite panics unless v is a finite number > 0.
func positiveFinite(name string, v float64) {
	if !(v > 0) || math.IsInf(v, 0) {
		panic(fmt.Sprintf("sdp: %s must be finite and > 0, got %v", name, v))
	}
}

// WithGapTolerance sets the duality-gap stopping threshold. Panics if tol is not finite and > 0.
func WithGapTolerance(tol float64) Option {
	positiveFinite("WithGapTolerance", tol)

	return func(o *Options) { o.gapTol = tol }
}

// WithMu sets the barrier growth factor. Panics unless mu > 1 and finite.
func WithMu(mu float64) Option {
	if !(mu > 1) || math.IsInf(mu, 0) {
		panic(fmt.Sprintf("sdp: WithMu must be finite and > 1, got %v", mu))
	}

	return func(o *Options) { o.mu = mu }
}

// WithNewtonTolerance sets the centering threshold on λ²/2.
func WithNewtonTolerance(tol float64) Option {
	positiveFinite("WithNewtonTolerance", tol)

	return func(o *Options) { o.newtonTol = tol }
}

// WithMaxNewtonIterations caps Newton steps per centering. Panics if n < 1.
func WithMaxNewtonIterations(n int) Option {
	if n < 1 {
		panic(fmt.Sprintf("sdp: WithMaxNewtonIterations must be >= 1, got %d", n))
	}

	return func(o *Options) { o.maxNewton = n }
}

// WithMaxOuterIterations caps centering steps. Panics if n < 1.
func WithMaxOuterIterations(n int) Option {
	if n < 1 {
		panic(fmt.Sprintf("sdp: WithMaxOuterIterations must be >= 1, got %d", n))
	}

	return func(o *Options) { o.maxOuter = n }
}

// WithUnboundedLimit sets the objective magnitude treated as unbounded.
func WithUnboundedLimit(limit float64) Option {
	positiveFinite("WithUnboundedLimit", limit)

	return func(o *Options) { o.unboundedLimit = limit }
}

// WithAcceptableGap sets the largest gap bound of a centered point that is
// returned when centering at the next t fails numerically. Panics if tol is
// not finite and > 0.
func WithAcceptableGap(tol float64) Option {
	positiveFinite("WithAcceptableGap", tol)

	return func(o *Options) { o.acceptGap = tol }
}

// WithProgress installs fn to receive a Progress record after every
// centering step, in phase I and phase II. fn runs on the solving goroutine.
// A nil fn removes the callback.
func WithProgress(fn func(Progress)) Option {
	return func(o *Options) { o.progress = fn }
}
