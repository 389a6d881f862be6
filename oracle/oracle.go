package oracle

import (
	"fmt"
	"math"
	"math/rand/v2"

	"github.com/katalvlaran/antidist/matrix"
	"github.com/katalvlaran/antidist/quantum"
)

// Oracle answers antidistinguishability questions about one fixed set of d
// pure states in C^d.
//
// The state set is validated and deep-copied at construction and never
// changes afterwards. The verdict methods recompute on every call and update
// the oracle's diagnostics (overlap extrema, optimum, measurements), so an
// Oracle is not safe for concurrent use; independent oracles share nothing.
type Oracle struct {
	states []quantum.State
	d      int
	bound  float64
	opts   Options

	smallest float64 // running extrema of the last inequality check
	largest  float64

	evaluated    bool
	optimal      float64
	measurements []*matrix.Hermitian
}

// New returns an Oracle for the given states.
//
// Errors (wrapped, match with errors.Is):
//   - quantum.ErrInvalidDimension for fewer than two states;
//   - quantum.ErrMalformedStateSet when the count differs from a vector
//     length or an amplitude is NaN/Inf;
//   - quantum.ErrNotUnitNorm for a vector off the unit sphere.
func New(states []quantum.State, opts ...Option) (*Oracle, error) {
	o := gatherOptions(opts...)
	d, err := quantum.ValidateStateSet(states, o.normTol)
	if err != nil {
		return nil, fmt.Errorf("oracle.New: %w", err)
	}
	bound, err := quantum.ConjecturedBound(d)
	if err != nil {
		return nil, fmt.Errorf("oracle.New: %w", err)
	}

	return &Oracle{
		states:   quantum.CloneStates(states),
		d:        d,
		bound:    bound,
		opts:     o,
		smallest: math.Inf(1),
		largest:  math.Inf(-1),
		optimal:  math.NaN(),
	}, nil
}

// NewRandom samples dim Haar-random states from src and returns an Oracle
// for them. A nil src uses the process-wide generator.
func NewRandom(dim int, src rand.Source, opts ...Option) (*Oracle, error) {
	states, err := quantum.SampleStates(dim, src)
	if err != nil {
		return nil, fmt.Errorf("oracle.NewRandom: %w", err)
	}

	return New(states, opts...)
}

// Dim returns d.
func (o *Oracle) Dim() int { return o.d }

// States returns a deep copy of the state set.
func (o *Oracle) States() []quantum.State { return quantum.CloneStates(o.states) }

// UpperBound returns the conjectured overlap bound (d−2)/(d−1).
func (o *Oracle) UpperBound() float64 { return o.bound }

// SmallestOverlap returns the smallest |⟨ψ_i|ψ_j⟩| seen by the last
// inequality check, +Inf before the first one. After a short-circuited check
// it covers only the pairs that were visited.
func (o *Oracle) SmallestOverlap() float64 { return o.smallest }

// LargestOverlap returns the largest |⟨ψ_i|ψ_j⟩| seen by the last inequality
// check, −Inf before the first one.
func (o *Oracle) LargestOverlap() float64 { return o.largest }

// OptimalValue returns v* from the last SDP evaluation, NaN before the first.
func (o *Oracle) OptimalValue() float64 { return o.optimal }

// Measurements returns copies of the dual matrices of the constraints
// Y ⪯ ρ_i from the last SDP evaluation, or nil if none has completed. For an
// antidistinguishable set they form a POVM {M_i} with Tr(M_i ρ_i) ≈ 0.
func (o *Oracle) Measurements() []*matrix.Hermitian {
	if !o.evaluated {
		return nil
	}
	out := make([]*matrix.Hermitian, len(o.measurements))
	for i, m := range o.measurements {
		out[i] = m.Clone()
	}

	return out
}

// Residuals measures how far the recovered measurements are from an exact
// antidistinguishing POVM.
type Residuals struct {
	// Completeness is ‖Σ_i M_i − I‖_F.
	Completeness float64
	// Exclusion is max_i Tr(M_i ρ_i); zero means every outcome i rules out ψ_i.
	Exclusion float64
}

// MeasurementResiduals returns the Residuals of the last SDP evaluation.
// Returns ErrNotEvaluated before the first one.
func (o *Oracle) MeasurementResiduals() (Residuals, error) {
	if !o.evaluated {
		return Residuals{}, ErrNotEvaluated
	}
	sum, err := matrix.NewHermitian(o.d)
	if err != nil {
		return Residuals{}, fmt.Errorf("MeasurementResiduals: %w", err)
	}
	var res Residuals
	for i, m := range o.measurements {
		if sum, err = matrix.Add(sum, m); err != nil {
			return Residuals{}, fmt.Errorf("MeasurementResiduals: %w", err)
		}
		rho, err := o.states[i].Density()
		if err != nil {
			return Residuals{}, fmt.Errorf("MeasurementResiduals: %w", err)
		}
		p, err := matrix.Inner(m, rho)
		if err != nil {
			return Residuals{}, fmt.Errorf("MeasurementResiduals: %w", err)
		}
		if i == 0 || p > res.Exclusion {
			res.Exclusion = p
		}
	}
	id, err := matrix.Identity(o.d)
	if err != nil {
		return Residuals{}, fmt.Errorf("MeasurementResiduals: %w", err)
	}
	diff, err := matrix.Sub(sum, id)
	if err != nil {
		return Residuals{}, fmt.Errorf("MeasurementResiduals: %w", err)
	}
	res.Completeness = diff.FrobeniusNorm()

	return res, nil
}
