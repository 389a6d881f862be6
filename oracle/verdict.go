package oracle

import (
	"context"
	"math"
)

// IsConjectureViolated reports whether the set is a counterexample: the
// overlap inequality holds but the states are not antidistinguishable.
//
// Both checks run on every call unless WithShortCircuit(true) was given, in
// which case the SDP is skipped when the inequality already fails.
func (o *Oracle) IsConjectureViolated(ctx context.Context) (bool, error) {
	sat := o.IsInequalitySatisfied()
	if !sat && o.opts.shortCircuit {
		return false, nil
	}
	ad, err := o.IsAntidistinguishable(ctx)
	if err != nil {
		return false, err
	}

	return sat && !ad, nil
}

// Verdict bundles the three answers for one state set together with the
// diagnostics that produced them.
type Verdict struct {
	InequalitySatisfied bool
	// Antidistinguishable is meaningful only when Solved is true.
	Antidistinguishable bool
	ConjectureViolated  bool
	// Solved is false when the SDP was skipped by short-circuiting.
	Solved bool

	// OptimalValue is v* of this evaluation, NaN when it was not solved.
	OptimalValue    float64
	SmallestOverlap float64
	LargestOverlap  float64
}

// Evaluate computes all three verdicts with a single SDP solve (none when
// short-circuiting applies). It fails with the same errors as
// IsAntidistinguishable.
func (o *Oracle) Evaluate(ctx context.Context) (Verdict, error) {
	v := Verdict{InequalitySatisfied: o.IsInequalitySatisfied(), OptimalValue: math.NaN()}
	v.SmallestOverlap, v.LargestOverlap = o.smallest, o.largest
	if !v.InequalitySatisfied && o.opts.shortCircuit {
		return v, nil
	}

	ad, err := o.IsAntidistinguishable(ctx)
	if err != nil {
		return v, err
	}
	v.Solved = true
	v.Antidistinguishable = ad
	v.OptimalValue = o.optimal
	v.ConjectureViolated = v.InequalitySatisfied && !ad

	return v, nil
}
