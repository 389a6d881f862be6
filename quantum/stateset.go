package quantum

import (
	"fmt"
	"math"
	"math/cmplx"
)

// ValidateStateSet checks the structural contract of a state set and returns
// its dimension d.
//
// Contract (checked in this order):
//  1. d = len(states) ≥ 2                    → ErrInvalidDimension;
//  2. every vector has length d               → ErrMalformedStateSet;
//  3. every amplitude is finite               → ErrMalformedStateSet;
//  4. |‖ψ_i‖ − 1| ≤ normTol for every vector  → ErrNotUnitNorm.
//
// A negative or NaN normTol is replaced by DefaultNormTolerance.
//
// Complexity: O(d²).
func ValidateStateSet(states []State, normTol float64) (int, error) {
	if normTol < 0 || math.IsNaN(normTol) {
		normTol = DefaultNormTolerance
	}
	d := len(states)
	if d < 2 {
		return 0, fmt.Errorf("ValidateStateSet: d=%d: %w", d, ErrInvalidDimension)
	}
	for i, s := range states {
		if len(s) != d {
			return 0, fmt.Errorf("ValidateStateSet: state %d has length %d, want %d: %w", i, len(s), d, ErrMalformedStateSet)
		}
		for _, z := range s {
			if cmplx.IsNaN(z) || cmplx.IsInf(z) {
				return 0, fmt.Errorf("ValidateStateSet: state %d: %w", i, ErrMalformedStateSet)
			}
		}
		if math.Abs(s.Norm()-1) > normTol {
			return 0, fmt.Errorf("ValidateStateSet: state %d has norm %.12g: %w", i, s.Norm(), ErrNotUnitNorm)
		}
	}

	return d, nil
}

// CloneStates deep-copies a state set.
func CloneStates(states []State) []State {
	out := make([]State, len(states))
	for i, s := range states {
		out[i] = s.Clone()
	}

	return out
}

// ConjecturedBound returns (d−2)/(d−1), the pairwise-overlap bound the
// conjecture claims is sufficient for antidistinguishability.
// Returns ErrInvalidDimension for d < 2.
func ConjecturedBound(d int) (float64, error) {
	if d < 2 {
		return 0, fmt.Errorf("ConjecturedBound: d=%d: %w", d, ErrInvalidDimension)
	}

	return float64(d-2) / float64(d-1), nil
}
