package quantum

import (
	"fmt"
	"math/rand/v2"

	"gonum.org/v1/gonum/stat/distuv"
)

// maxRedraws caps the zero-norm redraw loop; reaching it means the source is
// degenerate (e.g. a constant stub), not bad luck.
const maxRedraws = 16

// SampleStates draws dim pure states in C^dim.
//
// Every amplitude has real and imaginary parts drawn i.i.d. from N(0,1); each
// vector is then normalised, which makes it Haar-distributed on the unit
// sphere. src may be nil, in which case the process-wide math/rand/v2
// generator is used (non-reproducible).
//
// Errors:
//   - ErrInvalidDimension for dim < 2 (no entropy consumed);
//   - ErrZeroVector if a source keeps producing the zero vector.
//
// Complexity: O(dim²) draws.
func SampleStates(dim int, src rand.Source) ([]State, error) {
	if dim < 2 {
		return nil, fmt.Errorf("SampleStates: dim=%d: %w", dim, ErrInvalidDimension)
	}
	normal := distuv.Normal{Mu: 0, Sigma: 1, Src: src}

	states := make([]State, dim)
	for i := range states {
		s, err := sampleUnit(dim, normal)
		if err != nil {
			return nil, fmt.Errorf("SampleStates: state %d: %w", i, err)
		}
		states[i] = s
	}

	return states, nil
}

// sampleUnit draws one complex-Gaussian vector and normalises it.
func sampleUnit(dim int, normal distuv.Normal) (State, error) {
	raw := make(State, dim)
	for attempt := 0; attempt < maxRedraws; attempt++ {
		for k := range raw {
			raw[k] = complex(normal.Rand(), normal.Rand())
		}
		if s, err := raw.Normalize(); err == nil {
			return s, nil
		}
	}

	return nil, ErrZeroVector
}
