package oracle

import (
	"math"

	"github.com/katalvlaran/antidist/quantum"
)

// IsInequalitySatisfied reports whether |⟨ψ_i|ψ_j⟩| ≤ (d−2)/(d−1) for every
// pair i < j.
//
// Pairs are visited in lexicographic order and the scan stops at the first
// overlap above UpperBound + BoundSlack, so an overlap equal to the bound
// counts as satisfied. The overlap extrema are reset first and track every
// visited pair.
//
// Complexity: O(d³).
func (o *Oracle) IsInequalitySatisfied() bool {
	o.smallest, o.largest = math.Inf(1), math.Inf(-1)
	limit := o.bound + o.opts.boundSlack
	for i := 0; i < o.d; i++ {
		for j := i + 1; j < o.d; j++ {
			// lengths were validated at construction
			ov, _ := quantum.Overlap(o.states[i], o.states[j])
			o.smallest = math.Min(o.smallest, ov)
			o.largest = math.Max(o.largest, ov)
			if ov > limit {
				return false
			}
		}
	}

	return true
}
