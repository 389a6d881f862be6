package matrix_test

import (
	"fmt"
	"math"

	"github.com/katalvlaran/antidist/matrix"
)

// ExampleOuter builds the density matrix of |+⟩ and checks it is a
// trace-one positive semidefinite operator below the identity.
func ExampleOuter() {
	s := complex(0.7071067811865476, 0)
	rho, _ := matrix.Outer([]complex128{s, s})
	id, _ := matrix.Identity(2)

	vals, _ := matrix.Eigenvalues(rho)
	below, _ := matrix.LoewnerLessEq(rho, id, matrix.DefaultEpsilon)

	fmt.Printf("trace=%.3f eigenvalues=[%.3f %.3f] ρ⪯I=%v\n", rho.Trace(), math.Abs(vals[0]), vals[1], below)
	// Output:
	// trace=1.000 eigenvalues=[0.000 1.000] ρ⪯I=true
}
