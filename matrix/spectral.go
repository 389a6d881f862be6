// SPDX-License-Identifier: MIT

// Package matrix: spectral queries and the Loewner order.
//
// Eigenvalues are computed by gonum's EigenSym on the real embedding Φ(H);
// every eigenvalue of H appears exactly twice there, so after an ascending
// sort the spectrum of H is every other entry.
package matrix

import (
	"fmt"
	"sort"

	"gonum.org/v1/gonum/mat"
)

const (
	opEigen   = "Eigenvalues"
	opLoewner = "LoewnerLessEq"
)

// Eigenvalues returns the n real eigenvalues of h in ascending order.
// Errors: ErrNilMatrix, ErrEigenFailed.
// Complexity: O(n³).
func Eigenvalues(h *Hermitian) ([]float64, error) {
	if err := ValidateNotNil(h); err != nil {
		return nil, matrixErrorf(opEigen, err)
	}
	var es mat.EigenSym
	if ok := es.Factorize(h.Embed(), false); !ok {
		return nil, matrixErrorf(opEigen, ErrEigenFailed)
	}
	all := es.Values(nil)
	sort.Float64s(all)

	out := make([]float64, h.n)
	for i := range out {
		// pairs (2i, 2i+1) are the two copies of the same eigenvalue
		out[i] = (all[2*i] + all[2*i+1]) / 2
	}

	return out, nil
}

// MinEigenvalue returns the smallest eigenvalue of h.
func MinEigenvalue(h *Hermitian) (float64, error) {
	vals, err := Eigenvalues(h)
	if err != nil {
		return 0, err
	}

	return vals[0], nil
}

// IsPSD reports whether h ⪰ 0 within eps, i.e. λ_min(h) ≥ −eps.
func IsPSD(h *Hermitian, eps float64) (bool, error) {
	lmin, err := MinEigenvalue(h)
	if err != nil {
		return false, err
	}

	return lmin >= -eps, nil
}

// LoewnerLessEq reports whether a ⪯ b within eps, i.e. b − a ⪰ −eps·I.
// Errors: ErrNilMatrix, ErrDimensionMismatch, ErrEigenFailed.
func LoewnerLessEq(a, b *Hermitian, eps float64) (bool, error) {
	d, err := Sub(b, a)
	if err != nil {
		return false, matrixErrorf(opLoewner, err)
	}
	ok, err := IsPSD(d, eps)
	if err != nil {
		return false, fmt.Errorf("%s: %w", opLoewner, err)
	}

	return ok, nil
}
