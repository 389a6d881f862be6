// Package matrix offers the complex Hermitian matrices that quantum states,
// density operators and semidefinite programs are written in.
//
// The matrix package provides:
//
//   - Hermitian, a dense n×n complex matrix kept equal to its conjugate
//     transpose by every mutator, with Outer (|v⟩⟨v|), Identity and validated
//     ingestion from raw rows.
//   - Linear kernels (Add, Sub, Axpy, Scale) and the real inner product
//     Inner(a, b) = Re Tr(ab).
//   - The real-symmetric embedding Embed / FromEmbedding that hands Hermitian
//     problems to gonum's Cholesky, LU and EigenSym kernels.
//   - Spectral queries (Eigenvalues, MinEigenvalue, IsPSD) and the Loewner
//     order LoewnerLessEq.
//   - An orthonormal real basis of the Hermitian space (HermitianBasis,
//     Coordinates, FromCoordinates) used to parameterise SDP variables.
//
// Errors are package sentinels (see errors.go) matched with errors.Is.
// Tolerances follow the functional options in options.go.
package matrix
