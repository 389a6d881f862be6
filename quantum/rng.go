// Package quantum - RNG utilities shared by the sampler and the CLI driver.
//
// This file centralizes deterministic random generation for state sampling.
//
// Goals:
//   - Determinism: same seed ⇒ identical state sets across platforms.
//   - Encapsulation: a single RNG factory; no time-based sources hidden anywhere.
//   - Independence: DeriveRNG gives every trial its own stream.
//
// Concurrency:
//   - *rand.Rand is NOT goroutine-safe. Do not share one across goroutines.
//   - Use DeriveRNG to create independent streams for parallel trials.
package quantum

import "math/rand/v2"

// DefaultRNGSeed is the fixed “zero” seed used when callers pass seed==0.
// The value is arbitrary but stable to keep reproducible defaults.
const DefaultRNGSeed uint64 = 1

// pcgIncrement is the second PCG word; fixed so the seed alone selects the stream.
const pcgIncrement uint64 = 0xda3e39cb94b95bdb

// NewRNG returns a deterministic *rand.Rand backed by PCG.
// Policy: seed==0 ⇒ use DefaultRNGSeed; otherwise use the provided seed verbatim.
//
// Complexity: O(1).
func NewRNG(seed uint64) *rand.Rand {
	s := seed
	if s == 0 {
		s = DefaultRNGSeed
	}

	return rand.New(rand.NewPCG(s, pcgIncrement))
}

// deriveSeed mixes a parent seed and a stream identifier into a new 64-bit seed
// with a SplitMix64-style finalizer; small input changes flip about half the
// output bits, so neighbouring trial indices get uncorrelated streams.
//
// Complexity: O(1).
func deriveSeed(parent, stream uint64) uint64 {
	x := parent ^ (stream + 0x9e3779b97f4a7c15)
	x += 0x9e3779b97f4a7c15
	x = (x ^ (x >> 30)) * 0xbf58476d1ce4e5b9
	x = (x ^ (x >> 27)) * 0x94d049bb133111eb
	x ^= x >> 31

	return x
}

// DeriveRNG creates an independent deterministic stream from a base RNG and a
// stream identifier. If base==nil, DefaultRNGSeed is used as the parent.
// Otherwise base.Uint64() is consumed once, so deriving the same stream id
// twice from one base still yields different children.
//
// Usage:
//   - Call during setup (not in hot loops) to create per-trial RNGs.
//
// Complexity: O(1).
func DeriveRNG(base *rand.Rand, stream uint64) *rand.Rand {
	parent := DefaultRNGSeed
	if base != nil {
		parent = base.Uint64()
	}

	return NewRNG(deriveSeed(parent, stream))
}
