// SPDX-License-Identifier: MIT

// Package matrix: grid builders.
//
// Purpose:
//   - Offer the fill helpers a calculator front end needs (zeros, identity, constant,
//     random integers) with the same shape validation as the engine.
//
// Determinism:
//   - Random takes the generator as an argument; a seeded *rand.Rand yields the same
//     grid on every run.
package matrix

import "math/rand/v2"

// Random cell range: integers in [RandomMin, RandomMin+RandomSpan).
const (
	RandomMin  = -10
	RandomSpan = 20
)

// validateDims checks r, c > 0.
func validateDims(tag string, r, c int) error {
	switch {
	case r <= 0:
		return matrixErrorf(tag, &MalformedError{Row: -1})
	case c <= 0:
		return matrixErrorf(tag, &MalformedError{Row: 0})
	}

	return nil
}

// Zeros returns an r×c grid of zeros.
// Errors: ErrMalformedGrid when r or c is not positive.
// Complexity: O(r*c).
func Zeros(r, c int) (Grid, error) {
	if err := validateDims("Zeros", r, c); err != nil {
		return nil, err
	}

	return newGrid(r, c), nil
}

// Filled returns an r×c grid with every cell set to v.
func Filled(r, c int, v float64) (Grid, error) {
	if err := validateDims("Filled", r, c); err != nil {
		return nil, err
	}

	return ewFill(r, c, func(int, int) float64 { return v }), nil
}

// Identity returns an r×c grid with ones where i == j and zeros elsewhere.
// Non-square shapes are allowed; the diagonal simply stops at min(r, c).
func Identity(r, c int) (Grid, error) {
	if err := validateDims("Identity", r, c); err != nil {
		return nil, err
	}

	return ewFill(r, c, func(i, j int) float64 {
		if i == j {
			return 1
		}
		return 0
	}), nil
}

// Random returns an r×c grid of integers drawn uniformly from [-10, 9].
// A nil rng falls back to the process-wide source (non-deterministic).
func Random(r, c int, rng *rand.Rand) (Grid, error) {
	if err := validateDims("Random", r, c); err != nil {
		return nil, err
	}
	draw := rand.IntN
	if rng != nil {
		draw = rng.IntN
	}

	return ewFill(r, c, func(int, int) float64 {
		return float64(draw(RandomSpan) + RandomMin)
	}), nil
}

// NewRand returns a deterministic generator for Random seeded from seed.
func NewRand(seed uint64) *rand.Rand {
	return rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
}
