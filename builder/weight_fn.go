// Package builder provides helper functions and types for configuring
// per-edge transmission weights in layer constructors.
package builder

import (
	"fmt"
	"math"
	"math/rand"

	"github.com/katalvlaran/popnet/contacts"
)

// BetaFn produces an edge weight given an optional *rand.Rand source.
// It must be deterministic for a given RNG seed.
type BetaFn func(rng *rand.Rand) float64

// DefaultBetaFn always returns contacts.DefaultBeta.
// Complexity: O(1). Never panics.
func DefaultBetaFn(_ *rand.Rand) float64 {
	return float64(contacts.DefaultBeta)
}

// ConstantBetaFn returns a BetaFn that always yields value.
// Panics if value is negative, NaN or infinite.
func ConstantBetaFn(value float64) BetaFn {
	if !validBeta(value) {
		panic(fmt.Sprintf("ConstantBetaFn: value must be finite and ≥ 0, got %g", value))
	}

	return func(_ *rand.Rand) float64 {
		return value
	}
}

// UniformBetaFn returns a BetaFn sampling uniformly in [min, max).
// Panics if min < 0 or max < min.
// If rng is nil, yields DefaultBetaFn's value.
func UniformBetaFn(min, max float64) BetaFn {
	if !validBeta(min) || !validBeta(max) || max < min {
		panic(fmt.Sprintf("UniformBetaFn: require 0 ≤ min ≤ max, got min=%g, max=%g", min, max))
	}

	return func(rng *rand.Rand) float64 {
		if rng == nil {
			return DefaultBetaFn(nil)
		}
		if max == min {
			return min
		}

		return min + rng.Float64()*(max-min)
	}
}

// NormalBetaFn returns a BetaFn sampling from N(mean, stddev), clipped to
// [0, +∞). Panics if stddev < 0.
// If rng is nil, yields DefaultBetaFn's value.
func NormalBetaFn(mean, stddev float64) BetaFn {
	if stddev < 0 || math.IsNaN(stddev) || math.IsNaN(mean) {
		panic(fmt.Sprintf("NormalBetaFn: stddev must be ≥ 0, got mean=%g stddev=%g", mean, stddev))
	}

	return func(rng *rand.Rand) float64 {
		if rng == nil {
			return DefaultBetaFn(nil)
		}
		sample := rng.NormFloat64()*stddev + mean
		if sample < 0 {
			return 0
		}

		return sample
	}
}

// validBeta reports whether b is a storable weight.
func validBeta(b float64) bool {
	return b >= 0 && !math.IsInf(b, 0) && !math.IsNaN(b)
}
