// SPDX-License-Identifier: MIT
// Package: popnet/builder
//
// options.go - functional options for the builder package.
//
// Contract:
//   • Options are functional (type BuilderOption func(*builderConfig)).
//   • Option constructors validate and panic on meaningless inputs.
//     Constructors themselves never panic.
//   • Determinism is explicit: seeding is done via WithSeed or WithRand.

package builder

import (
	"fmt"
	"math/rand"
)

// BuilderOption customizes a constructor run by mutating a builderConfig
// before any row is generated.
// Complexity: applying N options costs O(N) time, O(1) space.
type BuilderOption func(*builderConfig)

// WithRand provides an explicit RNG for stochastic constructors.
// Panics on nil; prefer WithSeed for reproducible runs.
func WithRand(r *rand.Rand) BuilderOption {
	if r == nil {
		panic("builder: WithRand(nil)")
	}
	return func(c *builderConfig) {
		c.rng = r
	}
}

// WithSeed creates a new *rand.Rand with the given seed.
// Use this in tests and examples to lock outcomes.
func WithSeed(seed int64) BuilderOption {
	return func(c *builderConfig) {
		c.rng = rand.New(rand.NewSource(seed))
	}
}

// WithBeta sets a constant weight for every generated row.
// Panics if beta is negative, NaN or infinite.
func WithBeta(beta float64) BuilderOption {
	if !validBeta(beta) {
		panic(fmt.Sprintf("builder: WithBeta(%g)", beta))
	}
	return WithBetaFn(ConstantBetaFn(beta))
}

// WithBetaFn overrides the per-row weight generator. The function receives
// the (possibly nil) RNG. Panics on nil.
func WithBetaFn(fn BetaFn) BuilderOption {
	if fn == nil {
		panic("builder: WithBetaFn(nil)")
	}
	return func(c *builderConfig) {
		c.betaFn = fn
	}
}

// WithUniformBeta sets weights ∼ U[min,max] via UniformBetaFn.
func WithUniformBeta(min, max float64) BuilderOption {
	return WithBetaFn(UniformBetaFn(min, max))
}

// WithNormalBeta sets weights ∼ N(mean,stddev) clipped at zero via NormalBetaFn.
func WithNormalBeta(mean, stddev float64) BuilderOption {
	return WithBetaFn(NormalBetaFn(mean, stddev))
}
