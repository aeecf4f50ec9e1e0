// SPDX-License-Identifier: MIT
// Package: popnet/builder
//
// config.go - internal configuration and deterministic defaults.
//
// Design:
//   • builderConfig is the single source of truth for all builder knobs.
//   • Defaults are deterministic and documented; no globals.
//   • newBuilderConfig applies options in-order (later overrides earlier).
//
// Deterministic defaults:
//   • rng    = nil             (stochastic constructors fail without a seed)
//   • betaFn = DefaultBetaFn   (contacts.DefaultBeta for every row)

package builder

import (
	"math/rand"
)

// builderConfig aggregates all knobs used by constructors.
// It is passed by VALUE to constructors.
type builderConfig struct {
	// RNG for stochastic choices; nil means "no randomness".
	rng *rand.Rand
	// Per-edge transmission weight generator.
	betaFn BetaFn
}

// newBuilderConfig constructs a config with deterministic defaults and
// applies all options in order.
// Complexity: O(len(opts)) time, O(1) space.
func newBuilderConfig(opts ...BuilderOption) builderConfig {
	cfg := builderConfig{
		rng:    nil,
		betaFn: DefaultBetaFn,
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}

// beta draws one weight and checks it can be stored.
func (c builderConfig) beta(method string) (float32, error) {
	b := c.betaFn(c.rng)
	if !validBeta(b) {
		return 0, builderErrorf(method, ErrOptionViolation, "beta generator returned %g", b)
	}

	return float32(b), nil
}
