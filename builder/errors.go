// SPDX-License-Identifier: MIT
// Package: popnet/builder
//
// errors.go - sentinel errors for the builder package.
//
// Error policy:
//   • Only sentinel variables (package-level) are exposed.
//   • Callers use errors.Is(err, ErrX) to branch on semantics.
//   • Implementations attach context with `%w`, prefixed by the method name.
//   • Constructors never panic; validation panics are confined to option
//     constructors (WithX...).

package builder

import (
	"errors"
	"fmt"
)

// ErrTooFewAgents indicates that the agent count is below the constructor's
// minimum (MinRandomAgents, MinClusterAgents).
// Usage: if errors.Is(err, ErrTooFewAgents) { /* report invalid size */ }.
var ErrTooFewAgents = errors.New("builder: too few agents")

// ErrBadMean indicates a mean contact count or mean cluster size that is
// negative, zero where a positive value is required, NaN or infinite.
var ErrBadMean = errors.New("builder: invalid mean")

// ErrNeedRandSource indicates that a stochastic constructor requires a non-nil
// *rand.Rand in the resolved builderConfig (WithSeed or WithRand).
var ErrNeedRandSource = errors.New("builder: rng is required")

// ErrConstructFailed indicates that a constructor could not produce a valid
// layer (nil constructor, invalid literal edges, exhausted redraws).
var ErrConstructFailed = errors.New("builder: construction failed")

// ErrOptionViolation indicates that a configured generator produced a value
// that cannot be stored (for example a negative or NaN beta from a custom
// BetaFn). Static option values are rejected earlier by panics.
var ErrOptionViolation = errors.New("builder: invalid option value")

// builderErrorf formats "<method>: <message>: <sentinel>" keeping the
// sentinel reachable through errors.Is.
// Complexity: O(len(format) + Σlen(args)).
func builderErrorf(method string, sentinel error, format string, args ...interface{}) error {
	return fmt.Errorf("%s: %s: %w", method, fmt.Sprintf(format, args...), sentinel)
}
