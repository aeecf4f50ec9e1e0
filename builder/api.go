// SPDX-License-Identifier: MIT
// Package: popnet/builder
//
// api.go - thin public entry-points for the builder package.
//
// Design contract:
//   - One orchestrator: BuildLayer(bopts, cons...). Creates the layer,
//     resolves cfg, runs cons in order.
//   - All public factories are implemented in impl_*.go.
//   - Functional options (BuilderOption) resolve into a builderConfig
//     (no global state).
//   - Determinism: same inputs/options/seed and constructor order ⇒ identical rows.
//   - Safety: never panic; return sentinel errors from constructors.

package builder

import (
	"fmt"

	"github.com/katalvlaran/popnet/contacts"
)

// Constructor appends generated rows to l using the resolved builderConfig.
// Constructors MUST:
//   - Validate parameters before touching l and return sentinel errors.
//   - Append all their rows in one batch, so a failure leaves l unchanged.
//   - Preserve determinism for the same config and call order.
type Constructor func(l *contacts.Layer, cfg builderConfig) error

// BuildLayer creates an empty layer, resolves the builder configuration from
// bopts and applies all constructors in order. Any constructor error is
// wrapped with "BuildLayer: %w" and returned immediately.
//
// Several constructors sharing one RNG stream compose deterministically, for
// example Clusters for households followed by Random for casual contacts.
//
// Complexity: O(len(bopts)) plus the cost of each constructor.
func BuildLayer(bopts []BuilderOption, cons ...Constructor) (*contacts.Layer, error) {
	l := contacts.NewLayer()
	cfg := newBuilderConfig(bopts...)

	for i, fn := range cons {
		if fn == nil {
			return nil, fmt.Errorf("BuildLayer: nil constructor at index %d: %w", i, ErrConstructFailed)
		}
		if err := fn(l, cfg); err != nil {
			return nil, fmt.Errorf("BuildLayer: %w", err)
		}
	}

	return l, nil
}

// BuildInto runs the constructors and appends the result to the layer named
// key in c, creating it when missing. c is untouched on error.
// Complexity: O(existing rows of key + generated rows).
func BuildInto(c *contacts.Contacts, key string, bopts []BuilderOption, cons ...Constructor) error {
	if c == nil {
		return fmt.Errorf("BuildInto: nil contacts: %w", ErrConstructFailed)
	}
	l, err := BuildLayer(bopts, cons...)
	if err != nil {
		return fmt.Errorf("BuildInto(%q): %w", key, err)
	}
	if cur, ok := c.Layer(key); ok {
		return cur.Append(l)
	}

	return c.AddLayer(key, l)
}
