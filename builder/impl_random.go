// SPDX-License-Identifier: MIT
// Package: popnet/builder
//
// impl_random.go - implementation of Random(n, mean) constructor.
//
// Model:
//   - round(n*mean/2) edges; each edge joins two agents drawn uniformly
//     from [0,n), so every agent has mean contacts on average once edges are
//     read in both directions.
//   - Self-loops are redrawn (bounded by maxRedraws); multi-edges are kept.
//
// Contract:
//   - n ≥ MinRandomAgents (else ErrTooFewAgents).
//   - mean finite and ≥ 0 (else ErrBadMean).
//   - cfg.rng non-nil whenever at least one edge is generated (else ErrNeedRandSource).
//
// Complexity:
//   - Time: O(E) expected, E = round(n*mean/2).
//   - Space: O(E) for the batch.
//
// Determinism:
//   - For each edge: draw p1, draw p2 (redraws in order), draw beta.

package builder

import (
	"math"

	"github.com/katalvlaran/popnet/contacts"
)

// Random returns a Constructor generating uniform random contacts with the
// given mean number of contacts per agent.
func Random(n int, mean float64) Constructor {
	return func(l *contacts.Layer, cfg builderConfig) error {
		if err := validateMin(MethodRandom, n, MinRandomAgents); err != nil {
			return err
		}
		if err := validateIndexRange(MethodRandom, n); err != nil {
			return err
		}
		if err := validateMean(MethodRandom, mean, false); err != nil {
			return err
		}

		edges := int(math.Round(float64(n) * mean / 2))
		if edges == 0 {
			return nil
		}
		if cfg.rng == nil {
			return builderErrorf(MethodRandom, ErrNeedRandSource, "%d edges to draw", edges)
		}

		batch := &contacts.Layer{
			P1:   make([]int32, 0, edges),
			P2:   make([]int32, 0, edges),
			Beta: make([]float32, 0, edges),
		}
		for k := 0; k < edges; k++ {
			p1 := cfg.rng.Intn(n)
			p2 := cfg.rng.Intn(n)
			for tries := 0; p2 == p1; tries++ {
				if tries == maxRedraws {
					return builderErrorf(MethodRandom, ErrConstructFailed, "edge %d: no distinct partner after %d draws", k, maxRedraws)
				}
				p2 = cfg.rng.Intn(n)
			}
			beta, err := cfg.beta(MethodRandom)
			if err != nil {
				return err
			}
			batch.P1 = append(batch.P1, int32(p1))
			batch.P2 = append(batch.P2, int32(p2))
			batch.Beta = append(batch.Beta, beta)
		}

		return l.Append(batch)
	}
}
