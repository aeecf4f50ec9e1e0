// SPDX-License-Identifier: MIT
// Package: popnet/builder
//
// impl_static.go - implementation of Static(edges...) constructor.
//
// Contract:
//   - Every edge is (p1, p2) with non-negative int32-range indices
//     (else ErrConstructFailed naming the edge).
//   - Rows are emitted in argument order; weights come from cfg.betaFn.
//   - No RNG is needed unless the beta generator draws from it.
//
// Complexity: O(len(edges)).

package builder

import (
	"math"

	"github.com/katalvlaran/popnet/contacts"
)

// Static returns a Constructor appending a literal edge list.
func Static(edges ...[2]int) Constructor {
	return func(l *contacts.Layer, cfg builderConfig) error {
		batch := &contacts.Layer{
			P1:   make([]int32, 0, len(edges)),
			P2:   make([]int32, 0, len(edges)),
			Beta: make([]float32, 0, len(edges)),
		}
		for k, e := range edges {
			if e[0] < 0 || e[1] < 0 || e[0] > math.MaxInt32 || e[1] > math.MaxInt32 {
				return builderErrorf(MethodStatic, ErrConstructFailed, "edge %d (%d,%d) is not a valid index pair", k, e[0], e[1])
			}
			beta, err := cfg.beta(MethodStatic)
			if err != nil {
				return err
			}
			batch.P1 = append(batch.P1, int32(e[0]))
			batch.P2 = append(batch.P2, int32(e[1]))
			batch.Beta = append(batch.Beta, beta)
		}

		return l.Append(batch)
	}
}
