// SPDX-License-Identifier: MIT
// Package: popnet/builder
//
// impl_clusters.go - implementation of Clusters(n, mean) constructor.
//
// Model (household-style microstructure):
//   - Agents 0..n-1 are cut into consecutive clusters; each size is drawn
//     from Poisson(mean) and raised to MinClusterSize. The last cluster is
//     truncated at n.
//   - Every pair (i<j) inside a cluster becomes one edge, emitted with i
//     ascending, then j ascending.
//
// Contract:
//   - n ≥ MinClusterAgents (else ErrTooFewAgents).
//   - mean finite and > 0 (else ErrBadMean).
//   - cfg.rng non-nil (else ErrNeedRandSource).
//
// Complexity:
//   - Time: O(n + Σ size²/2) edges; O(n*mean) expected.
//   - Space: O(edges) for the batch.

package builder

import (
	"math"
	"math/rand"

	"github.com/katalvlaran/popnet/contacts"
)

// Clusters returns a Constructor generating fully connected clusters whose
// sizes follow a Poisson distribution with the given mean.
func Clusters(n int, mean float64) Constructor {
	return func(l *contacts.Layer, cfg builderConfig) error {
		if err := validateMin(MethodClusters, n, MinClusterAgents); err != nil {
			return err
		}
		if err := validateIndexRange(MethodClusters, n); err != nil {
			return err
		}
		if err := validateMean(MethodClusters, mean, true); err != nil {
			return err
		}
		if cfg.rng == nil {
			return builderErrorf(MethodClusters, ErrNeedRandSource, "cluster sizes are random")
		}

		batch := contacts.NewLayer()
		for start := 0; start < n; {
			size := poisson(cfg.rng, mean)
			if size < MinClusterSize {
				size = MinClusterSize
			}
			end := start + size
			if end > n {
				end = n
			}
			for i := start; i < end; i++ {
				for j := i + 1; j < end; j++ {
					beta, err := cfg.beta(MethodClusters)
					if err != nil {
						return err
					}
					batch.P1 = append(batch.P1, int32(i))
					batch.P2 = append(batch.P2, int32(j))
					batch.Beta = append(batch.Beta, beta)
				}
			}
			start = end
		}

		return l.Append(batch)
	}
}

// poisson draws one Poisson(lambda) variate. Small means use Knuth's
// product method; large means use a rounded normal approximation.
// Complexity: O(lambda) for lambda ≤ poissonNormalCutoff, O(1) otherwise.
func poisson(rng *rand.Rand, lambda float64) int {
	if lambda > poissonNormalCutoff {
		v := math.Round(rng.NormFloat64()*math.Sqrt(lambda) + lambda)
		if v < 0 {
			return 0
		}
		return int(v)
	}

	limit := math.Exp(-lambda)
	k := 0
	for p := rng.Float64(); p > limit; p *= rng.Float64() {
		k++
	}

	return k
}
