// SPDX-License-Identifier: MIT

package contacts

import "sort"

// RemoveDuplicates returns a canonical copy of l:
//   - each edge is rewritten so the lower index is P1,
//   - edges are sorted ascending by (P1, P2),
//   - exact duplicate pairs are dropped (the first occurrence's Beta is kept),
//   - self-loops (P1 == P2) are dropped.
//
// The input layer is not mutated.
// Complexity: O(E log E) time, O(E) space.
func RemoveDuplicates(l *Layer) *Layer {
	n := l.Len()
	type edge struct {
		p1, p2 int32
		beta   float32
	}
	edges := make([]edge, 0, n)
	for k := 0; k < n; k++ {
		a, b := l.P1[k], l.P2[k]
		if a > b {
			a, b = b, a
		}
		edges = append(edges, edge{p1: a, p2: b, beta: l.Beta[k]})
	}

	// Stable so that "first occurrence" refers to the original row order.
	sort.SliceStable(edges, func(i, j int) bool {
		if edges[i].p1 != edges[j].p1 {
			return edges[i].p1 < edges[j].p1
		}
		return edges[i].p2 < edges[j].p2
	})

	out := &Layer{
		P1:   make([]int32, 0, n),
		P2:   make([]int32, 0, n),
		Beta: make([]float32, 0, n),
	}
	for k, e := range edges {
		if e.p1 == e.p2 {
			continue
		}
		if k > 0 && edges[k-1].p1 == e.p1 && edges[k-1].p2 == e.p2 {
			continue
		}
		out.P1 = append(out.P1, e.p1)
		out.P2 = append(out.P2, e.p2)
		out.Beta = append(out.Beta, e.beta)
	}

	return out
}
