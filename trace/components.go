package trace

import (
	"sort"

	"github.com/katalvlaran/popnet/contacts"
)

// Components partitions the agents that appear in the selected layers into
// connected groups ("islands" of contact), treating every edge as
// undirected. Agents without any edge are not listed.
//
// Each component is ascending; components are ordered by their smallest
// agent. WithLayers and WithContext apply; the other options are ignored.
//
// Time:   O(V + E), V the largest agent index, E the selected edges.
// Memory: O(V + E) for adjacency and seen flags.
func Components(c *contacts.Contacts, opts ...Option) ([][]int, error) {
	if c == nil {
		return nil, ErrContactsNil
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}
	layers, err := selectLayers(c, o.Layers)
	if err != nil {
		return nil, err
	}

	adj, member := adjacency(layers)
	seen := make([]bool, len(adj))
	var comps [][]int

	for start := range adj {
		if !member[start] || seen[start] {
			continue
		}
		if err := o.Ctx.Err(); err != nil {
			return comps, err
		}
		// BFS to collect component
		queue := []int{start}
		seen[start] = true
		for qi := 0; qi < len(queue); qi++ {
			for _, v := range adj[queue[qi]] {
				if !seen[v] {
					seen[v] = true
					queue = append(queue, v)
				}
			}
		}
		sort.Ints(queue)
		comps = append(comps, queue)
	}

	return comps, nil
}

// adjacency builds undirected neighbor lists over every row of layers and
// flags each endpoint.
func adjacency(layers []*contacts.Layer) ([][]int, []bool) {
	size := 0
	for _, l := range layers {
		for k := range l.P1 {
			if a := int(l.P1[k]) + 1; a > size {
				size = a
			}
			if b := int(l.P2[k]) + 1; b > size {
				size = b
			}
		}
	}

	adj := make([][]int, size)
	member := make([]bool, size)
	for _, l := range layers {
		for k := range l.P1 {
			a, b := int(l.P1[k]), int(l.P2[k])
			member[a], member[b] = true, true
			if a == b {
				continue
			}
			adj[a] = append(adj[a], b)
			adj[b] = append(adj[b], a)
		}
	}

	return adj, member
}
