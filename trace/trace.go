// Package trace expands contact sets hop by hop over every layer of a
// contacts.Contacts collection, returning hop distances and visit order.
package trace

import (
	"fmt"
	"sort"

	"github.com/katalvlaran/popnet/contacts"
)

// walker encapsulates mutable trace state.
type walker struct {
	layers  []*contacts.Layer
	opts    Options
	visited map[int]bool
	res     *Result
}

// Trace runs a level-synchronous breadth-first expansion from seeds.
//
// Steps:
//  1. Level 0 is the deduplicated, ascending seed set.
//  2. Level d+1 is every agent returned by FindContacts(level d) on any
//     selected layer that has not been reached before.
//  3. Stop when a level is empty, MaxDepth is reached, the context is
//     cancelled (ctx.Err() is returned with the partial result) or OnVisit
//     fails.
//
// Seeds need not appear in any layer; they are reached at depth 0.
// Returns ErrContactsNil, ErrNoSeeds, ErrBadSeed, ErrUnknownLayer or
// ErrOptionViolation for invalid input.
//
// Complexity: O(D * (E + V/8)) where D is the number of levels, E the edges
// in the selected layers and V the largest agent index.
func Trace(c *contacts.Contacts, seeds []int, opts ...Option) (*Result, error) {
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
	if len(seeds) == 0 {
		return nil, ErrNoSeeds
	}
	for _, s := range seeds {
		if s < 0 {
			return nil, fmt.Errorf("seed %d: %w", s, ErrBadSeed)
		}
	}

	layers, err := selectLayers(c, o.Layers)
	if err != nil {
		return nil, err
	}
	w := &walker{
		layers:  layers,
		opts:    o,
		visited: make(map[int]bool, len(seeds)),
		res:     &Result{Depth: make(map[int]int, len(seeds))},
	}

	return w.res, w.loop(seeds)
}

// selectLayers resolves names against c; nil selects every layer in key order.
func selectLayers(c *contacts.Contacts, names []string) ([]*contacts.Layer, error) {
	if names == nil {
		names = c.Keys()
	}
	out := make([]*contacts.Layer, 0, len(names))
	for _, name := range names {
		l, ok := c.Layer(name)
		if !ok {
			return nil, fmt.Errorf("%q: %w", name, ErrUnknownLayer)
		}
		out = append(out, l)
	}

	return out, nil
}

// loop visits one level per iteration.
func (w *walker) loop(seeds []int) error {
	frontier := w.fresh(seeds)
	for depth := 0; len(frontier) > 0; depth++ {
		select {
		case <-w.opts.Ctx.Done():
			return w.opts.Ctx.Err()
		default:
		}

		if err := w.visit(frontier, depth); err != nil {
			return err
		}
		if w.opts.MaxDepth > 0 && depth == w.opts.MaxDepth {
			return nil
		}
		frontier = w.expand(frontier)
	}

	return nil
}

// fresh returns the ascending, deduplicated candidates not yet visited.
func (w *walker) fresh(candidates []int) []int {
	seen := make(map[int]bool, len(candidates))
	out := make([]int, 0, len(candidates))
	for _, a := range candidates {
		if w.visited[a] || seen[a] {
			continue
		}
		seen[a] = true
		out = append(out, a)
	}
	sort.Ints(out)

	return out
}

// expand gathers the partners of frontier over every selected layer.
func (w *walker) expand(frontier []int) []int {
	var next []int
	for _, l := range w.layers {
		next = append(next, l.FindContacts(frontier)...)
	}

	return w.fresh(next)
}

// visit records one level and calls OnVisit for each agent.
func (w *walker) visit(level []int, depth int) error {
	w.res.Levels = append(w.res.Levels, level)
	for _, a := range level {
		w.visited[a] = true
		w.res.Depth[a] = depth
		w.res.Order = append(w.res.Order, a)
		if err := w.opts.OnVisit(a, depth); err != nil {
			return fmt.Errorf("trace: OnVisit error at %d: %w", a, err)
		}
	}

	return nil
}
