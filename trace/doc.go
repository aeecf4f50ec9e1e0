// Package trace provides multi-hop contact tracing over a
// contacts.Contacts collection: from a set of seed agents it finds every
// agent reachable through shared edges, level by level.
//
// What
//
//   - Expand level by level: level 0 is the seeds, level d+1 is every new
//     partner of level d on any selected layer.
//   - Returns a Result containing:
//   - Order: visit sequence (levels in order, ascending inside a level)
//   - Depth: map from agent → hop distance from the nearest seed
//   - Levels: the agents of each level
//   - Each level is computed with Layer.FindContacts, one pass over the
//     edges of each layer, instead of per-agent adjacency walks.
//
// Why
//
//   - Contact tracing needs the first- and second-degree contacts of
//     diagnosed agents over selected channels (for example household and
//     workplace, but not community).
//   - Edge lists are kept flat for the per-day simulation step; building an
//     adjacency index just to trace a few agents would cost more than a
//     handful of linear passes.
//
// Components groups every agent with at least one edge into connected
// clusters over the selected layers, for example to list the households
// joined by a school layer.
//
// Determinism
//
//	Levels are sorted, so Order is fully reproducible for the same layers
//	and seeds regardless of edge order.
//
// Complexity
//
//   - Time:   O(D * (E + V/8)) for D levels, E selected edges and largest
//     agent index V.
//   - Memory: O(V) for the visited set and result.
//
// Usage
//
//	res, err := trace.Trace(pop.Contacts(), []int{diagnosed},
//	    trace.WithLayers("h", "w"),
//	    trace.WithMaxDepth(2),
//	)
//
// Errors
//
//   - ErrContactsNil      if the collection pointer is nil.
//   - ErrNoSeeds          if no seed is given.
//   - ErrBadSeed          if a seed index is negative.
//   - ErrUnknownLayer     if WithLayers names a missing layer.
//   - ErrOptionViolation  if an Option is invalid (negative depth, empty layers).
//   - ctx.Err()           when the context is cancelled between levels.
//   - Wrapped errors returned by OnVisit.
//
// Concurrency: Trace only reads the layers; it is safe to run concurrently
// with other readers while no writer mutates the collection.
package trace
