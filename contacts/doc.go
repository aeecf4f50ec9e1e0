// SPDX-License-Identifier: MIT

// Package contacts stores the contact network of a population as named
// edge-list layers and answers bidirectional contact queries over them.
//
// A Layer is three parallel columns:
//
//	P1   []int32   // first agent index of each edge
//	P2   []int32   // second agent index of each edge
//	Beta []float32 // transmission weight of each edge
//
// Edges are stored directed (one row per listed pair) but every lookup treats
// them as undirected: an edge contributes to the contact sets of both of its
// endpoints. Multi-edges and self-loops are permitted; RemoveDuplicates
// canonicalizes a layer when a simple graph is required.
//
// Contacts is an ordered collection of layers keyed by name (household,
// school, work, community, ...). Key order affects enumeration only.
//
// Core operations:
//
//	// Layer construction
//	NewLayer() *Layer                                  // O(1)
//	FromColumns(cols Columns, opts...) (*Layer, error) // O(E), casts to canonical types
//	FromRows(rows [][]float64, opts...) (*Layer, error)// O(E)
//
//	// Layer mutation
//	Append(batch *Layer) error                         // O(E+B) reallocation
//	PopInds(inds []int) (*Layer, error)                // O(E), returns the removed rows
//
//	// Queries
//	FindContacts(inds []int) []int                     // O(E + N/8), ascending, deduplicated
//	FindContactsSet(inds []int) map[int]struct{}       // same result, unordered
//	Members() []int                                    // O(E + N/8)
//	RemoveDuplicates(l *Layer) *Layer                  // O(E log E)
//
//	// Collection
//	New(keys ...string) *Contacts
//	AddLayer / PopLayer / Layer / At / Keys / Len
//
// Concurrency: nothing in this package locks. Mutations must be serialized by
// the caller; concurrent read-only queries (FindContacts, Members) are safe
// while no writer runs.
//
// Errors:
//
//	ErrLengthMismatch   - columns of a layer have different lengths.
//	ErrNegativeIndex    - an agent index column holds a negative value.
//	ErrBadColumn        - a supplied column cannot be cast to its canonical type.
//	ErrUnknownColumn    - a supplied column is not one of p1, p2, beta.
//	ErrMissingColumn    - p1 or p2 was not supplied.
//	ErrIndexOutOfRange  - a row index passed to PopInds is outside the layer.
//	ErrLayerNil         - a nil *Layer was supplied.
//	ErrLayerNotFound    - a named layer does not exist.
//	ErrPositionOutOfRange - positional access past the last layer.
package contacts
