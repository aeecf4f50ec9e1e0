// SPDX-License-Identifier: MIT

// Package population is the attribute store of an agent-based epidemic
// simulation: every agent is one row across a fixed set of parallel arrays,
// and the population owns the contact layers that connect those rows.
//
// The set of arrays is declared once by a Schema and never changes:
//
//	person   – identity and person attributes (uid, age, sex, rel_sus, ...)
//	state    – boolean disease-state flags (susceptible, exposed, dead, ...)
//	date     – event dates; NaN until the event happens
//	duration – durations; NaN until defined
//
// Every array has exactly Len() elements once the population is validated.
// Reading or writing an undeclared key fails with ErrUnknownKey, so a typo
// cannot create ghost state. Free-form debug values go to a separate side
// mapping (SetExtra/Extra) that takes no part in validation, resizing or
// concatenation.
//
// The disease-progression component is the only writer of state, date and
// duration arrays during a run. It reads and writes through the typed
// getters (Bools, Floats, Ints), which return the live arrays, or through
// Set, which casts and length-checks a replacement array. Index queries
// (True, False, Defined, Undefined) return ascending agent indices; Count and
// CountNot return the same cardinalities without building the index slices.
//
// Contacts are attached per population. AddContacts normalizes every input
// shape (a Layer, a Contacts collection, raw rows, a column dict, per-agent
// partner lists) into layer rows and appends them. Person materializes one
// agent with its per-layer partners and is meant for inspection and export
// only: it scans every edge of every layer.
//
// Concurrency: none. All mutations are expected from a single stepping
// driver; concurrent read-only queries are safe while no writer runs.
package population
