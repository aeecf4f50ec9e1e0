// Package popnet is the in-memory population store of an agent-based
// epidemic simulator: per-agent attribute arrays plus layered contact
// networks, and the tools to build, query, trace and export them.
//
// 🚀 What is popnet?
//
//	A small, single-threaded library with a thin CLI on top:
//		• Population: typed columnar arrays (person, state, date, duration)
//		  with NaN as the "not yet happened" sentinel for dates
//		• Contacts: named edge-list layers (household, school, work, ...)
//		  with bidirectional partner lookup
//		• Builders: random, clustered and static layer generators
//		• Tracing: multi-hop contact expansion and connected clusters
//		• Tabular: Apache Arrow records, IPC files and a YAML manifest
//
// ✨ Why popnet?
//
//   - Flat arrays: the per-day simulation step reads columns without copies
//   - Explicit errors: sentinel errors per package, matched with errors.Is
//   - Deterministic: every generator is driven by an explicit seed
//
// Packages:
//
//	population/ - Schema, Population, queries, concat, contact ingestion
//	contacts/   - Layer, Contacts, FindContacts, RemoveDuplicates
//	builder/    - Random, Clusters, Static layer constructors
//	trace/      - Trace (hop-by-hop expansion), Components
//	tabular/    - Arrow records, IPC files, Shrink manifest
//	matrix/     - dense labeled matrices for GetMany and ToMatrix
//	cmd/popnet  - synth, contacts, trace, components, manifest, export
//
// Quick ASCII example (household layer "h"):
//
//	    0───1       3
//	        │       │
//	        2       4
//
//	FindContacts([1]) on "h" returns [0 2].
//
//	go get github.com/katalvlaran/popnet
package popnet
