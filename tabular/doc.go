// SPDX-License-Identifier: MIT

// Package tabular converts populations and contact layers to and from
// Apache Arrow records, and produces the reduced manifest export.
//
// Population records hold one column per declared key, in schema order:
//
//	KindInt   → Int64
//	KindFloat → Float64 (date and duration NaN slots become nulls)
//	KindBool  → Boolean
//
// so the undefined sentinel of the in-memory store is an explicit null in
// the tabular form, and reading a record maps nulls back to NaN.
//
// Layer records hold p1 and p2 (Int32) and beta (Float32). Contacts records
// concatenate every layer behind a leading "layer" String column; the full
// ordered key list, including empty layers, travels in the schema metadata
// under MetaLayerKeys.
//
// Shrink builds a Manifest: everything about a population except per-agent
// and per-edge data. Manifest.Encode writes it as YAML.
//
// WriteIPC and ReadIPC move single records through Arrow IPC files.
//
// All records are returned retained; callers must Release them.
package tabular
