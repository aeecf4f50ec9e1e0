// SPDX-License-Identifier: MIT
// Package tabular: sentinel errors.
// Every message is prefixed with "tabular: "; callers match with errors.Is.

package tabular

import "errors"

var (
	// ErrNilInput indicates a nil population, layer, collection, schema or record.
	ErrNilInput = errors.New("tabular: nil input")

	// ErrMissingColumn indicates a record without a required column.
	ErrMissingColumn = errors.New("tabular: missing column")

	// ErrColumnType indicates a column whose Arrow type does not match the
	// declared kind, or a null in a column that has no undefined sentinel.
	ErrColumnType = errors.New("tabular: column type mismatch")

	// ErrNoRecord indicates an IPC file without record batches.
	ErrNoRecord = errors.New("tabular: no record batch")
)
