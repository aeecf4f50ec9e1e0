// SPDX-License-Identifier: MIT

// Package matrix provides Dense, a row-major float64 matrix used as the
// numeric view of a population: one row per agent, one labeled column per
// attribute key.
//
// Dense stores its r×c elements in a single flat slice for cache-friendly
// column fills and row reads. Columns may carry labels (attribute keys) so
// that callers can address them by name without tracking positions.
//
// Errors:
//
//	ErrInvalidDimensions - rows or cols is not positive.
//	ErrIndexOutOfBounds  - a row or column index is outside the matrix.
//	ErrDimensionMismatch - a supplied vector does not fit the target row/column.
//	ErrUnknownLabel      - no column carries the requested label.
package matrix
