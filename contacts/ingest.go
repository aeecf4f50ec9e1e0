// SPDX-License-Identifier: MIT
// File: ingest.go
// Role: Building layers from loosely typed column data.
// Policy:
//   - Every supplied column is cast to its canonical type (int32 indices,
//     float32 weights) or rejected with ErrBadColumn; nothing is truncated
//     silently.
//   - A missing or short beta column is replaced by a constant column.

package contacts

import (
	"fmt"
	"math"
)

// Columns is a column dict keyed by p1, p2 and (optionally) beta. Values may
// be any Go integer or float slice; FromColumns casts them.
type Columns map[string]any

// IngestOption configures FromColumns and FromRows.
type IngestOption func(*ingestConfig)

type ingestConfig struct {
	beta float32
}

// WithBeta sets the weight used to fill a missing beta column.
// Without it DefaultBeta is used.
func WithBeta(beta float64) IngestOption {
	return func(c *ingestConfig) { c.beta = float32(beta) }
}

func newIngestConfig(opts ...IngestOption) ingestConfig {
	cfg := ingestConfig{beta: DefaultBeta}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}

// FromColumns builds a validated layer from a column dict.
//
// Steps:
//  1. Reject unknown column names and require p1 and p2.
//  2. Cast p1/p2 to int32 (integral, in range) and beta to float32.
//  3. If beta is absent or its length differs from p1, fill it with the
//     configured default for every row.
//  4. Validate the result.
//
// Complexity: O(E).
func FromColumns(cols Columns, opts ...IngestOption) (*Layer, error) {
	cfg := newIngestConfig(opts...)

	for name := range cols {
		if name != ColP1 && name != ColP2 && name != ColBeta {
			return nil, fmt.Errorf("FromColumns: %q: %w", name, ErrUnknownColumn)
		}
	}

	rawP1, ok := cols[ColP1]
	if !ok {
		return nil, fmt.Errorf("FromColumns: %q: %w", ColP1, ErrMissingColumn)
	}
	rawP2, ok := cols[ColP2]
	if !ok {
		return nil, fmt.Errorf("FromColumns: %q: %w", ColP2, ErrMissingColumn)
	}

	p1, err := castIndices(ColP1, rawP1)
	if err != nil {
		return nil, err
	}
	p2, err := castIndices(ColP2, rawP2)
	if err != nil {
		return nil, err
	}

	var beta []float32
	if rawBeta, ok := cols[ColBeta]; ok {
		if beta, err = castWeights(ColBeta, rawBeta); err != nil {
			return nil, err
		}
	}
	if len(beta) != len(p1) {
		beta = filled(len(p1), cfg.beta)
	}

	l := &Layer{P1: p1, P2: p2, Beta: beta}
	if err = l.Validate(); err != nil {
		return nil, fmt.Errorf("FromColumns: %w", err)
	}

	return l, nil
}

// FromRows builds a layer from raw rows of the form (p1, p2) or
// (p1, p2, beta). Rows without a weight take the configured default.
// Complexity: O(E).
func FromRows(rows [][]float64, opts ...IngestOption) (*Layer, error) {
	cfg := newIngestConfig(opts...)

	l := &Layer{
		P1:   make([]int32, 0, len(rows)),
		P2:   make([]int32, 0, len(rows)),
		Beta: make([]float32, 0, len(rows)),
	}
	for r, row := range rows {
		if len(row) != 2 && len(row) != 3 {
			return nil, fmt.Errorf("FromRows: row %d has %d values, want 2 or 3: %w", r, len(row), ErrBadColumn)
		}
		p1, err := floatToIndex(ColP1, r, row[0])
		if err != nil {
			return nil, err
		}
		p2, err := floatToIndex(ColP2, r, row[1])
		if err != nil {
			return nil, err
		}
		beta := cfg.beta
		if len(row) == 3 {
			beta = float32(row[2])
		}
		l.P1 = append(l.P1, p1)
		l.P2 = append(l.P2, p2)
		l.Beta = append(l.Beta, beta)
	}

	return l, nil
}

// filled returns a slice of n copies of v.
func filled(n int, v float32) []float32 {
	out := make([]float32, n)
	for k := range out {
		out[k] = v
	}

	return out
}

// integer is the set of Go integer types accepted as index columns.
type integer interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 | ~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64
}

// float is the set of Go float types accepted as weight or index columns.
type float interface {
	~float32 | ~float64
}

// intsToIndex casts an integer column to int32, rejecting overflow and
// negative values.
func intsToIndex[T integer](name string, src []T) ([]int32, error) {
	out := make([]int32, len(src))
	for k, v := range src {
		if int64(v) < 0 || uint64(v) > math.MaxInt32 {
			return nil, fmt.Errorf("column %q row %d: value %d not a valid index: %w", name, k, int64(v), ErrBadColumn)
		}
		out[k] = int32(v)
	}

	return out, nil
}

// floatsToIndex casts a float column to int32, rejecting non-integral values.
func floatsToIndex[T float](name string, src []T) ([]int32, error) {
	out := make([]int32, len(src))
	for k, v := range src {
		idx, err := floatToIndex(name, k, float64(v))
		if err != nil {
			return nil, err
		}
		out[k] = idx
	}

	return out, nil
}

// floatToIndex casts one float to an agent index.
func floatToIndex(name string, row int, v float64) (int32, error) {
	if v != math.Trunc(v) || v < 0 || v > math.MaxInt32 {
		return 0, fmt.Errorf("column %q row %d: value %g not a valid index: %w", name, row, v, ErrBadColumn)
	}

	return int32(v), nil
}

// castIndices dispatches on the concrete slice type of an index column.
func castIndices(name string, raw any) ([]int32, error) {
	switch v := raw.(type) {
	case []int32:
		return intsToIndex(name, v)
	case []int:
		return intsToIndex(name, v)
	case []int64:
		return intsToIndex(name, v)
	case []int16:
		return intsToIndex(name, v)
	case []int8:
		return intsToIndex(name, v)
	case []uint:
		return intsToIndex(name, v)
	case []uint64:
		return intsToIndex(name, v)
	case []uint32:
		return intsToIndex(name, v)
	case []uint16:
		return intsToIndex(name, v)
	case []uint8:
		return intsToIndex(name, v)
	case []float64:
		return floatsToIndex(name, v)
	case []float32:
		return floatsToIndex(name, v)
	default:
		return nil, fmt.Errorf("column %q: unsupported type %T: %w", name, raw, ErrBadColumn)
	}
}

// castWeights dispatches on the concrete slice type of a weight column.
func castWeights(name string, raw any) ([]float32, error) {
	switch v := raw.(type) {
	case []float32:
		return append([]float32{}, v...), nil
	case []float64:
		return convert[float64, float32](v), nil
	case []int:
		return convert[int, float32](v), nil
	case []int32:
		return convert[int32, float32](v), nil
	case []int64:
		return convert[int64, float32](v), nil
	default:
		return nil, fmt.Errorf("column %q: unsupported type %T: %w", name, raw, ErrBadColumn)
	}
}

// convert performs an element-wise numeric conversion.
func convert[S integer | float, D integer | float](src []S) []D {
	out := make([]D, len(src))
	for k, v := range src {
		out[k] = D(v)
	}

	return out
}
