// SPDX-License-Identifier: MIT
// File: views.go
// Role: Detached float64 views of one or many arrays.
// Notes:
//   - Views are copies; writing them never reaches the store.
//   - Bools become 0/1, ints are converted exactly up to 2^53.

package population

import (
	"fmt"

	"github.com/katalvlaran/popnet/matrix"
)

// Values returns a float64 copy of the array of key, whatever its kind.
// Complexity: O(n).
func (p *Population) Values(key string) ([]float64, error) {
	c, err := p.lookup(key)
	if err != nil {
		return nil, fmt.Errorf("Values: %w", err)
	}

	return c.float64s(), nil
}

// float64s converts the column to a fresh []float64.
func (c *column) float64s() []float64 {
	switch c.kind {
	case KindInt:
		out := make([]float64, len(c.ints))
		for i, v := range c.ints {
			out[i] = float64(v)
		}
		return out
	case KindFloat:
		return append([]float64{}, c.floats...)
	default:
		out := make([]float64, len(c.bools))
		for i, v := range c.bools {
			out[i] = boolFloat(v)
		}
		return out
	}
}

// GetMany returns a Len()×len(keys) matrix whose columns are the named
// arrays, labeled with their keys. Without keys every declared key is used.
// The population must be non-empty and valid.
// Complexity: O(n * len(keys)).
func (p *Population) GetMany(keys ...string) (*matrix.Dense, error) {
	if len(keys) == 0 {
		keys = p.schema.Keys()
	}
	m, err := matrix.NewLabeled(p.size, keys)
	if err != nil {
		return nil, fmt.Errorf("GetMany: %w", err)
	}
	for j, k := range keys {
		v, err := p.Values(k)
		if err != nil {
			return nil, fmt.Errorf("GetMany: %w", err)
		}
		if err = m.SetCol(j, v); err != nil {
			return nil, fmt.Errorf("GetMany(%q): %w", k, err)
		}
	}

	return m, nil
}

// ToMatrix returns every declared array as a labeled matrix, with the uid
// column replaced by the row index.
// Complexity: O(n * fields).
func (p *Population) ToMatrix() (*matrix.Dense, error) {
	m, err := p.GetMany()
	if err != nil {
		return nil, err
	}
	j, err := m.LabelIndex(KeyUID)
	if err != nil {
		return nil, err
	}
	rows := make([]float64, p.size)
	for i := range rows {
		rows[i] = float64(i)
	}
	if err = m.SetCol(j, rows); err != nil {
		return nil, err
	}

	return m, nil
}
