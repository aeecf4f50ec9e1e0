// SPDX-License-Identifier: MIT
// File: query.go
// Role: Index and count queries over a single array.
// Determinism:
//   - Index results are ascending agent indices.
// Notes:
//   - True/False accept any kind; zero means false, NaN counts as nonzero.
//   - Defined/Undefined accept only float arrays, where NaN is the
//     undefined sentinel.

package population

import (
	"fmt"
	"math"
)

// nonzero evaluates predicate "value at i is nonzero" over a column.
func nonzero(c *column) func(i int) bool {
	switch c.kind {
	case KindInt:
		return func(i int) bool { return c.ints[i] != 0 }
	case KindFloat:
		return func(i int) bool { return c.floats[i] != 0 }
	default:
		return func(i int) bool { return c.bools[i] }
	}
}

// collect returns ascending indices where pred(i) == want.
func collect(n int, pred func(int) bool, want bool) []int {
	out := make([]int, 0)
	for i := 0; i < n; i++ {
		if pred(i) == want {
			out = append(out, i)
		}
	}

	return out
}

// tally counts indices where pred(i) == want.
func tally(n int, pred func(int) bool, want bool) int {
	total := 0
	for i := 0; i < n; i++ {
		if pred(i) == want {
			total++
		}
	}

	return total
}

// True returns ascending indices where key is nonzero.
// Complexity: O(n).
func (p *Population) True(key string) ([]int, error) {
	c, err := p.lookup(key)
	if err != nil {
		return nil, fmt.Errorf("True: %w", err)
	}

	return collect(c.len(), nonzero(c), true), nil
}

// False returns ascending indices where key is zero.
// Complexity: O(n).
func (p *Population) False(key string) ([]int, error) {
	c, err := p.lookup(key)
	if err != nil {
		return nil, fmt.Errorf("False: %w", err)
	}

	return collect(c.len(), nonzero(c), false), nil
}

// Count returns len(True(key)) without building the index slice.
func (p *Population) Count(key string) (int, error) {
	c, err := p.lookup(key)
	if err != nil {
		return 0, fmt.Errorf("Count: %w", err)
	}

	return tally(c.len(), nonzero(c), true), nil
}

// CountNot returns len(False(key)) without building the index slice.
func (p *Population) CountNot(key string) (int, error) {
	c, err := p.lookup(key)
	if err != nil {
		return 0, fmt.Errorf("CountNot: %w", err)
	}

	return tally(c.len(), nonzero(c), false), nil
}

// defined returns the "not NaN" predicate of a float column.
func (p *Population) defined(op, key string) (*column, func(int) bool, error) {
	c, err := p.lookup(key)
	if err != nil {
		return nil, nil, fmt.Errorf("%s: %w", op, err)
	}
	if c.kind != KindFloat {
		return nil, nil, fmt.Errorf("%s(%q): %s array has no undefined sentinel: %w", op, key, c.kind, ErrKindMismatch)
	}

	return c, func(i int) bool { return !math.IsNaN(c.floats[i]) }, nil
}

// Defined returns ascending indices where the float array key holds a value.
// Complexity: O(n).
func (p *Population) Defined(key string) ([]int, error) {
	c, pred, err := p.defined("Defined", key)
	if err != nil {
		return nil, err
	}

	return collect(c.len(), pred, true), nil
}

// Undefined returns ascending indices where the float array key is NaN.
// Complexity: O(n).
func (p *Population) Undefined(key string) ([]int, error) {
	c, pred, err := p.defined("Undefined", key)
	if err != nil {
		return nil, err
	}

	return collect(c.len(), pred, false), nil
}

// CountDefined returns len(Defined(key)) without building the index slice.
func (p *Population) CountDefined(key string) (int, error) {
	c, pred, err := p.defined("CountDefined", key)
	if err != nil {
		return 0, err
	}

	return tally(c.len(), pred, true), nil
}
