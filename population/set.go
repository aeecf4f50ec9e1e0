// SPDX-License-Identifier: MIT
// File: set.go
// Role: Set, the casting and length-checked array replacement.
// Policy:
//   - The declared kind always wins: values are cast to it or rejected.
//   - The target array is replaced only after the whole input has been cast.

package population

import (
	"fmt"
	"math"
)

// SetOption configures Set.
type SetOption func(*setConfig)

type setConfig struct {
	enforceLength bool
}

// WithoutLengthCheck lets Set store an array whose length differs from the
// current one. The population is then invalid until Validate or Resize
// repairs it.
func WithoutLengthCheck() SetOption {
	return func(c *setConfig) { c.enforceLength = false }
}

// Set replaces the array of key with values cast to the declared kind.
//
// Accepted inputs are []bool and every Go integer and float slice type.
// Casting rules:
//   - bool to int/float yields 0 or 1;
//   - numeric to bool yields v != 0 (NaN is nonzero);
//   - float to int requires an integral, finite value (ErrBadValue).
//
// The input slice is copied; later changes to it do not reach the store.
// Complexity: O(len(values)).
func (p *Population) Set(key string, values any, opts ...SetOption) error {
	cfg := setConfig{enforceLength: true}
	for _, opt := range opts {
		opt(&cfg)
	}

	c, err := p.lookup(key)
	if err != nil {
		return fmt.Errorf("Set: %w", err)
	}

	var next *column
	switch c.kind {
	case KindInt:
		ints, err := castInts(values)
		if err != nil {
			return fmt.Errorf("Set(%q): %w", key, err)
		}
		next = &column{kind: KindInt, ints: ints}
	case KindFloat:
		floats, err := castFloats(values)
		if err != nil {
			return fmt.Errorf("Set(%q): %w", key, err)
		}
		next = &column{kind: KindFloat, floats: floats}
	case KindBool:
		bools, err := castBools(values)
		if err != nil {
			return fmt.Errorf("Set(%q): %w", key, err)
		}
		next = &column{kind: KindBool, bools: bools}
	}

	if cfg.enforceLength && next.len() != c.len() {
		return fmt.Errorf("Set(%q): got %d values, array has %d: %w", key, next.len(), c.len(), ErrLengthMismatch)
	}
	p.cols[key] = next

	return nil
}

// numeric is the set of Go number types accepted by Set.
type numeric interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 |
		~float32 | ~float64
}

// visit calls fn with every element of a supported slice as float64, or
// reports ErrUnsupportedType. Bools arrive as 0 or 1.
func visit(values any, fn func(i int, v float64) error) (int, error) {
	switch v := values.(type) {
	case []bool:
		for i, b := range v {
			if err := fn(i, boolFloat(b)); err != nil {
				return 0, err
			}
		}
		return len(v), nil
	case []int:
		return each(v, fn)
	case []int8:
		return each(v, fn)
	case []int16:
		return each(v, fn)
	case []int32:
		return each(v, fn)
	case []int64:
		return each(v, fn)
	case []uint:
		return each(v, fn)
	case []uint8:
		return each(v, fn)
	case []uint16:
		return each(v, fn)
	case []uint32:
		return each(v, fn)
	case []uint64:
		return each(v, fn)
	case []float32:
		return each(v, fn)
	case []float64:
		return each(v, fn)
	default:
		return 0, fmt.Errorf("%T: %w", values, ErrUnsupportedType)
	}
}

func each[T numeric](src []T, fn func(i int, v float64) error) (int, error) {
	for i, v := range src {
		if err := fn(i, float64(v)); err != nil {
			return 0, err
		}
	}

	return len(src), nil
}

func boolFloat(b bool) float64 {
	if b {
		return 1
	}

	return 0
}

// castInts converts values to int64. Integer inputs take a direct path so
// large int64 values keep full precision.
func castInts(values any) ([]int64, error) {
	switch v := values.(type) {
	case []int64:
		return append([]int64{}, v...), nil
	case []int:
		out := make([]int64, len(v))
		for i, x := range v {
			out[i] = int64(x)
		}
		return out, nil
	case []int32:
		out := make([]int64, len(v))
		for i, x := range v {
			out[i] = int64(x)
		}
		return out, nil
	case []uint64:
		return unsignedInts(v)
	case []uint:
		return unsignedInts(v)
	}

	var out []int64
	_, err := visit(values, func(i int, x float64) error {
		if math.IsNaN(x) || math.IsInf(x, 0) || x != math.Trunc(x) || x < -twoTo63 || x >= twoTo63 {
			return fmt.Errorf("element %d = %g: %w", i, x, ErrBadValue)
		}
		out = append(out, int64(x))
		return nil
	})
	if err != nil {
		return nil, err
	}
	if out == nil {
		out = []int64{}
	}

	return out, nil
}

// twoTo63 bounds the floats that convert to int64 without overflow.
const twoTo63 = 1 << 63

// unsignedInts converts without a float64 detour, rejecting values past
// math.MaxInt64.
func unsignedInts[T ~uint | ~uint64](src []T) ([]int64, error) {
	out := make([]int64, len(src))
	for i, x := range src {
		if uint64(x) > math.MaxInt64 {
			return nil, fmt.Errorf("element %d = %d: %w", i, uint64(x), ErrBadValue)
		}
		out[i] = int64(x)
	}

	return out, nil
}

func castFloats(values any) ([]float64, error) {
	if v, ok := values.([]float64); ok {
		return append([]float64{}, v...), nil
	}

	out := []float64{}
	if _, err := visit(values, func(_ int, x float64) error {
		out = append(out, x)
		return nil
	}); err != nil {
		return nil, err
	}

	return out, nil
}

func castBools(values any) ([]bool, error) {
	if v, ok := values.([]bool); ok {
		return append([]bool{}, v...), nil
	}

	out := []bool{}
	if _, err := visit(values, func(_ int, x float64) error {
		out = append(out, x != 0)
		return nil
	}); err != nil {
		return nil, err
	}

	return out, nil
}
