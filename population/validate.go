// SPDX-License-Identifier: MIT
// File: validate.go
// Role: Validate and Resize, the length invariant keepers.
// Policy:
//   - A layer-key mismatch between contacts and schema is always fatal.
//   - A length mismatch is fatal in strict mode and repaired (truncation or
//     fill) otherwise; every repair is logged at warn level.

package population

import (
	"fmt"
	"log/slog"
	"sort"
)

// Validate checks the population invariants.
//
// Steps:
//  1. The contacts key set must equal the schema's layer keys
//     (ErrSchemaMismatch, never repaired).
//  2. Every array must hold exactly Len() values. Strict mode fails with
//     ErrLengthMismatch naming the first offending key; otherwise the array
//     is resized to Len(), which may truncate data or append fill values.
//  3. Every layer must validate.
//
// On a valid population Validate changes nothing.
// Complexity: O(fields + total edges), plus O(n) per repaired array.
func (p *Population) Validate(strict bool) error {
	if err := p.checkLayerKeys(); err != nil {
		return err
	}

	for _, f := range p.schema.fields {
		c := p.cols[f.Key]
		got := c.len()
		if got == p.size {
			continue
		}
		if strict {
			return fmt.Errorf("Validate: %q has %d values, want %d: %w", f.Key, got, p.size, ErrLengthMismatch)
		}
		p.logger.Warn("resizing array to population size",
			slog.String("key", f.Key), slog.Int("from", got), slog.Int("to", p.size))
		resizeColumn(c, f, p.size)
	}

	if err := p.contacts.Validate(); err != nil {
		return fmt.Errorf("Validate: %w", err)
	}

	return nil
}

// checkLayerKeys compares the contacts key set with the schema's layer keys.
func (p *Population) checkLayerKeys() error {
	have := p.contacts.Keys()
	want := p.schema.LayerKeys()
	if sameKeySet(have, want) {
		return nil
	}
	sort.Strings(have)
	sort.Strings(want)

	return fmt.Errorf("Validate: layers %v, schema declares %v: %w", have, want, ErrSchemaMismatch)
}

// Resize grows or shrinks the named arrays (all when keys is empty) to
// newSize in place and sets Len() to newSize. Existing values up to the new
// length are kept; new slots take the field's fill value (NaN for dates and
// durations, zero otherwise). Contacts are left untouched.
// Complexity: O(newSize * len(keys)).
func (p *Population) Resize(newSize int, keys ...string) error {
	if newSize < 0 {
		return fmt.Errorf("Resize(%d): %w", newSize, ErrNegativeSize)
	}
	if len(keys) == 0 {
		keys = p.schema.Keys()
	}
	for _, k := range keys {
		if !p.schema.Has(k) {
			return fmt.Errorf("Resize: %q: %w", k, ErrUnknownKey)
		}
	}

	for _, k := range keys {
		f, _ := p.schema.Field(k)
		resizeColumn(p.cols[k], f, newSize)
	}
	p.size = newSize

	return nil
}

// resizeColumn sets the column length to n, keeping the common prefix.
func resizeColumn(c *column, f Field, n int) {
	switch c.kind {
	case KindInt:
		c.ints = resized(c.ints, n, 0)
	case KindFloat:
		c.floats = resized(c.floats, n, f.fillFloat())
	case KindBool:
		c.bools = resized(c.bools, n, false)
	}
}

// resized returns a new slice of length n holding src's prefix and fill.
func resized[T any](src []T, n int, fill T) []T {
	out := make([]T, n)
	copied := copy(out, src)
	for i := copied; i < n; i++ {
		out[i] = fill
	}

	return out
}
