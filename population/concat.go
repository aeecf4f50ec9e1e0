// SPDX-License-Identifier: MIT

package population

import (
	"fmt"
	"math"

	"github.com/katalvlaran/popnet/contacts"
)

// Concat returns a new population holding a's agents followed by b's.
//
// Requirements: a and b share an equal schema (fields and layer-key set) and
// both pass strict validation. Neither input is mutated.
//
// Result:
//   - Len() == a.Len() + b.Len();
//   - every array other than uid is a's array followed by b's;
//   - uid is renumbered to [0, Len()), discarding pre-merge identities;
//   - contacts are merged layer by layer, with b's edges shifted by a.Len()
//     so they keep pointing at b's agents. This is not a plain concatenation
//     of the edge arrays: callers holding b's edges in pre-merge indices
//     must shift them by a.Len() themselves;
//   - the side mapping is a's, with b's entries added for keys a lacks.
//
// The result uses a's logger.
// Complexity: O((a.Len()+b.Len()) * fields + total edges).
func Concat(a, b *Population) (*Population, error) {
	if a == nil || b == nil {
		return nil, fmt.Errorf("Concat: nil population: %w", ErrSchemaNil)
	}
	if !a.schema.Equal(b.schema) {
		return nil, fmt.Errorf("Concat: %w", ErrSchemaMismatch)
	}
	if err := a.Validate(true); err != nil {
		return nil, fmt.Errorf("Concat: left: %w", err)
	}
	if err := b.Validate(true); err != nil {
		return nil, fmt.Errorf("Concat: right: %w", err)
	}

	total := a.size + b.size
	if total > math.MaxInt32 {
		return nil, fmt.Errorf("Concat: %d agents exceed int32 edge indices: %w", total, ErrIndexOutOfRange)
	}
	merged, err := contacts.Concat(a.contacts, b.contacts, int32(a.size))
	if err != nil {
		return nil, fmt.Errorf("Concat: %w", err)
	}

	out := &Population{
		schema:   a.schema,
		size:     total,
		cols:     make(map[string]*column, len(a.cols)),
		contacts: merged,
		extra:    make(map[string]any, len(a.extra)+len(b.extra)),
		logger:   a.logger,
	}
	for _, f := range a.schema.fields {
		ca, cb := a.cols[f.Key], b.cols[f.Key]
		out.cols[f.Key] = &column{
			kind:   f.Kind,
			ints:   joined(ca.ints, cb.ints),
			floats: joined(ca.floats, cb.floats),
			bools:  joined(ca.bools, cb.bools),
		}
	}
	uid := out.cols[KeyUID].ints
	for i := range uid {
		uid[i] = int64(i)
	}

	for k, v := range b.extra {
		out.extra[k] = v
	}
	for k, v := range a.extra {
		out.extra[k] = v
	}

	return out, nil
}

// joined returns a fresh slice holding x followed by y.
func joined[T any](x, y []T) []T {
	if len(x)+len(y) == 0 {
		return nil
	}
	out := make([]T, 0, len(x)+len(y))
	out = append(out, x...)

	return append(out, y...)
}
