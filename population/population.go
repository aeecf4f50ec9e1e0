// SPDX-License-Identifier: MIT
// File: population.go
// Role: Population type, construction, typed array access and the debug
//       side mapping.
// Determinism:
//   - Every key listing follows schema declaration order.
// Concurrency:
//   - None. Typed getters return live arrays; writers must be serialized.

package population

import (
	"fmt"
	"log/slog"
	"sort"

	"github.com/katalvlaran/popnet/contacts"
)

// column is the storage of one declared key. Exactly one slice is in use,
// chosen by kind.
type column struct {
	kind   Kind
	ints   []int64
	floats []float64
	bools  []bool
}

// newColumn allocates a column of length n at the field's fill value.
func newColumn(f Field, n int) *column {
	c := &column{kind: f.Kind}
	switch f.Kind {
	case KindInt:
		c.ints = make([]int64, n)
	case KindFloat:
		c.floats = make([]float64, n)
		if fill := f.fillFloat(); fill != 0 {
			for i := range c.floats {
				c.floats[i] = fill
			}
		}
	case KindBool:
		c.bools = make([]bool, n)
	}

	return c
}

// len reports the current array length.
func (c *column) len() int {
	switch c.kind {
	case KindInt:
		return len(c.ints)
	case KindFloat:
		return len(c.floats)
	default:
		return len(c.bools)
	}
}

// clone returns a deep copy.
func (c *column) clone() *column {
	return &column{
		kind:   c.kind,
		ints:   append([]int64(nil), c.ints...),
		floats: append([]float64(nil), c.floats...),
		bools:  append([]bool(nil), c.bools...),
	}
}

// Population stores one row per agent across the schema's arrays and owns
// the contact layers between those rows.
type Population struct {
	schema   *Schema
	size     int
	cols     map[string]*column
	contacts *contacts.Contacts
	extra    map[string]any
	logger   *slog.Logger
}

// Option configures a Population at construction.
type Option func(*Population)

// WithLogger sets the logger used for non-fatal notices such as automatic
// resizing during non-strict validation. A nil logger is ignored.
func WithLogger(l *slog.Logger) Option {
	return func(p *Population) {
		if l != nil {
			p.logger = l
		}
	}
}

// New allocates a population of size agents. Every array starts at its
// field's fill value and the contacts hold one empty layer per schema layer
// key. Use Set or the typed getters to load values.
// Complexity: O(size * fields).
func New(schema *Schema, size int, opts ...Option) (*Population, error) {
	if schema == nil {
		return nil, ErrSchemaNil
	}
	if size < 0 {
		return nil, fmt.Errorf("New(%d): %w", size, ErrNegativeSize)
	}

	p := &Population{
		schema:   schema,
		size:     size,
		cols:     make(map[string]*column, len(schema.fields)),
		contacts: contacts.New(schema.layerKeys...),
		extra:    make(map[string]any),
		logger:   slog.New(slog.DiscardHandler),
	}
	for _, f := range schema.fields {
		p.cols[f.Key] = newColumn(f, size)
	}
	for _, opt := range opts {
		opt(p)
	}

	return p, nil
}

// Len reports pop_size.
func (p *Population) Len() int { return p.size }

// Schema returns the immutable declaration shared with the parameter store.
func (p *Population) Schema() *Schema { return p.schema }

// Contacts returns the live contact collection.
func (p *Population) Contacts() *contacts.Contacts { return p.contacts }

// Indices returns [0, Len()).
func (p *Population) Indices() []int {
	out := make([]int, p.size)
	for i := range out {
		out[i] = i
	}

	return out
}

// Keys returns every declared key in schema order.
func (p *Population) Keys() []string { return p.schema.Keys() }

// PersonKeys returns the identity and person-attribute keys.
func (p *Population) PersonKeys() []string { return p.schema.KeysIn(GroupPerson) }

// StateKeys returns the boolean state keys.
func (p *Population) StateKeys() []string { return p.schema.KeysIn(GroupState) }

// DateKeys returns the event-date keys.
func (p *Population) DateKeys() []string { return p.schema.KeysIn(GroupDate) }

// DurKeys returns the duration keys.
func (p *Population) DurKeys() []string { return p.schema.KeysIn(GroupDuration) }

// LayerKeys returns the canonical layer keys declared by the schema.
func (p *Population) LayerKeys() []string { return p.schema.LayerKeys() }

// lookup returns the column for key or ErrUnknownKey.
func (p *Population) lookup(key string) (*column, error) {
	c, ok := p.cols[key]
	if !ok {
		return nil, fmt.Errorf("%q: %w", key, ErrUnknownKey)
	}

	return c, nil
}

// typed returns the column for key after checking its kind.
func (p *Population) typed(key string, want Kind) (*column, error) {
	c, err := p.lookup(key)
	if err != nil {
		return nil, err
	}
	if c.kind != want {
		return nil, fmt.Errorf("%q is %s, not %s: %w", key, c.kind, want, ErrKindMismatch)
	}

	return c, nil
}

// Ints returns the live int64 array of key.
func (p *Population) Ints(key string) ([]int64, error) {
	c, err := p.typed(key, KindInt)
	if err != nil {
		return nil, err
	}

	return c.ints, nil
}

// Floats returns the live float64 array of key. NaN marks undefined slots of
// date and duration arrays.
func (p *Population) Floats(key string) ([]float64, error) {
	c, err := p.typed(key, KindFloat)
	if err != nil {
		return nil, err
	}

	return c.floats, nil
}

// Bools returns the live bool array of key.
func (p *Population) Bools(key string) ([]bool, error) {
	c, err := p.typed(key, KindBool)
	if err != nil {
		return nil, err
	}

	return c.bools, nil
}

// InitContacts replaces the contact collection with one empty layer per
// schema layer key. Without reset an existing collection is kept.
func (p *Population) InitContacts(reset bool) {
	if p.contacts == nil || reset {
		p.contacts = contacts.New(p.schema.layerKeys...)
	}
}

// SetExtra stores a debug value in the side mapping. Keys declared by the
// schema are refused so the side mapping can never shadow an array.
func (p *Population) SetExtra(key string, v any) error {
	if p.schema.Has(key) {
		return fmt.Errorf("SetExtra(%q): %w", key, ErrReservedKey)
	}
	p.extra[key] = v

	return nil
}

// Extra returns a value from the side mapping.
func (p *Population) Extra(key string) (any, bool) {
	v, ok := p.extra[key]

	return v, ok
}

// ExtraKeys returns the side-mapping keys in ascending order.
func (p *Population) ExtraKeys() []string {
	out := make([]string, 0, len(p.extra))
	for k := range p.extra {
		out = append(out, k)
	}
	sort.Strings(out)

	return out
}

// Clone returns a deep copy of arrays and contacts. Side-mapping values are
// copied shallowly.
// Complexity: O(size * fields + total edges).
func (p *Population) Clone() *Population {
	out := &Population{
		schema:   p.schema,
		size:     p.size,
		cols:     make(map[string]*column, len(p.cols)),
		contacts: p.contacts.Clone(),
		extra:    make(map[string]any, len(p.extra)),
		logger:   p.logger,
	}
	for k, c := range p.cols {
		out.cols[k] = c.clone()
	}
	for k, v := range p.extra {
		out.extra[k] = v
	}

	return out
}
