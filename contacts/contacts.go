// SPDX-License-Identifier: MIT
// File: contacts.go
// Role: Contacts, the ordered name→Layer collection.
// Determinism:
//   - Keys() and String() follow insertion order; overwriting a key keeps its
//     original position.
// Policy:
//   - Name lookup (Layer) and positional lookup (At) are separate accessors;
//     there is no accessor that accepts either.

package contacts

import (
	"fmt"
	"strings"
)

// Contacts is an ordered collection of named layers.
type Contacts struct {
	keys   []string          // insertion order
	layers map[string]*Layer // key → layer
}

// New returns a collection with one empty layer per key, in the given order.
// Repeated keys are kept once.
// Complexity: O(len(keys)).
func New(keys ...string) *Contacts {
	c := &Contacts{layers: make(map[string]*Layer, len(keys))}
	for _, k := range keys {
		if _, ok := c.layers[k]; ok {
			continue
		}
		c.keys = append(c.keys, k)
		c.layers[k] = NewLayer()
	}

	return c
}

// Keys returns a copy of the layer keys in insertion order.
func (c *Contacts) Keys() []string {
	return append([]string{}, c.keys...)
}

// NumLayers reports the number of layers.
func (c *Contacts) NumLayers() int {
	return len(c.keys)
}

// Has reports whether a layer with the given name exists.
func (c *Contacts) Has(name string) bool {
	_, ok := c.layers[name]

	return ok
}

// Layer returns the named layer.
func (c *Contacts) Layer(name string) (*Layer, bool) {
	l, ok := c.layers[name]

	return l, ok
}

// At returns the key and layer at position pos of the insertion order.
func (c *Contacts) At(pos int) (string, *Layer, error) {
	if pos < 0 || pos >= len(c.keys) {
		return "", nil, fmt.Errorf("At(%d) with %d layers: %w", pos, len(c.keys), ErrPositionOutOfRange)
	}
	k := c.keys[pos]

	return k, c.layers[k], nil
}

// AddLayer validates l and stores it under name, overwriting any existing
// layer with that name (the key keeps its position).
// Complexity: O(E) for validation.
func (c *Contacts) AddLayer(name string, l *Layer) error {
	if name == "" {
		return ErrEmptyLayerKey
	}
	if err := l.Validate(); err != nil {
		return fmt.Errorf("AddLayer(%q): %w", name, err)
	}
	if _, ok := c.layers[name]; !ok {
		c.keys = append(c.keys, name)
	}
	c.layers[name] = l

	return nil
}

// PopLayer removes the named layers. If any name is missing nothing is
// removed and ErrLayerNotFound is returned.
// Complexity: O(len(names) * L).
func (c *Contacts) PopLayer(names ...string) error {
	for _, name := range names {
		if _, ok := c.layers[name]; !ok {
			return fmt.Errorf("PopLayer(%q): %w", name, ErrLayerNotFound)
		}
	}
	for _, name := range names {
		delete(c.layers, name)
	}

	kept := c.keys[:0]
	for _, k := range c.keys {
		if _, ok := c.layers[k]; ok {
			kept = append(kept, k)
		}
	}
	c.keys = kept

	return nil
}

// Len returns the total number of edges over all layers. It is recomputed on
// every call.
// Complexity: O(L).
func (c *Contacts) Len() int {
	total := 0
	for _, k := range c.keys {
		total += c.layers[k].Len()
	}

	return total
}

// Validate validates every layer in key order.
func (c *Contacts) Validate() error {
	for _, k := range c.keys {
		if err := c.layers[k].Validate(); err != nil {
			return fmt.Errorf("layer %q: %w", k, err)
		}
	}

	return nil
}

// Clone returns a deep copy of the collection.
// Complexity: O(total edges).
func (c *Contacts) Clone() *Contacts {
	out := &Contacts{
		keys:   append([]string{}, c.keys...),
		layers: make(map[string]*Layer, len(c.keys)),
	}
	for _, k := range c.keys {
		out.layers[k] = c.layers[k].Clone()
	}

	return out
}

// Concat merges two collections layer by layer. Keys of a come first, then
// keys only present in b. Every layer of b is shifted by offset before its
// rows are appended, so b's agent indices land behind a's rows.
// Neither input is mutated.
// Complexity: O(total edges of a and b).
func Concat(a, b *Contacts, offset int32) (*Contacts, error) {
	out := a.Clone()
	for _, k := range b.keys {
		shifted := b.layers[k].Shift(offset)
		l, ok := out.layers[k]
		if !ok {
			if err := out.AddLayer(k, shifted); err != nil {
				return nil, fmt.Errorf("Concat: %w", err)
			}
			continue
		}
		if err := l.Append(shifted); err != nil {
			return nil, fmt.Errorf("Concat: layer %q: %w", k, err)
		}
	}

	return out, nil
}

// String lists the layer keys followed by each layer's rendering.
func (c *Contacts) String() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "Contacts(%s)\n", strings.Join(c.keys, ", "))
	for _, k := range c.keys {
		fmt.Fprintf(&sb, "\n%q: %s", k, c.layers[k].String())
	}

	return sb.String()
}
