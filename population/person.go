// SPDX-License-Identifier: MIT

package population

import "fmt"

// Person is a detached copy of one agent: its attribute values by kind and,
// per layer, the partners returned by FindContacts.
type Person struct {
	Index    int
	Ints     map[string]int64
	Floats   map[string]float64
	Bools    map[string]bool
	Contacts map[string][]int
}

// Person materializes agent i. It scans every edge of every layer, so it is
// meant for inspection and export of single agents, never for loops over the
// whole population.
// Complexity: O(fields + total edges).
func (p *Population) Person(i int) (*Person, error) {
	if i < 0 || i >= p.size {
		return nil, fmt.Errorf("Person(%d) with %d agents: %w", i, p.size, ErrIndexOutOfRange)
	}

	out := &Person{
		Index:    i,
		Ints:     make(map[string]int64),
		Floats:   make(map[string]float64),
		Bools:    make(map[string]bool),
		Contacts: make(map[string][]int, p.contacts.NumLayers()),
	}
	for _, f := range p.schema.fields {
		c := p.cols[f.Key]
		if i >= c.len() {
			return nil, fmt.Errorf("Person(%d): %q has %d values: %w", i, f.Key, c.len(), ErrLengthMismatch)
		}
		switch c.kind {
		case KindInt:
			out.Ints[f.Key] = c.ints[i]
		case KindFloat:
			out.Floats[f.Key] = c.floats[i]
		case KindBool:
			out.Bools[f.Key] = c.bools[i]
		}
	}
	for _, k := range p.contacts.Keys() {
		l, _ := p.contacts.Layer(k)
		out.Contacts[k] = l.FindContacts([]int{i})
	}

	return out, nil
}

// People materializes every agent in index order. Each call scans every
// edge, so the total cost grows with Len() * edges.
// Complexity: O(Len() * (fields + total edges)).
func (p *Population) People() ([]*Person, error) {
	out := make([]*Person, p.size)
	for i := range out {
		per, err := p.Person(i)
		if err != nil {
			return nil, err
		}
		out[i] = per
	}

	return out, nil
}

// FromPeople builds a population with one agent per snapshot, in slice
// order; Person.Index is ignored. A key absent from a snapshot keeps the
// fill value of its kind. A key the schema does not declare, or a value
// stored under the wrong kind, fails with ErrUnknownKey or ErrKindMismatch.
//
// Contacts start as one empty layer per schema layer key: partner lists
// carry each edge twice and cannot be turned back into edges unambiguously.
// Complexity: O(len(people) * fields).
func FromPeople(schema *Schema, people []*Person, opts ...Option) (*Population, error) {
	p, err := New(schema, len(people), opts...)
	if err != nil {
		return nil, fmt.Errorf("FromPeople: %w", err)
	}

	for i, per := range people {
		if per == nil {
			return nil, fmt.Errorf("FromPeople: person %d is nil: %w", i, ErrBadValue)
		}
		if err := p.checkPerson(per); err != nil {
			return nil, fmt.Errorf("FromPeople: person %d: %w", i, err)
		}
		for key, v := range per.Ints {
			p.cols[key].ints[i] = v
		}
		for key, v := range per.Floats {
			p.cols[key].floats[i] = v
		}
		for key, v := range per.Bools {
			p.cols[key].bools[i] = v
		}
	}

	return p, nil
}

// checkPerson verifies that every key of per is declared with the kind of
// the map holding it.
func (p *Population) checkPerson(per *Person) error {
	check := func(key string, want Kind) error {
		_, err := p.typed(key, want)
		return err
	}
	for key := range per.Ints {
		if err := check(key, KindInt); err != nil {
			return err
		}
	}
	for key := range per.Floats {
		if err := check(key, KindFloat); err != nil {
			return err
		}
	}
	for key := range per.Bools {
		if err := check(key, KindBool); err != nil {
			return err
		}
	}

	return nil
}
