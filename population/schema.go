// SPDX-License-Identifier: MIT

package population

import (
	"fmt"
	"math"
)

// KeyUID is the mandatory identity key. Concatenation renumbers it.
const KeyUID = "uid"

// Kind is the storage type of an attribute array.
type Kind uint8

const (
	KindInt   Kind = iota // int64 storage
	KindFloat             // float64 storage, NaN is the undefined sentinel
	KindBool              // bool storage
)

// String returns the lower-case kind name.
func (k Kind) String() string {
	switch k {
	case KindInt:
		return "int"
	case KindFloat:
		return "float"
	case KindBool:
		return "bool"
	default:
		return fmt.Sprintf("kind(%d)", uint8(k))
	}
}

// Group partitions the declared keys by meaning.
type Group uint8

const (
	GroupPerson   Group = iota // identity and person attributes
	GroupState                 // boolean disease-state flags
	GroupDate                  // event dates, undefined until the event
	GroupDuration              // durations, undefined until set
)

// String returns the lower-case group name.
func (g Group) String() string {
	switch g {
	case GroupPerson:
		return "person"
	case GroupState:
		return "state"
	case GroupDate:
		return "date"
	case GroupDuration:
		return "duration"
	default:
		return fmt.Sprintf("group(%d)", uint8(g))
	}
}

// Field declares one attribute array.
type Field struct {
	Key   string
	Group Group
	Kind  Kind
}

// sentinel reports whether undefined slots of this field hold NaN.
func (f Field) sentinel() bool {
	return f.Group == GroupDate || f.Group == GroupDuration
}

// fillFloat is the value written into new float slots.
func (f Field) fillFloat() float64 {
	if f.sentinel() {
		return math.NaN()
	}

	return 0
}

// Schema is the immutable declaration of a population's arrays and of the
// canonical contact-layer keys supplied by the parameter store.
type Schema struct {
	fields    []Field
	index     map[string]int
	layerKeys []string
}

// NewSchema validates and freezes a schema.
//
// Rules:
//   - keys are non-empty and unique across fields, layer keys are non-empty
//     and unique among themselves;
//   - a KindInt field named "uid" is present;
//   - state fields are KindBool, date and duration fields are KindFloat.
func NewSchema(fields []Field, layerKeys []string) (*Schema, error) {
	s := &Schema{
		fields:    append([]Field{}, fields...),
		index:     make(map[string]int, len(fields)),
		layerKeys: append([]string{}, layerKeys...),
	}
	for i, f := range s.fields {
		if f.Key == "" {
			return nil, fmt.Errorf("field %d: %w", i, ErrEmptyKey)
		}
		if _, dup := s.index[f.Key]; dup {
			return nil, fmt.Errorf("field %q: %w", f.Key, ErrDuplicateKey)
		}
		switch {
		case f.Group == GroupState && f.Kind != KindBool,
			f.sentinel() && f.Kind != KindFloat:
			return nil, fmt.Errorf("field %q: %s field of kind %s: %w", f.Key, f.Group, f.Kind, ErrBadField)
		}
		s.index[f.Key] = i
	}
	if i, ok := s.index[KeyUID]; !ok || s.fields[i].Kind != KindInt {
		return nil, ErrMissingUID
	}

	seen := make(map[string]bool, len(layerKeys))
	for _, k := range s.layerKeys {
		if k == "" {
			return nil, fmt.Errorf("layer key: %w", ErrEmptyKey)
		}
		if seen[k] {
			return nil, fmt.Errorf("layer key %q: %w", k, ErrDuplicateKey)
		}
		seen[k] = true
	}

	return s, nil
}

// Fields returns a copy of the declared fields in declaration order.
func (s *Schema) Fields() []Field {
	return append([]Field{}, s.fields...)
}

// Field returns the declaration of key.
func (s *Schema) Field(key string) (Field, bool) {
	i, ok := s.index[key]
	if !ok {
		return Field{}, false
	}

	return s.fields[i], true
}

// Has reports whether key is declared.
func (s *Schema) Has(key string) bool {
	_, ok := s.index[key]

	return ok
}

// Keys returns every declared key in declaration order.
func (s *Schema) Keys() []string {
	out := make([]string, len(s.fields))
	for i, f := range s.fields {
		out[i] = f.Key
	}

	return out
}

// KeysIn returns the keys of one group in declaration order.
func (s *Schema) KeysIn(g Group) []string {
	var out []string
	for _, f := range s.fields {
		if f.Group == g {
			out = append(out, f.Key)
		}
	}

	return out
}

// LayerKeys returns the canonical layer keys in declaration order.
func (s *Schema) LayerKeys() []string {
	return append([]string{}, s.layerKeys...)
}

// Equal reports whether both schemas declare the same fields in the same
// order and the same layer-key set.
func (s *Schema) Equal(o *Schema) bool {
	if s == o {
		return true
	}
	if s == nil || o == nil || len(s.fields) != len(o.fields) {
		return false
	}
	for i := range s.fields {
		if s.fields[i] != o.fields[i] {
			return false
		}
	}

	return sameKeySet(s.layerKeys, o.layerKeys)
}

// sameKeySet compares two key lists as sets.
func sameKeySet(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	set := make(map[string]bool, len(a))
	for _, k := range a {
		set[k] = true
	}
	for _, k := range b {
		if !set[k] {
			return false
		}
	}

	return true
}

// Standard state keys, in declaration order.
var defaultStates = []string{
	"susceptible", "naive", "exposed", "infectious", "symptomatic", "severe",
	"critical", "tested", "diagnosed", "recovered", "known_dead", "dead",
	"known_contact", "quarantined", "vaccinated",
}

// DefaultSchema declares the standard epidemic key set: identity and
// per-person probabilities, the state flags, one date per state (except
// susceptible and naive) plus date_pos_test and date_end_quarantine, and
// the progression durations.
func DefaultSchema(layerKeys ...string) (*Schema, error) {
	fields := []Field{
		{Key: KeyUID, Group: GroupPerson, Kind: KindInt},
		{Key: "age", Group: GroupPerson, Kind: KindFloat},
		{Key: "sex", Group: GroupPerson, Kind: KindInt},
		{Key: "symp_prob", Group: GroupPerson, Kind: KindFloat},
		{Key: "severe_prob", Group: GroupPerson, Kind: KindFloat},
		{Key: "crit_prob", Group: GroupPerson, Kind: KindFloat},
		{Key: "death_prob", Group: GroupPerson, Kind: KindFloat},
		{Key: "rel_trans", Group: GroupPerson, Kind: KindFloat},
		{Key: "rel_sus", Group: GroupPerson, Kind: KindFloat},
	}
	for _, st := range defaultStates {
		fields = append(fields, Field{Key: st, Group: GroupState, Kind: KindBool})
	}
	for _, st := range defaultStates {
		if st == "susceptible" || st == "naive" {
			continue
		}
		fields = append(fields, Field{Key: "date_" + st, Group: GroupDate, Kind: KindFloat})
	}
	fields = append(fields,
		Field{Key: "date_pos_test", Group: GroupDate, Kind: KindFloat},
		Field{Key: "date_end_quarantine", Group: GroupDate, Kind: KindFloat},
	)
	for _, d := range []string{"dur_exp2inf", "dur_inf2sym", "dur_sym2sev", "dur_sev2crit", "dur_disease"} {
		fields = append(fields, Field{Key: d, Group: GroupDuration, Kind: KindFloat})
	}

	return NewSchema(fields, layerKeys)
}
