// SPDX-License-Identifier: MIT
// File: population.go
// Role: Population ⇄ Arrow record, one column per declared key.
// Policy:
//   - Only strictly valid populations are exported.
//   - Float NaN ⇄ null; int and bool columns must be null-free.
//   - Record columns the schema does not declare are ignored on import.

package tabular

import (
	"fmt"
	"math"

	"github.com/apache/arrow-go/v18/arrow"
	"github.com/apache/arrow-go/v18/arrow/array"
	"github.com/apache/arrow-go/v18/arrow/memory"

	"github.com/katalvlaran/popnet/population"
)

// arrowType maps a storage kind to its Arrow column type.
func arrowType(k population.Kind) arrow.DataType {
	switch k {
	case population.KindInt:
		return arrow.PrimitiveTypes.Int64
	case population.KindFloat:
		return arrow.PrimitiveTypes.Float64
	default:
		return arrow.FixedWidthTypes.Boolean
	}
}

// PopulationSchema returns the Arrow schema PopulationRecord produces for s.
func PopulationSchema(s *population.Schema) *arrow.Schema {
	fields := s.Fields()
	out := make([]arrow.Field, len(fields))
	for i, f := range fields {
		out[i] = arrow.Field{Name: f.Key, Type: arrowType(f.Kind), Nullable: f.Kind == population.KindFloat}
	}

	return arrow.NewSchema(out, nil)
}

// PopulationRecord exports every declared array of p at full length,
// including uid. A nil allocator selects memory.DefaultAllocator.
// Complexity: O(n * fields).
func PopulationRecord(mem memory.Allocator, p *population.Population) (arrow.Record, error) {
	if p == nil {
		return nil, fmt.Errorf("PopulationRecord: %w", ErrNilInput)
	}
	if mem == nil {
		mem = memory.DefaultAllocator
	}
	if err := p.Validate(true); err != nil {
		return nil, fmt.Errorf("PopulationRecord: %w", err)
	}

	b := array.NewRecordBuilder(mem, PopulationSchema(p.Schema()))
	defer b.Release()

	for i, f := range p.Schema().Fields() {
		switch f.Kind {
		case population.KindInt:
			v, err := p.Ints(f.Key)
			if err != nil {
				return nil, err
			}
			b.Field(i).(*array.Int64Builder).AppendValues(v, nil)
		case population.KindFloat:
			v, err := p.Floats(f.Key)
			if err != nil {
				return nil, err
			}
			valid := make([]bool, len(v))
			for j, x := range v {
				valid[j] = !math.IsNaN(x)
			}
			b.Field(i).(*array.Float64Builder).AppendValues(v, valid)
		case population.KindBool:
			v, err := p.Bools(f.Key)
			if err != nil {
				return nil, err
			}
			b.Field(i).(*array.BooleanBuilder).AppendValues(v, nil)
		}
	}

	return b.NewRecord(), nil
}

// PopulationFromRecord rebuilds a population of rec.NumRows() agents from
// the columns named by schema. Contacts start as one empty layer per schema
// layer key; load them separately with ContactsFromRecord and AddContacts.
// Complexity: O(n * fields).
func PopulationFromRecord(schema *population.Schema, rec arrow.Record, opts ...population.Option) (*population.Population, error) {
	if schema == nil || rec == nil {
		return nil, fmt.Errorf("PopulationFromRecord: %w", ErrNilInput)
	}
	p, err := population.New(schema, int(rec.NumRows()), opts...)
	if err != nil {
		return nil, fmt.Errorf("PopulationFromRecord: %w", err)
	}

	for _, f := range schema.Fields() {
		col, err := column(rec, f.Key)
		if err != nil {
			return nil, fmt.Errorf("PopulationFromRecord: %w", err)
		}
		values, err := decode(f, col)
		if err != nil {
			return nil, fmt.Errorf("PopulationFromRecord: %w", err)
		}
		if err = p.Set(f.Key, values); err != nil {
			return nil, fmt.Errorf("PopulationFromRecord: %w", err)
		}
	}

	return p, nil
}

// column returns the first column named name.
func column(rec arrow.Record, name string) (arrow.Array, error) {
	idx := rec.Schema().FieldIndices(name)
	if len(idx) == 0 {
		return nil, fmt.Errorf("%q: %w", name, ErrMissingColumn)
	}

	return rec.Column(idx[0]), nil
}

// decode converts one Arrow column into the slice Set expects for f.
func decode(f population.Field, col arrow.Array) (any, error) {
	switch f.Kind {
	case population.KindInt:
		a, ok := col.(*array.Int64)
		if !ok || a.NullN() > 0 {
			return nil, columnTypeError(f.Key, col)
		}
		return a.Int64Values(), nil
	case population.KindFloat:
		a, ok := col.(*array.Float64)
		if !ok {
			return nil, columnTypeError(f.Key, col)
		}
		out := append([]float64{}, a.Float64Values()...)
		for i := range out {
			if a.IsNull(i) {
				out[i] = math.NaN()
			}
		}
		return out, nil
	default:
		a, ok := col.(*array.Boolean)
		if !ok || a.NullN() > 0 {
			return nil, columnTypeError(f.Key, col)
		}
		out := make([]bool, a.Len())
		for i := range out {
			out[i] = a.Value(i)
		}
		return out, nil
	}
}

func columnTypeError(name string, col arrow.Array) error {
	return fmt.Errorf("%q: %s with %d nulls: %w", name, col.DataType(), col.NullN(), ErrColumnType)
}
