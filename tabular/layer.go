// SPDX-License-Identifier: MIT
// File: layer.go
// Role: Layer and Contacts ⇄ Arrow record.
// Determinism:
//   - Contacts records list layers in key order and rows in layer order;
//     import restores both.

package tabular

import (
	"fmt"
	"strconv"

	"github.com/apache/arrow-go/v18/arrow"
	"github.com/apache/arrow-go/v18/arrow/array"
	"github.com/apache/arrow-go/v18/arrow/memory"

	"github.com/katalvlaran/popnet/contacts"
)

// ColLayer names the layer-key column of a contacts record.
const ColLayer = "layer"

// MetaLayerKeys prefixes the schema metadata entries holding the ordered
// layer keys ("popnet.layer.0", "popnet.layer.1", ...).
const MetaLayerKeys = "popnet.layer."

var edgeFields = []arrow.Field{
	{Name: contacts.ColP1, Type: arrow.PrimitiveTypes.Int32},
	{Name: contacts.ColP2, Type: arrow.PrimitiveTypes.Int32},
	{Name: contacts.ColBeta, Type: arrow.PrimitiveTypes.Float32},
}

// LayerSchema is the Arrow schema of a single-layer record.
var LayerSchema = arrow.NewSchema(edgeFields, nil)

// appendLayer writes the rows of l into the p1/p2/beta builders starting at
// field offset off.
func appendLayer(b *array.RecordBuilder, off int, l *contacts.Layer) {
	b.Field(off).(*array.Int32Builder).AppendValues(l.P1, nil)
	b.Field(off+1).(*array.Int32Builder).AppendValues(l.P2, nil)
	b.Field(off+2).(*array.Float32Builder).AppendValues(l.Beta, nil)
}

// LayerRecord exports a validated layer. A nil allocator selects
// memory.DefaultAllocator.
// Complexity: O(E).
func LayerRecord(mem memory.Allocator, l *contacts.Layer) (arrow.Record, error) {
	if mem == nil {
		mem = memory.DefaultAllocator
	}
	if err := l.Validate(); err != nil {
		return nil, fmt.Errorf("LayerRecord: %w", err)
	}

	b := array.NewRecordBuilder(mem, LayerSchema)
	defer b.Release()
	appendLayer(b, 0, l)

	return b.NewRecord(), nil
}

// edgeColumns reads the typed p1, p2 and beta columns of rec.
func edgeColumns(rec arrow.Record) (p1, p2 *array.Int32, beta *array.Float32, err error) {
	get := func(name string) (arrow.Array, error) {
		col, err := column(rec, name)
		if err != nil {
			return nil, err
		}
		if col.NullN() > 0 {
			return nil, columnTypeError(name, col)
		}
		return col, nil
	}

	c1, err := get(contacts.ColP1)
	if err != nil {
		return nil, nil, nil, err
	}
	c2, err := get(contacts.ColP2)
	if err != nil {
		return nil, nil, nil, err
	}
	cb, err := get(contacts.ColBeta)
	if err != nil {
		return nil, nil, nil, err
	}

	var ok bool
	if p1, ok = c1.(*array.Int32); !ok {
		return nil, nil, nil, columnTypeError(contacts.ColP1, c1)
	}
	if p2, ok = c2.(*array.Int32); !ok {
		return nil, nil, nil, columnTypeError(contacts.ColP2, c2)
	}
	if beta, ok = cb.(*array.Float32); !ok {
		return nil, nil, nil, columnTypeError(contacts.ColBeta, cb)
	}

	return p1, p2, beta, nil
}

// LayerFromRecord rebuilds a validated layer from a p1/p2/beta record.
// Complexity: O(E).
func LayerFromRecord(rec arrow.Record) (*contacts.Layer, error) {
	if rec == nil {
		return nil, fmt.Errorf("LayerFromRecord: %w", ErrNilInput)
	}
	p1, p2, beta, err := edgeColumns(rec)
	if err != nil {
		return nil, fmt.Errorf("LayerFromRecord: %w", err)
	}

	l := &contacts.Layer{
		P1:   append([]int32{}, p1.Int32Values()...),
		P2:   append([]int32{}, p2.Int32Values()...),
		Beta: append([]float32{}, beta.Float32Values()...),
	}
	if err = l.Validate(); err != nil {
		return nil, fmt.Errorf("LayerFromRecord: %w", err)
	}

	return l, nil
}

// ContactsRecord exports every layer of c into one record with a leading
// layer-key column. The ordered key list, including empty layers, is kept in
// the schema metadata.
// Complexity: O(total edges).
func ContactsRecord(mem memory.Allocator, c *contacts.Contacts) (arrow.Record, error) {
	if c == nil {
		return nil, fmt.Errorf("ContactsRecord: %w", ErrNilInput)
	}
	if mem == nil {
		mem = memory.DefaultAllocator
	}
	if err := c.Validate(); err != nil {
		return nil, fmt.Errorf("ContactsRecord: %w", err)
	}

	keys := c.Keys()
	metaKeys := make([]string, len(keys))
	for i := range keys {
		metaKeys[i] = MetaLayerKeys + strconv.Itoa(i)
	}
	md := arrow.NewMetadata(metaKeys, keys)
	fields := append([]arrow.Field{{Name: ColLayer, Type: arrow.BinaryTypes.String}}, edgeFields...)
	b := array.NewRecordBuilder(mem, arrow.NewSchema(fields, &md))
	defer b.Release()

	names := b.Field(0).(*array.StringBuilder)
	for _, k := range keys {
		l, _ := c.Layer(k)
		for i := 0; i < l.Len(); i++ {
			names.Append(k)
		}
		appendLayer(b, 1, l)
	}

	return b.NewRecord(), nil
}

// ContactsFromRecord rebuilds a collection from a ContactsRecord. Keys come
// from the schema metadata when present, then from the layer column in
// first-seen order.
// Complexity: O(total edges).
func ContactsFromRecord(rec arrow.Record) (*contacts.Contacts, error) {
	if rec == nil {
		return nil, fmt.Errorf("ContactsFromRecord: %w", ErrNilInput)
	}
	col, err := column(rec, ColLayer)
	if err != nil {
		return nil, fmt.Errorf("ContactsFromRecord: %w", err)
	}
	names, ok := col.(*array.String)
	if !ok || names.NullN() > 0 {
		return nil, fmt.Errorf("ContactsFromRecord: %w", columnTypeError(ColLayer, col))
	}
	p1, p2, beta, err := edgeColumns(rec)
	if err != nil {
		return nil, fmt.Errorf("ContactsFromRecord: %w", err)
	}

	out := contacts.New(metaLayerKeys(rec.Schema().Metadata())...)
	batches := make(map[string]*contacts.Layer)
	var order []string
	for i := 0; i < names.Len(); i++ {
		k := names.Value(i)
		l, ok := batches[k]
		if !ok {
			l = contacts.NewLayer()
			batches[k] = l
			order = append(order, k)
		}
		l.P1 = append(l.P1, p1.Value(i))
		l.P2 = append(l.P2, p2.Value(i))
		l.Beta = append(l.Beta, beta.Value(i))
	}
	for _, k := range order {
		if cur, ok := out.Layer(k); ok {
			if err = cur.Append(batches[k]); err != nil {
				return nil, fmt.Errorf("ContactsFromRecord: layer %q: %w", k, err)
			}
			continue
		}
		if err = out.AddLayer(k, batches[k]); err != nil {
			return nil, fmt.Errorf("ContactsFromRecord: %w", err)
		}
	}

	return out, nil
}

// metaLayerKeys reads the ordered keys stored by ContactsRecord.
func metaLayerKeys(md arrow.Metadata) []string {
	var keys []string
	for i := 0; ; i++ {
		idx := md.FindKey(MetaLayerKeys + strconv.Itoa(i))
		if idx < 0 {
			return keys
		}
		keys = append(keys, md.Values()[idx])
	}
}
