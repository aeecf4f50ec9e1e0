// SPDX-License-Identifier: MIT
package population_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/popnet/contacts"
	"github.com/katalvlaran/popnet/population"
)

func TestAddContacts_ColumnsFillBetaForNewRowsOnly(t *testing.T) {
	p := newPop(t, 5)
	require.NoError(t, p.AddContacts(contacts.Columns{
		"p1": []int{0}, "p2": []int{1}, "beta": []float64{0.3},
	}))
	require.NoError(t, p.AddContacts(contacts.Columns{
		"p1": []int{1, 2}, "p2": []int{2, 3},
	}, population.WithBeta(0.7)))

	h, _ := p.Contacts().Layer("h")
	assert.Equal(t, []int32{0, 1, 2}, h.P1)
	assert.Equal(t, []float32{0.3, 0.7, 0.7}, h.Beta)

	require.NoError(t, p.AddContacts(contacts.Columns{"p1": []int{3}, "p2": []int{4}}))
	assert.Equal(t, []float32{0.3, 0.7, 0.7, 1.0}, h.Beta)
}

func TestAddContacts_Shapes(t *testing.T) {
	t.Run("layer", func(t *testing.T) {
		p := newPop(t, 3, "h", "s")
		l, err := contacts.FromRows([][]float64{{0, 1, 0.2}})
		require.NoError(t, err)
		require.NoError(t, p.AddContacts(l, population.WithLayerKey("s")))
		s, _ := p.Contacts().Layer("s")
		assert.Equal(t, 1, s.Len())

		// The stored rows are a copy of the input layer.
		l.P1[0] = 2
		assert.Equal(t, int32(0), s.P1[0])
	})
	t.Run("rows", func(t *testing.T) {
		p := newPop(t, 3)
		require.NoError(t, p.AddContacts([][]float64{{0, 1}, {1, 2, 0.5}}))
		h, _ := p.Contacts().Layer("h")
		assert.Equal(t, []float32{1, 0.5}, h.Beta)
	})
	t.Run("map", func(t *testing.T) {
		p := newPop(t, 3)
		require.NoError(t, p.AddContacts(map[string]any{"p1": []int32{0}, "p2": []int32{2}}))
		assert.Equal(t, 1, p.Contacts().Len())
	})
	t.Run("contacts", func(t *testing.T) {
		p := newPop(t, 3, "h", "s")
		c := contacts.New("s", "w")
		s, _ := c.Layer("s")
		require.NoError(t, s.Append(&contacts.Layer{P1: []int32{0}, P2: []int32{1}, Beta: []float32{1}}))
		require.NoError(t, p.AddContacts(c))
		assert.Equal(t, []string{"h", "s", "w"}, p.Contacts().Keys())
		assert.Equal(t, 1, p.Contacts().Len())
		assert.ErrorIs(t, p.Validate(false), population.ErrSchemaMismatch)
	})
	t.Run("partner lists", func(t *testing.T) {
		p := newPop(t, 3)
		require.NoError(t, p.AddContacts([][]int{{1, 2}, {}, {0}}, population.WithBeta(0.4)))
		h, _ := p.Contacts().Layer("h")
		assert.Equal(t, []int32{0, 0, 2}, h.P1)
		assert.Equal(t, []int32{1, 2, 0}, h.P2, "listed order, no mirroring")
		assert.Equal(t, []float32{0.4, 0.4, 0.4}, h.Beta)
	})
	t.Run("per-agent layer maps", func(t *testing.T) {
		p := newPop(t, 3, "h", "s")
		require.NoError(t, p.AddContacts([]map[string][]int{
			{"h": {1}, "s": {2}},
			{"h": {2}},
			{},
		}))
		h, _ := p.Contacts().Layer("h")
		s, _ := p.Contacts().Layer("s")
		assert.Equal(t, []int32{0, 1}, h.P1)
		assert.Equal(t, []int32{1, 2}, h.P2)
		assert.Equal(t, []int32{0}, s.P1)
		require.NoError(t, p.Validate(true))
	})
}

func TestAddContacts_Errors(t *testing.T) {
	p := newPop(t, 3)
	require.NoError(t, p.AddContacts([][]float64{{0, 1}}))

	assert.ErrorIs(t, p.AddContacts("nope"), population.ErrUnsupportedContacts)
	assert.ErrorIs(t, p.AddContacts(contacts.Columns{"p1": []int{0}}), contacts.ErrMissingColumn)
	assert.ErrorIs(t, p.AddContacts([][]float64{{0, 1.5}}), contacts.ErrBadColumn)
	assert.ErrorIs(t, p.AddContacts([][]int{{-1}}), contacts.ErrNegativeIndex)
	assert.ErrorIs(t, p.AddContacts(&contacts.Layer{P1: []int32{0}}), contacts.ErrLengthMismatch)

	// Nothing from the failed calls reached the layer.
	assert.Equal(t, 1, p.Contacts().Len())

	s, err := population.NewSchema([]population.Field{{Key: "uid", Kind: population.KindInt}}, nil)
	require.NoError(t, err)
	q, err := population.New(s, 2)
	require.NoError(t, err)
	assert.ErrorIs(t, q.AddContacts([][]float64{{0, 1}}), population.ErrNoLayerKey)
	require.NoError(t, q.AddContacts([][]float64{{0, 1}}, population.WithLayerKey("x")))
}

func TestAddContacts_AtomicAcrossLayers(t *testing.T) {
	p := newPop(t, 3, "h", "s")
	c := contacts.New("h", "s")
	h, _ := c.Layer("h")
	h.P1, h.P2, h.Beta = []int32{0}, []int32{1}, []float32{1}
	s, _ := c.Layer("s")
	s.P1, s.P2, s.Beta = []int32{0}, []int32{-1}, []float32{1}

	assert.ErrorIs(t, p.AddContacts(c), contacts.ErrNegativeIndex)
	assert.Equal(t, 0, p.Contacts().Len())
}

func TestMakeEdgeList_KeyOrder(t *testing.T) {
	c, err := population.MakeEdgeList([]string{"h"}, []map[string][]int{
		{"w": {1}, "c": {2}},
		{"s": {0}, "h": {2}},
		{"c": {0}},
	}, population.WithBeta(2))
	require.NoError(t, err)

	assert.Equal(t, []string{"h", "c", "w", "s"}, c.Keys())
	w, _ := c.Layer("w")
	assert.Equal(t, []int32{0}, w.P1)
	assert.Equal(t, []int32{1}, w.P2)
	assert.Equal(t, []float32{2}, w.Beta)
	cl, _ := c.Layer("c")
	assert.Equal(t, []int32{0, 2}, cl.P1)
	assert.Equal(t, 5, c.Len())
}
