// SPDX-License-Identifier: MIT
package population_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/popnet/contacts"
	"github.com/katalvlaran/popnet/population"
)

// assertLengths checks that every declared array has Len() values.
func assertLengths(t *testing.T, p *population.Population) {
	t.Helper()
	for _, k := range p.Keys() {
		v, err := p.Values(k)
		require.NoError(t, err)
		assert.Len(t, v, p.Len(), k)
	}
}

func TestValidate_IdempotentOnValid(t *testing.T) {
	p := newPop(t, 4)
	require.NoError(t, p.AddContacts([][]float64{{0, 1}, {2, 3}}))
	before := p.Clone()

	require.NoError(t, p.Validate(true))
	require.NoError(t, p.Validate(false))

	for _, k := range p.Keys() {
		want, _ := before.Values(k)
		got, _ := p.Values(k)
		assert.Equal(t, nanSafe(want), nanSafe(got), k)
	}
	assert.Equal(t, before.Contacts().Len(), p.Contacts().Len())
}

// nanSafe replaces NaN by a marker so slices compare with assert.Equal.
func nanSafe(v []float64) []float64 {
	out := make([]float64, len(v))
	for i, x := range v {
		if math.IsNaN(x) {
			x = -1e300
		}
		out[i] = x
	}

	return out
}

func TestValidate_StrictLengthMismatch(t *testing.T) {
	p := newPop(t, 3)
	require.NoError(t, p.Set("age", []float64{1, 2}, population.WithoutLengthCheck()))

	err := p.Validate(true)
	require.ErrorIs(t, err, population.ErrLengthMismatch)
	assert.Contains(t, err.Error(), `"age"`)
}

func TestValidate_NonStrictRepairs(t *testing.T) {
	p := newPop(t, 3)
	require.NoError(t, p.Set("age", []float64{1, 2}, population.WithoutLengthCheck()))
	require.NoError(t, p.Set("date_exposed", []float64{1, 2, 3, 4, 5}, population.WithoutLengthCheck()))

	require.NoError(t, p.Validate(false))
	assertLengths(t, p)

	age, _ := p.Floats("age")
	assert.Equal(t, []float64{1, 2, 0}, age)
	dates, _ := p.Floats("date_exposed")
	assert.Equal(t, []float64{1, 2, 3}, dates)
}

func TestValidate_LayerKeyMismatchAlwaysFatal(t *testing.T) {
	p := newPop(t, 3, "h", "s")
	require.NoError(t, p.Contacts().PopLayer("s"))
	assert.ErrorIs(t, p.Validate(true), population.ErrSchemaMismatch)
	assert.ErrorIs(t, p.Validate(false), population.ErrSchemaMismatch)

	p = newPop(t, 3, "h")
	require.NoError(t, p.Contacts().AddLayer("x", contacts.NewLayer()))
	assert.ErrorIs(t, p.Validate(false), population.ErrSchemaMismatch)
}

func TestValidate_BrokenLayer(t *testing.T) {
	p := newPop(t, 3)
	h, _ := p.Contacts().Layer("h")
	h.P1 = append(h.P1, 1)
	assert.ErrorIs(t, p.Validate(false), contacts.ErrLengthMismatch)
}

func TestResize_GrowAndShrink(t *testing.T) {
	p := newPop(t, 2)
	require.NoError(t, p.Set("age", []float64{30, 40}))
	require.NoError(t, p.Set("exposed", []bool{true, true}))

	require.NoError(t, p.Resize(4))
	assert.Equal(t, 4, p.Len())
	assertLengths(t, p)

	age, _ := p.Floats("age")
	assert.Equal(t, []float64{30, 40, 0, 0}, age)
	exp, _ := p.Bools("exposed")
	assert.Equal(t, []bool{true, true, false, false}, exp)
	uid, _ := p.Ints("uid")
	assert.Equal(t, []int64{0, 1, 0, 0}, uid)
	undef, _ := p.Undefined("date_exposed")
	assert.Equal(t, []int{0, 1, 2, 3}, undef)

	require.NoError(t, p.Resize(1))
	age, _ = p.Floats("age")
	assert.Equal(t, []float64{30}, age)
	require.NoError(t, p.Validate(true))
}

func TestResize_SelectedKeys(t *testing.T) {
	p := newPop(t, 2)
	require.NoError(t, p.Resize(3, "age"))
	assert.Equal(t, 3, p.Len())
	assert.ErrorIs(t, p.Validate(true), population.ErrLengthMismatch)

	require.NoError(t, p.Validate(false))
	assertLengths(t, p)
}

func TestResize_Errors(t *testing.T) {
	p := newPop(t, 2)
	assert.ErrorIs(t, p.Resize(-1), population.ErrNegativeSize)
	assert.ErrorIs(t, p.Resize(3, "age", "typo"), population.ErrUnknownKey)
	assert.Equal(t, 2, p.Len(), "failed resize changes nothing")
	age, _ := p.Floats("age")
	assert.Len(t, age, 2)
}
