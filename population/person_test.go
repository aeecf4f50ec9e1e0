// SPDX-License-Identifier: MIT
package population_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/popnet/matrix"
	"github.com/katalvlaran/popnet/population"
)

func TestPerson_ScenarioFiveAgents(t *testing.T) {
	p := newPop(t, 5)
	require.NoError(t, p.AddContacts([][]float64{{0, 1}, {1, 2}}))

	one, err := p.Person(1)
	require.NoError(t, err)
	assert.Equal(t, []int{0, 2}, one.Contacts["h"])

	h, _ := p.Contacts().Layer("h")
	popped, err := h.PopInds([]int{0})
	require.NoError(t, err)
	one, _ = p.Person(1)
	assert.Equal(t, []int{2}, one.Contacts["h"])

	require.NoError(t, h.Append(popped))
	one, _ = p.Person(1)
	assert.Equal(t, []int{0, 2}, one.Contacts["h"])
}

func TestPerson_CopiesAttributes(t *testing.T) {
	p := newPop(t, 3)
	require.NoError(t, p.Set("age", []float64{5, 6, 7}))
	require.NoError(t, p.Set("exposed", []bool{false, true, false}))

	per, err := p.Person(1)
	require.NoError(t, err)
	assert.Equal(t, 1, per.Index)
	assert.Equal(t, int64(1), per.Ints["uid"])
	assert.Equal(t, 6.0, per.Floats["age"])
	assert.True(t, per.Bools["exposed"])
	assert.True(t, math.IsNaN(per.Floats["date_exposed"]))
	assert.Empty(t, per.Contacts["h"])

	per.Floats["age"] = 99
	age, _ := p.Floats("age")
	assert.Equal(t, 6.0, age[1])
}

func TestPerson_OutOfRange(t *testing.T) {
	p := newPop(t, 2)
	_, err := p.Person(2)
	assert.ErrorIs(t, err, population.ErrIndexOutOfRange)
	_, err = p.Person(-1)
	assert.ErrorIs(t, err, population.ErrIndexOutOfRange)
}

func TestValuesAndGetMany(t *testing.T) {
	p := newPop(t, 3)
	require.NoError(t, p.Set("uid", []int{10, 11, 12}))
	require.NoError(t, p.Set("age", []float64{1.5, 2.5, 3.5}))
	require.NoError(t, p.Set("exposed", []bool{true, false, true}))

	v, err := p.Values("exposed")
	require.NoError(t, err)
	assert.Equal(t, []float64{1, 0, 1}, v)
	_, err = p.Values("typo")
	assert.ErrorIs(t, err, population.ErrUnknownKey)

	m, err := p.GetMany("age", "exposed")
	require.NoError(t, err)
	assert.Equal(t, 3, m.Rows())
	assert.Equal(t, []string{"age", "exposed"}, m.Labels())
	row, _ := m.Row(2)
	assert.Equal(t, []float64{3.5, 1}, row)

	_, err = p.GetMany("typo")
	assert.ErrorIs(t, err, population.ErrUnknownKey)

	full, err := p.ToMatrix()
	require.NoError(t, err)
	assert.Equal(t, len(p.Keys()), full.Cols())
	j, err := full.LabelIndex("uid")
	require.NoError(t, err)
	uid, _ := full.Col(j)
	assert.Equal(t, []float64{0, 1, 2}, uid, "uid column holds row indices")

	_, err = newPop(t, 0).GetMany()
	assert.ErrorIs(t, err, matrix.ErrInvalidDimensions)
}

func TestFromPeople_RoundTrip(t *testing.T) {
	p := newPop(t, 3)
	require.NoError(t, p.Set("age", []float64{5, 6, 7}))
	require.NoError(t, p.Set("exposed", []bool{false, true, false}))
	require.NoError(t, p.AddContacts([][]float64{{0, 1}}))

	people, err := p.People()
	require.NoError(t, err)
	require.Len(t, people, 3)
	assert.Equal(t, []int{1}, people[0].Contacts["h"])

	// reverse order: rows follow the slice, Index is ignored
	people[0], people[2] = people[2], people[0]
	q, err := population.FromPeople(p.Schema(), people)
	require.NoError(t, err)
	assert.Equal(t, 3, q.Len())

	uid, _ := q.Ints("uid")
	assert.Equal(t, []int64{2, 1, 0}, uid)
	age, _ := q.Floats("age")
	assert.Equal(t, []float64{7, 6, 5}, age)
	exposed, _ := q.Bools("exposed")
	assert.Equal(t, []bool{false, true, false}, exposed)
	dates, _ := q.Floats("date_exposed")
	assert.True(t, math.IsNaN(dates[0]))

	h, ok := q.Contacts().Layer("h")
	require.True(t, ok)
	assert.Equal(t, 0, h.Len())
}

func TestFromPeople_MissingKeysKeepFill(t *testing.T) {
	p := newPop(t, 1)
	q, err := population.FromPeople(p.Schema(), []*population.Person{
		{Floats: map[string]float64{"age": 40}},
		{},
	})
	require.NoError(t, err)

	age, _ := q.Floats("age")
	assert.Equal(t, []float64{40, 0}, age)
	dates, _ := q.Floats("date_exposed")
	assert.True(t, math.IsNaN(dates[0]))
	assert.True(t, math.IsNaN(dates[1]))
}

func TestFromPeople_Errors(t *testing.T) {
	p := newPop(t, 1)

	_, err := population.FromPeople(p.Schema(), []*population.Person{nil})
	assert.ErrorIs(t, err, population.ErrBadValue)

	_, err = population.FromPeople(p.Schema(), []*population.Person{
		{Floats: map[string]float64{"no_such": 1}},
	})
	assert.ErrorIs(t, err, population.ErrUnknownKey)

	_, err = population.FromPeople(p.Schema(), []*population.Person{
		{Ints: map[string]int64{"age": 1}},
	})
	assert.ErrorIs(t, err, population.ErrKindMismatch)

	_, err = population.FromPeople(nil, nil)
	assert.ErrorIs(t, err, population.ErrSchemaNil)
}

func TestFromPeople_Empty(t *testing.T) {
	p := newPop(t, 1)
	q, err := population.FromPeople(p.Schema(), nil)
	require.NoError(t, err)
	assert.Equal(t, 0, q.Len())
}
