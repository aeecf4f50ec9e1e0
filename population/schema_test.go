// SPDX-License-Identifier: MIT
package population_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/popnet/population"
)

func TestNewSchema_Rules(t *testing.T) {
	uid := population.Field{Key: "uid", Group: population.GroupPerson, Kind: population.KindInt}

	cases := []struct {
		name   string
		fields []population.Field
		layers []string
		want   error
	}{
		{"missing uid", []population.Field{{Key: "age", Kind: population.KindFloat}}, nil, population.ErrMissingUID},
		{"float uid", []population.Field{{Key: "uid", Kind: population.KindFloat}}, nil, population.ErrMissingUID},
		{"empty key", []population.Field{uid, {Key: ""}}, nil, population.ErrEmptyKey},
		{"duplicate key", []population.Field{uid, uid}, nil, population.ErrDuplicateKey},
		{"float state", []population.Field{uid, {Key: "dead", Group: population.GroupState, Kind: population.KindFloat}}, nil, population.ErrBadField},
		{"bool date", []population.Field{uid, {Key: "date_dead", Group: population.GroupDate, Kind: population.KindBool}}, nil, population.ErrBadField},
		{"int duration", []population.Field{uid, {Key: "dur", Group: population.GroupDuration, Kind: population.KindInt}}, nil, population.ErrBadField},
		{"empty layer key", []population.Field{uid}, []string{"h", ""}, population.ErrEmptyKey},
		{"duplicate layer key", []population.Field{uid}, []string{"h", "h"}, population.ErrDuplicateKey},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := population.NewSchema(tc.fields, tc.layers)
			require.ErrorIs(t, err, tc.want)
		})
	}
}

func TestDefaultSchema_Groups(t *testing.T) {
	s, err := population.DefaultSchema("h", "s", "w", "c")
	require.NoError(t, err)

	assert.Equal(t, []string{"h", "s", "w", "c"}, s.LayerKeys())
	assert.Equal(t, "uid", s.KeysIn(population.GroupPerson)[0])
	assert.Len(t, s.KeysIn(population.GroupPerson), 9)
	assert.Len(t, s.KeysIn(population.GroupState), 15)
	assert.Len(t, s.KeysIn(population.GroupDate), 15)
	assert.Equal(t, []string{"dur_exp2inf", "dur_inf2sym", "dur_sym2sev", "dur_sev2crit", "dur_disease"},
		s.KeysIn(population.GroupDuration))

	assert.NotContains(t, s.KeysIn(population.GroupDate), "date_susceptible")
	assert.NotContains(t, s.KeysIn(population.GroupDate), "date_naive")
	assert.Contains(t, s.KeysIn(population.GroupDate), "date_pos_test")
	assert.Contains(t, s.KeysIn(population.GroupDate), "date_end_quarantine")

	f, ok := s.Field("date_dead")
	require.True(t, ok)
	assert.Equal(t, population.KindFloat, f.Kind)
	_, ok = s.Field("nope")
	assert.False(t, ok)
	assert.Len(t, s.Keys(), len(s.Fields()))
}

func TestSchema_Equal(t *testing.T) {
	a, _ := population.DefaultSchema("h", "s")
	b, _ := population.DefaultSchema("s", "h")
	c, _ := population.DefaultSchema("h")

	assert.True(t, a.Equal(a))
	assert.True(t, a.Equal(b), "layer keys compare as a set")
	assert.False(t, a.Equal(c))
	assert.False(t, a.Equal(nil))
}

func TestKindGroupString(t *testing.T) {
	assert.Equal(t, "int", population.KindInt.String())
	assert.Equal(t, "float", population.KindFloat.String())
	assert.Equal(t, "bool", population.KindBool.String())
	assert.Equal(t, "duration", population.GroupDuration.String())
	assert.Equal(t, "kind(9)", population.Kind(9).String())
}
