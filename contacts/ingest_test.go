// SPDX-License-Identifier: MIT
package contacts_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/popnet/contacts"
)

func TestFromColumns_CastsAndFillsBeta(t *testing.T) {
	l, err := contacts.FromColumns(contacts.Columns{
		"p1": []int{0, 1, 2},
		"p2": []float64{1, 2, 0},
	}, contacts.WithBeta(0.3))
	require.NoError(t, err)
	assert.Equal(t, []int32{0, 1, 2}, l.P1)
	assert.Equal(t, []int32{1, 2, 0}, l.P2)
	assert.Equal(t, []float32{0.3, 0.3, 0.3}, l.Beta)
}

func TestFromColumns_DefaultBeta(t *testing.T) {
	l, err := contacts.FromColumns(contacts.Columns{
		"p1": []int64{4},
		"p2": []uint16{5},
	})
	require.NoError(t, err)
	assert.Equal(t, []float32{contacts.DefaultBeta}, l.Beta)
}

func TestFromColumns_KeepsSuppliedBeta(t *testing.T) {
	l, err := contacts.FromColumns(contacts.Columns{
		"p1":   []int32{0, 1},
		"p2":   []int32{1, 0},
		"beta": []float64{0.25, 0.75},
	}, contacts.WithBeta(9))
	require.NoError(t, err)
	assert.Equal(t, []float32{0.25, 0.75}, l.Beta)
}

func TestFromColumns_Errors(t *testing.T) {
	_, err := contacts.FromColumns(contacts.Columns{"p1": []int{0}})
	assert.ErrorIs(t, err, contacts.ErrMissingColumn)

	_, err = contacts.FromColumns(contacts.Columns{"p1": []int{0}, "p2": []int{1}, "dur": []int{3}})
	assert.ErrorIs(t, err, contacts.ErrUnknownColumn)

	_, err = contacts.FromColumns(contacts.Columns{"p1": []float64{0.5}, "p2": []int{1}})
	assert.ErrorIs(t, err, contacts.ErrBadColumn)

	_, err = contacts.FromColumns(contacts.Columns{"p1": []int{-3}, "p2": []int{1}})
	assert.ErrorIs(t, err, contacts.ErrBadColumn)

	_, err = contacts.FromColumns(contacts.Columns{"p1": []string{"a"}, "p2": []int{1}})
	assert.ErrorIs(t, err, contacts.ErrBadColumn)

	_, err = contacts.FromColumns(contacts.Columns{"p1": []int{0, 1}, "p2": []int{1}})
	assert.ErrorIs(t, err, contacts.ErrLengthMismatch)
}

func TestFromRows(t *testing.T) {
	l, err := contacts.FromRows([][]float64{{0, 1}, {1, 2, 0.5}})
	require.NoError(t, err)
	assert.Equal(t, []int32{0, 1}, l.P1)
	assert.Equal(t, []int32{1, 2}, l.P2)
	assert.Equal(t, []float32{1, 0.5}, l.Beta)

	_, err = contacts.FromRows([][]float64{{0}})
	assert.ErrorIs(t, err, contacts.ErrBadColumn)

	_, err = contacts.FromRows([][]float64{{0, 1.5}})
	assert.ErrorIs(t, err, contacts.ErrBadColumn)
}
