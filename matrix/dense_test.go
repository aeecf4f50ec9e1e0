// SPDX-License-Identifier: MIT
// Package matrix_test contains unit tests for Dense.
package matrix_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/popnet/matrix"
)

// TestNewDenseInvalidDimensions ensures that NewDense rejects non-positive dimensions.
func TestNewDenseInvalidDimensions(t *testing.T) {
	_, err := matrix.NewDense(0, 5)
	require.ErrorIs(t, err, matrix.ErrInvalidDimensions)

	_, err = matrix.NewDense(5, 0)
	require.ErrorIs(t, err, matrix.ErrInvalidDimensions)

	_, err = matrix.NewLabeled(3, nil)
	require.ErrorIs(t, err, matrix.ErrInvalidDimensions)
}

// TestRowsCols verifies that Rows() and Cols() return correct dimension values.
func TestRowsCols(t *testing.T) {
	m, err := matrix.NewDense(3, 4)
	require.NoError(t, err)
	require.Equal(t, 3, m.Rows())
	require.Equal(t, 4, m.Cols())
	require.Nil(t, m.Labels())
}

// TestAtSetOutOfBounds ensures At() and Set() return ErrIndexOutOfBounds on invalid access.
func TestAtSetOutOfBounds(t *testing.T) {
	m, err := matrix.NewDense(2, 2)
	require.NoError(t, err)

	_, err = m.At(-1, 0)
	require.ErrorIs(t, err, matrix.ErrIndexOutOfBounds)
	_, err = m.At(0, 2)
	require.ErrorIs(t, err, matrix.ErrIndexOutOfBounds)
	require.ErrorIs(t, m.Set(2, 0, 1.23), matrix.ErrIndexOutOfBounds)
	require.ErrorIs(t, m.Set(0, -1, 4.56), matrix.ErrIndexOutOfBounds)
	_, err = m.Row(2)
	require.ErrorIs(t, err, matrix.ErrIndexOutOfBounds)
	_, err = m.Col(-1)
	require.ErrorIs(t, err, matrix.ErrIndexOutOfBounds)
}

// TestSetGet validates Set() followed by At() on valid indices.
func TestSetGet(t *testing.T) {
	m, err := matrix.NewDense(2, 3)
	require.NoError(t, err)
	require.NoError(t, m.Set(1, 2, 7.89))

	val, err := m.At(1, 2)
	require.NoError(t, err)
	require.Equal(t, 7.89, val)
}

// TestColumns checks SetCol/Col/Row and label lookup on a labeled matrix.
func TestColumns(t *testing.T) {
	m, err := matrix.NewLabeled(3, []string{"uid", "age"})
	require.NoError(t, err)
	require.NoError(t, m.SetCol(0, []float64{0, 1, 2}))
	require.NoError(t, m.SetCol(1, []float64{30, 40, 50}))
	require.ErrorIs(t, m.SetCol(1, []float64{1}), matrix.ErrDimensionMismatch)

	j, err := m.LabelIndex("age")
	require.NoError(t, err)
	col, err := m.Col(j)
	require.NoError(t, err)
	require.Equal(t, []float64{30, 40, 50}, col)

	row, err := m.Row(1)
	require.NoError(t, err)
	require.Equal(t, []float64{1, 40}, row)

	_, err = m.LabelIndex("sex")
	require.ErrorIs(t, err, matrix.ErrUnknownLabel)
}

// TestCloneIndependence ensures Clone() returns a deep copy that does not share storage.
func TestCloneIndependence(t *testing.T) {
	m, err := matrix.NewLabeled(2, []string{"a", "b"})
	require.NoError(t, err)
	_ = m.Set(0, 0, 1.0)

	clone := m.Clone()
	_ = clone.Set(0, 0, 3.0)

	origVal, _ := m.At(0, 0)
	require.Equal(t, 1.0, origVal)
	cloneVal, _ := clone.At(0, 0)
	require.Equal(t, 3.0, cloneVal)
	require.Equal(t, []string{"a", "b"}, clone.Labels())
}

// TestStringOutput checks that String() formats the matrix as expected.
func TestStringOutput(t *testing.T) {
	m, err := matrix.NewDense(2, 2)
	require.NoError(t, err)
	_ = m.Set(0, 0, 1)
	_ = m.Set(0, 1, 2)
	_ = m.Set(1, 0, 3)
	_ = m.Set(1, 1, 4)
	require.Equal(t, "[1, 2]\n[3, 4]\n", m.String())

	l, err := matrix.NewLabeled(1, []string{"x"})
	require.NoError(t, err)
	require.Equal(t, "# x\n[0]\n", l.String())
}
