// SPDX-License-Identifier: MIT
// Dense is a concrete, row-major matrix storing elements in a flat slice.

package matrix

import (
	"fmt"
	"strings"
)

// Dense is a row-major matrix of float64 values.
// r is rows, c is columns, and data holds r*c elements in row-major order.
// labels, when set, names each column.
type Dense struct {
	r, c   int       // number of rows and columns
	data   []float64 // flat backing storage, length == r*c
	labels []string  // optional column labels, len == c when set
}

// NewDense creates an r×c Dense matrix initialized to zeros.
// Stage 1 (Validate): ensure rows and cols > 0.
// Stage 2 (Prepare): allocate flat backing slice.
// Complexity: O(r*c) time and memory.
func NewDense(rows, cols int) (*Dense, error) {
	// Validate dimensions
	if rows <= 0 || cols <= 0 {
		return nil, ErrInvalidDimensions
	}

	return &Dense{r: rows, c: cols, data: make([]float64, rows*cols)}, nil
}

// NewLabeled creates a rows×len(labels) zero matrix whose columns carry the
// given labels.
// Complexity: O(rows*len(labels)).
func NewLabeled(rows int, labels []string) (*Dense, error) {
	m, err := NewDense(rows, len(labels))
	if err != nil {
		return nil, err
	}
	m.labels = append([]string{}, labels...)

	return m, nil
}

// Rows returns the number of rows in the matrix.
func (m *Dense) Rows() int {
	return m.r
}

// Cols returns the number of columns in the matrix.
func (m *Dense) Cols() int {
	return m.c
}

// Labels returns a copy of the column labels (nil when unlabeled).
func (m *Dense) Labels() []string {
	if m.labels == nil {
		return nil
	}

	return append([]string{}, m.labels...)
}

// LabelIndex returns the column carrying label.
func (m *Dense) LabelIndex(label string) (int, error) {
	for j, l := range m.labels {
		if l == label {
			return j, nil
		}
	}

	return 0, fmt.Errorf("Dense.LabelIndex(%q): %w", label, ErrUnknownLabel)
}

// indexOf computes the flat index for (row, col) or returns ErrIndexOutOfBounds.
// Complexity: O(1).
func (m *Dense) indexOf(method string, row, col int) (int, error) {
	if row < 0 || row >= m.r || col < 0 || col >= m.c {
		return 0, denseErrorf(method, row, col, ErrIndexOutOfBounds)
	}

	return row*m.c + col, nil
}

// At retrieves the element at (row, col).
// Complexity: O(1).
func (m *Dense) At(row, col int) (float64, error) {
	idx, err := m.indexOf("At", row, col)
	if err != nil {
		return 0, err
	}

	return m.data[idx], nil
}

// Set assigns value v at (row, col).
// Complexity: O(1).
func (m *Dense) Set(row, col int, v float64) error {
	idx, err := m.indexOf("Set", row, col)
	if err != nil {
		return err
	}
	m.data[idx] = v

	return nil
}

// Row returns a copy of row i.
// Complexity: O(c).
func (m *Dense) Row(i int) ([]float64, error) {
	if i < 0 || i >= m.r {
		return nil, denseErrorf("Row", i, 0, ErrIndexOutOfBounds)
	}
	out := make([]float64, m.c)
	copy(out, m.data[i*m.c:(i+1)*m.c])

	return out, nil
}

// Col returns a copy of column j.
// Complexity: O(r).
func (m *Dense) Col(j int) ([]float64, error) {
	if j < 0 || j >= m.c {
		return nil, denseErrorf("Col", 0, j, ErrIndexOutOfBounds)
	}
	out := make([]float64, m.r)
	for i := 0; i < m.r; i++ {
		out[i] = m.data[i*m.c+j]
	}

	return out, nil
}

// SetCol overwrites column j with v; len(v) must equal Rows().
// Complexity: O(r).
func (m *Dense) SetCol(j int, v []float64) error {
	if j < 0 || j >= m.c {
		return denseErrorf("SetCol", 0, j, ErrIndexOutOfBounds)
	}
	if len(v) != m.r {
		return fmt.Errorf("Dense.SetCol(%d): len %d vs rows %d: %w", j, len(v), m.r, ErrDimensionMismatch)
	}
	for i, x := range v {
		m.data[i*m.c+j] = x
	}

	return nil
}

// Clone returns a deep copy of the Dense matrix, labels included.
// Complexity: O(r*c).
func (m *Dense) Clone() *Dense {
	out := &Dense{r: m.r, c: m.c, data: make([]float64, len(m.data))}
	copy(out.data, m.data)
	if m.labels != nil {
		out.labels = append([]string{}, m.labels...)
	}

	return out
}

// String implements fmt.Stringer for easy debugging. Labeled matrices print
// their labels as a header row.
// Complexity: O(r*c).
func (m *Dense) String() string {
	var sb strings.Builder
	if m.labels != nil {
		sb.WriteString("# " + strings.Join(m.labels, ", ") + "\n")
	}
	for i := 0; i < m.r; i++ {
		sb.WriteString("[")
		for j := 0; j < m.c; j++ {
			fmt.Fprintf(&sb, "%g", m.data[i*m.c+j])
			if j < m.c-1 {
				sb.WriteString(", ")
			}
		}
		sb.WriteString("]\n")
	}

	return sb.String()
}
