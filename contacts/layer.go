// SPDX-License-Identifier: MIT
// File: layer.go
// Role: Layer type and its lifecycle: construction, validation, append/pop,
//       cloning and membership helpers.
// Determinism:
//   - Append keeps existing rows in place and copies new rows into the tail.
//   - PopInds keeps the relative order of the surviving rows and returns the
//     removed rows in ascending row order.
// Concurrency:
//   - None. Mutations must be serialized by the caller.

package contacts

import (
	"fmt"
	"strings"
)

// Canonical column names, shared with the tabular export.
const (
	ColP1   = "p1"
	ColP2   = "p2"
	ColBeta = "beta"
)

// DefaultBeta is the transmission weight assigned to rows that arrive without one.
const DefaultBeta float32 = 1.0

// stringRows caps the number of rows rendered by Layer.String.
const stringRows = 10

// Layer is a single contact network stored as three parallel columns.
//
// Row k is the edge (P1[k], P2[k]) with weight Beta[k]. The columns are
// exported so that the stepping driver can read them without copies; any code
// that writes them directly must call Validate before handing the layer back.
type Layer struct {
	// P1 is the first agent index of each edge.
	P1 []int32

	// P2 is the second agent index of each edge.
	P2 []int32

	// Beta is the transmission weight of each edge.
	Beta []float32
}

// NewLayer returns an empty layer with zero-length (non-nil) columns.
// Complexity: O(1).
func NewLayer() *Layer {
	return &Layer{P1: []int32{}, P2: []int32{}, Beta: []float32{}}
}

// Len reports the number of edges. P1 is the base column; Validate guarantees
// the other two agree with it.
// Complexity: O(1).
func (l *Layer) Len() int {
	if l == nil {
		return 0
	}

	return len(l.P1)
}

// ColumnKeys returns the canonical column names in storage order.
func (l *Layer) ColumnKeys() []string {
	return []string{ColP1, ColP2, ColBeta}
}

// Validate checks the structural invariants of the layer:
//   - len(P1) == len(P2) == len(Beta)
//   - P1 and P2 hold non-negative agent indices
//
// The first violation is returned wrapped with the offending column name.
// Validate never mutates the layer.
// Complexity: O(E).
func (l *Layer) Validate() error {
	if l == nil {
		return ErrLayerNil
	}

	n := len(l.P1)
	if got := len(l.P2); got != n {
		return fmt.Errorf("column %q: expected length %d, got %d: %w", ColP2, n, got, ErrLengthMismatch)
	}
	if got := len(l.Beta); got != n {
		return fmt.Errorf("column %q: expected length %d, got %d: %w", ColBeta, n, got, ErrLengthMismatch)
	}

	if k := firstNegative(l.P1); k >= 0 {
		return fmt.Errorf("column %q row %d: value %d: %w", ColP1, k, l.P1[k], ErrNegativeIndex)
	}
	if k := firstNegative(l.P2); k >= 0 {
		return fmt.Errorf("column %q row %d: value %d: %w", ColP2, k, l.P2[k], ErrNegativeIndex)
	}

	return nil
}

// firstNegative returns the row of the first negative value, or -1.
func firstNegative(col []int32) int {
	for k, v := range col {
		if v < 0 {
			return k
		}
	}

	return -1
}

// Append grows every column by the batch size and copies the batch rows into
// the tail, in batch order. The batch has the shape returned by PopInds, so a
// popped batch can be reinstated unchanged.
//
// The batch is validated first; on error the layer is left untouched.
// Complexity: O(E+B) time for the reallocation, O(E+B) space.
func (l *Layer) Append(batch *Layer) error {
	if l == nil || batch == nil {
		return ErrLayerNil
	}
	if err := batch.Validate(); err != nil {
		return fmt.Errorf("Append: %w", err)
	}

	// Reallocate each column to the exact new size, then copy into the tail.
	l.P1 = growInt32(l.P1, batch.P1)
	l.P2 = growInt32(l.P2, batch.P2)
	l.Beta = growFloat32(l.Beta, batch.Beta)

	return nil
}

// growInt32 returns a fresh slice holding cur followed by tail.
func growInt32(cur, tail []int32) []int32 {
	out := make([]int32, len(cur)+len(tail))
	copy(out, cur)
	copy(out[len(cur):], tail)

	return out
}

// growFloat32 returns a fresh slice holding cur followed by tail.
func growFloat32(cur, tail []float32) []float32 {
	out := make([]float32, len(cur)+len(tail))
	copy(out, cur)
	copy(out[len(cur):], tail)

	return out
}

// PopInds removes the given rows from all three columns and returns them as a
// detached layer, ready to be passed back to Append.
//
// Steps:
//  1. Check every index against [0, Len()); fail before mutating anything.
//  2. Mark rows in a removal mask (duplicate indices collapse to one row).
//  3. Split the columns into kept rows and removed rows in one pass.
//
// The removed rows are returned in ascending row order, which is also the
// order they had in the layer.
// Complexity: O(E + len(inds)).
func (l *Layer) PopInds(inds []int) (*Layer, error) {
	if l == nil {
		return nil, ErrLayerNil
	}

	n := l.Len()
	remove := make([]bool, n)
	nRemove := 0
	for _, k := range inds {
		if k < 0 || k >= n {
			return nil, fmt.Errorf("PopInds: row %d not in [0,%d): %w", k, n, ErrIndexOutOfRange)
		}
		if !remove[k] {
			remove[k] = true
			nRemove++
		}
	}

	popped := &Layer{
		P1:   make([]int32, 0, nRemove),
		P2:   make([]int32, 0, nRemove),
		Beta: make([]float32, 0, nRemove),
	}
	kept := &Layer{
		P1:   make([]int32, 0, n-nRemove),
		P2:   make([]int32, 0, n-nRemove),
		Beta: make([]float32, 0, n-nRemove),
	}
	for k := 0; k < n; k++ {
		dst := kept
		if remove[k] {
			dst = popped
		}
		dst.P1 = append(dst.P1, l.P1[k])
		dst.P2 = append(dst.P2, l.P2[k])
		dst.Beta = append(dst.Beta, l.Beta[k])
	}

	l.P1, l.P2, l.Beta = kept.P1, kept.P2, kept.Beta

	return popped, nil
}

// Clone returns a deep copy of the layer.
// Complexity: O(E).
func (l *Layer) Clone() *Layer {
	if l == nil {
		return nil
	}

	return &Layer{
		P1:   append([]int32{}, l.P1...),
		P2:   append([]int32{}, l.P2...),
		Beta: append([]float32{}, l.Beta...),
	}
}

// Shift returns a copy of the layer whose agent indices are offset by delta.
// It is used when a layer is moved behind another population's rows.
// Complexity: O(E).
func (l *Layer) Shift(delta int32) *Layer {
	out := l.Clone()
	for k := range out.P1 {
		out.P1[k] += delta
		out.P2[k] += delta
	}

	return out
}

// Contains reports whether agent i appears as either endpoint of any edge.
// Complexity: O(E).
func (l *Layer) Contains(i int) bool {
	if l == nil {
		return false
	}
	for k := range l.P1 {
		if int(l.P1[k]) == i || int(l.P2[k]) == i {
			return true
		}
	}

	return false
}

// Members returns every agent index that appears in the layer, ascending and
// without duplicates.
// Complexity: O(E + maxIndex/8).
func (l *Layer) Members() []int {
	b := newBitmap(0)
	if l == nil {
		return b.indices()
	}
	for k := range l.P1 {
		b.set(int(l.P1[k]))
		b.set(int(l.P2[k]))
	}

	return b.indices()
}

// String renders a header and the first rows of the layer.
func (l *Layer) String() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "Layer(%s; n=%d)\n", strings.Join(l.ColumnKeys(), ", "), l.Len())
	fmt.Fprintf(&sb, "%6s %8s %8s %8s\n", "", ColP1, ColP2, ColBeta)
	rows := l.Len()
	if rows > stringRows {
		rows = stringRows
	}
	for k := 0; k < rows; k++ {
		fmt.Fprintf(&sb, "%6d %8d %8d %8.3g\n", k, l.P1[k], l.P2[k], l.Beta[k])
	}
	if l.Len() > stringRows {
		fmt.Fprintf(&sb, "... %d more rows\n", l.Len()-stringRows)
	}

	return sb.String()
}
