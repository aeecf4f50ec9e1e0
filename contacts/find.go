// SPDX-License-Identifier: MIT
// File: find.go
// Role: Bidirectional contact lookup over a whole layer.
// Determinism:
//   - FindContacts returns partners in ascending order, so seeded random
//     draws over its result are reproducible across runs.
// Notes:
//   - The query is one linear pass over every edge with O(1) bitmap
//     membership tests; there is no per-query-agent loop over the edges.
//   - Duplicate edges never produce duplicate partners.
//   - Self-loops are not excluded: an edge (i,i) with i queried yields i.

package contacts

import (
	"github.com/apache/arrow-go/v18/arrow/bitutil"
)

// bitmap is a growable set of non-negative agent indices backed by an
// Arrow-style LSB bitmap.
type bitmap struct {
	bits []byte
	n    int // number of addressable bits
}

// newBitmap returns a bitmap able to hold indices [0, size) without growing.
func newBitmap(size int) *bitmap {
	if size < 0 {
		size = 0
	}

	return &bitmap{bits: make([]byte, bitutil.BytesForBits(int64(size))), n: size}
}

// set marks index i, growing the bitmap when i is past its end.
// Negative indices are ignored: they can never match a stored edge.
func (b *bitmap) set(i int) {
	if i < 0 {
		return
	}
	if i >= b.n {
		b.grow(i + 1)
	}
	bitutil.SetBit(b.bits, i)
}

// has reports whether index i is marked.
func (b *bitmap) has(i int) bool {
	if i < 0 || i >= b.n {
		return false
	}

	return bitutil.BitIsSet(b.bits, i)
}

// grow extends the bitmap to at least size bits, doubling to amortize.
func (b *bitmap) grow(size int) {
	if size < 2*b.n {
		size = 2 * b.n
	}
	need := int(bitutil.BytesForBits(int64(size)))
	if need > len(b.bits) {
		nb := make([]byte, need)
		copy(nb, b.bits)
		b.bits = nb
	}
	b.n = size
}

// count returns the number of marked indices.
func (b *bitmap) count() int {
	return bitutil.CountSetBits(b.bits, 0, b.n)
}

// indices returns the marked indices in ascending order.
func (b *bitmap) indices() []int {
	out := make([]int, 0, b.count())
	for byteIdx, v := range b.bits {
		if v == 0 {
			continue
		}
		base := byteIdx * 8
		for bit := 0; bit < 8; bit++ {
			if v&(1<<uint(bit)) != 0 {
				out = append(out, base+bit)
			}
		}
	}

	return out
}

// partners runs the single pass shared by FindContacts and FindContactsSet.
//
// Steps:
//  1. Find the largest edge endpoint; no partner or matching query can lie
//     beyond it.
//  2. Mark the queried indices up to that endpoint in a query bitmap; larger
//     or negative indices are skipped.
//  3. For every edge k: if P1[k] is queried mark P2[k]; if P2[k] is queried
//     mark P1[k].
//
// Both bitmaps are bounded by the layer, never by the query.
// Complexity: O(E + len(inds) + maxEndpoint/8) time, O(maxEndpoint/8) space.
func (l *Layer) partners(inds []int) *bitmap {
	if l == nil || len(l.P1) == 0 {
		return newBitmap(0)
	}

	maxEdge := -1
	for k := range l.P1 {
		if p := int(l.P1[k]); p > maxEdge {
			maxEdge = p
		}
		if p := int(l.P2[k]); p > maxEdge {
			maxEdge = p
		}
	}

	query := newBitmap(maxEdge + 1)
	for _, i := range inds {
		if i <= maxEdge {
			query.set(i)
		}
	}

	out := newBitmap(maxEdge + 1)
	for k := range l.P1 {
		p1, p2 := int(l.P1[k]), int(l.P2[k])
		if query.has(p1) {
			out.set(p2)
		}
		if query.has(p2) {
			out.set(p1)
		}
	}

	return out
}

// FindContacts returns every agent that shares at least one edge with any of
// the queried agents, ascending and deduplicated.
//
// Example: with P1=[1,2,3,4] and P2=[2,3,1,4], FindContacts([1,3]) returns
// [1,2,3].
//
// Query indices past the largest endpoint match nothing and cost nothing.
//
// Complexity: O(E + len(inds) + maxEndpoint/8).
func (l *Layer) FindContacts(inds []int) []int {
	return l.partners(inds).indices()
}

// FindContactsSet returns the same partners as FindContacts as an unordered
// set, for callers that only test membership.
// Complexity: O(E + len(inds) + maxEndpoint/8 + result).
func (l *Layer) FindContactsSet(inds []int) map[int]struct{} {
	b := l.partners(inds)
	out := make(map[int]struct{}, b.count())
	for _, i := range b.indices() {
		out[i] = struct{}{}
	}

	return out
}
