// SPDX-License-Identifier: MIT
package contacts_test

import (
	"fmt"

	"github.com/katalvlaran/popnet/contacts"
)

// ExampleLayer_FindContacts shows that edges are read in both directions.
func ExampleLayer_FindContacts() {
	l, _ := contacts.FromColumns(contacts.Columns{
		"p1": []int{1, 2, 3, 4},
		"p2": []int{2, 3, 1, 4},
	})
	fmt.Println(l.FindContacts([]int{1, 3}))
	// Output:
	// [1 2 3]
}

// ExampleLayer_PopInds deactivates one edge and later reinstates it.
func ExampleLayer_PopInds() {
	l, _ := contacts.FromRows([][]float64{{0, 1}, {1, 2}})
	fmt.Println("before:", l.FindContacts([]int{1}))

	popped, _ := l.PopInds([]int{0})
	fmt.Println("quarantined:", l.FindContacts([]int{1}))

	_ = l.Append(popped)
	fmt.Println("released:", l.FindContacts([]int{1}))
	// Output:
	// before: [0 2]
	// quarantined: [2]
	// released: [0 2]
}

// ExampleRemoveDuplicates canonicalizes a layer into a simple graph.
func ExampleRemoveDuplicates() {
	l, _ := contacts.FromRows([][]float64{{2, 5}, {5, 2}, {3, 3}})
	d := contacts.RemoveDuplicates(l)
	fmt.Println(d.P1, d.P2)
	// Output:
	// [2] [5]
}
