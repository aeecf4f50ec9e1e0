package trace_test

import (
	"fmt"

	"github.com/katalvlaran/popnet/contacts"
	"github.com/katalvlaran/popnet/trace"
)

// ExampleTrace finds first- and second-degree household contacts.
func ExampleTrace() {
	h, _ := contacts.FromRows([][]float64{{0, 1}, {1, 2}, {2, 3}, {4, 5}})
	c := contacts.New("h")
	_ = c.AddLayer("h", h)

	res, err := trace.Trace(c, []int{0}, trace.WithMaxDepth(2))
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println(res.Levels)
	// Output:
	// [[0] [1] [2]]
}
