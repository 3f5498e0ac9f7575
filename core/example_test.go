package core_test

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/adaptix/core"
)

// ExampleLoad parses a commented edge list into an immutable graph.
func ExampleLoad() {
	const input = `# a square with one diagonal
0 1
1 2
2 3
3 0
0 2
`
	g, err := core.Load(strings.NewReader(input))
	if err != nil {
		fmt.Println("load failed:", err)
		return
	}

	fmt.Println("vertices:", g.VertexCount())
	fmt.Println("edges:   ", g.EdgeCount())
	fmt.Println("nbrs(0): ", g.Neighbors(0))
	// Output:
	// vertices: 4
	// edges:    5
	// nbrs(0):  [1 2 3]
}

// ExampleNewSeedSet shows ordered seeds with O(1) membership.
func ExampleNewSeedSet() {
	seeds, _ := core.NewSeedSet(10, 4, 7)
	seeds.Add(1)

	fmt.Println("order:   ", seeds.Vertices())
	fmt.Println("has 7:   ", seeds.Contains(7))
	fmt.Println("has 5:   ", seeds.Contains(5))
	// Output:
	// order:    [4 7 1]
	// has 7:    true
	// has 5:    false
}
