package bfs_test

import (
	"fmt"

	"github.com/katalvlaran/adaptix/bfs"
	"github.com/katalvlaran/adaptix/builder"
	"github.com/katalvlaran/adaptix/core"
)

// ExampleCounts walks a cycle and shows the two-way path split.
func ExampleCounts() {
	g, _ := builder.Cycle(6) // 0─1─2─3─4─5─0

	res, _ := bfs.Counts(g, 0)
	fmt.Println("d(3) =", res.Dist[3])
	fmt.Println("σ(3) =", res.Count[3])
	// Output:
	// d(3) = 3
	// σ(3) = 2
}

// ExampleSeedAvoidingCounts shows a seed cutting one side of the cycle.
func ExampleSeedAvoidingCounts() {
	g, _ := builder.Cycle(6)
	base, _ := bfs.Counts(g, 0)
	seeds, _ := core.NewSeedSet(g.VertexCount(), 1)

	avoid, _ := bfs.SeedAvoidingCounts(g, base, seeds)
	fmt.Println("σ'(3) =", avoid[3], "— only the 0─5─4─3 side survives")
	// Output:
	// σ'(3) = 1 — only the 0─5─4─3 side survives
}
