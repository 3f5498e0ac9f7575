package bfs_test

import (
	"testing"

	"github.com/katalvlaran/adaptix/bfs"
	"github.com/katalvlaran/adaptix/builder"
	"github.com/katalvlaran/adaptix/core"
)

// BenchmarkCounts_Chain measures full BFS on a linear chain.
func BenchmarkCounts_Chain(b *testing.B) {
	const n = 10000
	g, err := builder.Path(n)
	if err != nil {
		b.Fatal(err)
	}

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = bfs.Counts(g, 0)
	}
}

// BenchmarkCounts_RandomSparse measures full BFS on a random graph.
func BenchmarkCounts_RandomSparse(b *testing.B) {
	g, err := builder.RandomSparse(5000, 6, builder.WithSeed(1))
	if err != nil {
		b.Fatal(err)
	}

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = bfs.Counts(g, i%g.VertexCount())
	}
}

// BenchmarkSeedAvoidingCounts measures the σ' recount with a small seed set.
func BenchmarkSeedAvoidingCounts(b *testing.B) {
	g, err := builder.RandomSparse(5000, 6, builder.WithSeed(1))
	if err != nil {
		b.Fatal(err)
	}
	base, err := bfs.Counts(g, 0)
	if err != nil {
		b.Fatal(err)
	}
	seeds, err := core.NewSeedSet(g.VertexCount(), 17, 42, 1234)
	if err != nil {
		b.Fatal(err)
	}

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = bfs.SeedAvoidingCounts(g, base, seeds)
	}
}
