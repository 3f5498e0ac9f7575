package centrality_test

import (
	"testing"

	"github.com/katalvlaran/adaptix/builder"
	"github.com/katalvlaran/adaptix/centrality"
)

// BenchmarkExactBetweenness measures the O(V·(V+E)) reference engine.
func BenchmarkExactBetweenness(b *testing.B) {
	g, err := builder.RandomSparse(300, 4, builder.WithSeed(1))
	if err != nil {
		b.Fatal(err)
	}

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := centrality.ExactBetweenness(g, nil); err != nil {
			b.Fatal(err)
		}
	}
}

// BenchmarkApproximateBetweenness measures the sampler at M=256.
func BenchmarkApproximateBetweenness(b *testing.B) {
	g, err := builder.RandomSparse(2000, 5, builder.WithSeed(2))
	if err != nil {
		b.Fatal(err)
	}

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := centrality.ApproximateBetweenness(g, 256, nil, centrality.WithSeed(int64(i))); err != nil {
			b.Fatal(err)
		}
	}
}

// BenchmarkAdaptiveCoverage measures sampling plus greedy selection.
func BenchmarkAdaptiveCoverage(b *testing.B) {
	g, err := builder.RandomSparse(2000, 5, builder.WithSeed(3))
	if err != nil {
		b.Fatal(err)
	}

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := centrality.AdaptiveCoverage(g, 256, 8, centrality.WithSeed(int64(i))); err != nil {
			b.Fatal(err)
		}
	}
}

// BenchmarkAdaptiveBetweenness measures selection with localized rebuilds.
func BenchmarkAdaptiveBetweenness(b *testing.B) {
	g, err := builder.RandomSparse(2000, 5, builder.WithSeed(4))
	if err != nil {
		b.Fatal(err)
	}

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := centrality.AdaptiveBetweenness(g, 256, 8, centrality.WithSeed(int64(i))); err != nil {
			b.Fatal(err)
		}
	}
}
