package centrality

import (
	"fmt"

	"github.com/katalvlaran/adaptix/core"
)

// ApproximateCoverage estimates seed-aware coverage centrality from
// `samples` random endpoint pairs: scores[v] counts the sampled pairs
// whose surviving shortest paths cross v as an internal vertex.
//
// The returned counts live in the sampled scale. Endpoints are drawn as
// ordered pairs while the exact engine counts unordered ones, so multiply
// by V²/(2·samples) to land near the exact engine's per-pair counts. Seed
// vertices score zero.
//
// Complexity: O(samples·(V+E)).
func ApproximateCoverage(g *core.Graph, samples int, seedVertices []int, opts ...Option) ([]int64, error) {
	if g == nil {
		return nil, ErrNilGraph
	}
	if samples <= 0 {
		return nil, ErrSampleCount
	}
	vertexCount := g.VertexCount()
	scores := make([]int64, vertexCount)
	if vertexCount == 0 {
		return scores, nil
	}

	seeds, err := core.NewSeedSet(vertexCount, seedVertices...)
	if err != nil {
		return nil, fmt.Errorf("centrality: coverage seeds: %w", err)
	}

	o := buildOptions(opts)
	hypergraph, err := buildCoverageHypergraph(g, samples, seeds, o.rng)
	if err != nil {
		return nil, err
	}

	for _, edge := range hypergraph {
		for _, v := range edge {
			scores[v]++
		}
	}

	return scores, nil
}

// ApproximateBetweenness estimates seed-aware betweenness centrality
// from `samples` random endpoint pairs: scores[v] sums v's dependency
// weight over every sampled hyperedge containing it.
//
// The returned sums live in the sampled scale (scale by V²/samples for
// graph-level magnitudes). Seed vertices score zero: a seed never
// accumulates dependency mass.
//
// Complexity: O(samples·(V+E)).
func ApproximateBetweenness(g *core.Graph, samples int, seedVertices []int, opts ...Option) ([]float64, error) {
	if g == nil {
		return nil, ErrNilGraph
	}
	if samples <= 0 {
		return nil, ErrSampleCount
	}
	vertexCount := g.VertexCount()
	scores := make([]float64, vertexCount)
	if vertexCount == 0 {
		return scores, nil
	}

	seeds, err := core.NewSeedSet(vertexCount, seedVertices...)
	if err != nil {
		return nil, fmt.Errorf("centrality: betweenness seeds: %w", err)
	}

	o := buildOptions(opts)
	hypergraph, _, err := buildBetweennessHypergraph(g, samples, seeds, o.rng)
	if err != nil {
		return nil, err
	}

	for _, edge := range hypergraph {
		for _, wv := range edge {
			scores[wv.vertex] += wv.weight
		}
	}

	return scores, nil
}
