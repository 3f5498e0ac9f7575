package centrality

import (
	"fmt"

	"github.com/katalvlaran/adaptix/bfs"
	"github.com/katalvlaran/adaptix/core"
)

// ExactCoverage computes seed-aware coverage centrality over the whole
// graph: scores[v] is the number of unordered endpoint pairs {s,t} whose
// shortest paths survive the seed set and cross v as an internal vertex.
//
// A pair is blocked when any vertex on any of its shortest paths —
// endpoints included — is a seed. Seed vertices therefore score zero.
//
// Complexity: O(V²·(V+E)) worst case, O(V) extra space per pair.
func ExactCoverage(g *core.Graph, seedVertices []int) ([]int64, error) {
	if g == nil {
		return nil, ErrNilGraph
	}
	vertexCount := g.VertexCount()
	seeds, err := core.NewSeedSet(vertexCount, seedVertices...)
	if err != nil {
		return nil, fmt.Errorf("centrality: coverage seeds: %w", err)
	}

	scores := make([]int64, vertexCount)
	for s := 0; s < vertexCount; s++ {
		base, err := bfs.Counts(g, s)
		if err != nil {
			return nil, err
		}
		for t := s + 1; t < vertexCount; t++ {
			if base.Dist[t] < 0 {
				continue
			}
			onPath, hasSeed := shortestPathVertices(g, base, t, seeds)
			if hasSeed {
				continue
			}
			for _, v := range onPath {
				if v != s && v != t {
					scores[v]++
				}
			}
		}
	}

	return scores, nil
}

// ExactBetweenness computes seed-aware betweenness centrality over the
// whole graph: scores[u] sums u's dependency δ(s,u) over every ordered
// source, counting only shortest paths whose endpoints and internal
// vertices avoid the seed set. Seed vertices score zero.
//
// Complexity: O(V·(V+E)) time, O(V) extra space per source.
func ExactBetweenness(g *core.Graph, seedVertices []int) ([]float64, error) {
	if g == nil {
		return nil, ErrNilGraph
	}
	vertexCount := g.VertexCount()
	seeds, err := core.NewSeedSet(vertexCount, seedVertices...)
	if err != nil {
		return nil, fmt.Errorf("centrality: betweenness seeds: %w", err)
	}

	scores := make([]float64, vertexCount)
	for s := 0; s < vertexCount; s++ {
		if seeds.Contains(s) {
			continue // paths out of a seed source are blocked at step one
		}
		base, err := bfs.Counts(g, s)
		if err != nil {
			return nil, err
		}
		avoid, err := bfs.SeedAvoidingCounts(g, base, seeds)
		if err != nil {
			return nil, err
		}
		delta := dependencies(g, base, avoid, seeds)
		for u := 0; u < vertexCount; u++ {
			if u == s || seeds.Contains(u) {
				continue
			}
			scores[u] += delta[u]
		}
	}

	return scores, nil
}

// shortestPathVertices collects every vertex lying on some shortest path
// from base.Source to t — endpoints included — by walking the
// shortest-path DAG backward from t. It also reports whether any
// collected vertex is a seed, which marks the pair as blocked.
//
// Precondition: t is reachable in base.
// Complexity: O(V + E) time, O(V) space.
func shortestPathVertices(g *core.Graph, base *bfs.Result, t int, seeds *core.SeedSet) ([]int, bool) {
	visited := make([]bool, g.VertexCount())
	onPath := make([]int, 0, base.Dist[t]+1)
	hasSeed := seeds.Contains(t)

	visited[t] = true
	onPath = append(onPath, t)

	for head := 0; head < len(onPath); head++ {
		u := onPath[head]
		du := base.Dist[u]
		for _, v := range g.Neighbors(u) {
			if visited[v] || base.Dist[v] != du-1 {
				continue
			}
			visited[v] = true
			onPath = append(onPath, v)
			if seeds.Contains(v) {
				hasSeed = true
			}
		}
	}

	return onPath, hasSeed
}
