package bfs

import (
	"github.com/katalvlaran/adaptix/core"
)

// SeedAvoidingCounts recounts shortest paths from base.Source under the
// rule that no internal vertex may be a seed, producing σ′.
//
// The traversal replays the baseline layering: only edges (u,v) with
// base.Dist[v] = base.Dist[u]+1 participate, and any v in seeds is
// skipped. If the source itself is a seed, every path out of it is
// blocked at the first step and the returned vector is identically zero.
//
// Post-conditions: σ′(v) ≤ σ(v) everywhere; σ′(v) = 0 for seeds v ≠ s;
// σ′(s) = 1 for a non-seed source.
//
// Complexity: O(V + E) time, O(V) space.
func SeedAvoidingCounts(g *core.Graph, base *Result, seeds *core.SeedSet) ([]int64, error) {
	if g == nil {
		return nil, ErrNilGraph
	}
	vertexCount := g.VertexCount()
	if base == nil || len(base.Dist) != vertexCount || len(base.Count) != vertexCount {
		return nil, ErrBaselineMismatch
	}
	s := base.Source
	if s < 0 || s >= vertexCount {
		return nil, ErrBaselineMismatch
	}

	counts := make([]int64, vertexCount)
	if seeds.Contains(s) {
		// A seed source blocks everything; leave σ′ ≡ 0.
		return counts, nil
	}

	seen := make([]bool, vertexCount)
	queue := make([]int, 0, vertexCount)
	counts[s] = 1
	seen[s] = true
	queue = append(queue, s)

	for head := 0; head < len(queue); head++ {
		u := queue[head]
		du := base.Dist[u]
		for _, v := range g.Neighbors(u) {
			if seeds.Contains(v) {
				continue
			}
			if base.Dist[v] != du+1 {
				continue
			}
			if !seen[v] {
				seen[v] = true
				queue = append(queue, v)
			}
			counts[v] += counts[u]
		}
	}

	return counts, nil
}

// SeedAvoidingCountsInDomain is the subset-confined variant of
// SeedAvoidingCounts, layered on a baseline distance map from a prior
// CountsInDomain call rooted at s.
//
// The returned map is defined only on reached vertices. It is empty when
// s is a seed, or when s lies outside the domain or the baseline.
//
// Complexity: O(|D| + E(D)) time and space.
func SeedAvoidingCountsInDomain(g *core.Graph, s int, baseDist map[int]int, seeds *core.SeedSet, domain core.VertexSet) (map[int]int64, error) {
	if g == nil {
		return nil, ErrNilGraph
	}
	if s < 0 || s >= g.VertexCount() {
		return nil, ErrVertexOutOfRange
	}

	counts := make(map[int]int64, domain.Len())
	if seeds.Contains(s) || !domain.Contains(s) {
		return counts, nil
	}
	if _, ok := baseDist[s]; !ok {
		return counts, nil
	}

	queue := make([]int, 0, domain.Len())
	counts[s] = 1
	queue = append(queue, s)

	for head := 0; head < len(queue); head++ {
		u := queue[head]
		du := baseDist[u]
		for _, v := range g.Neighbors(u) {
			if !domain.Contains(v) || seeds.Contains(v) {
				continue
			}
			dv, ok := baseDist[v]
			if !ok || dv != du+1 {
				continue
			}
			if _, reached := counts[v]; !reached {
				queue = append(queue, v)
			}
			counts[v] += counts[u]
		}
	}

	return counts, nil
}
