package bfs

import (
	"github.com/katalvlaran/adaptix/core"
)

// Counts runs a layered BFS over the full graph from s, producing the
// distance vector d and the shortest-path count vector σ.
//
// Post-conditions: d(s)=0, σ(s)=1; unreachable vertices carry d=−1, σ=0;
// for every reached v, σ(v) sums σ over v's predecessors one layer up.
//
// Complexity: O(V + E) time, O(V) space.
func Counts(g *core.Graph, s int) (*Result, error) {
	if g == nil {
		return nil, ErrNilGraph
	}
	vertexCount := g.VertexCount()
	if s < 0 || s >= vertexCount {
		return nil, ErrVertexOutOfRange
	}

	res := &Result{
		Source: s,
		Dist:   make([]int, vertexCount),
		Count:  make([]int64, vertexCount),
	}
	for i := range res.Dist {
		res.Dist[i] = -1
	}

	// Ring-free FIFO: every vertex enters the queue at most once.
	queue := make([]int, 0, vertexCount)
	res.Dist[s] = 0
	res.Count[s] = 1
	queue = append(queue, s)

	for head := 0; head < len(queue); head++ {
		u := queue[head]
		for _, v := range g.Neighbors(u) {
			switch {
			case res.Dist[v] == -1:
				// First discovery: v sits one layer below u.
				res.Dist[v] = res.Dist[u] + 1
				res.Count[v] = res.Count[u]
				queue = append(queue, v)
			case res.Dist[v] == res.Dist[u]+1:
				// Another shortest predecessor for an already-discovered v.
				res.Count[v] += res.Count[u]
			}
		}
	}

	return res, nil
}

// CountsInDomain runs the same layered BFS confined to the vertex subset
// domain: edges leading outside the subset are ignored. The result maps
// are defined only on reached vertices. If s lies outside domain, both
// maps are empty.
//
// Complexity: O(|D| + E(D)) time and space, where E(D) counts edges with
// both endpoints in D.
func CountsInDomain(g *core.Graph, s int, domain core.VertexSet) (*DomainResult, error) {
	if g == nil {
		return nil, ErrNilGraph
	}
	if s < 0 || s >= g.VertexCount() {
		return nil, ErrVertexOutOfRange
	}

	res := &DomainResult{
		Source: s,
		Dist:   make(map[int]int, domain.Len()),
		Count:  make(map[int]int64, domain.Len()),
	}
	if !domain.Contains(s) {
		return res, nil
	}

	queue := make([]int, 0, domain.Len())
	res.Dist[s] = 0
	res.Count[s] = 1
	queue = append(queue, s)

	for head := 0; head < len(queue); head++ {
		u := queue[head]
		du := res.Dist[u]
		for _, v := range g.Neighbors(u) {
			if !domain.Contains(v) {
				continue
			}
			dv, seen := res.Dist[v]
			switch {
			case !seen:
				res.Dist[v] = du + 1
				res.Count[v] = res.Count[u]
				queue = append(queue, v)
			case dv == du+1:
				res.Count[v] += res.Count[u]
			}
		}
	}

	return res, nil
}
