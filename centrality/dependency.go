package centrality

import (
	"github.com/katalvlaran/adaptix/bfs"
	"github.com/katalvlaran/adaptix/core"
)

// dependencies computes the per-vertex dependency δ(s,·) for the source
// of base, processing the shortest-path DAG in reverse-topological order.
//
// For each vertex u and each DAG successor v (dist(v) = dist(u)+1):
//
//	δ(u) += σ′(u)/σ(v)                  — u's share of paths ending at v
//	δ(u) += δ(v) · σ′(u)/σ′(v)          — u's share of v's onward mass
//
// A successor v that is a seed contributes nothing at all: paths are
// blocked on entering a seed, and seed targets are excluded. The second
// term is skipped when σ′(v) = 0 (every s→v path already blocked), which
// also keeps the division well-defined; σ(v) > 0 holds for any reached
// successor by BFS construction.
//
// The source accumulates nothing and is excluded from the output's
// meaning (δ at the source is left zero).
//
// Complexity: O(V + E) time, O(V) space.
func dependencies(g *core.Graph, base *bfs.Result, avoid []int64, seeds *core.SeedSet) []float64 {
	vertexCount := g.VertexCount()
	delta := make([]float64, vertexCount)

	// 1) Out-degree of every vertex within the shortest-path DAG.
	outDeg := make([]int, vertexCount)
	for u := 0; u < vertexCount; u++ {
		for _, v := range g.Neighbors(u) {
			if base.Dist[v] == base.Dist[u]+1 {
				outDeg[u]++
			}
		}
	}

	// 2) Seed the queue with the DAG's leaves (no outgoing arcs).
	queue := make([]int, 0, vertexCount)
	for u := 0; u < vertexCount; u++ {
		if outDeg[u] == 0 {
			queue = append(queue, u)
		}
	}

	// 3) Reverse-topological sweep: every vertex is dequeued only after
	//    all of its DAG successors have been fully accumulated.
	for head := 0; head < len(queue); head++ {
		u := queue[head]
		if u == base.Source {
			continue
		}
		du := base.Dist[u]
		for _, v := range g.Neighbors(u) {
			switch base.Dist[v] {
			case du - 1:
				// u was v's last unfinished successor? Then v is ready.
				if outDeg[v]--; outDeg[v] == 0 {
					queue = append(queue, v)
				}
			case du + 1:
				if seeds.Contains(v) {
					continue
				}
				contrib := float64(avoid[u]) / float64(base.Count[v])
				if avoid[v] != 0 {
					contrib += delta[v] * float64(avoid[u]) / float64(avoid[v])
				}
				delta[u] += contrib
			}
		}
	}

	return delta
}
