package centrality

import (
	"math/rand"

	"github.com/katalvlaran/adaptix/bfs"
	"github.com/katalvlaran/adaptix/core"
)

// A hyperedge is one Monte-Carlo sample of shortest-path structure for a
// random endpoint pair (s,t). Coverage samples record the internal
// vertices of the surviving s–t paths; betweenness samples additionally
// weight every swept vertex with its dependency share.

// coverageEdge is the unordered set of internal vertices lying on some
// shortest s–t path of one sample.
type coverageEdge []int

// weightedVertex ties a vertex to its dependency weight within one sample.
type weightedVertex struct {
	vertex int
	weight float64
}

// betweennessEdge lists the swept vertices of one sample with their
// weights; the source never appears, the target may (possibly at zero).
type betweennessEdge []weightedVertex

// samplePair records the endpoints a betweenness hyperedge was drawn
// for, so the edge can be rebuilt when the seed set grows.
type samplePair struct {
	s, t int
}

// buildCoverageHypergraph draws `samples` uniform endpoint pairs and
// keeps one coverage hyperedge per productive sample. A sample is
// discarded when t is unreachable from s, when a seed lies on the
// sampled pair's shortest-path structure (endpoints included), or when
// the surviving paths have no internal vertex. Discards are not errors:
// the sampler simply moves on.
//
// Complexity: O(samples·(V+E)).
func buildCoverageHypergraph(g *core.Graph, samples int, seeds *core.SeedSet, rng *rand.Rand) ([]coverageEdge, error) {
	vertexCount := g.VertexCount()
	hypergraph := make([]coverageEdge, 0, samples)

	for i := 0; i < samples; i++ {
		s, t := rng.Intn(vertexCount), rng.Intn(vertexCount)

		base, err := bfs.Counts(g, s)
		if err != nil {
			return nil, err
		}
		if base.Dist[t] < 0 {
			continue
		}
		onPath, hasSeed := shortestPathVertices(g, base, t, seeds)
		if hasSeed {
			continue
		}

		edge := make(coverageEdge, 0, len(onPath))
		for _, v := range onPath {
			if v != s && v != t {
				edge = append(edge, v)
			}
		}
		if len(edge) == 0 {
			continue
		}
		hypergraph = append(hypergraph, edge)
	}

	return hypergraph, nil
}

// buildBetweennessHypergraph draws `samples` uniform endpoint pairs and
// produces one betweenness hyperedge per sample, keeping hyperedges and
// recorded endpoints index-aligned (degenerate samples yield an empty
// edge so later rebuilds can still find their pair).
//
// Complexity: O(samples·(V+E)).
func buildBetweennessHypergraph(g *core.Graph, samples int, seeds *core.SeedSet, rng *rand.Rand) ([]betweennessEdge, []samplePair, error) {
	vertexCount := g.VertexCount()
	hypergraph := make([]betweennessEdge, 0, samples)
	pairs := make([]samplePair, 0, samples)

	for i := 0; i < samples; i++ {
		s, t := rng.Intn(vertexCount), rng.Intn(vertexCount)
		pairs = append(pairs, samplePair{s: s, t: t})

		base, err := bfs.Counts(g, s)
		if err != nil {
			return nil, nil, err
		}
		avoid, err := bfs.SeedAvoidingCounts(g, base, seeds)
		if err != nil {
			return nil, nil, err
		}
		hypergraph = append(hypergraph, sweepBackward(g, base, avoid, seeds, t))
	}

	return hypergraph, pairs, nil
}

// sweepBackward walks the shortest-path DAG backward from t, applying
// the dependency recurrence to every swept vertex as it is dequeued.
// The backward BFS dequeues vertices in non-increasing distance order,
// so each vertex's in-DAG successors are fully accumulated before the
// vertex itself is scanned. Successors outside the swept sub-DAG still
// contribute their first term (their onward mass is zero).
//
// Returns nil when t is unreachable. The source is never recorded.
//
// Complexity: O(V + E) time, O(V) space.
func sweepBackward(g *core.Graph, base *bfs.Result, avoid []int64, seeds *core.SeedSet, t int) betweennessEdge {
	if base.Dist[t] < 0 {
		return nil
	}

	vertexCount := g.VertexCount()
	visited := make([]bool, vertexCount)
	delta := make([]float64, vertexCount)
	queue := make([]int, 0, base.Dist[t]+1)

	var edge betweennessEdge
	visited[t] = true
	queue = append(queue, t)

	for head := 0; head < len(queue); head++ {
		u := queue[head]
		if u == base.Source {
			continue
		}
		du := base.Dist[u]
		for _, v := range g.Neighbors(u) {
			switch base.Dist[v] {
			case du - 1:
				if !visited[v] {
					visited[v] = true
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
		edge = append(edge, weightedVertex{vertex: u, weight: delta[u]})
	}

	return edge
}

// rebuildHyperedge recomputes one betweenness hyperedge against the
// current seed set, confining every traversal to the hyperedge's
// recorded vertex domain: a domain-restricted BFS from the sample's
// source, a seed-avoiding recount, then the same backward sweep from the
// sample's target — all over maps keyed by the handful of domain
// vertices instead of dense vectors.
//
// Vertices the restricted traversals no longer reach simply drop out of
// the rebuilt edge; callers treat them as weight zero.
//
// Complexity: O(|D| + E(D)) time and space for domain D.
func rebuildHyperedge(g *core.Graph, pair samplePair, seeds *core.SeedSet, domain core.VertexSet) (betweennessEdge, error) {
	base, err := bfs.CountsInDomain(g, pair.s, domain)
	if err != nil {
		return nil, err
	}
	avoid, err := bfs.SeedAvoidingCountsInDomain(g, pair.s, base.Dist, seeds, domain)
	if err != nil {
		return nil, err
	}

	if _, reached := base.Dist[pair.t]; !reached {
		return nil, nil
	}

	visited := make(map[int]bool, domain.Len())
	delta := make(map[int]float64, domain.Len())
	queue := make([]int, 0, domain.Len())

	var edge betweennessEdge
	visited[pair.t] = true
	queue = append(queue, pair.t)

	for head := 0; head < len(queue); head++ {
		u := queue[head]
		if u == pair.s {
			continue
		}
		du := base.Dist[u]
		for _, v := range g.Neighbors(u) {
			if !domain.Contains(v) {
				continue
			}
			dv, reached := base.Dist[v]
			if !reached {
				continue
			}
			switch dv {
			case du - 1:
				if !visited[v] {
					visited[v] = true
					queue = append(queue, v)
				}
			case du + 1:
				if seeds.Contains(v) {
					continue
				}
				contrib := float64(avoid[u]) / float64(base.Count[v])
				if av := avoid[v]; av != 0 {
					contrib += delta[v] * float64(avoid[u]) / float64(av)
				}
				delta[u] += contrib
			}
		}
		edge = append(edge, weightedVertex{vertex: u, weight: delta[u]})
	}

	return edge, nil
}
