package centrality

import (
	"container/heap"
	"math"

	"github.com/katalvlaran/adaptix/core"
)

// AdaptiveCoverage selects up to `budget` seeds that jointly maximize
// coverage centrality, by weighted greedy selection over a sampled
// hypergraph of `samples` coverage sketches.
//
// Each hyperedge is consumed by the first selected vertex it contains:
// a chosen seed "covers" every sample it touches, and every other vertex
// of a covered sample loses one unit of degree. Selection stops early
// when no vertex retains positive marginal contribution.
//
// Marginals are reported in the sampled scale (hyperedge counts).
// Scaled by V²/M they estimate the marginal count of ordered endpoint
// pairs; scaled by V²/(2M) they estimate coverage, which counts
// unordered pairs.
//
// Complexity: O(samples·(V+E)) sampling + O(updates·log updates) selection.
func AdaptiveCoverage(g *core.Graph, samples, budget int, opts ...Option) (*Selection, error) {
	selection := &Selection{Seeds: []int{}, Marginals: []float64{}}

	if g == nil {
		return nil, ErrNilGraph
	}
	if budget < 0 {
		return nil, ErrSeedBudget
	}
	if budget == 0 {
		return selection, nil // nothing to select; the graph is not touched
	}
	if samples <= 0 {
		return nil, ErrSampleCount
	}
	vertexCount := g.VertexCount()
	if vertexCount == 0 {
		return selection, nil
	}

	o := buildOptions(opts)
	noSeeds, err := core.NewSeedSet(vertexCount)
	if err != nil {
		return nil, err
	}
	hypergraph, err := buildCoverageHypergraph(g, samples, noSeeds, o.rng)
	if err != nil {
		return nil, err
	}

	// 1) Degrees and the vertex → touching-hyperedges index.
	degrees := make([]float64, vertexCount)
	vertexToEdges := make([][]int, vertexCount)
	for i, edge := range hypergraph {
		for _, v := range edge {
			degrees[v]++
			vertexToEdges[v] = append(vertexToEdges[v], i)
		}
	}

	// 2) Prime the lazy heap with every vertex at its initial degree.
	pq := make(vertexPQ, 0, vertexCount)
	for u := 0; u < vertexCount; u++ {
		pq = append(pq, vertexItem{vertex: u, weight: degrees[u]})
	}
	heap.Init(&pq)

	current := degrees
	done := make([]bool, vertexCount)
	edgeDone := make([]bool, len(hypergraph))

	// 3) Greedy loop with lazy re-evaluation.
	for pq.Len() > 0 && len(selection.Seeds) < budget {
		item := heap.Pop(&pq).(vertexItem)
		u := item.vertex
		if done[u] {
			continue
		}
		if math.Abs(item.weight-current[u]) > Epsilon {
			continue // stale entry; a fresher one is further down
		}
		if item.weight < Epsilon {
			break // every remaining vertex covers nothing new
		}

		done[u] = true
		selection.Seeds = append(selection.Seeds, u)
		selection.Marginals = append(selection.Marginals, item.weight)

		// 4) Consume every hyperedge the new seed touches.
		for _, ei := range vertexToEdges[u] {
			if edgeDone[ei] {
				continue
			}
			edgeDone[ei] = true
			for _, v := range hypergraph[ei] {
				current[v]--
				heap.Push(&pq, vertexItem{vertex: v, weight: current[v]})
			}
		}
	}

	return selection, nil
}

// AdaptiveBetweenness selects up to `budget` seeds that jointly maximize
// betweenness centrality over a sampled hypergraph of `samples` weighted
// sketches.
//
// Unlike coverage, a selected vertex does not consume hyperedges — it
// becomes a seed inside them. Every hyperedge the seed touches is
// rebuilt against the grown seed set, confined to the small vertex
// domain recorded when the sample was drawn, and the affected vertices'
// degrees are adjusted by the difference between old and new weights.
//
// Complexity: O(samples·(V+E)) sampling; each selection triggers
// rebuilds bounded by the touched hyperedges' domains.
func AdaptiveBetweenness(g *core.Graph, samples, budget int, opts ...Option) (*Selection, error) {
	selection := &Selection{Seeds: []int{}, Marginals: []float64{}}

	if g == nil {
		return nil, ErrNilGraph
	}
	if budget < 0 {
		return nil, ErrSeedBudget
	}
	if budget == 0 {
		return selection, nil
	}
	if samples <= 0 {
		return nil, ErrSampleCount
	}
	vertexCount := g.VertexCount()
	if vertexCount == 0 {
		return selection, nil
	}

	o := buildOptions(opts)
	seeds, err := core.NewSeedSet(vertexCount)
	if err != nil {
		return nil, err
	}
	hypergraph, pairs, err := buildBetweennessHypergraph(g, samples, seeds, o.rng)
	if err != nil {
		return nil, err
	}

	// 1) Degrees, vertex → hyperedge index, and per-hyperedge domains.
	//    A domain is the union of every vertex the sample ever touched
	//    plus its endpoints; rebuilds never traverse beyond it.
	degrees := make([]float64, vertexCount)
	vertexToEdges := make([][]int, vertexCount)
	domains := make([]core.VertexSet, len(hypergraph))
	for i, edge := range hypergraph {
		domain := core.NewVertexSet(pairs[i].s, pairs[i].t)
		for _, wv := range edge {
			degrees[wv.vertex] += wv.weight
			vertexToEdges[wv.vertex] = append(vertexToEdges[wv.vertex], i)
			domain.Add(wv.vertex)
		}
		domains[i] = domain
	}

	// 2) Prime the lazy heap.
	pq := make(vertexPQ, 0, vertexCount)
	for u := 0; u < vertexCount; u++ {
		pq = append(pq, vertexItem{vertex: u, weight: degrees[u]})
	}
	heap.Init(&pq)

	current := degrees
	done := make([]bool, vertexCount)

	// 3) Greedy loop: pick, grow the seed set, repair touched hyperedges.
	for pq.Len() > 0 && len(selection.Seeds) < budget {
		item := heap.Pop(&pq).(vertexItem)
		u := item.vertex
		if done[u] {
			continue
		}
		if math.Abs(item.weight-current[u]) > Epsilon {
			continue
		}
		if item.weight < Epsilon {
			break
		}

		done[u] = true
		if err := seeds.Add(u); err != nil {
			return nil, err
		}
		selection.Seeds = append(selection.Seeds, u)
		selection.Marginals = append(selection.Marginals, item.weight)

		// 4) Rebuild every hyperedge the new seed appears in.
		for _, ei := range vertexToEdges[u] {
			rebuilt, err := rebuildHyperedge(g, pairs[ei], seeds, domains[ei])
			if err != nil {
				return nil, err
			}
			applyRebuild(hypergraph, ei, rebuilt, current, done, vertexToEdges, &pq)
		}
	}

	return selection, nil
}

// applyRebuild replaces hyperedge ei with its rebuilt weights and folds
// the weight differences into the current degrees. A vertex present only
// in the old edge counts as dropping to zero; a vertex present only in
// the new edge (possible only for the sample's endpoints) is linked to
// the hyperedge so later selections still trigger its rebuild. Every
// touched, not-yet-selected vertex gets a fresh heap entry.
func applyRebuild(hypergraph []betweennessEdge, ei int, rebuilt betweennessEdge, current []float64, done []bool, vertexToEdges [][]int, pq *vertexPQ) {
	old := hypergraph[ei]

	newWeights := make(map[int]float64, len(rebuilt))
	for _, wv := range rebuilt {
		newWeights[wv.vertex] = wv.weight
	}

	seen := make(map[int]struct{}, len(old)+len(rebuilt))
	for _, wv := range old {
		seen[wv.vertex] = struct{}{}
		if done[wv.vertex] {
			continue
		}
		current[wv.vertex] += newWeights[wv.vertex] - wv.weight
		heap.Push(pq, vertexItem{vertex: wv.vertex, weight: current[wv.vertex]})
	}
	for _, wv := range rebuilt {
		if _, ok := seen[wv.vertex]; ok {
			continue
		}
		vertexToEdges[wv.vertex] = append(vertexToEdges[wv.vertex], ei)
		if done[wv.vertex] {
			continue
		}
		current[wv.vertex] += wv.weight
		heap.Push(pq, vertexItem{vertex: wv.vertex, weight: current[wv.vertex]})
	}

	hypergraph[ei] = rebuilt
}
