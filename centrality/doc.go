// Package centrality computes seed-aware coverage and betweenness
// centrality on undirected graphs — exactly, by Monte-Carlo sampling,
// and adaptively for top-k seed selection.
//
// Model
//
//	A seed set S ⊆ V marks vertices already "taken". A shortest path is
//	blocked the moment it enters a seed: blocked flow contributes to no
//	one. Coverage centrality counts unordered endpoint pairs whose
//	surviving shortest paths cross a vertex; betweenness centrality sums
//	a vertex's fractional share σ′(s,t through v)/σ(s,t) over ordered
//	pairs. Seed vertices themselves always score zero.
//
// Entry points
//
//	ExactCoverage / ExactBetweenness            — full-graph reference engines
//	ApproximateCoverage / ApproximateBetweenness — hypergraph-sampled estimates
//	AdaptiveCoverage / AdaptiveBetweenness       — top-k seed selection
//
// The adaptive selectors are the heart of the package: they sample a
// hypergraph of shortest-path sketches, run weighted greedy selection on
// a lazy max-heap, and after each pick repair only the hyperedges the
// new seed touches — re-traversing each sample's small recorded vertex
// domain instead of the whole graph.
//
// Determinism
//
//	Samplers draw endpoints from an injected *rand.Rand (WithRand /
//	WithSeed). Without either option, draws are seeded from process
//	entropy and runs are not reproducible. Ties between equal-weight
//	vertices surface in heap order and may differ across runs.
//
// Complexity (V = |vertices|, E = |edges|, M = samples, k = budget)
//
//   - Exact engines:      O(V·(V+E)) betweenness, O(V²·(V+E)) coverage worst case
//   - Samplers:           O(M·(V+E))
//   - Adaptive selection: O(M·(V+E)) sampling + O((k + updates)·log) selection,
//     with each rebuild bounded by its hyperedge domain, not by V.
//
// Errors
//
//	ErrNilGraph, ErrSampleCount, ErrSeedBudget, ErrUnknownMethod, and
//	the seed validation errors re-used from package core.
package centrality
