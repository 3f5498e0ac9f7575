// Package bfs provides the layered breadth-first-search primitives the
// centrality engines are built on: per-source distances, shortest-path
// counts, and seed-avoiding path counts.
//
// What
//
//   - Counts: full-graph BFS from a source s, returning dense distance
//     and path-count vectors (d, σ). d(v) = −1 marks v unreachable;
//     σ(v) is the number of shortest s→v paths.
//   - CountsInDomain: the same traversal confined to a vertex subset,
//     returning sparse maps over the vertices actually reached.
//   - SeedAvoidingCounts: given a baseline (d, σ) and a seed set,
//     recounts paths whose internal vertices avoid every seed (σ′).
//     Only edges that advance one baseline layer participate.
//   - SeedAvoidingCountsInDomain: the subset-confined variant.
//
// Why
//
//   - Every centrality flavor in adaptix — exact, sampled, adaptive —
//     reduces to these four traversals. Keeping them here keeps the
//     engines free of queue plumbing.
//   - The domain variants make localized hyperedge rebuilds cheap: a
//     rebuild re-traverses only the handful of vertices a sample ever
//     touched, not the whole graph.
//
// Invariants
//
//   - σ(s) = 1 and, for every reached v ≠ s,
//     σ(v) = Σ { σ(u) : (u,v) ∈ E, d(u) = d(v)−1 }.
//   - σ′(v) ≤ σ(v) for every v; σ′(v) = 0 for every seed v ≠ s.
//   - If the source itself is a seed, σ′ is identically zero: paths
//     out of a seed are blocked at the first step.
//
// Complexity (V = |vertices|, E = |edges|)
//
//   - Time:   O(V + E) per traversal (domain variants: O(|D| + E(D)))
//   - Memory: O(V) dense, O(|reached|) sparse
//
// Errors
//
//   - ErrNilGraph          if the graph pointer is nil.
//   - ErrVertexOutOfRange  if the source is not a vertex.
//   - ErrBaselineMismatch  if a baseline result is nil, its length does
//     not fit the graph, or its source is not a vertex.
package bfs
