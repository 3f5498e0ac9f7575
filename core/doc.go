// Package core provides the dense, immutable graph store shared by every
// algorithm package in adaptix, plus the small set and seed-set types the
// engines exchange.
//
// What
//
//   - Graph: an undirected simple graph on vertices 0..V−1, stored as
//     sorted, deduplicated adjacency slices. Immutable after construction.
//   - Edge: an undirected endpoint pair used when building a Graph.
//   - VertexSet: an unordered vertex subset used to confine traversals.
//   - SeedSet: an ordered, duplicate-free seed sequence with an O(1)
//     membership test.
//   - Load / LoadFile: the whitespace-separated edge-list reader.
//
// Why
//
//   - Centrality engines touch every adjacency slice millions of times;
//     a dense slice-of-slices layout keeps those scans allocation-free.
//   - Seeds are consulted on every BFS edge relaxation; SeedSet keeps the
//     membership test a single slice index.
//
// Input format
//
//	One edge per line, two non-negative integer vertex ids separated by
//	whitespace. Lines beginning with '#' are comments. The vertex universe
//	is 0..max(id seen); ids never mentioned become isolated vertices.
//	Duplicate edges collapse to one; self-loops are dropped.
//
// Complexity (V = |vertices|, E = |edges|)
//
//   - Construction: O(V + E log E) (per-vertex neighbor sort)
//   - Degree / Neighbors: O(1)
//   - Memory: O(V + E)
//
// Errors
//
//   - ErrNegativeVertex  if an edge references a negative vertex id.
//   - ErrMalformedLine   if an edge-list line is not two integers.
//   - ErrSeedOutOfRange  if a seed id is outside 0..V−1.
//   - ErrDuplicateSeed   if the same seed is supplied twice.
package core
