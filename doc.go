// Package adaptix computes and approximates seed-aware centrality
// measures on undirected graphs.
//
// 🎯 What is adaptix?
//
//	A focused library for adaptive seed selection: given a graph and a
//	budget k, pick the k vertices that jointly cover the most shortest
//	paths, where a vertex's contribution is counted only on paths that
//	avoid every previously chosen seed.
//
//	  • Exact engines      — seed-aware coverage & betweenness over the full graph
//	  • Monte-Carlo sketch — hypergraph sampling of shortest-path structure
//	  • Adaptive selector  — lazy-heap greedy with localized hyperedge rebuilds
//
// ✨ Why choose adaptix?
//
//   - Deterministic when you want it — RNG is an injected collaborator
//   - Single-threaded core           — no locks, no surprises
//   - Pure Go                        — no cgo, no hidden build steps
//
// Everything is organized under four subpackages:
//
//	core/       — immutable dense graph store, seed sets, edge-list loader
//	bfs/        — layered BFS primitives: distances, path counts, seed avoidance
//	centrality/ — exact, approximate and adaptive centrality engines
//	builder/    — deterministic graph constructors for tests and benchmarks
//
// Quick ASCII example:
//
//	    0───1───2───3
//
//	a path on four vertices; vertices 1 and 2 carry all the betweenness.
//
// See each package's doc.go for tutorials, contracts, and complexity notes.
package adaptix
