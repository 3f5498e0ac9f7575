package core

import (
	"fmt"
	"sort"
)

// Graph is the dense, immutable adjacency representation of an undirected
// simple graph on vertices 0..V−1.
//
// Each edge is stored on both endpoints; every neighbor slice is sorted
// ascending and duplicate-free. A Graph never changes after FromEdges
// returns, so it may be shared read-only across computations.
type Graph struct {
	adj       [][]int
	edgeCount int
}

// FromEdges builds a Graph from an undirected edge list.
//
// The vertex universe is 0..max(endpoint seen), extended by
// WithVertexCount if requested. Duplicate edges collapse to one and
// self-loops are dropped. Returns ErrNegativeVertex if any endpoint is
// negative.
//
// Complexity: O(V + E log E) time, O(V + E) space.
func FromEdges(edges []Edge, opts ...GraphOption) (*Graph, error) {
	var cfg graphConfig
	for _, opt := range opts {
		opt(&cfg)
	}

	// 1) Establish the vertex universe: one past the highest endpoint.
	vertexCount := cfg.minVertexCount
	for _, e := range edges {
		if e.U < 0 || e.V < 0 {
			return nil, fmt.Errorf("%w: edge (%d, %d)", ErrNegativeVertex, e.U, e.V)
		}
		if e.U >= vertexCount {
			vertexCount = e.U + 1
		}
		if e.V >= vertexCount {
			vertexCount = e.V + 1
		}
	}

	// 2) Store each surviving edge on both endpoints.
	adj := make([][]int, vertexCount)
	for _, e := range edges {
		if e.U == e.V {
			continue // self-loops carry no shortest-path information
		}
		adj[e.U] = append(adj[e.U], e.V)
		adj[e.V] = append(adj[e.V], e.U)
	}

	// 3) Sort and deduplicate every neighbor slice.
	edgeCount := 0
	for u := range adj {
		sort.Ints(adj[u])
		adj[u] = dedupSorted(adj[u])
		edgeCount += len(adj[u])
	}

	return &Graph{adj: adj, edgeCount: edgeCount / 2}, nil
}

// dedupSorted removes adjacent duplicates from a sorted slice in place.
func dedupSorted(vs []int) []int {
	if len(vs) < 2 {
		return vs
	}
	w := 1
	for i := 1; i < len(vs); i++ {
		if vs[i] != vs[w-1] {
			vs[w] = vs[i]
			w++
		}
	}
	return vs[:w]
}

// VertexCount returns V, the number of vertices.
func (g *Graph) VertexCount() int { return len(g.adj) }

// EdgeCount returns the number of distinct undirected edges.
func (g *Graph) EdgeCount() int { return g.edgeCount }

// Degree returns the number of neighbors of u.
// The caller guarantees 0 ≤ u < VertexCount().
func (g *Graph) Degree(u int) int { return len(g.adj[u]) }

// Neighbors returns u's neighbor slice, sorted ascending.
// The slice is owned by the Graph and must not be modified.
// The caller guarantees 0 ≤ u < VertexCount().
func (g *Graph) Neighbors(u int) []int { return g.adj[u] }

// HasEdge reports whether the undirected edge {u, v} exists.
// Complexity: O(log deg(u)).
func (g *Graph) HasEdge(u, v int) bool {
	if u < 0 || v < 0 || u >= len(g.adj) || v >= len(g.adj) {
		return false
	}
	ns := g.adj[u]
	i := sort.SearchInts(ns, v)
	return i < len(ns) && ns[i] == v
}
