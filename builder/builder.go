package builder

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/adaptix/core"
)

// Sentinel errors for graph construction.
var (
	// ErrTooFewVertices is returned when a constructor's vertex count is
	// below the topology's minimum.
	ErrTooFewVertices = errors.New("builder: too few vertices")

	// ErrNegativeDegree is returned when a stochastic constructor's target
	// degree is negative.
	ErrNegativeDegree = errors.New("builder: negative target degree")
)

// Minimum vertex counts per topology (no magic numbers in constructors).
const (
	minPathVertices     = 1
	minCycleVertices    = 3
	minStarVertices     = 2
	minCompleteVertices = 1
)

// Path builds the path graph P_n: vertices 0..n−1 with edges i─(i+1).
// Requires n ≥ 1. Complexity: O(n).
func Path(n int) (*core.Graph, error) {
	if n < minPathVertices {
		return nil, fmt.Errorf("Path: n=%d < min=%d: %w", n, minPathVertices, ErrTooFewVertices)
	}
	edges := make([]core.Edge, 0, n-1)
	for i := 0; i+1 < n; i++ {
		edges = append(edges, core.Edge{U: i, V: i + 1})
	}
	return core.FromEdges(edges, core.WithVertexCount(n))
}

// Cycle builds the cycle graph C_n: Path(n) plus the edge (n−1)─0.
// Requires n ≥ 3. Complexity: O(n).
func Cycle(n int) (*core.Graph, error) {
	if n < minCycleVertices {
		return nil, fmt.Errorf("Cycle: n=%d < min=%d: %w", n, minCycleVertices, ErrTooFewVertices)
	}
	edges := make([]core.Edge, 0, n)
	for i := 0; i+1 < n; i++ {
		edges = append(edges, core.Edge{U: i, V: i + 1})
	}
	edges = append(edges, core.Edge{U: n - 1, V: 0})
	return core.FromEdges(edges)
}

// Star builds the star graph S_n: hub vertex 0 with spokes to 1..n−1.
// Requires n ≥ 2. Complexity: O(n).
func Star(n int) (*core.Graph, error) {
	if n < minStarVertices {
		return nil, fmt.Errorf("Star: n=%d < min=%d: %w", n, minStarVertices, ErrTooFewVertices)
	}
	edges := make([]core.Edge, 0, n-1)
	for leaf := 1; leaf < n; leaf++ {
		edges = append(edges, core.Edge{U: 0, V: leaf})
	}
	return core.FromEdges(edges)
}

// Complete builds the complete graph K_n on vertices 0..n−1.
// Requires n ≥ 1. Complexity: O(n²).
func Complete(n int) (*core.Graph, error) {
	if n < minCompleteVertices {
		return nil, fmt.Errorf("Complete: n=%d < min=%d: %w", n, minCompleteVertices, ErrTooFewVertices)
	}
	edges := make([]core.Edge, 0, n*(n-1)/2)
	for u := 0; u < n; u++ {
		for v := u + 1; v < n; v++ {
			edges = append(edges, core.Edge{U: u, V: v})
		}
	}
	return core.FromEdges(edges, core.WithVertexCount(n))
}
