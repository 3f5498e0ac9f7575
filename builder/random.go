package builder

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/katalvlaran/adaptix/core"
)

// Option customizes a stochastic constructor by mutating its config
// before any edge is drawn.
type Option func(*config)

// config carries the RNG used by stochastic builders.
type config struct {
	rng *rand.Rand
}

// defaultConfig seeds from process entropy; use WithSeed for
// reproducible runs.
func defaultConfig() config {
	return config{rng: rand.New(rand.NewSource(time.Now().UnixNano()))}
}

// WithRand provides an explicit RNG for stochastic builders.
// Panics on nil; prefer WithSeed for reproducible runs.
func WithRand(r *rand.Rand) Option {
	if r == nil {
		panic("builder: WithRand(nil)")
	}
	return func(c *config) { c.rng = r }
}

// WithSeed creates a new *rand.Rand with the given seed (deterministic).
// Use this in tests and benchmarks to lock outcomes.
func WithSeed(seed int64) Option {
	return func(c *config) { c.rng = rand.New(rand.NewSource(seed)) }
}

// RandomSparse builds a random simple graph on n vertices with roughly
// n·degree/2 edges: each draw picks two uniform endpoints, self-loops
// and duplicates collapse during construction, so realized degrees run
// slightly below the target. Requires n ≥ 1 and degree ≥ 0.
// Complexity: O(n·degree + n log n).
func RandomSparse(n, degree int, opts ...Option) (*core.Graph, error) {
	if n < minPathVertices {
		return nil, fmt.Errorf("RandomSparse: n=%d < min=%d: %w", n, minPathVertices, ErrTooFewVertices)
	}
	if degree < 0 {
		return nil, fmt.Errorf("RandomSparse: degree=%d: %w", degree, ErrNegativeDegree)
	}
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}

	draws := n * degree / 2
	edges := make([]core.Edge, 0, draws)
	for i := 0; i < draws; i++ {
		edges = append(edges, core.Edge{U: cfg.rng.Intn(n), V: cfg.rng.Intn(n)})
	}
	return core.FromEdges(edges, core.WithVertexCount(n))
}
