// Package centrality option plumbing, shared constants, and sentinel
// errors. The engines live in exact.go, approximate.go and adaptive.go;
// the sampling machinery in hypergraph.go.
package centrality

import (
	"errors"
	"math/rand"
	"time"
)

// Epsilon is the numerical tolerance for the lazy-heap staleness test:
// a popped entry is acted on only when its weight still matches the
// vertex's current degree within Epsilon.
const Epsilon = 1e-8

// Defaults for the sampling and selection budgets.
const (
	// DefaultSampleCount is the hypergraph sample budget M used when a
	// Config leaves it unset.
	DefaultSampleCount = 1024

	// DefaultSeedBudget is the adaptive budget k used when a Config
	// leaves it unset.
	DefaultSeedBudget = 2
)

// Sentinel errors for centrality computations.
var (
	// ErrNilGraph is returned if a nil graph pointer is passed.
	ErrNilGraph = errors.New("centrality: graph is nil")

	// ErrSampleCount is returned when a sampler is asked for a
	// non-positive number of samples.
	ErrSampleCount = errors.New("centrality: sample count must be positive")

	// ErrSeedBudget is returned when an adaptive budget is negative.
	ErrSeedBudget = errors.New("centrality: seed budget must be non-negative")

	// ErrUnknownMethod is returned by Config.Run for an unrecognized method.
	ErrUnknownMethod = errors.New("centrality: unknown method")
)

// Selection is the outcome of an adaptive run: the chosen seeds in
// selection order, and for each seed the estimated objective value it
// added given the seeds before it. Marginals arrive in non-increasing
// order (up to Epsilon). Both slices are shorter than the budget when
// every remaining vertex has zero marginal contribution.
type Selection struct {
	Seeds     []int
	Marginals []float64
}

// Option customizes a sampling or adaptive run via functional arguments.
type Option func(*options)

// options holds the run parameters behind the functional Options.
type options struct {
	rng *rand.Rand
}

// defaultOptions seeds the RNG from process entropy; reproducibility
// requires WithSeed or WithRand.
func defaultOptions() options {
	return options{rng: rand.New(rand.NewSource(time.Now().UnixNano()))}
}

// buildOptions applies opts over the defaults.
func buildOptions(opts []Option) options {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// WithRand provides an explicit RNG for endpoint sampling.
// Panics on nil to surface programmer error early; prefer WithSeed for
// reproducible runs.
func WithRand(r *rand.Rand) Option {
	if r == nil {
		panic("centrality: WithRand(nil)")
	}
	return func(o *options) { o.rng = r }
}

// WithSeed creates a new *rand.Rand with the given seed (deterministic).
// Use this in tests and examples to lock outcomes.
func WithSeed(seed int64) Option {
	return func(o *options) { o.rng = rand.New(rand.NewSource(seed)) }
}
