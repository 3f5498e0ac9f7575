package centrality

import (
	"fmt"
	"io"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/adaptix/core"
)

// Method names a centrality computation for configuration-driven runs.
type Method string

// Recognized methods.
const (
	MethodExactCoverage          Method = "exact-coverage"
	MethodApproximateCoverage    Method = "approximate-coverage"
	MethodTopKCoverage           Method = "topk-coverage"
	MethodExactBetweenness       Method = "exact-betweenness"
	MethodApproximateBetweenness Method = "approximate-betweenness"
	MethodTopKBetweenness        Method = "topk-betweenness"
)

// Config describes one centrality run. Zero values fall back to the
// package defaults: Samples → DefaultSampleCount, Budget →
// DefaultSeedBudget. A nil Seed leaves the RNG on process entropy.
type Config struct {
	// Method selects the computation.
	Method Method `yaml:"method"`

	// Samples is the hypergraph sample budget M (sampling methods only).
	Samples int `yaml:"samples,omitempty"`

	// Budget is the adaptive seed budget k (topk methods only).
	Budget int `yaml:"budget,omitempty"`

	// Seeds are pre-selected seed vertices (exact/approximate methods).
	Seeds []int `yaml:"seeds,omitempty"`

	// Seed, when set, makes endpoint sampling reproducible.
	Seed *int64 `yaml:"seed,omitempty"`
}

// LoadConfig decodes a YAML run configuration from r.
// Unknown fields are rejected so typos fail loudly.
func LoadConfig(r io.Reader) (*Config, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	var cfg Config
	if err := dec.Decode(&cfg); err != nil {
		return nil, fmt.Errorf("centrality: decode config: %w", err)
	}
	return &cfg, nil
}

// Report carries the outcome of a Config-driven run; exactly one field
// group is populated, matching the configured method.
type Report struct {
	// Coverage holds per-vertex counts for the coverage methods.
	Coverage []int64

	// Betweenness holds per-vertex scores for the betweenness methods.
	Betweenness []float64

	// Selection holds the seed list and marginals for the topk methods.
	Selection *Selection
}

// Run executes the configured method against g.
// Returns ErrUnknownMethod for an unrecognized method name.
func (c Config) Run(g *core.Graph) (*Report, error) {
	samples := c.Samples
	if samples == 0 {
		samples = DefaultSampleCount
	}
	budget := c.Budget
	if budget == 0 {
		budget = DefaultSeedBudget
	}
	var opts []Option
	if c.Seed != nil {
		opts = append(opts, WithSeed(*c.Seed))
	}

	switch c.Method {
	case MethodExactCoverage:
		scores, err := ExactCoverage(g, c.Seeds)
		if err != nil {
			return nil, err
		}
		return &Report{Coverage: scores}, nil
	case MethodApproximateCoverage:
		scores, err := ApproximateCoverage(g, samples, c.Seeds, opts...)
		if err != nil {
			return nil, err
		}
		return &Report{Coverage: scores}, nil
	case MethodTopKCoverage:
		sel, err := AdaptiveCoverage(g, samples, budget, opts...)
		if err != nil {
			return nil, err
		}
		return &Report{Selection: sel}, nil
	case MethodExactBetweenness:
		scores, err := ExactBetweenness(g, c.Seeds)
		if err != nil {
			return nil, err
		}
		return &Report{Betweenness: scores}, nil
	case MethodApproximateBetweenness:
		scores, err := ApproximateBetweenness(g, samples, c.Seeds, opts...)
		if err != nil {
			return nil, err
		}
		return &Report{Betweenness: scores}, nil
	case MethodTopKBetweenness:
		sel, err := AdaptiveBetweenness(g, samples, budget, opts...)
		if err != nil {
			return nil, err
		}
		return &Report{Selection: sel}, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownMethod, c.Method)
	}
}
