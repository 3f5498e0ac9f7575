package centrality_test

import (
	"testing"

	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/stat"

	"github.com/katalvlaran/adaptix/builder"
	"github.com/katalvlaran/adaptix/centrality"
)

// TestApproximateCoverage_ConvergesToExact runs the coverage estimator
// repeatedly and checks its scaled mean lands on the exact engine's
// count. The sampler draws ordered endpoint pairs while the exact engine
// counts unordered ones, hence the extra factor of two in the scaling.
func TestApproximateCoverage_ConvergesToExact(t *testing.T) {
	const (
		vertices = 10
		samples  = 2000
		runs     = 8
	)
	g, err := builder.Star(vertices)
	require.NoError(t, err)

	exact, err := centrality.ExactCoverage(g, nil)
	require.NoError(t, err)
	require.EqualValues(t, 36, exact[0]) // C(9,2) leaf pairs through the hub

	scaled := make([]float64, 0, runs)
	for seed := int64(0); seed < runs; seed++ {
		approx, err := centrality.ApproximateCoverage(g, samples, nil, centrality.WithSeed(seed))
		require.NoError(t, err)
		scale := float64(vertices*vertices) / (2 * samples)
		scaled = append(scaled, float64(approx[0])*scale)
	}

	mean := stat.Mean(scaled, nil)
	require.InDelta(t, float64(exact[0]), mean, 2.0,
		"scaled estimator mean drifted: got %.2f over %v", mean, scaled)
}

// TestApproximateCoverage_SeedAware: with the hub seeded, every sample
// is intercepted and all estimates collapse to zero.
func TestApproximateCoverage_SeedAware(t *testing.T) {
	g, err := builder.Star(6)
	require.NoError(t, err)

	approx, err := centrality.ApproximateCoverage(g, 1024, []int{0}, centrality.WithSeed(1))
	require.NoError(t, err)
	for v, score := range approx {
		require.Zero(t, score, "vertex %d scored despite the hub seed", v)
	}
}

// TestApproximateBetweenness_RanksBottleneck: the estimator must agree
// with the exact engine on who carries the most flow.
func TestApproximateBetweenness_RanksBottleneck(t *testing.T) {
	g, err := builder.Path(5)
	require.NoError(t, err)

	approx, err := centrality.ApproximateBetweenness(g, 4096, nil, centrality.WithSeed(2))
	require.NoError(t, err)

	top := 0
	for v := range approx {
		if approx[v] > approx[top] {
			top = v
		}
	}
	require.Equal(t, 2, top)
	require.Zero(t, approx[0], "path endpoints sit inside no shortest path")
	require.Zero(t, approx[4], "path endpoints sit inside no shortest path")
}

// TestApproximateBetweenness_SeedsScoreZero: seeds accumulate no mass
// and non-seeds stay non-negative.
func TestApproximateBetweenness_SeedsScoreZero(t *testing.T) {
	g, err := builder.RandomSparse(40, 4, builder.WithSeed(8))
	require.NoError(t, err)

	seeds := []int{3, 17, 29}
	approx, err := centrality.ApproximateBetweenness(g, 512, seeds, centrality.WithSeed(9))
	require.NoError(t, err)

	for _, seed := range seeds {
		require.Zero(t, approx[seed], "seed %d accumulated weight", seed)
	}
	for v, score := range approx {
		require.GreaterOrEqual(t, score, 0.0, "negative score at %d", v)
	}
}

// TestApproximate_Validation covers the argument contract.
func TestApproximate_Validation(t *testing.T) {
	_, err := centrality.ApproximateCoverage(nil, 16, nil)
	require.ErrorIs(t, err, centrality.ErrNilGraph)

	g, err := builder.Path(3)
	require.NoError(t, err)

	_, err = centrality.ApproximateCoverage(g, 0, nil)
	require.ErrorIs(t, err, centrality.ErrSampleCount)

	_, err = centrality.ApproximateBetweenness(g, -5, nil)
	require.ErrorIs(t, err, centrality.ErrSampleCount)
}
