package stats

import (
	"math"
	"testing"

	mstats "github.com/montanaflynn/stats"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestQuantileR7(t *testing.T) {
	xs := []float64{1, 2, 3, 4}

	assert.InDelta(t, 1.75, Quantile(xs, 0.25), 1e-12)
	assert.InDelta(t, 2.5, Quantile(xs, 0.5), 1e-12)
	assert.InDelta(t, 3.25, Quantile(xs, 0.75), 1e-12)
	assert.Equal(t, 1.0, Quantile(xs, 0))
	assert.Equal(t, 4.0, Quantile(xs, 1))
}

func TestQuantileEdgeCases(t *testing.T) {
	assert.True(t, math.IsNaN(Quantile(nil, 0.5)))
	assert.True(t, math.IsNaN(Quantile([]float64{1, 2}, -0.1)))
	assert.True(t, math.IsNaN(Quantile([]float64{1, 2}, 1.1)))
	assert.Equal(t, 7.0, Quantile([]float64{7}, 0.99))
}

func TestQuantileDoesNotMutateInput(t *testing.T) {
	xs := []float64{3, 1, 2}
	Quantile(xs, 0.5)
	assert.Equal(t, []float64{3, 1, 2}, xs)
}

func TestMeanMedianAgainstOracle(t *testing.T) {
	xs := []float64{2.5, -1.25, 7.75, 0.5, 3.25, -4.0, 12.5, 0.25}

	wantMean, err := mstats.Mean(xs)
	require.NoError(t, err)
	wantMedian, err := mstats.Median(xs)
	require.NoError(t, err)
	wantSD, err := mstats.StandardDeviationSample(xs)
	require.NoError(t, err)

	assert.InDelta(t, wantMean, Mean(xs), 1e-12)
	assert.InDelta(t, wantMedian, Median(xs), 1e-12)
	assert.InDelta(t, wantSD, SampleStdDev(xs), 1e-12)
}

func TestVariance(t *testing.T) {
	xs := []float64{1, 2, 3, 4, 5}

	assert.InDelta(t, 2.5, SampleVariance(xs), 1e-12)
	assert.InDelta(t, 2.0, PopulationVariance(xs), 1e-12)
	assert.InDelta(t, 1.5811388300841898, SampleStdDev(xs), 1e-12)

	assert.True(t, math.IsNaN(SampleVariance([]float64{42})))
	assert.True(t, math.IsNaN(PopulationVariance(nil)))
}

func TestMinMaxRange(t *testing.T) {
	xs := []float64{3, -1, 4, 1, 5}

	assert.Equal(t, -1.0, Min(xs))
	assert.Equal(t, 5.0, Max(xs))
	assert.Equal(t, 6.0, Range(xs))
	assert.True(t, math.IsNaN(Range(nil)))
}

func TestQuartilesAndIQR(t *testing.T) {
	q1, q2, q3 := Quartiles([]float64{1, 2, 3, 4, 5})
	assert.Equal(t, 2.0, q1)
	assert.Equal(t, 3.0, q2)
	assert.Equal(t, 4.0, q3)
	assert.Equal(t, 2.0, IQR([]float64{1, 2, 3, 4, 5}))
}

func TestMode(t *testing.T) {
	assert.Equal(t, []float64{2}, Mode([]float64{1, 2, 2, 3}))
	assert.Equal(t, []float64{1, 2}, Mode([]float64{1, 1, 2, 2, 3}))
	assert.Nil(t, Mode(nil))
}

func TestModeAbsorbsFloatNoise(t *testing.T) {
	// 0.1+0.2 != 0.3 bitwise, but they land in the same bucket.
	modes := Mode([]float64{0.1 + 0.2, 0.3, 1.0})
	require.Len(t, modes, 1)
	assert.InDelta(t, 0.3, modes[0], 1e-9)
}

func TestSum(t *testing.T) {
	assert.Equal(t, 10.0, Sum([]float64{1, 2, 3, 4}))
	assert.Equal(t, 0.0, Sum(nil))
}
