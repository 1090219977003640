package stats

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMeanVarMatchesBatch(t *testing.T) {
	xs := []float64{4.2, -1.5, 3.3, 0.0, 9.9, -2.7, 5.5}

	var acc MeanVar
	for _, x := range xs {
		acc.Push(x)
	}

	assert.Equal(t, uint64(len(xs)), acc.Count())
	assert.InDelta(t, Mean(xs), acc.Mean(), 1e-12)
	assert.InDelta(t, SampleVariance(xs), acc.SampleVariance(), 1e-12)
	assert.InDelta(t, PopulationVariance(xs), acc.PopulationVariance(), 1e-12)
}

func TestMeanVarLargeOffset(t *testing.T) {
	// Welford keeps precision when a huge offset would defeat the naive
	// sum-of-squares formula.
	var acc MeanVar
	for _, x := range []float64{1e9 + 4, 1e9 + 7, 1e9 + 13, 1e9 + 16} {
		acc.Push(x)
	}
	assert.InDelta(t, 1e9+10, acc.Mean(), 1e-6)
	assert.InDelta(t, 30.0, acc.SampleVariance(), 1e-6)
}

func TestMeanVarDegenerate(t *testing.T) {
	var acc MeanVar
	assert.Equal(t, 0.0, acc.Mean())
	assert.True(t, math.IsNaN(acc.SampleVariance()))
	assert.True(t, math.IsNaN(acc.PopulationVariance()))

	acc.Push(3)
	assert.Equal(t, 3.0, acc.Mean())
	assert.True(t, math.IsNaN(acc.SampleVariance()))
	assert.Equal(t, 0.0, acc.PopulationVariance())
}
