package stats

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMAD(t *testing.T) {
	assert.Equal(t, 1.0, MAD([]float64{1, 2, 3, 4, 5}))
	assert.Equal(t, 1.0, MAD([]float64{1, 1, 2, 2, 4, 6, 9}))
	assert.Equal(t, 0.0, MAD([]float64{5, 5, 5}))
	assert.True(t, math.IsNaN(MAD(nil)))
}

func TestRobustZScores(t *testing.T) {
	zs := RobustZScores([]float64{1, 2, 3, 4, 5})
	require.Len(t, zs, 5)
	assert.InDelta(t, 0.0, zs[2], 1e-12)
	assert.InDelta(t, 2/MADScale, zs[4], 1e-12)
	assert.InDelta(t, -zs[4], zs[0], 1e-12)

	// Zero MAD falls back to all zeros instead of infinities.
	assert.Equal(t, []float64{0, 0, 0}, RobustZScores([]float64{7, 7, 7}))
}

func TestTrimmedMean(t *testing.T) {
	xs := []float64{1, 2, 3, 4, 5, 6, 7, 8, 9, 10}
	assert.InDelta(t, 5.5, TrimmedMean(xs, 0.8), 1e-12) // drops 1 and 10

	withOutlier := []float64{1, 2, 3, 4, 100}
	assert.InDelta(t, 3.0, TrimmedMean(withOutlier, 0.6), 1e-12)

	assert.InDelta(t, Mean(xs), TrimmedMean(xs, 1), 1e-12)
	assert.InDelta(t, Median(xs), TrimmedMean(xs, 0), 1e-12)
	assert.True(t, math.IsNaN(TrimmedMean(xs, 1.5)))
	assert.True(t, math.IsNaN(TrimmedMean(nil, 0.5)))
}

func TestWinsorizedMean(t *testing.T) {
	assert.InDelta(t, 3.0, WinsorizedMean([]float64{1, 2, 3, 4, 100}, 0.25), 1e-12)
	assert.True(t, math.IsNaN(WinsorizedMean([]float64{1, 2}, 0.6)))
}

func TestGeometricMean(t *testing.T) {
	assert.InDelta(t, 2.0, GeometricMean([]float64{1, 2, 4}), 1e-12)
	assert.InDelta(t, 4.0, GeometricMean([]float64{2, 8}), 1e-12)
	assert.True(t, math.IsNaN(GeometricMean([]float64{1, 0, 4})))
	assert.True(t, math.IsNaN(GeometricMean(nil)))
}

func TestHarmonicMean(t *testing.T) {
	assert.InDelta(t, 12.0/7.0, HarmonicMean([]float64{1, 2, 4}), 1e-12)
	assert.InDelta(t, 2.0, HarmonicMean([]float64{2, 2}), 1e-12)
	assert.True(t, math.IsNaN(HarmonicMean([]float64{1, -2})))
}
