package stats

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestZScores(t *testing.T) {
	zs := ZScores([]float64{1, 2, 3, 4, 5})
	require.Len(t, zs, 5)
	assert.InDelta(t, -1.2649110640673518, zs[0], 1e-12)
	assert.InDelta(t, 0.0, zs[2], 1e-12)
	assert.InDelta(t, 0.0, Mean(zs), 1e-12)
	assert.InDelta(t, 1.0, SampleStdDev(zs), 1e-12)
}

func TestZScoresDegenerate(t *testing.T) {
	assert.Equal(t, []float64{0, 0, 0}, ZScores([]float64{4, 4, 4}))
	assert.Equal(t, []float64{0}, ZScores([]float64{9}))
	assert.Nil(t, ZScores(nil))
}

func TestMinMaxScale(t *testing.T) {
	assert.Equal(t, []float64{0, 0.25, 0.5, 0.75, 1}, MinMaxScale([]float64{1, 2, 3, 4, 5}, 0, 1))
	assert.Equal(t, []float64{-1, 0, 1}, MinMaxScale([]float64{10, 20, 30}, -1, 1))

	// Degenerate range maps to the midpoint.
	assert.Equal(t, []float64{0.5, 0.5}, MinMaxScale([]float64{3, 3}, 0, 1))
	assert.Nil(t, MinMaxScale(nil, 0, 1))
}
