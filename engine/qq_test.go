package engine

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/swallace100/stats-utility-app/domain/core"
	"github.com/swallace100/stats-utility-app/domain/sample"
	"github.com/swallace100/stats-utility-app/stats"
)

func TestQQNormal(t *testing.T) {
	s := sample.Sample{4, 1, 3, 2}
	got, err := QQNormal(s, QQOptions{})
	require.NoError(t, err)

	assert.Equal(t, []float64{1, 2, 3, 4}, got.SampleQuantiles)
	require.Len(t, got.TheoreticalQuantiles, 4)

	// Standard-normal plotting positions are symmetric and increasing.
	th := got.TheoreticalQuantiles
	assert.InDelta(t, -th[3], th[0], 1e-9)
	assert.InDelta(t, -th[2], th[1], 1e-9)
	assert.InDelta(t, 1.1503493803760079, th[3], 1e-7) // quantile(0.875)
	for i := 1; i < len(th); i++ {
		assert.Greater(t, th[i], th[i-1])
	}

	assert.InDelta(t, 2.5, got.MuHat, 1e-12)
	assert.InDelta(t, stats.SampleStdDev(s), got.SigmaHat, 1e-12)
}

func TestQQNormalRobust(t *testing.T) {
	s := sample.Sample{1, 2, 3, 4, 100}
	got, err := QQNormal(s, QQOptions{Robust: true})
	require.NoError(t, err)

	assert.InDelta(t, 3.0, got.MuHat, 1e-12, "median shrugs off the outlier")
	assert.InDelta(t, stats.MADScale*1.0, got.SigmaHat, 1e-12)
}

func TestQQNormalDegenerate(t *testing.T) {
	_, err := QQNormal(sample.Sample{5, 5, 5}, QQOptions{})
	assert.True(t, errors.Is(err, core.ErrDivisionByZero))

	_, err = QQNormal(sample.Sample{1}, QQOptions{})
	assert.True(t, errors.Is(err, core.ErrInsufficientSample))
}
