package engine

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	gstat "gonum.org/v1/gonum/stat"

	"github.com/swallace100/stats-utility-app/domain/core"
	"github.com/swallace100/stats-utility-app/domain/sample"
)

func TestOLS(t *testing.T) {
	xs := []float64{1, 2, 3, 4, 5}
	ys := []float64{2, 4, 5, 4, 5}
	p, err := sample.NewPaired(xs, ys)
	require.NoError(t, err)

	got, err := NewOLS(p)
	require.NoError(t, err)

	assert.InDelta(t, 2.2, got.Beta0, 1e-12)
	assert.InDelta(t, 0.6, got.Beta1, 1e-12)
	assert.InDelta(t, 0.6, got.R2, 1e-12)
	assert.InDelta(t, 0.28284271247461906, got.SE1, 1e-12)
	assert.InDelta(t, 2.1213203435596424, got.T1, 1e-12)

	// Coefficients agree with gonum's closed-form fit.
	alpha, beta := gstat.LinearRegression(xs, ys, nil, false)
	assert.InDelta(t, alpha, got.Beta0, 1e-12)
	assert.InDelta(t, beta, got.Beta1, 1e-12)

	// Slope p-value is two-sided in t(n-2).
	assert.Greater(t, got.P1, 0.0)
	assert.Less(t, got.P1, 1.0)
	assert.InDelta(t, 0.124, got.P1, 5e-3)

	// CIs bracket their estimates symmetrically.
	assert.InDelta(t, got.Beta1, (got.CI1[0]+got.CI1[1])/2, 1e-12)
	assert.Less(t, got.CI1[0], got.Beta1)
	assert.Greater(t, got.CI1[1], got.Beta1)
	assert.InDelta(t, got.Beta0, (got.CI0[0]+got.CI0[1])/2, 1e-12)
}

func TestOLSExactFit(t *testing.T) {
	p, err := sample.NewPaired([]float64{1, 2, 3}, []float64{3, 5, 7})
	require.NoError(t, err)
	_, err = NewOLS(p)
	assert.True(t, errors.Is(err, core.ErrDivisionByZero))
}

func TestOLSConstantX(t *testing.T) {
	p, err := sample.NewPaired([]float64{2, 2, 2}, []float64{1, 5, 9})
	require.NoError(t, err)
	_, err = NewOLS(p)
	assert.True(t, errors.Is(err, core.ErrInvalidInput))
}

func TestOLSTooSmall(t *testing.T) {
	p, err := sample.NewPaired([]float64{1, 2}, []float64{3, 4})
	require.NoError(t, err)
	_, err = NewOLS(p)
	assert.True(t, errors.Is(err, core.ErrInsufficientSample))
}
