package engine

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/swallace100/stats-utility-app/domain/core"
	"github.com/swallace100/stats-utility-app/domain/sample"
)

func TestANOVA(t *testing.T) {
	groups, err := sample.NewGrouped(map[string][]float64{
		"a": {1, 2, 3},
		"b": {2, 3, 4},
		"c": {3, 4, 5},
	})
	require.NoError(t, err)

	got, err := NewANOVA(groups)
	require.NoError(t, err)

	assert.InDelta(t, 3.0, got.F, 1e-12)
	assert.Equal(t, 2, got.DFBetween)
	assert.Equal(t, 6, got.DFWithin)
	// For two numerator df the right tail is (1 + 2F/6)^-3 = 1/8.
	assert.InDelta(t, 0.125, got.P, 1e-9)
}

func TestANOVAIdenticalGroups(t *testing.T) {
	groups, err := sample.NewGrouped(map[string][]float64{
		"a": {1, 2, 3},
		"b": {1, 2, 3},
	})
	require.NoError(t, err)

	got, err := NewANOVA(groups)
	require.NoError(t, err)
	assert.Equal(t, 0.0, got.F)
	assert.Equal(t, 1.0, got.P)
}

func TestANOVADegenerate(t *testing.T) {
	constant, err := sample.NewGrouped(map[string][]float64{
		"a": {4, 4},
		"b": {9, 9},
	})
	require.NoError(t, err)
	_, err = NewANOVA(constant)
	assert.True(t, errors.Is(err, core.ErrDivisionByZero))

	one, err := sample.NewGrouped(map[string][]float64{"a": {1, 2}})
	require.NoError(t, err)
	_, err = NewANOVA(one)
	assert.True(t, errors.Is(err, core.ErrInvalidInput))

	tiny, err := sample.NewGrouped(map[string][]float64{
		"a": {1, 2},
		"b": {3},
	})
	require.NoError(t, err)
	_, err = NewANOVA(tiny)
	assert.True(t, errors.Is(err, core.ErrInsufficientSample))
}
