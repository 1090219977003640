package engine

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/swallace100/stats-utility-app/domain/core"
	"github.com/swallace100/stats-utility-app/domain/sample"
)

func TestDescribe(t *testing.T) {
	got, err := Describe(sample.Sample{1, 2, 3, 4, 5})
	require.NoError(t, err)

	assert.Equal(t, 5, got.Count)
	assert.InDelta(t, 3.0, got.Mean, 1e-12)
	assert.InDelta(t, 3.0, got.Median, 1e-12)
	require.NotNil(t, got.Std)
	assert.InDelta(t, 1.5811388300841898, *got.Std, 1e-12)
	assert.Equal(t, 1.0, got.Min)
	assert.Equal(t, 5.0, got.Max)
	assert.InDelta(t, 2.0, got.IQR, 1e-12)
	assert.InDelta(t, 1.0, got.MAD, 1e-12)
}

func TestDescribeSingleValue(t *testing.T) {
	got, err := Describe(sample.Sample{42})
	require.NoError(t, err)

	assert.Equal(t, 1, got.Count)
	assert.Equal(t, 42.0, got.Mean)
	assert.Equal(t, 42.0, got.Median)
	assert.Nil(t, got.Std, "sample std undefined for n < 2")
	assert.Equal(t, 0.0, got.IQR)
	assert.Equal(t, 0.0, got.MAD)
}

func TestDescribeEmpty(t *testing.T) {
	_, err := Describe(sample.Sample{})
	assert.True(t, errors.Is(err, core.ErrInvalidInput))
}

func TestDescribeUnsortedInput(t *testing.T) {
	s := sample.Sample{5, 1, 4, 2, 3}
	got, err := Describe(s)
	require.NoError(t, err)
	assert.InDelta(t, 3.0, got.Median, 1e-12)
	// The input order must survive the quantile computations.
	assert.Equal(t, sample.Sample{5, 1, 4, 2, 3}, s)
}
