package engine

import (
	"github.com/swallace100/stats-utility-app/domain/core"
	"github.com/swallace100/stats-utility-app/domain/sample"
	"github.com/swallace100/stats-utility-app/stats"
)

// NewDrift computes the Population Stability Index between an expected
// (baseline) and an actual sample, binned by the expected sample's quantiles.
// bins defaults to 10 when zero and must otherwise be at least 2.
func NewDrift(expected, actual sample.Sample, bins int) (Drift, error) {
	if expected.Len() == 0 || actual.Len() == 0 {
		return Drift{}, core.NewInvalidInput("empty sample")
	}
	if bins == 0 {
		bins = 10
	}
	if bins < 2 {
		return Drift{}, core.NewInvalidParametersf("psi needs at least 2 bins, got %d", bins)
	}
	return Drift{
		PSI:  stats.PSIQuantileBins(expected, actual, bins),
		Bins: bins,
	}, nil
}
