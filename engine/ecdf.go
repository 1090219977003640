package engine

import (
	"math"

	"github.com/swallace100/stats-utility-app/domain/core"
	"github.com/swallace100/stats-utility-app/domain/sample"
)

// NewECDF computes the empirical CDF of a non-empty sample: sorted values xs
// with ps[i] = (i+1)/n. When maxPoints is at least 2 and the sample is
// larger, the points are decimated uniformly by index, always keeping the
// first and last point, so both xs and ps stay monotone and ps still ends at
// exactly 1. maxPoints == 0 disables decimation.
func NewECDF(s sample.Sample, maxPoints int) (ECDF, error) {
	n := s.Len()
	if n == 0 {
		return ECDF{}, core.NewInvalidInput("empty sample")
	}
	if maxPoints != 0 && maxPoints < 2 {
		return ECDF{}, core.NewInvalidParametersf("max_points must be 0 or >= 2, got %d", maxPoints)
	}

	xs := s.Sorted()
	ps := make([]float64, n)
	for i := range ps {
		ps[i] = float64(i+1) / float64(n)
	}

	if maxPoints == 0 || n <= maxPoints {
		return ECDF{Xs: xs, Ps: ps}, nil
	}

	dxs := make([]float64, maxPoints)
	dps := make([]float64, maxPoints)
	for k := 0; k < maxPoints; k++ {
		idx := int(math.Round(float64(k) * float64(n-1) / float64(maxPoints-1)))
		dxs[k] = xs[idx]
		dps[k] = ps[idx]
	}
	return ECDF{Xs: dxs, Ps: dps}, nil
}
