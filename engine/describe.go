package engine

import (
	"github.com/swallace100/stats-utility-app/domain/core"
	"github.com/swallace100/stats-utility-app/domain/sample"
	"github.com/swallace100/stats-utility-app/stats"
)

// Describe computes the core univariate summary for a non-empty sample.
// Mean and standard deviation come from a single Welford pass; median and IQR
// are R-7 quantiles on a sorted copy. The standard deviation is the sample
// (n-1) definition and is absent when n < 2. MAD is unscaled: it is the
// median of absolute deviations in raw data units, deliberately not
// multiplied by the 1.4826 normal-consistency constant.
func Describe(s sample.Sample) (Summary, error) {
	if s.Len() == 0 {
		return Summary{}, core.NewInvalidInput("empty sample")
	}

	var acc stats.MeanVar
	mn, mx := s[0], s[0]
	for _, x := range s {
		acc.Push(x)
		if x < mn {
			mn = x
		}
		if x > mx {
			mx = x
		}
	}

	sorted := s.Sorted()
	out := Summary{
		Count:  s.Len(),
		Mean:   acc.Mean(),
		Median: stats.Median(sorted),
		Min:    mn,
		Max:    mx,
		IQR:    stats.IQR(sorted),
		MAD:    stats.MAD(s),
	}
	if s.Len() >= 2 {
		out.Std = optional(acc.SampleStdDev())
	}
	return out, nil
}
