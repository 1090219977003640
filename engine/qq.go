package engine

import (
	"github.com/swallace100/stats-utility-app/domain/core"
	"github.com/swallace100/stats-utility-app/domain/sample"
	"github.com/swallace100/stats-utility-app/stats"
	"github.com/swallace100/stats-utility-app/stats/dist"
)

// QQOptions configures the normal quantile-quantile operation.
type QQOptions struct {
	// Robust estimates location/scale as median and 1.4826*MAD instead of
	// mean and sample standard deviation.
	Robust bool
}

// QQNormal pairs the sorted sample against standard-normal quantiles at the
// plotting positions (i - 0.5)/n. MuHat and SigmaHat are reference
// annotations for the caller's fit line; the theoretical axis itself stays
// standard normal. Requires n >= 2 so the scale estimate is defined.
func QQNormal(s sample.Sample, opts QQOptions) (QQ, error) {
	n := s.Len()
	if n < 2 {
		return QQ{}, core.NewInsufficientSample("qq_normal", 2, n)
	}

	var mu, sigma float64
	if opts.Robust {
		mu = stats.Median(s)
		sigma = stats.MADScale * stats.MAD(s)
	} else {
		mu = stats.Mean(s)
		sigma = stats.SampleStdDev(s)
	}
	if sigma == 0 {
		return QQ{}, core.NewDivisionByZero("scale estimate")
	}

	std, err := dist.Normal(0, 1)
	if err != nil {
		return QQ{}, err
	}

	theoretical := make([]float64, n)
	for i := 0; i < n; i++ {
		p := (float64(i) + 0.5) / float64(n)
		theoretical[i] = std.Quantile(p)
	}

	return QQ{
		SampleQuantiles:      s.Sorted(),
		TheoreticalQuantiles: theoretical,
		MuHat:                mu,
		SigmaHat:             sigma,
	}, nil
}
