package dist

import (
	"math"

	"gonum.org/v1/gonum/stat/distuv"

	"github.com/swallace100/stats-utility-app/domain/core"
)

// Gonum is an alternative Source backed by gonum's distuv package. distuv
// supplies the CDFs; quantiles for the beta/gamma-based families reuse this
// package's monotone inversion so the Source stays drop-in. Parameter
// validation is shared with Native, so swapping sources never changes the
// failure surface.
var Gonum Source = gonumSource{}

type gonumSource struct{}

func (gonumSource) Normal(mu, sigma float64) (Distribution, error) {
	if !paramOK(mu) || !paramOK(sigma) || sigma <= 0 {
		return nil, core.NewInvalidParametersf("normal requires finite mu and sigma > 0, got mu=%v sigma=%v", mu, sigma)
	}
	return gonumNormal{d: distuv.Normal{Mu: mu, Sigma: sigma}}, nil
}

// gonumNormal guards distuv.Normal's Quantile, which panics outside [0,1]
// where the Distribution contract wants NaN.
type gonumNormal struct{ d distuv.Normal }

func (n gonumNormal) CDF(x float64) float64 { return n.d.CDF(x) }

func (n gonumNormal) Quantile(p float64) float64 {
	if p < 0 || p > 1 || math.IsNaN(p) {
		return math.NaN()
	}
	if p == 0 {
		return math.Inf(-1)
	}
	if p == 1 {
		return math.Inf(1)
	}
	return n.d.Quantile(p)
}

func (gonumSource) StudentsT(df float64) (Distribution, error) {
	if !paramOK(df) || df <= 0 {
		return nil, core.NewInvalidParametersf("students-t requires df > 0, got %v", df)
	}
	d := distuv.StudentsT{Mu: 0, Sigma: 1, Nu: df}
	return invertedQuantile{cdf: d.CDF, symmetric: true}, nil
}

func (gonumSource) ChiSquared(df float64) (Distribution, error) {
	if !paramOK(df) || df <= 0 {
		return nil, core.NewInvalidParametersf("chi-squared requires df > 0, got %v", df)
	}
	d := distuv.ChiSquared{K: df}
	return invertedQuantile{cdf: d.CDF}, nil
}

func (gonumSource) FisherF(d1, d2 float64) (Distribution, error) {
	if !paramOK(d1) || !paramOK(d2) || d1 <= 0 || d2 <= 0 {
		return nil, core.NewInvalidParametersf("f requires d1 > 0 and d2 > 0, got d1=%v d2=%v", d1, d2)
	}
	d := distuv.F{D1: d1, D2: d2}
	return invertedQuantile{cdf: d.CDF}, nil
}

// invertedQuantile adapts a bare CDF into a full Distribution.
type invertedQuantile struct {
	cdf       func(float64) float64
	symmetric bool
}

func (d invertedQuantile) CDF(x float64) float64 { return d.cdf(x) }

func (d invertedQuantile) Quantile(p float64) float64 {
	if p < 0 || p > 1 || math.IsNaN(p) {
		return math.NaN()
	}
	if p == 0 {
		if d.symmetric {
			return math.Inf(-1)
		}
		return 0
	}
	if p == 1 {
		return math.Inf(1)
	}
	if d.symmetric {
		return invertCDF(d.cdf, p, symmetricBracket(d.cdf, p))
	}
	return invertCDF(d.cdf, p, positiveBracket(d.cdf, p))
}
