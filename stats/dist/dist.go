// Package dist provides the closed-form distribution functions behind every
// hypothesis test and theoretical-quantile computation: CDFs and quantiles
// for the Normal, Student's t, chi-square, and F families.
//
// The Source interface is the swap boundary: Native evaluates the
// regularized incomplete beta/gamma functions directly, Gonum delegates to
// gonum's distuv. Both are stateless; every call re-derives the family from
// its parameters.
package dist

import (
	"math"

	"github.com/swallace100/stats-utility-app/domain/core"
)

// Distribution is a stateless continuous distribution.
type Distribution interface {
	// CDF returns P(X <= x).
	CDF(x float64) float64
	// Quantile returns the x with CDF(x) = p. It is NaN outside [0,1] and
	// may be ±Inf at the endpoints for unbounded supports.
	Quantile(p float64) float64
}

// Source constructs distributions; implementations differ only in how the
// underlying special functions are evaluated.
type Source interface {
	Normal(mu, sigma float64) (Distribution, error)
	StudentsT(df float64) (Distribution, error)
	ChiSquared(df float64) (Distribution, error)
	FisherF(d1, d2 float64) (Distribution, error)
}

// Native is the default Source, built on the package's own incomplete
// beta/gamma evaluation. Accurate to well under 1e-6 relative error for df up
// to a few thousand and |x| up to ~40 standard units.
var Native Source = nativeSource{}

// Normal returns a Normal(mu, sigma) from the Native source.
// sigma <= 0 is ErrInvalidParameters.
func Normal(mu, sigma float64) (Distribution, error) { return Native.Normal(mu, sigma) }

// StudentsT returns a Student's t with df degrees of freedom from the Native
// source. df <= 0 is ErrInvalidParameters.
func StudentsT(df float64) (Distribution, error) { return Native.StudentsT(df) }

// ChiSquared returns a chi-square with df degrees of freedom from the Native
// source. df <= 0 is ErrInvalidParameters.
func ChiSquared(df float64) (Distribution, error) { return Native.ChiSquared(df) }

// FisherF returns an F(d1, d2) from the Native source. Non-positive degrees
// of freedom are ErrInvalidParameters.
func FisherF(d1, d2 float64) (Distribution, error) { return Native.FisherF(d1, d2) }

// TwoSidedP returns 2*(1 - CDF(|stat|)) clamped to [0,1], the two-sided
// p-value for a symmetric null distribution.
func TwoSidedP(d Distribution, stat float64) float64 {
	return clamp01(2 * (1 - d.CDF(math.Abs(stat))))
}

// RightTailP returns 1 - CDF(stat), the right-tailed p-value used by
// chi-square and F tests.
func RightTailP(d Distribution, stat float64) float64 {
	return clamp01(1 - d.CDF(stat))
}

// LeftTailP returns CDF(stat).
func LeftTailP(d Distribution, stat float64) float64 {
	return clamp01(d.CDF(stat))
}

func clamp01(p float64) float64 {
	if p < 0 {
		return 0
	}
	if p > 1 {
		return 1
	}
	return p
}

type nativeSource struct{}

func (nativeSource) Normal(mu, sigma float64) (Distribution, error) {
	if !paramOK(mu) || !paramOK(sigma) || sigma <= 0 {
		return nil, core.NewInvalidParametersf("normal requires finite mu and sigma > 0, got mu=%v sigma=%v", mu, sigma)
	}
	return normalDist{mu: mu, sigma: sigma}, nil
}

func (nativeSource) StudentsT(df float64) (Distribution, error) {
	if !paramOK(df) || df <= 0 {
		return nil, core.NewInvalidParametersf("students-t requires df > 0, got %v", df)
	}
	return studentsTDist{df: df}, nil
}

func (nativeSource) ChiSquared(df float64) (Distribution, error) {
	if !paramOK(df) || df <= 0 {
		return nil, core.NewInvalidParametersf("chi-squared requires df > 0, got %v", df)
	}
	return chiSquaredDist{df: df}, nil
}

func (nativeSource) FisherF(d1, d2 float64) (Distribution, error) {
	if !paramOK(d1) || !paramOK(d2) || d1 <= 0 || d2 <= 0 {
		return nil, core.NewInvalidParametersf("f requires d1 > 0 and d2 > 0, got d1=%v d2=%v", d1, d2)
	}
	return fDist{d1: d1, d2: d2}, nil
}

func paramOK(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}

type normalDist struct{ mu, sigma float64 }

func (d normalDist) CDF(x float64) float64 {
	return 0.5 * math.Erfc(-(x-d.mu)/(d.sigma*math.Sqrt2))
}

func (d normalDist) Quantile(p float64) float64 {
	if p < 0 || p > 1 || math.IsNaN(p) {
		return math.NaN()
	}
	return d.mu + d.sigma*normQuantile(p)
}

type studentsTDist struct{ df float64 }

func (d studentsTDist) CDF(t float64) float64 {
	if t == 0 {
		return 0.5
	}
	// F(t) in terms of the regularized incomplete beta on df/(df+t^2).
	ib := 0.5 * regIncBeta(d.df/2, 0.5, d.df/(d.df+t*t))
	if t > 0 {
		return 1 - ib
	}
	return ib
}

func (d studentsTDist) Quantile(p float64) float64 {
	if p < 0 || p > 1 || math.IsNaN(p) {
		return math.NaN()
	}
	if p == 0 {
		return math.Inf(-1)
	}
	if p == 1 {
		return math.Inf(1)
	}
	if p == 0.5 {
		return 0
	}
	return invertCDF(d.CDF, p, symmetricBracket(d.CDF, p))
}

type chiSquaredDist struct{ df float64 }

func (d chiSquaredDist) CDF(x float64) float64 {
	if x <= 0 {
		return 0
	}
	return regIncGammaP(d.df/2, x/2)
}

func (d chiSquaredDist) Quantile(p float64) float64 {
	if p < 0 || p > 1 || math.IsNaN(p) {
		return math.NaN()
	}
	if p == 0 {
		return 0
	}
	if p == 1 {
		return math.Inf(1)
	}
	return invertCDF(d.CDF, p, positiveBracket(d.CDF, p))
}

type fDist struct{ d1, d2 float64 }

func (d fDist) CDF(x float64) float64 {
	if x <= 0 {
		return 0
	}
	return regIncBeta(d.d1/2, d.d2/2, d.d1*x/(d.d1*x+d.d2))
}

func (d fDist) Quantile(p float64) float64 {
	if p < 0 || p > 1 || math.IsNaN(p) {
		return math.NaN()
	}
	if p == 0 {
		return 0
	}
	if p == 1 {
		return math.Inf(1)
	}
	return invertCDF(d.CDF, p, positiveBracket(d.CDF, p))
}

type bracket struct{ lo, hi float64 }

// symmetricBracket expands [-w, w] until the CDF straddles p.
func symmetricBracket(cdf func(float64) float64, p float64) bracket {
	w := 1.0
	for i := 0; i < 600 && (cdf(-w) > p || cdf(w) < p); i++ {
		w *= 2
	}
	return bracket{lo: -w, hi: w}
}

// positiveBracket expands (0, w] until the CDF reaches p.
func positiveBracket(cdf func(float64) float64, p float64) bracket {
	w := 1.0
	for i := 0; i < 600 && cdf(w) < p; i++ {
		w *= 2
	}
	return bracket{lo: 0, hi: w}
}

// invertCDF solves CDF(x) = p by bisection over a verified bracket. The CDFs
// here are monotone, so 200 halvings pin the root far below float64
// resolution; the iteration count is fixed for determinism.
func invertCDF(cdf func(float64) float64, p float64, b bracket) float64 {
	lo, hi := b.lo, b.hi
	for i := 0; i < 200; i++ {
		mid := lo + (hi-lo)/2
		if mid == lo || mid == hi {
			break
		}
		if cdf(mid) < p {
			lo = mid
		} else {
			hi = mid
		}
	}
	return lo + (hi-lo)/2
}
