package engine

import (
	"math"

	"github.com/swallace100/stats-utility-app/domain/core"
	"github.com/swallace100/stats-utility-app/domain/sample"
	"github.com/swallace100/stats-utility-app/stats"
	"github.com/swallace100/stats-utility-app/stats/dist"
)

// NewOLS fits y = beta0 + beta1*x by closed-form least squares over the sums
// of squares (no matrix inversion for the univariate case). Standard errors
// come from the residual variance with an n-2 denominator, t-statistics are
// beta/se with two-sided p-values from t(n-2), and both confidence intervals
// are at the 95% level. Requires n >= 3 so a residual degree of freedom
// remains. Zero variance in x is ErrInvalidInput; an exact fit (zero residual
// variance) is ErrDivisionByZero, since the standard errors it implies are
// not representable without NaN/Inf in the result record.
func NewOLS(p sample.Paired) (OLS, error) {
	n := p.X.Len()
	if n < 3 {
		return OLS{}, core.NewInsufficientSample("ols", 3, n)
	}

	meanX := stats.Mean(p.X)
	meanY := stats.Mean(p.Y)
	sxx := 0.0
	sxy := 0.0
	for i := 0; i < n; i++ {
		dx := p.X[i] - meanX
		sxx += dx * dx
		sxy += dx * (p.Y[i] - meanY)
	}
	if sxx == 0 {
		return OLS{}, core.NewInvalidInput("zero variance in x")
	}

	beta1 := sxy / sxx
	beta0 := meanY - beta1*meanX

	ssRes := 0.0
	ssTot := 0.0
	for i := 0; i < n; i++ {
		res := p.Y[i] - (beta0 + beta1*p.X[i])
		ssRes += res * res
		dy := p.Y[i] - meanY
		ssTot += dy * dy
	}

	fn := float64(n)
	df := fn - 2
	s2 := ssRes / df
	if s2 == 0 {
		return OLS{}, core.NewDivisionByZero("residual variance")
	}

	se1 := math.Sqrt(s2 / sxx)
	se0 := math.Sqrt(s2 * (1/fn + meanX*meanX/sxx))
	t0 := beta0 / se0
	t1 := beta1 / se1

	tDist, err := dist.StudentsT(df)
	if err != nil {
		return OLS{}, err
	}
	crit := tDist.Quantile(1 - (1-confidenceLevel)/2)

	r2 := 1.0
	if ssTot > 0 {
		r2 = 1 - ssRes/ssTot
	}

	return OLS{
		Beta0: beta0,
		Beta1: beta1,
		SE0:   se0,
		SE1:   se1,
		T0:    t0,
		T1:    t1,
		P0:    dist.TwoSidedP(tDist, t0),
		P1:    dist.TwoSidedP(tDist, t1),
		R2:    r2,
		CI0:   [2]float64{beta0 - crit*se0, beta0 + crit*se0},
		CI1:   [2]float64{beta1 - crit*se1, beta1 + crit*se1},
	}, nil
}
