package engine

import (
	"math"

	"github.com/swallace100/stats-utility-app/domain/core"
	"github.com/swallace100/stats-utility-app/domain/sample"
	"github.com/swallace100/stats-utility-app/stats"
	"github.com/swallace100/stats-utility-app/stats/dist"
)

// confidenceLevel fixes every interval in the engine at 95%.
const confidenceLevel = 0.95

// TTestOptions configures the two-sample t-test.
type TTestOptions struct {
	// EqualVariances switches from Welch (default) to the pooled-variance
	// formula with df = nX + nY - 2.
	EqualVariances bool
	// Alternative defaults to two-sided.
	Alternative Alternative
}

// NewTTest runs the two-sample t-test for a difference in means. The default
// is Welch's test with the Satterthwaite df approximation; the pooled test is
// opt-in. The confidence interval is built from the tested tail at the 95%
// level, so one-sided alternatives get a half-open interval. Cohen's d always
// uses the pooled standard deviation, whichever variance assumption the test
// itself makes. Both groups need n >= 2 and at least one nonzero variance.
func NewTTest(x, y sample.Sample, opts TTestOptions) (TTest, error) {
	nx, ny := x.Len(), y.Len()
	if nx < 2 {
		return TTest{}, core.NewInsufficientSample("t-test group x", 2, nx)
	}
	if ny < 2 {
		return TTest{}, core.NewInsufficientSample("t-test group y", 2, ny)
	}
	alt := opts.Alternative
	if alt == "" {
		alt = TwoSided
	}
	if err := alt.validate(); err != nil {
		return TTest{}, err
	}

	meanX, meanY := stats.Mean(x), stats.Mean(y)
	varX, varY := stats.SampleVariance(x), stats.SampleVariance(y)
	fnx, fny := float64(nx), float64(ny)
	diff := meanX - meanY

	var se, df float64
	if opts.EqualVariances {
		pooled := ((fnx-1)*varX + (fny-1)*varY) / (fnx + fny - 2)
		se = math.Sqrt(pooled * (1/fnx + 1/fny))
		df = fnx + fny - 2
	} else {
		a := varX / fnx
		b := varY / fny
		se = math.Sqrt(a + b)
		df = (a + b) * (a + b) / (a*a/(fnx-1) + b*b/(fny-1))
	}
	if se == 0 {
		return TTest{}, core.NewDivisionByZero("standard error of the mean difference")
	}

	t := diff / se
	tDist, err := dist.StudentsT(df)
	if err != nil {
		return TTest{}, err
	}

	alpha := 1 - confidenceLevel
	var p float64
	var ci [2]float64
	switch alt {
	case TwoSided:
		p = dist.TwoSidedP(tDist, t)
		crit := tDist.Quantile(1 - alpha/2)
		ci = [2]float64{diff - crit*se, diff + crit*se}
	case Greater:
		p = dist.RightTailP(tDist, t)
		crit := tDist.Quantile(1 - alpha)
		ci = [2]float64{diff - crit*se, math.Inf(1)}
	case Less:
		p = dist.LeftTailP(tDist, t)
		crit := tDist.Quantile(1 - alpha)
		ci = [2]float64{math.Inf(-1), diff + crit*se}
	}

	pooledSD := math.Sqrt(((fnx-1)*varX + (fny-1)*varY) / (fnx + fny - 2))
	cohenD := 0.0
	if pooledSD > 0 {
		cohenD = diff / pooledSD
	}

	return TTest{
		T:      t,
		DF:     df,
		P:      p,
		CI:     ci,
		MeanX:  meanX,
		MeanY:  meanY,
		CohenD: cohenD,
	}, nil
}
