// Package engine is the external operation surface of the statistical
// computation engine. Every operation is a pure, synchronous function of a
// validated data-model entity plus options, returning a result record or a
// typed failure from domain/core. The engine performs no I/O, keeps no state
// between calls, and never logs; callers may invoke it concurrently.
package engine

import "github.com/swallace100/stats-utility-app/domain/core"

// BinRule selects a histogram bin-count heuristic.
type BinRule string

const (
	BinRuleSturges          BinRule = "sturges"
	BinRuleScott            BinRule = "scott"
	BinRuleFreedmanDiaconis BinRule = "fd"
	BinRuleAuto             BinRule = "auto"
)

func (r BinRule) validate() error {
	switch r {
	case BinRuleSturges, BinRuleScott, BinRuleFreedmanDiaconis, BinRuleAuto:
		return nil
	}
	return core.NewInvalidParametersf("unknown bin rule %q", string(r))
}

// CorrMethod selects the correlation coefficient for matrix computation.
type CorrMethod string

const (
	CorrPearson  CorrMethod = "pearson"
	CorrSpearman CorrMethod = "spearman"
	CorrKendall  CorrMethod = "kendall"
)

func (m CorrMethod) validate() error {
	switch m {
	case CorrPearson, CorrSpearman, CorrKendall:
		return nil
	}
	return core.NewInvalidParametersf("unknown correlation method %q", string(m))
}

// OutlierMethod selects the outlier flagging rule.
type OutlierMethod string

const (
	OutlierIQR    OutlierMethod = "iqr"
	OutlierZScore OutlierMethod = "zscore"
)

// NormalizeMethod selects the rescaling rule.
type NormalizeMethod string

const (
	NormalizeZScore NormalizeMethod = "zscore"
	NormalizeMinMax NormalizeMethod = "minmax"
)

// Alternative selects the tested tail for the two-sample t-test.
type Alternative string

const (
	TwoSided Alternative = "two-sided"
	Less     Alternative = "less"
	Greater  Alternative = "greater"
)

func (a Alternative) validate() error {
	switch a {
	case TwoSided, Less, Greater:
		return nil
	}
	return core.NewInvalidParametersf("unknown alternative %q", string(a))
}

// Summary is the describe() result record.
type Summary struct {
	Count  int      `json:"count"`
	Mean   float64  `json:"mean"`
	Median float64  `json:"median"`
	Std    *float64 `json:"std,omitempty"` // absent when n < 2
	Min    float64  `json:"min"`
	Max    float64  `json:"max"`
	IQR    float64  `json:"iqr"`
	MAD    float64  `json:"mad"` // unscaled, raw data units
}

// QuantilePoint pairs a probability with its sample quantile.
type QuantilePoint struct {
	P     float64 `json:"p"`
	Value float64 `json:"value"`
}

// Distribution is the histogram/shape result record. Counts always sum to
// the sample size; edges are strictly increasing with len(edges) =
// len(counts)+1.
type Distribution struct {
	Counts         []int           `json:"counts"`
	Edges          []float64       `json:"edges"`
	Quantiles      []QuantilePoint `json:"quantiles"`
	Skewness       *float64        `json:"skewness,omitempty"`        // absent when n < 3
	ExcessKurtosis *float64        `json:"excess_kurtosis,omitempty"` // absent when n < 4 or constant
	EntropyBits    float64         `json:"entropy_bits"`
}

// ECDF holds empirical CDF points: xs ascending, ps non-decreasing with
// ps[len-1] == 1.
type ECDF struct {
	Xs []float64 `json:"xs"`
	Ps []float64 `json:"ps"`
}

// QQ holds normal quantile-quantile points. The theoretical axis is standard
// normal; MuHat/SigmaHat are reference annotations only.
type QQ struct {
	SampleQuantiles      []float64 `json:"sample_quantiles"`
	TheoreticalQuantiles []float64 `json:"theoretical_quantiles"`
	MuHat                float64   `json:"mu_hat"`
	SigmaHat             float64   `json:"sigma_hat"`
}

// Pairwise holds two-series association measures. Coefficients are absent
// when a zero-variance series makes them undefined.
type Pairwise struct {
	Covariance float64  `json:"covariance"`
	Pearson    *float64 `json:"pearson,omitempty"`
	Spearman   *float64 `json:"spearman,omitempty"`
	Kendall    *float64 `json:"kendall,omitempty"`
}

// CorrMatrix is a flattened row-major size x size correlation matrix,
// symmetric with unit diagonal. Pairs whose coefficient is undefined (zero
// variance) are reported as 0.
type CorrMatrix struct {
	Size   int       `json:"size"`
	Names  []string  `json:"names,omitempty"`
	Matrix []float64 `json:"matrix"`
}

// Outliers lists flagged observations by original index.
type Outliers struct {
	Indices []int     `json:"indices"`
	Values  []float64 `json:"values"`
}

// Normalized holds rescaled values aligned with the input.
type Normalized struct {
	Values []float64 `json:"values"`
}

// TTest is the two-sample t-test result record. CI bounds may be ±Inf for
// one-sided alternatives.
type TTest struct {
	T      float64    `json:"t"`
	DF     float64    `json:"df"`
	P      float64    `json:"p"`
	CI     [2]float64 `json:"ci"` // 95% confidence interval for meanX - meanY
	MeanX  float64    `json:"mean_x"`
	MeanY  float64    `json:"mean_y"`
	CohenD float64    `json:"cohen_d"` // pooled-SD convention regardless of variance flag
}

// ANOVA is the one-way analysis-of-variance result record.
type ANOVA struct {
	F         float64 `json:"f"`
	DFBetween int     `json:"df_between"`
	DFWithin  int     `json:"df_within"`
	P         float64 `json:"p"`
}

// ChiSquare is the independence-test result record.
type ChiSquare struct {
	X2       float64     `json:"x2"`
	DF       int         `json:"df"`
	P        float64     `json:"p"`
	Expected [][]float64 `json:"expected"`
}

// OLS is the simple ordinary-least-squares result record. Index 0 is the
// intercept, index 1 the slope.
type OLS struct {
	Beta0 float64    `json:"beta0"`
	Beta1 float64    `json:"beta1"`
	SE0   float64    `json:"se0"`
	SE1   float64    `json:"se1"`
	T0    float64    `json:"t0"`
	T1    float64    `json:"t1"`
	P0    float64    `json:"p0"`
	P1    float64    `json:"p1"`
	R2    float64    `json:"r2"`
	CI0   [2]float64 `json:"ci0"` // 95%
	CI1   [2]float64 `json:"ci1"` // 95%
}

// Drift is the population-stability result record.
type Drift struct {
	PSI  float64 `json:"psi"`
	Bins int     `json:"bins"`
}

func optional(v float64) *float64 {
	return &v
}
