package engine

import (
	"math"

	"github.com/swallace100/stats-utility-app/domain/core"
	"github.com/swallace100/stats-utility-app/domain/sample"
	"github.com/swallace100/stats-utility-app/stats"
)

// OutlierOptions configures outlier flagging.
type OutlierOptions struct {
	// Method defaults to the IQR fence rule.
	Method OutlierMethod
	// K is the fence multiplier: 1.5 for IQR, 3 for z-score when zero.
	K float64
}

// FindOutliers flags observations by original index using either the Tukey
// IQR fences [Q1 - k*IQR, Q3 + k*IQR] or the |z| > k rule. A constant sample
// under the z-score rule has no outliers by definition (zero deviations, not
// an error).
func FindOutliers(s sample.Sample, opts OutlierOptions) (Outliers, error) {
	n := s.Len()
	if n == 0 {
		return Outliers{}, core.NewInvalidInput("empty sample")
	}

	method := opts.Method
	if method == "" {
		method = OutlierIQR
	}
	k := opts.K
	out := Outliers{Indices: []int{}, Values: []float64{}}

	switch method {
	case OutlierIQR:
		if k == 0 {
			k = 1.5
		}
		if k < 0 {
			return Outliers{}, core.NewInvalidParametersf("fence multiplier must be positive, got %v", k)
		}
		q1, _, q3 := stats.Quartiles(s)
		iqr := q3 - q1
		lo := q1 - k*iqr
		hi := q3 + k*iqr
		for i, x := range s {
			if x < lo || x > hi {
				out.Indices = append(out.Indices, i)
				out.Values = append(out.Values, x)
			}
		}
	case OutlierZScore:
		if k == 0 {
			k = 3
		}
		if k < 0 {
			return Outliers{}, core.NewInvalidParametersf("z threshold must be positive, got %v", k)
		}
		if n < 2 {
			return Outliers{}, core.NewInsufficientSample("zscore outliers", 2, n)
		}
		m := stats.Mean(s)
		sd := stats.SampleStdDev(s)
		if sd == 0 {
			return out, nil
		}
		for i, x := range s {
			if math.Abs(x-m)/sd > k {
				out.Indices = append(out.Indices, i)
				out.Values = append(out.Values, x)
			}
		}
	default:
		return Outliers{}, core.NewInvalidParametersf("unknown outlier method %q", string(method))
	}

	return out, nil
}

// NormalizeOptions configures rescaling.
type NormalizeOptions struct {
	// Method defaults to z-score.
	Method NormalizeMethod
	// Range is the min-max target interval; nil means [0, 1].
	Range *[2]float64
}

// Normalize rescales a sample. Z-score mapping requires a nonzero sample
// standard deviation, min-max a nonzero value range; both degenerate cases
// fail with ErrDivisionByZero instead of emitting NaN.
func Normalize(s sample.Sample, opts NormalizeOptions) (Normalized, error) {
	n := s.Len()
	if n == 0 {
		return Normalized{}, core.NewInvalidInput("empty sample")
	}

	method := opts.Method
	if method == "" {
		method = NormalizeZScore
	}

	switch method {
	case NormalizeZScore:
		if n < 2 {
			return Normalized{}, core.NewInsufficientSample("zscore normalization", 2, n)
		}
		if stats.SampleStdDev(s) == 0 {
			return Normalized{}, core.NewDivisionByZero("standard deviation")
		}
		return Normalized{Values: stats.ZScores(s)}, nil
	case NormalizeMinMax:
		lo, hi := 0.0, 1.0
		if opts.Range != nil {
			lo, hi = opts.Range[0], opts.Range[1]
			if math.IsNaN(lo) || math.IsNaN(hi) || math.IsInf(lo, 0) || math.IsInf(hi, 0) {
				return Normalized{}, core.NewInvalidParameters("min-max range must be finite")
			}
		}
		if stats.Max(s) == stats.Min(s) {
			return Normalized{}, core.NewDivisionByZero("value range")
		}
		return Normalized{Values: stats.MinMaxScale(s, lo, hi)}, nil
	}
	return Normalized{}, core.NewInvalidParametersf("unknown normalization method %q", string(method))
}
