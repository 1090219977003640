package engine

import (
	"math"

	"github.com/swallace100/stats-utility-app/domain/core"
	"github.com/swallace100/stats-utility-app/domain/sample"
	"github.com/swallace100/stats-utility-app/stats"
)

// NewPairwise computes covariance plus the Pearson, Spearman, and Kendall
// tau-b coefficients for an element-wise matched pair. Requires n >= 2. A
// zero-variance series leaves the affected coefficients absent rather than
// NaN.
func NewPairwise(p sample.Paired) (Pairwise, error) {
	n := p.X.Len()
	if n < 2 {
		return Pairwise{}, core.NewInsufficientSample("pairwise correlation", 2, n)
	}

	out := Pairwise{Covariance: stats.Covariance(p.X, p.Y)}
	if r := stats.Pearson(p.X, p.Y); !math.IsNaN(r) {
		out.Pearson = optional(clampCoef(r))
	}
	if r := stats.Spearman(p.X, p.Y); !math.IsNaN(r) {
		out.Spearman = optional(clampCoef(r))
	}
	if r := stats.KendallTauB(p.X, p.Y); !math.IsNaN(r) {
		out.Kendall = optional(clampCoef(r))
	}
	return out, nil
}

// NewCorrMatrix computes the full correlation matrix over named series. All
// series must be non-empty, finite, and the same length with n >= 2. The
// result is symmetric with a unit diagonal; undefined pairs (zero variance)
// are reported as 0 so downstream matrix consumers never see NaN.
func NewCorrMatrix(series []sample.Sample, names []string, method CorrMethod) (CorrMatrix, error) {
	if method == "" {
		method = CorrPearson
	}
	if err := method.validate(); err != nil {
		return CorrMatrix{}, err
	}
	m := len(series)
	if m < 2 {
		return CorrMatrix{}, core.NewInvalidInputf("correlation matrix needs at least 2 series, got %d", m)
	}
	if names != nil && len(names) != m {
		return CorrMatrix{}, core.NewInvalidInputf("%d names for %d series", len(names), m)
	}
	n := series[0].Len()
	if n < 2 {
		return CorrMatrix{}, core.NewInsufficientSample("correlation matrix", 2, n)
	}
	for i, s := range series {
		if s.Len() != n {
			return CorrMatrix{}, core.NewInvalidInputf("series %d has length %d, want %d", i, s.Len(), n)
		}
	}

	mat := make([]float64, m*m)
	for i := 0; i < m; i++ {
		mat[i*m+i] = 1
		for j := i + 1; j < m; j++ {
			var r float64
			switch method {
			case CorrPearson:
				r = stats.Pearson(series[i], series[j])
			case CorrSpearman:
				r = stats.Spearman(series[i], series[j])
			case CorrKendall:
				r = stats.KendallTauB(series[i], series[j])
			}
			if math.IsNaN(r) {
				r = 0
			}
			r = clampCoef(r)
			mat[i*m+j] = r
			mat[j*m+i] = r
		}
	}

	return CorrMatrix{Size: m, Names: names, Matrix: mat}, nil
}

// clampCoef pins float noise back into [-1, 1].
func clampCoef(r float64) float64 {
	if r > 1 {
		return 1
	}
	if r < -1 {
		return -1
	}
	return r
}
