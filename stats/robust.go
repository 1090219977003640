package stats

import (
	"math"
	"sort"
)

// MADScale is the consistency constant that turns a MAD into a normal sigma
// estimate. MAD itself stays unscaled so it reads in raw data units; only the
// robust z-scores apply the constant.
const MADScale = 1.4826

// MAD returns the median absolute deviation about the median, unscaled.
// NaN for empty input.
func MAD(xs []float64) float64 {
	if len(xs) == 0 {
		return math.NaN()
	}
	med := Median(xs)
	devs := make([]float64, len(xs))
	for i, x := range xs {
		devs[i] = math.Abs(x - med)
	}
	return Median(devs)
}

// RobustZScores returns (x - median) / (1.4826 * MAD). A zero MAD yields all
// zeros rather than infinities.
func RobustZScores(xs []float64) []float64 {
	if len(xs) == 0 {
		return nil
	}
	med := Median(xs)
	scale := MADScale * MAD(xs)
	out := make([]float64, len(xs))
	for i, x := range xs {
		if scale != 0 {
			out[i] = (x - med) / scale
		}
	}
	return out
}

// TrimmedMean keeps the central proportion keep in [0,1] of a sorted copy and
// averages it; keep=0.9 trims 5% from each tail. keep=1 is the mean, keep=0
// degenerates to the median. NaN for empty input or keep outside [0,1].
func TrimmedMean(xs []float64, keep float64) float64 {
	if len(xs) == 0 || keep < 0 || keep > 1 || math.IsNaN(keep) {
		return math.NaN()
	}
	if keep == 1 {
		return Mean(xs)
	}
	if keep == 0 {
		return Median(xs)
	}
	sorted := make([]float64, len(xs))
	copy(sorted, xs)
	sort.Float64s(sorted)
	n := len(sorted)
	keepN := int(math.Round(keep * float64(n)))
	if keepN < 1 {
		keepN = 1
	}
	if keepN > n {
		keepN = n
	}
	drop := (n - keepN) / 2
	return Mean(sorted[drop : drop+keepN])
}

// WinsorizedMean caps both tails to the q and 1-q quantiles before averaging.
// q must be in [0, 0.5]. NaN for empty input or invalid q.
func WinsorizedMean(xs []float64, q float64) float64 {
	if len(xs) == 0 || q < 0 || q > 0.5 || math.IsNaN(q) {
		return math.NaN()
	}
	lo := Quantile(xs, q)
	hi := Quantile(xs, 1-q)
	capped := make([]float64, len(xs))
	for i, x := range xs {
		capped[i] = math.Min(math.Max(x, lo), hi)
	}
	return Mean(capped)
}

// GeometricMean returns exp(mean(ln x)). NaN if empty or any value <= 0.
func GeometricMean(xs []float64) float64 {
	if len(xs) == 0 {
		return math.NaN()
	}
	sumLogs := 0.0
	for _, x := range xs {
		if x <= 0 {
			return math.NaN()
		}
		sumLogs += math.Log(x)
	}
	return math.Exp(sumLogs / float64(len(xs)))
}

// HarmonicMean returns n / sum(1/x). NaN if empty or any value <= 0.
func HarmonicMean(xs []float64) float64 {
	if len(xs) == 0 {
		return math.NaN()
	}
	denom := 0.0
	for _, x := range xs {
		if x <= 0 {
			return math.NaN()
		}
		denom += 1 / x
	}
	return float64(len(xs)) / denom
}
