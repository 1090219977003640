// Package stats holds the low-level numeric kernels behind the engine
// operations. Kernels assume finite inputs (the sample validator guarantees
// that upstream) and signal degenerate cases by returning NaN; the engine
// layer converts those into typed failures. Quantile-based kernels sort a
// copy, never the caller's slice.
package stats

import (
	"math"
	"sort"
)

// Sum returns the plain left-to-right sum of xs.
func Sum(xs []float64) float64 {
	s := 0.0
	for _, x := range xs {
		s += x
	}
	return s
}

// Mean returns the arithmetic mean, computed via Welford accumulation so that
// large offsets do not cancel catastrophically. NaN for empty input.
func Mean(xs []float64) float64 {
	if len(xs) == 0 {
		return math.NaN()
	}
	var acc MeanVar
	for _, x := range xs {
		acc.Push(x)
	}
	return acc.Mean()
}

// Median returns the 50th percentile (R-7). NaN for empty input.
func Median(xs []float64) float64 {
	return Quantile(xs, 0.5)
}

// Min returns the smallest value. NaN for empty input.
func Min(xs []float64) float64 {
	if len(xs) == 0 {
		return math.NaN()
	}
	m := xs[0]
	for _, x := range xs[1:] {
		if x < m {
			m = x
		}
	}
	return m
}

// Max returns the largest value. NaN for empty input.
func Max(xs []float64) float64 {
	if len(xs) == 0 {
		return math.NaN()
	}
	m := xs[0]
	for _, x := range xs[1:] {
		if x > m {
			m = x
		}
	}
	return m
}

// Range returns max - min. NaN for empty input.
func Range(xs []float64) float64 {
	if len(xs) == 0 {
		return math.NaN()
	}
	return Max(xs) - Min(xs)
}

// SampleVariance returns the n-1 denominator variance via Welford
// accumulation. NaN when n < 2.
func SampleVariance(xs []float64) float64 {
	var acc MeanVar
	for _, x := range xs {
		acc.Push(x)
	}
	return acc.SampleVariance()
}

// PopulationVariance returns the n denominator variance. NaN for empty input.
func PopulationVariance(xs []float64) float64 {
	var acc MeanVar
	for _, x := range xs {
		acc.Push(x)
	}
	return acc.PopulationVariance()
}

// SampleStdDev returns the sample standard deviation (n-1). NaN when n < 2.
func SampleStdDev(xs []float64) float64 {
	return math.Sqrt(SampleVariance(xs))
}

// Quantile computes the R-7 (linear interpolation) quantile at p in [0,1] on
// a sorted copy of xs: position h = (n-1)*p, interpolating between the
// surrounding order statistics. NaN for empty input or p outside [0,1].
func Quantile(xs []float64, p float64) float64 {
	if len(xs) == 0 || p < 0 || p > 1 || math.IsNaN(p) {
		return math.NaN()
	}
	sorted := make([]float64, len(xs))
	copy(sorted, xs)
	sort.Float64s(sorted)
	return quantileSorted(sorted, p)
}

// quantileSorted is Quantile without the defensive sort; xs must be ascending.
func quantileSorted(xs []float64, p float64) float64 {
	n := len(xs)
	if n == 1 {
		return xs[0]
	}
	h := float64(n-1) * p
	i := int(math.Floor(h))
	j := int(math.Ceil(h))
	if i == j {
		return xs[i]
	}
	return xs[i] + (h-float64(i))*(xs[j]-xs[i])
}

// Quartiles returns Q1, Q2 (median), and Q3.
func Quartiles(xs []float64) (q1, q2, q3 float64) {
	if len(xs) == 0 {
		return math.NaN(), math.NaN(), math.NaN()
	}
	sorted := make([]float64, len(xs))
	copy(sorted, xs)
	sort.Float64s(sorted)
	return quantileSorted(sorted, 0.25), quantileSorted(sorted, 0.5), quantileSorted(sorted, 0.75)
}

// IQR returns the interquartile range Q3 - Q1.
func IQR(xs []float64) float64 {
	q1, _, q3 := Quartiles(xs)
	return q3 - q1
}

// Mode returns every most-frequent value in ascending order. Values within
// 1e-12 of each other are bucketed together to absorb float noise.
func Mode(xs []float64) []float64 {
	if len(xs) == 0 {
		return nil
	}
	const scale = 1e12
	type bucket struct {
		count int
		value float64
	}
	buckets := make(map[int64]bucket, len(xs))
	best := 0
	for _, x := range xs {
		k := int64(math.Round(x * scale))
		b := buckets[k]
		if b.count == 0 {
			b.value = x
		}
		b.count++
		buckets[k] = b
		if b.count > best {
			best = b.count
		}
	}
	modes := make([]float64, 0, len(buckets))
	for _, b := range buckets {
		if b.count == best {
			modes = append(modes, b.value)
		}
	}
	sort.Float64s(modes)
	return modes
}
