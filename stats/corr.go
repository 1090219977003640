package stats

import (
	"math"
	"sort"
)

// Covariance returns the sample covariance (n-1 denominator). NaN when the
// lengths differ or n < 2.
func Covariance(xs, ys []float64) float64 {
	n := len(xs)
	if n != len(ys) || n < 2 {
		return math.NaN()
	}
	mx := Mean(xs)
	my := Mean(ys)
	s := 0.0
	for i := 0; i < n; i++ {
		s += (xs[i] - mx) * (ys[i] - my)
	}
	return s / float64(n-1)
}

// Pearson returns the product-moment correlation coefficient. NaN when either
// series has zero variance.
func Pearson(xs, ys []float64) float64 {
	cov := Covariance(xs, ys)
	sx := SampleStdDev(xs)
	sy := SampleStdDev(ys)
	return cov / (sx * sy)
}

// Spearman returns Pearson applied to average (mid) ranks, so ties are
// handled by rank averaging rather than the shortcut d² formula.
func Spearman(xs, ys []float64) float64 {
	if len(xs) != len(ys) {
		return math.NaN()
	}
	return Pearson(AverageRanks(xs), AverageRanks(ys))
}

// AverageRanks assigns 1-based ranks with ties averaged, aligned with xs.
func AverageRanks(xs []float64) []float64 {
	n := len(xs)
	idx := make([]int, n)
	for i := range idx {
		idx[i] = i
	}
	sort.Slice(idx, func(a, b int) bool { return xs[idx[a]] < xs[idx[b]] })

	ranks := make([]float64, n)
	for i := 0; i < n; {
		j := i + 1
		for j < n && xs[idx[j]] == xs[idx[i]] {
			j++
		}
		avg := float64(i+1+j) / 2.0
		for k := i; k < j; k++ {
			ranks[idx[k]] = avg
		}
		i = j
	}
	return ranks
}

// KendallTauB returns the tie-corrected Kendall rank correlation, computed in
// O(n log n) with Knight's algorithm: sort by (x, y), count tied pairs, then
// count discordant pairs as merge-sort inversions of the y sequence.
// NaN when lengths differ, n < 2, or either series is fully tied.
func KendallTauB(xs, ys []float64) float64 {
	n := len(xs)
	if n != len(ys) || n < 2 {
		return math.NaN()
	}

	idx := make([]int, n)
	for i := range idx {
		idx[i] = i
	}
	sort.Slice(idx, func(a, b int) bool {
		if xs[idx[a]] != xs[idx[b]] {
			return xs[idx[a]] < xs[idx[b]]
		}
		return ys[idx[a]] < ys[idx[b]]
	})

	// Pair totals: tiesX counts pairs tied in x, tiesXY pairs tied in both.
	var tiesX, tiesXY int64
	y := make([]float64, n)
	for i, k := range idx {
		y[i] = ys[k]
	}
	for i := 0; i < n; {
		j := i + 1
		for j < n && xs[idx[j]] == xs[idx[i]] {
			j++
		}
		run := int64(j - i)
		tiesX += run * (run - 1) / 2
		for a := i; a < j; {
			b := a + 1
			for b < j && ys[idx[b]] == ys[idx[a]] {
				b++
			}
			joint := int64(b - a)
			tiesXY += joint * (joint - 1) / 2
			a = b
		}
		i = j
	}

	var tiesY int64
	sortedY := make([]float64, n)
	copy(sortedY, ys)
	sort.Float64s(sortedY)
	for i := 0; i < n; {
		j := i + 1
		for j < n && sortedY[j] == sortedY[i] {
			j++
		}
		run := int64(j - i)
		tiesY += run * (run - 1) / 2
		i = j
	}

	discordant := countInversions(y)

	total := int64(n) * int64(n-1) / 2
	num := float64(total-tiesX-tiesY+tiesXY) - 2*float64(discordant)
	den := math.Sqrt(float64(total-tiesX)) * math.Sqrt(float64(total-tiesY))
	if den == 0 {
		return math.NaN()
	}
	return num / den
}

// countInversions counts pairs i < j with xs[i] > xs[j] (equal values are not
// inversions) using a bottom-up merge sort. Mutates its argument.
func countInversions(xs []float64) int64 {
	n := len(xs)
	buf := make([]float64, n)
	var inv int64
	for width := 1; width < n; width *= 2 {
		for lo := 0; lo < n-width; lo += 2 * width {
			mid := lo + width
			hi := mid + width
			if hi > n {
				hi = n
			}
			i, j, k := lo, mid, lo
			for i < mid && j < hi {
				if xs[i] <= xs[j] {
					buf[k] = xs[i]
					i++
				} else {
					buf[k] = xs[j]
					inv += int64(mid - i)
					j++
				}
				k++
			}
			copy(buf[k:hi], xs[i:mid])
			copy(buf[k+(mid-i):hi], xs[j:hi])
			copy(xs[lo:hi], buf[lo:hi])
		}
	}
	return inv
}

// Skewness returns the adjusted Fisher-Pearson sample skewness. NaN when
// n < 3, zero for a constant series.
func Skewness(xs []float64) float64 {
	n := len(xs)
	if n < 3 {
		return math.NaN()
	}
	m := Mean(xs)
	s := SampleStdDev(xs)
	if s == 0 {
		return 0
	}
	m3 := 0.0
	for _, x := range xs {
		z := (x - m) / s
		m3 += z * z * z
	}
	fn := float64(n)
	return fn * m3 / ((fn - 1) * (fn - 2))
}

// ExcessKurtosis returns the sample-corrected Fisher excess kurtosis (0 for a
// normal population). NaN when n < 4 or the series is constant.
func ExcessKurtosis(xs []float64) float64 {
	n := len(xs)
	if n < 4 {
		return math.NaN()
	}
	m := Mean(xs)
	s := SampleStdDev(xs)
	if s == 0 {
		return math.NaN()
	}
	sum := 0.0
	for _, x := range xs {
		z := (x - m) / s
		sum += z * z * z * z
	}
	fn := float64(n)
	num := fn*(fn+1)*sum - 3*(fn-1)*(fn-1)*(fn-1)
	den := (fn - 1) * (fn - 2) * (fn - 3)
	return num / den
}
