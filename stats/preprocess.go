package stats

import "math"

// ZScores maps each value to (x - mean) / sampleStd. A zero or undefined
// standard deviation yields all zeros; callers that must treat that as an
// error check the variance first.
func ZScores(xs []float64) []float64 {
	if len(xs) == 0 {
		return nil
	}
	m := Mean(xs)
	s := SampleStdDev(xs)
	out := make([]float64, len(xs))
	for i, x := range xs {
		if s != 0 && !math.IsNaN(s) {
			out[i] = (x - m) / s
		}
	}
	return out
}

// MinMaxScale linearly maps xs onto [a, b]. A degenerate range (max == min)
// maps every value to the interval midpoint.
func MinMaxScale(xs []float64, a, b float64) []float64 {
	if len(xs) == 0 {
		return nil
	}
	lo := Min(xs)
	hi := Max(xs)
	out := make([]float64, len(xs))
	if hi == lo {
		mid := (a + b) / 2
		for i := range out {
			out[i] = mid
		}
		return out
	}
	for i, x := range xs {
		out[i] = a + (x-lo)*(b-a)/(hi-lo)
	}
	return out
}
