package stats

import "math"

// MeanVar is a Welford online accumulator for mean and variance. The zero
// value is ready to use. It is the single mean/variance engine for the whole
// package, so every statistic shares the same numerically stable,
// order-fixed accumulation.
type MeanVar struct {
	n    uint64
	mean float64
	m2   float64
}

// Push folds one observation into the accumulator.
func (a *MeanVar) Push(x float64) {
	a.n++
	delta := x - a.mean
	a.mean += delta / float64(a.n)
	a.m2 += delta * (x - a.mean)
}

// Count returns the number of observations pushed so far.
func (a *MeanVar) Count() uint64 { return a.n }

// Mean returns the running mean, 0 before any observation.
func (a *MeanVar) Mean() float64 { return a.mean }

// SampleVariance returns the n-1 denominator variance, NaN when n < 2.
func (a *MeanVar) SampleVariance() float64 {
	if a.n < 2 {
		return math.NaN()
	}
	return a.m2 / float64(a.n-1)
}

// PopulationVariance returns the n denominator variance, NaN when n == 0.
func (a *MeanVar) PopulationVariance() float64 {
	if a.n == 0 {
		return math.NaN()
	}
	return a.m2 / float64(a.n)
}

// SampleStdDev returns the sample standard deviation, NaN when n < 2.
func (a *MeanVar) SampleStdDev() float64 {
	return math.Sqrt(a.SampleVariance())
}
