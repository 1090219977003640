package stats

import (
	"math"
	"sort"
)

// PSIQuantileBins computes the Population Stability Index between an expected
// and an actual sample, binning both by the expected sample's quantiles.
// Larger PSI means bigger drift; the usual reading is <0.1 small, 0.1-0.25
// moderate, >0.25 large. NaN for empty inputs or bins < 2.
func PSIQuantileBins(expected, actual []float64, bins int) float64 {
	if bins < 2 || len(expected) == 0 || len(actual) == 0 {
		return math.NaN()
	}

	sortedExp := make([]float64, len(expected))
	copy(sortedExp, expected)
	sort.Float64s(sortedExp)

	edges := make([]float64, bins+1)
	for i := 0; i <= bins; i++ {
		edges[i] = quantileSorted(sortedExp, float64(i)/float64(bins))
	}

	countExp := make([]int, bins)
	countAct := make([]int, bins)
	for _, x := range expected {
		countExp[psiBin(x, edges)]++
	}
	for _, x := range actual {
		countAct[psiBin(x, edges)]++
	}

	ne := float64(len(expected))
	na := float64(len(actual))
	const eps = 1e-12
	psi := 0.0
	for i := 0; i < bins; i++ {
		pe := math.Max(float64(countExp[i])/ne, eps)
		pa := math.Max(float64(countAct[i])/na, eps)
		psi += (pa - pe) * math.Log(pa/pe)
	}
	return psi
}

// psiBin locates x in the edge array, rightmost bin inclusive.
func psiBin(x float64, edges []float64) int {
	hi := len(edges) - 1
	if x <= edges[0] {
		return 0
	}
	if x >= edges[hi] {
		return hi - 1
	}
	lo := 0
	for lo+1 < hi {
		mid := (lo + hi) / 2
		if x <= edges[mid] {
			hi = mid
		} else {
			lo = mid
		}
	}
	return lo
}
