package stats

import (
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	gstat "gonum.org/v1/gonum/stat"
)

func TestCovariance(t *testing.T) {
	xs := []float64{1, 2, 3, 4}
	ys := []float64{2, 4, 6, 8}

	assert.InDelta(t, 3.3333333333333335, Covariance(xs, ys), 1e-12)
	assert.True(t, math.IsNaN(Covariance(xs, []float64{1, 2})))
	assert.True(t, math.IsNaN(Covariance([]float64{1}, []float64{2})))
}

func TestCovarianceAgainstGonum(t *testing.T) {
	xs := []float64{0.5, 2.25, -1.75, 3.5, 0.0, 4.25}
	ys := []float64{1.25, -0.5, 2.75, 3.0, -2.25, 1.5}

	assert.InDelta(t, gstat.Covariance(xs, ys, nil), Covariance(xs, ys), 1e-12)
	assert.InDelta(t, gstat.Correlation(xs, ys, nil), Pearson(xs, ys), 1e-12)
}

func TestPearson(t *testing.T) {
	xs := []float64{1, 2, 3, 4, 5}

	linear := make([]float64, len(xs))
	for i, x := range xs {
		linear[i] = 2*x + 1
	}
	assert.InDelta(t, 1.0, Pearson(xs, linear), 1e-12)

	neg := make([]float64, len(xs))
	for i, x := range xs {
		neg[i] = -x
	}
	assert.InDelta(t, -1.0, Pearson(xs, neg), 1e-12)

	constant := []float64{3, 3, 3, 3, 3}
	assert.True(t, math.IsNaN(Pearson(xs, constant)))
}

func TestAverageRanks(t *testing.T) {
	ranks := AverageRanks([]float64{3, 1, 4, 1, 5})
	assert.Equal(t, []float64{3, 1.5, 4, 1.5, 5}, ranks)
}

func TestSpearmanMonotone(t *testing.T) {
	xs := []float64{1, 2, 3, 4, 5}
	ys := make([]float64, len(xs))
	for i, x := range xs {
		ys[i] = math.Exp(x) // monotone but very non-linear
	}
	assert.InDelta(t, 1.0, Spearman(xs, ys), 1e-12)
}

func TestKendallTauBPerfect(t *testing.T) {
	xs := []float64{1, 2, 3, 4}
	assert.InDelta(t, 1.0, KendallTauB(xs, []float64{10, 20, 30, 40}), 1e-12)
	assert.InDelta(t, -1.0, KendallTauB(xs, []float64{40, 30, 20, 10}), 1e-12)
}

func TestKendallTauBTies(t *testing.T) {
	tau := KendallTauB([]float64{1, 2, 2, 3}, []float64{1, 3, 2, 3})
	assert.InDelta(t, 0.8, tau, 1e-12)

	assert.True(t, math.IsNaN(KendallTauB([]float64{5, 5, 5}, []float64{1, 2, 3})))
	assert.True(t, math.IsNaN(KendallTauB([]float64{1}, []float64{1})))
}

// bruteTauB is the O(n^2) definition the fast path must agree with.
func bruteTauB(xs, ys []float64) float64 {
	var c, d, tx, ty float64
	n := len(xs)
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			dx := xs[i] - xs[j]
			dy := ys[i] - ys[j]
			switch {
			case dx == 0 && dy == 0:
			case dx == 0:
				tx++
			case dy == 0:
				ty++
			case dx*dy > 0:
				c++
			default:
				d++
			}
		}
	}
	den := math.Sqrt((c + d + tx) * (c + d + ty))
	if den == 0 {
		return math.NaN()
	}
	return (c - d) / den
}

func TestKendallTauBMatchesBruteForce(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	for trial := 0; trial < 20; trial++ {
		n := 5 + rng.Intn(60)
		xs := make([]float64, n)
		ys := make([]float64, n)
		for i := range xs {
			// One-decimal rounding forces plenty of ties.
			xs[i] = math.Round(rng.NormFloat64()*10) / 10
			ys[i] = math.Round((0.5*xs[i]+rng.NormFloat64())*10) / 10
		}
		want := bruteTauB(xs, ys)
		got := KendallTauB(xs, ys)
		if math.IsNaN(want) {
			require.True(t, math.IsNaN(got), "trial %d", trial)
			continue
		}
		require.InDelta(t, want, got, 1e-12, "trial %d", trial)
	}
}

func TestSkewness(t *testing.T) {
	assert.InDelta(t, 0.0, Skewness([]float64{1, 2, 3, 4, 5}), 1e-12)
	assert.InDelta(t, 1.6970562, Skewness([]float64{1, 2, 3, 4, 10}), 1e-6)
	assert.Equal(t, 0.0, Skewness([]float64{2, 2, 2}))
	assert.True(t, math.IsNaN(Skewness([]float64{1, 2})))
}

func TestExcessKurtosis(t *testing.T) {
	assert.InDelta(t, -1.2, ExcessKurtosis([]float64{1, 2, 3, 4, 5}), 1e-12)
	assert.True(t, math.IsNaN(ExcessKurtosis([]float64{1, 2, 3})))
	assert.True(t, math.IsNaN(ExcessKurtosis([]float64{4, 4, 4, 4})))
}
