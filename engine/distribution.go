package engine

import (
	"math"

	"github.com/swallace100/stats-utility-app/domain/core"
	"github.com/swallace100/stats-utility-app/domain/sample"
	"github.com/swallace100/stats-utility-app/stats"
)

// DistributionOptions configures the histogram/shape operation.
type DistributionOptions struct {
	// Bins fixes the bin count when > 0; Rule is ignored in that case.
	Bins int
	// Rule selects the bin count when Bins == 0. Empty means auto.
	Rule BinRule
	// Quantiles are the probabilities to tabulate; nil means {0.25, 0.5, 0.75}.
	Quantiles []float64
}

// NewDistribution computes histogram counts and edges, a quantile table, and
// shape statistics for a non-empty sample. Counts are conserved: every finite
// value lands in exactly one bin, with max in the last. A degenerate sample
// (max == min) produces one bin over an epsilon-widened range instead of a
// zero width. Entropy is Shannon entropy in bits of the normalized histogram.
func NewDistribution(s sample.Sample, opts DistributionOptions) (Distribution, error) {
	n := s.Len()
	if n == 0 {
		return Distribution{}, core.NewInvalidInput("empty sample")
	}

	bins := opts.Bins
	if bins < 0 {
		return Distribution{}, core.NewInvalidParametersf("bins must be positive, got %d", bins)
	}
	if bins == 0 {
		rule := opts.Rule
		if rule == "" {
			rule = BinRuleAuto
		}
		var err error
		bins, err = BinCount(s, rule)
		if err != nil {
			return Distribution{}, err
		}
	}

	counts, edges := histogram(s, bins)

	qps := opts.Quantiles
	if qps == nil {
		qps = []float64{0.25, 0.5, 0.75}
	}
	sorted := s.Sorted()
	quantiles := make([]QuantilePoint, 0, len(qps))
	for _, p := range qps {
		if p < 0 || p > 1 || math.IsNaN(p) {
			return Distribution{}, core.NewInvalidParametersf("quantile probability %v outside [0,1]", p)
		}
		quantiles = append(quantiles, QuantilePoint{P: p, Value: stats.Quantile(sorted, p)})
	}

	probs := make([]float64, len(counts))
	for i, c := range counts {
		probs[i] = float64(c) / float64(n)
	}

	out := Distribution{
		Counts:      counts,
		Edges:       edges,
		Quantiles:   quantiles,
		EntropyBits: stats.EntropyBits(probs),
	}
	if sk := stats.Skewness(s); !math.IsNaN(sk) {
		out.Skewness = optional(sk)
	}
	if ek := stats.ExcessKurtosis(s); !math.IsNaN(ek) {
		out.ExcessKurtosis = optional(ek)
	}
	return out, nil
}

// BinCount applies a bin-rule heuristic to a non-empty sample. Auto picks
// Freedman-Diaconis unless the IQR is zero, in which case it falls back to
// Sturges; an explicit FD request degrades the same way. The result is always
// at least 1.
func BinCount(s sample.Sample, rule BinRule) (int, error) {
	if err := rule.validate(); err != nil {
		return 0, err
	}
	n := s.Len()
	if n == 0 {
		return 0, core.NewInvalidInput("empty sample")
	}

	width := stats.Max(s) - stats.Min(s)
	if width == 0 {
		// Degenerate range: a single epsilon-widened bin regardless of rule.
		return 1, nil
	}

	sturges := func() int {
		return clampBins(math.Ceil(math.Log2(float64(n)) + 1))
	}

	switch rule {
	case BinRuleSturges:
		return sturges(), nil
	case BinRuleScott:
		sd := stats.SampleStdDev(s)
		if math.IsNaN(sd) || sd == 0 {
			return sturges(), nil
		}
		h := 3.49 * sd * math.Pow(float64(n), -1.0/3.0)
		return clampBins(math.Ceil(width / h)), nil
	case BinRuleFreedmanDiaconis, BinRuleAuto:
		iqr := stats.IQR(s)
		if iqr == 0 {
			return sturges(), nil
		}
		h := 2 * iqr * math.Pow(float64(n), -1.0/3.0)
		return clampBins(math.Ceil(width / h)), nil
	}
	return 0, core.NewInvalidParametersf("unknown bin rule %q", string(rule))
}

func clampBins(b float64) int {
	if b < 1 || math.IsNaN(b) {
		return 1
	}
	return int(b)
}

// histogram bins s into the given number of equal-width bins over [min, max].
// Values at the upper edge fold into the last bin so counts stay conserved.
func histogram(s sample.Sample, bins int) (counts []int, edges []float64) {
	lo := stats.Min(s)
	hi := stats.Max(s)
	if lo == hi {
		eps := math.Max(math.Abs(lo)*1e-9, 1e-9)
		return []int{s.Len()}, []float64{lo - eps, lo + eps}
	}

	counts = make([]int, bins)
	width := (hi - lo) / float64(bins)
	for _, x := range s {
		b := int(math.Floor((x - lo) / width))
		if b >= bins {
			b = bins - 1
		}
		if b < 0 {
			b = 0
		}
		counts[b]++
	}

	edges = make([]float64, bins+1)
	for i := 0; i <= bins; i++ {
		edges[i] = lo + float64(i)*width
	}
	edges[bins] = hi // exact upper edge, no accumulation error
	return counts, edges
}
