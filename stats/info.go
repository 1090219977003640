package stats

import "math"

// probEps guards the logs below against exact zeros without disturbing
// well-formed probabilities.
const probEps = 1e-15

// EntropyBits returns the Shannon entropy of a probability vector in bits.
// Zero-probability cells contribute nothing (0*log2(0) := 0).
func EntropyBits(p []float64) float64 {
	h := 0.0
	for _, pi := range p {
		if pi <= 0 {
			continue
		}
		q := math.Min(pi+probEps, 1)
		h -= q * math.Log2(q)
	}
	return h
}

// KLDivergenceBits returns D_KL(p || q) in bits over two probability vectors
// of the same length. Cells where p is zero contribute nothing; zero q cells
// are epsilon-clamped so the result stays finite. NaN on length mismatch.
func KLDivergenceBits(p, q []float64) float64 {
	if len(p) != len(q) {
		return math.NaN()
	}
	d := 0.0
	for i, pi := range p {
		if pi <= 0 {
			continue
		}
		pc := clampProb(pi)
		qc := clampProb(q[i])
		d += pc * math.Log2(pc/qc)
	}
	return d
}

// JSDivergenceBits returns the Jensen-Shannon divergence in bits (symmetric,
// bounded by [0,1] for two classes). NaN on length mismatch.
func JSDivergenceBits(p, q []float64) float64 {
	if len(p) != len(q) {
		return math.NaN()
	}
	m := make([]float64, len(p))
	for i := range p {
		m[i] = 0.5 * (p[i] + q[i])
	}
	return 0.5*KLDivergenceBits(p, m) + 0.5*KLDivergenceBits(q, m)
}

func clampProb(x float64) float64 {
	x += probEps
	if x < probEps {
		return probEps
	}
	if x > 1 {
		return 1
	}
	return x
}
