package sample

import (
	"math"
	"sort"
	"strconv"
	"strings"

	"github.com/swallace100/stats-utility-app/domain/core"
)

// Sample is an ordered sequence of finite float64 values. Every constructor
// guarantees finiteness, so downstream kernels never observe NaN or ±Inf.
type Sample []float64

// New builds a Sample from a structured numeric payload. This is the strict
// ingestion path: any NaN or ±Inf value is a hard error reporting how many
// entries were non-finite. Empty input is invalid.
func New(values []float64) (Sample, error) {
	if len(values) == 0 {
		return nil, core.NewInvalidInput("empty sample")
	}
	rejected := 0
	for _, v := range values {
		if !isFinite(v) {
			rejected++
		}
	}
	if rejected > 0 {
		return nil, core.NewInvalidInputf("%d non-finite value(s) in numeric payload", rejected)
	}
	out := make(Sample, len(values))
	copy(out, values)
	return out, nil
}

// Filter builds a Sample from an untrusted numeric sequence, silently dropping
// non-finite values. This is the tolerant path used for per-value extraction
// from free-text sources. Returns the number of dropped entries; the resulting
// Sample may be empty.
func Filter(values []float64) (Sample, int) {
	out := make(Sample, 0, len(values))
	dropped := 0
	for _, v := range values {
		if isFinite(v) {
			out = append(out, v)
		} else {
			dropped++
		}
	}
	return out, dropped
}

// FromCells parses free-text cells into a Sample, dropping anything that is
// not a finite number. Returns the number of dropped cells.
func FromCells(cells []string) (Sample, int) {
	out := make(Sample, 0, len(cells))
	dropped := 0
	for _, c := range cells {
		v, err := strconv.ParseFloat(strings.TrimSpace(c), 64)
		if err != nil || !isFinite(v) {
			dropped++
			continue
		}
		out = append(out, v)
	}
	return out, dropped
}

// Len returns the number of observations.
func (s Sample) Len() int { return len(s) }

// Values returns a defensive copy of the underlying data.
func (s Sample) Values() []float64 {
	out := make([]float64, len(s))
	copy(out, s)
	return out
}

// Sorted returns an ascending copy; the receiver is never reordered.
func (s Sample) Sorted() []float64 {
	out := s.Values()
	sort.Float64s(out)
	return out
}

func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}

// Paired holds two element-wise matched Samples for pairwise correlation and
// simple regression.
type Paired struct {
	X Sample
	Y Sample
}

// NewPaired validates that x and y are strict Samples of equal length.
func NewPaired(x, y []float64) (Paired, error) {
	if len(x) != len(y) {
		return Paired{}, core.NewInvalidInputf("length mismatch: x has %d values, y has %d", len(x), len(y))
	}
	sx, err := New(x)
	if err != nil {
		return Paired{}, err
	}
	sy, err := New(y)
	if err != nil {
		return Paired{}, err
	}
	return Paired{X: sx, Y: sy}, nil
}

// Grouped maps a group label to its Sample. Used by one-way ANOVA and by
// named-series correlation-matrix input. Group lengths may differ.
type Grouped map[string]Sample

// NewGrouped validates every group through the strict path.
func NewGrouped(groups map[string][]float64) (Grouped, error) {
	if len(groups) == 0 {
		return nil, core.NewInvalidInput("no groups")
	}
	out := make(Grouped, len(groups))
	for label, values := range groups {
		s, err := New(values)
		if err != nil {
			return nil, core.NewInvalidInputf("group %q: %v", label, err)
		}
		out[label] = s
	}
	return out, nil
}

// Labels returns the group labels in sorted order so iteration is
// deterministic.
func (g Grouped) Labels() []string {
	labels := make([]string, 0, len(g))
	for l := range g {
		labels = append(labels, l)
	}
	sort.Strings(labels)
	return labels
}
