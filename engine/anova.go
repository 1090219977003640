package engine

import (
	"github.com/swallace100/stats-utility-app/domain/core"
	"github.com/swallace100/stats-utility-app/domain/sample"
	"github.com/swallace100/stats-utility-app/stats"
	"github.com/swallace100/stats-utility-app/stats/dist"
)

// NewANOVA runs a one-way analysis of variance over two or more groups, each
// with n >= 2. F is the ratio of between-group to within-group mean squares;
// the p-value is the right tail of F(k-1, N-k). Identical values across all
// groups leave the within-group mean square at zero, which is
// ErrDivisionByZero rather than an infinite F.
func NewANOVA(groups sample.Grouped) (ANOVA, error) {
	k := len(groups)
	if k < 2 {
		return ANOVA{}, core.NewInvalidInputf("anova needs at least 2 groups, got %d", k)
	}

	labels := groups.Labels()
	total := 0
	var grand stats.MeanVar
	for _, label := range labels {
		g := groups[label]
		if g.Len() < 2 {
			return ANOVA{}, core.NewInsufficientSample("anova group "+label, 2, g.Len())
		}
		total += g.Len()
		for _, x := range g {
			grand.Push(x)
		}
	}

	grandMean := grand.Mean()
	ssBetween := 0.0
	ssWithin := 0.0
	for _, label := range labels {
		g := groups[label]
		gm := stats.Mean(g)
		d := gm - grandMean
		ssBetween += float64(g.Len()) * d * d
		for _, x := range g {
			ssWithin += (x - gm) * (x - gm)
		}
	}

	dfBetween := k - 1
	dfWithin := total - k
	msWithin := ssWithin / float64(dfWithin)
	if msWithin == 0 {
		return ANOVA{}, core.NewDivisionByZero("within-group mean square")
	}
	f := (ssBetween / float64(dfBetween)) / msWithin

	fDist, err := dist.FisherF(float64(dfBetween), float64(dfWithin))
	if err != nil {
		return ANOVA{}, err
	}

	return ANOVA{
		F:         f,
		DFBetween: dfBetween,
		DFWithin:  dfWithin,
		P:         dist.RightTailP(fDist, f),
	}, nil
}
