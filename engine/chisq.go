package engine

import (
	"math"

	"github.com/swallace100/stats-utility-app/domain/sample"
	"github.com/swallace100/stats-utility-app/stats/dist"
)

// ChiSquareOptions configures the independence test.
type ChiSquareOptions struct {
	// Yates subtracts 0.5 from each |observed - expected| before squaring.
	// The correction is only meaningful for 2x2 tables; that is a documented
	// convention, not enforced here.
	Yates bool
}

// NewChiSquare runs the chi-square test of independence on a validated
// contingency table. Expected counts are the usual product of marginals over
// the grand total; the table constructor already rejects zero marginals, so
// no expected cell can be zero. The p-value is the right tail of
// chi-square((rows-1)(cols-1)).
func NewChiSquare(table sample.ContingencyTable, opts ChiSquareOptions) (ChiSquare, error) {
	rows, cols := table.Rows(), table.Cols()
	rowSums := table.RowSums()
	colSums := table.ColSums()
	total := table.Total()

	expected := make([][]float64, rows)
	x2 := 0.0
	for i := 0; i < rows; i++ {
		expected[i] = make([]float64, cols)
		for j := 0; j < cols; j++ {
			e := rowSums[i] * colSums[j] / total
			expected[i][j] = e
			d := math.Abs(table.At(i, j) - e)
			if opts.Yates {
				d -= 0.5
				if d < 0 {
					d = 0
				}
			}
			x2 += d * d / e
		}
	}

	df := (rows - 1) * (cols - 1)
	chiDist, err := dist.ChiSquared(float64(df))
	if err != nil {
		return ChiSquare{}, err
	}

	return ChiSquare{
		X2:       x2,
		DF:       df,
		P:        dist.RightTailP(chiDist, x2),
		Expected: expected,
	}, nil
}
