package sample

import "github.com/swallace100/stats-utility-app/domain/core"

// ContingencyTable is a rectangular matrix of non-negative observed counts
// (rows x columns) for the chi-square independence test. Tables with a row or
// column summing to zero are degenerate and rejected at construction.
type ContingencyTable struct {
	counts [][]float64
	rows   int
	cols   int
}

// NewContingencyTable validates shape, non-negativity, and marginal sums.
// Counts are taken as float64 so callers can pass pre-aggregated data, but
// they must be non-negative and finite.
func NewContingencyTable(counts [][]float64) (ContingencyTable, error) {
	rows := len(counts)
	if rows < 2 {
		return ContingencyTable{}, core.NewInvalidInput("contingency table needs at least 2 rows")
	}
	cols := len(counts[0])
	if cols < 2 {
		return ContingencyTable{}, core.NewInvalidInput("contingency table needs at least 2 columns")
	}

	copied := make([][]float64, rows)
	colSums := make([]float64, cols)
	for i, row := range counts {
		if len(row) != cols {
			return ContingencyTable{}, core.NewInvalidInputf("ragged table: row %d has %d cells, want %d", i, len(row), cols)
		}
		rowSum := 0.0
		copied[i] = make([]float64, cols)
		for j, c := range row {
			if !isFinite(c) || c < 0 {
				return ContingencyTable{}, core.NewInvalidInputf("cell [%d][%d] must be a non-negative count", i, j)
			}
			copied[i][j] = c
			rowSum += c
			colSums[j] += c
		}
		if rowSum == 0 {
			return ContingencyTable{}, core.NewInvalidInputf("row %d sums to zero", i)
		}
	}
	for j, s := range colSums {
		if s == 0 {
			return ContingencyTable{}, core.NewInvalidInputf("column %d sums to zero", j)
		}
	}

	return ContingencyTable{counts: copied, rows: rows, cols: cols}, nil
}

// Rows returns the number of table rows.
func (t ContingencyTable) Rows() int { return t.rows }

// Cols returns the number of table columns.
func (t ContingencyTable) Cols() int { return t.cols }

// At returns the observed count at [i][j].
func (t ContingencyTable) At(i, j int) float64 { return t.counts[i][j] }

// RowSums returns the marginal sum of each row.
func (t ContingencyTable) RowSums() []float64 {
	out := make([]float64, t.rows)
	for i := range t.counts {
		for _, c := range t.counts[i] {
			out[i] += c
		}
	}
	return out
}

// ColSums returns the marginal sum of each column.
func (t ContingencyTable) ColSums() []float64 {
	out := make([]float64, t.cols)
	for i := range t.counts {
		for j, c := range t.counts[i] {
			out[j] += c
		}
	}
	return out
}

// Total returns the grand total of all counts.
func (t ContingencyTable) Total() float64 {
	total := 0.0
	for i := range t.counts {
		for _, c := range t.counts[i] {
			total += c
		}
	}
	return total
}
