package main

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/swallace100/stats-utility-app/domain/sample"
	"github.com/swallace100/stats-utility-app/engine"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "statcli",
		Short: "Run statistical engine operations over CSV columns",
	}

	rootCmd.AddCommand(
		newDescribeCmd(),
		newDistributionCmd(),
		newECDFCmd(),
		newQQCmd(),
		newCorrCmd(),
		newOutliersCmd(),
		newNormalizeCmd(),
		newTTestCmd(),
		newANOVACmd(),
		newChiSquareCmd(),
		newOLSCmd(),
		newDriftCmd(),
	)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newDescribeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "describe [file] [column]",
		Short: "Summary statistics for one column",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := readColumn(args[0], args[1])
			if err != nil {
				return err
			}
			out, err := engine.Describe(s)
			if err != nil {
				return err
			}
			return printJSON(out)
		},
	}
}

func newDistributionCmd() *cobra.Command {
	var bins int
	var rule string
	var quantiles string

	cmd := &cobra.Command{
		Use:   "distribution [file] [column]",
		Short: "Histogram, quantiles, and shape statistics for one column",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := readColumn(args[0], args[1])
			if err != nil {
				return err
			}
			opts := engine.DistributionOptions{Bins: bins, Rule: engine.BinRule(rule)}
			if quantiles != "" {
				opts.Quantiles, err = parseFloats(quantiles)
				if err != nil {
					return err
				}
			}
			out, err := engine.NewDistribution(s, opts)
			if err != nil {
				return err
			}
			return printJSON(out)
		},
	}

	cmd.Flags().IntVar(&bins, "bins", 0, "Fixed bin count (0 uses the rule)")
	cmd.Flags().StringVar(&rule, "rule", "auto", "Bin rule: sturges, scott, fd, auto")
	cmd.Flags().StringVar(&quantiles, "quantiles", "", "Comma-separated probabilities, e.g. 0.1,0.5,0.9")
	return cmd
}

func newECDFCmd() *cobra.Command {
	var maxPoints int

	cmd := &cobra.Command{
		Use:   "ecdf [file] [column]",
		Short: "Empirical CDF points for one column",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := readColumn(args[0], args[1])
			if err != nil {
				return err
			}
			out, err := engine.NewECDF(s, maxPoints)
			if err != nil {
				return err
			}
			return printJSON(out)
		},
	}

	cmd.Flags().IntVar(&maxPoints, "max-points", 0, "Decimate to at most this many points (0 keeps all)")
	return cmd
}

func newQQCmd() *cobra.Command {
	var robust bool

	cmd := &cobra.Command{
		Use:   "qq [file] [column]",
		Short: "Normal quantile-quantile points for one column",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := readColumn(args[0], args[1])
			if err != nil {
				return err
			}
			out, err := engine.QQNormal(s, engine.QQOptions{Robust: robust})
			if err != nil {
				return err
			}
			return printJSON(out)
		},
	}

	cmd.Flags().BoolVar(&robust, "robust", false, "Use median/MAD location and scale estimates")
	return cmd
}

func newCorrCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "corr [file] [column-x] [column-y]",
		Short: "Covariance and correlation coefficients for a column pair",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := readPaired(args[0], args[1], args[2])
			if err != nil {
				return err
			}
			out, err := engine.NewPairwise(p)
			if err != nil {
				return err
			}
			return printJSON(out)
		},
	}
}

func newOutliersCmd() *cobra.Command {
	var method string
	var k float64

	cmd := &cobra.Command{
		Use:   "outliers [file] [column]",
		Short: "Flag outliers in one column",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := readColumn(args[0], args[1])
			if err != nil {
				return err
			}
			out, err := engine.FindOutliers(s, engine.OutlierOptions{
				Method: engine.OutlierMethod(method),
				K:      k,
			})
			if err != nil {
				return err
			}
			return printJSON(out)
		},
	}

	cmd.Flags().StringVar(&method, "method", "iqr", "Outlier rule: iqr or zscore")
	cmd.Flags().Float64Var(&k, "k", 0, "Fence or z threshold (0 uses the method default)")
	return cmd
}

func newNormalizeCmd() *cobra.Command {
	var method string
	var lo, hi float64

	cmd := &cobra.Command{
		Use:   "normalize [file] [column]",
		Short: "Rescale one column",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := readColumn(args[0], args[1])
			if err != nil {
				return err
			}
			opts := engine.NormalizeOptions{Method: engine.NormalizeMethod(method)}
			if method == string(engine.NormalizeMinMax) {
				r := [2]float64{lo, hi}
				opts.Range = &r
			}
			out, err := engine.Normalize(s, opts)
			if err != nil {
				return err
			}
			return printJSON(out)
		},
	}

	cmd.Flags().StringVar(&method, "method", "zscore", "Rescaling rule: zscore or minmax")
	cmd.Flags().Float64Var(&lo, "min", 0, "Min-max target lower bound")
	cmd.Flags().Float64Var(&hi, "max", 1, "Min-max target upper bound")
	return cmd
}

func newTTestCmd() *cobra.Command {
	var equalVariances bool
	var alternative string

	cmd := &cobra.Command{
		Use:   "ttest [file] [column-x] [column-y]",
		Short: "Two-sample t-test between two columns",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			x, err := readColumn(args[0], args[1])
			if err != nil {
				return err
			}
			y, err := readColumn(args[0], args[2])
			if err != nil {
				return err
			}
			out, err := engine.NewTTest(x, y, engine.TTestOptions{
				EqualVariances: equalVariances,
				Alternative:    engine.Alternative(alternative),
			})
			if err != nil {
				return err
			}
			return printJSON(out)
		},
	}

	cmd.Flags().BoolVar(&equalVariances, "equal-variances", false, "Pooled-variance test instead of Welch")
	cmd.Flags().StringVar(&alternative, "alternative", "two-sided", "Tested tail: two-sided, less, greater")
	return cmd
}

func newANOVACmd() *cobra.Command {
	return &cobra.Command{
		Use:   "anova [file] [label-column] [value-column]",
		Short: "One-way ANOVA over labeled groups",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			groups, err := readGrouped(args[0], args[1], args[2])
			if err != nil {
				return err
			}
			out, err := engine.NewANOVA(groups)
			if err != nil {
				return err
			}
			return printJSON(out)
		},
	}
}

func newChiSquareCmd() *cobra.Command {
	var yates bool

	cmd := &cobra.Command{
		Use:   "chisq [file]",
		Short: "Chi-square independence test on a headerless count table",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			counts, err := readTable(args[0])
			if err != nil {
				return err
			}
			table, err := sample.NewContingencyTable(counts)
			if err != nil {
				return err
			}
			out, err := engine.NewChiSquare(table, engine.ChiSquareOptions{Yates: yates})
			if err != nil {
				return err
			}
			return printJSON(out)
		},
	}

	cmd.Flags().BoolVar(&yates, "yates", false, "Apply the Yates continuity correction")
	return cmd
}

func newOLSCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "ols [file] [column-x] [column-y]",
		Short: "Simple least-squares regression of y on x",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := readPaired(args[0], args[1], args[2])
			if err != nil {
				return err
			}
			out, err := engine.NewOLS(p)
			if err != nil {
				return err
			}
			return printJSON(out)
		},
	}
}

func newDriftCmd() *cobra.Command {
	var bins int

	cmd := &cobra.Command{
		Use:   "drift [expected-file] [actual-file] [column]",
		Short: "Population Stability Index between two extracts of a column",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			expected, err := readColumn(args[0], args[2])
			if err != nil {
				return err
			}
			actual, err := readColumn(args[1], args[2])
			if err != nil {
				return err
			}
			out, err := engine.NewDrift(expected, actual, bins)
			if err != nil {
				return err
			}
			return printJSON(out)
		},
	}

	cmd.Flags().IntVar(&bins, "bins", 0, "Quantile bin count (0 uses the default of 10)")
	return cmd
}

// readColumn extracts one named column through the tolerant parsing path,
// reporting dropped cells on stderr rather than failing the run.
func readColumn(path, column string) (sample.Sample, error) {
	records, err := readCSV(path)
	if err != nil {
		return nil, err
	}
	if len(records) < 2 {
		return nil, fmt.Errorf("%s: no data rows", path)
	}
	idx, err := columnIndex(records[0], column)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	cells := make([]string, 0, len(records)-1)
	for _, row := range records[1:] {
		if idx < len(row) {
			cells = append(cells, row[idx])
		}
	}
	s, dropped := sample.FromCells(cells)
	if dropped > 0 {
		fmt.Fprintf(os.Stderr, "%s[%s]: dropped %d non-numeric cell(s)\n", path, column, dropped)
	}
	return s, nil
}

// readPaired extracts two columns row-aligned through the strict path, so a
// non-numeric cell in either column is an error instead of a silent
// misalignment.
func readPaired(path, colX, colY string) (sample.Paired, error) {
	records, err := readCSV(path)
	if err != nil {
		return sample.Paired{}, err
	}
	if len(records) < 2 {
		return sample.Paired{}, fmt.Errorf("%s: no data rows", path)
	}
	ix, err := columnIndex(records[0], colX)
	if err != nil {
		return sample.Paired{}, fmt.Errorf("%s: %w", path, err)
	}
	iy, err := columnIndex(records[0], colY)
	if err != nil {
		return sample.Paired{}, fmt.Errorf("%s: %w", path, err)
	}

	xs := make([]float64, 0, len(records)-1)
	ys := make([]float64, 0, len(records)-1)
	for n, row := range records[1:] {
		x, errX := parseCell(row, ix)
		y, errY := parseCell(row, iy)
		if errX != nil || errY != nil {
			return sample.Paired{}, fmt.Errorf("%s row %d: non-numeric cell in pair", path, n+2)
		}
		xs = append(xs, x)
		ys = append(ys, y)
	}
	return sample.NewPaired(xs, ys)
}

// readGrouped maps a label column onto a value column for ANOVA input.
func readGrouped(path, labelCol, valueCol string) (sample.Grouped, error) {
	records, err := readCSV(path)
	if err != nil {
		return nil, err
	}
	if len(records) < 2 {
		return nil, fmt.Errorf("%s: no data rows", path)
	}
	il, err := columnIndex(records[0], labelCol)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	iv, err := columnIndex(records[0], valueCol)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	groups := make(map[string][]float64)
	for n, row := range records[1:] {
		if il >= len(row) || iv >= len(row) {
			continue
		}
		v, err := parseCell(row, iv)
		if err != nil {
			return nil, fmt.Errorf("%s row %d: non-numeric value", path, n+2)
		}
		label := strings.TrimSpace(row[il])
		groups[label] = append(groups[label], v)
	}
	return sample.NewGrouped(groups)
}

// readTable parses a headerless numeric CSV into a count matrix.
func readTable(path string) ([][]float64, error) {
	records, err := readCSV(path)
	if err != nil {
		return nil, err
	}
	out := make([][]float64, len(records))
	for i, row := range records {
		out[i] = make([]float64, len(row))
		for j := range row {
			v, err := parseCell(row, j)
			if err != nil {
				return nil, fmt.Errorf("%s cell [%d][%d]: not a number", path, i, j)
			}
			out[i][j] = v
		}
	}
	return out, nil
}

func readCSV(path string) ([][]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.FieldsPerRecord = -1
	return r.ReadAll()
}

func columnIndex(header []string, column string) (int, error) {
	for i, h := range header {
		if strings.TrimSpace(h) == column {
			return i, nil
		}
	}
	// Fall back to a zero-based positional index.
	if idx, err := strconv.Atoi(column); err == nil && idx >= 0 && idx < len(header) {
		return idx, nil
	}
	return 0, fmt.Errorf("column %q not found", column)
}

func parseCell(row []string, idx int) (float64, error) {
	if idx >= len(row) {
		return 0, fmt.Errorf("missing cell")
	}
	return strconv.ParseFloat(strings.TrimSpace(row[idx]), 64)
}

func parseFloats(csvList string) ([]float64, error) {
	parts := strings.Split(csvList, ",")
	out := make([]float64, 0, len(parts))
	for _, p := range parts {
		v, err := strconv.ParseFloat(strings.TrimSpace(p), 64)
		if err != nil {
			return nil, fmt.Errorf("invalid probability %q", p)
		}
		out = append(out, v)
	}
	return out, nil
}

func printJSON(v any) error {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
