package analysis

import (
	"math"
	"strings"

	"github.com/Deepankar977/Data-Explorer/internal/apperr"
	"github.com/Deepankar977/Data-Explorer/internal/table"
	"gonum.org/v1/gonum/stat"
)

// CorrMatrix holds a symmetric Pearson correlation matrix across numeric columns.
type CorrMatrix struct {
	Columns []string
	Values  [][]float64 // row-major, Values[i][j]; NaN when undefined
}

// SplitColumns parses a comma-separated column list, dropping blanks.
func SplitColumns(list string) []string {
	var out []string
	for _, part := range strings.Split(list, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}

// Correlate computes pairwise correlations using, for each pair, only the rows
// where both cells are present. An empty cols means every numeric column.
func Correlate(t *table.Table, cols []string) (*CorrMatrix, error) {
	if len(cols) == 0 {
		cols = t.NumericNames()
	}
	data := make([][]float64, len(cols))
	present := make([][]bool, len(cols))
	for i, name := range cols {
		s, err := t.Numeric(name, "a correlation heatmap")
		if err != nil {
			return nil, err
		}
		data[i] = make([]float64, s.Len())
		present[i] = make([]bool, s.Len())
		for r := 0; r < s.Len(); r++ {
			e := s.Elem(r)
			present[i][r] = !e.IsNA()
			data[i][r] = e.Float()
		}
	}
	if len(cols) < 2 {
		return nil, apperr.New(apperr.NoData, "a correlation heatmap needs at least two numeric columns, got %d", len(cols))
	}
	n := len(cols)
	mat := make([][]float64, n)
	for i := range mat {
		mat[i] = make([]float64, n)
	}
	for a := 0; a < n; a++ {
		for b := a; b < n; b++ {
			var xs, ys []float64
			for r := range data[a] {
				if present[a][r] && present[b][r] {
					xs = append(xs, data[a][r])
					ys = append(ys, data[b][r])
				}
			}
			r := math.NaN()
			if len(xs) >= 2 {
				r = stat.Correlation(xs, ys, nil)
			}
			if !math.IsNaN(r) {
				r = math.Max(-1, math.Min(1, r))
			}
			mat[a][b] = r
			mat[b][a] = r
		}
	}
	return &CorrMatrix{Columns: cols, Values: mat}, nil
}
