// Package analysis answers structural and statistical questions about a table.
package analysis

import (
	"fmt"
	"math"
	"sort"
	"strings"

	"github.com/Deepankar977/Data-Explorer/internal/table"
	"github.com/montanaflynn/stats"
)

// ColumnStats holds the describe row set for one numeric column.
// Undefined statistics are NaN.
type ColumnStats struct {
	Name  string
	Count int
	Mean  float64
	Std   float64
	Min   float64
	Q25   float64
	Q50   float64
	Q75   float64
	Max   float64
}

// Description is the describe table across the numeric columns of a table.
type Description struct {
	Cols []ColumnStats
}

// RowsMessage reports the number of data rows.
func RowsMessage(t *table.Table) string {
	return fmt.Sprintf("Number of rows is %d", t.Rows())
}

// ColumnsMessage reports the number of columns.
func ColumnsMessage(t *table.Table) string {
	return fmt.Sprintf("Number of columns is %d", t.Cols())
}

// Describe computes count, mean, sample std, min, quartiles and max for every
// numeric column, skipping missing cells.
func Describe(t *table.Table) *Description {
	d := &Description{}
	for _, name := range t.NumericNames() {
		s, _ := t.Column(name)
		d.Cols = append(d.Cols, summarize(name, table.Present(s)))
	}
	return d
}

func summarize(name string, vals []float64) ColumnStats {
	nan := math.NaN()
	cs := ColumnStats{Name: name, Count: len(vals), Mean: nan, Std: nan, Min: nan, Q25: nan, Q50: nan, Q75: nan, Max: nan}
	if len(vals) == 0 {
		return cs
	}
	cs.Mean, _ = stats.Mean(vals)
	cs.Min, _ = stats.Min(vals)
	cs.Max, _ = stats.Max(vals)
	if len(vals) > 1 {
		cs.Std, _ = stats.StandardDeviationSample(vals)
	}
	sorted := append([]float64(nil), vals...)
	sort.Float64s(sorted)
	cs.Q25 = quantile(sorted, 0.25)
	cs.Q50 = quantile(sorted, 0.5)
	cs.Q75 = quantile(sorted, 0.75)
	return cs
}

// quantile interpolates linearly between the closest ranks of sorted.
func quantile(sorted []float64, q float64) float64 {
	if len(sorted) == 0 {
		return math.NaN()
	}
	if q <= 0 {
		return sorted[0]
	}
	if q >= 1 {
		return sorted[len(sorted)-1]
	}
	pos := q * float64(len(sorted)-1)
	lo := int(math.Floor(pos))
	hi := int(math.Ceil(pos))
	if lo == hi {
		return sorted[lo]
	}
	w := pos - float64(lo)
	return sorted[lo]*(1-w) + sorted[hi]*w
}

// Markdown renders statistics as rows and columns as columns.
func (d *Description) Markdown() string {
	if len(d.Cols) == 0 {
		return "No numeric columns to describe"
	}
	rows := []struct {
		label string
		get   func(ColumnStats) string
	}{
		{"count", func(c ColumnStats) string { return fmt.Sprintf("%d", c.Count) }},
		{"mean", func(c ColumnStats) string { return num(c.Mean) }},
		{"std", func(c ColumnStats) string { return num(c.Std) }},
		{"min", func(c ColumnStats) string { return num(c.Min) }},
		{"25%", func(c ColumnStats) string { return num(c.Q25) }},
		{"50%", func(c ColumnStats) string { return num(c.Q50) }},
		{"75%", func(c ColumnStats) string { return num(c.Q75) }},
		{"max", func(c ColumnStats) string { return num(c.Max) }},
	}
	var b strings.Builder
	b.WriteString("| stat")
	for _, c := range d.Cols {
		b.WriteString(" | ")
		b.WriteString(c.Name)
	}
	b.WriteString(" |\n| ---")
	for range d.Cols {
		b.WriteString(" | ---")
	}
	b.WriteString(" |\n")
	for _, r := range rows {
		b.WriteString("| ")
		b.WriteString(r.label)
		for _, c := range d.Cols {
			b.WriteString(" | ")
			b.WriteString(r.get(c))
		}
		b.WriteString(" |\n")
	}
	return b.String()
}

func num(v float64) string {
	if math.IsNaN(v) {
		return "NaN"
	}
	return fmt.Sprintf("%.6g", v)
}
