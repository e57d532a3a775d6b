// Package table holds the in-memory dataset shared by every data-explorer step.
//
// A Table wraps a gota DataFrame. Columns keep the type gota detects at load
// time (Int, Float, String or Bool) and any cell may be missing (NA).
package table

import (
	"fmt"
	"slices"

	"github.com/Deepankar977/Data-Explorer/internal/apperr"
	"github.com/go-gota/gota/dataframe"
	"github.com/go-gota/gota/series"
)

// MissingTokens are the cell texts read as missing values.
var MissingTokens = []string{"", "NA", "N/A", "n/a", "NaN", "nan", "NULL", "null", "<NA>", "#N/A", "None", "<nil>"}

// naMarker is the text gota turns into a missing element of any type.
const naMarker = "NaN"

// Table is the loaded dataset. The zero value is not usable; use New or FromRecords.
type Table struct {
	// Name is the base name of the source file.
	Name string
	df   dataframe.DataFrame
}

// New wraps a DataFrame, surfacing any load error it carries.
func New(name string, df dataframe.DataFrame) (*Table, error) {
	if df.Err != nil {
		return nil, df.Err
	}
	return &Table{Name: name, df: df}, nil
}

// FromRecords builds a table from a header row followed by data rows.
func FromRecords(name string, records [][]string) (*Table, error) {
	if len(records) == 0 {
		return nil, fmt.Errorf("no header row")
	}
	width := len(records[0])
	for i, rec := range records[1:] {
		switch {
		case len(rec) > width:
			return nil, fmt.Errorf("row %d: expected %d fields, saw %d", i+1, width, len(rec))
		case len(rec) < width:
			pad := make([]string, width)
			copy(pad, rec)
			records[i+1] = pad
		}
	}
	if len(records) == 1 {
		return headerOnly(name, records[0])
	}
	df := dataframe.LoadRecords(records,
		dataframe.HasHeader(true),
		dataframe.DetectTypes(true),
		dataframe.NaNValues(MissingTokens),
	)
	return New(name, df)
}

// headerOnly builds a table with no rows. Every column is an empty String
// series, so none of them is numeric.
func headerOnly(name string, header []string) (*Table, error) {
	cols := make([]series.Series, len(header))
	for i, h := range header {
		cols[i] = series.New([]string{}, series.String, h)
	}
	return New(name, dataframe.New(cols...))
}

// Rows is the number of data rows, header excluded.
func (t *Table) Rows() int { return t.df.Nrow() }

// Cols is the number of columns.
func (t *Table) Cols() int { return t.df.Ncol() }

// Names returns the column names in order.
func (t *Table) Names() []string { return t.df.Names() }

// Has reports whether a column exists.
func (t *Table) Has(name string) bool { return slices.Contains(t.df.Names(), name) }

// Column returns the named column or a ColumnNotFound error.
func (t *Table) Column(name string) (series.Series, error) {
	if !t.Has(name) {
		return series.Series{}, apperr.MissingColumn(name)
	}
	return t.df.Col(name), nil
}

// Numeric returns the named column if it is numeric. purpose completes the
// TypeMismatch message, e.g. "a histogram".
func (t *Table) Numeric(name, purpose string) (series.Series, error) {
	s, err := t.Column(name)
	if err != nil {
		return s, err
	}
	if !IsNumeric(s) {
		return s, apperr.NotNumeric(name, purpose)
	}
	return s, nil
}

// NumericNames lists the numeric columns in order.
func (t *Table) NumericNames() []string {
	var out []string
	for _, name := range t.df.Names() {
		if IsNumeric(t.df.Col(name)) {
			out = append(out, name)
		}
	}
	return out
}

// Replace swaps the column with the same name as s. The length must match.
func (t *Table) Replace(s series.Series) error {
	if !t.Has(s.Name) {
		return apperr.MissingColumn(s.Name)
	}
	if s.Len() != t.Rows() {
		return fmt.Errorf("replace column %q: %d values for %d rows", s.Name, s.Len(), t.Rows())
	}
	next := t.df.Mutate(s)
	if next.Err != nil {
		return fmt.Errorf("replace column %q: %w", s.Name, next.Err)
	}
	t.df = next
	return nil
}

// Records returns the header followed by every row, missing cells as "".
func (t *Table) Records() [][]string {
	names := t.df.Names()
	cols := make([]series.Series, len(names))
	for i, name := range names {
		cols[i] = t.df.Col(name)
	}
	out := make([][]string, 0, t.Rows()+1)
	out = append(out, append([]string(nil), names...))
	for r := 0; r < t.Rows(); r++ {
		row := make([]string, len(cols))
		for c, s := range cols {
			row[c] = Format(s.Elem(r))
		}
		out = append(out, row)
	}
	return out
}
