package table

import (
	"math"
	"strconv"

	"github.com/go-gota/gota/series"
)

// IsNumeric reports whether the series holds Int or Float values.
func IsNumeric(s series.Series) bool {
	t := s.Type()
	return t == series.Int || t == series.Float
}

// Format renders a cell as plain text; missing cells are "".
func Format(e series.Element) string {
	if e.IsNA() {
		return ""
	}
	switch e.Type() {
	case series.Float:
		return FormatFloat(e.Float())
	case series.Int:
		if v, err := e.Int(); err == nil {
			return strconv.Itoa(v)
		}
	}
	return e.String()
}

// FormatFloat renders a float in its shortest exact form.
func FormatFloat(v float64) string {
	if math.IsNaN(v) {
		return naMarker
	}
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// Present returns the numeric values of the non-missing cells of s.
func Present(s series.Series) []float64 {
	out := make([]float64, 0, s.Len())
	for i := 0; i < s.Len(); i++ {
		e := s.Elem(i)
		if e.IsNA() {
			continue
		}
		out = append(out, e.Float())
	}
	return out
}

// Missing counts the missing cells of s.
func Missing(s series.Series) int {
	n := 0
	for i := 0; i < s.Len(); i++ {
		if s.Elem(i).IsNA() {
			n++
		}
	}
	return n
}

// Rebuild returns a copy of s with type t, taking each cell's text from
// cell(i, e). Returning ok=false marks the cell missing.
func Rebuild(s series.Series, t series.Type, cell func(i int, e series.Element) (string, bool)) series.Series {
	vals := make([]string, s.Len())
	for i := range vals {
		v, ok := cell(i, s.Elem(i))
		if !ok {
			v = naMarker
		}
		vals[i] = v
	}
	return series.New(vals, t, s.Name)
}
