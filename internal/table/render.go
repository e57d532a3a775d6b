package table

import (
	"fmt"
	"strings"
)

// Markdown renders up to limit rows as a pipe table. Missing cells print as NaN.
// A negative limit renders every row.
func (t *Table) Markdown(limit int) string {
	rows := t.Rows()
	if limit >= 0 && limit < rows {
		rows = limit
	}
	names := t.Names()
	var b strings.Builder
	b.WriteString("| ")
	for i, name := range names {
		if i > 0 {
			b.WriteString(" | ")
		}
		b.WriteString(safeName(name))
	}
	b.WriteString(" |\n| ")
	for i := range names {
		if i > 0 {
			b.WriteString(" | ")
		}
		b.WriteString("---")
	}
	b.WriteString(" |\n")
	for r := 0; r < rows; r++ {
		b.WriteString("| ")
		for i, name := range names {
			if i > 0 {
				b.WriteString(" | ")
			}
			e := t.df.Col(name).Elem(r)
			val := naMarker
			if !e.IsNA() {
				val = Format(e)
			}
			if len(val) > 80 {
				val = val[:77] + "..."
			}
			b.WriteString(safeVal(val))
		}
		b.WriteString(" |\n")
	}
	if rows < t.Rows() {
		b.WriteString(fmt.Sprintf("\n(%d of %d rows)\n", rows, t.Rows()))
	}
	return b.String()
}

func safeName(s string) string {
	s = strings.TrimSpace(s)
	if s == "" {
		return "(unnamed)"
	}
	return safeVal(s)
}

func safeVal(s string) string { return strings.ReplaceAll(strings.ReplaceAll(s, "\n", " "), "|", "/") }
