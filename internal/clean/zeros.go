// Package clean mutates table cells: the zero-as-missing policy and fills.
package clean

import (
	"github.com/Deepankar977/Data-Explorer/internal/table"
	"github.com/go-gota/gota/series"
)

// NullZeros marks every zero cell of every numeric column as missing and
// returns how many cells changed. The conversion cannot be undone.
func NullZeros(t *table.Table) (int, error) {
	total := 0
	for _, name := range t.NumericNames() {
		s, err := t.Column(name)
		if err != nil {
			return total, err
		}
		zeros := 0
		for i := 0; i < s.Len(); i++ {
			if e := s.Elem(i); !e.IsNA() && e.Float() == 0 {
				zeros++
			}
		}
		if zeros == 0 {
			continue
		}
		next := table.Rebuild(s, s.Type(), func(_ int, e series.Element) (string, bool) {
			if e.IsNA() || e.Float() == 0 {
				return "", false
			}
			return table.Format(e), true
		})
		if err := t.Replace(next); err != nil {
			return total, err
		}
		total += zeros
	}
	return total, nil
}
