package export

import (
	"bytes"
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"

	"github.com/Deepankar977/Data-Explorer/internal/table"
	"github.com/go-gota/gota/series"
	"github.com/xuri/excelize/v2"
)

const sheetName = "Sheet1"

// WriteCSV writes a header row and one row per record separated by comma;
// missing cells are empty.
func WriteCSV(w io.Writer, t *table.Table, comma rune) error {
	cw := csv.NewWriter(w)
	cw.Comma = comma
	if err := cw.WriteAll(t.Records()); err != nil {
		return fmt.Errorf("write csv: %w", err)
	}
	return nil
}

// WriteJSONLines writes one object per row with keys in column order.
// Missing cells are null and numeric cells are JSON numbers.
func WriteJSONLines(w io.Writer, t *table.Table) error {
	names := t.Names()
	cols := make([]series.Series, len(names))
	keys := make([][]byte, len(names))
	for i, n := range names {
		s, err := t.Column(n)
		if err != nil {
			return err
		}
		cols[i] = s
		if keys[i], err = json.Marshal(n); err != nil {
			return err
		}
	}
	var line bytes.Buffer
	for r := 0; r < t.Rows(); r++ {
		line.Reset()
		line.WriteByte('{')
		for c, s := range cols {
			if c > 0 {
				line.WriteByte(',')
			}
			line.Write(keys[c])
			line.WriteByte(':')
			v, err := json.Marshal(jsonValue(s.Elem(r)))
			if err != nil {
				return fmt.Errorf("row %d column %s: %w", r+1, names[c], err)
			}
			line.Write(v)
		}
		line.WriteString("}\n")
		if _, err := w.Write(line.Bytes()); err != nil {
			return err
		}
	}
	return nil
}

// jsonValue maps a cell to the value it is encoded as. NaN and infinities
// have no JSON form and are written as null.
func jsonValue(e series.Element) any {
	if e.IsNA() {
		return nil
	}
	switch e.Type() {
	case series.Int:
		v, err := e.Int()
		if err != nil {
			return nil
		}
		return v
	case series.Float:
		v := e.Float()
		if !finite(v) {
			return nil
		}
		return v
	case series.Bool:
		v, err := e.Bool()
		if err != nil {
			return e.String()
		}
		return v
	}
	return e.String()
}

// WriteExcel writes a single Sheet1 workbook with typed cells; missing cells are left blank.
func WriteExcel(w io.Writer, t *table.Table) error {
	f := excelize.NewFile()
	defer func() { _ = f.Close() }()

	names := t.Names()
	header := make([]any, len(names))
	for i, n := range names {
		header[i] = n
	}
	if err := f.SetSheetRow(sheetName, "A1", &header); err != nil {
		return fmt.Errorf("write header: %w", err)
	}
	cols := make([]series.Series, len(names))
	for i, n := range names {
		s, err := t.Column(n)
		if err != nil {
			return err
		}
		cols[i] = s
	}
	row := make([]any, len(names))
	for r := 0; r < t.Rows(); r++ {
		for c, s := range cols {
			row[c] = jsonValue(s.Elem(r))
		}
		cell, err := excelize.CoordinatesToCellName(1, r+2)
		if err != nil {
			return err
		}
		if err := f.SetSheetRow(sheetName, cell, &row); err != nil {
			return fmt.Errorf("write row %d: %w", r+1, err)
		}
	}
	buf, err := f.WriteToBuffer()
	if err != nil {
		return fmt.Errorf("encode workbook: %w", err)
	}
	_, err = w.Write(buf.Bytes())
	return err
}

func finite(v float64) bool { return v-v == 0 }
