package loader

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/Deepankar977/Data-Explorer/internal/table"
	"github.com/xuri/excelize/v2"
)

type xlsxLoader struct{}

func (xlsxLoader) CanLoad(filename string) bool {
	return strings.HasSuffix(strings.ToLower(filename), ".xlsx")
}

// Load reads the selected sheet; the first row is the header.
func (xlsxLoader) Load(path string, opt Options) (*table.Table, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("open xlsx: %w", err)
	}
	defer f.Close()

	sheet := opt.Sheet
	if sheet == "" {
		sheets := f.GetSheetList()
		if len(sheets) == 0 {
			return nil, fmt.Errorf("workbook has no sheets")
		}
		sheet = sheets[0]
	}
	rows, err := f.GetRows(sheet)
	if err != nil {
		return nil, fmt.Errorf("read sheet %q: %w", sheet, err)
	}
	if len(rows) == 0 {
		return nil, fmt.Errorf("sheet %q is empty", sheet)
	}
	// GetRows trims trailing empty cells, so rows can be shorter than the header.
	width := len(rows[0])
	for i := range rows[1:] {
		if len(rows[i+1]) > width {
			rows[i+1] = rows[i+1][:width]
		}
	}
	name := filepath.Base(path)
	if opt.Sheet != "" {
		name = fmt.Sprintf("%s (sheet: %s)", name, sheet)
	}
	return table.FromRecords(name, rows)
}
