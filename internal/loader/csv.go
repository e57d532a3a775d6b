package loader

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/Deepankar977/Data-Explorer/internal/table"
)

type csvLoader struct{}

func (csvLoader) CanLoad(filename string) bool {
	name := strings.ToLower(filename)
	return strings.HasSuffix(name, ".csv") || strings.HasSuffix(name, ".tsv")
}

func (csvLoader) Load(path string, opt Options) (*table.Table, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open csv: %w", err)
	}
	defer f.Close()

	delim := opt.Delimiter
	if delim == 0 {
		delim = sniffDelimiter(path)
	}
	// Short rows are padded with missing cells by FromRecords; long rows fail there.
	r := csv.NewReader(f)
	r.Comma = delim
	r.FieldsPerRecord = -1
	records, err := r.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("parse csv: %w", err)
	}
	return table.FromRecords(filepath.Base(path), records)
}

func sniffDelimiter(path string) rune {
	if strings.HasSuffix(strings.ToLower(path), ".tsv") {
		return '\t'
	}
	return ','
}

// ParseDelimiter maps a user-facing delimiter name to a rune. Empty means auto.
func ParseDelimiter(s string) (rune, error) {
	switch s {
	case "":
		return 0, nil
	case ",", "comma":
		return ',', nil
	case ";", "semicolon":
		return ';', nil
	case "\t", "tab":
		return '\t', nil
	case "|", "pipe":
		return '|', nil
	default:
		return 0, fmt.Errorf("unsupported delimiter: %q (use ',' | ';' | 'tab' | '|')", s)
	}
}
