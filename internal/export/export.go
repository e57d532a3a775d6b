// Package export writes a table to csv, excel or json lines files.
package export

import (
	"bytes"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/Deepankar977/Data-Explorer/internal/apperr"
	"github.com/Deepankar977/Data-Explorer/internal/table"
	"github.com/Deepankar977/Data-Explorer/internal/utils"
)

// Format is an export file format.
type Format string

const (
	CSV   Format = "csv"
	Excel Format = "excel"
	JSON  Format = "json"
)

// Formats lists the accepted --format values.
var Formats = []string{string(CSV), string(Excel), string(JSON)}

// ParseFormat validates a --format value.
func ParseFormat(s string) (Format, error) {
	switch f := Format(strings.ToLower(strings.TrimSpace(s))); f {
	case CSV, Excel, JSON:
		return f, nil
	}
	return "", apperr.New(apperr.ConflictingArguments, "unknown export format %q (use %s)", s, strings.Join(Formats, ", "))
}

// FormatFromPath infers the format from the file extension.
func FormatFromPath(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".csv", ".tsv":
		return CSV, nil
	case ".xlsx", ".xls":
		return Excel, nil
	case ".json", ".jsonl", ".ndjson":
		return JSON, nil
	}
	return "", apperr.New(apperr.ConflictingArguments, "cannot infer export format from %q; pass --format", path)
}

// Export writes t to path in the given format. The file is replaced atomically.
// CSV output to a .tsv path is tab-separated.
func Export(t *table.Table, path string, f Format) error {
	var buf bytes.Buffer
	var err error
	switch f {
	case CSV:
		comma := ','
		if strings.EqualFold(filepath.Ext(path), ".tsv") {
			comma = '\t'
		}
		err = WriteCSV(&buf, t, comma)
	case JSON:
		err = WriteJSONLines(&buf, t)
	case Excel:
		err = WriteExcel(&buf, t)
	default:
		return apperr.New(apperr.ConflictingArguments, "unknown export format %q", f)
	}
	if err != nil {
		return apperr.Wrap(apperr.ExportFailure, err, "encode %s", f)
	}
	if err := utils.SafeWriteFile(path, buf.Bytes()); err != nil {
		return apperr.Wrap(apperr.ExportFailure, err, "write %s", path)
	}
	return nil
}

// Message is the confirmation printed after a successful export.
func Message(path string, f Format) string {
	return fmt.Sprintf("Data exported to %s in %s format.", path, f)
}
