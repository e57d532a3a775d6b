// Package loader reads input files into a table.Table.
package loader

import (
	"os"

	"github.com/Deepankar977/Data-Explorer/internal/apperr"
	"github.com/Deepankar977/Data-Explorer/internal/table"
)

// Options controls how input files are read.
type Options struct {
	// Delimiter for delimited text. If 0, '\t' for .tsv and ',' otherwise.
	Delimiter rune
	// Sheet selects a workbook sheet by name; empty means the first sheet.
	Sheet string
}

// Loader reads one family of file formats.
type Loader interface {
	CanLoad(filename string) bool
	Load(path string, opt Options) (*table.Table, error)
}

var registry []Loader

// Register adds a loader implementation to the registry.
func Register(l Loader) {
	registry = append(registry, l)
}

// Load picks a loader by filename and reads the whole file into memory.
// Any failure is an apperr.FileNotFound: the file is missing or unreadable.
func Load(path string, opt Options) (*table.Table, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, apperr.Wrap(apperr.FileNotFound, err, "cannot open input file %s", path)
	}
	if info.IsDir() {
		return nil, apperr.New(apperr.FileNotFound, "input %s is a directory", path)
	}
	var l Loader = csvLoader{}
	for _, candidate := range registry {
		if candidate.CanLoad(path) {
			l = candidate
			break
		}
	}
	t, err := l.Load(path, opt)
	if err != nil {
		if apperr.KindOf(err) == apperr.FileNotFound {
			return nil, err
		}
		return nil, apperr.Wrap(apperr.FileNotFound, err, "cannot read input file %s", path)
	}
	return t, nil
}

func init() {
	Register(xlsxLoader{})
	Register(csvLoader{})
}
