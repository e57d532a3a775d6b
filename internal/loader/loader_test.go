package loader

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/Deepankar977/Data-Explorer/internal/apperr"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	p := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(p, []byte(content), 0o644))
	return p
}

func TestLoadCSVCountsRowsAndColumns(t *testing.T) {
	p := writeFile(t, "hop_harvest.csv", "date,plot,alpha_acids,moisture\n"+
		"2024-08-10,A1,12.5,74\n"+
		"2024-08-12,A1,11.8,71\n"+
		"2024-08-15,B3,,68\n")

	tb, err := Load(p, Options{})
	require.NoError(t, err)
	assert.Equal(t, "hop_harvest.csv", tb.Name)
	assert.Equal(t, 3, tb.Rows())
	assert.Equal(t, 4, tb.Cols())
	assert.Equal(t, []string{"alpha_acids", "moisture"}, tb.NumericNames())

	acids, err := tb.Column("alpha_acids")
	require.NoError(t, err)
	assert.True(t, acids.Elem(2).IsNA())
}

func TestLoadTSVAndExplicitDelimiter(t *testing.T) {
	tsv := writeFile(t, "data.tsv", "a\tb\n1\t2\n3\t4\n")
	tb, err := Load(tsv, Options{})
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "b"}, tb.Names())

	semi := writeFile(t, "data.txt", "a;b;c\n1;2;3\n")
	tb, err = Load(semi, Options{Delimiter: ';'})
	require.NoError(t, err)
	assert.Equal(t, 3, tb.Cols())
	assert.Equal(t, 1, tb.Rows())
}

func TestLoadMissingTokens(t *testing.T) {
	p := writeFile(t, "tokens.csv", "name,score\nann,NA\nbob,n/a\n,3\n")
	tb, err := Load(p, Options{})
	require.NoError(t, err)

	score, err := tb.Column("score")
	require.NoError(t, err)
	assert.True(t, score.Elem(0).IsNA())
	assert.True(t, score.Elem(1).IsNA())

	name, err := tb.Column("name")
	require.NoError(t, err)
	assert.True(t, name.Elem(2).IsNA())
}

func TestLoadHeaderOnlyCSV(t *testing.T) {
	tb, err := Load(writeFile(t, "h.csv", "id,price\n"), Options{})
	require.NoError(t, err)
	assert.Equal(t, 0, tb.Rows())
	assert.Equal(t, []string{"id", "price"}, tb.Names())
}

func TestLoadPadsShortCSVRows(t *testing.T) {
	tb, err := Load(writeFile(t, "s.csv", "a,b\n1,2\n3\n"), Options{})
	require.NoError(t, err)
	assert.Equal(t, 2, tb.Rows())
	assert.Equal(t, []string{"a", "b"}, tb.NumericNames())

	b, err := tb.Column("b")
	require.NoError(t, err)
	assert.False(t, b.Elem(0).IsNA())
	assert.True(t, b.Elem(1).IsNA())
}

func TestLoadFailuresAreFileNotFound(t *testing.T) {
	dir := t.TempDir()
	tests := []struct {
		name string
		path string
	}{
		{"missing", filepath.Join(dir, "nope.csv")},
		{"directory", dir},
		{"empty", writeFile(t, "empty.csv", "")},
		{"ragged", writeFile(t, "ragged.csv", "a,b\n1,2,3\n")},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(tt.path, Options{})
			require.Error(t, err)
			assert.Equal(t, apperr.FileNotFound, apperr.KindOf(err))
		})
	}
}

func TestLoadXLSX(t *testing.T) {
	f := excelize.NewFile()
	defer f.Close()
	_, err := f.NewSheet("Data")
	require.NoError(t, err)
	rows := [][]any{
		{"region", "units", "price"},
		{"north", 10, 2.5},
		{"south", nil, 3},
		{"east", 7},
	}
	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		require.NoError(t, err)
		r := row
		require.NoError(t, f.SetSheetRow("Data", cell, &r))
	}
	p := filepath.Join(t.TempDir(), "book.xlsx")
	require.NoError(t, f.SaveAs(p))

	tb, err := Load(p, Options{Sheet: "Data"})
	require.NoError(t, err)
	assert.True(t, strings.HasSuffix(tb.Name, "(sheet: Data)"))
	assert.Equal(t, 3, tb.Rows())
	assert.Equal(t, []string{"region", "units", "price"}, tb.Names())
	assert.Equal(t, []string{"units", "price"}, tb.NumericNames())

	price, err := tb.Column("price")
	require.NoError(t, err)
	assert.True(t, price.Elem(2).IsNA())

	// Sheet1 is the first, empty sheet of a new workbook.
	_, err = Load(p, Options{})
	assert.Equal(t, apperr.FileNotFound, apperr.KindOf(err))
}

func TestParseDelimiter(t *testing.T) {
	tests := []struct {
		in   string
		want rune
		err  bool
	}{
		{"", 0, false},
		{",", ',', false},
		{"tab", '\t', false},
		{";", ';', false},
		{"pipe", '|', false},
		{"#", 0, true},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseDelimiter(tt.in)
			if tt.err {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
