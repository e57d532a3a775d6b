package table

import (
	"testing"

	"github.com/Deepankar977/Data-Explorer/internal/apperr"
	"github.com/go-gota/gota/series"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sample(t *testing.T) *Table {
	t.Helper()
	tb, err := FromRecords("sales.csv", [][]string{
		{"id", "price", "status", "ratio"},
		{"1", "10", "open", "0.5"},
		{"2", "0", "closed", ""},
		{"3", "", "open", "1.25"},
	})
	require.NoError(t, err)
	return tb
}

func TestFromRecordsShapeAndTypes(t *testing.T) {
	tb := sample(t)
	assert.Equal(t, 3, tb.Rows())
	assert.Equal(t, 4, tb.Cols())
	assert.Equal(t, []string{"id", "price", "status", "ratio"}, tb.Names())
	assert.Equal(t, []string{"id", "price", "ratio"}, tb.NumericNames())

	price, err := tb.Column("price")
	require.NoError(t, err)
	assert.Equal(t, series.Int, price.Type())
	assert.Equal(t, 1, Missing(price))
	assert.Equal(t, []float64{10, 0}, Present(price))
}

func TestFromRecordsPadsShortRows(t *testing.T) {
	tb, err := FromRecords("short.csv", [][]string{
		{"a", "b"},
		{"1"},
	})
	require.NoError(t, err)
	b, err := tb.Column("b")
	require.NoError(t, err)
	assert.True(t, b.Elem(0).IsNA())

	_, err = FromRecords("long.csv", [][]string{{"a"}, {"1", "2"}})
	assert.Error(t, err)
}

func TestFromRecordsHeaderOnly(t *testing.T) {
	tb, err := FromRecords("h.csv", [][]string{{"id", "price"}})
	require.NoError(t, err)
	assert.Equal(t, 0, tb.Rows())
	assert.Equal(t, 2, tb.Cols())
	assert.Equal(t, []string{"id", "price"}, tb.Names())
	assert.Empty(t, tb.NumericNames())
	assert.Equal(t, [][]string{{"id", "price"}}, tb.Records())
}

func TestColumnErrors(t *testing.T) {
	tb := sample(t)

	_, err := tb.Column("missing")
	assert.Equal(t, apperr.ColumnNotFound, apperr.KindOf(err))

	_, err = tb.Numeric("status", "a histogram")
	assert.Equal(t, apperr.TypeMismatch, apperr.KindOf(err))
	assert.Contains(t, err.Error(), "a histogram requires numeric data")

	_, err = tb.Numeric("ratio", "a histogram")
	assert.NoError(t, err)
}

func TestReplaceAndRecords(t *testing.T) {
	tb := sample(t)
	price, err := tb.Column("price")
	require.NoError(t, err)

	filled := Rebuild(price, series.Int, func(_ int, e series.Element) (string, bool) {
		if e.IsNA() {
			return "7", true
		}
		return Format(e), true
	})
	require.NoError(t, tb.Replace(filled))

	recs := tb.Records()
	require.Len(t, recs, 4)
	assert.Equal(t, []string{"id", "price", "status", "ratio"}, recs[0])
	assert.Equal(t, []string{"3", "7", "open", "1.25"}, recs[3])
	assert.Equal(t, []string{"2", "0", "closed", ""}, recs[2])

	short := series.New([]int{1}, series.Int, "price")
	assert.Error(t, tb.Replace(short))
}

func TestMarkdownHead(t *testing.T) {
	tb := sample(t)
	md := tb.Markdown(2)
	assert.Contains(t, md, "| id | price | status | ratio |")
	assert.Contains(t, md, "| 2 | 0 | closed | NaN |")
	assert.NotContains(t, md, "| 3 |")
	assert.Contains(t, md, "(2 of 3 rows)")

	all := tb.Markdown(10)
	assert.Contains(t, all, "| 3 | NaN | open | 1.25 |")
	assert.NotContains(t, all, "rows)")
}
