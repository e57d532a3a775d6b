package analysis

import (
	"math"
	"testing"

	"github.com/Deepankar977/Data-Explorer/internal/apperr"
	"github.com/Deepankar977/Data-Explorer/internal/table"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func metrics(t *testing.T) *table.Table {
	t.Helper()
	tb, err := table.FromRecords("metrics.csv", [][]string{
		{"group", "score", "temp", "flag"},
		{"A", "10", "70", "x"},
		{"A", "11", "71", "y"},
		{"B", "9.5", "", "x"},
		{"B", "", "75", "z"},
		{"A", "50", "95", "x"},
	})
	require.NoError(t, err)
	return tb
}

func TestCountMessages(t *testing.T) {
	tb := metrics(t)
	assert.Equal(t, "Number of rows is 5", RowsMessage(tb))
	assert.Equal(t, "Number of columns is 4", ColumnsMessage(tb))
}

func TestDescribeSkipsMissingAndTextColumns(t *testing.T) {
	d := Describe(metrics(t))
	require.Len(t, d.Cols, 2)

	score := d.Cols[0]
	vals := []float64{10, 11, 9.5, 50}
	assert.Equal(t, "score", score.Name)
	assert.Equal(t, 4, score.Count)
	assert.InDelta(t, mean(vals), score.Mean, 1e-9)
	assert.InDelta(t, sampleStd(vals), score.Std, 1e-9)
	assert.Equal(t, 9.5, score.Min)
	assert.Equal(t, 50.0, score.Max)
	// sorted 9.5 10 11 50
	assert.InDelta(t, 9.875, score.Q25, 1e-9)
	assert.InDelta(t, 10.5, score.Q50, 1e-9)
	assert.InDelta(t, 20.75, score.Q75, 1e-9)

	assert.Equal(t, "temp", d.Cols[1].Name)
	assert.Equal(t, 4, d.Cols[1].Count)
}

func TestDescribeSingleValueHasUndefinedStd(t *testing.T) {
	cs := summarize("one", []float64{3})
	assert.Equal(t, 1, cs.Count)
	assert.True(t, math.IsNaN(cs.Std))
	assert.Equal(t, 3.0, cs.Q75)

	empty := summarize("none", nil)
	assert.Equal(t, 0, empty.Count)
	assert.True(t, math.IsNaN(empty.Mean))
}

func TestDescriptionMarkdown(t *testing.T) {
	md := Describe(metrics(t)).Markdown()
	assert.Contains(t, md, "| stat | score | temp |")
	assert.Contains(t, md, "| count | 4 | 4 |")
	assert.Contains(t, md, "| min | 9.5 | 70 |")
	assert.Contains(t, md, "| 50% | 10.5 | 73 |")

	noNum, err := table.FromRecords("t.csv", [][]string{{"name"}, {"a"}})
	require.NoError(t, err)
	assert.Equal(t, "No numeric columns to describe", Describe(noNum).Markdown())
}

func TestQuantile(t *testing.T) {
	sorted := []float64{1, 2, 3, 4}
	assert.Equal(t, 1.0, quantile(sorted, 0))
	assert.Equal(t, 4.0, quantile(sorted, 1))
	assert.InDelta(t, 2.5, quantile(sorted, 0.5), 1e-12)
	assert.InDelta(t, 1.75, quantile(sorted, 0.25), 1e-12)
	assert.True(t, math.IsNaN(quantile(nil, 0.5)))
}

func TestCorrelatePairwiseComplete(t *testing.T) {
	tb := metrics(t)
	m, err := Correlate(tb, nil)
	require.NoError(t, err)
	assert.Equal(t, []string{"score", "temp"}, m.Columns)

	// rows where both score and temp are present: 0, 1, 4
	want := correlation([]float64{10, 11, 50}, []float64{70, 71, 95})
	assert.InDelta(t, want, m.Values[0][1], 1e-9)
	assert.InDelta(t, want, m.Values[1][0], 1e-9)
	assert.InDelta(t, 1.0, m.Values[0][0], 1e-9)
}

func TestCorrelateValidation(t *testing.T) {
	tb := metrics(t)

	_, err := Correlate(tb, SplitColumns("score, nope"))
	assert.Equal(t, apperr.ColumnNotFound, apperr.KindOf(err))

	_, err = Correlate(tb, SplitColumns("score,flag"))
	assert.Equal(t, apperr.TypeMismatch, apperr.KindOf(err))

	_, err = Correlate(tb, SplitColumns("score"))
	assert.Equal(t, apperr.NoData, apperr.KindOf(err))
}

func TestSplitColumns(t *testing.T) {
	assert.Equal(t, []string{"a", "b c", "d"}, SplitColumns(" a, b c ,,d "))
	assert.Nil(t, SplitColumns(""))
}

func mean(vals []float64) float64 {
	var sum float64
	for _, v := range vals {
		sum += v
	}
	return sum / float64(len(vals))
}

func sampleStd(vals []float64) float64 {
	m := mean(vals)
	var sum float64
	for _, v := range vals {
		diff := v - m
		sum += diff * diff
	}
	return math.Sqrt(sum / float64(len(vals)-1))
}

func correlation(a, b []float64) float64 {
	ma, mb := mean(a), mean(b)
	var num, da2, db2 float64
	for i := range a {
		da := a[i] - ma
		db := b[i] - mb
		num += da * db
		da2 += da * da
		db2 += db * db
	}
	return num / math.Sqrt(da2*db2)
}
