package clean

import (
	"fmt"
	"math"
	"slices"
	"sort"
	"strconv"

	"github.com/Deepankar977/Data-Explorer/internal/apperr"
	"github.com/Deepankar977/Data-Explorer/internal/table"
	"github.com/go-gota/gota/series"
	"github.com/montanaflynn/stats"
)

// Average names a computed fill value.
type Average string

const (
	Mean   Average = "mean"
	Median Average = "median"
	Mode   Average = "mode"
)

// Averages lists the accepted Average values.
var Averages = []string{string(Mean), string(Median), string(Mode)}

// FillSpec selects the column and the fill value. Exactly one of Value and
// Average must be set.
type FillSpec struct {
	Column  string
	Value   string
	Average Average
}

// Result describes a completed fill.
type Result struct {
	Column string
	Value  string
	Filled int
}

// Message is the user-facing confirmation. It is the same whether or not any
// cell needed filling.
func (r Result) Message() string {
	return fmt.Sprintf("Missing values in column '%s' filled with '%s'", r.Column, r.Value)
}

// fillValue is either a number or literal text.
type fillValue struct {
	numeric bool
	num     float64
	text    string
}

func (v fillValue) String() string {
	if v.numeric {
		return table.FormatFloat(v.num)
	}
	return v.text
}

// Validate checks the fill request against the table without touching it.
func (spec FillSpec) Validate(t *table.Table) error {
	if spec.Column == "" {
		return apperr.New(apperr.ConflictingArguments, "--column argument is required for fill operation")
	}
	if !t.Has(spec.Column) {
		return apperr.MissingColumn(spec.Column)
	}
	if spec.Value != "" && spec.Average != "" {
		return apperr.New(apperr.ConflictingArguments, "please provide either --value OR --average, not both")
	}
	if spec.Value == "" && spec.Average == "" {
		return apperr.New(apperr.ConflictingArguments, "fill needs either --value or --average")
	}
	return nil
}

// Fill replaces every missing cell of spec.Column in place.
func Fill(t *table.Table, spec FillSpec) (Result, error) {
	if err := spec.Validate(t); err != nil {
		return Result{}, err
	}
	s, _ := t.Column(spec.Column)
	v, err := resolve(s, spec)
	if err != nil {
		return Result{}, err
	}
	res := Result{Column: spec.Column, Value: v.String(), Filled: table.Missing(s)}
	if res.Filled == 0 {
		return res, nil
	}
	filled := table.Rebuild(s, targetType(s.Type(), v), func(_ int, e series.Element) (string, bool) {
		if e.IsNA() {
			return v.String(), true
		}
		return table.Format(e), true
	})
	if table.Missing(filled) > 0 {
		return Result{}, apperr.New(apperr.TypeMismatch, "value '%s' cannot be stored in column '%s'", v, spec.Column)
	}
	if err := t.Replace(filled); err != nil {
		return Result{}, fmt.Errorf("fill %s: %w", spec.Column, err)
	}
	return res, nil
}

func resolve(s series.Series, spec FillSpec) (fillValue, error) {
	if spec.Value != "" {
		if slices.Contains(table.MissingTokens, spec.Value) {
			return fillValue{}, apperr.New(apperr.ConflictingArguments, "fill value '%s' is itself read as a missing value", spec.Value)
		}
		if f, err := strconv.ParseFloat(spec.Value, 64); err == nil && !math.IsNaN(f) {
			return fillValue{numeric: true, num: f}, nil
		}
		return fillValue{text: spec.Value}, nil
	}
	switch spec.Average {
	case Mean, Median:
		if !table.IsNumeric(s) {
			return fillValue{}, apperr.NotNumeric(s.Name, fmt.Sprintf("--average %s", spec.Average))
		}
		vals := table.Present(s)
		if len(vals) == 0 {
			return fillValue{}, apperr.New(apperr.NoData, "column '%s' has no values to average", s.Name)
		}
		var f float64
		if spec.Average == Mean {
			f, _ = stats.Mean(vals)
		} else {
			f, _ = stats.Median(vals)
		}
		return fillValue{numeric: true, num: f}, nil
	case Mode:
		return mode(s)
	default:
		return fillValue{}, apperr.New(apperr.ConflictingArguments, "unknown average %q (use mean, median or mode)", spec.Average)
	}
}

// mode returns the most frequent present value. Ties go to the smallest value,
// numerically for numeric columns and bytewise otherwise.
func mode(s series.Series) (fillValue, error) {
	numeric := table.IsNumeric(s)
	counts := map[string]int{}
	nums := map[string]float64{}
	for i := 0; i < s.Len(); i++ {
		e := s.Elem(i)
		if e.IsNA() {
			continue
		}
		key := table.Format(e)
		counts[key]++
		if numeric {
			nums[key] = e.Float()
		}
	}
	if len(counts) == 0 {
		return fillValue{}, apperr.New(apperr.NoData, "column '%s' has no values to take the mode of", s.Name)
	}
	keys := make([]string, 0, len(counts))
	for k := range counts {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool {
		if counts[keys[i]] != counts[keys[j]] {
			return counts[keys[i]] > counts[keys[j]]
		}
		if numeric {
			return nums[keys[i]] < nums[keys[j]]
		}
		return keys[i] < keys[j]
	})
	if numeric {
		return fillValue{numeric: true, num: nums[keys[0]]}, nil
	}
	return fillValue{text: keys[0]}, nil
}

// targetType is the column type after filling a column of type t with v.
func targetType(t series.Type, v fillValue) series.Type {
	if !v.numeric {
		return series.String
	}
	switch t {
	case series.Int:
		// float64(math.MaxInt) rounds up to 2^63, hence the strict bound.
		if v.num == math.Trunc(v.num) && v.num >= math.MinInt && v.num < math.MaxInt {
			return series.Int
		}
		return series.Float
	case series.Float:
		return series.Float
	default:
		return series.String
	}
}
