package chart

import (
	"fmt"
	"image/color"
	"math"
	"sort"

	"github.com/Deepankar977/Data-Explorer/internal/apperr"
	"github.com/Deepankar977/Data-Explorer/internal/table"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotutil"
	"gonum.org/v1/plot/text"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
)

// group is one pie wedge: the x key and the sum of y over its rows.
type group struct {
	key   string
	order float64
	sum   float64
}

// groupSums sums present y values per present x value. Rows with a missing y
// still create their group. Groups are sorted by key.
func groupSums(t *table.Table, x, y string) ([]group, error) {
	xs, err := t.Column(x)
	if err != nil {
		return nil, err
	}
	ys, err := t.Numeric(y, "a pie chart")
	if err != nil {
		return nil, err
	}
	numericX := table.IsNumeric(xs)
	idx := map[string]int{}
	var out []group
	for i := 0; i < xs.Len(); i++ {
		ex := xs.Elem(i)
		if ex.IsNA() {
			continue
		}
		key := table.Format(ex)
		j, ok := idx[key]
		if !ok {
			j = len(out)
			idx[key] = j
			out = append(out, group{key: key, order: ex.Float()})
		}
		if ey := ys.Elem(i); !ey.IsNA() {
			out[j].sum += ey.Float()
		}
	}
	sort.SliceStable(out, func(a, b int) bool {
		if numericX {
			return out[a].order < out[b].order
		}
		return out[a].key < out[b].key
	})
	return out, nil
}

func buildPie(t *table.Table, req Request) (*built, error) {
	if err := requireAxis(Pie, "x", req.X); err != nil {
		return nil, err
	}
	if err := requireAxis(Pie, "y", req.Y); err != nil {
		return nil, err
	}
	groups, err := groupSums(t, req.X, req.Y)
	if err != nil {
		return nil, err
	}
	var total float64
	for _, g := range groups {
		if g.sum < 0 {
			return nil, apperr.New(apperr.TypeMismatch, "pie chart needs non-negative sums; group '%s' of column '%s' sums to %g", g.key, req.Y, g.sum)
		}
		total += g.sum
	}
	if total == 0 {
		return nil, noData(Pie)
	}

	p := newPlot(fmt.Sprintf("Pie Chart of %s", req.Y), "", "")
	p.HideAxes()
	w := &wedges{groups: groups, total: total}
	p.Add(w)
	for i, g := range groups {
		p.Legend.Add(g.key, swatch{plotutil.Color(i)})
	}
	p.Legend.Top = true
	return &built{plot: p, points: len(groups)}, nil
}

// wedges draws the pie, starting at twelve o'clock and running counterclockwise.
type wedges struct {
	groups []group
	total  float64
}

func (w *wedges) Plot(c draw.Canvas, plt *plot.Plot) {
	center := vg.Point{X: (c.Min.X + c.Max.X) / 2, Y: (c.Min.Y + c.Max.Y) / 2}
	radius := vg.Length(0.45) * min(c.Max.X-c.Min.X, c.Max.Y-c.Min.Y)
	sty := plt.Legend.TextStyle
	sty.XAlign = text.XCenter
	sty.YAlign = text.YCenter

	start := math.Pi / 2
	for i, g := range w.groups {
		if g.sum == 0 {
			continue
		}
		sweep := 2 * math.Pi * g.sum / w.total
		var path vg.Path
		path.Move(center)
		path.Arc(center, radius, start, sweep)
		path.Close()
		c.SetColor(plotutil.Color(i))
		c.Fill(path)
		c.SetColor(color.Black)
		c.SetLineWidth(vg.Points(1))
		c.Stroke(path)

		mid := start + sweep/2
		at := vg.Point{
			X: center.X + vg.Length(0.65*math.Cos(mid))*radius,
			Y: center.Y + vg.Length(0.65*math.Sin(mid))*radius,
		}
		c.FillText(sty, at, g.key)
		start += sweep
	}
}

// swatch is a filled legend thumbnail.
type swatch struct{ color color.Color }

func (s swatch) Thumbnail(c *draw.Canvas) {
	pts := []vg.Point{
		{X: c.Min.X, Y: c.Min.Y},
		{X: c.Min.X, Y: c.Max.Y},
		{X: c.Max.X, Y: c.Max.Y},
		{X: c.Max.X, Y: c.Min.Y},
	}
	c.FillPolygon(s.color, c.ClipPolygonY(pts))
}
