package chart

import (
	"sort"

	"github.com/Deepankar977/Data-Explorer/internal/table"
	"github.com/go-gota/gota/series"
	"gonum.org/v1/plot/plotter"
)

// point is one row with both axes present. label is the x cell text.
type point struct {
	x     float64
	label string
	y     float64
}

// jointRows keeps the rows where both x and y are present, in row order.
func jointRows(xs, ys series.Series) []point {
	out := make([]point, 0, xs.Len())
	for i := 0; i < xs.Len() && i < ys.Len(); i++ {
		ex, ey := xs.Elem(i), ys.Elem(i)
		if ex.IsNA() || ey.IsNA() {
			continue
		}
		out = append(out, point{x: ex.Float(), label: table.Format(ex), y: ey.Float()})
	}
	return out
}

// sortByX orders points by x, numerically when numericX and bytewise otherwise.
func sortByX(pts []point, numericX bool) {
	sort.SliceStable(pts, func(i, j int) bool {
		if numericX {
			return pts[i].x < pts[j].x
		}
		return pts[i].label < pts[j].label
	})
}

// toXYs maps points to plot coordinates. A text x axis is placed on ordinal
// positions, one per distinct label in order of first appearance; the labels
// are returned for use as ticks.
func toXYs(pts []point, numericX bool) (plotter.XYs, []string) {
	xys := make(plotter.XYs, len(pts))
	if numericX {
		for i, p := range pts {
			xys[i].X, xys[i].Y = p.x, p.y
		}
		return xys, nil
	}
	var ticks []string
	pos := map[string]int{}
	for i, p := range pts {
		idx, ok := pos[p.label]
		if !ok {
			idx = len(ticks)
			pos[p.label] = idx
			ticks = append(ticks, p.label)
		}
		xys[i].X, xys[i].Y = float64(idx), p.y
	}
	return xys, ticks
}
