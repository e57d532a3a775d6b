package chart

import (
	"fmt"
	"image/color"
	"math"

	"github.com/Deepankar977/Data-Explorer/internal/analysis"
	"github.com/Deepankar977/Data-Explorer/internal/table"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/palette/moreland"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/text"
)

// corrGrid adapts a correlation matrix to plotter.GridXYZ with the first
// column drawn in the top row.
type corrGrid struct{ m *analysis.CorrMatrix }

func (g corrGrid) Dims() (c, r int) { n := len(g.m.Columns); return n, n }
func (g corrGrid) Z(c, r int) float64 { return g.m.Values[len(g.m.Columns)-1-r][c] }
func (g corrGrid) X(c int) float64    { return float64(c) }
func (g corrGrid) Y(r int) float64    { return float64(r) }

// buildHeatmap draws an annotated correlation matrix over every numeric column
// or over the comma-separated columns named in req.X.
func buildHeatmap(t *table.Table, req Request) (*built, error) {
	m, err := analysis.Correlate(t, analysis.SplitColumns(req.X))
	if err != nil {
		return nil, err
	}
	n := len(m.Columns)

	cm := moreland.SmoothBlueRed()
	cm.SetMin(-1)
	cm.SetMax(1)
	hm := plotter.NewHeatMap(corrGrid{m}, cm.Palette(255))
	hm.Min, hm.Max = -1, 1
	hm.NaN = color.Gray{Y: 200}

	p := newPlot("Heatmap of Correlation", "", "")
	p.Add(hm)

	xys := make(plotter.XYs, 0, n*n)
	labels := make([]string, 0, n*n)
	for r := 0; r < n; r++ {
		for c := 0; c < n; c++ {
			v := m.Values[r][c]
			s := "NaN"
			if !math.IsNaN(v) {
				s = fmt.Sprintf("%.2f", v)
			}
			xys = append(xys, plotter.XY{X: float64(c), Y: float64(n - 1 - r)})
			labels = append(labels, s)
		}
	}
	lbls, err := plotter.NewLabels(plotter.XYLabels{XYs: xys, Labels: labels})
	if err != nil {
		return nil, fmt.Errorf("heatmap labels: %w", err)
	}
	for i := range lbls.TextStyle {
		lbls.TextStyle[i].XAlign = text.XCenter
		lbls.TextStyle[i].YAlign = text.YCenter
	}
	p.Add(lbls)

	xt := make([]plot.Tick, n)
	yt := make([]plot.Tick, n)
	for i, name := range m.Columns {
		xt[i] = plot.Tick{Value: float64(i), Label: name}
		yt[i] = plot.Tick{Value: float64(n - 1 - i), Label: name}
	}
	p.X.Tick.Marker = plot.ConstantTicks(xt)
	p.Y.Tick.Marker = plot.ConstantTicks(yt)
	p.X.Tick.Label.Rotation = math.Pi / 4
	p.X.Tick.Label.XAlign = text.XRight
	return &built{plot: p, points: n * n}, nil
}
