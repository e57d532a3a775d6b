package chart

import (
	"fmt"
	"image/color"

	"github.com/Deepankar977/Data-Explorer/internal/table"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
)

// buildBar draws one bar per row, x as the category label and y as the height.
func buildBar(t *table.Table, req Request) (*built, error) {
	if err := requireAxis(Bar, "x", req.X); err != nil {
		return nil, err
	}
	if err := requireAxis(Bar, "y", req.Y); err != nil {
		return nil, err
	}
	xs, err := t.Column(req.X)
	if err != nil {
		return nil, err
	}
	ys, err := t.Numeric(req.Y, "a bar chart")
	if err != nil {
		return nil, err
	}
	pts := jointRows(xs, ys)
	if len(pts) == 0 {
		return nil, noData(Bar)
	}
	heights := make(plotter.Values, len(pts))
	labels := make([]string, len(pts))
	for i, pt := range pts {
		heights[i] = pt.y
		labels[i] = pt.label
	}

	p := newPlot(fmt.Sprintf("Graph of %s", req.Y), req.X, req.Y)
	bars, err := plotter.NewBarChart(heights, vg.Points(16))
	if err != nil {
		return nil, fmt.Errorf("bar: %w", err)
	}
	bars.Color = color.RGBA{R: 31, G: 119, B: 180, A: 255}
	bars.LineStyle.Width = vg.Length(0)
	p.Add(bars)
	p.NominalX(labels...)
	return &built{plot: p, points: len(pts)}, nil
}
