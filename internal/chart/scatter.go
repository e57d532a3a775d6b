package chart

import (
	"fmt"
	"image/color"

	"github.com/Deepankar977/Data-Explorer/internal/table"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
)

// buildScatter plots x against y. Rows missing either value are dropped
// together so every point is a real pair from one row.
func buildScatter(t *table.Table, req Request) (*built, error) {
	if err := requireAxis(Scatter, "x", req.X); err != nil {
		return nil, err
	}
	if err := requireAxis(Scatter, "y", req.Y); err != nil {
		return nil, err
	}
	xs, err := t.Numeric(req.X, "a scatter plot")
	if err != nil {
		return nil, err
	}
	ys, err := t.Numeric(req.Y, "a scatter plot")
	if err != nil {
		return nil, err
	}
	pts := jointRows(xs, ys)
	if len(pts) == 0 {
		return nil, noData(Scatter)
	}
	xys, _ := toXYs(pts, true)

	p := newPlot(fmt.Sprintf("Scatter plot of %s vs %s", req.X, req.Y), req.X, req.Y)
	p.Add(plotter.NewGrid())
	s, err := plotter.NewScatter(xys)
	if err != nil {
		return nil, fmt.Errorf("scatter: %w", err)
	}
	s.GlyphStyle.Color = color.RGBA{R: 31, G: 119, B: 180, A: 255}
	s.GlyphStyle.Radius = vg.Points(3)
	s.GlyphStyle.Shape = draw.CircleGlyph{}
	p.Add(s)
	return &built{plot: p, points: len(xys)}, nil
}
