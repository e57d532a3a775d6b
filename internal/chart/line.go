package chart

import (
	"fmt"
	"image/color"

	"github.com/Deepankar977/Data-Explorer/internal/table"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
)

func buildLine(t *table.Table, req Request) (*built, error) {
	if err := requireAxis(Line, "x", req.X); err != nil {
		return nil, err
	}
	if err := requireAxis(Line, "y", req.Y); err != nil {
		return nil, err
	}
	xs, err := t.Column(req.X)
	if err != nil {
		return nil, err
	}
	ys, err := t.Numeric(req.Y, "a line chart")
	if err != nil {
		return nil, err
	}
	numericX := table.IsNumeric(xs)
	pts := jointRows(xs, ys)
	if len(pts) == 0 {
		return nil, noData(Line)
	}
	sortByX(pts, numericX)
	xys, ticks := toXYs(pts, numericX)

	p := newPlot(fmt.Sprintf("%s vs %s", req.X, req.Y), req.X, req.Y)
	p.Add(plotter.NewGrid())
	l, err := plotter.NewLine(xys)
	if err != nil {
		return nil, fmt.Errorf("line: %w", err)
	}
	l.LineStyle.Width = vg.Points(2)
	l.LineStyle.Color = color.RGBA{G: 128, A: 255}
	p.Add(l)
	p.Legend.Add(req.Y, l)
	p.Legend.Top = true
	if ticks != nil {
		p.NominalX(ticks...)
	}
	return &built{plot: p, points: len(xys)}, nil
}
