package chart

import (
	"fmt"
	"image/color"

	"github.com/Deepankar977/Data-Explorer/internal/table"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
)

// histBins is the fixed number of equal-width bins.
const histBins = 20

func buildHist(t *table.Table, req Request) (*built, error) {
	if err := requireAxis(Hist, "x", req.X); err != nil {
		return nil, err
	}
	xs, err := t.Numeric(req.X, "a histogram")
	if err != nil {
		return nil, err
	}
	vals := plotter.Values(table.Present(xs))
	if len(vals) == 0 {
		return nil, noData(Hist)
	}

	p := newPlot(fmt.Sprintf("Histogram of %s", req.X), req.X, "Frequency")
	h, err := plotter.NewHist(vals, histBins)
	if err != nil {
		return nil, fmt.Errorf("hist: %w", err)
	}
	h.FillColor = color.RGBA{B: 255, A: 178}
	h.LineStyle.Color = color.Black
	h.LineStyle.Width = vg.Points(0.5)
	p.Add(h)
	return &built{plot: p, points: len(vals)}, nil
}
