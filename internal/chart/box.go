package chart

import (
	"fmt"
	"image/color"

	"github.com/Deepankar977/Data-Explorer/internal/table"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
)

func buildBoxplot(t *table.Table, req Request) (*built, error) {
	if err := requireAxis(Boxplot, "y", req.Y); err != nil {
		return nil, err
	}
	ys, err := t.Numeric(req.Y, "a box plot")
	if err != nil {
		return nil, err
	}
	vals := plotter.Values(table.Present(ys))
	if len(vals) == 0 {
		return nil, noData(Boxplot)
	}
	var warnings []string
	if distinct(vals) == 1 {
		warnings = append(warnings, fmt.Sprintf("column '%s' has a single distinct value; box plot is degenerate", req.Y))
	}

	p := newPlot(fmt.Sprintf("Boxplot of %s", req.Y), "", req.Y)
	box, err := plotter.NewBoxPlot(vg.Points(60), 0, vals)
	if err != nil {
		return nil, fmt.Errorf("boxplot: %w", err)
	}
	box.FillColor = color.RGBA{R: 174, G: 199, B: 232, A: 255}
	p.Add(box)
	p.NominalX(req.Y)
	return &built{plot: p, points: len(vals), warnings: warnings}, nil
}

func distinct(vals []float64) int {
	seen := map[float64]struct{}{}
	for _, v := range vals {
		seen[v] = struct{}{}
	}
	return len(seen)
}
