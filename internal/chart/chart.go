// Package chart renders statistical charts from table columns to image files.
//
// Every chart validates its columns before a plot is built, so a validation
// failure never reaches the renderer. Output format follows the file
// extension (png, svg, pdf, jpg, tif, eps).
package chart

import (
	"path/filepath"
	"regexp"
	"strings"

	"github.com/Deepankar977/Data-Explorer/internal/apperr"
	"github.com/Deepankar977/Data-Explorer/internal/table"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/vg"
)

// Kind names a chart type.
type Kind string

const (
	Hist    Kind = "hist"
	Bar     Kind = "bar"
	Line    Kind = "line"
	Pie     Kind = "pie"
	Boxplot Kind = "boxplot"
	Scatter Kind = "scatter"
	Heatmap Kind = "heatmap"
)

// Kinds lists the accepted chart kinds in flag order.
var Kinds = []string{string(Hist), string(Bar), string(Line), string(Pie), string(Boxplot), string(Scatter), string(Heatmap)}

// Request describes one chart. X may hold a comma-separated column list for
// heatmaps.
type Request struct {
	Kind Kind
	X    string
	Y    string
	Out  string
}

// Result reports the written file and any non-fatal warnings.
type Result struct {
	Path     string
	Points   int
	Warnings []string
}

// SaveFunc writes a finished plot to path.
type SaveFunc func(p *plot.Plot, w, h vg.Length, path string) error

// Renderer builds and saves charts at a fixed size.
type Renderer struct {
	Width  vg.Length
	Height vg.Length
	save   SaveFunc
}

// NewRenderer returns a renderer that writes width x height inch images.
func NewRenderer(widthIn, heightIn float64) *Renderer {
	if widthIn <= 0 {
		widthIn = 8
	}
	if heightIn <= 0 {
		heightIn = 5
	}
	return &Renderer{
		Width:  vg.Length(widthIn) * vg.Inch,
		Height: vg.Length(heightIn) * vg.Inch,
		save: func(p *plot.Plot, w, h vg.Length, path string) error {
			return p.Save(w, h, path)
		},
	}
}

// WithSaver replaces the function that writes plots.
func (r *Renderer) WithSaver(fn SaveFunc) *Renderer {
	r.save = fn
	return r
}

// built is a validated plot ready to save.
type built struct {
	plot     *plot.Plot
	points   int
	warnings []string
}

type builder func(t *table.Table, req Request) (*built, error)

var builders = map[Kind]builder{
	Line:    buildLine,
	Bar:     buildBar,
	Boxplot: buildBoxplot,
	Hist:    buildHist,
	Pie:     buildPie,
	Scatter: buildScatter,
	Heatmap: buildHeatmap,
}

// Render validates the request against t, builds the chart and writes it to req.Out.
func (r *Renderer) Render(t *table.Table, req Request) (*Result, error) {
	build, ok := builders[req.Kind]
	if !ok {
		return nil, apperr.New(apperr.ConflictingArguments, "unknown visual %q (use %s)", req.Kind, strings.Join(Kinds, ", "))
	}
	if req.Out == "" {
		return nil, apperr.New(apperr.ConflictingArguments, "chart output path is required")
	}
	b, err := build(t, req)
	if err != nil {
		return nil, err
	}
	if err := r.save(b.plot, r.Width, r.Height, req.Out); err != nil {
		return nil, apperr.Wrap(apperr.RenderFailure, err, "write chart %s", req.Out)
	}
	return &Result{Path: req.Out, Points: b.points, Warnings: b.warnings}, nil
}

var unsafeName = regexp.MustCompile(`[^A-Za-z0-9._-]+`)

// DefaultPath names the output file after the chart kind and its axes.
func DefaultPath(dir string, req Request, format string) string {
	if format == "" {
		format = "png"
	}
	parts := []string{string(req.Kind)}
	for _, axis := range []string{req.X, req.Y} {
		if axis = strings.Trim(unsafeName.ReplaceAllString(axis, "-"), "-"); axis != "" {
			parts = append(parts, axis)
		}
	}
	return filepath.Join(dir, strings.Join(parts, "_")+"."+strings.TrimPrefix(format, "."))
}

func requireAxis(kind Kind, flag, val string) error {
	if strings.TrimSpace(val) == "" {
		return apperr.New(apperr.ConflictingArguments, "%s chart requires --%s", kind, flag)
	}
	return nil
}

func noData(kind Kind) error {
	return apperr.New(apperr.NoData, "nothing to plot for %s chart after dropping missing values", kind)
}

func newPlot(title, xLabel, yLabel string) *plot.Plot {
	p := plot.New()
	p.Title.Text = title
	p.X.Label.Text = xLabel
	p.Y.Label.Text = yLabel
	return p
}
