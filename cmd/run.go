package cmd

import (
	"fmt"
	"io"
	"strings"

	"github.com/Deepankar977/Data-Explorer/internal/analysis"
	"github.com/Deepankar977/Data-Explorer/internal/apperr"
	"github.com/Deepankar977/Data-Explorer/internal/chart"
	"github.com/Deepankar977/Data-Explorer/internal/clean"
	cfgpkg "github.com/Deepankar977/Data-Explorer/internal/config"
	"github.com/Deepankar977/Data-Explorer/internal/ctxlog"
	"github.com/Deepankar977/Data-Explorer/internal/export"
	"github.com/Deepankar977/Data-Explorer/internal/loader"
	"github.com/Deepankar977/Data-Explorer/internal/table"
	"github.com/Deepankar977/Data-Explorer/internal/utils"
	"github.com/spf13/cobra"
	"go.uber.org/multierr"
)

var operations = []string{"rows", "columns", "head", "stats", "fill"}

// runOptions is the parsed flag set of the root command.
type runOptions struct {
	operation     *choiceValue
	column        string
	value         string
	average       *choiceValue
	n             int
	zeroAsMissing bool

	visual *choiceValue
	x, y   string
	out    string

	exportPath string
	format     *choiceValue

	delimiter string
	sheet     string
}

func newRunOptions() *runOptions {
	return &runOptions{
		operation: newChoice(operations),
		average:   newChoice(clean.Averages),
		visual:    newChoice(chart.Kinds),
		format:    newChoice(export.Formats),
	}
}

func (o *runOptions) bind(c *cobra.Command) {
	f := c.Flags()
	f.Var(o.operation, "Operation", "operation to perform on the data")
	f.StringVar(&o.column, "column", "", "column to fill")
	f.StringVar(&o.value, "value", "", "literal value to fill missing cells with")
	f.Var(o.average, "average", "fill missing cells with this average of the column")
	f.IntVar(&o.n, "n", 5, "number of rows for head (default from config head_rows)")
	f.BoolVar(&o.zeroAsMissing, "zero-as-missing", false, "treat zero in numeric columns as missing (default from config)")

	f.Var(o.visual, "visual", "chart to render")
	f.StringVar(&o.x, "x", "", "x-axis column (heatmap: comma-separated columns)")
	f.StringVar(&o.y, "y", "", "y-axis column")
	f.StringVar(&o.out, "out", "", "chart output file (default <chart_dir>/<visual>_<x>_<y>.<chart_format>)")

	f.StringVar(&o.exportPath, "export", "", "export the data to this file")
	f.Var(o.format, "format", "export format (default from the --export extension)")

	f.StringVar(&o.delimiter, "delimiter", "", "input delimiter: ',', ';', tab or '|' (default from extension)")
	f.StringVar(&o.sheet, "sheet", "", "worksheet to read from an .xlsx file (default first sheet)")
}

// stepFailures reports the steps that were skipped. Each failure has already
// been shown to the user.
type stepFailures struct{ err error }

func (s stepFailures) Error() string {
	if n := len(multierr.Errors(s.err)); n != 1 {
		return fmt.Sprintf("%d steps failed", n)
	}
	return "1 step failed"
}

func (s stepFailures) Unwrap() []error { return multierr.Errors(s.err) }

// run loads the file, then runs the zero policy, the operation, the chart and
// the export in that order. A load failure aborts; later failures skip only
// their own step.
func (o *runOptions) run(cmd *cobra.Command, path string, cfg *cfgpkg.Global) error {
	if cfg == nil {
		cfg = cfgpkg.Defaults()
	}
	ctx := cmd.Context()
	log := ctxlog.FromContext(ctx)
	flags := cmd.Flags()
	out := cmd.OutOrStdout()
	u := newUI(cmd.ErrOrStderr())

	delimFlag := cfg.Delimiter
	if flags.Changed("delimiter") {
		delimFlag = o.delimiter
	}
	delim, err := loader.ParseDelimiter(delimFlag)
	if err != nil {
		return err
	}

	t, err := loader.Load(path, loader.Options{Delimiter: delim, Sheet: o.sheet})
	if err != nil {
		return err
	}
	log.Info("loaded", "file", t.Name, "rows", t.Rows(), "cols", t.Cols())

	var failed error
	step := func(name string, fn func() error) {
		if err := fn(); err != nil {
			u.Failf("%v", err)
			log.Debug("step failed", "step", name, "kind", apperr.KindOf(err).String(), "err", err)
			failed = multierr.Append(failed, err)
		}
	}

	zeros := cfg.ZeroAsMissing
	if flags.Changed("zero-as-missing") {
		zeros = o.zeroAsMissing
	}
	if zeros {
		step("zero-as-missing", func() error {
			n, err := clean.NullZeros(t)
			log.Info("zero values treated as missing", "cells", n)
			return err
		})
	}

	if op := o.operation.String(); op != "" {
		step(op, func() error { return o.operate(out, t, cfg, zeros, flags.Changed("n")) })
	}
	if o.visual.String() != "" {
		step("visual", func() error { return o.visualize(out, u, t, cfg) })
	}
	if o.exportPath != "" || o.format.String() != "" {
		step("export", func() error { return o.export(out, t) })
	}

	if failed != nil {
		return stepFailures{err: failed}
	}
	return nil
}

func (o *runOptions) operate(w io.Writer, t *table.Table, cfg *cfgpkg.Global, zeros, nChanged bool) error {
	switch o.operation.String() {
	case "rows":
		fmt.Fprintln(w, analysis.RowsMessage(t))
	case "columns":
		fmt.Fprintln(w, analysis.ColumnsMessage(t))
	case "head":
		n := cfg.HeadRows
		if nChanged {
			n = o.n
		}
		if n < 0 {
			return apperr.New(apperr.ConflictingArguments, "--n must be >= 0, got %d", n)
		}
		fmt.Fprint(w, t.Markdown(n))
	case "stats":
		if zeros {
			fmt.Fprintln(w, "(zero values treated as missing)")
		}
		fmt.Fprint(w, ensureNewline(analysis.Describe(t).Markdown()))
	case "fill":
		res, err := clean.Fill(t, clean.FillSpec{
			Column:  o.column,
			Value:   o.value,
			Average: clean.Average(o.average.String()),
		})
		if err != nil {
			return err
		}
		fmt.Fprintln(w, res.Message())
	}
	return nil
}

func (o *runOptions) visualize(w io.Writer, u *ui, t *table.Table, cfg *cfgpkg.Global) error {
	req := chart.Request{Kind: chart.Kind(o.visual.String()), X: o.x, Y: o.y, Out: o.out}
	if req.Out == "" {
		req.Out = chart.DefaultPath(cfg.ChartDir, req, cfg.ChartFormat)
	}
	if err := utils.EnsureParent(req.Out); err != nil {
		return apperr.Wrap(apperr.RenderFailure, err, "create chart directory")
	}
	res, err := chart.NewRenderer(cfg.ChartWidthIn, cfg.ChartHeightIn).Render(t, req)
	if err != nil {
		return err
	}
	for _, warning := range res.Warnings {
		u.Warnf("%s", warning)
	}
	fmt.Fprintf(w, "Chart saved to %s\n", res.Path)
	return nil
}

func (o *runOptions) export(w io.Writer, t *table.Table) error {
	if o.exportPath == "" {
		return apperr.New(apperr.ConflictingArguments, "--format needs --export <path>")
	}
	var (
		f   export.Format
		err error
	)
	if o.format.String() != "" {
		f, err = export.ParseFormat(o.format.String())
	} else {
		f, err = export.FormatFromPath(o.exportPath)
	}
	if err != nil {
		return err
	}
	if err := export.Export(t, o.exportPath, f); err != nil {
		return err
	}
	fmt.Fprintln(w, export.Message(o.exportPath, f))
	return nil
}

func ensureNewline(s string) string {
	if strings.HasSuffix(s, "\n") {
		return s
	}
	return s + "\n"
}
