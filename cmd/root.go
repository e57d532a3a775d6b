package cmd

import (
	"fmt"
	"log/slog"
	"os"

	cfgpkg "github.com/Deepankar977/Data-Explorer/internal/config"
	"github.com/Deepankar977/Data-Explorer/internal/ctxlog"
	"github.com/google/uuid"
	"github.com/spf13/cobra"
)

// globalOptions holds persistent flags and the loaded configuration.
type globalOptions struct {
	cfgFile string
	debug   bool
	cfg     *cfgpkg.Global
	cfgErr  error
}

// NewRootCmd builds the data-explorer command tree.
func NewRootCmd() *cobra.Command {
	g := &globalOptions{}
	o := newRunOptions()

	root := &cobra.Command{
		Use:   "data-explorer <file>",
		Short: "Inspect, clean, chart and export a CSV or XLSX file",
		Long: `data-explorer loads one delimited or workbook file and runs at most one inspection,
one chart and one export on it, in that order.`,
		Example: `  data-explorer sales.csv --Operation stats
  data-explorer sales.csv --Operation fill --column price --average median --export clean.csv
  data-explorer sales.csv --visual line --x date --y price --out price.png`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			g.load(cmd)
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return o.run(cmd, args[0], g.cfg)
		},
	}

	root.PersistentFlags().StringVar(&g.cfgFile, "config", "", "config file (default is ~/.data-explorer/config.yaml)")
	root.PersistentFlags().BoolVar(&g.debug, "debug", false, "enable debug output")
	o.bind(root)

	root.AddCommand(newConfigCmd(g))
	return root
}

// Execute is the entry point called by main.main()
func Execute() {
	root := NewRootCmd()
	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "✗ Error:", err)
		os.Exit(1)
	}
}

// load reads configuration and installs the run logger on the command context.
// A config failure is a warning; defaults apply.
func (g *globalOptions) load(cmd *cobra.Command) {
	c, err := cfgpkg.Load(g.cfgFile)
	if err != nil {
		// Non-fatal: run with defaults
		newUI(cmd.ErrOrStderr()).Warnf("Warning: failed to load config: %v", err)
		c = cfgpkg.Defaults()
	}
	g.cfg, g.cfgErr = c, err

	level := ctxlog.ParseLevel(c.LogLevel)
	if g.debug {
		level = slog.LevelDebug
	}
	logger := ctxlog.New(cmd.ErrOrStderr(), level).With("run", uuid.NewString())
	cmd.SetContext(ctxlog.WithLogger(cmd.Context(), logger))
}
