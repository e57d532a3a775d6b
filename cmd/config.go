package cmd

import (
	"fmt"
	"os"

	cfgpkg "github.com/Deepankar977/Data-Explorer/internal/config"
	"github.com/spf13/cobra"
)

func newConfigCmd(g *globalOptions) *cobra.Command {
	configCmd := &cobra.Command{
		Use:   "config",
		Short: "View or set data-explorer configuration",
	}

	showCmd := &cobra.Command{
		Use:   "show",
		Short: "Show effective configuration",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			c := g.cfg
			if c == nil {
				c = cfgpkg.Defaults()
			}
			w := cmd.OutOrStdout()
			fmt.Fprintf(w, "zero_as_missing: %t\n", c.ZeroAsMissing)
			fmt.Fprintf(w, "head_rows: %d\n", c.HeadRows)
			fmt.Fprintf(w, "chart_dir: %s\n", c.ChartDir)
			fmt.Fprintf(w, "chart_format: %s\n", c.ChartFormat)
			fmt.Fprintf(w, "chart_width_in: %g\n", c.ChartWidthIn)
			fmt.Fprintf(w, "chart_height_in: %g\n", c.ChartHeightIn)
			fmt.Fprintf(w, "delimiter: %q\n", c.Delimiter)
			fmt.Fprintf(w, "log_level: %s\n", c.LogLevel)
			return nil
		},
	}

	setCmd := &cobra.Command{
		Use:   "set <key> <value>",
		Short: "Set a config value and save to disk",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			if g.cfgErr != nil && g.cfgFile != "" {
				if _, err := os.Stat(g.cfgFile); err == nil {
					return fmt.Errorf("refusing to overwrite unreadable config: %w", g.cfgErr)
				}
			}
			c := g.cfg
			if c == nil {
				c = cfgpkg.Defaults()
			}
			if err := c.Set(args[0], args[1]); err != nil {
				return err
			}
			if err := cfgpkg.Save(c, g.cfgFile); err != nil {
				return err
			}
			newUI(cmd.ErrOrStderr()).Okf("Saved config")
			return nil
		},
	}

	configCmd.AddCommand(showCmd, setCmd)
	return configCmd
}
