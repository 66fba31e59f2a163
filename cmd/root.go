package cmd

import (
	"context"
	"log/slog"
	"strings"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/plazo/internal/cli"
	"github.com/thenoetrevino/plazo/internal/cli/importcmd"
	"github.com/thenoetrevino/plazo/internal/cli/project"
	"github.com/thenoetrevino/plazo/internal/cli/setup"
	"github.com/thenoetrevino/plazo/internal/cli/styles"
	"github.com/thenoetrevino/plazo/internal/cli/timelinecmd"
	"github.com/thenoetrevino/plazo/internal/config"
	"github.com/thenoetrevino/plazo/internal/launcher"
)

// Version is set at build time with -ldflags "-X .../cmd.Version=..."
var Version = "dev"

// NewRootCmd builds the plazo command tree
func NewRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "plazo [query]",
		Short: "Plazo - project timelines in the terminal",
		Long: `Plazo shows project timelines as Gantt charts in the terminal.

Run without a subcommand to open the interactive timeline, optionally on
the project matching query (an id like proj4, a number, or part of a name).`,
		Version:       Version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			// Styles follow the configured theme; the default scheme is kept
			// when the config cannot be read
			if cfg, err := config.Load(); err == nil {
				styles.Init(cfg.ColorScheme)
			} else {
				slog.Debug("using default styles", "error", err)
			}
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			opts := cli.OptionsFromFlags(cmd)
			return launcher.Launch(launcher.Options{
				Source:   opts.Source,
				DataPath: opts.DataPath,
				Query:    strings.Join(args, " "),
			})
		},
	}

	rootCmd.PersistentFlags().String("source", "", "Data source: mock, yaml or sqlite (default from config)")
	rootCmd.PersistentFlags().String("data", "", "Data file for the yaml and sqlite sources")

	rootCmd.AddCommand(project.ProjectCmd())
	rootCmd.AddCommand(timelinecmd.TimelineCmd())
	rootCmd.AddCommand(importcmd.ImportCmd())
	rootCmd.AddCommand(importcmd.ExportCmd())
	rootCmd.AddCommand(setup.ConfigCmd())

	return rootCmd
}

// Execute runs the root command
func Execute(ctx context.Context) error {
	return NewRootCmd().ExecuteContext(ctx)
}
