// Package setup implements the config subcommands.
package setup

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/plazo/internal/cli"
	"github.com/thenoetrevino/plazo/internal/cli/styles"
	"github.com/thenoetrevino/plazo/internal/config"
)

// ErrConfigExists is returned by config init when a config file is already present
var ErrConfigExists = errors.New("config file already exists")

// configResult is the JSON shape of the config subcommands
type configResult struct {
	Path    string `json:"path"`
	Exists  bool   `json:"exists"`
	Written bool   `json:"written,omitempty"`
}

func (r configResult) GetID() string {
	return r.Path
}

// ConfigCmd returns the config parent command
func ConfigCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Locate or create the configuration file",
	}

	cmd.AddCommand(PathCmd())
	cmd.AddCommand(InitCmd())

	return cmd
}

// PathCmd returns the config path subcommand
func PathCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "path",
		Short: "Print where the config file is read from",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			formatter := cli.NewFormatter(cmd.Flags())

			result, err := describe()
			if err != nil {
				return cli.Fail(formatter, err)
			}
			if formatter.Quiet || formatter.JSON {
				return formatter.Success(result)
			}

			state := styles.SubtitleStyle.Render("(not created yet, run: plazo config init)")
			if result.Exists {
				state = styles.SuccessStyle.Render("(exists)")
			}
			fmt.Printf("%s %s\n", result.Path, state)
			return nil
		},
	}

	cmd.Flags().Bool("json", false, "Output in JSON format")
	cmd.Flags().Bool("quiet", false, "Minimal output (path only)")

	return cmd
}

// InitCmd returns the config init subcommand
func InitCmd() *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Write a config file with the default settings",
		Long: `Write the default configuration to the config path so it can be edited.

An existing file is left alone unless --force is given.

Examples:
  plazo config init
  plazo config init --force
`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			formatter := cli.NewFormatter(cmd.Flags())

			result, err := describe()
			if err != nil {
				return cli.Fail(formatter, err)
			}
			if result.Exists && !force {
				_ = formatter.ErrorWithSuggestion("CONFIG_EXISTS",
					fmt.Sprintf("%s: %s", ErrConfigExists, result.Path), "Pass --force to overwrite it")
				return cli.WithExitCode(cli.ExitUsage, ErrConfigExists)
			}

			if err := config.Default().Save(); err != nil {
				return cli.Fail(formatter, fmt.Errorf("failed to write config: %w", err))
			}
			result.Exists = true
			result.Written = true

			if formatter.Quiet || formatter.JSON {
				return formatter.Success(result)
			}
			fmt.Println(styles.SuccessStyle.Render("✓ Wrote default config to " + result.Path))
			return nil
		},
	}

	cmd.Flags().BoolVar(&force, "force", false, "Overwrite an existing config file")
	cmd.Flags().Bool("json", false, "Output in JSON format")
	cmd.Flags().Bool("quiet", false, "Minimal output (path only)")

	return cmd
}

// describe reports the config path and whether a file is there
func describe() (configResult, error) {
	path, err := config.Path()
	if err != nil {
		return configResult{}, err
	}
	_, err = os.Stat(path)
	switch {
	case err == nil:
		return configResult{Path: path, Exists: true}, nil
	case errors.Is(err, fs.ErrNotExist):
		return configResult{Path: path}, nil
	default:
		return configResult{}, err
	}
}
