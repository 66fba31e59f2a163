package project

import (
	"log/slog"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/plazo/internal/cli"
)

// ProjectCmd returns the project parent command
func ProjectCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "project",
		Short: "Inspect projects",
	}

	cmd.AddCommand(ListCmd())
	cmd.AddCommand(ShowCmd())
	cmd.AddCommand(ResolveCmd())

	return cmd
}

// addOutputFlags registers the agent-friendly output flags
func addOutputFlags(cmd *cobra.Command, quietHelp string) {
	cmd.Flags().Bool("json", false, "Output in JSON format")
	cmd.Flags().Bool("quiet", false, quietHelp)
}

// closeCLI releases the CLI and logs failures
func closeCLI(c *cli.CLI) {
	if err := c.Close(); err != nil {
		slog.Error("error closing CLI", "error", err)
	}
}
