package importcmd

import (
	"bufio"
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/plazo/internal/cli"
	"github.com/thenoetrevino/plazo/internal/cli/styles"
	"github.com/thenoetrevino/plazo/internal/database"
)

// ExportCmd returns the export command
func ExportCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "export",
		Short: "Write the current data source as YAML",
		Long: `Write every project of the active data source in the YAML format that
import and --source yaml read.

Examples:
  plazo export                       # sample data to stdout
  plazo export --source sqlite -o backup.yaml
`,
		Args: cobra.NoArgs,
		RunE: runExport,
	}

	cmd.Flags().StringP("output", "o", "-", "Output file, - for stdout")
	cmd.Flags().Bool("quiet", false, "Print nothing but errors")

	return cmd
}

func runExport(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	formatter := cli.NewFormatter(cmd.Flags())

	cliInstance, err := cli.FromCommand(cmd)
	if err != nil {
		return cli.Fail(formatter, err)
	}
	defer closeCLI(cliInstance)

	projects, err := cliInstance.App.TimelineService.ListProjects(ctx)
	if err != nil {
		return cli.Fail(formatter, err)
	}

	path, _ := cmd.Flags().GetString("output")
	if path == "-" || path == "" {
		return database.EncodeYAML(os.Stdout, projects)
	}

	f, err := os.Create(path)
	if err != nil {
		return cli.Fail(formatter, fmt.Errorf("failed to create %s: %w", path, err))
	}
	w := bufio.NewWriter(f)
	err = database.EncodeYAML(w, projects)
	if err == nil {
		err = w.Flush()
	}
	if cerr := f.Close(); err == nil {
		err = cerr
	}
	if err != nil {
		return cli.Fail(formatter, err)
	}

	if !formatter.Quiet {
		fmt.Println(styles.SuccessStyle.Render(fmt.Sprintf("✓ Exported %d projects to %s", len(projects), path)))
	}
	return nil
}

// closeCLI releases the CLI and logs failures
func closeCLI(c *cli.CLI) {
	if err := c.Close(); err != nil {
		slog.Error("error closing CLI", "error", err)
	}
}
