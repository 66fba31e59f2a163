// Package importcmd implements moving project data between YAML files and
// the SQLite store.
package importcmd

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/plazo/internal/cli"
	"github.com/thenoetrevino/plazo/internal/cli/styles"
	"github.com/thenoetrevino/plazo/internal/config"
	"github.com/thenoetrevino/plazo/internal/database"
	"github.com/thenoetrevino/plazo/internal/models"
)

// importResult is the JSON shape of import
type importResult struct {
	Path     string `json:"path"`
	Projects int    `json:"projects"`
	Tasks    int    `json:"tasks"`
	DryRun   bool   `json:"dry_run,omitempty"`
}

// GetID returns the database path for quiet output
func (r importResult) GetID() string {
	return r.Path
}

// ImportCmd returns the import command
func ImportCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "import <file.yaml>",
		Short: "Load projects from YAML into the SQLite store",
		Long: `Replace the contents of the SQLite store with the projects in a YAML file.

The file is validated first; on any error the store is left untouched.
The database path comes from --db, then the global --data flag when the
source is sqlite, then the configured sqlite path (~/.plazo/plazo.db by default).

Examples:
  plazo import projects.yaml
  plazo import projects.yaml --db ./team.db --json
  plazo import projects.yaml --dry-run
`,
		Args: cobra.ExactArgs(1),
		RunE: runImport,
	}

	cmd.Flags().String("db", "", "SQLite database file to import into")
	cmd.Flags().Bool("dry-run", false, "Validate the file without writing")

	// Agent-friendly flags
	cmd.Flags().Bool("json", false, "Output in JSON format")
	cmd.Flags().Bool("quiet", false, "Minimal output (database path only)")

	return cmd
}

func runImport(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	formatter := cli.NewFormatter(cmd.Flags())

	projects, err := readProjects(args[0])
	if err != nil {
		return cli.Fail(formatter, err)
	}

	path, err := databasePath(cmd)
	if err != nil {
		return cli.Fail(formatter, err)
	}

	result := importResult{Path: path, Projects: len(projects)}
	for _, p := range projects {
		result.Tasks += p.TaskCount()
	}

	if dryRun, _ := cmd.Flags().GetBool("dry-run"); dryRun {
		result.DryRun = true
		return report(formatter, result)
	}

	store, err := database.OpenSQLite(ctx, path)
	if err != nil {
		return cli.Fail(formatter, err)
	}
	defer func() {
		if err := store.Close(); err != nil {
			slog.Error("error closing database", "error", err)
		}
	}()

	if err := store.ImportProjects(ctx, projects); err != nil {
		return cli.Fail(formatter, err)
	}
	result.Projects, result.Tasks, err = store.Counts(ctx)
	if err != nil {
		return cli.Fail(formatter, err)
	}
	slog.Info("imported projects", "path", path, "projects", result.Projects, "tasks", result.Tasks)

	return report(formatter, result)
}

func report(formatter *cli.OutputFormatter, result importResult) error {
	if formatter.JSON || formatter.Quiet {
		return formatter.Success(result)
	}

	verb := "Imported"
	if result.DryRun {
		verb = "Would import"
	}
	fmt.Println(styles.SuccessStyle.Render(fmt.Sprintf("✓ %s %d projects (%d tasks)", verb, result.Projects, result.Tasks)) +
		styles.SubtitleStyle.Render(" into "+result.Path))
	return nil
}

// readProjects decodes and validates a YAML project file
func readProjects(path string) ([]*models.Project, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open %s: %w", path, err)
	}
	defer func() { _ = f.Close() }()

	projects, err := database.DecodeYAML(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return projects, nil
}

// databasePath picks the import target: --db, then --data when the effective
// source is sqlite, then the configured sqlite path. --data naming a yaml or
// mock source is refused so import never writes over a YAML file.
func databasePath(cmd *cobra.Command) (string, error) {
	if db, _ := cmd.Flags().GetString("db"); db != "" {
		return db, nil
	}

	cfg, err := config.Load()
	if err != nil {
		return "", fmt.Errorf("failed to load configuration: %w", err)
	}

	opts := cli.OptionsFromFlags(cmd)
	if opts.DataPath != "" {
		if kind := cfg.DataSource.WithOverrides(opts.Source, "").Kind; kind != config.SourceSQLite {
			return "", fmt.Errorf("%w: --data %s is a %s source; pass --db or --source sqlite",
				config.ErrInvalidConfig, opts.DataPath, kind)
		}
		return opts.DataPath, nil
	}

	target := cfg.DataSource.WithOverrides(config.SourceSQLite, "")
	if err := target.Validate(); err != nil {
		return "", err
	}
	return target.Path, nil
}
