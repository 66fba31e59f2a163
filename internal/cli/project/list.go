package project

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/plazo/internal/cli"
	"github.com/thenoetrevino/plazo/internal/cli/styles"
)

// projectSummary is the JSON shape of one listed project
type projectSummary struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	StartDate string `json:"start_date"`
	EndDate   string `json:"end_date"`
	Progress  int    `json:"progress"`
	TaskCount int    `json:"task_count"`
}

// ListCmd returns the project list subcommand
func ListCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List all projects",
		Long: `List all projects in data source order.

Examples:
  plazo project list
  plazo project list --json
  plazo project list --quiet          # one id per line
  plazo project list --source yaml --data projects.yaml
`,
		Args: cobra.NoArgs,
		RunE: runList,
	}

	addOutputFlags(cmd, "Minimal output (IDs only)")

	return cmd
}

func runList(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	formatter := cli.NewFormatter(cmd.Flags())

	// Initialize CLI
	cliInstance, err := cli.FromCommand(cmd)
	if err != nil {
		return cli.Fail(formatter, err)
	}
	defer closeCLI(cliInstance)

	projects, err := cliInstance.App.TimelineService.ListProjects(ctx)
	if err != nil {
		return cli.Fail(formatter, err)
	}

	// Output in appropriate format
	if formatter.Quiet {
		// Just print IDs (one per line)
		for _, p := range projects {
			fmt.Println(p.ID)
		}
		return nil
	}

	if formatter.JSON {
		summaries := make([]projectSummary, 0, len(projects))
		for _, p := range projects {
			summaries = append(summaries, projectSummary{
				ID:        p.ID,
				Name:      p.Name,
				StartDate: p.StartDate.String(),
				EndDate:   p.EndDate.String(),
				Progress:  p.Progress,
				TaskCount: p.TaskCount(),
			})
		}
		return formatter.JSONResult(summaries)
	}

	// Human-readable output
	if len(projects) == 0 {
		fmt.Println("No projects found")
		return nil
	}

	styles.Init(cliInstance.App.Config.ColorScheme)

	var out strings.Builder
	fmt.Fprintf(&out, "Found %d projects:\n\n", len(projects))
	for _, p := range projects {
		fmt.Fprintf(&out, "  %s %s  %s\n",
			styles.LabelStyle.Render(fmt.Sprintf("[%s]", p.ID)),
			styles.TitleStyle.Render(p.Name),
			styles.SubtitleStyle.Render(fmt.Sprintf("%s → %s · %d tasks · %d%%",
				p.StartDate, p.EndDate, p.TaskCount(), p.Progress)),
		)
	}
	fmt.Print(out.String())

	return nil
}
