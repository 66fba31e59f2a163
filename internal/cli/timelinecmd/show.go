package timelinecmd

import (
	"errors"
	"fmt"
	"strings"

	"charm.land/huh/v2"
	"github.com/spf13/cobra"
	"github.com/thenoetrevino/plazo/internal/cli"
	"github.com/thenoetrevino/plazo/internal/cli/styles"
	timelineservice "github.com/thenoetrevino/plazo/internal/services/timeline"
	"github.com/thenoetrevino/plazo/internal/timeline"
	"github.com/thenoetrevino/plazo/internal/tui/huhforms"
	"github.com/thenoetrevino/plazo/internal/tui/render"
)

// ErrPickWithoutTerminal is returned when --pick is combined with machine output
var ErrPickWithoutTerminal = errors.New("--pick needs an interactive terminal and cannot be combined with --json or --quiet")

// layoutJSON is the JSON shape of timeline show
type layoutJSON struct {
	ProjectID    string         `json:"project_id"`
	ProjectName  string         `json:"project_name"`
	MatchedBy    string         `json:"matched_by"`
	Filter       string         `json:"filter"`
	ColumnWidth  int            `json:"column_width"`
	SpanDays     int            `json:"span_days"`
	TotalWidth   int            `json:"total_width"`
	TodayOffset  int            `json:"today_offset"`
	TodayVisible bool           `json:"today_visible"`
	Bars         []timeline.Bar `json:"bars"`
}

func newLayoutJSON(res *timelineservice.LayoutResult) layoutJSON {
	return layoutJSON{
		ProjectID:    res.Project.ID,
		ProjectName:  res.Project.Name,
		MatchedBy:    res.Rule.String(),
		Filter:       string(res.Filter),
		ColumnWidth:  res.ColumnWidth,
		SpanDays:     res.SpanDays,
		TotalWidth:   res.TotalWidth,
		TodayOffset:  res.TodayOffset,
		TodayVisible: res.TodayVisible,
		Bars:         res.Bars,
	}
}

// ShowCmd returns the timeline show subcommand
func ShowCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "show [query]",
		Short: "Print a project's Gantt chart",
		Long: `Print the Gantt chart of one project as text.

Without a query the first project is shown. --pick opens a selector instead.

Examples:
  plazo timeline show
  plazo timeline show marketing --zoom 20 --filter todo
  plazo timeline show 4 --width 60
  plazo timeline show --pick
  plazo timeline show proj2 --json
`,
		RunE: runShow,
	}

	addLayoutFlags(cmd)
	cmd.Flags().Bool("pick", false, "Choose the project interactively")
	cmd.Flags().Int("width", 0, "Chart width in terminal cells (default: whole project)")

	// Agent-friendly flags
	cmd.Flags().Bool("json", false, "Output in JSON format")
	cmd.Flags().Bool("quiet", false, "Minimal output (project ID only)")

	return cmd
}

func runShow(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	formatter := cli.NewFormatter(cmd.Flags())

	cliInstance, err := cli.FromCommand(cmd)
	if err != nil {
		return cli.Fail(formatter, err)
	}
	defer closeCLI(cliInstance)

	query := strings.Join(args, " ")
	if pick, _ := cmd.Flags().GetBool("pick"); pick {
		if formatter.JSON || formatter.Quiet {
			_ = formatter.Error("USAGE_ERROR", ErrPickWithoutTerminal.Error())
			return cli.WithExitCode(cli.ExitUsage, ErrPickWithoutTerminal)
		}
		query, err = pickProject(cmd, cliInstance, query)
		if errors.Is(err, huh.ErrUserAborted) {
			fmt.Println("Cancelled")
			return nil
		}
		if err != nil {
			return cli.Fail(formatter, err)
		}
	}

	res, err := cliInstance.App.TimelineService.Layout(ctx, layoutRequest(cmd, cliInstance, query))
	if err != nil {
		return cli.Fail(formatter, err)
	}

	if formatter.Quiet {
		fmt.Println(res.Project.ID)
		return nil
	}
	if formatter.JSON {
		return formatter.JSONResult(newLayoutJSON(res))
	}

	cfg := cliInstance.App.Config
	styles.Init(cfg.ColorScheme)

	width, _ := cmd.Flags().GetInt("width")
	opts := render.DefaultGanttOptions()
	opts.PixelsPerCell = cfg.Timeline.PixelsPerCell
	opts.ChartCells = max(width, 0)
	opts.Colors = cfg.ColorScheme

	var out strings.Builder
	out.WriteString(styles.TitleStyle.Render(res.Project.Name))
	out.WriteString(styles.SubtitleStyle.Render(fmt.Sprintf("  %s  %s → %s  %s  %d px/day",
		res.Project.ID, res.Project.StartDate, res.Project.EndDate, res.Filter.Label(), res.ColumnWidth)))
	out.WriteString("\n\n")
	out.WriteString(render.Gantt(res, opts))
	fmt.Println(out.String())

	return nil
}

// pickProject runs the project picker, preselecting the project query resolves to
func pickProject(cmd *cobra.Command, c *cli.CLI, query string) (string, error) {
	ctx := cmd.Context()
	projects, err := c.App.TimelineService.ListProjects(ctx)
	if err != nil {
		return "", err
	}
	if len(projects) == 0 {
		return "", timelineservice.ErrNoProjects
	}

	selected := ""
	if res, err := c.App.TimelineService.Resolve(ctx, query); err == nil {
		selected = res.Project.ID
	}

	form := huhforms.ProjectPicker(projects, &selected, c.App.Config.ColorScheme)
	if err := form.RunWithContext(ctx); err != nil {
		return "", fmt.Errorf("project picker: %w", err)
	}
	return selected, nil
}
