package timelinecmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/plazo/internal/cli"
	"github.com/thenoetrevino/plazo/internal/cli/styles"
	"github.com/thenoetrevino/plazo/internal/timeline"
)

// todayJSON is the JSON shape of timeline today
type todayJSON struct {
	ProjectID   string `json:"project_id"`
	Today       string `json:"today"`
	Visible     bool   `json:"visible"`
	OffsetPx    int    `json:"offset_px"`
	OffsetDays  int    `json:"offset_days"`
	ScrollPx    int    `json:"scroll_px"`
	ColumnWidth int    `json:"column_width"`
}

// TodayCmd returns the timeline today subcommand
func TodayCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "today [query]",
		Short: "Report where today falls on a project timeline",
		Long: `Report the pixel offset of today's column and the scroll position that
centres it in a viewport of --viewport pixels.

Nothing is reported as visible when today is before the project start.

Examples:
  plazo timeline today marketing
  plazo timeline today 4 --zoom 60 --viewport 1200 --json
`,
		RunE: runToday,
	}

	cmd.Flags().Int("zoom", 0, "Day column width in pixels (default from config)")
	cmd.Flags().Int("viewport", 800, "Visible chart width in pixels")

	// Agent-friendly flags
	cmd.Flags().Bool("json", false, "Output in JSON format")
	cmd.Flags().Bool("quiet", false, "Minimal output (scroll position only)")

	return cmd
}

func runToday(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	formatter := cli.NewFormatter(cmd.Flags())

	cliInstance, err := cli.FromCommand(cmd)
	if err != nil {
		return cli.Fail(formatter, err)
	}
	defer closeCLI(cliInstance)

	req := layoutRequest(cmd, cliInstance, strings.Join(args, " "))
	req.Filter = ""
	res, err := cliInstance.App.TimelineService.Layout(ctx, req)
	if err != nil {
		return cli.Fail(formatter, err)
	}

	viewport, _ := cmd.Flags().GetInt("viewport")
	now := cliInstance.App.Engine.Now()
	result := todayJSON{
		ProjectID:   res.Project.ID,
		Today:       now.Format("2006-01-02"),
		Visible:     res.TodayVisible,
		OffsetPx:    res.TodayOffset,
		ColumnWidth: res.ColumnWidth,
	}
	if res.TodayVisible {
		result.OffsetDays = timeline.DaysBetween(res.Project.Start(), now)
		result.ScrollPx = timeline.CenteredScroll(res.TodayOffset, max(viewport, 0))
	}

	if formatter.Quiet {
		fmt.Println(result.ScrollPx)
		return nil
	}
	if formatter.JSON {
		return formatter.JSONResult(result)
	}

	styles.Init(cliInstance.App.Config.ColorScheme)
	name := styles.TitleStyle.Render(res.Project.Name)
	if !res.TodayVisible {
		fmt.Printf("%s starts %s; today (%s) is before the project start\n",
			name, res.Project.StartDate, result.Today)
		return nil
	}

	fmt.Printf("%s: today (%s) is day %d of %d",
		name, result.Today, result.OffsetDays+1, res.SpanDays)
	if result.OffsetDays >= res.SpanDays {
		fmt.Print(styles.WarningStyle.Render(" (after the project end)"))
	}
	fmt.Println()
	fmt.Printf("  %s %dpx at %dpx/day\n", styles.LabelStyle.Render("Offset:"), result.OffsetPx, res.ColumnWidth)
	fmt.Printf("  %s %dpx for a %dpx viewport\n", styles.LabelStyle.Render("Scroll:"), result.ScrollPx, viewport)

	return nil
}
