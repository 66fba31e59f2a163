package project

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/plazo/internal/cli"
	"github.com/thenoetrevino/plazo/internal/cli/styles"
	"github.com/thenoetrevino/plazo/internal/models"
	"github.com/thenoetrevino/plazo/internal/timeline"
	"github.com/thenoetrevino/plazo/internal/tui/components"
	"github.com/thenoetrevino/plazo/internal/tui/render"
)

// taskDetail is the JSON shape of one task in project show
type taskDetail struct {
	*models.Task
	StatusClass   models.StatusClass `json:"status_class"`
	HoursProgress int                `json:"hours_progress"`
}

// projectDetail is the JSON shape of project show
type projectDetail struct {
	ID          string       `json:"id"`
	Name        string       `json:"name"`
	Description string       `json:"description,omitempty"`
	StartDate   models.Date  `json:"start_date"`
	EndDate     models.Date  `json:"end_date"`
	SpanDays    int          `json:"span_days"`
	Progress    int          `json:"progress"`
	MatchedBy   string       `json:"matched_by"`
	Tasks       []taskDetail `json:"tasks"`
}

// ShowCmd returns the project show subcommand
func ShowCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "show <query>",
		Short: "Show a project and its tasks",
		Long: `Show one project with its description and tasks.

The query may be a project id (proj4), a number (4), a name or part of a
name ("marketing"). Unmatched queries fall back to the first project.

Examples:
  plazo project show proj4
  plazo project show marketing --json
`,
		Args: cobra.MinimumNArgs(1),
		RunE: runShow,
	}

	addOutputFlags(cmd, "Minimal output (ID only)")

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

	res, err := cliInstance.App.TimelineService.Resolve(ctx, strings.Join(args, " "))
	if err != nil {
		return cli.Fail(formatter, err)
	}
	p := res.Project
	now := cliInstance.App.Engine.Now()

	if formatter.Quiet {
		fmt.Println(p.ID)
		return nil
	}

	if formatter.JSON {
		detail := projectDetail{
			ID:          p.ID,
			Name:        p.Name,
			Description: p.Description,
			StartDate:   p.StartDate,
			EndDate:     p.EndDate,
			SpanDays:    timeline.ProjectSpanDays(p),
			Progress:    p.Progress,
			MatchedBy:   res.Rule.String(),
			Tasks:       make([]taskDetail, 0, len(p.Tasks)),
		}
		for _, t := range p.Tasks {
			detail.Tasks = append(detail.Tasks, taskDetail{
				Task:          t,
				StatusClass:   timeline.ClassifyStatus(t, now),
				HoursProgress: t.HoursProgress(),
			})
		}
		return formatter.JSONResult(detail)
	}

	colors := cliInstance.App.Config.ColorScheme
	styles.Init(colors)

	var card strings.Builder
	card.WriteString(styles.TitleStyle.Render(p.Name))
	card.WriteString(styles.SubtitleStyle.Render("  " + p.ID))
	card.WriteString("\n\n")
	fmt.Fprintf(&card, "%s %s → %s (%d days)\n",
		styles.LabelStyle.Render("Dates:"), p.StartDate, p.EndDate, timeline.ProjectSpanDays(p))
	fmt.Fprintf(&card, "%s %s\n", styles.LabelStyle.Render("Progress:"), render.ProgressBar(p.Progress, 20, colors))
	card.WriteString(styles.SectionStyle.Render("Description"))
	card.WriteString("\n")
	card.WriteString(components.RenderDescription(components.DescriptionProps{
		Description: p.Description,
		Width:       styles.CardWidth - 6,
		Subtle:      colors.Subtle,
	}))
	card.WriteString("\n")
	card.WriteString(styles.SectionStyle.Render(fmt.Sprintf("Tasks (%d)", p.TaskCount())))
	card.WriteString("\n")
	if len(p.Tasks) == 0 {
		card.WriteString(styles.SubtitleStyle.Render("No tasks"))
	}
	for _, t := range p.Tasks {
		card.WriteString(taskLine(t, timeline.ClassifyStatus(t, now)))
		card.WriteString("\n")
	}

	fmt.Println(styles.RenderCard(strings.TrimRight(card.String(), "\n")))
	return nil
}

// taskLine renders one task as a single summary line
func taskLine(t *models.Task, class models.StatusClass) string {
	line := fmt.Sprintf("%-22s %s  %s → %s  %s",
		truncate(t.Title, 22),
		styles.RenderStatusClass(class, t.Priority),
		t.StartDate, t.Deadline,
		styles.ValueStyle.Render(string(t.Priority)),
	)
	if t.AssigneeID != "" {
		line += styles.SubtitleStyle.Render("  @" + t.AssigneeID)
	}
	if t.EstimatedHours > 0 {
		line += styles.SubtitleStyle.Render(fmt.Sprintf("  %d%% of %gh", t.HoursProgress(), t.EstimatedHours))
	}
	return line
}

func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n-1]) + "…"
}
