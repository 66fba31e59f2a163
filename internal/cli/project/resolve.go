package project

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/plazo/internal/cli"
	"github.com/thenoetrevino/plazo/internal/cli/styles"
)

// resolution is the JSON shape of project resolve
type resolution struct {
	Query     string `json:"query"`
	ID        string `json:"id"`
	Name      string `json:"name"`
	Index     int    `json:"index"`
	MatchedBy string `json:"matched_by"`
}

// GetID returns the resolved project id for quiet output
func (r resolution) GetID() string {
	return r.ID
}

func (r resolution) String() string {
	return fmt.Sprintf("%s %s  %s",
		styles.LabelStyle.Render(r.ID),
		styles.TitleStyle.Render(r.Name),
		styles.SubtitleStyle.Render(fmt.Sprintf("(matched by %s)", r.MatchedBy)))
}

// ResolveCmd returns the project resolve subcommand
func ResolveCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "resolve [query]",
		Short: "Show which project a query selects",
		Long: `Resolve a loosely typed project identifier and report the rule that matched.

Rules, first match wins: exact id, number (4 → proj4), proj-prefixed id,
exact name, partial name, 1-based position. Anything else selects the
first project.

Examples:
  plazo project resolve 4
  plazo project resolve market --json
  PROJECT=$(plazo project resolve "Mobile" --quiet)
`,
		RunE: runResolve,
	}

	addOutputFlags(cmd, "Minimal output (ID only)")

	return cmd
}

func runResolve(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	formatter := cli.NewFormatter(cmd.Flags())

	cliInstance, err := cli.FromCommand(cmd)
	if err != nil {
		return cli.Fail(formatter, err)
	}
	defer closeCLI(cliInstance)

	query := strings.Join(args, " ")
	res, err := cliInstance.App.TimelineService.Resolve(ctx, query)
	if err != nil {
		return cli.Fail(formatter, err)
	}

	styles.Init(cliInstance.App.Config.ColorScheme)
	return formatter.Success(resolution{
		Query:     query,
		ID:        res.Project.ID,
		Name:      res.Project.Name,
		Index:     res.Index,
		MatchedBy: res.Rule.String(),
	})
}
