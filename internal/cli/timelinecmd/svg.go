package timelinecmd

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/plazo/internal/cli"
	"github.com/thenoetrevino/plazo/internal/cli/styles"
	"github.com/thenoetrevino/plazo/internal/export"
)

// svgResult is the JSON shape of timeline svg
type svgResult struct {
	Path      string `json:"path"`
	ProjectID string `json:"project_id"`
	Bars      int    `json:"bars"`
}

// GetID returns the written path for quiet output
func (r svgResult) GetID() string {
	return r.Path
}

// SVGCmd returns the timeline svg subcommand
func SVGCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "svg [query]",
		Short: "Export a project's Gantt chart as SVG",
		Long: `Write the Gantt chart of one project as a standalone SVG image.

Examples:
  plazo timeline svg marketing -o marketing.svg
  plazo timeline svg 2 --zoom 20 --filter todo -o mobile-todo.svg
  plazo timeline svg proj1 -o - > website.svg
`,
		RunE: runSVG,
	}

	addLayoutFlags(cmd)
	cmd.Flags().StringP("output", "o", "", "Output file, - for stdout (default: <project id>.svg)")

	// Agent-friendly flags
	cmd.Flags().Bool("json", false, "Output in JSON format")
	cmd.Flags().Bool("quiet", false, "Minimal output (path only)")

	return cmd
}

func runSVG(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	formatter := cli.NewFormatter(cmd.Flags())

	cliInstance, err := cli.FromCommand(cmd)
	if err != nil {
		return cli.Fail(formatter, err)
	}
	defer closeCLI(cliInstance)

	res, err := cliInstance.App.TimelineService.Layout(ctx, layoutRequest(cmd, cliInstance, strings.Join(args, " ")))
	if err != nil {
		return cli.Fail(formatter, err)
	}

	opts := export.DefaultSVGOptions(res.ColumnWidth)
	opts.Colors = cliInstance.App.Config.ColorScheme

	path, _ := cmd.Flags().GetString("output")
	if path == "-" {
		return export.WriteSVG(os.Stdout, res.Project, res.Bars, res.Days, opts)
	}
	if path == "" {
		path = res.Project.ID + ".svg"
	}

	if err := writeFile(path, func(w *bufio.Writer) error {
		return export.WriteSVG(w, res.Project, res.Bars, res.Days, opts)
	}); err != nil {
		return cli.Fail(formatter, err)
	}

	result := svgResult{Path: path, ProjectID: res.Project.ID, Bars: len(res.Bars)}
	if formatter.Quiet || formatter.JSON {
		return formatter.Success(result)
	}

	styles.Init(cliInstance.App.Config.ColorScheme)
	fmt.Println(styles.SuccessStyle.Render(fmt.Sprintf("✓ Wrote %s", path)) +
		styles.SubtitleStyle.Render(fmt.Sprintf(" (%s, %d tasks)", res.Project.Name, len(res.Bars))))
	return nil
}

// writeFile creates path and streams fn's output into it
func writeFile(path string, fn func(w *bufio.Writer) error) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", path, err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = cerr
		}
	}()

	w := bufio.NewWriter(f)
	if err := fn(w); err != nil {
		return err
	}
	return w.Flush()
}
