// Package timelinecmd implements the timeline subcommands.
package timelinecmd

import (
	"log/slog"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/plazo/internal/cli"
	"github.com/thenoetrevino/plazo/internal/models"
	timelineservice "github.com/thenoetrevino/plazo/internal/services/timeline"
)

// TimelineCmd returns the timeline parent command
func TimelineCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "timeline",
		Aliases: []string{"tl"},
		Short:   "Render project timelines",
	}

	cmd.AddCommand(ShowCmd())
	cmd.AddCommand(TodayCmd())
	cmd.AddCommand(SVGCmd())

	return cmd
}

// addLayoutFlags registers the zoom and filter flags shared by the subcommands
func addLayoutFlags(cmd *cobra.Command) {
	cmd.Flags().Int("zoom", 0, "Day column width in pixels (default from config)")
	cmd.Flags().String("filter", "", "Status filter: all, todo, in-progress, completed (default from config)")
}

// layoutRequest builds a layout request from the flags, falling back to the
// configured zoom and filter. A positive --zoom is clamped to the configured
// range; zero and negative values are left for the service to reject.
func layoutRequest(cmd *cobra.Command, c *cli.CLI, query string) timelineservice.LayoutRequest {
	tl := c.App.Config.Timeline

	zoom, _ := cmd.Flags().GetInt("zoom")
	if !cmd.Flags().Changed("zoom") {
		zoom = tl.DefaultColumnWidth
	}
	if zoom > 0 {
		zoom = tl.ClampColumnWidth(zoom)
	}
	filter, _ := cmd.Flags().GetString("filter")
	if !cmd.Flags().Changed("filter") {
		filter = tl.DefaultFilter
	}

	return timelineservice.LayoutRequest{
		Query:       query,
		ColumnWidth: zoom,
		Filter:      models.Filter(filter),
	}
}

// closeCLI releases the CLI and logs failures
func closeCLI(c *cli.CLI) {
	if err := c.Close(); err != nil {
		slog.Error("error closing CLI", "error", err)
	}
}
