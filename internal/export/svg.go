// Package export renders project timelines to static files.
package export

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/x/ansi"
	"github.com/thenoetrevino/plazo/internal/config/colors"
	"github.com/thenoetrevino/plazo/internal/models"
	"github.com/thenoetrevino/plazo/internal/timeline"
)

// SVGOptions controls the geometry and colors of an SVG chart
type SVGOptions struct {
	ColumnWidth int
	RowHeight   int
	LabelWidth  int
	FontFamily  string
	FontSize    int
	Colors      colors.ColorScheme
}

// DefaultSVGOptions returns options for a chart at the given zoom
func DefaultSVGOptions(columnWidth int) SVGOptions {
	return SVGOptions{
		ColumnWidth: columnWidth,
		RowHeight:   28,
		LabelWidth:  200,
		FontFamily:  "Helvetica, Arial, sans-serif",
		FontSize:    12,
		Colors:      *colors.Default(),
	}
}

const (
	titleHeight  = 40
	headerHeight = 36
	barPadding   = 5
	margin       = 10
)

// WriteSVG draws a Gantt chart of bars against the project's day columns.
// Bars and days must come from the same project and column width.
func WriteSVG(w io.Writer, p *models.Project, bars []timeline.Bar, days []timeline.Day, opts SVGOptions) error {
	if opts.ColumnWidth <= 0 {
		return fmt.Errorf("invalid column width %d", opts.ColumnWidth)
	}
	defaults := DefaultSVGOptions(opts.ColumnWidth)
	if opts.RowHeight <= 0 {
		opts.RowHeight = defaults.RowHeight
	}
	if opts.LabelWidth <= 0 {
		opts.LabelWidth = defaults.LabelWidth
	}
	if opts.FontFamily == "" {
		opts.FontFamily = defaults.FontFamily
	}
	if opts.FontSize <= 0 {
		opts.FontSize = defaults.FontSize
	}
	opts.Colors.ApplyDefaults()
	c := opts.Colors

	chartX := margin + opts.LabelWidth
	chartY := margin + titleHeight + headerHeight
	chartWidth := len(days) * opts.ColumnWidth
	width := chartX + chartWidth + margin
	height := chartY + max(len(bars), 1)*opts.RowHeight + margin

	var svg strings.Builder
	svg.WriteString(fmt.Sprintf(`<?xml version="1.0" encoding="UTF-8"?>
<svg width="%d" height="%d" xmlns="http://www.w3.org/2000/svg">
<rect width="100%%" height="100%%" fill="%s"/>
<defs>
<style>
.title-text { font-family: %s; font-size: %dpx; font-weight: bold; fill: %s; }
.label-text { font-family: %s; font-size: %dpx; fill: %s; }
.day-text { font-family: %s; font-size: %dpx; fill: %s; }
</style>
</defs>
`, width, height, c.Background,
		opts.FontFamily, opts.FontSize+4, c.Title,
		opts.FontFamily, opts.FontSize, c.Normal,
		opts.FontFamily, opts.FontSize-2, c.Subtle))

	svg.WriteString(fmt.Sprintf(`<text x="%d" y="%d" class="title-text">%s</text>
`, margin, margin+titleHeight/2+4, escapeXML(projectTitle(p))))

	drawDays(&svg, days, chartX, margin+titleHeight, chartY, height-margin, opts)

	for i, bar := range bars {
		rowY := chartY + i*opts.RowHeight
		svg.WriteString(fmt.Sprintf(`<text x="%d" y="%d" class="label-text">%s</text>
`, margin, rowY+opts.RowHeight/2+4, escapeXML(truncate(bar.Task.Title, opts.LabelWidth/7))))

		svg.WriteString(fmt.Sprintf(`<rect class="bar %s" x="%d" y="%d" width="%d" height="%d" rx="3" fill="%s"><title>%s</title></rect>
`, bar.StatusClass, chartX+bar.Left, rowY+barPadding, bar.Width, opts.RowHeight-2*barPadding,
			c.BarColor(bar.StatusClass, bar.Task.Priority), escapeXML(barTooltip(bar))))
	}

	svg.WriteString("</svg>\n")

	_, err := io.WriteString(w, svg.String())
	return err
}

// drawDays writes weekend and today shading, grid lines and the day header
func drawDays(svg *strings.Builder, days []timeline.Day, chartX, headerY, chartY, bottom int, opts SVGOptions) {
	c := opts.Colors
	for _, d := range days {
		x := chartX + d.Offset*opts.ColumnWidth
		switch {
		case d.IsToday:
			svg.WriteString(fmt.Sprintf(`<rect class="today" x="%d" y="%d" width="%d" height="%d" fill="%s"/>
`, x, headerY, opts.ColumnWidth, bottom-headerY, c.Today))
		case d.IsWeekend:
			svg.WriteString(fmt.Sprintf(`<rect class="weekend" x="%d" y="%d" width="%d" height="%d" fill="%s"/>
`, x, headerY, opts.ColumnWidth, bottom-headerY, c.Weekend))
		}

		svg.WriteString(fmt.Sprintf(`<line x1="%d" y1="%d" x2="%d" y2="%d" stroke="%s" stroke-width="1"/>
`, x, chartY, x, bottom, c.GridLine))

		if d.Offset == 0 || d.Date.Day() == 1 {
			svg.WriteString(fmt.Sprintf(`<text x="%d" y="%d" class="day-text">%s</text>
`, x+2, headerY+12, d.Date.Format("Jan 2006")))
		}
		svg.WriteString(fmt.Sprintf(`<text x="%d" y="%d" text-anchor="middle" class="day-text">%d</text>
`, x+opts.ColumnWidth/2, chartY-6, d.Date.Day()))
	}
}

func projectTitle(p *models.Project) string {
	return fmt.Sprintf("%s (%s to %s, %d%%)", p.Name, p.StartDate, p.EndDate, p.Progress)
}

func barTooltip(b timeline.Bar) string {
	return fmt.Sprintf("%s: %s to %s (%s)", b.Task.Title, b.Task.StartDate, b.Task.Deadline, b.StatusClass)
}

// truncate shortens s to n cells, counting wide characters as two
func truncate(s string, n int) string {
	if n <= 1 {
		return s
	}
	return ansi.Truncate(s, n, "…")
}

func escapeXML(s string) string {
	s = strings.ReplaceAll(s, "&", "&amp;")
	s = strings.ReplaceAll(s, "<", "&lt;")
	s = strings.ReplaceAll(s, ">", "&gt;")
	s = strings.ReplaceAll(s, "\"", "&quot;")
	s = strings.ReplaceAll(s, "'", "&apos;")
	return s
}
