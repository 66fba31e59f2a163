// Package render draws timelines as styled terminal text.
package render

import (
	"strconv"
	"strings"
	"time"

	"charm.land/lipgloss/v2"
	"github.com/charmbracelet/x/ansi"
	"github.com/thenoetrevino/plazo/internal/config/colors"
	"github.com/thenoetrevino/plazo/internal/models"
	timelineservice "github.com/thenoetrevino/plazo/internal/services/timeline"
	"github.com/thenoetrevino/plazo/internal/timeline"
)

const (
	barRune   = '█'
	gridRune  = '·'
	emptyRune = ' '
)

// GanttOptions controls which part of the chart is drawn and how
type GanttOptions struct {
	// PixelsPerCell is the number of layout pixels one terminal cell shows
	PixelsPerCell int

	// ScrollPx is the horizontal scroll position in layout pixels
	ScrollPx int

	// ChartCells is the visible chart width; 0 draws the whole project span
	ChartCells int

	// LabelWidth is the width of the task title column
	LabelWidth int

	// SelectedRow highlights one bar; -1 for none
	SelectedRow int

	// RowOffset and MaxRows window the task rows; MaxRows 0 draws all
	RowOffset int
	MaxRows   int

	Colors colors.ColorScheme
}

// DefaultGanttOptions draws the full chart with stock colors
func DefaultGanttOptions() GanttOptions {
	return GanttOptions{
		PixelsPerCell: 10,
		LabelWidth:    24,
		SelectedRow:   -1,
		Colors:        *colors.Default(),
	}
}

type cell struct {
	ch     rune
	fg, bg string
}

// Gantt renders a month header, a day header and one row per bar
func Gantt(res *timelineservice.LayoutResult, opts GanttOptions) string {
	if opts.PixelsPerCell <= 0 {
		opts.PixelsPerCell = 10
	}
	opts.Colors.ApplyDefaults()

	cells := opts.ChartCells
	if cells <= 0 {
		cells = ceilDiv(max(res.TotalWidth-opts.ScrollPx, 0), opts.PixelsPerCell)
	}

	pad := strings.Repeat(" ", opts.LabelWidth)
	lines := []string{
		pad + " " + monthRow(res, opts, cells),
		pad + " " + dayRow(res, opts, cells),
	}

	if len(res.Bars) == 0 {
		empty := lipgloss.NewStyle().Foreground(lipgloss.Color(opts.Colors.Subtle)).Italic(true)
		lines = append(lines, empty.Render("No tasks match the "+res.Filter.Label()+" filter"))
		return strings.Join(lines, "\n")
	}

	end := len(res.Bars)
	if opts.MaxRows > 0 {
		end = min(end, opts.RowOffset+opts.MaxRows)
	}
	for i := max(opts.RowOffset, 0); i < end; i++ {
		lines = append(lines, barRow(res, opts, cells, i))
	}
	return strings.Join(lines, "\n")
}

// barRow draws the label and bar of row i
func barRow(res *timelineservice.LayoutResult, opts GanttOptions, cells, i int) string {
	bar := res.Bars[i]
	c := opts.Colors

	labelStyle := lipgloss.NewStyle().Foreground(lipgloss.Color(c.Normal))
	if i == opts.SelectedRow {
		labelStyle = labelStyle.Bold(true).
			Foreground(lipgloss.Color(c.Accent)).
			Background(lipgloss.Color(c.SelectedBg))
	}
	label := labelStyle.Render(fit(bar.Task.Title, opts.LabelWidth))

	color := c.BarColor(bar.StatusClass, bar.Task.Priority)
	row := make([]cell, cells)
	for x := range cells {
		pxStart := opts.ScrollPx + x*opts.PixelsPerCell
		pxEnd := pxStart + opts.PixelsPerCell
		row[x] = background(res, opts, pxStart)
		if bar.Left < pxEnd && bar.Left+bar.Width > pxStart {
			row[x].ch = barRune
			row[x].fg = color
		}
	}
	return label + " " + renderCells(row)
}

// background returns the empty cell at pxStart, shaded for weekends and today
func background(res *timelineservice.LayoutResult, opts GanttOptions, pxStart int) cell {
	c := opts.Colors
	day, ok := dayAt(res, pxStart)
	if !ok {
		return cell{ch: emptyRune}
	}

	out := cell{ch: emptyRune}
	if day.Offset*res.ColumnWidth >= pxStart && day.Offset*res.ColumnWidth < pxStart+opts.PixelsPerCell {
		out = cell{ch: gridRune, fg: c.GridLine}
	}
	switch {
	case day.IsToday:
		out.bg = c.Today
	case day.IsWeekend:
		out.bg = c.Weekend
	}
	return out
}

// monthRow labels the first visible day and every first of the month
func monthRow(res *timelineservice.LayoutResult, opts GanttOptions, cells int) string {
	row := blankRow(cells)
	next := 0
	for _, d := range res.Days {
		x, ok := cellOf(res, opts, d, cells)
		if !ok || x < next {
			continue
		}
		if x > 0 && d.Date.Day() != 1 {
			continue
		}
		text := d.Date.Format("Jan 2006")
		if x == 0 && d.Date.Day() != 1 {
			text = d.Date.Format("Jan 2 2006")
		}
		next = write(row, x, text, opts.Colors.Title, "") + 1
	}
	return renderCells(row)
}

// dayRow writes day-of-month numbers where they fit; narrow zoom levels
// only label Mondays
func dayRow(res *timelineservice.LayoutResult, opts GanttOptions, cells int) string {
	row := blankRow(cells)
	c := opts.Colors
	dayCells := res.ColumnWidth / opts.PixelsPerCell
	next := 0
	for _, d := range res.Days {
		x, ok := cellOf(res, opts, d, cells)
		if !ok {
			continue
		}
		if d.IsToday {
			row[x].bg = c.Today
		}
		if x < next || (dayCells < 3 && d.Date.Weekday() != time.Monday && !d.IsToday) {
			continue
		}
		fg := c.Subtle
		if d.IsWeekend {
			fg = c.Normal
		}
		if d.IsToday {
			fg = c.Accent
		}
		bg := row[x].bg
		next = write(row, x, strconv.Itoa(d.Date.Day()), fg, bg) + 1
	}
	return renderCells(row)
}

// dayAt returns the day drawn at pixel px
func dayAt(res *timelineservice.LayoutResult, px int) (timeline.Day, bool) {
	if res.ColumnWidth <= 0 || px < 0 {
		return timeline.Day{}, false
	}
	idx := px / res.ColumnWidth
	if idx >= len(res.Days) {
		return timeline.Day{}, false
	}
	return res.Days[idx], true
}

// cellOf returns the visible cell where day d starts
func cellOf(res *timelineservice.LayoutResult, opts GanttOptions, d timeline.Day, cells int) (int, bool) {
	px := d.Offset*res.ColumnWidth - opts.ScrollPx
	if px < 0 {
		// the first partially visible day still gets a label
		if px+res.ColumnWidth <= 0 {
			return 0, false
		}
		return 0, true
	}
	x := px / opts.PixelsPerCell
	return x, x < cells
}

func blankRow(cells int) []cell {
	row := make([]cell, cells)
	for i := range row {
		row[i].ch = emptyRune
	}
	return row
}

// write copies text into row at x, clipped to the row, and returns the end position
func write(row []cell, x int, text, fg, bg string) int {
	for _, r := range text {
		if x >= len(row) {
			break
		}
		row[x] = cell{ch: r, fg: fg, bg: bg}
		x++
	}
	return x
}

// renderCells styles runs of identically colored cells
func renderCells(row []cell) string {
	var sb strings.Builder
	for i := 0; i < len(row); {
		j := i
		var run strings.Builder
		for j < len(row) && row[j].fg == row[i].fg && row[j].bg == row[i].bg {
			run.WriteRune(row[j].ch)
			j++
		}
		sb.WriteString(styleFor(row[i].fg, row[i].bg).Render(run.String()))
		i = j
	}
	return sb.String()
}

func styleFor(fg, bg string) lipgloss.Style {
	s := lipgloss.NewStyle()
	if fg != "" {
		s = s.Foreground(lipgloss.Color(fg))
	}
	if bg != "" {
		s = s.Background(lipgloss.Color(bg))
	}
	return s
}

// fit truncates or pads s to exactly width terminal cells. Wide characters
// count as two cells.
func fit(s string, width int) string {
	if width <= 0 {
		return ""
	}
	tail := "…"
	if width == 1 {
		tail = ""
	}
	out := ansi.Truncate(s, width, tail)
	return out + strings.Repeat(" ", max(width-lipgloss.Width(out), 0))
}

func ceilDiv(a, b int) int {
	return (a + b - 1) / b
}

// ProgressBar renders pct (0-100) as width cells followed by the percentage
func ProgressBar(pct, width int, c colors.ColorScheme) string {
	pct = min(max(pct, models.MinProgress), models.MaxProgress)
	filled := pct * width / 100
	return styleFor(c.Completed, "").Render(strings.Repeat("█", filled)) +
		styleFor(c.Subtle, "").Render(strings.Repeat("░", width-filled)) +
		" " + strconv.Itoa(pct) + "%"
}
