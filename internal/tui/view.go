package tui

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
	"github.com/thenoetrevino/plazo/internal/config"
	"github.com/thenoetrevino/plazo/internal/models"
	"github.com/thenoetrevino/plazo/internal/timeline"
	"github.com/thenoetrevino/plazo/internal/tui/render"
	"github.com/thenoetrevino/plazo/internal/tui/state"
)

const dateLayout = "Jan 2 2006"

// View renders the current state of the application
func (m Model) View() tea.View {
	var view tea.View
	view.AltScreen = true

	// Wait for terminal size to be initialized
	switch {
	case !m.uiState.Ready():
		view.Content = "Loading..."
	case m.uiState.Mode() == state.HelpMode:
		view.Content = m.viewHelp()
	default:
		view.Content = m.viewTimeline()
	}
	return view
}

// viewTimeline renders the header, the chart and the footer
func (m Model) viewTimeline() string {
	s := newStyles(m.config.ColorScheme)

	if m.loadErr != nil {
		return s.errorText.Render("Error: "+m.loadErr.Error()) + "\n\n" + m.help.View(m.keys)
	}
	if m.layout == nil {
		return "Loading projects..."
	}

	res := m.layout
	p := res.Project

	var b strings.Builder
	b.WriteString(s.title.Render(p.Name))
	b.WriteString(s.subtle.Render(fmt.Sprintf("  %s  (%d/%d)", p.ID, m.projectIndex()+1, len(m.projects))))
	b.WriteString("\n")
	b.WriteString(fmt.Sprintf("%s → %s  %d days  ",
		p.Start().Format(dateLayout), p.End().Format(dateLayout), res.SpanDays))
	b.WriteString(render.ProgressBar(p.Progress, 20, m.config.ColorScheme))
	b.WriteString("\n")
	b.WriteString(s.label.Render("Filter: "))
	b.WriteString(res.Filter.Label())
	b.WriteString(s.subtle.Render(fmt.Sprintf("  (%d of %d tasks)", len(res.Bars), p.TaskCount())))
	b.WriteString(s.label.Render("   Zoom: "))
	b.WriteString(fmt.Sprintf("%d px/day", res.ColumnWidth))
	b.WriteString("\n\n")

	maxRows := m.uiState.ContentHeight()
	opts := render.GanttOptions{
		PixelsPerCell: m.pixelsPerCell(),
		ScrollPx:      m.timelineState.ScrollOffset(),
		ChartCells:    m.uiState.ChartWidth(labelWidth),
		LabelWidth:    labelWidth,
		SelectedRow:   m.timelineState.SelectedRow(),
		RowOffset:     m.rowOffset(maxRows),
		MaxRows:       maxRows,
		Colors:        m.config.ColorScheme,
	}
	b.WriteString(render.Gantt(res, opts))
	b.WriteString("\n\n")
	b.WriteString(m.viewStatusLine(s))
	b.WriteString("\n")
	b.WriteString(m.help.View(m.keys))

	return b.String()
}

// viewStatusLine shows the current notification or the selected task
func (m Model) viewStatusLine(s styles) string {
	if n := m.notificationState.Current(); n != nil {
		if n.Level == state.LevelError {
			return s.errorText.Render(n.Message)
		}
		return s.info.Render(n.Message)
	}

	t := m.selectedTask()
	if t == nil {
		return ""
	}
	class := timeline.ClassifyStatus(t, m.app.Engine.Now())
	parts := []string{
		s.value.Render(t.Title),
		s.status(class, t.Priority).Render(string(class)),
		fmt.Sprintf("%s → %s", t.Start().Format(dateLayout), t.Due().Format(dateLayout)),
		"priority " + string(t.Priority),
	}
	if t.AssigneeID != "" {
		parts = append(parts, "@"+t.AssigneeID)
	}
	if t.EstimatedHours > 0 {
		parts = append(parts, fmt.Sprintf("%g/%gh (%d%%)", t.LoggedHours, t.EstimatedHours, t.HoursProgress()))
	}
	return strings.Join(parts, s.subtle.Render(" · "))
}

// viewHelp renders the full key reference
func (m Model) viewHelp() string {
	s := newStyles(m.config.ColorScheme)
	body := s.title.Render("Key bindings") + "\n\n" + m.help.View(m.keys) + "\n\n" +
		s.subtle.Render("Press "+m.config.KeyMappings.ShowHelp+" or esc to return")
	return lipgloss.Place(m.uiState.Width(), m.uiState.Height(), lipgloss.Center, lipgloss.Center,
		s.box.Render(body))
}

// styles are the lipgloss styles of the timeline screen
type styles struct {
	title     lipgloss.Style
	subtle    lipgloss.Style
	label     lipgloss.Style
	value     lipgloss.Style
	info      lipgloss.Style
	errorText lipgloss.Style
	box       lipgloss.Style
	colors    statusColors
}

type statusColors func(models.StatusClass, models.Priority) string

func newStyles(c config.ColorScheme) styles {
	return styles{
		title:     lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(c.Title)),
		subtle:    lipgloss.NewStyle().Foreground(lipgloss.Color(c.Subtle)),
		label:     lipgloss.NewStyle().Foreground(lipgloss.Color(c.Accent)),
		value:     lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(c.Normal)),
		info:      lipgloss.NewStyle().Foreground(lipgloss.Color(c.InfoFg)),
		errorText: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(c.ErrorFg)),
		box: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color(c.Accent)).
			Padding(1, 2),
		colors: c.BarColor,
	}
}

func (s styles) status(class models.StatusClass, p models.Priority) lipgloss.Style {
	return lipgloss.NewStyle().Foreground(lipgloss.Color(s.colors(class, p)))
}
