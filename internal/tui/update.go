package tui

import (
	"fmt"
	"log/slog"

	"charm.land/bubbles/v2/key"
	tea "charm.land/bubbletea/v2"
	"github.com/thenoetrevino/plazo/internal/tui/state"
)

// Update handles all messages and updates the model accordingly
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case projectsLoadedMsg:
		if msg.err != nil {
			slog.Error("failed to load projects", "error", msg.err)
			m.loadErr = msg.err
			return m, nil
		}
		slog.Info("loaded projects", "count", len(msg.projects))
		m.setProjects(msg.projects)
		return m, nil

	case tea.WindowSizeMsg:
		m.uiState.SetSize(msg.Width, msg.Height)
		if m.pendingToday {
			m.followToday()
		} else {
			m.timelineState.SetScrollOffset(m.timelineState.ScrollOffset(), m.maxScroll())
		}
		return m, nil

	case tea.KeyPressMsg:
		if m.uiState.Mode() == state.HelpMode {
			return m.handleHelpMode(msg)
		}
		return m.handleNormalMode(msg)
	}

	return m, nil
}

// ============================================================================
// HELP MODE HANDLERS
// ============================================================================

// handleHelpMode closes the help screen on help, quit or escape
func (m Model) handleHelpMode(msg tea.KeyPressMsg) (tea.Model, tea.Cmd) {
	switch {
	case msg.String() == "ctrl+c":
		return m, tea.Quit
	case key.Matches(msg, m.keys.Help, m.keys.Quit), msg.String() == "esc":
		m.uiState.SetMode(state.NormalMode)
		m.help.ShowAll = false
	}
	return m, nil
}

// ============================================================================
// NORMAL MODE HANDLERS
// ============================================================================

// handleNormalMode dispatches key events to specific handlers
func (m Model) handleNormalMode(msg tea.KeyPressMsg) (tea.Model, tea.Cmd) {
	m.notificationState.Clear()

	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit
	case key.Matches(msg, m.keys.Help):
		return m.handleShowHelp()
	}

	if m.layout == nil {
		return m, nil
	}

	switch {
	case key.Matches(msg, m.keys.ZoomIn):
		return m.handleZoom(m.timelineState.ZoomIn)
	case key.Matches(msg, m.keys.ZoomOut):
		return m.handleZoom(m.timelineState.ZoomOut)
	case key.Matches(msg, m.keys.ScrollLeft):
		return m.handleScroll(-1)
	case key.Matches(msg, m.keys.ScrollRight):
		return m.handleScroll(1)
	case key.Matches(msg, m.keys.ScrollToday):
		return m.handleScrollToday()
	case key.Matches(msg, m.keys.PrevTask):
		m.timelineState.MoveRow(-1, len(m.layout.Bars))
	case key.Matches(msg, m.keys.NextTask):
		m.timelineState.MoveRow(1, len(m.layout.Bars))
	case key.Matches(msg, m.keys.PrevProject):
		return m.handleSwitchProject(-1)
	case key.Matches(msg, m.keys.NextProject):
		return m.handleSwitchProject(1)
	case key.Matches(msg, m.keys.CycleFilter):
		return m.handleCycleFilter()
	}
	return m, nil
}

func (m Model) handleShowHelp() (tea.Model, tea.Cmd) {
	m.uiState.ToggleHelp()
	m.help.ShowAll = m.uiState.Mode() == state.HelpMode
	return m, nil
}

// handleZoom applies a zoom step and lays the chart out again
func (m Model) handleZoom(step func() bool) (tea.Model, tea.Cmd) {
	if !step() {
		limits := m.timelineState.Limits()
		m.notificationState.Add(state.LevelInfo,
			fmt.Sprintf("Zoom limit reached (%d-%d px per day)", limits.Min, limits.Max))
		return m, nil
	}
	m.relayout()
	return m, nil
}

// handleScroll moves the chart by a quarter of the viewport
func (m Model) handleScroll(direction int) (tea.Model, tea.Cmd) {
	step := max(m.viewportPx()/4, m.timelineState.ColumnWidth())
	m.timelineState.ScrollBy(direction*step, m.maxScroll())
	return m, nil
}

func (m Model) handleScrollToday() (tea.Model, tea.Cmd) {
	if !m.layout.TodayVisible {
		m.notificationState.Add(state.LevelInfo, "Today is before the project start")
		return m, nil
	}
	m.timelineState.SetScrollOffset(m.centeredToday(), m.maxScroll())
	return m, nil
}

// handleSwitchProject shows the next or previous project, wrapping around
func (m Model) handleSwitchProject(delta int) (tea.Model, tea.Cmd) {
	n := len(m.projects)
	if n < 2 {
		return m, nil
	}
	next := m.projects[((m.projectIndex()+delta)%n+n)%n]
	m.timelineState.SetQuery(next.ID)
	m.relayout()
	m.followToday()
	return m, nil
}

func (m Model) handleCycleFilter() (tea.Model, tea.Cmd) {
	f := m.timelineState.CycleFilter()
	slog.Debug("filter changed", "filter", string(f))
	m.relayout()
	return m, nil
}
