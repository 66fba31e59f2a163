// Package tui implements the interactive timeline view.
package tui

import (
	"context"

	"charm.land/bubbles/v2/help"
	tea "charm.land/bubbletea/v2"
	"github.com/thenoetrevino/plazo/internal/app"
	"github.com/thenoetrevino/plazo/internal/config"
	"github.com/thenoetrevino/plazo/internal/database"
	"github.com/thenoetrevino/plazo/internal/models"
	timelineservice "github.com/thenoetrevino/plazo/internal/services/timeline"
	"github.com/thenoetrevino/plazo/internal/timeline"
	"github.com/thenoetrevino/plazo/internal/tui/state"
)

// labelWidth is the width of the task title column
const labelWidth = 24

// projectsLoadedMsg carries the project snapshot read at startup
type projectsLoadedMsg struct {
	projects []*models.Project
	err      error
}

// Model represents the application state for the TUI
type Model struct {
	ctx    context.Context
	app    *app.App
	config *config.Config
	keys   keyMap
	help   help.Model

	// service lays out the loaded snapshot; nil until projects arrive
	service timelineservice.Service

	projects []*models.Project
	layout   *timelineservice.LayoutResult

	// loadErr is shown in place of the chart when loading or layout fails
	loadErr error

	// pendingToday defers scroll-to-today until the terminal size is known
	pendingToday bool

	timelineState     *state.TimelineState
	uiState           *state.UIState
	notificationState *state.NotificationState
}

// InitialModel creates a model that shows the project matching query.
// Projects are loaded by Init.
func InitialModel(ctx context.Context, a *app.App, query string) Model {
	cfg := a.Config
	tl := cfg.Timeline

	filter, err := models.ParseFilter(tl.DefaultFilter)
	if err != nil {
		filter = models.FilterAll
	}

	limits := state.ZoomLimits{Min: tl.MinColumnWidth, Max: tl.MaxColumnWidth, Step: tl.ZoomStep}

	return Model{
		ctx:               ctx,
		app:               a,
		config:            cfg,
		keys:              newKeyMap(cfg.KeyMappings),
		help:              help.New(),
		timelineState:     state.NewTimelineState(query, tl.DefaultColumnWidth, limits, filter),
		uiState:           state.NewUIState(),
		notificationState: state.NewNotificationState(),
	}
}

// Init loads the projects once; the view works on that snapshot
func (m Model) Init() tea.Cmd {
	ctx, svc := m.ctx, m.app.TimelineService
	return func() tea.Msg {
		projects, err := svc.ListProjects(ctx)
		return projectsLoadedMsg{projects: projects, err: err}
	}
}

// setProjects installs the snapshot and lays out the first project
func (m *Model) setProjects(projects []*models.Project) {
	m.projects = projects
	m.service = timelineservice.NewService(database.NewMemoryStore(projects), m.app.Engine)
	m.relayout()
	m.followToday()
}

// relayout recomputes the geometry from the current state
func (m *Model) relayout() {
	if m.service == nil {
		return
	}
	res, err := m.service.Layout(m.ctx, timelineservice.LayoutRequest{
		Query:       m.timelineState.Query(),
		ColumnWidth: m.timelineState.ColumnWidth(),
		Filter:      m.timelineState.Filter(),
	})
	if err != nil {
		m.layout = nil
		m.loadErr = err
		return
	}
	m.layout = res
	m.loadErr = nil
	m.timelineState.MoveRow(0, len(res.Bars))
	m.timelineState.SetScrollOffset(m.timelineState.ScrollOffset(), m.maxScroll())
}

// followToday centres today in the viewport, or waits for a window size
func (m *Model) followToday() {
	if m.layout == nil || !m.layout.TodayVisible {
		m.pendingToday = false
		return
	}
	if !m.uiState.Ready() {
		m.pendingToday = true
		return
	}
	m.pendingToday = false
	m.timelineState.SetScrollOffset(m.centeredToday(), m.maxScroll())
}

func (m Model) centeredToday() int {
	return timeline.CenteredScroll(m.layout.TodayOffset, m.viewportPx())
}

// viewportPx is the visible chart width in layout pixels
func (m Model) viewportPx() int {
	return m.uiState.ChartWidth(labelWidth) * m.pixelsPerCell()
}

func (m Model) pixelsPerCell() int {
	return max(m.config.Timeline.PixelsPerCell, 1)
}

// maxScroll is the last scroll position that still fills the viewport
func (m Model) maxScroll() int {
	if m.layout == nil {
		return 0
	}
	return max(m.layout.TotalWidth-m.viewportPx(), 0)
}

// projectIndex returns the index of the displayed project in the snapshot
func (m Model) projectIndex() int {
	if m.layout == nil {
		return 0
	}
	for i, p := range m.projects {
		if p.ID == m.layout.Project.ID {
			return i
		}
	}
	return 0
}

// selectedTask returns the highlighted task, or nil
func (m Model) selectedTask() *models.Task {
	if m.layout == nil {
		return nil
	}
	row := m.timelineState.SelectedRow()
	if row < 0 || row >= len(m.layout.Bars) {
		return nil
	}
	return m.layout.Bars[row].Task
}

// rowOffset keeps the selected row inside the visible window
func (m Model) rowOffset(maxRows int) int {
	row := m.timelineState.SelectedRow()
	if maxRows <= 0 || row < maxRows {
		return 0
	}
	return row - maxRows + 1
}
