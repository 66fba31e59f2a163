package state

import "github.com/thenoetrevino/plazo/internal/models"

// ZoomLimits bounds the column width the user can zoom to
type ZoomLimits struct {
	Min  int
	Max  int
	Step int
}

// DefaultZoomLimits matches the stock timeline configuration
var DefaultZoomLimits = ZoomLimits{Min: 20, Max: 100, Step: 10}

// filterCycle is the order CycleFilter walks through
var filterCycle = []models.Filter{
	models.FilterAll,
	models.FilterTodo,
	models.FilterInProgress,
	models.FilterCompleted,
}

// TimelineState owns the mutable view-model of a timeline session.
// The layout engine reads from it and never writes back.
type TimelineState struct {
	// query identifies the displayed project, as typed or as a project id
	query string

	// columnWidth is the width of one day in pixels
	columnWidth int
	limits      ZoomLimits

	// filter hides tasks whose status does not match
	filter models.Filter

	// scrollOffset is the horizontal scroll position in pixels
	scrollOffset int

	// selectedRow is the index of the highlighted bar in the filtered list
	selectedRow int
}

// NewTimelineState creates a state at the given zoom. The width is clamped
// into limits; a zero Step falls back to the default step.
func NewTimelineState(query string, columnWidth int, limits ZoomLimits, filter models.Filter) *TimelineState {
	if limits.Step <= 0 {
		limits.Step = DefaultZoomLimits.Step
	}
	if limits.Min <= 0 || limits.Max < limits.Min {
		limits = DefaultZoomLimits
	}
	if filter == "" {
		filter = models.FilterAll
	}
	s := &TimelineState{
		query:  query,
		limits: limits,
		filter: filter,
	}
	s.columnWidth = s.clamp(columnWidth)
	return s
}

// Query returns the current project query
func (s *TimelineState) Query() string {
	return s.query
}

// SetQuery switches project. Selection and scroll reset when the query changes.
func (s *TimelineState) SetQuery(query string) {
	if query == s.query {
		return
	}
	s.query = query
	s.selectedRow = 0
	s.scrollOffset = 0
}

// ColumnWidth returns the width of one day in pixels
func (s *TimelineState) ColumnWidth() int {
	return s.columnWidth
}

// Limits returns the zoom bounds
func (s *TimelineState) Limits() ZoomLimits {
	return s.limits
}

// ZoomIn widens the day columns by one step. Returns false at the maximum.
func (s *TimelineState) ZoomIn() bool {
	return s.setColumnWidth(s.columnWidth + s.limits.Step)
}

// ZoomOut narrows the day columns by one step. Returns false at the minimum.
func (s *TimelineState) ZoomOut() bool {
	return s.setColumnWidth(s.columnWidth - s.limits.Step)
}

// setColumnWidth applies a clamped width and rescales the scroll position so
// the same day stays at the left edge.
func (s *TimelineState) setColumnWidth(width int) bool {
	width = s.clamp(width)
	if width == s.columnWidth {
		return false
	}
	s.scrollOffset = s.scrollOffset * width / s.columnWidth
	s.columnWidth = width
	return true
}

func (s *TimelineState) clamp(width int) int {
	return min(max(width, s.limits.Min), s.limits.Max)
}

// Filter returns the active status filter
func (s *TimelineState) Filter() models.Filter {
	return s.filter
}

// SetFilter replaces the filter and resets the selected row
func (s *TimelineState) SetFilter(f models.Filter) {
	if f == s.filter {
		return
	}
	s.filter = f
	s.selectedRow = 0
}

// CycleFilter advances all → todo → in-progress → completed → all
func (s *TimelineState) CycleFilter() models.Filter {
	next := models.FilterAll
	for i, f := range filterCycle {
		if f == s.filter {
			next = filterCycle[(i+1)%len(filterCycle)]
			break
		}
	}
	s.SetFilter(next)
	return s.filter
}

// ScrollOffset returns the horizontal scroll position in pixels
func (s *TimelineState) ScrollOffset() int {
	return s.scrollOffset
}

// SetScrollOffset sets the scroll position, clamped to [0, maxOffset]
func (s *TimelineState) SetScrollOffset(offset, maxOffset int) {
	s.scrollOffset = min(max(offset, 0), max(maxOffset, 0))
}

// ScrollBy moves the scroll position by delta pixels within [0, maxOffset].
// Returns false when the position did not change.
func (s *TimelineState) ScrollBy(delta, maxOffset int) bool {
	before := s.scrollOffset
	s.SetScrollOffset(s.scrollOffset+delta, maxOffset)
	return s.scrollOffset != before
}

// SelectedRow returns the index of the highlighted bar
func (s *TimelineState) SelectedRow() int {
	return s.selectedRow
}

// MoveRow moves the selection by delta within [0, rows-1]
func (s *TimelineState) MoveRow(delta, rows int) {
	if rows <= 0 {
		s.selectedRow = 0
		return
	}
	s.selectedRow = min(max(s.selectedRow+delta, 0), rows-1)
}
