package state

// Mode represents the current interaction mode of the TUI.
type Mode int

const (
	NormalMode Mode = iota // Default timeline navigation
	HelpMode               // Full key binding reference
)

// UIState manages terminal dimensions and the interaction mode.
type UIState struct {
	// width is the current terminal width in characters
	width int

	// height is the current terminal height in characters
	height int

	// mode is the current interaction mode
	mode Mode
}

// NewUIState creates a new UIState with default values.
func NewUIState() *UIState {
	return &UIState{mode: NormalMode}
}

// Width returns the current terminal width.
func (s *UIState) Width() int {
	return s.width
}

// Height returns the current terminal height.
func (s *UIState) Height() int {
	return s.height
}

// SetSize updates the terminal dimensions.
func (s *UIState) SetSize(width, height int) {
	s.width = max(width, 0)
	s.height = max(height, 0)
}

// Ready reports whether the terminal size is known.
func (s *UIState) Ready() bool {
	return s.width > 0
}

// Mode returns the current interaction mode.
func (s *UIState) Mode() Mode {
	return s.mode
}

// SetMode updates the current interaction mode.
func (s *UIState) SetMode(mode Mode) {
	s.mode = mode
}

// ToggleHelp switches between the timeline and the help screen.
func (s *UIState) ToggleHelp() {
	if s.mode == HelpMode {
		s.mode = NormalMode
		return
	}
	s.mode = HelpMode
}

// ContentHeight returns the rows available for task bars.
// This is terminal height minus header, day header and footer, with a minimum of 1.
func (s *UIState) ContentHeight() int {
	const headerHeight = 4    // title, dates + progress, filter/zoom line, blank
	const dayHeaderHeight = 2 // month labels + day numbers
	const footerHeight = 2    // blank + help line
	return max(s.height-headerHeight-dayHeaderHeight-footerHeight, 1)
}

// ChartWidth returns the characters left for the chart after the task label column.
func (s *UIState) ChartWidth(labelWidth int) int {
	return max(s.width-labelWidth-1, 1)
}
