package tui

import (
	"charm.land/bubbles/v2/key"
	"github.com/thenoetrevino/plazo/internal/config"
)

// keyMap holds the timeline key bindings built from the user's key mappings
type keyMap struct {
	ZoomIn      key.Binding
	ZoomOut     key.Binding
	ScrollLeft  key.Binding
	ScrollRight key.Binding
	ScrollToday key.Binding
	PrevTask    key.Binding
	NextTask    key.Binding
	PrevProject key.Binding
	NextProject key.Binding
	CycleFilter key.Binding
	Help        key.Binding
	Quit        key.Binding
}

func newKeyMap(km config.KeyMappings) keyMap {
	return keyMap{
		ZoomIn: key.NewBinding(
			key.WithKeys(km.ZoomIn, "="),
			key.WithHelp(km.ZoomIn, "zoom in"),
		),
		ZoomOut: key.NewBinding(
			key.WithKeys(km.ZoomOut, "_"),
			key.WithHelp(km.ZoomOut, "zoom out"),
		),
		ScrollLeft: key.NewBinding(
			key.WithKeys(km.ScrollLeft, "left"),
			key.WithHelp(km.ScrollLeft+"/←", "scroll left"),
		),
		ScrollRight: key.NewBinding(
			key.WithKeys(km.ScrollRight, "right"),
			key.WithHelp(km.ScrollRight+"/→", "scroll right"),
		),
		ScrollToday: key.NewBinding(
			key.WithKeys(km.ScrollToday),
			key.WithHelp(km.ScrollToday, "today"),
		),
		PrevTask: key.NewBinding(
			key.WithKeys(km.PrevTask, "up"),
			key.WithHelp(km.PrevTask+"/↑", "previous task"),
		),
		NextTask: key.NewBinding(
			key.WithKeys(km.NextTask, "down"),
			key.WithHelp(km.NextTask+"/↓", "next task"),
		),
		PrevProject: key.NewBinding(
			key.WithKeys(km.PrevProject),
			key.WithHelp(km.PrevProject, "previous project"),
		),
		NextProject: key.NewBinding(
			key.WithKeys(km.NextProject),
			key.WithHelp(km.NextProject, "next project"),
		),
		CycleFilter: key.NewBinding(
			key.WithKeys(km.CycleFilter),
			key.WithHelp(km.CycleFilter, "filter"),
		),
		Help: key.NewBinding(
			key.WithKeys(km.ShowHelp),
			key.WithHelp(km.ShowHelp, "help"),
		),
		Quit: key.NewBinding(
			key.WithKeys(km.Quit, "ctrl+c"),
			key.WithHelp(km.Quit, "quit"),
		),
	}
}

// ShortHelp implements help.KeyMap
func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.ZoomIn, k.ZoomOut, k.ScrollToday, k.CycleFilter, k.NextProject, k.Help, k.Quit}
}

// FullHelp implements help.KeyMap
func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.ZoomIn, k.ZoomOut, k.CycleFilter},
		{k.ScrollLeft, k.ScrollRight, k.ScrollToday},
		{k.PrevTask, k.NextTask, k.PrevProject, k.NextProject},
		{k.Help, k.Quit},
	}
}
