// Package huhforms builds the interactive forms used outside the main TUI.
package huhforms

import (
	"fmt"

	"charm.land/bubbles/v2/key"
	"charm.land/huh/v2"
	"github.com/thenoetrevino/plazo/internal/config/colors"
	"github.com/thenoetrevino/plazo/internal/models"
)

// ProjectOptions lists one select option per project, keyed by project id
func ProjectOptions(projects []*models.Project) []huh.Option[string] {
	options := make([]huh.Option[string], 0, len(projects))
	for _, p := range projects {
		label := fmt.Sprintf("%s  %s → %s  (%d tasks)", p.Name, p.StartDate, p.EndDate, p.TaskCount())
		options = append(options, huh.NewOption(label, p.ID))
	}
	return options
}

// ProjectPicker creates a single select form that writes the chosen project id
// into selected. A non-empty selected value preselects that project.
func ProjectPicker(projects []*models.Project, selected *string, colorScheme colors.ColorScheme) *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[string]().
				Title("Project").
				Description("Choose the timeline to show").
				Options(ProjectOptions(projects)...).
				Height(min(len(projects)+2, 12)).
				Value(selected),
		),
	).
		WithTheme(CreatePlazoTheme(colorScheme)).
		WithKeyMap(PickerKeyMap()).
		WithShowHelp(true)
}

// PickerKeyMap extends the default keymap so esc and q also abort the picker.
func PickerKeyMap() *huh.KeyMap {
	keymap := huh.NewDefaultKeyMap()

	keymap.Quit = key.NewBinding(
		key.WithKeys("ctrl+c", "esc", "q"),
		key.WithHelp("esc / q", "cancel"),
	)

	return keymap
}
