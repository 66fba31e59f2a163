package config

// KeyMappings defines all configurable key bindings
type KeyMappings struct {
	// Zoom
	ZoomIn  string `yaml:"zoom_in"`
	ZoomOut string `yaml:"zoom_out"`

	// Navigation
	ScrollLeft  string `yaml:"scroll_left"`
	ScrollRight string `yaml:"scroll_right"`
	ScrollToday string `yaml:"scroll_today"`
	PrevTask    string `yaml:"prev_task"`
	NextTask    string `yaml:"next_task"`
	NextProject string `yaml:"next_project"`
	PrevProject string `yaml:"prev_project"`

	// View
	CycleFilter string `yaml:"cycle_filter"`

	// Other
	ShowHelp string `yaml:"show_help"`
	Quit     string `yaml:"quit"`
}

// DefaultKeyMappings returns the default key mappings
func DefaultKeyMappings() KeyMappings {
	return KeyMappings{
		// Zoom
		ZoomIn:  "+",
		ZoomOut: "-",

		// Navigation
		ScrollLeft:  "h",
		ScrollRight: "l",
		ScrollToday: "t",
		PrevTask:    "k",
		NextTask:    "j",
		NextProject: "}",
		PrevProject: "{",

		// View
		CycleFilter: "f",

		// Other
		ShowHelp: "?",
		Quit:     "q",
	}
}

// applyDefaults fills in missing key mappings with defaults
func (k *KeyMappings) applyDefaults() {
	defaults := DefaultKeyMappings()

	fill := func(dst *string, src string) {
		if *dst == "" {
			*dst = src
		}
	}

	fill(&k.ZoomIn, defaults.ZoomIn)
	fill(&k.ZoomOut, defaults.ZoomOut)
	fill(&k.ScrollLeft, defaults.ScrollLeft)
	fill(&k.ScrollRight, defaults.ScrollRight)
	fill(&k.ScrollToday, defaults.ScrollToday)
	fill(&k.PrevTask, defaults.PrevTask)
	fill(&k.NextTask, defaults.NextTask)
	fill(&k.NextProject, defaults.NextProject)
	fill(&k.PrevProject, defaults.PrevProject)
	fill(&k.CycleFilter, defaults.CycleFilter)
	fill(&k.ShowHelp, defaults.ShowHelp)
	fill(&k.Quit, defaults.Quit)
}
