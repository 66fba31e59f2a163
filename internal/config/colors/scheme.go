package colors

// ColorScheme defines all configurable color values
type ColorScheme struct {
	// Preset name (e.g., "default", "monochrome", "wave")
	Preset string `yaml:"preset"`

	// Primary accent color (used for selections, titles, highlights)
	Accent string `yaml:"accent"`

	// Background colors
	Background string `yaml:"background"`
	Weekend    string `yaml:"weekend"`
	Today      string `yaml:"today"`
	GridLine   string `yaml:"grid_line"`

	// Bar colors by status class
	Completed  string `yaml:"completed"`
	InProgress string `yaml:"in_progress"`
	Overdue    string `yaml:"overdue"`

	// Bar colors by priority (todo bars)
	HighPriority   string `yaml:"high_priority"`
	MediumPriority string `yaml:"medium_priority"`
	LowPriority    string `yaml:"low_priority"`

	// Selection
	SelectedBg string `yaml:"selected_bg"`

	// Text colors
	Title  string `yaml:"title"`
	Subtle string `yaml:"subtle"` // Muted/placeholder text
	Normal string `yaml:"normal"`

	// Notification colors (foreground/background pairs)
	InfoFg    string `yaml:"info_fg"`
	InfoBg    string `yaml:"info_bg"`
	WarningFg string `yaml:"warning_fg"`
	WarningBg string `yaml:"warning_bg"`
	ErrorFg   string `yaml:"error_fg"`
	ErrorBg   string `yaml:"error_bg"`
}

// GetPreset returns a preset color scheme by name
func GetPreset(name string) *ColorScheme {
	switch name {
	case "monochrome":
		return Monochrome()
	case "wave":
		return Wave()
	default:
		return Default()
	}
}

// PresetNames lists the built-in presets
func PresetNames() []string {
	return []string{"default", "monochrome", "wave"}
}

// ApplyDefaults fills in missing color values using the preset as base
// If preset is specified, loads that preset first, then overrides with custom values
func (c *ColorScheme) ApplyDefaults() {
	preset := GetPreset(c.Preset)

	fill := func(dst *string, src string) {
		if *dst == "" {
			*dst = src
		}
	}

	fill(&c.Accent, preset.Accent)
	fill(&c.Background, preset.Background)
	fill(&c.Weekend, preset.Weekend)
	fill(&c.Today, preset.Today)
	fill(&c.GridLine, preset.GridLine)
	fill(&c.Completed, preset.Completed)
	fill(&c.InProgress, preset.InProgress)
	fill(&c.Overdue, preset.Overdue)
	fill(&c.HighPriority, preset.HighPriority)
	fill(&c.MediumPriority, preset.MediumPriority)
	fill(&c.LowPriority, preset.LowPriority)
	fill(&c.SelectedBg, preset.SelectedBg)
	fill(&c.Title, preset.Title)
	fill(&c.Subtle, preset.Subtle)
	fill(&c.Normal, preset.Normal)
	fill(&c.InfoFg, preset.InfoFg)
	fill(&c.InfoBg, preset.InfoBg)
	fill(&c.WarningFg, preset.WarningFg)
	fill(&c.WarningBg, preset.WarningBg)
	fill(&c.ErrorFg, preset.ErrorFg)
	fill(&c.ErrorBg, preset.ErrorBg)
}

// MergeFrom overrides colors with every non-empty value of other
func (c *ColorScheme) MergeFrom(other ColorScheme) {
	merge := func(dst *string, src string) {
		if src != "" {
			*dst = src
		}
	}

	merge(&c.Preset, other.Preset)
	merge(&c.Accent, other.Accent)
	merge(&c.Background, other.Background)
	merge(&c.Weekend, other.Weekend)
	merge(&c.Today, other.Today)
	merge(&c.GridLine, other.GridLine)
	merge(&c.Completed, other.Completed)
	merge(&c.InProgress, other.InProgress)
	merge(&c.Overdue, other.Overdue)
	merge(&c.HighPriority, other.HighPriority)
	merge(&c.MediumPriority, other.MediumPriority)
	merge(&c.LowPriority, other.LowPriority)
	merge(&c.SelectedBg, other.SelectedBg)
	merge(&c.Title, other.Title)
	merge(&c.Subtle, other.Subtle)
	merge(&c.Normal, other.Normal)
	merge(&c.InfoFg, other.InfoFg)
	merge(&c.InfoBg, other.InfoBg)
	merge(&c.WarningFg, other.WarningFg)
	merge(&c.WarningBg, other.WarningBg)
	merge(&c.ErrorFg, other.ErrorFg)
	merge(&c.ErrorBg, other.ErrorBg)
}
