package config

import (
	"errors"
	"fmt"

	"github.com/thenoetrevino/plazo/internal/models"
)

// ErrInvalidConfig is returned when configuration values contradict each other
var ErrInvalidConfig = errors.New("invalid configuration")

// TimelineConfig controls zoom bounds and bar geometry
type TimelineConfig struct {
	MinColumnWidth     int    `yaml:"min_column_width"`     // narrowest day column in px
	MaxColumnWidth     int    `yaml:"max_column_width"`     // widest day column in px
	ZoomStep           int    `yaml:"zoom_step"`            // px added or removed per zoom key press
	DefaultColumnWidth int    `yaml:"default_column_width"` // starting zoom
	MinBarWidth        int    `yaml:"min_bar_width"`        // narrowest bar in px
	PixelsPerCell      int    `yaml:"pixels_per_cell"`      // px represented by one terminal cell
	DefaultFilter      string `yaml:"default_filter"`       // all, todo, in-progress, completed
}

// DefaultTimelineConfig returns the stock zoom and bar settings
func DefaultTimelineConfig() TimelineConfig {
	return TimelineConfig{
		MinColumnWidth:     20,
		MaxColumnWidth:     100,
		ZoomStep:           10,
		DefaultColumnWidth: 40,
		MinBarWidth:        4,
		PixelsPerCell:      10,
		DefaultFilter:      "all",
	}
}

func (t *TimelineConfig) applyDefaults() {
	defaults := DefaultTimelineConfig()

	fill := func(dst *int, src int) {
		if *dst <= 0 {
			*dst = src
		}
	}

	fill(&t.MinColumnWidth, defaults.MinColumnWidth)
	fill(&t.MaxColumnWidth, defaults.MaxColumnWidth)
	fill(&t.ZoomStep, defaults.ZoomStep)
	fill(&t.DefaultColumnWidth, defaults.DefaultColumnWidth)
	fill(&t.MinBarWidth, defaults.MinBarWidth)
	fill(&t.PixelsPerCell, defaults.PixelsPerCell)
	if t.DefaultFilter == "" {
		t.DefaultFilter = defaults.DefaultFilter
	}
}

// Validate checks that the zoom range is usable and the default filter is known
func (t TimelineConfig) Validate() error {
	if t.MinColumnWidth <= 0 {
		return fmt.Errorf("%w: min_column_width must be positive, got %d", ErrInvalidConfig, t.MinColumnWidth)
	}
	if t.MaxColumnWidth < t.MinColumnWidth {
		return fmt.Errorf("%w: max_column_width (%d) is below min_column_width (%d)",
			ErrInvalidConfig, t.MaxColumnWidth, t.MinColumnWidth)
	}
	if t.DefaultColumnWidth < t.MinColumnWidth || t.DefaultColumnWidth > t.MaxColumnWidth {
		return fmt.Errorf("%w: default_column_width %d is outside [%d, %d]",
			ErrInvalidConfig, t.DefaultColumnWidth, t.MinColumnWidth, t.MaxColumnWidth)
	}
	if t.ZoomStep <= 0 {
		return fmt.Errorf("%w: zoom_step must be positive, got %d", ErrInvalidConfig, t.ZoomStep)
	}
	if _, err := models.ParseFilter(t.DefaultFilter); err != nil {
		return fmt.Errorf("%w: default_filter: %w", ErrInvalidConfig, err)
	}
	return nil
}

// ClampColumnWidth forces a column width into the configured zoom range
func (t TimelineConfig) ClampColumnWidth(px int) int {
	return min(max(px, t.MinColumnWidth), t.MaxColumnWidth)
}
