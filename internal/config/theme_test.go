package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestThemeFileLoading(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	themeContent := []byte(`theme:
  accent: "#FF0000"
  overdue: "#00FF00"
  in_progress: "#0000FF"
`)
	themePath := filepath.Join(t.TempDir(), "plazo-theme.yaml")
	if err := os.WriteFile(themePath, themeContent, 0o644); err != nil {
		t.Fatalf("Failed to write theme file: %v", err)
	}
	t.Setenv("PLAZO_THEME_FILE", themePath)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Failed to load config: %v", err)
	}

	if cfg.ColorScheme.Accent != "#FF0000" {
		t.Errorf("Expected accent to be #FF0000, got %s", cfg.ColorScheme.Accent)
	}
	if cfg.ColorScheme.Overdue != "#00FF00" {
		t.Errorf("Expected overdue to be #00FF00, got %s", cfg.ColorScheme.Overdue)
	}
	if cfg.ColorScheme.InProgress != "#0000FF" {
		t.Errorf("Expected in_progress to be #0000FF, got %s", cfg.ColorScheme.InProgress)
	}

	// Verify other colors still have defaults
	if cfg.ColorScheme.Completed == "" {
		t.Error("Expected completed color to have default value")
	}
}

func TestPresetDefaults(t *testing.T) {
	cs := ColorScheme{Preset: "monochrome"}
	cs.ApplyDefaults()

	if cs.Accent != "#FFFFFF" {
		t.Errorf("monochrome accent = %s, want #FFFFFF", cs.Accent)
	}

	cs = ColorScheme{Preset: "wave", Accent: "#123456"}
	cs.ApplyDefaults()
	if cs.Accent != "#123456" {
		t.Errorf("explicit accent overwritten: %s", cs.Accent)
	}
	if cs.Background != "#1F1F28" {
		t.Errorf("wave background = %s, want #1F1F28", cs.Background)
	}
}
