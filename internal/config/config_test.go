package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func TestDefaultKeyMappings(t *testing.T) {
	defaults := DefaultKeyMappings()

	if defaults.Quit != "q" {
		t.Errorf("Default Quit key = %s, want q", defaults.Quit)
	}
	if defaults.ZoomIn != "+" {
		t.Errorf("Default ZoomIn key = %s, want +", defaults.ZoomIn)
	}
	if defaults.ScrollToday != "t" {
		t.Errorf("Default ScrollToday key = %s, want t", defaults.ScrollToday)
	}
}

func TestLoadConfigWithoutFile(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	t.Setenv("PLAZO_THEME_FILE", "")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() without config file failed: %v", err)
	}

	if cfg.KeyMappings.Quit != "q" {
		t.Errorf("Loaded config Quit key = %s, want q (default)", cfg.KeyMappings.Quit)
	}
	if cfg.Timeline.DefaultColumnWidth != 40 {
		t.Errorf("DefaultColumnWidth = %d, want 40", cfg.Timeline.DefaultColumnWidth)
	}
	if cfg.DataSource.Kind != SourceMock {
		t.Errorf("DataSource.Kind = %s, want mock", cfg.DataSource.Kind)
	}
}

func TestLoadConfigWithFile(t *testing.T) {
	tempDir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", tempDir)
	t.Setenv("PLAZO_THEME_FILE", "")

	configDir := filepath.Join(tempDir, "plazo")
	if err := os.MkdirAll(configDir, 0o755); err != nil {
		t.Fatalf("Failed to create config dir: %v", err)
	}

	configContent := `key_mappings:
  quit: "x"
  zoom_in: "="
timeline:
  min_column_width: 10
  max_column_width: 60
data_source:
  kind: yaml
  path: /tmp/projects.yaml
`
	configPath := filepath.Join(configDir, "config.yaml")
	if err := os.WriteFile(configPath, []byte(configContent), 0o644); err != nil {
		t.Fatalf("Failed to write config: %v", err)
	}

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() with config file failed: %v", err)
	}

	if cfg.KeyMappings.Quit != "x" {
		t.Errorf("Loaded Quit key = %s, want x", cfg.KeyMappings.Quit)
	}
	if cfg.KeyMappings.ZoomIn != "=" {
		t.Errorf("Loaded ZoomIn key = %s, want =", cfg.KeyMappings.ZoomIn)
	}
	// Unspecified values should use defaults
	if cfg.KeyMappings.ZoomOut != "-" {
		t.Errorf("Loaded ZoomOut key = %s, want - (default)", cfg.KeyMappings.ZoomOut)
	}
	if cfg.Timeline.MaxColumnWidth != 60 {
		t.Errorf("MaxColumnWidth = %d, want 60", cfg.Timeline.MaxColumnWidth)
	}
	if cfg.Timeline.ZoomStep != 10 {
		t.Errorf("ZoomStep = %d, want 10 (default)", cfg.Timeline.ZoomStep)
	}
	if cfg.DataSource.Kind != SourceYAML || cfg.DataSource.Path != "/tmp/projects.yaml" {
		t.Errorf("DataSource = %+v, want yaml /tmp/projects.yaml", cfg.DataSource)
	}
	if cfg.ColorScheme.Accent == "" {
		t.Error("ColorScheme.Accent should be filled from the default preset")
	}
}

func TestLoadConfigRejectsInvalidZoomRange(t *testing.T) {
	tempDir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", tempDir)

	configDir := filepath.Join(tempDir, "plazo")
	if err := os.MkdirAll(configDir, 0o755); err != nil {
		t.Fatalf("Failed to create config dir: %v", err)
	}
	content := "timeline:\n  min_column_width: 50\n  max_column_width: 30\n"
	if err := os.WriteFile(filepath.Join(configDir, "config.yaml"), []byte(content), 0o644); err != nil {
		t.Fatalf("Failed to write config: %v", err)
	}

	_, err := Load()
	if !errors.Is(err, ErrInvalidConfig) {
		t.Fatalf("Load() error = %v, want ErrInvalidConfig", err)
	}
}

func TestLoadConfigRejectsUnknownDefaultFilter(t *testing.T) {
	tempDir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", tempDir)

	configDir := filepath.Join(tempDir, "plazo")
	if err := os.MkdirAll(configDir, 0o755); err != nil {
		t.Fatalf("Failed to create config dir: %v", err)
	}
	content := "timeline:\n  default_filter: blocked\n"
	if err := os.WriteFile(filepath.Join(configDir, "config.yaml"), []byte(content), 0o644); err != nil {
		t.Fatalf("Failed to write config: %v", err)
	}

	_, err := Load()
	if !errors.Is(err, ErrInvalidConfig) {
		t.Fatalf("Load() error = %v, want ErrInvalidConfig", err)
	}
}

func TestTimelineConfig_ValidateFilter(t *testing.T) {
	tc := DefaultTimelineConfig()
	for _, f := range []string{"all", "todo", "in-progress", "inprogress", "completed"} {
		tc.DefaultFilter = f
		if err := tc.Validate(); err != nil {
			t.Errorf("default_filter %q should validate: %v", f, err)
		}
	}
}

func TestSaveConfig(t *testing.T) {
	tempDir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", tempDir)
	t.Setenv("PLAZO_THEME_FILE", "")

	cfg := &Config{
		KeyMappings: KeyMappings{
			Quit:   "x",
			ZoomIn: "=",
		},
	}

	// Apply defaults to fill missing fields
	cfg.applyDefaults()

	if err := cfg.Save(); err != nil {
		t.Fatalf("Save() failed: %v", err)
	}

	configPath := filepath.Join(tempDir, "plazo", "config.yaml")
	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		t.Fatalf("Config file not created at %s", configPath)
	}

	cfg2, err := Load()
	if err != nil {
		t.Fatalf("Load() after Save() failed: %v", err)
	}

	if cfg2.KeyMappings.Quit != "x" {
		t.Errorf("Reloaded Quit key = %s, want x", cfg2.KeyMappings.Quit)
	}
	if cfg2.KeyMappings.ZoomIn != "=" {
		t.Errorf("Reloaded ZoomIn key = %s, want =", cfg2.KeyMappings.ZoomIn)
	}
}

func TestTimelineConfig_ClampColumnWidth(t *testing.T) {
	tc := DefaultTimelineConfig()

	tests := []struct{ in, want int }{
		{5, 20},
		{20, 20},
		{55, 55},
		{100, 100},
		{250, 100},
	}
	for _, tt := range tests {
		if got := tc.ClampColumnWidth(tt.in); got != tt.want {
			t.Errorf("ClampColumnWidth(%d) = %d, want %d", tt.in, got, tt.want)
		}
	}
}

func TestDataSourceConfig_Validate(t *testing.T) {
	if err := (DataSourceConfig{Kind: SourceMock}).Validate(); err != nil {
		t.Errorf("mock source should validate: %v", err)
	}
	if err := (DataSourceConfig{Kind: SourceYAML}).Validate(); !errors.Is(err, ErrInvalidConfig) {
		t.Errorf("yaml source without path error = %v, want ErrInvalidConfig", err)
	}
	if err := (DataSourceConfig{Kind: "postgres", Path: "x"}).Validate(); !errors.Is(err, ErrInvalidConfig) {
		t.Errorf("unknown kind error = %v, want ErrInvalidConfig", err)
	}
}

func TestDataSourceConfig_WithOverrides(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	base := DataSourceConfig{Kind: SourceYAML, Path: "/data/projects.yaml"}

	if got := base.WithOverrides("", ""); got != base {
		t.Errorf("no overrides changed config: %+v", got)
	}

	got := base.WithOverrides(SourceSQLite, "")
	if got.Kind != SourceSQLite || filepath.Base(got.Path) != "plazo.db" {
		t.Errorf("switching to sqlite should use the default database, got %+v", got)
	}

	got = base.WithOverrides("", "/tmp/other.yaml")
	if got.Kind != SourceYAML || got.Path != "/tmp/other.yaml" {
		t.Errorf("path override = %+v", got)
	}

	got = base.WithOverrides(SourceMock, "")
	if got.Kind != SourceMock || got.Path != "" {
		t.Errorf("mock override = %+v", got)
	}
}
