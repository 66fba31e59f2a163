package config

import (
	"fmt"
	"os"
	"path/filepath"
)

// Data source kinds
const (
	SourceMock   = "mock"
	SourceYAML   = "yaml"
	SourceSQLite = "sqlite"
)

// DataSourceConfig selects where projects are loaded from
type DataSourceConfig struct {
	Kind string `yaml:"kind"` // mock, yaml or sqlite
	Path string `yaml:"path"` // file for yaml and sqlite sources
}

func (d *DataSourceConfig) applyDefaults() {
	if d.Kind == "" {
		d.Kind = SourceMock
	}
	if d.Kind == SourceSQLite && d.Path == "" {
		if dir, err := DataDir(); err == nil {
			d.Path = filepath.Join(dir, "plazo.db")
		}
	}
}

// Validate checks the kind and that file-backed kinds have a path
func (d DataSourceConfig) Validate() error {
	switch d.Kind {
	case SourceMock:
		return nil
	case SourceYAML, SourceSQLite:
		if d.Path == "" {
			return fmt.Errorf("%w: data_source.path is required for %s", ErrInvalidConfig, d.Kind)
		}
		return nil
	}
	return fmt.Errorf("%w: unknown data_source.kind '%s' (must be: mock, yaml, sqlite)", ErrInvalidConfig, d.Kind)
}

// DataDir returns ~/.plazo, where the database and logs live
func DataDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get home directory: %w", err)
	}
	return filepath.Join(home, ".plazo"), nil
}

// WithOverrides returns a copy with a non-empty kind or path replaced and
// defaults reapplied. A new kind without a path drops the configured path.
func (d DataSourceConfig) WithOverrides(kind, path string) DataSourceConfig {
	out := d
	if kind != "" && kind != d.Kind {
		out.Kind = kind
		out.Path = ""
	}
	if path != "" {
		out.Path = path
	}
	out.applyDefaults()
	return out
}
