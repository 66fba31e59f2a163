package database

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/thenoetrevino/plazo/internal/config"
)

// Open returns the data store selected by cfg
func Open(ctx context.Context, cfg config.DataSourceConfig) (DataStore, error) {
	slog.Debug("opening data source", "kind", cfg.Kind, "path", cfg.Path)

	switch cfg.Kind {
	case config.SourceMock, "":
		return NewMockStore(), nil
	case config.SourceYAML:
		return OpenYAML(cfg.Path)
	case config.SourceSQLite:
		return OpenSQLite(ctx, cfg.Path)
	}
	return nil, fmt.Errorf("%w: %q", ErrUnknownSource, cfg.Kind)
}
