package cli

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/thenoetrevino/plazo/internal/app"
	"github.com/thenoetrevino/plazo/internal/config"
	"github.com/thenoetrevino/plazo/internal/database"
)

// Options carries the global flags that override the configured data source
type Options struct {
	Source   string
	DataPath string
}

// CLI represents the CLI application context
type CLI struct {
	App *app.App // Application container with services
	ctx context.Context

	// borrowed is set when App was injected and is closed by its owner
	borrowed bool
}

// NewCLI loads configuration, opens the data source and wires the services
func NewCLI(ctx context.Context, opts Options) (*CLI, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}

	cfg.DataSource = cfg.DataSource.WithOverrides(opts.Source, opts.DataPath)
	if err := cfg.DataSource.Validate(); err != nil {
		return nil, err
	}

	store, err := database.Open(ctx, cfg.DataSource)
	if err != nil {
		return nil, fmt.Errorf("failed to open %s data source: %w", cfg.DataSource.Kind, err)
	}
	slog.Debug("cli initialised", "source", cfg.DataSource.Kind, "path", cfg.DataSource.Path)

	return &CLI{
		App: app.New(store, cfg),
		ctx: ctx,
	}, nil
}

// Context returns the context the CLI was created with
func (c *CLI) Context() context.Context {
	return c.ctx
}

// Close cleans up CLI resources
func (c *CLI) Close() error {
	if c.borrowed {
		return nil
	}
	return c.App.Close()
}
