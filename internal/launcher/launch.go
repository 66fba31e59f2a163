package launcher

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	tea "charm.land/bubbletea/v2"
	"github.com/thenoetrevino/plazo/internal/app"
	"github.com/thenoetrevino/plazo/internal/config"
	"github.com/thenoetrevino/plazo/internal/database"
	"github.com/thenoetrevino/plazo/internal/logging"
	"github.com/thenoetrevino/plazo/internal/tui/core"
)

// Options selects the data source and the project shown first
type Options struct {
	Source   string
	DataPath string
	Query    string
}

// Launch starts the TUI application
func Launch(opts Options) error {
	// Initialize logging to file before anything else
	if err := logging.Init(); err != nil {
		return fmt.Errorf("failed to initialize logging: %w", err)
	}

	// Create root context with signal handling for graceful shutdown
	ctx, cancel := signal.NotifyContext(
		context.Background(),
		os.Interrupt,
		syscall.SIGTERM,
	)
	defer cancel()

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}
	cfg.DataSource = cfg.DataSource.WithOverrides(opts.Source, opts.DataPath)
	if err := cfg.DataSource.Validate(); err != nil {
		return err
	}

	store, err := database.Open(ctx, cfg.DataSource)
	if err != nil {
		return fmt.Errorf("failed to open %s data source: %w", cfg.DataSource.Kind, err)
	}
	slog.Info("starting tui", "source", cfg.DataSource.Kind, "path", cfg.DataSource.Path, "query", opts.Query)

	application := app.New(store, cfg)
	// data source cleanup
	defer func() {
		if err := application.Close(); err != nil {
			slog.Error("error closing data source", "error", err)
		}
	}()

	return Run(ctx, application, opts.Query)
}

// Run drives the Bubble Tea program until it exits or ctx is cancelled
func Run(ctx context.Context, application *app.App, query string, progOpts ...tea.ProgramOption) error {
	tuiApp := core.New(ctx, application, query)
	p := tea.NewProgram(tuiApp, append([]tea.ProgramOption{tea.WithContext(ctx)}, progOpts...)...)

	// goroutine to monitor cancellation
	errChan := make(chan error, 1)
	go func() {
		_, err := p.Run()
		errChan <- err
	}()

	// Wait for program completion or cancellation
	select {
	case err := <-errChan:
		if err != nil {
			return fmt.Errorf("error running program: %w", err)
		}
	case <-ctx.Done():
		slog.Info("shutdown signal received, cleaning up")
		// let the program restore the terminal before returning
		<-errChan
	}

	return nil
}
