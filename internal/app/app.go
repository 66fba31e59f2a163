package app

import (
	"github.com/thenoetrevino/plazo/internal/config"
	"github.com/thenoetrevino/plazo/internal/database"
	timelineservice "github.com/thenoetrevino/plazo/internal/services/timeline"
	"github.com/thenoetrevino/plazo/internal/timeline"
)

// App holds all application services and provides dependency injection.
// This is the main application container that manages service lifecycles.
type App struct {
	// Data source the projects are read from
	store database.DataStore

	// Config is the loaded user configuration
	Config *config.Config

	// Engine computes bar geometry; shared so every surface uses one clock
	Engine *timeline.Engine

	// Service layer (business logic)
	TimelineService timelineservice.Service
}

// New creates a new App with all services initialized.
// A nil cfg uses the defaults. Engine options override the configured ones.
func New(store database.DataStore, cfg *config.Config, opts ...timeline.Option) *App {
	if cfg == nil {
		cfg = config.Default()
	}
	engineOpts := append([]timeline.Option{timeline.WithMinBarWidth(cfg.Timeline.MinBarWidth)}, opts...)
	engine := timeline.NewEngine(engineOpts...)

	return &App{
		store:           store,
		Config:          cfg,
		Engine:          engine,
		TimelineService: timelineservice.NewService(store, engine),
	}
}

// Store returns the underlying data source.
func (a *App) Store() database.DataStore {
	return a.store
}

// Close releases the data source.
func (a *App) Close() error {
	if a.store == nil {
		return nil
	}
	return a.store.Close()
}
