package app

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/atheler/klang-sub000/internal/config"
	"github.com/atheler/klang-sub000/internal/ctxlog"
	"github.com/atheler/klang-sub000/internal/registry"
)

// App encapsulates the application's dependencies, configuration, and lifecycle.
type App struct {
	outW     io.Writer
	logger   *slog.Logger
	registry *registry.Registry
	model    *config.Model
	cfg      *Config
}

// NewApp is the constructor for the main application. It returns a fully
// initialized App instance, including its own isolated logger and registry.
func NewApp(outW io.Writer, cfg *Config, loader config.Loader, modules ...registry.Module) *App {
	logger := newLogger(cfg.LogLevel, cfg.LogFormat, outW)
	ctx := ctxlog.WithLogger(context.Background(), logger)
	logger.Debug("Logger configured successfully.")

	// Load the patch into the format-agnostic model first.
	model, err := loader.Load(ctx, cfg.PatchPath)
	if err != nil {
		// A failure to load the patch is a fatal startup error.
		panic(fmt.Errorf("failed to load patch: %w", err))
	}
	logger.Debug("Patch loaded and translated into unified model.")

	// Create and populate the registry with block factories.
	reg := registry.New()
	if len(modules) == 0 {
		modules = coreModules
	}
	for _, mod := range modules {
		mod.Register(reg)
	}
	logger.Debug("All block modules registered.", "count", len(modules), "types", reg.Types())

	return &App{
		outW:     outW,
		logger:   logger,
		registry: reg,
		model:    model,
		cfg:      cfg,
	}
}

// Registry returns the application's registry. This is primarily for testing.
func (a *App) Registry() *registry.Registry {
	return a.registry
}

// Model returns the loaded patch model. This is primarily for testing.
func (a *App) Model() *config.Model {
	return a.model
}
