package app

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"

	"github.com/specialistvlad/cellgrid/internal/ctxlog"
	"github.com/specialistvlad/cellgrid/internal/engine"
	"github.com/specialistvlad/cellgrid/internal/seed"
)

// App encapsulates the application's dependencies, configuration, and lifecycle.
type App struct {
	outW       io.Writer
	logger     *slog.Logger
	config     *Config
	engine     *engine.Engine
	httpServer *http.Server
}

// NewApp is the constructor for the main application. It builds the grid
// and loads the seed files. Terminal output goes to outW and logs to logW.
func NewApp(outW, logW io.Writer, config *Config) (*App, error) {
	logger := newLogger(config.LogLevel, config.LogFormat, logW)
	ctx := ctxlog.WithLogger(context.Background(), logger)
	logger.Debug("Logger configured successfully.")

	a := &App{
		outW:   outW,
		logger: logger,
		config: config,
	}
	a.engine = engine.New(engine.WithChangeListener(a.logChanges))

	if len(config.SeedPaths) > 0 {
		cells, err := seed.NewLoader().Load(ctx, config.SeedPaths...)
		if err != nil {
			return nil, fmt.Errorf("failed to load seed: %w", err)
		}
		a.engine.Load(ctx, cells)
		logger.Info("Seed loaded.", "cells", len(cells))
		if err := a.engine.CheckCycles(); err != nil {
			logger.Warn("Seed contains a reference cycle.", "error", err)
		}
	}

	return a, nil
}

// Engine returns the application's grid. This is primarily for testing.
func (a *App) Engine() *engine.Engine {
	return a.engine
}

func (a *App) logChanges(ctx context.Context, changes []engine.Change) {
	logger := ctxlog.FromContext(ctx)
	for _, c := range changes {
		logger.Debug("Cell changed.", "cell", c.Address.String(), "value", c.Display)
	}
}
