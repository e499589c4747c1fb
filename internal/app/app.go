package app

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/qianyesu/fishpackgo/internal/config"
	"github.com/qianyesu/fishpackgo/internal/ctxlog"
	"github.com/qianyesu/fishpackgo/internal/host"
	"github.com/qianyesu/fishpackgo/internal/registry"
	"github.com/qianyesu/fishpackgo/modules"
)

// App encapsulates the host's dependencies, configuration, and lifecycle.
type App struct {
	outW   io.Writer
	logger *slog.Logger
	host   *host.Host
	model  *config.Model
}

// NewApp is the constructor for the main application. It returns a fully
// initialized App with its own isolated logger, registry, and host. When no
// modules are passed, the compiled-in core set is installed.
//
// Startup failures here (unreadable manifests, failed module init, parity
// mismatch) are fatal and panic; the entrypoint recovers and reports them.
func NewApp(outW io.Writer, appConfig *Config, loader config.Loader, mods ...registry.Module) *App {
	logger := newLogger(appConfig.LogLevel, appConfig.LogFormat, outW)
	ctx := ctxlog.WithLogger(context.Background(), logger)
	logger.Debug("Logger configured successfully.")

	// Load all manifests into the format-agnostic model first.
	model, err := loader.Load(ctx, appConfig.ModulesPath)
	if err != nil {
		panic(fmt.Errorf("failed to load module manifests: %w", err))
	}
	logger.Debug("Manifests loaded and translated into unified model.")

	// Create the host and run module initialization.
	h := host.New(registry.New())
	if len(mods) == 0 {
		mods = modules.Core()
	}
	if err := h.Install(ctx, mods...); err != nil {
		// Initialization failure propagates unmodified to the caller.
		panic(err)
	}

	// Populate the registry's definitions and check manifest/Go parity.
	reg := h.Registry()
	reg.PopulateDefinitionsFromModel(model)
	if err := reg.ValidateRegistry(ctx); err != nil {
		// A mismatch between manifests and code is a programmer error.
		panic(err)
	}
	logger.Debug("Registry validation passed.")

	return &App{
		outW:   outW,
		logger: logger,
		host:   h,
		model:  model,
	}
}

// Host returns the application's host. This is primarily for testing.
func (a *App) Host() *host.Host {
	return a.host
}
