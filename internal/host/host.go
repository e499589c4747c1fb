// Package host implements the module loader: the component that installs
// compiled-in modules into a registry and resolves them by name. Loading is
// name-in, module-object-out, and loading the same name twice yields the
// identical handle with no repeated initialization.
package host

import (
	"context"
	"errors"
	"fmt"

	"github.com/qianyesu/fishpackgo/internal/ctxlog"
	"github.com/qianyesu/fishpackgo/internal/registry"
)

// ErrModuleNotFound is returned by Load when no module is registered under
// the requested name.
var ErrModuleNotFound = errors.New("module not found")

// InitError reports that a module's initialization entry point failed. The
// underlying cause is carried unmodified; nothing is caught or retried on
// the way to the loader's caller.
type InitError struct {
	Module string
	Err    error
}

// Error implements the error interface for InitError.
func (e *InitError) Error() string {
	return fmt.Sprintf("module %q failed to initialize: %v", e.Module, e.Err)
}

// Unwrap exposes the underlying initialization failure.
func (e *InitError) Unwrap() error {
	return e.Err
}

// Host owns a registry and loads modules out of it. A Host is safe for
// concurrent use once Install has completed.
type Host struct {
	reg *registry.Registry
}

// New creates a Host backed by the given registry.
func New(reg *registry.Registry) *Host {
	return &Host{reg: reg}
}

// Registry returns the host's registry. This is primarily for wiring and
// testing.
func (h *Host) Registry() *registry.Registry {
	return h.reg
}

// Install runs each module's initialization entry point, in order. The
// first failure stops installation and is returned wrapped in *InitError.
func (h *Host) Install(ctx context.Context, mods ...registry.Module) error {
	logger := ctxlog.FromContext(ctx)
	for _, mod := range mods {
		logger.Debug("Installing module.", "name", mod.Name())
		if err := mod.Register(h.reg); err != nil {
			return &InitError{Module: mod.Name(), Err: err}
		}
	}
	logger.Debug("All modules installed.", "count", len(mods))
	return nil
}

// Load resolves a module by name. Every load of the same name returns the
// same handle pointer; loading performs no side effects beyond the lookup.
func (h *Host) Load(ctx context.Context, name string) (*registry.Handle, error) {
	handle, ok := h.reg.Module(name)
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrModuleNotFound, name)
	}
	return handle, nil
}

// LoadOrFallback resolves name, and when it is absent logs a warning and
// resolves the fallback module instead. This mirrors the package behavior
// on platforms without a compiled backend: the placeholder stands in so
// dependent tooling keeps working.
func (h *Host) LoadOrFallback(ctx context.Context, name, fallback string) (*registry.Handle, error) {
	handle, err := h.Load(ctx, name)
	if err == nil {
		return handle, nil
	}
	if !errors.Is(err, ErrModuleNotFound) {
		return nil, err
	}
	ctxlog.FromContext(ctx).Warn("Could not load module, falling back to placeholder. Make sure the backend is compiled correctly.",
		"name", name, "fallback", fallback)
	return h.Load(ctx, fallback)
}
