package app

import (
	"context"
	"fmt"
	"strings"

	"github.com/zclconf/go-cty/cty"

	"github.com/qianyesu/fishpackgo/internal/ctxlog"
	"github.com/qianyesu/fishpackgo/modules/dummy"
)

// Run executes the requested operation: invoke a callable, inspect a single
// module, or list every loaded module.
func (a *App) Run(ctx context.Context, appConfig *Config) error {
	ctx = ctxlog.WithLogger(ctx, a.logger)
	a.logger.Debug("App.Run method started.")

	switch {
	case appConfig.Call != "":
		return a.runCall(ctx, appConfig.Call)
	case appConfig.ModuleName != "":
		return a.runInspect(ctx, appConfig.ModuleName)
	default:
		return a.runList(ctx)
	}
}

// runCall loads the named module and invokes one of its callables with no
// arguments, printing the result.
func (a *App) runCall(ctx context.Context, call string) error {
	modName, fnName, _ := strings.Cut(call, ".")

	handle, err := a.host.Load(ctx, modName)
	if err != nil {
		return fmt.Errorf("failed to load module for call %q: %w", call, err)
	}

	result, err := handle.Call(ctx, fnName)
	if err != nil {
		return fmt.Errorf("call %q failed: %w", call, err)
	}

	fmt.Fprintln(a.outW, formatValue(result))
	return nil
}

// runInspect loads one module, falling back to the placeholder when the
// requested backend is not compiled in, and prints its exported surface.
func (a *App) runInspect(ctx context.Context, name string) error {
	handle, err := a.host.LoadOrFallback(ctx, name, dummy.ModuleName)
	if err != nil {
		return fmt.Errorf("failed to load module %q: %w", name, err)
	}

	a.printModule(handle.Name())
	return nil
}

// runList prints every loaded module and its exported callables.
func (a *App) runList(ctx context.Context) error {
	names := a.host.Registry().ModuleNames()
	a.logger.Debug("Listing loaded modules.", "count", len(names))

	for _, name := range names {
		a.printModule(name)
	}
	return nil
}

func (a *App) printModule(name string) {
	handle, ok := a.host.Registry().Module(name)
	if !ok {
		return
	}
	fmt.Fprintf(a.outW, "module %s\n", name)
	if def, ok := a.host.Registry().Definition(name); ok && def.Description != "" {
		fmt.Fprintf(a.outW, "  # %s\n", def.Description)
	}
	for _, cname := range handle.Names() {
		fmt.Fprintf(a.outW, "  %s\n", cname)
	}
}

// formatValue renders a callable result for the terminal. The null sentinel
// prints as "null", matching its meaning of "no result".
func formatValue(v cty.Value) string {
	if v == cty.NilVal || v.IsNull() {
		return "null"
	}
	return v.GoString()
}
