package registry

import (
	"context"
	"fmt"
	"strings"

	"github.com/qianyesu/fishpackgo/internal/ctxlog"
)

// ValidateRegistry performs a strict parity check between the manifest
// definitions and the registered Go modules. Every declared module must be
// loaded, and each loaded module covered by a manifest must export exactly
// the callables the manifest declares. A loaded module without a manifest is
// allowed and only logged, since manifests describe the public surface and
// test modules frequently have none.
func (r *Registry) ValidateRegistry(ctx context.Context) error {
	logger := ctxlog.FromContext(ctx)
	var errs []string

	r.mu.RLock()
	defer r.mu.RUnlock()

	for name, def := range r.definitions {
		handle, ok := r.modules[name]
		if !ok {
			errs = append(errs, fmt.Sprintf("module '%s': declared in a manifest but no Go module registered under that name", name))
			continue
		}

		for cname := range def.Callables {
			if _, ok := handle.callables[cname]; ok {
				continue
			}
			errs = append(errs, fmt.Sprintf("module '%s': manifest declares callable '%s' which is not exported by the Go module", name, cname))
		}
		for cname := range handle.callables {
			if _, ok := def.Callables[cname]; ok {
				continue
			}
			errs = append(errs, fmt.Sprintf("module '%s': Go module exports callable '%s' which is not declared in the manifest", name, cname))
		}
	}

	for name := range r.modules {
		if _, ok := r.definitions[name]; !ok {
			logger.Debug("Module registered without a manifest definition.", "name", name)
		}
	}

	if len(errs) > 0 {
		return fmt.Errorf("registry validation failed:\n- %s", strings.Join(errs, "\n- "))
	}

	return nil
}
