package registry

import (
	"context"
	"fmt"
	"sort"

	"github.com/zclconf/go-cty/cty"
)

// Callable is a compiled Go function exported by a module. Arguments are
// positional cty values; a callable with no meaningful result returns the
// null value.
type Callable func(ctx context.Context, args ...cty.Value) (cty.Value, error)

// Handle is the loaded module object: an immutable mapping from exported
// callable names to their implementations. Handles are created once at
// registration and never mutated afterwards, so they are safe to share
// across any number of goroutines.
type Handle struct {
	name      string
	callables map[string]Callable
}

// Name returns the module's name as known to the loader.
func (h *Handle) Name() string {
	return h.name
}

// Names returns the module's exported callable names in sorted order.
func (h *Handle) Names() []string {
	names := make([]string, 0, len(h.callables))
	for name := range h.callables {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Lookup returns the callable exported under name.
func (h *Handle) Lookup(name string) (Callable, bool) {
	fn, ok := h.callables[name]
	return fn, ok
}

// Call invokes the exported callable by name with the given arguments.
func (h *Handle) Call(ctx context.Context, name string, args ...cty.Value) (cty.Value, error) {
	fn, ok := h.callables[name]
	if !ok {
		return cty.NilVal, fmt.Errorf("module %q has no callable %q", h.name, name)
	}
	return fn(ctx, args...)
}
