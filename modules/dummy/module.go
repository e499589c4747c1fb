// Package dummy provides the placeholder backend module. It is registered
// on builds where the compiled solver backend is unavailable, so the host's
// loading machinery keeps working without a real backend behind it.
package dummy

import (
	"context"

	"github.com/zclconf/go-cty/cty"

	"github.com/qianyesu/fishpackgo/internal/registry"
)

// ModuleName is the name the host loader resolves this module under.
const ModuleName = "dummy"

// Module implements the registry.Module interface for this package.
type Module struct{}

// Name returns the loader name of the placeholder module.
func (m *Module) Name() string {
	return ModuleName
}

// Dummy accepts any arguments, ignores them, and returns the null value. It
// never fails, performs no I/O, and touches no shared state, so it is safe
// to invoke from any number of goroutines.
func Dummy(ctx context.Context, args ...cty.Value) (cty.Value, error) {
	return cty.NullVal(cty.DynamicPseudoType), nil
}

// Register builds the module object: a single exported entry mapping
// "dummy" to the no-op callable. It fails only if the registry refuses the
// registration, and that failure propagates to the loader unmodified.
func (m *Module) Register(r *registry.Registry) error {
	_, err := r.RegisterModule(ModuleName, map[string]registry.Callable{
		"dummy": Dummy,
	})
	return err
}
