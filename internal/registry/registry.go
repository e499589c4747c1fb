package registry

import (
	"errors"
	"fmt"
	"sort"
	"sync"

	"github.com/qianyesu/fishpackgo/internal/config"
)

// ErrAlreadyRegistered is returned when a module name is registered twice.
// Registration is the module's one-time initialization; a second attempt is
// a construction failure the loader must see, not something to paper over.
var ErrAlreadyRegistered = errors.New("module already registered")

// Module is the interface every compiled-in module implements. Register is
// the module's fixed initialization entry point: it is invoked exactly once
// by the host and builds the module's handle in the registry.
type Module interface {
	Name() string
	Register(r *Registry) error
}

// Registry holds the loaded module handles and manifest definitions for a
// single host instance. All methods are safe for concurrent use.
type Registry struct {
	mu          sync.RWMutex
	modules     map[string]*Handle
	definitions map[string]*config.ModuleDefinition
}

// New creates and initializes a new Registry instance.
func New() *Registry {
	return &Registry{
		modules:     make(map[string]*Handle),
		definitions: make(map[string]*config.ModuleDefinition),
	}
}

// RegisterModule constructs the module object for name with the given
// callable table and stores it. Registering an already present name fails
// with ErrAlreadyRegistered and leaves the registry unchanged.
func (r *Registry) RegisterModule(name string, callables map[string]Callable) (*Handle, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.modules[name]; exists {
		return nil, fmt.Errorf("%w: %q", ErrAlreadyRegistered, name)
	}

	h := &Handle{name: name, callables: make(map[string]Callable, len(callables))}
	for cname, fn := range callables {
		h.callables[cname] = fn
	}
	r.modules[name] = h
	return h, nil
}

// Module returns the loaded handle for name. The same pointer is returned
// for every lookup of a given name, so callers observe identity-stable
// module objects.
func (r *Registry) Module(name string) (*Handle, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	h, ok := r.modules[name]
	return h, ok
}

// ModuleNames returns the names of all loaded modules in sorted order.
func (r *Registry) ModuleNames() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	names := make([]string, 0, len(r.modules))
	for name := range r.modules {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// PopulateDefinitionsFromModel copies the loaded manifest definitions from
// the config model into the registry for validation and inspection.
func (r *Registry) PopulateDefinitionsFromModel(model *config.Model) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for key, val := range model.Modules {
		r.definitions[key] = val
	}
}

// Definition returns the manifest definition for a module, if one was loaded.
func (r *Registry) Definition(name string) (*config.ModuleDefinition, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	def, ok := r.definitions[name]
	return def, ok
}
