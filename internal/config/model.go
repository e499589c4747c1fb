package config

// Model is the unified, format-agnostic representation of every module
// manifest known to the host.
type Model struct {
	Modules map[string]*ModuleDefinition
}

// NewModel creates an empty model.
func NewModel() *Model {
	return &Model{Modules: make(map[string]*ModuleDefinition)}
}

// ModuleDefinition is the format-agnostic representation of a module's
// manifest: its name and declared callable surface.
type ModuleDefinition struct {
	Name        string
	Description string
	Callables   map[string]*CallableDefinition
}

// CallableDefinition describes a single declared callable.
type CallableDefinition struct {
	Name        string
	Description string
}
