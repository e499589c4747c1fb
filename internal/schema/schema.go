package schema

// CallableDefinition declares a single exported callable in a module
// manifest. The name label must match a Go callable registered under the
// same module.
type CallableDefinition struct {
	Name        string `hcl:"name,label"`
	Description string `hcl:"description,optional"`
}

// ModuleDefinition represents a `module` block from a manifest file. It is
// the public declaration of a module's callable surface.
type ModuleDefinition struct {
	Name        string                `hcl:"name,label"`
	Description string                `hcl:"description,optional"`
	Callables   []*CallableDefinition `hcl:"callable,block"`
}

// ManifestFile represents the top-level structure of a single .hcl manifest
// file, containing any number of module declarations.
type ManifestFile struct {
	Modules []*ModuleDefinition `hcl:"module,block"`
}
