package hcl

import (
	"fmt"

	"github.com/qianyesu/fishpackgo/internal/config"
	"github.com/qianyesu/fishpackgo/internal/schema"
)

// translateModule converts the HCL-specific module schema into the agnostic
// model, rejecting duplicate callable declarations within the module.
func translateModule(s *schema.ModuleDefinition) (*config.ModuleDefinition, error) {
	def := &config.ModuleDefinition{
		Name:        s.Name,
		Description: s.Description,
		Callables:   make(map[string]*config.CallableDefinition),
	}
	for _, c := range s.Callables {
		if _, exists := def.Callables[c.Name]; exists {
			return nil, fmt.Errorf("module %q declares callable %q more than once", s.Name, c.Name)
		}
		def.Callables[c.Name] = &config.CallableDefinition{
			Name:        c.Name,
			Description: c.Description,
		}
	}
	return def, nil
}
