// Package modules enumerates the module set compiled into the fishpackgo
// binary.
package modules

import (
	"github.com/qianyesu/fishpackgo/internal/registry"
	"github.com/qianyesu/fishpackgo/modules/dummy"
)

// Core is the definitive list of all modules compiled into the binary.
// Builds that carry the real solver backend append it here; the placeholder
// keeps the loader functional everywhere else.
func Core() []registry.Module {
	return []registry.Module{
		&dummy.Module{},
	}
}
