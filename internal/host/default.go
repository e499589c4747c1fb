package host

import (
	"context"
	"sync"

	"github.com/qianyesu/fishpackgo/internal/registry"
	"github.com/qianyesu/fishpackgo/modules"
)

var (
	defaultOnce sync.Once
	defaultHost *Host
)

// Default returns the process-wide host, lazily initialized on first use
// with the core module set. It is the single point of truth for "is this
// module loaded, and what is its public surface" for callers that do not
// construct their own isolated host.
func Default() *Host {
	defaultOnce.Do(func() {
		h := New(registry.New())
		// The core set is compiled in; a name collision here is a
		// programmer error, not a runtime condition.
		if err := h.Install(context.Background(), modules.Core()...); err != nil {
			panic(err)
		}
		defaultHost = h
	})
	return defaultHost
}
