package app

import (
	"fmt"
	"strings"
)

// Config holds all the necessary configuration for an App instance to run.
type Config struct {
	ModulesPath string // directory of .hcl manifest files
	ModuleName  string // module to load and inspect
	Call        string // "module.callable" to invoke

	LogFormat string
	LogLevel  string
}

// NewConfig validates a Config and returns it.
func NewConfig(cfg Config) (*Config, error) {
	if cfg.Call != "" {
		mod, fn, ok := strings.Cut(cfg.Call, ".")
		if !ok || mod == "" || fn == "" {
			return nil, fmt.Errorf("invalid -call value %q: expected MODULE.CALLABLE", cfg.Call)
		}
	}

	return &cfg, nil
}
