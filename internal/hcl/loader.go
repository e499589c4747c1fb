package hcl

import (
	"context"
	"fmt"

	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"

	"github.com/qianyesu/fishpackgo/internal/config"
	"github.com/qianyesu/fishpackgo/internal/ctxlog"
	"github.com/qianyesu/fishpackgo/internal/fsutil"
	"github.com/qianyesu/fishpackgo/internal/schema"
)

// Loader is the HCL-specific implementation of config.Loader.
type Loader struct{}

// NewLoader creates a new HCL manifest loader.
func NewLoader() *Loader {
	return &Loader{}
}

// Load walks every given path for .hcl files, parses each into manifest
// schema structs, and merges the declared modules into a single model.
// Declaring the same module name twice, in one file or across files, is an
// error: the manifest set must be a single point of truth.
func (l *Loader) Load(ctx context.Context, paths ...string) (*config.Model, error) {
	logger := ctxlog.FromContext(ctx)
	model := config.NewModel()
	parser := hclparse.NewParser()

	for _, path := range paths {
		if path == "" {
			continue
		}
		filePaths, err := fsutil.FindManifests(path)
		if err != nil {
			return nil, fmt.Errorf("failed to walk manifest path %s: %w", path, err)
		}
		if len(filePaths) == 0 {
			logger.Warn("No .hcl manifest files found in path.", "path", path)
			continue
		}
		logger.Debug("Found manifest files to load.", "path", path, "files", filePaths)

		for _, filePath := range filePaths {
			hclFile, diags := parser.ParseHCLFile(filePath)
			if diags.HasErrors() {
				return nil, fmt.Errorf("failed to parse manifest file %s: %w", filePath, diags)
			}

			var manifest schema.ManifestFile
			if diags := gohcl.DecodeBody(hclFile.Body, nil, &manifest); diags.HasErrors() {
				return nil, fmt.Errorf("failed to decode manifest file %s: %w", filePath, diags)
			}

			for _, mod := range manifest.Modules {
				def, err := translateModule(mod)
				if err != nil {
					return nil, fmt.Errorf("invalid module declaration in %s: %w", filePath, err)
				}
				if _, exists := model.Modules[def.Name]; exists {
					return nil, fmt.Errorf("module %q declared more than once (second declaration in %s)", def.Name, filePath)
				}
				model.Modules[def.Name] = def
			}
			logger.Debug("Loaded manifest file.", "file", filePath)
		}
	}

	logger.Debug("Manifest model assembled.", "modules_declared", len(model.Modules))
	return model, nil
}
