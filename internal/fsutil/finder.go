// Package fsutil provides file system helpers for manifest discovery.
package fsutil

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// FindManifests recursively collects every .hcl file under root, returning
// the paths in lexical order so manifest load order is deterministic. A root
// that does not exist yields an empty result rather than an error: a host
// with no manifest directory simply has nothing to validate against.
func FindManifests(root string) ([]string, error) {
	var files []string
	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() && strings.HasSuffix(d.Name(), ".hcl") {
			files = append(files, path)
		}
		return nil
	})

	if errors.Is(err, os.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	sort.Strings(files)
	return files, nil
}
