package hcl_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/qianyesu/fishpackgo/internal/hcl"
)

// writeManifests writes the given files into a fresh temp dir and returns it.
func writeManifests(t *testing.T, files map[string]string) string {
	t.Helper()
	dir := t.TempDir()
	for name, content := range files {
		path := filepath.Join(dir, name)
		require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
		require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	}
	return dir
}

func TestLoad_SingleManifest(t *testing.T) {
	t.Parallel()

	// --- Arrange ---
	dir := writeManifests(t, map[string]string{
		"dummy/manifest.hcl": `
module "dummy" {
  description = "Placeholder backend."

  callable "dummy" {
    description = "Accepts any arguments and returns null."
  }
}
`,
	})

	// --- Act ---
	model, err := hcl.NewLoader().Load(context.Background(), dir)

	// --- Assert ---
	require.NoError(t, err)
	require.Len(t, model.Modules, 1)

	def := model.Modules["dummy"]
	require.NotNil(t, def)
	require.Equal(t, "Placeholder backend.", def.Description)
	require.Len(t, def.Callables, 1)
	require.Equal(t, "dummy", def.Callables["dummy"].Name)
}

func TestLoad_InvalidSyntax_Fails(t *testing.T) {
	t.Parallel()

	// --- Arrange ---
	dir := writeManifests(t, map[string]string{
		"broken.hcl": `module "dummy" { callable "dummy" {`,
	})

	// --- Act ---
	_, err := hcl.NewLoader().Load(context.Background(), dir)

	// --- Assert ---
	require.Error(t, err)
	require.Contains(t, err.Error(), "failed to parse")
}

func TestLoad_DuplicateModuleAcrossFiles_Fails(t *testing.T) {
	t.Parallel()

	// --- Arrange ---
	dir := writeManifests(t, map[string]string{
		"a.hcl": `module "dummy" {}`,
		"b.hcl": `module "dummy" {}`,
	})

	// --- Act ---
	_, err := hcl.NewLoader().Load(context.Background(), dir)

	// --- Assert ---
	require.Error(t, err)
	require.Contains(t, err.Error(), `module "dummy" declared more than once`)
}

func TestLoad_DuplicateCallableInModule_Fails(t *testing.T) {
	t.Parallel()

	// --- Arrange ---
	dir := writeManifests(t, map[string]string{
		"dup.hcl": `
module "dummy" {
  callable "dummy" {}
  callable "dummy" {}
}
`,
	})

	// --- Act ---
	_, err := hcl.NewLoader().Load(context.Background(), dir)

	// --- Assert ---
	require.Error(t, err)
	require.Contains(t, err.Error(), `declares callable "dummy" more than once`)
}

func TestLoad_EmptyOrMissingPaths_YieldEmptyModel(t *testing.T) {
	t.Parallel()

	// --- Act ---
	// An empty path element and a directory that does not exist are both
	// tolerated: the model is simply empty.
	model, err := hcl.NewLoader().Load(context.Background(), "", filepath.Join(t.TempDir(), "absent"))

	// --- Assert ---
	require.NoError(t, err)
	require.Empty(t, model.Modules)
}
