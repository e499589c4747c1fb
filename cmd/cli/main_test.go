package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestRun_Help(t *testing.T) {
	t.Parallel()

	// --- Arrange ---
	out := &bytes.Buffer{}

	// --- Act ---
	err := run(out, []string{"-h"})

	// --- Assert ---
	require.NoError(t, err, "run() should return a nil error when help is requested")
	require.Contains(t, out.String(), "Usage:")
}

func TestRun_UnknownFlag(t *testing.T) {
	t.Parallel()

	out := &bytes.Buffer{}

	err := run(out, []string{"--this-is-not-a-valid-flag"})

	require.Error(t, err)
	require.Contains(t, err.Error(), "flag provided but not defined: -this-is-not-a-valid-flag")
}

func TestRun_CallDummy_PrintsNull(t *testing.T) {
	t.Parallel()

	// --- Arrange ---
	modulesDir := t.TempDir()
	manifest := `
module "dummy" {
  callable "dummy" {}
}
`
	require.NoError(t, os.WriteFile(filepath.Join(modulesDir, "manifest.hcl"), []byte(manifest), 0o644))
	out := &bytes.Buffer{}

	// --- Act ---
	err := run(out, []string{"-modules-path", modulesDir, "-call", "dummy.dummy"})

	// --- Assert ---
	require.NoError(t, err)
	require.Contains(t, out.String(), "null")
}

func TestRun_InvalidManifest_RecoversStartupPanic(t *testing.T) {
	t.Parallel()

	// --- Arrange ---
	// A manifest with a syntax error makes app.NewApp panic; run() must
	// recover and hand back a plain error.
	modulesDir := t.TempDir()
	invalid := `module "dummy" { callable "dummy" {`
	require.NoError(t, os.WriteFile(filepath.Join(modulesDir, "manifest.hcl"), []byte(invalid), 0o600))
	out := &bytes.Buffer{}

	// --- Act ---
	err := run(out, []string{"-modules-path", modulesDir})

	// --- Assert ---
	require.Error(t, err)
	require.Contains(t, err.Error(), "a critical startup error occurred")
	require.Contains(t, err.Error(), "failed to parse")
}
