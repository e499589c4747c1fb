// Package testutil provides shared helpers for booting isolated App
// instances against temporary manifest directories.
package testutil

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/qianyesu/fishpackgo/internal/app"
	"github.com/qianyesu/fishpackgo/internal/hcl"
	"github.com/qianyesu/fishpackgo/internal/registry"
)

// SafeBuffer is a thread-safe buffer for capturing log output in tests.
type SafeBuffer struct {
	b  bytes.Buffer
	mu sync.Mutex
}

// Write implements the io.Writer interface for SafeBuffer.
func (b *SafeBuffer) Write(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.b.Write(p)
}

// String implements the fmt.Stringer interface for SafeBuffer.
func (b *SafeBuffer) String() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.b.String()
}

// HarnessResult holds the outcomes of a host boot in a test.
type HarnessResult struct {
	LogOutput string
	Err       error
	App       *app.App

	// Out is the writer the App logs and prints to. Tests that call
	// App.Run afterwards read its accumulated output from here.
	Out *SafeBuffer
}

// BootHost writes the given manifest files into a temporary modules
// directory and constructs an App over them with the provided modules. A
// startup panic is recovered into HarnessResult.Err so tests can assert on
// failed boots without crashing the test binary.
func BootHost(t *testing.T, files map[string]string, mods ...registry.Module) *HarnessResult {
	t.Helper()

	modulesDir := t.TempDir()
	for name, content := range files {
		filePath := filepath.Join(modulesDir, name)
		require.NoError(t, os.MkdirAll(filepath.Dir(filePath), 0o755))
		require.NoError(t, os.WriteFile(filePath, []byte(content), 0o644))
	}

	appConfig := &app.Config{
		ModulesPath: modulesDir,
		LogLevel:    "debug",
		LogFormat:   "text",
	}

	logBuffer := &SafeBuffer{}

	var testApp *app.App
	var panicErr any
	func() {
		defer func() {
			if r := recover(); r != nil {
				panicErr = r
			}
		}()
		testApp = app.NewApp(logBuffer, appConfig, hcl.NewLoader(), mods...)
	}()

	result := &HarnessResult{LogOutput: logBuffer.String(), App: testApp, Out: logBuffer}
	if panicErr != nil {
		result.Err = fmt.Errorf("host startup panicked | %v", panicErr)
	}
	return result
}
