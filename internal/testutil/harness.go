// Package testutil provides shared harnesses for end-to-end tests: temporary
// project trees, a stub compiler runner and a recording notifier.
package testutil

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/vk/sdfc/internal/app"
	"github.com/vk/sdfc/internal/hcl"
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

// Project is a temporary project tree: a project file pointing its assets
// root into the same temporary directory.
type Project struct {
	Root       string
	AssetsRoot string
	ConfigPath string
}

// NewProject creates an empty project whose sdfc.hcl sets assets_root and
// appends extraHCL verbatim.
func NewProject(t *testing.T, extraHCL string) *Project {
	t.Helper()
	root := t.TempDir()
	p := &Project{
		Root:       root,
		AssetsRoot: filepath.Join(root, "assets"),
		ConfigPath: filepath.Join(root, "sdfc.hcl"),
	}
	content := fmt.Sprintf("paths {\n  assets_root = %q\n}\n%s", p.AssetsRoot, extraHCL)
	p.WriteFile(t, "sdfc.hcl", content)
	return p
}

// WriteFile writes content at a path relative to the project root.
func (p *Project) WriteFile(t *testing.T, rel, content string) string {
	t.Helper()
	path := filepath.Join(p.Root, filepath.FromSlash(rel))
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

// WriteScene writes a scene document under assets/scenes.
func (p *Project) WriteScene(t *testing.T, fileName, content string) string {
	t.Helper()
	return p.WriteFile(t, filepath.Join("assets", "scenes", fileName), content)
}

// HarnessResult holds the outcomes of an end-to-end run.
type HarnessResult struct {
	LogOutput string
	Err       error
	App       *app.App
}

// RunApp builds an App for the project with the real HCL loader and runs it.
// A panic during startup is returned as an error.
func RunApp(t *testing.T, p *Project, cfg app.Config, opts ...app.Option) *HarnessResult {
	t.Helper()

	if cfg.ConfigPath == "" {
		cfg.ConfigPath = p.ConfigPath
	}
	cfg.LogLevel = "debug"
	cfg.LogFormat = "text"
	appConfig, err := app.NewConfig(cfg)
	require.NoError(t, err)

	logBuffer := &SafeBuffer{}
	var testApp *app.App
	var panicErr any
	func() {
		defer func() {
			if r := recover(); r != nil {
				panicErr = r
			}
		}()
		testApp = app.NewApp(logBuffer, appConfig, hcl.NewLoader(), opts...)
	}()

	t.Cleanup(func() {
		if os.Getenv("SDFC_TEST_LOGS") == "true" {
			t.Logf("--- Full Log Output for %s ---\n%s", t.Name(), logBuffer.String())
		}
	})

	if panicErr != nil {
		return &HarnessResult{
			LogOutput: logBuffer.String(),
			Err:       fmt.Errorf("application startup panicked | %v", panicErr),
		}
	}

	runErr := testApp.Run(context.Background())
	return &HarnessResult{
		LogOutput: logBuffer.String(),
		Err:       runErr,
		App:       testApp,
	}
}
