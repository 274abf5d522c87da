package hcl

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"
	"github.com/vk/sdfc/internal/config"
)

func writeProject(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "sdfc.hcl")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoad_MissingFileReturnsDefaults(t *testing.T) {
	model, err := NewLoader().Load(context.Background(), filepath.Join(t.TempDir(), "sdfc.hcl"))

	require.NoError(t, err)
	if diff := cmp.Diff(config.Default(), model); diff != "" {
		t.Errorf("model mismatch (-want +got):\n%s", diff)
	}
}

func TestLoad_EmptyPathReturnsDefaults(t *testing.T) {
	model, err := NewLoader().Load(context.Background(), "")

	require.NoError(t, err)
	require.Equal(t, "slangc", model.Compiler.Binary)
}

func TestLoad_OverridesOnlyGivenAttributes(t *testing.T) {
	path := writeProject(t, `
paths {
  assets_root = "game/assets"
  libraries   = ["sdf2d"]
}

compiler {
  binary = "/opt/slang/bin/slangc"
}

notify {
  url     = "http://localhost:4000/"
  timeout = "250ms"
}
`)

	model, err := NewLoader().Load(context.Background(), path)
	require.NoError(t, err)

	want := config.Default()
	want.Paths.AssetsRoot = "game/assets"
	want.Paths.Libraries = []string{"sdf2d"}
	want.Compiler.Binary = "/opt/slang/bin/slangc"
	want.Notify.URL = "http://localhost:4000/"
	want.Notify.Timeout = 250 * time.Millisecond

	if diff := cmp.Diff(want, model); diff != "" {
		t.Errorf("model mismatch (-want +got):\n%s", diff)
	}
}

func TestLoad_EnvAndFunctions(t *testing.T) {
	t.Setenv("SDFC_TEST_SLANG_HOME", "/opt/slang")
	path := writeProject(t, `
compiler {
  binary  = format("%s/bin/slangc", env.SDFC_TEST_SLANG_HOME)
  profile = lower("GLSL_450")
}
`)

	model, err := NewLoader().Load(context.Background(), path)

	require.NoError(t, err)
	require.Equal(t, "/opt/slang/bin/slangc", model.Compiler.Binary)
	require.Equal(t, "glsl_450", model.Compiler.Profile)
}

func TestLoad_InvalidSyntax(t *testing.T) {
	path := writeProject(t, `compiler {`)

	_, err := NewLoader().Load(context.Background(), path)

	require.Error(t, err)
	require.Contains(t, err.Error(), "failed to parse HCL file")
	require.Contains(t, err.Error(), path)
}

func TestLoad_UnknownAttributeRejected(t *testing.T) {
	path := writeProject(t, `
compiler {
  binray = "slangc"
}
`)

	_, err := NewLoader().Load(context.Background(), path)

	require.Error(t, err)
	require.Contains(t, err.Error(), "failed to decode HCL file")
}

func TestLoad_InvalidTimeout(t *testing.T) {
	path := writeProject(t, `
notify {
  timeout = "soon"
}
`)

	_, err := NewLoader().Load(context.Background(), path)

	require.Error(t, err)
	require.Contains(t, err.Error(), "notify.timeout")
}

func TestLoad_EmptyBinaryRejected(t *testing.T) {
	path := writeProject(t, `
compiler {
  binary = ""
}
`)

	_, err := NewLoader().Load(context.Background(), path)

	require.Error(t, err)
	require.Contains(t, err.Error(), "compiler.binary")
}

func TestNewEvalContext_SkipsMalformedEntries(t *testing.T) {
	ctx := newEvalContext([]string{"A=1", "=C:=C:\\", "BROKEN"})

	env := ctx.Variables["env"]
	require.True(t, env.Type().IsObjectType())
	require.True(t, env.Type().HasAttribute("A"))
	require.Len(t, env.Type().AttributeTypes(), 1)
}
