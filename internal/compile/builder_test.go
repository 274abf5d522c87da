package compile

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vk/sdfc/internal/ctxlog"
)

type call struct {
	name string
	args []string
}

// stubRunner records calls and fails when fail returns true for them.
type stubRunner struct {
	calls []call
	fail  func(args []string) bool
}

func (s *stubRunner) Run(_ context.Context, name string, args []string) ([]byte, int, error) {
	s.calls = append(s.calls, call{name: name, args: args})
	if s.fail != nil && s.fail(args) {
		return []byte("error: compilation failed"), 1, errors.New("exit status 1")
	}
	return nil, 0, nil
}

func TestBuilder_ValidationOrder(t *testing.T) {
	tests := []struct {
		name    string
		builder *Builder
		wantErr error
	}{
		{"nothing set", NewBuilder(nil), ErrMissingSourcePath},
		{"only destination and stage", NewBuilder(nil).Destination("d").Stage(Vertex), ErrMissingSourcePath},
		{"source only", NewBuilder(nil).Source("s"), ErrMissingDestPath},
		{"source and stage", NewBuilder(nil).Source("s").Stage(Fragment), ErrMissingDestPath},
		{"source and destination", NewBuilder(nil).Source("s").Destination("d"), ErrMissingShaderStage},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := tc.builder.Build()
			assert.ErrorIs(t, err, tc.wantErr)
		})
	}
}

func TestBuilder_BuildDefaults(t *testing.T) {
	job, err := NewBuilder(nil).Source("s").Destination("d").Stage(Vertex).Build()

	require.NoError(t, err)
	assert.Equal(t, SpirV, job.Target())
	assert.Equal(t, DefaultProfile, job.Profile())
}

func TestBuilder_BuildReturnsIndependentJobs(t *testing.T) {
	b := NewBuilder(nil).Source("s").Destination("d").Stage(Vertex)
	first, err := b.Build()
	require.NoError(t, err)

	b.Target(Glsl).Destination("other")
	second, err := b.Build()
	require.NoError(t, err)

	assert.Equal(t, "d", first.Destination())
	assert.Equal(t, SpirV, first.Target())
	assert.Equal(t, "other", second.Destination())
	assert.Equal(t, Glsl, second.Target())
}

func TestBuilder_ExecuteLogsCompilerFailure(t *testing.T) {
	// Arrange
	var logs bytes.Buffer
	ctx := ctxlog.WithLogger(context.Background(), slog.New(slog.NewTextHandler(&logs, nil)))
	runner := &stubRunner{fail: func([]string) bool { return true }}
	tc := &Toolchain{Binary: "slangc", Runner: runner}

	// Act
	err := NewBuilder(tc).Source("s.slang").Destination("s.frag.spv").Stage(Fragment).Execute(ctx)

	// Assert
	require.NoError(t, err)
	require.Len(t, runner.calls, 1)
	assert.Contains(t, logs.String(), "level=WARN")
	assert.Contains(t, logs.String(), "Failed to compile shader.")
}

func TestBuilder_ExecuteReturnsConfigurationError(t *testing.T) {
	tests := []struct {
		name      string
		configure func(*Builder) *Builder
		wantErr   error
	}{
		{
			name:      "missing source",
			configure: func(b *Builder) *Builder { return b.Destination("d").Stage(Vertex) },
			wantErr:   ErrMissingSourcePath,
		},
		{
			name:      "missing destination",
			configure: func(b *Builder) *Builder { return b.Source("s").Stage(Fragment) },
			wantErr:   ErrMissingDestPath,
		},
		{
			name:      "missing stage",
			configure: func(b *Builder) *Builder { return b.Source("s").Destination("d") },
			wantErr:   ErrMissingShaderStage,
		},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			// Arrange
			runner := &stubRunner{}
			toolchain := &Toolchain{Binary: "slangc", Runner: runner}

			// Act
			err := tc.configure(NewBuilder(toolchain)).Execute(context.Background())

			// Assert
			require.ErrorIs(t, err, tc.wantErr)
			assert.Empty(t, runner.calls, "compiler must not run for an invalid job")
		})
	}
}
