package compile

import (
	"context"

	"github.com/vk/sdfc/internal/ctxlog"
)

// DefaultBinary is the compiler looked up on PATH when none is configured.
const DefaultBinary = "slangc"

// Toolchain runs jobs with one compiler binary and include path.
type Toolchain struct {
	Binary   string
	Includes []string
	Runner   Runner
}

// NewToolchain returns a toolchain using ExecRunner. An empty binary falls
// back to DefaultBinary.
func NewToolchain(binary string, includes []string) *Toolchain {
	if binary == "" {
		binary = DefaultBinary
	}
	return &Toolchain{Binary: binary, Includes: includes, Runner: ExecRunner{}}
}

// Run launches the compiler for job and waits for it. A process that cannot
// be started or exits non-zero is reported as a *ProcessError.
func (t *Toolchain) Run(ctx context.Context, job *Job) error {
	logger := ctxlog.FromContext(ctx)
	args := job.Args(t.Includes)
	runner := t.Runner
	if runner == nil {
		runner = ExecRunner{}
	}

	logger.Debug("Running shader compiler.", "binary", t.Binary, "args", args)
	out, code, err := runner.Run(ctx, t.Binary, args)
	if err != nil {
		return &ProcessError{Binary: t.Binary, Args: args, ExitCode: code, Output: out, Err: err}
	}
	if len(out) > 0 {
		logger.Debug("Shader compiler output.", "destination", job.destination, "output", string(out))
	}
	return nil
}
