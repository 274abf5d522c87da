package compile

import (
	"bytes"
	"context"
	"errors"
	"os/exec"
)

// Runner launches an external process and returns its combined output.
type Runner interface {
	Run(ctx context.Context, name string, args []string) (output []byte, exitCode int, err error)
}

// ExecRunner runs processes with os/exec. The exit code is -1 when the
// process could not be started.
type ExecRunner struct{}

func (ExecRunner) Run(ctx context.Context, name string, args []string) ([]byte, int, error) {
	var out bytes.Buffer
	cmd := exec.CommandContext(ctx, name, args...)
	cmd.Stdout = &out
	cmd.Stderr = &out

	err := cmd.Run()
	if err == nil {
		return out.Bytes(), 0, nil
	}
	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		return out.Bytes(), exitErr.ExitCode(), err
	}
	return out.Bytes(), -1, err
}
