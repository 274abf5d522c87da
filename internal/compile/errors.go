package compile

import (
	"errors"
	"fmt"
	"strings"
)

// Build reports the first missing field with one of these, checked in the
// order they are declared.
var (
	// ErrMissingSourcePath means no Slang source file was set.
	ErrMissingSourcePath = errors.New("missing source path")
	// ErrMissingDestPath means no artifact path was set.
	ErrMissingDestPath = errors.New("missing destination path")
	// ErrMissingShaderStage means the stage was left at its zero value.
	ErrMissingShaderStage = errors.New("missing shader stage")
)

// ProcessError reports a compiler invocation that could not be started or
// exited unsuccessfully. ExitCode is -1 when the process never ran.
type ProcessError struct {
	Binary   string
	Args     []string
	ExitCode int
	Output   []byte
	Err      error
}

func (e *ProcessError) Error() string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s %s", e.Binary, strings.Join(e.Args, " "))
	if e.ExitCode >= 0 {
		fmt.Fprintf(&b, ": exit status %d", e.ExitCode)
	} else {
		fmt.Fprintf(&b, ": %v", e.Err)
	}
	if out := strings.TrimSpace(string(e.Output)); out != "" {
		fmt.Fprintf(&b, ": %s", out)
	}
	return b.String()
}

func (e *ProcessError) Unwrap() error { return e.Err }
