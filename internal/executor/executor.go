// Package executor expands a generated shader into the fixed matrix of
// compiler jobs and runs them, isolating each job's failure from the others.
package executor

import "context"

// Executor compiles one generated shader into all of its artifacts.
type Executor interface {
	CompileShaders(ctx context.Context, source, explicit string) (*Report, error)
}
