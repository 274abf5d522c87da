package compile

import (
	"context"

	"github.com/vk/sdfc/internal/ctxlog"
)

// Builder assembles a Job field by field. Nothing is checked until Build.
type Builder struct {
	toolchain *Toolchain
	job       Job
}

// NewBuilder returns a Builder whose jobs run on toolchain.
func NewBuilder(toolchain *Toolchain) *Builder {
	return &Builder{toolchain: toolchain}
}

// Source sets the Slang file to compile.
func (b *Builder) Source(path string) *Builder {
	b.job.source = path
	return b
}

// Destination sets the artifact path the compiler writes.
func (b *Builder) Destination(path string) *Builder {
	b.job.destination = path
	return b
}

// Stage sets the entry point stage. It has no default.
func (b *Builder) Stage(stage Stage) *Builder {
	b.job.stage = stage
	return b
}

// Target sets the output format. SpirV is used when unset.
func (b *Builder) Target(target Target) *Builder {
	b.job.target = target
	return b
}

// Profile sets the compiler profile. DefaultProfile is used when unset.
func (b *Builder) Profile(profile Profile) *Builder {
	b.job.profile = profile
	return b
}

// Build validates source, destination and stage, in that order, and returns
// a copy of the configured job.
func (b *Builder) Build() (*Job, error) {
	job := b.job
	if job.profile == "" {
		job.profile = DefaultProfile
	}
	if err := job.validate(); err != nil {
		return nil, err
	}
	return &job, nil
}

// Execute builds the job and runs it. Configuration errors are returned. A
// compiler failure is only logged.
func (b *Builder) Execute(ctx context.Context) error {
	job, err := b.Build()
	if err != nil {
		return err
	}
	if err := b.toolchain.Run(ctx, job); err != nil {
		ctxlog.FromContext(ctx).Warn("Failed to compile shader.",
			"source", job.source, "stage", job.stage, "target", job.target, "error", err)
	}
	return nil
}
