package executor

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/vk/sdfc/internal/compile"
	"github.com/vk/sdfc/internal/ctxlog"
)

// Runner runs a single compile job.
type Runner interface {
	Run(ctx context.Context, job *compile.Job) error
}

// Orchestrator compiles generated shaders into a fixed output directory.
type Orchestrator struct {
	runner      Runner
	compiledDir string
	profile     compile.Profile
}

// Option configures an Orchestrator.
type Option func(*Orchestrator)

// WithProfile sets the profile used for every job.
func WithProfile(profile compile.Profile) Option {
	return func(o *Orchestrator) {
		o.profile = profile
	}
}

// New creates an Orchestrator that runs jobs on runner and writes artifacts
// into compiledDir.
func New(runner Runner, compiledDir string, opts ...Option) *Orchestrator {
	o := &Orchestrator{
		runner:      runner,
		compiledDir: compiledDir,
		profile:     compile.DefaultProfile,
	}
	for _, opt := range opts {
		opt(o)
	}
	return o
}

var _ Executor = (*Orchestrator)(nil)

// Plan returns the four jobs for source in the order Fragment/SpirV,
// Vertex/SpirV, Fragment/Glsl, Vertex/Glsl.
func (o *Orchestrator) Plan(source, basename string) ([]*compile.Job, error) {
	jobs := make([]*compile.Job, 0, len(matrix))
	for _, v := range matrix {
		dest := filepath.Join(o.compiledDir, ArtifactName(basename, v.stage, v.target))
		job, err := compile.NewJob(source, dest, v.stage,
			compile.WithTarget(v.target),
			compile.WithProfile(o.profile),
		)
		if err != nil {
			return nil, fmt.Errorf("failed to plan %s/%s job: %w", v.stage, v.target, err)
		}
		jobs = append(jobs, job)
	}
	return jobs, nil
}

// CompileShaders runs every planned job for source, one after another. A
// failing job is logged and recorded in the report; the remaining jobs still
// run. The error is only non-nil when the jobs cannot be planned.
func (o *Orchestrator) CompileShaders(ctx context.Context, source, explicit string) (*Report, error) {
	logger := ctxlog.FromContext(ctx)
	basename := Basename(source, explicit)

	jobs, err := o.Plan(source, basename)
	if err != nil {
		return nil, err
	}

	logger.Info("▶️ Compiling shader", "source", source, "basename", basename, "jobs", len(jobs))
	report := &Report{Source: source, Basename: basename, Outcomes: make([]Outcome, 0, len(jobs))}
	for _, job := range jobs {
		jobLogger := logger.With("stage", job.Stage(), "target", job.Target(), "destination", job.Destination())

		err := o.runner.Run(ctx, job)
		if err != nil {
			jobLogger.Warn("Failed to compile shader.", "error", err)
		} else {
			jobLogger.Debug("Shader compiled.")
		}
		report.Outcomes = append(report.Outcomes, Outcome{Job: job, Err: err})
	}

	if failed := report.Failed(); len(failed) > 0 {
		logger.Warn("Shader compiled with failures.", "source", source, "failed", len(failed), "total", len(report.Outcomes))
	} else {
		logger.Info("✅ Shader compiled", "source", source)
	}
	return report, nil
}
