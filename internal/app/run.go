package app

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/vk/sdfc/internal/codegen"
	"github.com/vk/sdfc/internal/compile"
	"github.com/vk/sdfc/internal/ctxlog"
	"github.com/vk/sdfc/internal/executor"
	"github.com/vk/sdfc/internal/fsutil"
	"github.com/vk/sdfc/internal/notify"
	"github.com/vk/sdfc/internal/scene"
	"github.com/vk/sdfc/internal/shaderlib"
)

// ErrJobsFailed is returned in strict mode when any compile job failed.
var ErrJobsFailed = errors.New("shader compilation failed")

// Run compiles every selected scene: parse, generate, write, compile and
// notify, one scene after another. Any error before compilation is fatal.
// Failed compile jobs are logged and only fail the run in strict mode.
func (a *App) Run(ctx context.Context) error {
	ctx = ctxlog.WithLogger(ctx, a.logger)
	a.logger.Debug("App.Run method started.")
	a.reports = nil

	scenes, err := a.scenePaths()
	if err != nil {
		return err
	}
	if a.config.Name != "" && len(scenes) > 1 {
		return fmt.Errorf("name %q can only be used with a single scene, found %d", a.config.Name, len(scenes))
	}

	paths := a.project.Paths
	if _, err := shaderlib.SeedTemplate(ctx, paths); err != nil {
		return err
	}
	if _, err := shaderlib.Install(ctx, paths); err != nil {
		return err
	}
	if err := os.MkdirAll(paths.CompiledDir(), 0o755); err != nil {
		return fmt.Errorf("unable to create compiled shaders directory %s: %w", paths.CompiledDir(), err)
	}

	toolchain := &compile.Toolchain{
		Binary:   a.project.Compiler.Binary,
		Includes: paths.IncludeDirs(),
		Runner:   a.runner,
	}
	var exec executor.Executor = executor.New(toolchain, paths.CompiledDir(),
		executor.WithProfile(compile.Profile(a.project.Compiler.Profile)))
	gen := codegen.NewGenerator(paths)

	a.logger.Info("🚀 Compiling scenes...", "count", len(scenes))
	failedJobs, totalJobs := 0, 0
	for _, path := range scenes {
		report, err := a.compileScene(ctx, gen, exec, path)
		if err != nil {
			return err
		}
		a.reports = append(a.reports, report)
		failedJobs += len(report.Failed())
		totalJobs += len(report.Outcomes)
	}
	a.logger.Info("🏁 Compilation finished.", "scenes", len(scenes), "jobs", totalJobs, "failed", failedJobs)

	if a.config.Strict && failedJobs > 0 {
		return fmt.Errorf("%w: %d of %d jobs failed", ErrJobsFailed, failedJobs, totalJobs)
	}
	return nil
}

func (a *App) compileScene(ctx context.Context, gen *codegen.Generator, exec executor.Executor, path string) (*executor.Report, error) {
	ctx, logger := ctxlog.With(ctx, "scene_file", path)

	desc, err := scene.Parse(ctx, path)
	if err != nil {
		return nil, err
	}

	source, err := gen.Write(ctx, desc)
	if err != nil {
		return nil, err
	}

	report, err := exec.CompileShaders(ctx, source, a.config.Name)
	if err != nil {
		return nil, fmt.Errorf("failed to compile scene %q: %w", desc.Name, err)
	}

	ev := notify.Event{Scene: desc.Name, Source: source, Artifacts: report.Artifacts()}
	for _, o := range report.Failed() {
		ev.Failed = append(ev.Failed, o.Job.Destination())
	}
	if err := a.notifier.Notify(ctx, ev); err != nil {
		logger.Warn("Failed to notify viewer.", "error", err)
	}
	return report, nil
}

// scenePaths resolves the scene argument into the list of documents to
// compile, sorted.
func (a *App) scenePaths() ([]string, error) {
	root := a.config.ScenePath
	if root == "" {
		root = a.project.Paths.ScenesDir()
	}
	files, err := fsutil.FindFilesByExtension(root, ".json")
	if err != nil {
		return nil, fmt.Errorf("failed to find scenes: %w", err)
	}
	if len(files) == 0 {
		return nil, fmt.Errorf("no scene files found in %s", root)
	}
	a.logger.Debug("Scene files found.", "root", root, "count", len(files))
	return files, nil
}
