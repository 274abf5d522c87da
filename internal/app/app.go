package app

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/vk/sdfc/internal/compile"
	"github.com/vk/sdfc/internal/config"
	"github.com/vk/sdfc/internal/ctxlog"
	"github.com/vk/sdfc/internal/executor"
	"github.com/vk/sdfc/internal/notify"
)

// App encapsulates the application's dependencies, configuration, and lifecycle.
type App struct {
	outW     io.Writer
	logger   *slog.Logger
	config   *Config
	project  *config.Model
	runner   compile.Runner
	notifier notify.Notifier
	reports  []*executor.Report
}

// Option customises an App, mostly for tests.
type Option func(*App)

// WithRunner replaces the process runner used to launch the compiler.
func WithRunner(r compile.Runner) Option {
	return func(a *App) {
		a.runner = r
	}
}

// WithNotifier replaces the notifier built from the project file.
func WithNotifier(n notify.Notifier) Option {
	return func(a *App) {
		a.notifier = n
	}
}

// NewApp is the constructor for the main application. It builds an isolated
// logger, loads the project file and applies the command-line overrides. A
// project file that cannot be loaded is a fatal startup error and panics.
func NewApp(outW io.Writer, appConfig *Config, loader config.Loader, opts ...Option) *App {
	// NewConfig has already validated the level; an unchecked Config logs at info.
	level, _ := ParseLogLevel(appConfig.LogLevel)
	logger := newLogger(level, appConfig.LogFormat, outW)
	ctx := ctxlog.WithLogger(context.Background(), logger)
	logger.Debug("Logger configured successfully.")

	project, err := loader.Load(ctx, appConfig.ConfigPath)
	if err != nil {
		panic(fmt.Errorf("failed to load configuration: %w", err))
	}
	if appConfig.Compiler != "" {
		project.Compiler.Binary = appConfig.Compiler
	}
	if appConfig.NotifyURL != "" {
		project.Notify.URL = appConfig.NotifyURL
	}
	logger.Debug("Project configuration loaded.",
		"assets_root", project.Paths.AssetsRoot,
		"compiler", project.Compiler.Binary,
		"notify", project.Notify.URL != "",
	)

	a := &App{
		outW:    outW,
		logger:  logger,
		config:  appConfig,
		project: project,
		runner:  compile.ExecRunner{},
	}
	for _, opt := range opts {
		opt(a)
	}
	if a.notifier == nil {
		a.notifier = notify.New(project.Notify)
	}
	return a
}

// Project returns the effective project configuration.
func (a *App) Project() *config.Model {
	return a.project
}

// Reports returns the compile reports of the last Run, one per scene.
func (a *App) Reports() []*executor.Report {
	return a.reports
}
