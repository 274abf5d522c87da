package cli

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"

	"github.com/vk/sdfc/internal/app"
)

// ExitError is a custom error type that includes a specific exit code.
type ExitError struct {
	Code    int
	Message string
}

// Error implements the error interface for ExitError.
func (e *ExitError) Error() string {
	return e.Message
}

// DefaultConfigPath is the project file read when -config is not given.
const DefaultConfigPath = "sdfc.hcl"

// Parse processes command-line arguments. It returns a populated Config,
// a boolean indicating if the program should exit cleanly, or an ExitError.
func Parse(args []string, output io.Writer) (*app.Config, bool, error) {
	slog.Debug("CLI parser started.")
	flagSet := flag.NewFlagSet("sdfc", flag.ContinueOnError)
	flagSet.SetOutput(output)

	flagSet.Usage = func() {
		fmt.Fprint(output, `
sdfc - Compiles 2D SDF scene descriptions into Slang shaders and runs the
Slang compiler on them.

Usage:
  sdfc [options] [SCENE_PATH]

Arguments:
  SCENE_PATH
    Path to a scene .json file or a directory of scene files.
    Defaults to the project's scenes directory.

Options:
`)
		flagSet.PrintDefaults()
	}

	sceneFlag := flagSet.String("scene", "", "Path to the scene file or directory.")
	sFlag := flagSet.String("s", "", "Path to the scene file or directory (shorthand).")
	configFlag := flagSet.String("config", DefaultConfigPath, "Path to the project file. A missing file means built-in defaults.")
	nameFlag := flagSet.String("name", "", "Base name of the compiled artifacts. Only valid with a single scene.")
	compilerFlag := flagSet.String("compiler", "", "Shader compiler binary, overriding the project file.")
	notifyFlag := flagSet.String("notify-url", "", "Socket.io URL of a viewer to notify after each scene.")
	strictFlag := flagSet.Bool("strict", false, "Exit with an error when any compile job fails.")
	logFormatFlag := flagSet.String("log-format", "text", "Log output format. Options: 'text' or 'json'.")
	logLevelFlag := flagSet.String("log-level", "info", "Set the logging level. Options: 'debug', 'info', 'warn', 'error'.")

	if err := flagSet.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil, true, nil
		}
		return nil, false, &ExitError{Code: 2, Message: err.Error()}
	}
	slog.Debug("Arguments parsed successfully.")

	if flagSet.NArg() > 1 {
		return nil, false, &ExitError{Code: 2, Message: fmt.Sprintf("expected at most one scene path, got %d", flagSet.NArg())}
	}

	path := ""
	if *sceneFlag != "" {
		path = *sceneFlag
	} else if *sFlag != "" {
		path = *sFlag
	} else if flagSet.NArg() > 0 {
		path = flagSet.Arg(0)
	}
	slog.Debug("Scene path determined.", "path", path)

	logFormat, err := app.ParseLogFormat(*logFormatFlag)
	if err != nil {
		return nil, false, &ExitError{Code: 2, Message: err.Error()}
	}
	if _, err := app.ParseLogLevel(*logLevelFlag); err != nil {
		return nil, false, &ExitError{Code: 2, Message: err.Error()}
	}
	slog.Debug("CLI parameter validation complete.")

	config, err := app.NewConfig(app.Config{
		ScenePath:  path,
		ConfigPath: *configFlag,
		Name:       *nameFlag,
		Compiler:   *compilerFlag,
		NotifyURL:  *notifyFlag,
		Strict:     *strictFlag,
		LogFormat:  logFormat,
		LogLevel:   *logLevelFlag,
	})
	if err != nil {
		return nil, false, &ExitError{Code: 2, Message: err.Error()}
	}

	slog.Debug("CLI parser finished successfully.", "config", config)
	return config, false, nil
}
