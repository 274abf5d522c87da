package app

import (
	"fmt"
	"strings"
)

// Config holds all the necessary configuration for an App instance to run.
type Config struct {
	ScenePath  string // scene file or directory; empty means the project's scenes dir
	ConfigPath string // hcl project file, optional on disk

	Name      string // explicit artifact basename
	Compiler  string // overrides compiler.binary
	NotifyURL string // overrides notify.url
	Strict    bool

	LogFormat string
	LogLevel  string
}

func NewConfig(cfg Config) (*Config, error) {
	if cfg.Name != "" && strings.ContainsAny(cfg.Name, `/\`) {
		return nil, fmt.Errorf("name %q must be a file name, not a path", cfg.Name)
	}
	if cfg.LogFormat == "" {
		cfg.LogFormat = "text"
	}
	if cfg.LogLevel == "" {
		cfg.LogLevel = "info"
	}

	format, err := ParseLogFormat(cfg.LogFormat)
	if err != nil {
		return nil, err
	}
	cfg.LogFormat = format

	if _, err := ParseLogLevel(cfg.LogLevel); err != nil {
		return nil, err
	}
	cfg.LogLevel = strings.ToLower(cfg.LogLevel)
	return &cfg, nil
}
