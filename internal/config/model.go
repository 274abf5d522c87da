package config

import (
	"path/filepath"
	"time"
)

// Model is the unified, format-agnostic representation of the project
// configuration.
type Model struct {
	Paths    Paths
	Compiler Compiler
	Notify   Notify
}

// Paths describes the on-disk layout of a project. Every directory except
// AssetsRoot is relative to AssetsRoot.
type Paths struct {
	AssetsRoot string
	Scenes     string
	Shaders    string
	Generated  string
	Compiled   string
	Core       string
	Template   string
	// Libraries names the shared shader-library directories, relative to
	// Shaders for the user copy and to Core for the built-in copy.
	Libraries []string
}

// Compiler holds the settings for the external shader compiler.
type Compiler struct {
	Binary  string
	Profile string
}

// Notify configures the optional viewer notification. An empty URL disables it.
type Notify struct {
	URL       string
	Namespace string
	Event     string
	Timeout   time.Duration
}

// Default returns the built-in configuration used when no project file is
// present.
func Default() *Model {
	return &Model{
		Paths: Paths{
			AssetsRoot: "assets",
			Scenes:     "scenes",
			Shaders:    "shaders",
			Generated:  "shaders/.generated",
			Compiled:   "shaders/.compiled",
			Core:       "shaders/.core",
			Template:   "shaders/base_2d.slang",
			Libraries:  []string{"sdf2d", "math_utils"},
		},
		Compiler: Compiler{
			Binary:  "slangc",
			Profile: "glsl_450",
		},
		Notify: Notify{
			Namespace: "/",
			Event:     "shaders_compiled",
			Timeout:   5 * time.Second,
		},
	}
}

func (p Paths) join(rel string) string {
	return filepath.Join(p.AssetsRoot, filepath.FromSlash(rel))
}

// ScenesDir is the default location of scene documents.
func (p Paths) ScenesDir() string { return p.join(p.Scenes) }

// GeneratedDir is where generated shader sources are written.
func (p Paths) GeneratedDir() string { return p.join(p.Generated) }

// CompiledDir is where compiled artifacts are written.
func (p Paths) CompiledDir() string { return p.join(p.Compiled) }

// CoreDir is where the built-in shader library is installed.
func (p Paths) CoreDir() string { return p.join(p.Core) }

// TemplatePath is the base shader the generated scene body is injected into.
func (p Paths) TemplatePath() string { return p.join(p.Template) }

// IncludeDirs lists the compiler include directories: every user library
// directory first, then the matching built-in copies.
func (p Paths) IncludeDirs() []string {
	dirs := make([]string, 0, 2*len(p.Libraries))
	for _, lib := range p.Libraries {
		dirs = append(dirs, filepath.Join(p.join(p.Shaders), lib))
	}
	for _, lib := range p.Libraries {
		dirs = append(dirs, filepath.Join(p.CoreDir(), lib))
	}
	return dirs
}
