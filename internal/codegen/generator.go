package codegen

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/vk/sdfc/internal/config"
	"github.com/vk/sdfc/internal/ctxlog"
	"github.com/vk/sdfc/internal/scene"
)

// Generator writes generated shaders for one project layout.
type Generator struct {
	paths config.Paths
}

// NewGenerator creates a Generator reading its template from and writing into
// the directories described by paths.
func NewGenerator(paths config.Paths) *Generator {
	return &Generator{paths: paths}
}

// LoadTemplate reads the base shader template.
func (g *Generator) LoadTemplate() (string, error) {
	path := g.paths.TemplatePath()
	data, err := os.ReadFile(path)
	if err != nil {
		return "", &TemplateError{Path: path, Err: err}
	}
	return string(data), nil
}

// Write validates desc, generates its shader, injects it into the base
// template and writes the result to OutputPath, replacing any previous file.
// It returns the written path.
func (g *Generator) Write(ctx context.Context, desc *scene.Description) (string, error) {
	logger := ctxlog.FromContext(ctx)

	if err := desc.Validate(); err != nil {
		return "", fmt.Errorf("invalid scene %q: %w", desc.Name, err)
	}

	template, err := g.LoadTemplate()
	if err != nil {
		return "", err
	}

	body, err := Generate(desc)
	if err != nil {
		return "", fmt.Errorf("failed to generate shader for scene %q: %w", desc.Name, err)
	}

	text, found := Inject(template, body)
	if !found {
		logger.Warn("Base template has no injection marker, writing it unchanged.",
			"template", g.paths.TemplatePath(), "marker", Marker)
	}

	path := OutputPath(g.paths, desc.Name)
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return "", &WriteError{Path: path, Err: err}
	}
	if err := os.WriteFile(path, []byte(text), 0o644); err != nil {
		return "", &WriteError{Path: path, Err: err}
	}

	logger.Info("Shader generated.", "scene", desc.Name, "path", path, "shapes", len(desc.Shapes))
	return path, nil
}
