package shaderlib

import (
	"context"
	"embed"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path"
	"path/filepath"

	"github.com/vk/sdfc/internal/config"
	"github.com/vk/sdfc/internal/ctxlog"
)

//go:embed slang
var library embed.FS

const (
	root         = "slang"
	templateFile = "base_2d.slang"
)

// Files returns the embedded library files, relative to the core directory,
// in lexical order.
func Files() ([]string, error) {
	var files []string
	err := fs.WalkDir(library, root, func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}
		rel := p[len(root)+1:]
		files = append(files, rel)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to list embedded shader library: %w", err)
	}
	return files, nil
}

// Read returns the content of one embedded file by its relative name.
func Read(name string) ([]byte, error) {
	return library.ReadFile(path.Join(root, name))
}

// Template returns the built-in base template.
func Template() []byte {
	data, err := Read(templateFile)
	if err != nil {
		// Embedded at build time.
		panic(err)
	}
	return data
}

// Install copies every embedded file into paths.CoreDir(), overwriting what
// is already there, and returns the written paths.
func Install(ctx context.Context, paths config.Paths) ([]string, error) {
	logger := ctxlog.FromContext(ctx)
	dir := paths.CoreDir()

	files, err := Files()
	if err != nil {
		return nil, err
	}

	written := make([]string, 0, len(files))
	for _, name := range files {
		data, err := Read(name)
		if err != nil {
			return written, fmt.Errorf("failed to read embedded shader %s: %w", name, err)
		}
		dest := filepath.Join(dir, filepath.FromSlash(name))
		if err := writeFile(dest, data); err != nil {
			return written, fmt.Errorf("failed to install shader library into %s: %w", dir, err)
		}
		written = append(written, dest)
	}

	logger.Debug("Shader library installed.", "dir", dir, "files", len(written))
	return written, nil
}

// SeedTemplate writes the built-in base template to paths.TemplatePath() when
// no template exists there yet. It reports whether a file was written.
func SeedTemplate(ctx context.Context, paths config.Paths) (bool, error) {
	dest := paths.TemplatePath()
	if _, err := os.Stat(dest); err == nil {
		return false, nil
	} else if !errors.Is(err, fs.ErrNotExist) {
		return false, fmt.Errorf("failed to check base template %s: %w", dest, err)
	}

	if err := writeFile(dest, Template()); err != nil {
		return false, fmt.Errorf("failed to seed base template %s: %w", dest, err)
	}
	ctxlog.FromContext(ctx).Info("Base template created.", "path", dest)
	return true, nil
}

func writeFile(dest string, data []byte) error {
	if err := os.MkdirAll(filepath.Dir(dest), 0o755); err != nil {
		return err
	}
	return os.WriteFile(dest, data, 0o644)
}
