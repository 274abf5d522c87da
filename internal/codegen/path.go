package codegen

import (
	"path/filepath"
	"strings"

	"github.com/vk/sdfc/internal/config"
)

// Extension is the file extension of generated shader sources.
const Extension = ".slang"

// FileName derives the generated shader file name from a scene name.
func FileName(sceneName string) string {
	return strings.ReplaceAll(strings.ToLower(sceneName), " ", "_") + Extension
}

// OutputPath is where the shader generated for sceneName is written.
func OutputPath(paths config.Paths, sceneName string) string {
	return filepath.Join(paths.GeneratedDir(), FileName(sceneName))
}
