package executor

import (
	"path/filepath"
	"strings"

	"github.com/vk/sdfc/internal/compile"
)

// variant is one cell of the artifact matrix.
type variant struct {
	stage  compile.Stage
	target compile.Target
}

// matrix is the fixed job order. Consumers rely on it for log ordering.
var matrix = [...]variant{
	{compile.Fragment, compile.SpirV},
	{compile.Vertex, compile.SpirV},
	{compile.Fragment, compile.Glsl},
	{compile.Vertex, compile.Glsl},
}

// Basename is the artifact base name for source: explicit when given,
// otherwise the file name of source without its extension.
func Basename(source, explicit string) string {
	if explicit != "" {
		return explicit
	}
	name := filepath.Base(source)
	return strings.TrimSuffix(name, filepath.Ext(name))
}

// ArtifactName is the file name of one compiled artifact, for example
// "scene.frag.spv" or "scene.vert".
func ArtifactName(basename string, stage compile.Stage, target compile.Target) string {
	return basename + "." + stage.Suffix() + target.Extension()
}
