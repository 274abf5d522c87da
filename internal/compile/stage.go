package compile

import "fmt"

// Stage is the pipeline stage an entry point is compiled for. The zero value
// means no stage has been chosen.
type Stage int

const (
	// Vertex compiles the "vertex" entry point.
	Vertex Stage = iota + 1
	// Fragment compiles the "fragment" entry point.
	Fragment
)

// Entry is the entry point name the stage is compiled from.
func (s Stage) Entry() string {
	switch s {
	case Vertex:
		return "vertex"
	case Fragment:
		return "fragment"
	default:
		return ""
	}
}

// Suffix is the artifact suffix used for the stage.
func (s Stage) Suffix() string {
	switch s {
	case Vertex:
		return "vert"
	case Fragment:
		return "frag"
	default:
		return ""
	}
}

// Valid reports whether s is Vertex or Fragment.
func (s Stage) Valid() bool { return s == Vertex || s == Fragment }

func (s Stage) String() string {
	if s.Valid() {
		return s.Entry()
	}
	return fmt.Sprintf("stage(%d)", int(s))
}

// Target is the output format. SpirV is the zero value and the default.
type Target int

const (
	SpirV Target = iota
	Glsl
)

// Flag is the value passed to the compiler's -target option.
func (t Target) Flag() string {
	if t == Glsl {
		return "glsl"
	}
	return "spirv"
}

// Extension is appended to the stage suffix of an artifact: ".spv" for
// SPIR-V binaries and nothing for GLSL text.
func (t Target) Extension() string {
	if t == Glsl {
		return ""
	}
	return ".spv"
}

func (t Target) String() string { return t.Flag() }

// Profile is the shading language profile handed to the compiler.
type Profile string

// DefaultProfile is used when no profile is set.
const DefaultProfile Profile = "glsl_450"
