package scene

import "fmt"

// Kind identifies one of the supported SDF primitives.
type Kind int

const (
	// Circle is parameterised by its radius.
	Circle Kind = iota
	// Rect is parameterised by its two half-extents.
	Rect
	// Segment is parameterised by its endpoints A and B as ax, ay, bx, by.
	Segment
)

// Arity returns the number of parameters the kind requires, or -1 for an
// unknown kind.
func (k Kind) Arity() int {
	switch k {
	case Circle:
		return 1
	case Rect:
		return 2
	case Segment:
		return 4
	default:
		return -1
	}
}

// Valid reports whether k is one of the supported kinds.
func (k Kind) Valid() bool { return k.Arity() > 0 }

func (k Kind) String() string {
	switch k {
	case Circle:
		return "circle"
	case Rect:
		return "rect"
	case Segment:
		return "segment"
	default:
		return fmt.Sprintf("kind(%d)", int(k))
	}
}

// Vec2 is a 2D point.
type Vec2 struct {
	X float32
	Y float32
}

// Transform places a shape in the scene.
type Transform struct {
	Position Vec2
	Rotation float32
	Scale    float32
}

// Color is a linear RGBA colour.
type Color struct {
	R float32
	G float32
	B float32
	A float32
}

// ModifierKind tags the active distance modifier of a material.
type ModifierKind int

const (
	ModifierNone ModifierKind = iota
	ModifierOnion
	ModifierRounded
)

func (m ModifierKind) String() string {
	switch m {
	case ModifierNone:
		return "none"
	case ModifierOnion:
		return "onion"
	case ModifierRounded:
		return "rounded"
	default:
		return fmt.Sprintf("modifier(%d)", int(m))
	}
}

// Modifier is the single post-processing operator applied to a shape's
// distance value. Value is the onion thickness or the rounding radius and is
// meaningless for ModifierNone.
type Modifier struct {
	Kind  ModifierKind
	Value float32
}

// Onion hollows a shape into a shell of the given thickness.
func Onion(thickness float32) Modifier {
	return Modifier{Kind: ModifierOnion, Value: thickness}
}

// Rounded rounds a shape's corners with the given radius.
func Rounded(radius float32) Modifier {
	return Modifier{Kind: ModifierRounded, Value: radius}
}

// Material describes how a shape is shaded.
type Material struct {
	Color    Color
	Modifier Modifier
}

// Shape is one primitive of the scene.
type Shape struct {
	Kind      Kind
	Params    []float32
	Transform Transform
	Material  Material
}

// Description is a complete scene.
type Description struct {
	Name         string
	Antialiasing float32
	Gamma        float32
	Shapes       []Shape
}
