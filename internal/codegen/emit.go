package codegen

import (
	"fmt"
	"strconv"

	"github.com/vk/sdfc/internal/scene"
)

const indent = "    "

// Generate returns the shader body for desc: the accumulator declaration, one
// block per shape in document order and the final gamma-corrected return.
func Generate(desc *scene.Description) (string, error) {
	b := make([]byte, 0, 256+512*len(desc.Shapes))

	b = append(b, indent+"SDFScene2D scene = SDFScene2D("...)
	b = appendFloat(b, desc.Antialiasing)
	b = append(b, ");\n"...)

	for i := range desc.Shapes {
		var err error
		b, err = appendShape(b, i, &desc.Shapes[i])
		if err != nil {
			return "", fmt.Errorf("shape %d: %w", i, err)
		}
	}

	b = append(b, indent+"return pow(float4(scene.render(), 1.0), "...)
	b = appendFloat(b, desc.Gamma)
	b = append(b, ");\n"...)
	return string(b), nil
}

// VarName is the name of the local holding the shape at index.
func VarName(index int) string {
	return "shape" + strconv.Itoa(index)
}

func appendShape(b []byte, index int, s *scene.Shape) ([]byte, error) {
	if err := s.Validate(); err != nil {
		return b, err
	}
	name := VarName(index)
	p := s.Params

	b = append(b, indent...)
	switch s.Kind {
	case scene.Circle:
		b = appendCall(b, "SDFCircle", name, p[0])
	case scene.Rect:
		b = appendCall(b, "SDFRect", name, p[0], p[1])
	case scene.Segment:
		b = append(b, "SDFSegment "+name+" = SDFSegment(float2("...)
		b = appendFloats(b, p[0], p[1])
		b = append(b, "), float2("...)
		b = appendFloats(b, p[2], p[3])
		b = append(b, "));\n"...)
	}

	t := s.Transform
	b = appendAssign(b, name, "transform.position.x", t.Position.X)
	b = appendAssign(b, name, "transform.position.y", t.Position.Y)
	b = appendAssign(b, name, "transform.rotation", t.Rotation)
	b = appendAssign(b, name, "transform.scale", t.Scale)

	c := s.Material.Color
	b = appendAssign(b, name, "material.color.r", c.R)
	b = appendAssign(b, name, "material.color.g", c.G)
	b = appendAssign(b, name, "material.color.b", c.B)
	b = appendAssign(b, name, "material.color.a", c.A)

	return appendContribution(b, name, s.Material.Modifier), nil
}

// appendContribution emits the single scene.add statement for a shape.
func appendContribution(b []byte, name string, m scene.Modifier) []byte {
	b = append(b, indent+"scene.add("...)
	b = append(b, name...)
	b = append(b, ".sdf(uv)"...)
	switch m.Kind {
	case scene.ModifierOnion:
		b = append(b, ".onion("...)
		b = appendFloat(b, m.Value)
		b = append(b, ')')
	case scene.ModifierRounded:
		b = append(b, ".rounded("...)
		b = appendFloat(b, m.Value)
		b = append(b, ')')
	}
	return append(b, ");\n"...)
}

func appendCall(b []byte, ctor, name string, args ...float32) []byte {
	b = append(b, ctor...)
	b = append(b, ' ')
	b = append(b, name...)
	b = append(b, " = "...)
	b = append(b, ctor...)
	b = append(b, '(')
	b = appendFloats(b, args...)
	return append(b, ");\n"...)
}

func appendAssign(b []byte, name, field string, v float32) []byte {
	b = append(b, indent...)
	b = append(b, name...)
	b = append(b, '.')
	b = append(b, field...)
	b = append(b, " = "...)
	b = appendFloat(b, v)
	return append(b, ";\n"...)
}

// appendFloat writes the shortest decimal that round-trips to v as a float32.
func appendFloat(b []byte, v float32) []byte {
	return strconv.AppendFloat(b, float64(v), 'f', -1, 32)
}

func appendFloats(b []byte, vs ...float32) []byte {
	for i, v := range vs {
		if i > 0 {
			b = append(b, ", "...)
		}
		b = appendFloat(b, v)
	}
	return b
}
