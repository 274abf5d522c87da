package scene

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/vk/sdfc/internal/ctxlog"
)

// ErrMissingField is returned when a required document key is absent.
var ErrMissingField = errors.New("missing required field")

// document mirrors the on-disk JSON layout. Every key is a pointer so an
// absent key can be told apart from a zero value; only onion and rounding
// are optional.
type document struct {
	Name     *string         `json:"name"`
	Aliasing *float32        `json:"aliasing"`
	Gamma    *float32        `json:"gamma"`
	Shapes   []shapeDocument `json:"shapes"`
}

type shapeDocument struct {
	ShapeID   *int               `json:"shape_id"`
	Data      []float32          `json:"data"`
	Transform *transformDocument `json:"transform"`
	Material  *materialDocument  `json:"material"`
}

type transformDocument struct {
	Position *vec2Document `json:"position"`
	Rotation *float32      `json:"rotation"`
	Scale    *float32      `json:"scale"`
}

type vec2Document struct {
	X *float32 `json:"x"`
	Y *float32 `json:"y"`
}

// materialDocument keeps the two legacy optional modifier keys. Only one of
// them is ever written back.
type materialDocument struct {
	Color    *colorDocument `json:"color"`
	Onion    *float32       `json:"onion,omitempty"`
	Rounding *float32       `json:"rounding,omitempty"`
}

type colorDocument struct {
	R *float32 `json:"r"`
	G *float32 `json:"g"`
	B *float32 `json:"b"`
	A *float32 `json:"a"`
}

// missingKeys collects the dotted paths of absent required keys.
type missingKeys []string

func (m *missingKeys) check(present bool, key string) bool {
	if !present {
		*m = append(*m, key)
	}
	return present
}

func (m missingKeys) err() error {
	if len(m) == 0 {
		return nil
	}
	return fmt.Errorf("%w: %s", ErrMissingField, strings.Join(m, ", "))
}

func (d *document) checkRequired() error {
	var missing missingKeys
	missing.check(d.Name != nil, "name")
	missing.check(d.Aliasing != nil, "aliasing")
	missing.check(d.Gamma != nil, "gamma")
	missing.check(d.Shapes != nil, "shapes")
	for i := range d.Shapes {
		d.Shapes[i].checkRequired(&missing, fmt.Sprintf("shapes[%d]", i))
	}
	return missing.err()
}

func (s *shapeDocument) checkRequired(missing *missingKeys, prefix string) {
	missing.check(s.ShapeID != nil, prefix+".shape_id")
	missing.check(s.Data != nil, prefix+".data")
	if t := s.Transform; missing.check(t != nil, prefix+".transform") {
		if missing.check(t.Position != nil, prefix+".transform.position") {
			missing.check(t.Position.X != nil, prefix+".transform.position.x")
			missing.check(t.Position.Y != nil, prefix+".transform.position.y")
		}
		missing.check(t.Rotation != nil, prefix+".transform.rotation")
		missing.check(t.Scale != nil, prefix+".transform.scale")
	}
	if m := s.Material; missing.check(m != nil, prefix+".material") {
		if c := m.Color; missing.check(c != nil, prefix+".material.color") {
			missing.check(c.R != nil, prefix+".material.color.r")
			missing.check(c.G != nil, prefix+".material.color.g")
			missing.check(c.B != nil, prefix+".material.color.b")
			missing.check(c.A != nil, prefix+".material.color.a")
		}
	}
}

// Parse reads and decodes the scene document at path. It returns a *ReadError
// when the file cannot be read and a *DecodeError when its content is not a
// valid scene.
func Parse(ctx context.Context, path string) (*Description, error) {
	logger := ctxlog.FromContext(ctx)
	logger.Debug("Reading scene.", "path", path)

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, &ReadError{Path: path, Err: err}
	}

	desc, err := decode(ctx, data)
	if err != nil {
		return nil, &DecodeError{Path: path, Err: err}
	}
	logger.Debug("Scene parsed.", "path", path, "name", desc.Name, "shapes", len(desc.Shapes))
	return desc, nil
}

// Decode decodes a scene document held in memory.
func Decode(ctx context.Context, data []byte) (*Description, error) {
	desc, err := decode(ctx, data)
	if err != nil {
		return nil, &DecodeError{Err: err}
	}
	return desc, nil
}

func decode(ctx context.Context, data []byte) (*Description, error) {
	var doc document
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, err
	}
	if err := doc.checkRequired(); err != nil {
		return nil, err
	}

	desc := &Description{
		Name:         *doc.Name,
		Antialiasing: *doc.Aliasing,
		Gamma:        *doc.Gamma,
		Shapes:       make([]Shape, 0, len(doc.Shapes)),
	}
	for i, sd := range doc.Shapes {
		t, c := sd.Transform, sd.Material.Color
		desc.Shapes = append(desc.Shapes, Shape{
			Kind:   Kind(*sd.ShapeID),
			Params: sd.Data,
			Transform: Transform{
				Position: Vec2{X: *t.Position.X, Y: *t.Position.Y},
				Rotation: *t.Rotation,
				Scale:    *t.Scale,
			},
			Material: Material{
				Color:    Color{R: *c.R, G: *c.G, B: *c.B, A: *c.A},
				Modifier: collapseModifier(ctx, i, sd.Material),
			},
		})
	}

	if err := desc.Validate(); err != nil {
		return nil, err
	}
	return desc, nil
}

// collapseModifier turns the two legacy keys into one Modifier. Documents
// that set both keep the historical behaviour: onion wins.
func collapseModifier(ctx context.Context, index int, m *materialDocument) Modifier {
	switch {
	case m.Onion != nil && m.Rounding != nil:
		ctxlog.FromContext(ctx).Warn("Shape sets both onion and rounding, using onion.",
			"shape", index, "onion", *m.Onion, "rounding", *m.Rounding)
		return Onion(*m.Onion)
	case m.Onion != nil:
		return Onion(*m.Onion)
	case m.Rounding != nil:
		return Rounded(*m.Rounding)
	default:
		return Modifier{}
	}
}

// Marshal serializes desc into the scene document format.
func Marshal(desc *Description) ([]byte, error) {
	doc := document{
		Name:     ptr(desc.Name),
		Aliasing: ptr(desc.Antialiasing),
		Gamma:    ptr(desc.Gamma),
		Shapes:   make([]shapeDocument, 0, len(desc.Shapes)),
	}
	for _, s := range desc.Shapes {
		t, c := s.Transform, s.Material.Color
		md := &materialDocument{
			Color: &colorDocument{R: ptr(c.R), G: ptr(c.G), B: ptr(c.B), A: ptr(c.A)},
		}
		switch s.Material.Modifier.Kind {
		case ModifierOnion:
			md.Onion = ptr(s.Material.Modifier.Value)
		case ModifierRounded:
			md.Rounding = ptr(s.Material.Modifier.Value)
		}
		params := s.Params
		if params == nil {
			params = []float32{}
		}
		doc.Shapes = append(doc.Shapes, shapeDocument{
			ShapeID: ptr(int(s.Kind)),
			Data:    params,
			Transform: &transformDocument{
				Position: &vec2Document{X: ptr(t.Position.X), Y: ptr(t.Position.Y)},
				Rotation: ptr(t.Rotation),
				Scale:    ptr(t.Scale),
			},
			Material: md,
		})
	}
	return json.MarshalIndent(doc, "", "  ")
}

func ptr[T any](v T) *T { return &v }
