package scene

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vk/sdfc/internal/ctxlog"
)

func testContext(buf *bytes.Buffer) context.Context {
	logger := slog.New(slog.NewTextHandler(buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
	return ctxlog.WithLogger(context.Background(), logger)
}

func TestParse_ValidDocument(t *testing.T) {
	desc, err := Parse(testContext(&bytes.Buffer{}), filepath.Join("testdata", "scene1.2d.json"))
	require.NoError(t, err)

	want := &Description{
		Name:         "Scene 1",
		Antialiasing: 2,
		Gamma:        0.4545,
		Shapes: []Shape{
			{
				Kind:      Circle,
				Params:    []float32{50},
				Transform: Transform{Position: Vec2{X: -120}, Scale: 1},
				Material:  Material{Color: Color{R: 0.9, G: 0.3, B: 0.2, A: 1}, Modifier: Onion(4)},
			},
			{
				Kind:      Rect,
				Params:    []float32{60, 30},
				Transform: Transform{Rotation: 0.785, Scale: 1},
				Material:  Material{Color: Color{R: 0.2, G: 0.6, B: 0.9, A: 1}, Modifier: Rounded(8)},
			},
			{
				Kind:      Segment,
				Params:    []float32{80, -40, 160, 40},
				Transform: Transform{Scale: 1},
				Material:  Material{Color: Color{R: 1, G: 1, B: 1, A: 0.8}},
			},
		},
	}
	if diff := cmp.Diff(want, desc); diff != "" {
		t.Errorf("description mismatch (-want +got):\n%s", diff)
	}
}

func TestParse_MissingFileIsReadError(t *testing.T) {
	path := filepath.Join(t.TempDir(), "missing.json")

	_, err := Parse(testContext(&bytes.Buffer{}), path)

	var readErr *ReadError
	require.ErrorAs(t, err, &readErr)
	assert.Equal(t, path, readErr.Path)
	assert.ErrorIs(t, err, os.ErrNotExist)

	var decodeErr *DecodeError
	assert.False(t, errors.As(err, &decodeErr), "an I/O failure must not look like malformed data")
}

func TestParse_MalformedIsDecodeError(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"name": "x", "shapes": [`), 0o644))

	_, err := Parse(testContext(&bytes.Buffer{}), path)

	var decodeErr *DecodeError
	require.ErrorAs(t, err, &decodeErr)
	assert.Equal(t, path, decodeErr.Path)
	assert.Contains(t, err.Error(), path)

	var readErr *ReadError
	assert.False(t, errors.As(err, &readErr))
}

const (
	fullTransform = `"transform": {"position": {"x": 0, "y": 0}, "rotation": 0, "scale": 1}`
	fullMaterial  = `"material": {"color": {"r": 1, "g": 1, "b": 1, "a": 1}}`
)

// shapeJSON returns a shape object carrying every required key.
func shapeJSON(id int, data string) string {
	return fmt.Sprintf(`{"shape_id": %d, "data": %s, %s, %s}`, id, data, fullTransform, fullMaterial)
}

// sceneJSON wraps shapes into a document with every required top-level key.
func sceneJSON(shapes ...string) string {
	return `{"name": "s", "aliasing": 1, "gamma": 1, "shapes": [` + strings.Join(shapes, ", ") + `]}`
}

func TestDecode_Rejections(t *testing.T) {
	tests := []struct {
		name    string
		doc     string
		wantErr error
		wantKey string
	}{
		{
			name:    "arity mismatch",
			doc:     sceneJSON(shapeJSON(0, "[1, 2]")),
			wantErr: ErrArityMismatch,
		},
		{
			name:    "segment too short",
			doc:     sceneJSON(shapeJSON(2, "[1, 2, 3]")),
			wantErr: ErrArityMismatch,
		},
		{
			name:    "unknown shape id",
			doc:     sceneJSON(shapeJSON(7, "[1]")),
			wantErr: ErrUnknownKind,
		},
		{
			name:    "missing shape id",
			doc:     sceneJSON(`{"data": [1], ` + fullTransform + `, ` + fullMaterial + `}`),
			wantErr: ErrMissingField,
			wantKey: "shapes[0].shape_id",
		},
		{
			name:    "missing name",
			doc:     `{"aliasing": 1, "gamma": 1, "shapes": []}`,
			wantErr: ErrMissingField,
			wantKey: "name",
		},
		{
			name:    "blank name",
			doc:     `{"name": "  ", "aliasing": 1, "gamma": 1, "shapes": []}`,
			wantErr: ErrEmptyName,
		},
		{
			name:    "name escaping the output directory",
			doc:     `{"name": "../../../tmp/Evil One", "aliasing": 1, "gamma": 1, "shapes": []}`,
			wantErr: ErrInvalidName,
		},
		{
			name:    "missing gamma",
			doc:     `{"name": "s", "aliasing": 1, "shapes": []}`,
			wantErr: ErrMissingField,
			wantKey: "gamma",
		},
		{
			name:    "missing aliasing",
			doc:     `{"name": "s", "gamma": 1, "shapes": []}`,
			wantErr: ErrMissingField,
			wantKey: "aliasing",
		},
		{
			name:    "missing shapes",
			doc:     `{"name": "s", "aliasing": 1, "gamma": 1}`,
			wantErr: ErrMissingField,
			wantKey: "shapes",
		},
		{
			name:    "null shapes",
			doc:     `{"name": "s", "aliasing": 1, "gamma": 1, "shapes": null}`,
			wantErr: ErrMissingField,
			wantKey: "shapes",
		},
		{
			name:    "missing data",
			doc:     sceneJSON(`{"shape_id": 0, ` + fullTransform + `, ` + fullMaterial + `}`),
			wantErr: ErrMissingField,
			wantKey: "shapes[0].data",
		},
		{
			name:    "missing transform",
			doc:     sceneJSON(`{"shape_id": 0, "data": [1], ` + fullMaterial + `}`),
			wantErr: ErrMissingField,
			wantKey: "shapes[0].transform",
		},
		{
			name: "missing position",
			doc: sceneJSON(`{"shape_id": 0, "data": [1], "transform": {"rotation": 0, "scale": 1}, ` +
				fullMaterial + `}`),
			wantErr: ErrMissingField,
			wantKey: "shapes[0].transform.position",
		},
		{
			name: "missing position y",
			doc: sceneJSON(`{"shape_id": 0, "data": [1], "transform": {"position": {"x": 1}, "rotation": 0, "scale": 1}, ` +
				fullMaterial + `}`),
			wantErr: ErrMissingField,
			wantKey: "shapes[0].transform.position.y",
		},
		{
			name: "missing scale",
			doc: sceneJSON(`{"shape_id": 0, "data": [1], "transform": {"position": {"x": 0, "y": 0}, "rotation": 0}, ` +
				fullMaterial + `}`),
			wantErr: ErrMissingField,
			wantKey: "shapes[0].transform.scale",
		},
		{
			name:    "missing material",
			doc:     sceneJSON(`{"shape_id": 0, "data": [1], ` + fullTransform + `}`),
			wantErr: ErrMissingField,
			wantKey: "shapes[0].material",
		},
		{
			name:    "missing color",
			doc:     sceneJSON(`{"shape_id": 0, "data": [1], ` + fullTransform + `, "material": {"onion": 1}}`),
			wantErr: ErrMissingField,
			wantKey: "shapes[0].material.color",
		},
		{
			name: "missing alpha",
			doc: sceneJSON(`{"shape_id": 0, "data": [1], ` + fullTransform +
				`, "material": {"color": {"r": 1, "g": 1, "b": 1}}}`),
			wantErr: ErrMissingField,
			wantKey: "shapes[0].material.color.a",
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := Decode(testContext(&bytes.Buffer{}), []byte(tc.doc))

			var decodeErr *DecodeError
			require.ErrorAs(t, err, &decodeErr)
			require.ErrorIs(t, err, tc.wantErr)
			if tc.wantKey != "" {
				assert.Contains(t, err.Error(), tc.wantKey)
			}
		})
	}
}

func TestDecode_ReportsEveryMissingKey(t *testing.T) {
	_, err := Decode(testContext(&bytes.Buffer{}), []byte(`{"name": "s", "shapes": [{"shape_id": 0, "data": [1]}]}`))

	require.ErrorIs(t, err, ErrMissingField)
	for _, key := range []string{"aliasing", "gamma", "shapes[0].transform", "shapes[0].material"} {
		assert.Contains(t, err.Error(), key)
	}
}

func TestDecode_EmptyShapeListIsValid(t *testing.T) {
	desc, err := Decode(testContext(&bytes.Buffer{}), []byte(sceneJSON()))

	require.NoError(t, err)
	assert.Empty(t, desc.Shapes)
	assert.Equal(t, float32(1), desc.Gamma)
}

func TestDecode_WrongTypeIsDecodeError(t *testing.T) {
	_, err := Decode(testContext(&bytes.Buffer{}), []byte(`{"name": 3}`))

	var decodeErr *DecodeError
	require.ErrorAs(t, err, &decodeErr)
}

func TestDecode_BothModifiersPreferOnion(t *testing.T) {
	logs := &bytes.Buffer{}
	doc := sceneJSON(`{"shape_id": 0, "data": [1], ` + fullTransform +
		`, "material": {"color": {"r": 1, "g": 1, "b": 1, "a": 1}, "onion": 0.5, "rounding": 2}}`)

	desc, err := Decode(testContext(logs), []byte(doc))

	require.NoError(t, err)
	assert.Equal(t, Onion(0.5), desc.Shapes[0].Material.Modifier)
	assert.Contains(t, logs.String(), "both onion and rounding")
}

func TestDecode_NoModifier(t *testing.T) {
	doc := sceneJSON(shapeJSON(1, "[1, 2]"))

	desc, err := Decode(testContext(&bytes.Buffer{}), []byte(doc))

	require.NoError(t, err)
	assert.Equal(t, ModifierNone, desc.Shapes[0].Material.Modifier.Kind)
}

func TestMarshal_RoundTrip(t *testing.T) {
	ctx := testContext(&bytes.Buffer{})
	original, err := Parse(ctx, filepath.Join("testdata", "scene1.2d.json"))
	require.NoError(t, err)

	data, err := Marshal(original)
	require.NoError(t, err)
	again, err := Decode(ctx, data)
	require.NoError(t, err)

	if diff := cmp.Diff(original, again); diff != "" {
		t.Errorf("round trip mismatch (-want +got):\n%s", diff)
	}
}

func TestMarshal_WritesOnlyActiveModifier(t *testing.T) {
	desc := &Description{
		Name: "m",
		Shapes: []Shape{
			{Kind: Circle, Params: []float32{1}, Material: Material{Modifier: Rounded(3)}},
		},
	}

	data, err := Marshal(desc)

	require.NoError(t, err)
	assert.Contains(t, string(data), `"rounding": 3`)
	assert.NotContains(t, string(data), `"onion"`)
}
