package testutil

import "fmt"

// SceneJSON returns a small valid scene document with one circle, one rect
// and one segment.
func SceneJSON(name string) string {
	return fmt.Sprintf(`{
  "name": %q,
  "aliasing": 1.5,
  "gamma": 0.4545,
  "shapes": [
    {
      "shape_id": 0,
      "data": [50.0],
      "transform": {"position": {"x": 10.0, "y": -20.0}, "rotation": 0.0, "scale": 1.0},
      "material": {"color": {"r": 1.0, "g": 0.5, "b": 0.25, "a": 1.0}, "onion": 2.0}
    },
    {
      "shape_id": 1,
      "data": [30.0, 15.0],
      "transform": {"position": {"x": 0.0, "y": 0.0}, "rotation": 0.5, "scale": 2.0},
      "material": {"color": {"r": 0.0, "g": 0.0, "b": 1.0, "a": 1.0}, "rounding": 3.0}
    },
    {
      "shape_id": 2,
      "data": [0.0, 0.0, 10.0, 10.0],
      "transform": {"position": {"x": 0.0, "y": 0.0}, "rotation": 0.0, "scale": 1.0},
      "material": {"color": {"r": 1.0, "g": 1.0, "b": 1.0, "a": 1.0}}
    }
  ]
}`, name)
}
