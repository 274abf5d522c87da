package config

import "context"

// Loader is the interface for a format-specific configuration loader.
type Loader interface {
	// Load reads the project file at path and returns the resulting model,
	// with every setting the file leaves out filled from Default. A path
	// that does not exist is not an error: the defaults are returned.
	Load(ctx context.Context, path string) (*Model, error)
}
