package scene

import (
	"errors"
	"fmt"
)

var (
	// ErrUnknownKind is returned for a shape_id outside the supported set.
	ErrUnknownKind = errors.New("unknown shape kind")
	// ErrArityMismatch is returned when a shape's parameter count does not
	// match its kind.
	ErrArityMismatch = errors.New("parameter count does not match shape kind")
	// ErrEmptyName is returned for a scene without a name.
	ErrEmptyName = errors.New("scene name is empty")
	// ErrInvalidName is returned for a scene name that cannot be used as a
	// file name: it contains a path separator or "..".
	ErrInvalidName = errors.New("scene name is not a valid file name")
)

// ReadError reports that a scene file could not be opened or read.
type ReadError struct {
	Path string
	Err  error
}

func (e *ReadError) Error() string {
	return fmt.Sprintf("unable to read scene at path %s: %v", e.Path, e.Err)
}

func (e *ReadError) Unwrap() error { return e.Err }

// DecodeError reports that a scene file was read but is not a well-formed
// scene document.
type DecodeError struct {
	Path string
	Err  error
}

func (e *DecodeError) Error() string {
	if e.Path == "" {
		return fmt.Sprintf("malformed scene document: %v", e.Err)
	}
	return fmt.Sprintf("malformed scene document %s: %v", e.Path, e.Err)
}

func (e *DecodeError) Unwrap() error { return e.Err }
