package scene

import (
	"errors"
	"fmt"
	"strings"
)

// Validate checks the invariants the code generator relies on. All problems
// are reported together.
func (d *Description) Validate() error {
	var errs []error
	if strings.TrimSpace(d.Name) == "" {
		errs = append(errs, ErrEmptyName)
	} else if strings.ContainsAny(d.Name, `/\`) || strings.Contains(d.Name, "..") {
		errs = append(errs, fmt.Errorf("%w: %q", ErrInvalidName, d.Name))
	}
	for i := range d.Shapes {
		if err := d.Shapes[i].Validate(); err != nil {
			errs = append(errs, fmt.Errorf("shape %d: %w", i, err))
		}
	}
	return errors.Join(errs...)
}

// Validate checks that the shape's kind is known and that it carries exactly
// as many parameters as the kind requires.
func (s *Shape) Validate() error {
	if !s.Kind.Valid() {
		return fmt.Errorf("%w: %d", ErrUnknownKind, int(s.Kind))
	}
	if want := s.Kind.Arity(); len(s.Params) != want {
		return fmt.Errorf("%w: %s takes %d, got %d", ErrArityMismatch, s.Kind, want, len(s.Params))
	}
	return nil
}
