package codegen

import "fmt"

// TemplateError reports that the base shader template could not be read.
type TemplateError struct {
	Path string
	Err  error
}

func (e *TemplateError) Error() string {
	return fmt.Sprintf("unable to read base shader template %s: %v", e.Path, e.Err)
}

func (e *TemplateError) Unwrap() error { return e.Err }

// WriteError reports that the generated shader could not be written.
type WriteError struct {
	Path string
	Err  error
}

func (e *WriteError) Error() string {
	return fmt.Sprintf("unable to write generated shader %s: %v", e.Path, e.Err)
}

func (e *WriteError) Unwrap() error { return e.Err }
