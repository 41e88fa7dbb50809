package pdfgen

import (
	"errors"
	"fmt"
	"strings"
)

// TemplateNotFoundError is returned when a document-type name has no entry
// in the registry. It carries the full list of valid names so callers can
// surface it to clients.
type TemplateNotFoundError struct {
	Name      string
	Available []string
}

func (e *TemplateNotFoundError) Error() string {
	return fmt.Sprintf("pdfgen: template %q not found (available: %s)",
		e.Name, strings.Join(e.Available, ", "))
}

// IsTemplateNotFound reports whether err is a [TemplateNotFoundError].
func IsTemplateNotFound(err error) bool {
	var t *TemplateNotFoundError
	return errors.As(err, &t)
}

// RenderError wraps a failure inside the headless-browser pipeline.
// Stage is one of "launch", "load", "export".
type RenderError struct {
	Stage string
	Err   error
}

func (e *RenderError) Error() string {
	return fmt.Sprintf("pdfgen: render %s: %v", e.Stage, e.Err)
}

func (e *RenderError) Unwrap() error { return e.Err }
