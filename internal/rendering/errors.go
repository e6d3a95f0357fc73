// Package rendering turns resume and cover letter documents into a
// presentation tree in one of three templates, and serializes that tree as
// HTML, a printable page, Markdown or plain text.
package rendering

import (
	"fmt"

	"github.com/jonathan/resume-builder/internal/types"
)

// TemplateError reports a template id with no registered template or no stylesheet.
type TemplateError struct {
	Template types.TemplateID
	Cause    error
}

func (e *TemplateError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("template %q is unavailable: %v", e.Template, e.Cause)
	}
	return fmt.Sprintf("unknown template %q", e.Template)
}

func (e *TemplateError) Unwrap() error { return e.Cause }

// RenderError reports which stage of producing output failed.
type RenderError struct {
	Stage string // "select", "html", "stylesheet" or "markdown"
	Doc   Document
	Cause error
}

func (e *RenderError) Error() string {
	msg := "failed to render"
	if e.Doc != "" {
		msg += " " + string(e.Doc)
	}
	msg += " at " + e.Stage
	if e.Cause != nil {
		msg += ": " + e.Cause.Error()
	}
	return msg
}

func (e *RenderError) Unwrap() error { return e.Cause }
