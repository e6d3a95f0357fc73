// Package schemas compiles JSON Schemas and checks documents against them.
package schemas

import (
	"fmt"
	"strings"

	"github.com/xeipuuv/gojsonschema"
)

// Schema is a compiled JSON Schema, safe for concurrent use.
type Schema struct {
	name     string
	compiled *gojsonschema.Schema
}

// FieldError is one violation, at a dotted field path ("(root)" for the top level).
type FieldError struct {
	Field   string
	Message string
}

// ValidationError lists every violation found in a document
type ValidationError struct {
	Schema string
	Errors []FieldError
}

func (ve *ValidationError) Error() string {
	parts := make([]string, len(ve.Errors))
	for i, e := range ve.Errors {
		parts[i] = e.Field + ": " + e.Message
	}
	return fmt.Sprintf("document does not match %s schema: %s", ve.Schema, strings.Join(parts, "; "))
}

// Fields returns the offending field paths in order.
func (ve *ValidationError) Fields() []string {
	out := make([]string, 0, len(ve.Errors))
	for _, e := range ve.Errors {
		out = append(out, e.Field)
	}
	return out
}

// Messages returns the violation descriptions in order.
func (ve *ValidationError) Messages() []string {
	out := make([]string, 0, len(ve.Errors))
	for _, e := range ve.Errors {
		out = append(out, e.Message)
	}
	return out
}

// SchemaLoadError means the schema itself could not be compiled
type SchemaLoadError struct {
	Schema string
	Cause  error
}

func (e *SchemaLoadError) Error() string {
	return fmt.Sprintf("failed to load schema %s: %v", e.Schema, e.Cause)
}

func (e *SchemaLoadError) Unwrap() error {
	return e.Cause
}

// Compile parses schema content. name only labels errors.
func Compile(name, content string) (*Schema, error) {
	compiled, err := gojsonschema.NewSchema(gojsonschema.NewStringLoader(content))
	if err != nil {
		return nil, &SchemaLoadError{Schema: name, Cause: err}
	}
	return &Schema{name: name, compiled: compiled}, nil
}

// MustCompile is Compile for schemas embedded at build time; it panics on error.
func MustCompile(name, content string) *Schema {
	s, err := Compile(name, content)
	if err != nil {
		panic(err)
	}
	return s
}

// Name returns the label given at compile time.
func (s *Schema) Name() string {
	return s.name
}

// Validate checks doc, which must already be well-formed JSON. A violation
// is reported as *ValidationError.
func (s *Schema) Validate(doc []byte) error {
	result, err := s.compiled.Validate(gojsonschema.NewBytesLoader(doc))
	if err != nil {
		return fmt.Errorf("failed to validate against %s schema: %w", s.name, err)
	}
	if result.Valid() {
		return nil
	}

	ve := &ValidationError{Schema: s.name, Errors: make([]FieldError, 0, len(result.Errors()))}
	for _, desc := range result.Errors() {
		field := desc.Field()
		if field == "" {
			field = "(root)"
		}
		ve.Errors = append(ve.Errors, FieldError{Field: field, Message: desc.Description()})
	}
	return ve
}

// ValidateJSON compiles schemaContent and validates doc in one step.
func ValidateJSON(schemaContent string, doc []byte) error {
	s, err := Compile("inline", schemaContent)
	if err != nil {
		return err
	}
	return s.Validate(doc)
}
