// Package editor implements the section editing operations applied to a resume
// and its cover letter. Every operation returns a new value derived from its
// input; inputs are never mutated.
package editor

import (
	"errors"
	"fmt"
)

// ErrUnknownField is returned when a field name does not exist on the record type.
var ErrUnknownField = errors.New("unknown field")

// ErrImmutableField is returned for fields that cannot change after creation (id, section type).
var ErrImmutableField = errors.New("field is immutable")

// FieldError describes a failed field update
type FieldError struct {
	Record string
	Field  string
	Cause  error
}

func (e *FieldError) Error() string {
	return fmt.Sprintf("%s.%s: %v", e.Record, e.Field, e.Cause)
}

func (e *FieldError) Unwrap() error {
	return e.Cause
}

func fieldErr(record, field string, cause error) error {
	return &FieldError{Record: record, Field: field, Cause: cause}
}
