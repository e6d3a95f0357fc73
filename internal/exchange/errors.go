package exchange

import (
	"fmt"
	"strings"
)

// Kind enumerates why an import was rejected.
type Kind string

const (
	// KindMalformedJSON means the input is not JSON at all.
	KindMalformedJSON Kind = "malformed_json"
	// KindMissingKeys means the top-level shape check failed.
	KindMissingKeys Kind = "missing_keys"
	// KindDecode means the JSON had the right keys but a value could not be decoded
	// into the document model (e.g. a string where a list is expected).
	KindDecode Kind = "decode"
)

// ValidationError is the rejection half of a Result.
type ValidationError struct {
	Kind    Kind
	Message string
	Fields  []string
	Cause   error
}

func (e *ValidationError) Error() string {
	msg := fmt.Sprintf("invalid import (%s): %s", e.Kind, e.Message)
	if len(e.Fields) > 0 {
		msg += " [" + strings.Join(e.Fields, ", ") + "]"
	}
	if e.Cause != nil {
		msg += ": " + e.Cause.Error()
	}
	return msg
}

func (e *ValidationError) Unwrap() error {
	return e.Cause
}

// UserMessage is the short notice shown to the person importing the file.
func (e *ValidationError) UserMessage() string {
	if e.Kind == KindMalformedJSON {
		return "Error parsing JSON"
	}
	return "Invalid JSON format"
}
