// Package printing turns print pages into PDF documents with headless Chrome.
package printing

import "fmt"

// Error reports a failure while printing or inspecting a PDF.
type Error struct {
	Message string
	Cause   error
}

func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Cause)
	}
	return e.Message
}

func (e *Error) Unwrap() error {
	return e.Cause
}
