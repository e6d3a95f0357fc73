// Package server exposes the workspace over an HTTP JSON API.
package server

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/jonathan/resume-builder/internal/editor"
	"github.com/jonathan/resume-builder/internal/exchange"
	"github.com/jonathan/resume-builder/internal/printing"
	"github.com/jonathan/resume-builder/internal/rendering"
	"github.com/jonathan/resume-builder/internal/workspace"
)

// ErrConfirmationRequired is returned when a destructive action arrives without "confirm": true.
var ErrConfirmationRequired = errors.New("confirmation_required")

// ErrSectionNotFound is returned when adding an item to a section that does not exist.
var ErrSectionNotFound = errors.New("section not found")

// ErrPrintingUnavailable is returned for PDF requests when no browser is configured.
var ErrPrintingUnavailable = errors.New("printing is not available on this server")

// ErrRequest indicates a malformed request: bad body, path or query value
type ErrRequest struct {
	Field   string
	Message string
}

func (e *ErrRequest) Error() string {
	if e.Field == "" {
		return fmt.Sprintf("bad request: %s", e.Message)
	}
	return fmt.Sprintf("bad request: %s - %s", e.Field, e.Message)
}

// HTTPStatus returns the appropriate HTTP status code for an error
func HTTPStatus(err error) int {
	var (
		reqErr    *ErrRequest
		fieldErr  *editor.FieldError
		importErr *exchange.ValidationError
		tmplErr   *rendering.TemplateError
		printErr  *printing.Error
	)
	switch {
	case errors.Is(err, ErrConfirmationRequired):
		return http.StatusConflict
	case errors.Is(err, workspace.ErrVersionNotFound), errors.Is(err, ErrSectionNotFound):
		return http.StatusNotFound
	case errors.Is(err, ErrPrintingUnavailable):
		return http.StatusServiceUnavailable
	case errors.As(err, &reqErr), errors.As(err, &fieldErr), errors.As(err, &tmplErr):
		return http.StatusBadRequest
	case errors.As(err, &importErr):
		return http.StatusUnprocessableEntity
	case errors.As(err, &printErr):
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}

// errorBody is the JSON shape of every error response.
type errorBody struct {
	Error   string   `json:"error"`
	Message string   `json:"message,omitempty"`
	Fields  []string `json:"fields,omitempty"`
}

func newErrorBody(err error) errorBody {
	var importErr *exchange.ValidationError
	switch {
	case errors.Is(err, ErrConfirmationRequired):
		return errorBody{Error: "confirmation_required", Message: "this action replaces data; resend with \"confirm\": true"}
	case errors.As(err, &importErr):
		return errorBody{Error: importErr.UserMessage(), Message: importErr.Message, Fields: importErr.Fields}
	case HTTPStatus(err) == http.StatusInternalServerError:
		return errorBody{Error: "internal_error"}
	default:
		return errorBody{Error: err.Error()}
	}
}
