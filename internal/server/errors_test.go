package server

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jonathan/resume-builder/internal/editor"
	"github.com/jonathan/resume-builder/internal/exchange"
	"github.com/jonathan/resume-builder/internal/printing"
	"github.com/jonathan/resume-builder/internal/rendering"
	"github.com/jonathan/resume-builder/internal/workspace"
)

func TestErrRequest(t *testing.T) {
	assert.Equal(t, "bad request: index - must be a number", (&ErrRequest{Field: "index", Message: "must be a number"}).Error())
	assert.Equal(t, "bad request: empty body", (&ErrRequest{Message: "empty body"}).Error())
}

func TestHTTPStatus(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		expected int
	}{
		{"confirmation", ErrConfirmationRequired, http.StatusConflict},
		{"wrapped confirmation", fmt.Errorf("restore: %w", ErrConfirmationRequired), http.StatusConflict},
		{"version not found", workspace.ErrVersionNotFound, http.StatusNotFound},
		{"section not found", ErrSectionNotFound, http.StatusNotFound},
		{"printing unavailable", ErrPrintingUnavailable, http.StatusServiceUnavailable},
		{"request", &ErrRequest{Message: "x"}, http.StatusBadRequest},
		{"field", &editor.FieldError{Record: "experience", Field: "salary", Cause: editor.ErrUnknownField}, http.StatusBadRequest},
		{"template", &rendering.TemplateError{Template: "baroque"}, http.StatusBadRequest},
		{"import", &exchange.ValidationError{Kind: exchange.KindMissingKeys}, http.StatusUnprocessableEntity},
		{"print", &printing.Error{Message: "failed"}, http.StatusBadGateway},
		{"other", errors.New("disk on fire"), http.StatusInternalServerError},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, HTTPStatus(tt.err))
		})
	}
}

func TestNewErrorBody(t *testing.T) {
	body := newErrorBody(&exchange.ValidationError{Kind: exchange.KindMalformedJSON, Message: "unexpected end"})
	assert.Equal(t, "Error parsing JSON", body.Error)

	body = newErrorBody(&exchange.ValidationError{Kind: exchange.KindMissingKeys, Fields: []string{"coverLetter"}})
	assert.Equal(t, "Invalid JSON format", body.Error)
	assert.Equal(t, []string{"coverLetter"}, body.Fields)

	assert.Equal(t, "confirmation_required", newErrorBody(ErrConfirmationRequired).Error)
	assert.Equal(t, "internal_error", newErrorBody(errors.New("secret detail")).Error)
}
