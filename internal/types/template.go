// Package types provides type definitions for the resume and cover letter documents
// edited, rendered and versioned by resume-builder.
//
//nolint:revive // types is a standard Go package name pattern
package types

import (
	"fmt"

	"github.com/go-playground/validator/v10"
)

// TemplateID names a rendering layout
type TemplateID string

const (
	TemplateClassic TemplateID = "classic"
	TemplateModern  TemplateID = "modern"
	TemplateMinimal TemplateID = "minimal"
)

// DefaultTemplate is used when no template has been chosen yet.
const DefaultTemplate = TemplateClassic

// TemplateInfo describes a template for pickers and listings
type TemplateInfo struct {
	ID   TemplateID `json:"id"`
	Name string     `json:"name"`
}

// Templates is the catalogue of available templates, in display order.
var Templates = []TemplateInfo{
	{ID: TemplateClassic, Name: "Classic ATS"},
	{ID: TemplateModern, Name: "Modern Clean"},
	{ID: TemplateMinimal, Name: "Minimalist"},
}

// ParseTemplateID validates s against the template catalogue.
func ParseTemplateID(s string) (TemplateID, error) {
	validate := validator.New()
	if err := validate.Var(s, "required,oneof=classic modern minimal"); err != nil {
		return "", fmt.Errorf("unknown template %q: must be one of classic, modern, minimal", s)
	}
	return TemplateID(s), nil
}

// Name returns the display name of the template, or the raw id if unknown.
func (id TemplateID) Name() string {
	for _, t := range Templates {
		if t.ID == id {
			return t.Name
		}
	}
	return string(id)
}
