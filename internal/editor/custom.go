package editor

import (
	"fmt"

	"github.com/jonathan/resume-builder/internal/types"
)

func customSectionID(s types.CustomSection) string { return s.ID }
func itemID(i types.CustomSectionItem) string       { return i.ID }

// AddCustomSection appends an empty section of the given type and returns its id.
func (e *Editor) AddCustomSection(r types.ResumeData, kind types.CustomSectionType) (types.ResumeData, string, error) {
	if !kind.Valid() {
		return r, "", fmt.Errorf("invalid section type %q: must be list or detailed", kind)
	}
	title := "New List Section"
	if kind == types.SectionDetailed {
		title = "New Detailed Section"
	}
	section := types.CustomSection{
		ID:    e.newID(),
		Title: title,
		Type:  kind,
		Items: []types.CustomSectionItem{},
	}
	r.CustomSections = appendItem(r.CustomSections, section)
	return r, section.ID, nil
}

// RenameCustomSection sets the title of the section with the given id.
func RenameCustomSection(r types.ResumeData, id, title string) types.ResumeData {
	r.CustomSections, _ = updateByID(r.CustomSections, id, customSectionID, func(s *types.CustomSection) error {
		s.Title = title
		return nil
	})
	return r
}

// UpdateCustomSection sets a section-level field. Only "title" is mutable.
func UpdateCustomSection(r types.ResumeData, id, field string, value any) (types.ResumeData, error) {
	switch field {
	case "title":
		title, err := asString(value)
		if err != nil {
			return r, fieldErr("section", field, err)
		}
		return RenameCustomSection(r, id, title), nil
	case "id", "type", "items":
		return r, fieldErr("section", field, ErrImmutableField)
	default:
		return r, fieldErr("section", field, ErrUnknownField)
	}
}

// RemoveCustomSection drops the section with the given id.
func RemoveCustomSection(r types.ResumeData, id string) types.ResumeData {
	r.CustomSections = removeByID(r.CustomSections, id, customSectionID)
	return r
}

// MoveCustomSection swaps the section at index with its neighbour.
func MoveCustomSection(r types.ResumeData, index int, dir Direction) types.ResumeData {
	r.CustomSections = Move(r.CustomSections, index, dir)
	return r
}

// AddCustomItem appends an item to the section with the given id, using
// defaults suited to the section's type. The returned id is empty when the
// section does not exist.
func (e *Editor) AddCustomItem(r types.ResumeData, sectionID string) (types.ResumeData, string) {
	var newID string
	r.CustomSections, _ = updateByID(r.CustomSections, sectionID, customSectionID, func(s *types.CustomSection) error {
		item := types.CustomSectionItem{ID: e.newID()}
		if s.Type == types.SectionList {
			item.Name = "Label"
			item.Description = "Value"
		} else {
			item.Name = "Title / Role"
		}
		s.Items = appendItem(s.Items, item)
		newID = item.ID
		return nil
	})
	return r, newID
}

// UpdateCustomItem sets one field of an item inside a section. Every item
// field is settable whatever the section type.
func UpdateCustomItem(r types.ResumeData, sectionID, id, field string, value any) (types.ResumeData, error) {
	sections, err := updateByID(r.CustomSections, sectionID, customSectionID, func(s *types.CustomSection) error {
		items, err := updateByID(s.Items, id, itemID, func(item *types.CustomSectionItem) error {
			return setItemField(item, field, value)
		})
		if err != nil {
			return err
		}
		s.Items = items
		return nil
	})
	if err != nil {
		return r, err
	}
	r.CustomSections = sections
	return r, nil
}

// RemoveCustomItem drops an item from a section.
func RemoveCustomItem(r types.ResumeData, sectionID, id string) types.ResumeData {
	r.CustomSections, _ = updateByID(r.CustomSections, sectionID, customSectionID, func(s *types.CustomSection) error {
		s.Items = removeByID(s.Items, id, itemID)
		return nil
	})
	return r
}

func setItemField(item *types.CustomSectionItem, field string, value any) error {
	const record = "item"
	var err error
	switch field {
	case "id":
		return fieldErr(record, field, ErrImmutableField)
	case "name":
		item.Name, err = asString(value)
	case "description":
		item.Description, err = asString(value)
	case "subtitle":
		item.Subtitle, err = asString(value)
	case "startDate":
		item.StartDate, err = asString(value)
	case "endDate":
		item.EndDate, err = asString(value)
	case "location":
		item.Location, err = asString(value)
	case "url":
		item.URL, err = asString(value)
	default:
		return fieldErr(record, field, ErrUnknownField)
	}
	if err != nil {
		return fieldErr(record, field, err)
	}
	return nil
}
