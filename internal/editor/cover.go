package editor

import (
	"github.com/jonathan/resume-builder/internal/types"
)

// UpdateCoverLetter sets a top-level cover letter field (date, salutation, closing)
// or a recipient field addressed as "recipient.<name>".
func UpdateCoverLetter(c types.CoverLetterData, field string, value any) (types.CoverLetterData, error) {
	const record = "coverLetter"
	s, err := asString(value)
	if err != nil {
		return c, fieldErr(record, field, err)
	}
	switch field {
	case "date":
		c.Date = s
	case "salutation":
		c.Salutation = s
	case "closing":
		c.Closing = s
	case "recipient.name":
		c.Recipient.Name = s
	case "recipient.title":
		c.Recipient.Title = s
	case "recipient.company":
		c.Recipient.Company = s
	case "recipient.address":
		c.Recipient.Address = s
	default:
		return c, fieldErr(record, field, ErrUnknownField)
	}
	return c, nil
}

// AddParagraph appends an empty paragraph.
func AddParagraph(c types.CoverLetterData) types.CoverLetterData {
	c.Paragraphs = appendItem(c.Paragraphs, "")
	return c
}

// UpdateParagraph replaces the paragraph at index. Out of range is a no-op.
func UpdateParagraph(c types.CoverLetterData, index int, text string) types.CoverLetterData {
	if index < 0 || index >= len(c.Paragraphs) {
		return c
	}
	c.Paragraphs = copyList(c.Paragraphs)
	c.Paragraphs[index] = text
	return c
}

// RemoveParagraph drops the paragraph at index. Out of range is a no-op.
func RemoveParagraph(c types.CoverLetterData, index int) types.CoverLetterData {
	if index < 0 || index >= len(c.Paragraphs) {
		return c
	}
	out := make([]string, 0, len(c.Paragraphs)-1)
	out = append(out, c.Paragraphs[:index]...)
	c.Paragraphs = append(out, c.Paragraphs[index+1:]...)
	return c
}
