// Package types provides type definitions for the resume and cover letter documents
// edited, rendered and versioned by resume-builder.
//
//nolint:revive // types is a standard Go package name pattern
package types

// CoverLetterData represents the cover letter that accompanies a resume
type CoverLetterData struct {
	Recipient  Recipient `json:"recipient"`
	Date       string    `json:"date"`
	Salutation string    `json:"salutation"`
	Paragraphs []string  `json:"paragraphs"`
	Closing    string    `json:"closing"`
}

// Recipient is the addressee block of a cover letter
type Recipient struct {
	Name    string `json:"name"`
	Title   string `json:"title"`
	Company string `json:"company"`
	Address string `json:"address"`
}

// Clone returns a deep copy of the cover letter.
func (c CoverLetterData) Clone() CoverLetterData {
	out := c
	out.Paragraphs = cloneSlice(c.Paragraphs)
	return out
}
