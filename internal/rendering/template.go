package rendering

import (
	"github.com/jonathan/resume-builder/internal/types"
)

// Template is one of the three layouts. The set is closed: only this package
// implements it and Lookup is the only way to obtain one.
type Template interface {
	ID() types.TemplateID
	Name() string

	resume(r types.ResumeData) *Node
	coverLetterHeader(pi types.PersonalInfo) *Node
	pageClass() string
}

var templates = map[types.TemplateID]Template{
	types.TemplateClassic: classicTemplate{},
	types.TemplateModern:  modernTemplate{},
	types.TemplateMinimal: minimalTemplate{},
}

// Lookup returns the template for id.
func Lookup(id types.TemplateID) (Template, error) {
	t, ok := templates[id]
	if !ok {
		return nil, &TemplateError{Template: id}
	}
	return t, nil
}

// Render builds the presentation of a resume in the given template. It
// never modifies r.
func Render(r types.ResumeData, id types.TemplateID) (*Node, error) {
	t, err := Lookup(id)
	if err != nil {
		return nil, err
	}
	return t.resume(r), nil
}

// RenderCoverLetter builds the presentation of a cover letter signed with pi.
func RenderCoverLetter(cl types.CoverLetterData, pi types.PersonalInfo, id types.TemplateID) (*Node, error) {
	t, err := Lookup(id)
	if err != nil {
		return nil, err
	}
	return coverLetter(t, cl, pi), nil
}

// Document selects what to render from a package.
type Document string

const (
	DocumentResume      Document = "resume"
	DocumentCoverLetter Document = "cover-letter"
)

// RenderDocument renders either half of a package.
func RenderDocument(data types.AppData, which Document, id types.TemplateID) (*Node, error) {
	switch which {
	case DocumentResume, "":
		return Render(data.Resume, id)
	case DocumentCoverLetter:
		return RenderCoverLetter(data.CoverLetter, data.Resume.PersonalInfo, id)
	default:
		return nil, &RenderError{Stage: "select", Doc: which}
	}
}

func sectionTitle(tag, class, title string) *Node {
	return TextEl(tag, class, title)
}
