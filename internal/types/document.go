// Package types provides type definitions for the resume and cover letter documents
// edited, rendered and versioned by resume-builder.
//
//nolint:revive // types is a standard Go package name pattern
package types

// AppData is the persisted root: one resume plus its cover letter.
type AppData struct {
	Resume      ResumeData      `json:"resume"`
	CoverLetter CoverLetterData `json:"coverLetter"`
}

// ResumeData represents a complete resume document
type ResumeData struct {
	PersonalInfo   PersonalInfo     `json:"personalInfo"`
	Experience     []WorkExperience `json:"experience"`
	Education      []Education      `json:"education"`
	Skills         []string         `json:"skills"`
	Projects       []Project        `json:"projects"`
	CustomSections []CustomSection  `json:"customSections"`
}

// PersonalInfo holds the header block of the resume. Only FullName is required.
type PersonalInfo struct {
	FullName  string `json:"fullName"`
	JobTitle  string `json:"jobTitle,omitempty"`
	Email     string `json:"email"`
	Phone     string `json:"phone"`
	Location  string `json:"location"`
	LinkedIn  string `json:"linkedin,omitempty"`
	GitHub    string `json:"github,omitempty"`
	Portfolio string `json:"portfolio,omitempty"`
	Summary   string `json:"summary"`
}

// WorkExperience represents a single position.
// Current and EndDate are independent: Current never clears EndDate.
type WorkExperience struct {
	ID             string `json:"id"`
	Company        string `json:"company"`
	Position       string `json:"position"`
	StartDate      string `json:"startDate"`
	EndDate        string `json:"endDate"`
	Current        bool   `json:"current"`
	Location       string `json:"location"`
	Description    string `json:"description"`
	EmploymentType string `json:"employmentType,omitempty"`
	LocationType   string `json:"locationType,omitempty"`
}

// Education represents a single education entry
type Education struct {
	ID           string `json:"id"`
	Institution  string `json:"institution"`
	Degree       string `json:"degree"`
	FieldOfStudy string `json:"fieldOfStudy"`
	StartDate    string `json:"startDate"`
	EndDate      string `json:"endDate"`
	Current      bool   `json:"current"`
	Location     string `json:"location"`
}

// Project represents a portfolio project
type Project struct {
	ID           string   `json:"id"`
	Name         string   `json:"name"`
	Description  string   `json:"description"`
	Technologies []string `json:"technologies"`
	Link         string   `json:"link,omitempty"`
}

// CustomSectionType selects which item fields a custom section uses.
type CustomSectionType string

const (
	// SectionList holds simple label/value pairs (Name, Description).
	SectionList CustomSectionType = "list"
	// SectionDetailed holds title/subtitle/dates/location/url/description items.
	SectionDetailed CustomSectionType = "detailed"
)

// Valid reports whether t is a known section type.
func (t CustomSectionType) Valid() bool {
	return t == SectionList || t == SectionDetailed
}

// CustomSection is a user-defined section. Type is fixed at creation.
type CustomSection struct {
	ID    string              `json:"id"`
	Title string              `json:"title"`
	Type  CustomSectionType   `json:"type"`
	Items []CustomSectionItem `json:"items"`
}

// CustomSectionItem is an entry of a custom section. All fields persist
// regardless of the owning section's type.
type CustomSectionItem struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Subtitle    string `json:"subtitle,omitempty"`
	StartDate   string `json:"startDate,omitempty"`
	EndDate     string `json:"endDate,omitempty"`
	Location    string `json:"location,omitempty"`
	URL         string `json:"url,omitempty"`
}

// Clone returns a deep copy of the package.
func (a AppData) Clone() AppData {
	return AppData{
		Resume:      a.Resume.Clone(),
		CoverLetter: a.CoverLetter.Clone(),
	}
}

// Clone returns a deep copy of the resume. Nil slices stay nil so that
// a clone is structurally equal to its source.
func (r ResumeData) Clone() ResumeData {
	out := ResumeData{
		PersonalInfo: r.PersonalInfo,
		Experience:   cloneSlice(r.Experience),
		Education:    cloneSlice(r.Education),
		Skills:       cloneSlice(r.Skills),
	}
	if r.Projects != nil {
		out.Projects = make([]Project, len(r.Projects))
		for i, p := range r.Projects {
			p.Technologies = cloneSlice(p.Technologies)
			out.Projects[i] = p
		}
	}
	if r.CustomSections != nil {
		out.CustomSections = make([]CustomSection, len(r.CustomSections))
		for i, s := range r.CustomSections {
			s.Items = cloneSlice(s.Items)
			out.CustomSections[i] = s
		}
	}
	return out
}

// cloneSlice copies a slice of value types, preserving nil.
func cloneSlice[T any](in []T) []T {
	if in == nil {
		return nil
	}
	out := make([]T, len(in))
	copy(out, in)
	return out
}
