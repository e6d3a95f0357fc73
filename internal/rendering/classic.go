package rendering

import (
	"strings"

	"github.com/jonathan/resume-builder/internal/types"
)

// classicTemplate is the single-column serif layout ("Classic ATS").
type classicTemplate struct{}

func (classicTemplate) ID() types.TemplateID { return types.TemplateClassic }
func (classicTemplate) Name() string         { return types.TemplateClassic.Name() }
func (classicTemplate) pageClass() string    { return "template-classic" }

func (t classicTemplate) resume(r types.ResumeData) *Node {
	pi := r.PersonalInfo
	return El("div", "resume classic",
		El("header", "header",
			TextEl("h1", "name", pi.FullName),
			when(pi.JobTitle != "", func() *Node { return TextEl("h2", "job-title", pi.JobTitle) }),
			El("div", "contacts", contactItems("span", "contact", pi)...),
		),
		when(pi.Summary != "", func() *Node {
			return El("section", "section summary",
				sectionTitle("h2", "section-title", "Professional Summary"),
				TextEl("p", "", pi.Summary))
		}),
		when(len(r.Experience) > 0, func() *Node {
			return El("section", "section experience",
				sectionTitle("h2", "section-title", "Work Experience"),
				El("div", "entries", each(r.Experience, t.experience)...))
		}),
		when(len(r.Education) > 0, func() *Node {
			return El("section", "section education",
				sectionTitle("h2", "section-title", "Education"),
				El("div", "entries", each(r.Education, t.education)...))
		}),
		when(len(r.Projects) > 0, func() *Node {
			return El("section", "section projects",
				sectionTitle("h2", "section-title", "Projects"),
				El("div", "entries", each(r.Projects, t.project)...))
		}),
	).Add(each(r.CustomSections, t.custom)...).
		Add(when(len(r.Skills) > 0, func() *Node {
			return El("section", "section skills",
				sectionTitle("h2", "section-title", "Technical Skills"),
				TextEl("p", "", strings.Join(r.Skills, " • ")))
		}))
}

func (classicTemplate) experience(exp types.WorkExperience) *Node {
	return El("div", "entry",
		El("div", "row strong",
			TextEl("h3", "company", exp.Company),
			TextEl("span", "location", joinNonEmpty(" ", exp.Location, locationSuffix(exp))),
		),
		El("div", "row italic",
			TextEl("span", "position", joinNonEmpty(" • ", exp.Position, employmentSuffix(exp))),
			TextEl("span", "dates", dateRange(exp.StartDate, experienceEnd(exp))),
		),
		bulletList("bullets", exp.Description),
	)
}

func (classicTemplate) education(edu types.Education) *Node {
	return El("div", "entry",
		El("div", "row strong",
			TextEl("h3", "institution", edu.Institution),
			TextEl("span", "location", edu.Location),
		),
		El("div", "row italic",
			TextEl("span", "degree", joinNonEmpty(", ", edu.Degree, edu.FieldOfStudy)),
			TextEl("span", "dates", dateRange(edu.StartDate, edu.EndDate)),
		),
	)
}

func (classicTemplate) project(p types.Project) *Node {
	return El("div", "entry",
		El("div", "row strong",
			TextEl("h3", "project-name", p.Name),
			when(p.Link != "", func() *Node { return externalLink(p.Link, "link") }),
		),
		TextEl("p", "technologies italic", strings.Join(p.Technologies, ", ")),
		TextEl("p", "description", p.Description),
	)
}

func (classicTemplate) custom(s types.CustomSection) *Node {
	section := El("section", "section custom custom-"+string(s.Type),
		sectionTitle("h2", "section-title", s.Title))
	if s.Type == types.SectionList {
		return section.Add(El("div", "list", each(s.Items, func(item types.CustomSectionItem) *Node {
			return El("div", "row list-item",
				TextEl("span", "item-name strong", item.Name),
				TextEl("span", "item-value italic", item.Description))
		})...))
	}
	return section.Add(El("div", "entries", each(s.Items, func(item types.CustomSectionItem) *Node {
		return El("div", "entry",
			El("div", "row strong",
				El("span", "",
					TextEl("h3", "item-name", item.Name),
					when(item.URL != "", func() *Node { return externalLink(item.URL, "link") })),
				TextEl("span", "location", item.Location),
			),
			when(item.Subtitle != "" || item.StartDate != "", func() *Node {
				return El("div", "row italic",
					TextEl("span", "subtitle", item.Subtitle),
					TextEl("span", "dates", itemDates(item)))
			}),
			bulletList("bullets", item.Description),
		)
	})...))
}

func (classicTemplate) coverLetterHeader(pi types.PersonalInfo) *Node {
	return El("header", "header",
		TextEl("h1", "name", pi.FullName),
		El("div", "contacts",
			when(pi.Location != "", func() *Node { return TextEl("span", "contact", pi.Location) }),
			when(pi.Email != "", func() *Node { return TextEl("span", "contact", pi.Email) }),
			when(pi.Phone != "", func() *Node { return TextEl("span", "contact", pi.Phone) }),
		),
	)
}
