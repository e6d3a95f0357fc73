package rendering

import (
	"strings"

	"github.com/jonathan/resume-builder/internal/types"
)

// minimalTemplate is the light two-column layout ("Minimalist").
type minimalTemplate struct{}

func (minimalTemplate) ID() types.TemplateID { return types.TemplateMinimal }
func (minimalTemplate) Name() string         { return types.TemplateMinimal.Name() }
func (minimalTemplate) pageClass() string    { return "template-minimal" }

func (t minimalTemplate) resume(r types.ResumeData) *Node {
	pi := r.PersonalInfo
	header := El("header", "header",
		TextEl("h1", "name", pi.FullName),
		when(pi.JobTitle != "", func() *Node { return TextEl("h2", "job-title", pi.JobTitle) }),
		El("div", "contacts", contactItems("span", "contact", pi)...),
	)

	left := El("div", "column-left",
		when(len(r.Education) > 0, func() *Node {
			return El("section", "section education",
				sectionTitle("h2", "section-title", "Education"),
				El("div", "entries", each(r.Education, func(edu types.Education) *Node {
					return El("div", "entry",
						TextEl("div", "institution", edu.Institution),
						TextEl("div", "degree muted", edu.Degree),
						TextEl("div", "dates faint", dateRange(year(edu.StartDate), year(edu.EndDate))))
				})...))
		}),
		when(len(r.Skills) > 0, func() *Node {
			return El("section", "section skills",
				sectionTitle("h2", "section-title", "Skills"),
				El("div", "stack", each(r.Skills, func(skill string) *Node {
					return TextEl("span", "skill", skill)
				})...))
		}),
	)

	right := El("div", "column-right",
		when(pi.Summary != "", func() *Node {
			return El("section", "section summary",
				sectionTitle("h2", "section-title", "About"),
				TextEl("p", "", pi.Summary))
		}),
		when(len(r.Experience) > 0, func() *Node {
			return El("section", "section experience",
				sectionTitle("h2", "section-title", "Experience"),
				El("div", "entries", each(r.Experience, t.experience)...))
		}),
		when(len(r.Projects) > 0, func() *Node {
			return El("section", "section projects",
				sectionTitle("h2", "section-title", "Projects"),
				El("div", "cards", each(r.Projects, func(p types.Project) *Node {
					return El("div", "card",
						TextEl("div", "project-name strong", p.Name),
						TextEl("div", "technologies muted", strings.Join(p.Technologies, ", ")),
						TextEl("p", "description", p.Description))
				})...))
		}),
	).Add(each(r.CustomSections, t.custom)...)

	return El("div", "resume minimal", header, El("div", "columns", left, right))
}

func (minimalTemplate) experience(exp types.WorkExperience) *Node {
	kind := joinNonEmpty(" • ", exp.EmploymentType, exp.LocationType)
	return El("div", "entry",
		El("div", "row",
			TextEl("h3", "position", exp.Position),
			TextEl("span", "dates faint", dateRange(exp.StartDate, experienceEnd(exp))),
		),
		El("div", "company muted",
			Text(exp.Company),
			when(kind != "", func() *Node { return TextEl("span", "kind faint", kind) }),
		),
		bulletList("bullets plain", exp.Description),
	)
}

func (minimalTemplate) custom(s types.CustomSection) *Node {
	section := El("section", "section custom custom-"+string(s.Type),
		sectionTitle("h2", "section-title", s.Title))
	if s.Type == types.SectionList {
		return section.Add(El("div", "list", each(s.Items, func(item types.CustomSectionItem) *Node {
			return El("div", "row list-item",
				TextEl("span", "item-name", item.Name),
				TextEl("span", "item-value muted", item.Description))
		})...))
	}
	return section.Add(El("div", "entries", each(s.Items, func(item types.CustomSectionItem) *Node {
		return El("div", "entry",
			El("div", "row",
				El("span", "",
					TextEl("h3", "item-name", item.Name),
					when(item.URL != "", func() *Node { return externalLink(item.URL, "link") })),
				TextEl("span", "dates faint", itemDates(item)),
			),
			when(item.Subtitle != "" || item.Location != "", func() *Node {
				return TextEl("div", "subtitle muted", joinNonEmpty(" • ", item.Subtitle, item.Location))
			}),
			bulletList("bullets plain", item.Description),
		)
	})...))
}

func (minimalTemplate) coverLetterHeader(pi types.PersonalInfo) *Node {
	return El("header", "header",
		TextEl("h1", "name", pi.FullName),
		El("div", "contacts",
			TextEl("span", "contact", pi.Location),
			TextEl("span", "contact", pi.Email),
			TextEl("span", "contact", pi.Phone),
		),
	)
}
