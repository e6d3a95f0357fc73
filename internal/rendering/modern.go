package rendering

import (
	"strings"

	"github.com/jonathan/resume-builder/internal/types"
)

// modernTemplate is the two-column layout with a sidebar ("Modern Clean").
type modernTemplate struct{}

func (modernTemplate) ID() types.TemplateID { return types.TemplateModern }
func (modernTemplate) Name() string         { return types.TemplateModern.Name() }
func (modernTemplate) pageClass() string    { return "template-modern" }

func (t modernTemplate) resume(r types.ResumeData) *Node {
	pi := r.PersonalInfo
	sidebar := El("aside", "sidebar",
		El("header", "header",
			TextEl("h1", "name", pi.FullName),
			when(pi.JobTitle != "", func() *Node { return TextEl("h2", "job-title", pi.JobTitle) }),
			El("div", "contacts", contactItems("div", "contact", pi)...),
		),
		when(len(r.Skills) > 0, func() *Node {
			return El("section", "section skills",
				sectionTitle("h3", "sidebar-title", "Skills"),
				El("div", "chips", each(r.Skills, func(skill string) *Node {
					return TextEl("span", "chip", skill)
				})...))
		}),
		when(len(r.Education) > 0, func() *Node {
			return El("section", "section education",
				sectionTitle("h3", "sidebar-title", "Education"),
				El("div", "entries", each(r.Education, func(edu types.Education) *Node {
					return El("div", "entry",
						TextEl("div", "institution strong", edu.Institution),
						TextEl("div", "degree", edu.Degree),
						TextEl("div", "dates muted", dateRange(edu.StartDate, edu.EndDate)))
				})...))
		}),
	)

	main := El("main", "main",
		when(pi.Summary != "", func() *Node {
			return El("section", "section summary",
				sectionTitle("h3", "section-title", "Profile"),
				TextEl("p", "", pi.Summary))
		}),
		when(len(r.Experience) > 0, func() *Node {
			return El("section", "section experience",
				sectionTitle("h3", "section-title", "Experience"),
				El("div", "entries", each(r.Experience, t.experience)...))
		}),
		when(len(r.Projects) > 0, func() *Node {
			return El("section", "section projects",
				sectionTitle("h3", "section-title", "Key Projects"),
				El("div", "cards", each(r.Projects, t.project)...))
		}),
	).Add(each(r.CustomSections, t.custom)...)

	return El("div", "resume modern", sidebar, main)
}

func (modernTemplate) experience(exp types.WorkExperience) *Node {
	employment := employmentSuffix(exp)
	return El("div", "entry timeline",
		El("div", "row",
			El("span", "",
				TextEl("h4", "position", exp.Position),
				when(employment != "", func() *Node { return TextEl("span", "badge", employment) })),
			TextEl("span", "dates muted", dateRange(exp.StartDate, experienceEnd(exp))),
		),
		TextEl("div", "company accent", joinNonEmpty(" ", exp.Company+", "+exp.Location, locationSuffix(exp))),
		bulletList("bullets", exp.Description),
	)
}

func (modernTemplate) project(p types.Project) *Node {
	return El("div", "card",
		El("div", "row",
			TextEl("h4", "project-name", p.Name),
			when(p.Link != "", func() *Node {
				return TextEl("a", "link", "View").
					With("href", LinkTarget(p.Link)).
					With("target", "_blank").
					With("rel", "noreferrer")
			}),
		),
		TextEl("p", "technologies italic muted", strings.Join(p.Technologies, ", ")),
		TextEl("p", "description", p.Description),
	)
}

func (modernTemplate) custom(s types.CustomSection) *Node {
	section := El("section", "section custom custom-"+string(s.Type),
		sectionTitle("h3", "section-title", s.Title))
	if s.Type == types.SectionList {
		return section.Add(El("div", "grid", each(s.Items, func(item types.CustomSectionItem) *Node {
			return El("div", "row list-item",
				TextEl("span", "item-name strong", item.Name),
				TextEl("span", "item-value muted", item.Description))
		})...))
	}
	return section.Add(El("div", "entries", each(s.Items, func(item types.CustomSectionItem) *Node {
		return El("div", "entry timeline",
			El("div", "row",
				El("span", "",
					TextEl("h4", "item-name", item.Name),
					when(item.URL != "", func() *Node { return externalLink(item.URL, "link") })),
				TextEl("span", "dates muted", itemDates(item)),
			),
			when(item.Subtitle != "" || item.Location != "", func() *Node {
				return TextEl("div", "subtitle accent", joinNonEmpty(", ", item.Subtitle, item.Location))
			}),
			bulletList("bullets", item.Description),
		)
	})...))
}

func (modernTemplate) coverLetterHeader(pi types.PersonalInfo) *Node {
	return El("header", "header banner",
		El("div", "",
			TextEl("h1", "name", pi.FullName),
			when(pi.JobTitle != "", func() *Node { return TextEl("h2", "job-title accent", pi.JobTitle) }),
		),
		El("div", "contacts right",
			TextEl("div", "contact", pi.Location),
			TextEl("div", "contact", pi.Email),
			TextEl("div", "contact", pi.Phone),
		),
	)
}
