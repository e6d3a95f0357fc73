package rendering

import (
	"regexp"
	"strings"

	"github.com/jonathan/resume-builder/internal/types"
)

var (
	bulletMarker = regexp.MustCompile(`^[•-]\s*`)
	urlScheme    = regexp.MustCompile(`^https?://(www\.)?`)
	nonDialable  = regexp.MustCompile(`[^\d+]`)
)

// BulletLines splits a description into display lines: lines are trimmed,
// blank lines dropped and one leading "•" or "-" marker removed from each.
func BulletLines(description string) []string {
	var out []string
	for _, line := range strings.Split(description, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		out = append(out, bulletMarker.ReplaceAllString(line, ""))
	}
	return out
}

// DisplayURL strips the scheme, a leading "www." and one trailing slash.
func DisplayURL(u string) string {
	return strings.TrimSuffix(urlScheme.ReplaceAllString(u, ""), "/")
}

// LinkTarget assumes https for values that do not start with "http".
func LinkTarget(u string) string {
	if strings.HasPrefix(u, "http") {
		return u
	}
	return "https://" + u
}

func phoneTarget(phone string) string {
	return "tel:" + nonDialable.ReplaceAllString(phone, "")
}

// experienceEnd is "Present" for current positions, else the raw end date.
func experienceEnd(exp types.WorkExperience) string {
	if exp.Current {
		return "Present"
	}
	return exp.EndDate
}

func locationSuffix(exp types.WorkExperience) string {
	if exp.LocationType != "" && exp.LocationType != "On-site" {
		return "(" + exp.LocationType + ")"
	}
	return ""
}

func employmentSuffix(exp types.WorkExperience) string {
	if exp.EmploymentType != "" && exp.EmploymentType != "Full-time" {
		return exp.EmploymentType
	}
	return ""
}

// joinNonEmpty joins the non-empty parts with sep.
func joinNonEmpty(sep string, parts ...string) string {
	kept := parts[:0:0]
	for _, p := range parts {
		if p != "" {
			kept = append(kept, p)
		}
	}
	return strings.Join(kept, sep)
}

// dateRange joins start and end with an en dash. end is shown as given,
// so an empty end leaves a trailing dash.
func dateRange(start, end string) string {
	return start + " – " + end
}

// itemDates renders a custom item's date span.
func itemDates(item types.CustomSectionItem) string {
	if item.StartDate != "" && item.EndDate != "" {
		return dateRange(item.StartDate, item.EndDate)
	}
	return item.StartDate
}

// year returns the part before the first "-".
func year(date string) string {
	y, _, _ := strings.Cut(date, "-")
	return y
}

func bulletList(class string, description string) *Node {
	lines := BulletLines(description)
	if len(lines) == 0 {
		return nil
	}
	return El("ul", class, each(lines, func(line string) *Node {
		return TextEl("li", "", line)
	})...)
}

func externalLink(target, class string) *Node {
	return El("a", class, Text("↗")).
		With("href", LinkTarget(target)).
		With("target", "_blank").
		With("rel", "noreferrer")
}

// contactItems renders the header contacts. Empty values are omitted.
func contactItems(tag, class string, pi types.PersonalInfo) []*Node {
	var out []*Node
	if pi.Location != "" {
		out = append(out, TextEl(tag, class+" contact-location", pi.Location))
	}
	if pi.Email != "" {
		out = append(out, El(tag, class+" contact-email",
			TextEl("a", "", pi.Email).With("href", "mailto:"+pi.Email)))
	}
	if pi.Phone != "" {
		out = append(out, El(tag, class+" contact-phone",
			TextEl("a", "", pi.Phone).With("href", phoneTarget(pi.Phone))))
	}
	for _, link := range []struct{ kind, value string }{
		{"linkedin", pi.LinkedIn},
		{"github", pi.GitHub},
		{"portfolio", pi.Portfolio},
	} {
		if link.value == "" {
			continue
		}
		out = append(out, El(tag, class+" contact-"+link.kind,
			TextEl("a", "", DisplayURL(link.value)).
				With("href", LinkTarget(link.value)).
				With("target", "_blank").
				With("rel", "noreferrer")))
	}
	return out
}
