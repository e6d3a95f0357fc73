package editor

import (
	"strings"

	"github.com/jonathan/resume-builder/internal/types"
)

// Bullet is the glyph used for bullet lines.
const Bullet = "•"

// ParseSkills splits comma separated input into trimmed entries.
// Empty segments are kept, so "React, " yields ["React", ""].
func ParseSkills(input string) []string {
	parts := strings.Split(input, ",")
	for i, p := range parts {
		parts[i] = strings.TrimSpace(p)
	}
	return parts
}

// ParseTechnologies splits a project's technologies the same way skills are split.
func ParseTechnologies(input string) []string {
	return ParseSkills(input)
}

// JoinSkills is the inverse used to present skills as editable text.
func JoinSkills(skills []string) string {
	return strings.Join(skills, ", ")
}

// SetSkills replaces the skills list from comma separated input.
func SetSkills(r types.ResumeData, input string) types.ResumeData {
	r.Skills = ParseSkills(input)
	return r
}

// FormatBullets prefixes every non-blank line with a bullet glyph. Lines that
// already start with a bullet are kept; a leading hyphen becomes a bullet.
// Blank lines are dropped. Applying it twice equals applying it once.
func FormatBullets(text string) string {
	lines := strings.Split(text, "\n")
	out := make([]string, 0, len(lines))
	for _, line := range lines {
		trimmed := strings.TrimSpace(line)
		switch {
		case trimmed == "":
			continue
		case strings.HasPrefix(trimmed, Bullet):
			out = append(out, trimmed)
		case strings.HasPrefix(trimmed, "-"):
			out = append(out, Bullet+strings.TrimPrefix(trimmed, "-"))
		default:
			out = append(out, Bullet+" "+trimmed)
		}
	}
	return strings.Join(out, "\n")
}

// UpdatePersonalInfo sets one header field.
func UpdatePersonalInfo(r types.ResumeData, field string, value any) (types.ResumeData, error) {
	const record = "personalInfo"
	s, err := asString(value)
	if err != nil {
		return r, fieldErr(record, field, err)
	}
	info := r.PersonalInfo
	switch field {
	case "fullName":
		info.FullName = s
	case "jobTitle":
		info.JobTitle = s
	case "email":
		info.Email = s
	case "phone":
		info.Phone = s
	case "location":
		info.Location = s
	case "linkedin":
		info.LinkedIn = s
	case "github":
		info.GitHub = s
	case "portfolio":
		info.Portfolio = s
	case "summary":
		info.Summary = s
	default:
		return r, fieldErr(record, field, ErrUnknownField)
	}
	r.PersonalInfo = info
	return r, nil
}
