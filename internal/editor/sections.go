package editor

import (
	"github.com/jonathan/resume-builder/internal/types"
)

func experienceID(e types.WorkExperience) string { return e.ID }
func educationID(e types.Education) string       { return e.ID }
func projectID(p types.Project) string           { return p.ID }

// AddExperience inserts a new position at the head of the list and returns its id.
func (e *Editor) AddExperience(r types.ResumeData) (types.ResumeData, string) {
	exp := types.WorkExperience{
		ID:             e.newID(),
		Company:        "New Company",
		Position:       "Position",
		EmploymentType: "Full-time",
		LocationType:   "On-site",
	}
	r.Experience = prepend(r.Experience, exp)
	return r, exp.ID
}

// UpdateExperience sets one field of the position with the given id.
func UpdateExperience(r types.ResumeData, id, field string, value any) (types.ResumeData, error) {
	list, err := updateByID(r.Experience, id, experienceID, func(exp *types.WorkExperience) error {
		return setExperienceField(exp, field, value)
	})
	if err != nil {
		return r, err
	}
	r.Experience = list
	return r, nil
}

// RemoveExperience drops the position with the given id.
func RemoveExperience(r types.ResumeData, id string) types.ResumeData {
	r.Experience = removeByID(r.Experience, id, experienceID)
	return r
}

// MoveExperience swaps the position at index with its neighbour.
func MoveExperience(r types.ResumeData, index int, dir Direction) types.ResumeData {
	r.Experience = Move(r.Experience, index, dir)
	return r
}

// FormatExperienceBullets normalizes the description of the given position into bullet lines.
func FormatExperienceBullets(r types.ResumeData, id string) types.ResumeData {
	list, _ := updateByID(r.Experience, id, experienceID, func(exp *types.WorkExperience) error {
		exp.Description = FormatBullets(exp.Description)
		return nil
	})
	r.Experience = list
	return r
}

func setExperienceField(exp *types.WorkExperience, field string, value any) error {
	const record = "experience"
	var err error
	switch field {
	case "id":
		return fieldErr(record, field, ErrImmutableField)
	case "company":
		exp.Company, err = asString(value)
	case "position":
		exp.Position, err = asString(value)
	case "startDate":
		exp.StartDate, err = asString(value)
	case "endDate":
		exp.EndDate, err = asString(value)
	case "current":
		exp.Current, err = asBool(value)
	case "location":
		exp.Location, err = asString(value)
	case "description":
		exp.Description, err = asString(value)
	case "employmentType":
		exp.EmploymentType, err = asString(value)
	case "locationType":
		exp.LocationType, err = asString(value)
	default:
		return fieldErr(record, field, ErrUnknownField)
	}
	if err != nil {
		return fieldErr(record, field, err)
	}
	return nil
}

// AddEducation inserts a new education entry at the head of the list and returns its id.
func (e *Editor) AddEducation(r types.ResumeData) (types.ResumeData, string) {
	edu := types.Education{
		ID:           e.newID(),
		Institution:  "University",
		Degree:       "Degree",
		FieldOfStudy: "Field",
	}
	r.Education = prepend(r.Education, edu)
	return r, edu.ID
}

// UpdateEducation sets one field of the education entry with the given id.
func UpdateEducation(r types.ResumeData, id, field string, value any) (types.ResumeData, error) {
	list, err := updateByID(r.Education, id, educationID, func(edu *types.Education) error {
		return setEducationField(edu, field, value)
	})
	if err != nil {
		return r, err
	}
	r.Education = list
	return r, nil
}

// RemoveEducation drops the education entry with the given id.
func RemoveEducation(r types.ResumeData, id string) types.ResumeData {
	r.Education = removeByID(r.Education, id, educationID)
	return r
}

func setEducationField(edu *types.Education, field string, value any) error {
	const record = "education"
	var err error
	switch field {
	case "id":
		return fieldErr(record, field, ErrImmutableField)
	case "institution":
		edu.Institution, err = asString(value)
	case "degree":
		edu.Degree, err = asString(value)
	case "fieldOfStudy":
		edu.FieldOfStudy, err = asString(value)
	case "startDate":
		edu.StartDate, err = asString(value)
	case "endDate":
		edu.EndDate, err = asString(value)
	case "current":
		edu.Current, err = asBool(value)
	case "location":
		edu.Location, err = asString(value)
	default:
		return fieldErr(record, field, ErrUnknownField)
	}
	if err != nil {
		return fieldErr(record, field, err)
	}
	return nil
}

// AddProject inserts a new project at the head of the list and returns its id.
func (e *Editor) AddProject(r types.ResumeData) (types.ResumeData, string) {
	proj := types.Project{
		ID:           e.newID(),
		Name:         "Project Name",
		Technologies: []string{},
	}
	r.Projects = prepend(r.Projects, proj)
	return r, proj.ID
}

// UpdateProject sets one field of the project with the given id.
// Technologies accepts a list or a comma separated string.
func UpdateProject(r types.ResumeData, id, field string, value any) (types.ResumeData, error) {
	list, err := updateByID(r.Projects, id, projectID, func(p *types.Project) error {
		return setProjectField(p, field, value)
	})
	if err != nil {
		return r, err
	}
	r.Projects = list
	return r, nil
}

// RemoveProject drops the project with the given id.
func RemoveProject(r types.ResumeData, id string) types.ResumeData {
	r.Projects = removeByID(r.Projects, id, projectID)
	return r
}

func setProjectField(p *types.Project, field string, value any) error {
	const record = "project"
	var err error
	switch field {
	case "id":
		return fieldErr(record, field, ErrImmutableField)
	case "name":
		p.Name, err = asString(value)
	case "description":
		p.Description, err = asString(value)
	case "technologies":
		p.Technologies, err = asList(value)
	case "link":
		p.Link, err = asString(value)
	default:
		return fieldErr(record, field, ErrUnknownField)
	}
	if err != nil {
		return fieldErr(record, field, err)
	}
	return nil
}
