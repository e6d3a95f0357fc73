// Package types provides type definitions for the resume and cover letter documents
// edited, rendered and versioned by resume-builder.
//
//nolint:revive // types is a standard Go package name pattern
package types

import "time"

// DefaultResume returns the built-in starter resume.
func DefaultResume() ResumeData {
	return ResumeData{
		PersonalInfo: PersonalInfo{
			FullName:  "Alex Doe",
			JobTitle:  "Senior Frontend Engineer",
			Email:     "alex.doe@example.com",
			Phone:     "(555) 123-4567",
			Location:  "San Francisco, CA",
			LinkedIn:  "linkedin.com/in/alexdoe",
			GitHub:    "github.com/alexdoe",
			Portfolio: "alexdoe.dev",
			Summary:   "Experienced Software Engineer with a passion for building scalable web applications and AI integration. Proven track record of delivering high-quality code in fast-paced environments.",
		},
		Experience: []WorkExperience{
			{
				ID:             "1",
				Company:        "Tech Solutions Inc.",
				Position:       "Senior Frontend Engineer",
				StartDate:      "2021-03",
				EndDate:        "",
				Current:        true,
				Location:       "San Francisco, CA",
				Description:    "• Led a team of 5 developers to rebuild the core customer dashboard using React and TypeScript.\n• Improved application performance by 40% through code splitting and lazy loading.\n• Integrated AI-powered features using Large Language Models to enhance user productivity.",
				EmploymentType: "Full-time",
				LocationType:   "Hybrid",
			},
		},
		Education: []Education{
			{
				ID:           "1",
				Institution:  "University of Technology",
				Degree:       "Bachelor of Science",
				FieldOfStudy: "Computer Science",
				StartDate:    "2014-09",
				EndDate:      "2018-05",
				Current:      false,
				Location:     "Austin, TX",
			},
		},
		Skills: []string{"React", "TypeScript", "Node.js", "Tailwind CSS", "AWS", "GraphQL", "Python", "Git"},
		Projects: []Project{
			{
				ID:           "1",
				Name:         "E-commerce Platform",
				Description:  "A full-featured e-commerce application with cart, checkout, and payment processing.",
				Technologies: []string{"Next.js", "Stripe", "PostgreSQL"},
				Link:         "github.com/alexdoe/ecommerce",
			},
		},
		CustomSections: []CustomSection{},
	}
}

// DefaultCoverLetter returns the built-in starter cover letter dated now.
func DefaultCoverLetter(now time.Time) CoverLetterData {
	return CoverLetterData{
		Recipient: Recipient{
			Name:    "Hiring Manager",
			Title:   "Recruiting Team",
			Company: "Future Corp",
			Address: "123 Innovation Drive, Silicon Valley, CA",
		},
		Date:       now.Format(time.DateOnly),
		Salutation: "Dear Hiring Manager,",
		Paragraphs: []string{
			"I am writing to express my strong interest in the [Job Title] position at [Company Name], as advertised on [Platform]. With my background in software development and my passion for building user-centric applications, I am confident that I would be a valuable addition to your team.",
			"In my previous role at Tech Solutions Inc., I led key frontend initiatives that improved application performance and user engagement. I am particularly impressed by [Company Name]'s commitment to innovation and would love the opportunity to contribute to your upcoming projects.",
			"Thank you for your time and consideration. I look forward to the possibility of discussing how my skills and experience align with the needs of your team.",
		},
		Closing: "Sincerely,",
	}
}

// DefaultAppData returns a fresh starter package.
func DefaultAppData(now time.Time) AppData {
	return AppData{
		Resume:      DefaultResume(),
		CoverLetter: DefaultCoverLetter(now),
	}
}
