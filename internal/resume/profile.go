// Package resume defines the canonical candidate profile produced by the
// parser and consumed by the rest of the screening pipeline.
package resume

import "strings"

// UnknownValue is the default for required text fields that could not be
// extracted. Required fields are never empty in a normalized profile.
const UnknownValue = "Unknown"

// Skill categories.
const (
	CategoryTechnical = "technical"
	CategorySoft      = "soft"
	CategoryLanguage  = "language"
	CategoryTool      = "tool"
)

// Proficiency levels.
const (
	ProficiencyBeginner     = "beginner"
	ProficiencyIntermediate = "intermediate"
	ProficiencyAdvanced     = "advanced"
	ProficiencyExpert       = "expert"
)

// Profile is the canonical candidate representation, independent of the
// original input format.
type Profile struct {
	FullName       string          `json:"fullName"`
	Email          string          `json:"email"`
	Phone          string          `json:"phone"`
	Education      []Education     `json:"education"`
	WorkExperience []Experience    `json:"workExperience"`
	Skills         []Skill         `json:"skills"`
	Certifications []Certification `json:"certifications"`
	RawText        string          `json:"rawText,omitempty"`
}

// Education is a single education entry.
type Education struct {
	Degree         string  `json:"degree"`
	Institution    string  `json:"institution"`
	GraduationYear int     `json:"graduationYear,omitempty"`
	FieldOfStudy   string  `json:"fieldOfStudy,omitempty"`
	GPA            float64 `json:"gpa,omitempty"`
}

// Experience is a single work experience entry. DurationMonths is derived
// from the start and end years when the source does not provide it.
type Experience struct {
	Title          string   `json:"title"`
	Company        string   `json:"company"`
	StartDate      string   `json:"startDate"`
	EndDate        string   `json:"endDate,omitempty"`
	DurationMonths int      `json:"durationMonths"`
	Description    string   `json:"description,omitempty"`
	Technologies   []string `json:"technologies,omitempty"`
}

// Skill is a single candidate skill.
type Skill struct {
	Name        string  `json:"name"`
	Category    string  `json:"category"`
	Proficiency string  `json:"proficiency,omitempty"`
	Years       float64 `json:"years,omitempty"`
}

// Certification is a single candidate certification.
type Certification struct {
	Name         string `json:"name"`
	Issuer       string `json:"issuingOrganization"`
	IssueDate    string `json:"issueDate,omitempty"`
	ExpiryDate   string `json:"expiryDate,omitempty"`
	CredentialID string `json:"credentialId,omitempty"`
}

// Normalize fills the documented defaults so that required fields are never
// empty and list fields are never nil.
func (p *Profile) Normalize() {
	if strings.TrimSpace(p.FullName) == "" {
		p.FullName = UnknownValue
	}
	if p.Education == nil {
		p.Education = []Education{}
	}
	if p.WorkExperience == nil {
		p.WorkExperience = []Experience{}
	}
	if p.Skills == nil {
		p.Skills = []Skill{}
	}
	if p.Certifications == nil {
		p.Certifications = []Certification{}
	}

	for i := range p.Skills {
		if p.Skills[i].Category == "" {
			p.Skills[i].Category = CategoryTechnical
		}
		if p.Skills[i].Proficiency == "" {
			p.Skills[i].Proficiency = ProficiencyIntermediate
		}
	}
	for i := range p.Certifications {
		if strings.TrimSpace(p.Certifications[i].Issuer) == "" {
			p.Certifications[i].Issuer = UnknownValue
		}
	}
}

// SkillNames returns the candidate skill names in order.
func (p *Profile) SkillNames() []string {
	names := make([]string, 0, len(p.Skills))
	for _, s := range p.Skills {
		names = append(names, s.Name)
	}
	return names
}

// HasSkill reports whether the candidate lists a skill with the given name,
// ignoring case.
func (p *Profile) HasSkill(name string) bool {
	for _, s := range p.Skills {
		if strings.EqualFold(s.Name, name) {
			return true
		}
	}
	return false
}

// TotalExperienceMonths sums the duration of all work experience entries.
func (p *Profile) TotalExperienceMonths() int {
	total := 0
	for _, e := range p.WorkExperience {
		total += e.DurationMonths
	}
	return total
}

// DeriveDurationMonths computes the duration of an entry from its start and
// end years. The current year substitutes a missing end date. Entries without
// a usable start year get a zero duration.
func DeriveDurationMonths(startDate, endDate string, currentYear int) int {
	start := yearOf(startDate)
	if start == 0 {
		return 0
	}
	end := yearOf(endDate)
	if end == 0 {
		end = currentYear
	}
	months := (end - start) * 12
	if months < 0 {
		return 0
	}
	return months
}

func yearOf(date string) int {
	digits := 0
	year := 0
	for _, r := range date {
		if r >= '0' && r <= '9' {
			year = year*10 + int(r-'0')
			digits++
			if digits == 4 {
				if year >= 1900 && year <= 2099 {
					return year
				}
				digits, year = 0, 0
			}
			continue
		}
		digits, year = 0, 0
	}
	return 0
}
