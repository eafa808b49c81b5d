package parser

import "strings"

// Section identifies one of the four recognized resume sections.
type Section string

const (
	SectionEducation      Section = "education"
	SectionExperience     Section = "experience"
	SectionSkills         Section = "skills"
	SectionCertifications Section = "certifications"
)

// sectionKeywords are heading markers. A line containing a keyword opens that
// section; a later line containing a keyword of ANY section closes it, so a
// section always ends at the next heading-like line.
var sectionKeywords = map[Section][]string{
	SectionEducation:      {"education", "academic", "degree", "qualification"},
	SectionExperience:     {"experience", "employment", "work history", "career", "professional background"},
	SectionSkills:         {"skills", "technologies", "competencies", "expertise"},
	SectionCertifications: {"certifications", "certificates", "licenses", "credentials"},
}

// ExtractSection returns the content lines of the requested section joined
// with newlines, or an empty string when no opening keyword is found.
func ExtractSection(text string, section Section) string {
	lines := strings.Split(text, "\n")

	var content []string
	open := false
	for _, line := range lines {
		lowered := strings.ToLower(line)

		if !open {
			if containsAny(lowered, sectionKeywords[section]) {
				open = true
			}
			continue
		}

		if isHeadingLine(lowered) {
			break
		}
		content = append(content, line)
	}

	return strings.Join(content, "\n")
}

func isHeadingLine(lowered string) bool {
	for _, keywords := range sectionKeywords {
		if containsAny(lowered, keywords) {
			return true
		}
	}
	return false
}

func containsAny(s string, keywords []string) bool {
	for _, kw := range keywords {
		if strings.Contains(s, kw) {
			return true
		}
	}
	return false
}
