package parser

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/devansh-cmd/resume-screener/internal/resume"
)

var (
	degreeRe = regexp.MustCompile(`(?i)\b(?:bachelor|master|ph\.?d|doctorate|associate|high school|diploma)(?:'s)?(?:\s+(?:of|in)\s+[a-z][a-z ]*[a-z])?`)

	institutionRe = regexp.MustCompile(`University of [A-Z][A-Za-z]+|[A-Z][A-Za-z]+(?: [A-Z][A-Za-z]+)* (?:University|College|Institute)`)

	yearRe = regexp.MustCompile(`\b(?:19|20)\d{2}\b`)

	fieldOfStudyRe = regexp.MustCompile(`(?i)(?:of|in)\s+([a-z][a-z ]*[a-z])`)
)

// extractEducation matches degree phrases within the education section.
// Institution and graduation year are resolved once per section, the first
// match shared across all degree matches. A known precision trade-off when a
// section holds more than one degree.
func extractEducation(section string) []resume.Education {
	if section == "" {
		return nil
	}

	degrees := degreeRe.FindAllString(section, -1)
	if len(degrees) == 0 {
		return nil
	}

	institution := institutionRe.FindString(section)
	year := 0
	if m := yearRe.FindString(section); m != "" {
		year, _ = strconv.Atoi(m)
	}

	entries := make([]resume.Education, 0, len(degrees))
	for _, degree := range degrees {
		degree = strings.TrimSpace(degree)
		entry := resume.Education{
			Degree:         degree,
			Institution:    institution,
			GraduationYear: year,
		}
		if m := fieldOfStudyRe.FindStringSubmatch(degree); m != nil {
			entry.FieldOfStudy = strings.TrimSpace(m[1])
		}
		entries = append(entries, entry)
	}
	return entries
}
