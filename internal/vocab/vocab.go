// Package vocab holds the fixed reference vocabularies shared by the feature
// extractor and the evaluator. They are defined once here so the two
// components cannot drift apart.
package vocab

import "strings"

// RequiredSkills is the generic list of common skills used for the
// hasRequiredSkills feature signal. It is not job-specific.
var RequiredSkills = []string{
	"JavaScript",
	"Python",
	"Java",
	"React",
	"Node.js",
	"SQL",
	"HTML",
	"CSS",
	"Git",
	"AWS",
	"Docker",
	"TypeScript",
}

// PreferredSkills is the generic list of nice-to-have technologies used for
// the hasPreferredSkills feature signal.
var PreferredSkills = []string{
	"Kubernetes",
	"GraphQL",
	"MongoDB",
	"PostgreSQL",
	"Redis",
	"Terraform",
	"Go",
	"Rust",
	"Kafka",
	"Elasticsearch",
	"Jenkins",
}

// MasterTechnologies is the master technology universe used for the skill
// match percentage and for matching skill tokens inside the skills section of
// a raw resume.
var MasterTechnologies = []string{
	"JavaScript",
	"TypeScript",
	"Python",
	"Java",
	"C++",
	"C#",
	"Go",
	"Rust",
	"Ruby",
	"PHP",
	"Swift",
	"Kotlin",
	"React",
	"Angular",
	"Vue",
	"Node.js",
	"Django",
	"Spring",
	"SQL",
	"MongoDB",
	"PostgreSQL",
	"MySQL",
	"Redis",
	"AWS",
	"Azure",
	"Docker",
	"Kubernetes",
	"Git",
}

// RelevanceKeywords mark a work experience entry as relevant to a software
// role when found in its title or description.
var RelevanceKeywords = []string{
	"software",
	"developer",
	"engineer",
	"programmer",
	"coding",
	"web",
	"application",
	"system",
	"database",
	"frontend",
	"backend",
}

// RelevantFields is the list of fields of study that earn the education
// field bonus.
var RelevantFields = []string{
	"computer science",
	"software engineering",
	"information technology",
	"data science",
	"engineering",
	"mathematics",
	"physics",
}

// KnownCertifications are well-known certification markers matched loosely
// against candidate certification names.
var KnownCertifications = []string{
	"AWS Certified",
	"Microsoft Certified",
	"Google Certified",
	"CISSP",
	"PMP",
	"Scrum Master",
}

// Degree levels, ordered. Rank grows with the level.
const (
	DegreeHighSchool = "high_school"
	DegreeAssociate  = "associate"
	DegreeBachelor   = "bachelor"
	DegreeMaster     = "master"
	DegreePhD        = "phd"
)

// DegreeRank maps a degree level to its position in the five-level hierarchy.
var DegreeRank = map[string]int{
	DegreeHighSchool: 1,
	DegreeAssociate:  2,
	DegreeBachelor:   3,
	DegreeMaster:     4,
	DegreePhD:        5,
}

// degreeKeywords maps degree-text markers to levels, checked from the highest
// level down so the strongest match wins. Words are matched as substrings,
// abbreviations as whole tokens with dots stripped, so that "Diploma" does
// not register as an MA.
var degreeKeywords = []struct {
	Level   string
	Words   []string
	Abbrevs []string
}{
	{DegreePhD, []string{"doctorate", "doctoral"}, []string{"phd"}},
	{DegreeMaster, []string{"master"}, []string{"ms", "msc", "ma", "mba"}},
	{DegreeBachelor, []string{"bachelor"}, []string{"bs", "bsc", "ba"}},
	{DegreeAssociate, []string{"associate"}, []string{"aa", "as"}},
}

// DegreeLevelOf returns the level encoded in a free-text degree string, or
// DegreeHighSchool when no marker is recognized.
func DegreeLevelOf(degree string) string {
	text := strings.ToLower(degree)
	tokens := degreeTokens(text)

	for _, entry := range degreeKeywords {
		for _, word := range entry.Words {
			if strings.Contains(text, word) {
				return entry.Level
			}
		}
		for _, abbrev := range entry.Abbrevs {
			if tokens[abbrev] {
				return entry.Level
			}
		}
	}
	return DegreeHighSchool
}

func degreeTokens(text string) map[string]bool {
	fields := strings.FieldsFunc(text, func(r rune) bool {
		return !(r >= 'a' && r <= 'z') && !(r >= '0' && r <= '9') && r != '.'
	})

	tokens := make(map[string]bool, len(fields))
	for _, field := range fields {
		tokens[strings.ReplaceAll(field, ".", "")] = true
	}
	return tokens
}

// ContainsFold reports whether list has an entry equal to s ignoring case.
func ContainsFold(list []string, s string) bool {
	for _, item := range list {
		if strings.EqualFold(item, s) {
			return true
		}
	}
	return false
}

// AnyContainsFold reports whether any entry of list occurs as a
// case-insensitive substring of s.
func AnyContainsFold(s string, list []string) bool {
	lowered := strings.ToLower(s)
	for _, item := range list {
		if strings.Contains(lowered, strings.ToLower(item)) {
			return true
		}
	}
	return false
}
