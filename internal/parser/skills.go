package parser

import (
	"regexp"

	"github.com/devansh-cmd/resume-screener/internal/resume"
	"github.com/devansh-cmd/resume-screener/internal/vocab"
)

// termPatterns caches one boundary-aware pattern per vocabulary term so that
// "Java" does not match inside "JavaScript".
var termPatterns = buildTermPatterns(vocab.MasterTechnologies)

func buildTermPatterns(terms []string) map[string]*regexp.Regexp {
	patterns := make(map[string]*regexp.Regexp, len(terms))
	for _, term := range terms {
		expr := `(?i)(^|[^A-Za-z0-9+#.])` + regexp.QuoteMeta(term) + `($|[^A-Za-z0-9+#])`
		patterns[term] = regexp.MustCompile(expr)
	}
	return patterns
}

// extractSkills matches the skills section against the fixed technology
// vocabulary. Every distinct match produces a technical, intermediate skill.
func extractSkills(section string) []resume.Skill {
	if section == "" {
		return nil
	}

	// Padding lets boundary groups match at the section edges.
	padded := " " + section + " "

	var skills []resume.Skill
	for _, term := range vocab.MasterTechnologies {
		if !termPatterns[term].MatchString(padded) {
			continue
		}
		skills = append(skills, resume.Skill{
			Name:        term,
			Category:    resume.CategoryTechnical,
			Proficiency: resume.ProficiencyIntermediate,
		})
	}
	return skills
}
