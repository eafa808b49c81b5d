package parser

import (
	"regexp"
	"strings"

	"github.com/devansh-cmd/resume-screener/internal/resume"
)

// Phrases ending in Certification/Certificate/Certified, with up to a few
// leading words kept as part of the name.
var certificationRe = regexp.MustCompile(`(?i)(?:[A-Za-z][\w+#.-]* ){0,5}(?:certification|certificate|certified)\b`)

// extractCertifications matches certification phrases within the
// certifications section. The issuing organization is not extracted from raw
// text; Normalize later defaults it to Unknown.
func extractCertifications(section string) []resume.Certification {
	if section == "" {
		return nil
	}

	matches := certificationRe.FindAllString(section, -1)
	if len(matches) == 0 {
		return nil
	}

	entries := make([]resume.Certification, 0, len(matches))
	for _, m := range matches {
		name := strings.TrimSpace(m)
		if name == "" {
			continue
		}
		entries = append(entries, resume.Certification{Name: name})
	}
	return entries
}
