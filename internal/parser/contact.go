package parser

import (
	"regexp"
	"strings"

	"github.com/devansh-cmd/resume-screener/internal/resume"
)

var (
	// Name candidates, tried in order. First matching pattern wins.
	leadingNameRe = regexp.MustCompile(`^[A-Z][a-z]+( [A-Z][a-z]+){1,3}$`)
	labeledNameRe = regexp.MustCompile(`(?im)^name\s*:\s*(.+)$`)
	resumeLineRe  = regexp.MustCompile(`(?im)^(.+?)(?:'s)?\s+resume\s*$`)

	emailRe = regexp.MustCompile(`\b[A-Za-z0-9._%+-]+@[A-Za-z0-9.-]+\.[A-Za-z]{2,}\b`)

	// North-American style first, generic international digit groups second.
	naPhoneRe   = regexp.MustCompile(`(\+?1[-.\s]?)?\(?\d{3}\)?[-.\s]?\d{3}[-.\s]?\d{4}`)
	intlPhoneRe = regexp.MustCompile(`\+?\d{1,3}(?:[-.\s]\d{2,4}){2,4}`)

	phoneSeparatorRe = regexp.MustCompile(`[^\d+]`)
)

func extractName(text string) string {
	firstLine, _, _ := strings.Cut(text, "\n")
	if leadingNameRe.MatchString(strings.TrimSpace(firstLine)) {
		return strings.TrimSpace(firstLine)
	}

	if m := labeledNameRe.FindStringSubmatch(text); m != nil {
		return strings.TrimSpace(m[1])
	}

	if m := resumeLineRe.FindStringSubmatch(text); m != nil {
		return strings.TrimSpace(m[1])
	}

	return resume.UnknownValue
}

func extractEmail(text string) string {
	return emailRe.FindString(text)
}

func extractPhone(text string) string {
	match := naPhoneRe.FindString(text)
	if match == "" {
		match = intlPhoneRe.FindString(text)
	}
	if match == "" {
		return ""
	}

	// Separators are stripped before storing; a leading plus survives.
	return phoneSeparatorRe.ReplaceAllString(match, "")
}
