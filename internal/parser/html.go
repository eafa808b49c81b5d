package parser

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// looksLikeHTML is a cheap check for resumes pasted as markup.
func looksLikeHTML(text string) bool {
	trimmed := strings.TrimSpace(strings.ToLower(text))
	return strings.HasPrefix(trimmed, "<!doctype html") ||
		strings.HasPrefix(trimmed, "<html") ||
		strings.Contains(trimmed, "<body")
}

// stripHTML flattens markup to plain text, one block element per line, so the
// regular text heuristics can run on it. On malformed markup the original
// text is returned untouched.
func stripHTML(text string) string {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(text))
	if err != nil {
		return text
	}

	doc.Find("script, style").Remove()

	var b strings.Builder
	// Nested containers are skipped so lines are not emitted twice.
	doc.Find("p, li, h1, h2, h3, h4, h5, h6, td").Each(func(_ int, s *goquery.Selection) {
		line := strings.TrimSpace(s.Text())
		if line == "" {
			return
		}
		b.WriteString(line)
		b.WriteString("\n")
	})

	if b.Len() == 0 {
		return strings.TrimSpace(doc.Text())
	}
	return b.String()
}
