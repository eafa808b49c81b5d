// Package parser turns raw resume text or a structured resume object into the
// canonical candidate profile. Raw-text extraction favors simple, explainable
// heuristics over robustness.
package parser

import (
	"fmt"
	"time"

	"github.com/devansh-cmd/resume-screener/internal/resume"
)

// ParsingError reports input whose shape the parser does not recognize.
type ParsingError struct {
	Reason string
}

func (e *ParsingError) Error() string {
	return fmt.Sprintf("parsing resume: %s", e.Reason)
}

// Parser converts resume inputs into canonical profiles. The zero value is
// not usable; create one with New.
type Parser struct {
	// now is swappable in tests. The current year is captured once per
	// Parse call so derived durations stay stable within a call.
	now func() time.Time
}

// New creates a Parser.
func New() *Parser {
	return &Parser{now: time.Now}
}

// Parse dispatches between the raw-text and structured paths and normalizes
// both into one canonical profile shape. It fails only when the input is
// neither raw text nor a structured object.
func (p *Parser) Parse(input resume.Input) (resume.Profile, error) {
	currentYear := p.now().Year()

	switch input.Kind {
	case resume.KindRaw:
		return p.parseRawText(input.Text, currentYear), nil
	case resume.KindStructured:
		if input.Data == nil {
			return resume.Profile{}, &ParsingError{Reason: "structured input has no data"}
		}
		return resume.FromStructured(input.Data, currentYear), nil
	default:
		return resume.Profile{}, &ParsingError{Reason: fmt.Sprintf("unsupported input kind %q", input.Kind)}
	}
}

func (p *Parser) parseRawText(text string, currentYear int) resume.Profile {
	if looksLikeHTML(text) {
		text = stripHTML(text)
	}
	text = NormalizeWhitespace(text)

	profile := resume.Profile{
		FullName:       extractName(text),
		Email:          extractEmail(text),
		Phone:          extractPhone(text),
		Education:      extractEducation(ExtractSection(text, SectionEducation)),
		WorkExperience: extractExperience(ExtractSection(text, SectionExperience), currentYear),
		Skills:         extractSkills(ExtractSection(text, SectionSkills)),
		Certifications: extractCertifications(ExtractSection(text, SectionCertifications)),
		RawText:        text,
	}

	profile.Normalize()
	return profile
}
