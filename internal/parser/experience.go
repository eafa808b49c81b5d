package parser

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/devansh-cmd/resume-screener/internal/resume"
)

var (
	jobTitleRe = regexp.MustCompile(`(?i)\b(?:(?:senior|junior|lead|principal|staff)\s+)?(?:(?:software|web|data|systems?|frontend|backend|full[- ]?stack|devops|qa|machine learning)\s+)?(?:engineer|developer|manager|analyst|consultant|designer|architect|administrator|specialist|scientist|intern)\b`)

	companyRe = regexp.MustCompile(`(?:at|with|for)\s+([A-Z][A-Za-z&.\- ]*?(?:Inc|LLC|Corp|Company|Ltd)\.?)`)
)

// extractExperience matches known job-title tokens within the experience
// section. Company and the start/end years are resolved once per section and
// shared across all title matches, the same first-match trade-off as the
// education extractor. Duration defaults to zero without a start year.
func extractExperience(section string, currentYear int) []resume.Experience {
	if section == "" {
		return nil
	}

	titles := jobTitleRe.FindAllString(section, -1)
	if len(titles) == 0 {
		return nil
	}

	company := ""
	if m := companyRe.FindStringSubmatch(section); m != nil {
		company = strings.TrimSpace(m[1])
	}

	years := yearRe.FindAllString(section, 2)
	startDate, endDate := "", ""
	if len(years) > 0 {
		startDate = years[0]
	}
	if len(years) > 1 {
		endDate = years[1]
	}

	duration := 0
	if startDate != "" {
		start, _ := strconv.Atoi(startDate)
		end := currentYear
		if endDate != "" {
			end, _ = strconv.Atoi(endDate)
		}
		if end >= start {
			duration = (end - start) * 12
		}
	}

	entries := make([]resume.Experience, 0, len(titles))
	for _, title := range titles {
		entries = append(entries, resume.Experience{
			Title:          strings.TrimSpace(title),
			Company:        company,
			StartDate:      startDate,
			EndDate:        endDate,
			DurationMonths: duration,
		})
	}
	return entries
}
