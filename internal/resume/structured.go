package resume

import (
	"math"
	"strconv"
	"strings"
)

// Alternate property names probed per canonical field, in priority order. The
// first present value wins. Kept as explicit lists so the accepted input
// shape stays statically visible.
var (
	nameKeys  = []string{"name", "fullName", "full_name"}
	emailKeys = []string{"email", "emailAddress", "email_address"}
	phoneKeys = []string{"phone", "phoneNumber", "phone_number", "mobile"}

	educationKeys   = []string{"education", "educations", "academicHistory"}
	degreeKeys      = []string{"degree", "qualification"}
	institutionKeys = []string{"institution", "school", "university", "college"}
	gradYearKeys    = []string{"graduationYear", "graduation_year", "year"}
	fieldKeys       = []string{"fieldOfStudy", "field", "major"}
	gpaKeys         = []string{"gpa", "grade"}

	experienceKeys  = []string{"experience", "workExperience", "work_history", "jobs"}
	titleKeys       = []string{"title", "jobTitle", "position", "role"}
	companyKeys     = []string{"company", "employer", "organization"}
	startKeys       = []string{"startDate", "start", "from"}
	endKeys         = []string{"endDate", "end", "to"}
	durationKeys    = []string{"durationMonths", "duration"}
	descriptionKeys = []string{"description", "summary", "responsibilities"}
	techKeys        = []string{"technologies", "stack", "tools"}

	skillsKeys      = []string{"skills", "skillSet"}
	skillNameKeys   = []string{"name", "skill"}
	categoryKeys    = []string{"category", "type"}
	proficiencyKeys = []string{"proficiency", "level"}
	yearsKeys       = []string{"years", "yearsOfExperience"}

	certificationKeys = []string{"certifications", "certificates", "licenses"}
	certNameKeys      = []string{"name", "title"}
	issuerKeys        = []string{"issuingOrganization", "issuer", "organization"}
	issueDateKeys     = []string{"issueDate", "issued", "date"}
	expiryDateKeys    = []string{"expiryDate", "expires"}
	credentialKeys    = []string{"credentialId", "credentialID", "id"}
)

// FromStructured maps an already structured resume object onto the canonical
// profile shape, probing alternate property names per field. currentYear is
// used to derive missing experience durations.
func FromStructured(data map[string]any, currentYear int) Profile {
	profile := Profile{
		FullName: probeString(data, nameKeys),
		Email:    probeString(data, emailKeys),
		Phone:    probeString(data, phoneKeys),
	}

	for _, item := range probeSlice(data, educationKeys) {
		entry, ok := asMap(item)
		if !ok {
			continue
		}
		profile.Education = append(profile.Education, Education{
			Degree:         probeString(entry, degreeKeys),
			Institution:    probeString(entry, institutionKeys),
			GraduationYear: probeInt(entry, gradYearKeys),
			FieldOfStudy:   probeString(entry, fieldKeys),
			GPA:            probeFloat(entry, gpaKeys),
		})
	}

	for _, item := range probeSlice(data, experienceKeys) {
		entry, ok := asMap(item)
		if !ok {
			continue
		}
		exp := Experience{
			Title:          probeString(entry, titleKeys),
			Company:        probeString(entry, companyKeys),
			StartDate:      probeString(entry, startKeys),
			EndDate:        probeString(entry, endKeys),
			DurationMonths: probeInt(entry, durationKeys),
			Description:    probeString(entry, descriptionKeys),
			Technologies:   probeStrings(entry, techKeys),
		}
		if exp.DurationMonths == 0 {
			exp.DurationMonths = DeriveDurationMonths(exp.StartDate, exp.EndDate, currentYear)
		}
		profile.WorkExperience = append(profile.WorkExperience, exp)
	}

	for _, item := range probeSlice(data, skillsKeys) {
		// Skill entries may be plain strings or objects.
		if name, ok := item.(string); ok {
			if strings.TrimSpace(name) != "" {
				profile.Skills = append(profile.Skills, Skill{Name: name})
			}
			continue
		}
		entry, ok := asMap(item)
		if !ok {
			continue
		}
		name := probeString(entry, skillNameKeys)
		if name == "" {
			continue
		}
		profile.Skills = append(profile.Skills, Skill{
			Name:        name,
			Category:    probeString(entry, categoryKeys),
			Proficiency: probeString(entry, proficiencyKeys),
			Years:       probeFloat(entry, yearsKeys),
		})
	}

	for _, item := range probeSlice(data, certificationKeys) {
		if name, ok := item.(string); ok {
			if strings.TrimSpace(name) != "" {
				profile.Certifications = append(profile.Certifications, Certification{Name: name})
			}
			continue
		}
		entry, ok := asMap(item)
		if !ok {
			continue
		}
		name := probeString(entry, certNameKeys)
		if name == "" {
			continue
		}
		profile.Certifications = append(profile.Certifications, Certification{
			Name:         name,
			Issuer:       probeString(entry, issuerKeys),
			IssueDate:    probeString(entry, issueDateKeys),
			ExpiryDate:   probeString(entry, expiryDateKeys),
			CredentialID: probeString(entry, credentialKeys),
		})
	}

	profile.Normalize()
	return profile
}

func probeString(m map[string]any, keys []string) string {
	for _, key := range keys {
		value, ok := m[key]
		if !ok {
			continue
		}
		if s, ok := value.(string); ok && strings.TrimSpace(s) != "" {
			return strings.TrimSpace(s)
		}
	}
	return ""
}

func probeInt(m map[string]any, keys []string) int {
	for _, key := range keys {
		value, ok := m[key]
		if !ok {
			continue
		}
		switch v := value.(type) {
		case int:
			return v
		case int64:
			return int(v)
		case float64:
			return int(math.Round(v))
		case string:
			if n, err := strconv.Atoi(strings.TrimSpace(v)); err == nil {
				return n
			}
		}
	}
	return 0
}

func probeFloat(m map[string]any, keys []string) float64 {
	for _, key := range keys {
		value, ok := m[key]
		if !ok {
			continue
		}
		switch v := value.(type) {
		case float64:
			return v
		case int:
			return float64(v)
		case string:
			if f, err := strconv.ParseFloat(strings.TrimSpace(v), 64); err == nil {
				return f
			}
		}
	}
	return 0
}

func probeSlice(m map[string]any, keys []string) []any {
	for _, key := range keys {
		value, ok := m[key]
		if !ok {
			continue
		}
		if items, ok := value.([]any); ok {
			return items
		}
	}
	return nil
}

func probeStrings(m map[string]any, keys []string) []string {
	items := probeSlice(m, keys)
	if len(items) == 0 {
		return nil
	}
	out := make([]string, 0, len(items))
	for _, item := range items {
		if s, ok := item.(string); ok && strings.TrimSpace(s) != "" {
			out = append(out, strings.TrimSpace(s))
		}
	}
	if len(out) == 0 {
		return nil
	}
	return out
}

func asMap(value any) (map[string]any, bool) {
	m, ok := value.(map[string]any)
	return m, ok
}
