package resume

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFromStructuredAlternateNames(t *testing.T) {
	data := map[string]any{
		"fullName":     "Jane Doe",
		"emailAddress": "jane@example.com",
		"phoneNumber":  "+1-555-000-1111",
		"education": []any{
			map[string]any{
				"qualification":  "Master of Science",
				"school":         "MIT",
				"graduationYear": float64(2019),
				"major":          "Computer Science",
				"gpa":            3.8,
			},
		},
		"workExperience": []any{
			map[string]any{
				"jobTitle": "Backend Developer",
				"employer": "Initech",
				"start":    "2019",
				"end":      "2022",
				"summary":  "Built APIs",
				"stack":    []any{"Go", "PostgreSQL"},
			},
		},
		"skills": []any{
			"Go",
			map[string]any{"name": "Kubernetes", "level": "advanced"},
		},
		"certificates": []any{
			map[string]any{"title": "CKA", "issuer": "CNCF"},
			"AWS Certified Developer",
		},
	}

	profile := FromStructured(data, 2024)

	assert.Equal(t, "Jane Doe", profile.FullName)
	assert.Equal(t, "jane@example.com", profile.Email)
	assert.Equal(t, "+1-555-000-1111", profile.Phone)

	require.Len(t, profile.Education, 1)
	edu := profile.Education[0]
	assert.Equal(t, "Master of Science", edu.Degree)
	assert.Equal(t, "MIT", edu.Institution)
	assert.Equal(t, 2019, edu.GraduationYear)
	assert.Equal(t, "Computer Science", edu.FieldOfStudy)
	assert.InDelta(t, 3.8, edu.GPA, 0.001)

	require.Len(t, profile.WorkExperience, 1)
	exp := profile.WorkExperience[0]
	assert.Equal(t, "Backend Developer", exp.Title)
	assert.Equal(t, "Initech", exp.Company)
	assert.Equal(t, "2019", exp.StartDate)
	assert.Equal(t, "2022", exp.EndDate)
	assert.Equal(t, 36, exp.DurationMonths)
	assert.Equal(t, "Built APIs", exp.Description)
	assert.Equal(t, []string{"Go", "PostgreSQL"}, exp.Technologies)

	require.Len(t, profile.Skills, 2)
	assert.Equal(t, "Go", profile.Skills[0].Name)
	assert.Equal(t, CategoryTechnical, profile.Skills[0].Category)
	assert.Equal(t, ProficiencyIntermediate, profile.Skills[0].Proficiency)
	assert.Equal(t, "Kubernetes", profile.Skills[1].Name)
	assert.Equal(t, "advanced", profile.Skills[1].Proficiency)

	require.Len(t, profile.Certifications, 2)
	assert.Equal(t, "CKA", profile.Certifications[0].Name)
	assert.Equal(t, "CNCF", profile.Certifications[0].Issuer)
	assert.Equal(t, "AWS Certified Developer", profile.Certifications[1].Name)
	assert.Equal(t, UnknownValue, profile.Certifications[1].Issuer)
}

func TestFromStructuredFirstNameWins(t *testing.T) {
	data := map[string]any{
		"name":     "Primary Name",
		"fullName": "Secondary Name",
	}

	profile := FromStructured(data, 2024)
	assert.Equal(t, "Primary Name", profile.FullName)
}

func TestFromStructuredEmptyObject(t *testing.T) {
	profile := FromStructured(map[string]any{}, 2024)

	assert.Equal(t, UnknownValue, profile.FullName)
	assert.Empty(t, profile.Email)
	assert.NotNil(t, profile.Education)
	assert.NotNil(t, profile.WorkExperience)
	assert.NotNil(t, profile.Skills)
	assert.NotNil(t, profile.Certifications)
}

func TestFromStructuredDerivesMissingDuration(t *testing.T) {
	data := map[string]any{
		"experience": []any{
			map[string]any{"title": "Engineer", "startDate": "2021"},
		},
	}

	profile := FromStructured(data, 2024)
	require.Len(t, profile.WorkExperience, 1)
	assert.Equal(t, 36, profile.WorkExperience[0].DurationMonths)
}

func TestDeriveDurationMonths(t *testing.T) {
	tests := []struct {
		name    string
		start   string
		end     string
		current int
		expect  int
	}{
		{"both years", "2018", "2021", 2024, 36},
		{"missing end uses current year", "2022", "", 2024, 24},
		{"missing start", "", "2021", 2024, 0},
		{"end before start", "2022", "2020", 2024, 0},
		{"full dates", "June 2019", "May 2020", 2024, 12},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expect, DeriveDurationMonths(tt.start, tt.end, tt.current))
		})
	}
}

func TestNormalizeDefaults(t *testing.T) {
	p := Profile{
		Skills:         []Skill{{Name: "Go"}},
		Certifications: []Certification{{Name: "CKA"}},
	}
	p.Normalize()

	if p.FullName != UnknownValue {
		t.Fatalf("expected default name, got %q", p.FullName)
	}
	if p.Skills[0].Category != CategoryTechnical || p.Skills[0].Proficiency != ProficiencyIntermediate {
		t.Fatalf("expected skill defaults, got %+v", p.Skills[0])
	}
	if p.Certifications[0].Issuer != UnknownValue {
		t.Fatalf("expected default issuer, got %q", p.Certifications[0].Issuer)
	}
	if p.Education == nil || p.WorkExperience == nil {
		t.Fatalf("expected non-nil lists")
	}
}
