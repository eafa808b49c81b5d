package features

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/devansh-cmd/resume-screener/internal/resume"
	"github.com/devansh-cmd/resume-screener/internal/vocab"
)

func TestExtractEmptyProfile(t *testing.T) {
	var profile resume.Profile
	profile.Normalize()

	feats := Extract(profile)

	assert.False(t, feats.HasRequiredSkills)
	assert.False(t, feats.HasPreferredSkills)
	assert.False(t, feats.MeetsExperienceRequirement)
	assert.False(t, feats.MeetsEducationRequirement)
	// Vacuously true without any certifications.
	assert.True(t, feats.HasRequiredCertifications)
	assert.Zero(t, feats.TotalYearsExperience)
	assert.Zero(t, feats.SkillMatchPercentage)
	assert.Equal(t, vocab.DegreeHighSchool, feats.EducationLevel)
}

func TestExtractFullProfile(t *testing.T) {
	profile := resume.Profile{
		WorkExperience: []resume.Experience{
			{Title: "Software Engineer", DurationMonths: 24},
			{Title: "Senior Engineer", DurationMonths: 30},
		},
		Skills: []resume.Skill{
			{Name: "javascript"},
			{Name: "Kubernetes"},
			{Name: "Photoshop"},
		},
		Education: []resume.Education{
			{Degree: "Bachelor of Science"},
			{Degree: "Master of Science"},
		},
		Certifications: []resume.Certification{
			{Name: "AWS Certified Solutions Architect"},
		},
	}
	profile.Normalize()

	feats := Extract(profile)

	// Case-insensitive reference matching.
	assert.True(t, feats.HasRequiredSkills)
	assert.True(t, feats.HasPreferredSkills)
	assert.True(t, feats.MeetsExperienceRequirement)
	assert.True(t, feats.MeetsEducationRequirement)
	assert.True(t, feats.HasRequiredCertifications)

	// 54 months rounds to 5 years.
	assert.Equal(t, 5, feats.TotalYearsExperience)
	assert.Equal(t, vocab.DegreeMaster, feats.EducationLevel)
}

func TestExtractUnknownCertificationsOnly(t *testing.T) {
	profile := resume.Profile{
		Certifications: []resume.Certification{{Name: "Advanced Basket Weaving"}},
	}
	profile.Normalize()

	feats := Extract(profile)
	assert.False(t, feats.HasRequiredCertifications)
}

func TestSkillMatchPercentageBounds(t *testing.T) {
	assert.Zero(t, SkillMatchPercentage(resume.Profile{}))

	all := resume.Profile{}
	for _, tech := range vocab.MasterTechnologies {
		all.Skills = append(all.Skills, resume.Skill{Name: tech})
	}
	assert.Equal(t, 100, SkillMatchPercentage(all))

	some := resume.Profile{Skills: []resume.Skill{
		{Name: "JavaScript"},
		{Name: "Underwater Hockey"},
	}}
	pct := SkillMatchPercentage(some)
	assert.Greater(t, pct, 0)
	assert.LessOrEqual(t, pct, 100)
}

func TestTotalYearsRounding(t *testing.T) {
	profile := resume.Profile{
		WorkExperience: []resume.Experience{{Title: "Engineer", DurationMonths: 30}},
	}

	// 30 months is 2.5 years, rounded to 3.
	assert.Equal(t, 3, Extract(profile).TotalYearsExperience)
}
