package evaluator

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/devansh-cmd/resume-screener/internal/requirements"
	"github.com/devansh-cmd/resume-screener/internal/resume"
	"github.com/devansh-cmd/resume-screener/internal/vocab"
)

func strongProfile() resume.Profile {
	profile := resume.Profile{
		FullName: "John Smith",
		WorkExperience: []resume.Experience{
			{Title: "Backend Developer", Company: "Acme Corp", DurationMonths: 36},
		},
		Skills: []resume.Skill{
			{Name: "JavaScript"},
			{Name: "React"},
			{Name: "Node.js"},
		},
		Education: []resume.Education{
			{Degree: "Bachelor of Computer Science", FieldOfStudy: "Computer Science"},
		},
	}
	profile.Normalize()
	return profile
}

func standardRequirements() requirements.JobRequirements {
	return requirements.JobRequirements{
		MinimumYearsOfExperience: 3,
		RequiredSkills:           []string{"JavaScript", "React", "Node.js"},
		RequiredEducation: requirements.EducationRequirement{
			MinimumDegree: vocab.DegreeBachelor,
		},
	}
}

func TestEvaluateStrongCandidatePasses(t *testing.T) {
	result := Evaluate(strongProfile(), standardRequirements())

	assert.Equal(t, DecisionPass, result.ScreeningResult)
	assert.True(t, result.Passed())
	assert.GreaterOrEqual(t, result.ConfidenceScore, PassThreshold)
	assert.Contains(t, result.MatchReasons, "✓ Has required technical skills")
	assert.Contains(t, result.MatchReasons, "✓ 3 years of experience")
	assert.Contains(t, result.MatchReasons, "✓ Meets education requirements")
	assert.Empty(t, result.MissingRequirements)
	assert.Empty(t, result.ErrorMessages)
}

func TestEvaluateInsufficientExperienceFails(t *testing.T) {
	profile := resume.Profile{
		WorkExperience: []resume.Experience{
			{Title: "Intern", StartDate: "2024", DurationMonths: 0},
		},
	}
	profile.Normalize()

	result := Evaluate(profile, standardRequirements())

	assert.Equal(t, DecisionFail, result.ScreeningResult)
	assert.Contains(t, result.MissingRequirements, "Requires 3+ years experience")
}

func TestEvaluateMissingSkillsListed(t *testing.T) {
	profile := resume.Profile{
		Skills: []resume.Skill{
			{Name: "Photoshop"},
			{Name: "Illustrator"},
		},
	}
	profile.Normalize()

	result := Evaluate(profile, standardRequirements())

	assert.Contains(t, result.MissingRequirements, "Missing required skills: JavaScript, React, Node.js")
}

func TestEvaluateVacuousCertificationPass(t *testing.T) {
	// No required certifications: the category contributes full points and
	// no reason string, whatever the candidate holds.
	profile := resume.Profile{}
	profile.Normalize()

	reqs := standardRequirements()
	require.Empty(t, reqs.RequiredCertifications)

	result := Evaluate(profile, reqs)

	assert.NotContains(t, result.MatchReasons, "✓ Has relevant certifications")
	assert.InDelta(t, 0.10, result.ConfidenceScore, 0.001)
}

func TestEvaluateRequiredCertifications(t *testing.T) {
	reqs := standardRequirements()
	reqs.RequiredCertifications = []string{"AWS Certified Solutions Architect"}

	withCert := strongProfile()
	withCert.Certifications = []resume.Certification{{Name: "Anything At All"}}
	result := Evaluate(withCert, reqs)
	assert.Contains(t, result.MatchReasons, "✓ Has relevant certifications")

	withoutCert := strongProfile()
	result = Evaluate(withoutCert, reqs)
	assert.Contains(t, result.MissingRequirements, "Missing required certifications")
}

func TestEvaluateRelevanceBonusIndependentOfMinimumYears(t *testing.T) {
	// The relevance keyword bonus is granted even when the minimum-years
	// check fails.
	profile := resume.Profile{
		WorkExperience: []resume.Experience{
			{Title: "Software Engineer", DurationMonths: 12},
		},
	}
	profile.Normalize()

	reqs := standardRequirements()
	reqs.MinimumYearsOfExperience = 10

	result := Evaluate(profile, reqs)

	noBonus := profile
	noBonus.WorkExperience = []resume.Experience{{Title: "Barista", DurationMonths: 12}}
	baseline := Evaluate(noBonus, reqs)

	assert.InDelta(t, 0.10, result.ConfidenceScore-baseline.ConfidenceScore, 0.001)
}

func TestEvaluateEmptyProfileLowConfidence(t *testing.T) {
	profile := resume.Profile{}
	profile.Normalize()

	result := Evaluate(profile, standardRequirements())

	assert.Equal(t, DecisionFail, result.ScreeningResult)
	assert.Less(t, result.ConfidenceScore, 0.2)
}

func TestEvaluateConfidenceBoundsAndThreshold(t *testing.T) {
	profiles := []resume.Profile{
		{},
		strongProfile(),
		{Skills: []resume.Skill{{Name: "Go"}}},
	}

	for _, profile := range profiles {
		profile.Normalize()
		result := Evaluate(profile, standardRequirements())

		assert.GreaterOrEqual(t, result.ConfidenceScore, 0.0)
		assert.LessOrEqual(t, result.ConfidenceScore, 1.0)
		assert.Equal(t, result.ConfidenceScore >= PassThreshold, result.Passed())
	}
}

func TestEvaluateIsDeterministic(t *testing.T) {
	profile := strongProfile()
	reqs := standardRequirements()

	first := Evaluate(profile, reqs)
	second := Evaluate(profile, reqs)

	assert.Equal(t, first, second)
}
