// Package evaluator scores a candidate profile against job requirements
// across four weighted criteria categories and produces the final screening
// decision with explanations.
package evaluator

import (
	"fmt"
	"strings"

	"github.com/devansh-cmd/resume-screener/internal/features"
	"github.com/devansh-cmd/resume-screener/internal/requirements"
	"github.com/devansh-cmd/resume-screener/internal/resume"
	"github.com/devansh-cmd/resume-screener/internal/vocab"
)

// Screening decisions.
const (
	DecisionPass = "pass"
	DecisionFail = "fail"
)

// PassThreshold is the single global gate: the candidate passes iff the
// confidence score reaches it. Individual category failures do not force a
// failure on their own.
const PassThreshold = 0.70

// Category weights, summing to 100 points.
const (
	experienceBasePoints     = 20
	experienceBonusPoints    = 10
	skillsBasePoints         = 25
	skillsBreadthPoints      = 15
	educationBasePoints      = 15
	educationFieldPoints     = 5
	certificationPoints      = 10
	skillBreadthThresholdPct = 50
)

// Result is the outcome of one screening evaluation. It is created once per
// call and never mutated after construction.
type Result struct {
	CandidateProfile    resume.Profile `json:"candidateProfile"`
	ScreeningResult     string         `json:"screeningResult"`
	MatchReasons        []string       `json:"matchReasons"`
	ConfidenceScore     float64        `json:"confidenceScore"`
	MissingRequirements []string       `json:"missingRequirements"`
	ErrorMessages       []string       `json:"errorMessages,omitempty"`
}

// Passed reports whether the screening decision is a pass.
func (r *Result) Passed() bool {
	return r.ScreeningResult == DecisionPass
}

// Evaluate scores the profile against the requirements. Deterministic and
// pure given identical inputs.
func Evaluate(profile resume.Profile, reqs requirements.JobRequirements) Result {
	return EvaluateFeatures(profile, features.Extract(profile), reqs)
}

// EvaluateFeatures is Evaluate with an already extracted feature set, so the
// orchestrator can run feature extraction as its own pipeline stage.
func EvaluateFeatures(profile resume.Profile, feats features.Set, reqs requirements.JobRequirements) Result {
	result := Result{
		CandidateProfile:    profile,
		MatchReasons:        []string{},
		MissingRequirements: []string{},
	}

	points := 0
	points += scoreExperience(&result, profile, feats, reqs)
	points += scoreSkills(&result, profile, feats, reqs)
	points += scoreEducation(&result, profile, feats, reqs)
	points += scoreCertifications(&result, profile, reqs)

	result.ConfidenceScore = float64(points) / 100
	result.ScreeningResult = DecisionFail
	if result.ConfidenceScore >= PassThreshold {
		result.ScreeningResult = DecisionPass
	}

	return result
}

// scoreExperience awards up to 30 points. The relevance bonus is granted
// independently of the minimum-years check.
func scoreExperience(result *Result, profile resume.Profile, feats features.Set, reqs requirements.JobRequirements) int {
	points := 0

	if feats.TotalYearsExperience >= reqs.MinimumYearsOfExperience {
		points += experienceBasePoints
		result.MatchReasons = append(result.MatchReasons,
			fmt.Sprintf("✓ %d years of experience", feats.TotalYearsExperience))
	} else {
		result.MissingRequirements = append(result.MissingRequirements,
			fmt.Sprintf("Requires %d+ years experience", reqs.MinimumYearsOfExperience))
	}

	for _, exp := range profile.WorkExperience {
		if vocab.AnyContainsFold(exp.Title+" "+exp.Description, vocab.RelevanceKeywords) {
			points += experienceBonusPoints
			break
		}
	}

	return points
}

// scoreSkills awards up to 40 points. The presence check runs against the
// fixed common-skills list; only the missing-requirements message is derived
// from the job-specific required skills.
func scoreSkills(result *Result, profile resume.Profile, feats features.Set, reqs requirements.JobRequirements) int {
	points := 0

	if feats.HasRequiredSkills {
		points += skillsBasePoints
		result.MatchReasons = append(result.MatchReasons, "✓ Has required technical skills")
	} else {
		missing := make([]string, 0, len(reqs.RequiredSkills))
		for _, required := range reqs.RequiredSkills {
			if !profile.HasSkill(required) {
				missing = append(missing, required)
			}
		}
		result.MissingRequirements = append(result.MissingRequirements,
			fmt.Sprintf("Missing required skills: %s", strings.Join(missing, ", ")))
	}

	if feats.SkillMatchPercentage >= skillBreadthThresholdPct {
		points += skillsBreadthPoints
	}

	return points
}

// scoreEducation awards up to 20 points.
func scoreEducation(result *Result, profile resume.Profile, feats features.Set, reqs requirements.JobRequirements) int {
	points := 0

	if vocab.DegreeRank[feats.EducationLevel] >= reqs.MinimumDegreeRank() {
		points += educationBasePoints
		result.MatchReasons = append(result.MatchReasons, "✓ Meets education requirements")
	} else {
		result.MissingRequirements = append(result.MissingRequirements,
			fmt.Sprintf("Requires %s degree", reqs.RequiredEducation.MinimumDegree))
	}

	for _, entry := range profile.Education {
		if entry.FieldOfStudy != "" && vocab.AnyContainsFold(entry.FieldOfStudy, vocab.RelevantFields) {
			points += educationFieldPoints
			break
		}
	}

	return points
}

// scoreCertifications awards up to 10 points. Without required
// certifications the category passes vacuously with full points and no
// reason string.
func scoreCertifications(result *Result, profile resume.Profile, reqs requirements.JobRequirements) int {
	if len(reqs.RequiredCertifications) == 0 {
		return certificationPoints
	}

	if len(profile.Certifications) > 0 {
		result.MatchReasons = append(result.MatchReasons, "✓ Has relevant certifications")
		return certificationPoints
	}

	result.MissingRequirements = append(result.MissingRequirements, "Missing required certifications")
	return 0
}
