// Package features derives generic evaluation signals from a canonical
// candidate profile. Extraction is a pure function: missing data yields
// default feature values, never an error.
package features

import (
	"math"

	"github.com/devansh-cmd/resume-screener/internal/resume"
	"github.com/devansh-cmd/resume-screener/internal/vocab"
)

// Generic thresholds for the boolean feature signals. These are deliberately
// independent of any specific job requirement; the evaluator performs the
// job-specific checks separately.
const (
	genericExperienceMonths = 36
	genericMinimumDegree    = vocab.DegreeBachelor
)

// Set holds the derived signals for one candidate.
type Set struct {
	HasRequiredSkills          bool   `json:"hasRequiredSkills"`
	HasPreferredSkills         bool   `json:"hasPreferredSkills"`
	MeetsExperienceRequirement bool   `json:"meetsExperienceRequirement"`
	MeetsEducationRequirement  bool   `json:"meetsEducationRequirement"`
	HasRequiredCertifications  bool   `json:"hasRequiredCertifications"`
	TotalYearsExperience       int    `json:"totalYearsExperience"`
	SkillMatchPercentage       int    `json:"skillMatchPercentage"`
	EducationLevel             string `json:"educationLevel"`
}

// Extract derives the feature set from a profile.
func Extract(profile resume.Profile) Set {
	totalMonths := profile.TotalExperienceMonths()
	level := highestEducationLevel(profile.Education)

	return Set{
		HasRequiredSkills:          hasAnySkill(profile, vocab.RequiredSkills),
		HasPreferredSkills:         hasAnySkill(profile, vocab.PreferredSkills),
		MeetsExperienceRequirement: totalMonths >= genericExperienceMonths,
		MeetsEducationRequirement:  vocab.DegreeRank[level] >= vocab.DegreeRank[genericMinimumDegree],
		HasRequiredCertifications:  hasKnownCertifications(profile.Certifications),
		TotalYearsExperience:       int(math.Round(float64(totalMonths) / 12)),
		SkillMatchPercentage:       SkillMatchPercentage(profile),
		EducationLevel:             level,
	}
}

// SkillMatchPercentage measures candidate skill breadth against the master
// technology vocabulary, not against any specific job.
func SkillMatchPercentage(profile resume.Profile) int {
	if len(profile.Skills) == 0 {
		return 0
	}

	matched := 0
	for _, skill := range profile.Skills {
		if vocab.ContainsFold(vocab.MasterTechnologies, skill.Name) {
			matched++
		}
	}

	return int(math.Round(float64(matched) / float64(len(vocab.MasterTechnologies)) * 100))
}

func hasAnySkill(profile resume.Profile, reference []string) bool {
	for _, skill := range profile.Skills {
		if vocab.ContainsFold(reference, skill.Name) {
			return true
		}
	}
	return false
}

// hasKnownCertifications is vacuously true for candidates without any
// certifications.
func hasKnownCertifications(certs []resume.Certification) bool {
	if len(certs) == 0 {
		return true
	}
	for _, cert := range certs {
		if vocab.AnyContainsFold(cert.Name, vocab.KnownCertifications) {
			return true
		}
	}
	return false
}

func highestEducationLevel(entries []resume.Education) string {
	level := vocab.DegreeHighSchool
	for _, entry := range entries {
		candidate := vocab.DegreeLevelOf(entry.Degree)
		if vocab.DegreeRank[candidate] > vocab.DegreeRank[level] {
			level = candidate
		}
	}
	return level
}
