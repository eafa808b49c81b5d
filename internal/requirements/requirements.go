// Package requirements defines the job requirements a candidate is screened
// against and loads them from YAML files.
package requirements

import (
	"fmt"
	"os"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"

	"github.com/devansh-cmd/resume-screener/internal/vocab"
)

// JobRequirements is caller-supplied and immutable per evaluation.
type JobRequirements struct {
	MinimumYearsOfExperience int                  `yaml:"minimum-years-of-experience" mapstructure:"minimum-years-of-experience" validate:"min=0"`
	RequiredSkills           []string             `yaml:"required-skills" mapstructure:"required-skills" validate:"required,min=1,dive,required"`
	PreferredSkills          []string             `yaml:"preferred-skills" mapstructure:"preferred-skills"`
	RequiredEducation        EducationRequirement `yaml:"required-education" mapstructure:"required-education"`
	RequiredCertifications   []string             `yaml:"required-certifications" mapstructure:"required-certifications"`
	SoftSkills               []string             `yaml:"soft-skills" mapstructure:"soft-skills"`
}

// EducationRequirement is the education part of the job requirements.
type EducationRequirement struct {
	MinimumDegree   string   `yaml:"minimum-degree" mapstructure:"minimum-degree" validate:"omitempty,oneof=high_school associate bachelor master phd"`
	PreferredFields []string `yaml:"preferred-fields" mapstructure:"preferred-fields"`
}

var validate = validator.New()

// Validate checks the requirements for structural problems.
func (r *JobRequirements) Validate() error {
	if err := validate.Struct(r); err != nil {
		return fmt.Errorf("invalid job requirements: %w", err)
	}
	return nil
}

// MinimumDegreeRank returns the rank of the required minimum degree on the
// five-level hierarchy, defaulting to high school when unset.
func (r *JobRequirements) MinimumDegreeRank() int {
	rank, ok := vocab.DegreeRank[r.RequiredEducation.MinimumDegree]
	if !ok {
		return vocab.DegreeRank[vocab.DegreeHighSchool]
	}
	return rank
}

// Default returns the documented default requirement set used when the caller
// supplies none.
func Default() JobRequirements {
	return JobRequirements{
		MinimumYearsOfExperience: 3,
		RequiredSkills:           []string{"JavaScript", "React", "Node.js"},
		PreferredSkills:          []string{"TypeScript", "Docker", "AWS"},
		RequiredEducation: EducationRequirement{
			MinimumDegree:   vocab.DegreeBachelor,
			PreferredFields: []string{"computer science", "software engineering"},
		},
	}
}

// FromFile loads and validates requirements from a YAML file.
func FromFile(path string) (JobRequirements, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return JobRequirements{}, fmt.Errorf("reading requirements file: %w", err)
	}

	var reqs JobRequirements
	if err := yaml.Unmarshal(data, &reqs); err != nil {
		return JobRequirements{}, fmt.Errorf("parsing requirements file %q: %w", path, err)
	}

	if err := reqs.Validate(); err != nil {
		return JobRequirements{}, err
	}

	return reqs, nil
}
