package requirements

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/devansh-cmd/resume-screener/internal/vocab"
)

func TestDefaultIsValid(t *testing.T) {
	reqs := Default()
	require.NoError(t, reqs.Validate())
	assert.Equal(t, 3, reqs.MinimumYearsOfExperience)
	assert.NotEmpty(t, reqs.RequiredSkills)
}

func TestValidateRejectsEmptyRequiredSkills(t *testing.T) {
	reqs := Default()
	reqs.RequiredSkills = nil
	assert.Error(t, reqs.Validate())
}

func TestValidateRejectsUnknownDegree(t *testing.T) {
	reqs := Default()
	reqs.RequiredEducation.MinimumDegree = "doctor of everything"
	assert.Error(t, reqs.Validate())
}

func TestMinimumDegreeRankDefaultsToHighSchool(t *testing.T) {
	reqs := JobRequirements{}
	assert.Equal(t, vocab.DegreeRank[vocab.DegreeHighSchool], reqs.MinimumDegreeRank())

	reqs.RequiredEducation.MinimumDegree = vocab.DegreeMaster
	assert.Equal(t, vocab.DegreeRank[vocab.DegreeMaster], reqs.MinimumDegreeRank())
}

func TestFromFile(t *testing.T) {
	content := `minimum-years-of-experience: 5
required-skills:
  - Go
  - PostgreSQL
preferred-skills:
  - Kubernetes
required-education:
  minimum-degree: master
  preferred-fields:
    - computer science
required-certifications:
  - CKA
`
	path := filepath.Join(t.TempDir(), "job.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	reqs, err := FromFile(path)
	require.NoError(t, err)

	assert.Equal(t, 5, reqs.MinimumYearsOfExperience)
	assert.Equal(t, []string{"Go", "PostgreSQL"}, reqs.RequiredSkills)
	assert.Equal(t, vocab.DegreeMaster, reqs.RequiredEducation.MinimumDegree)
	assert.Equal(t, []string{"CKA"}, reqs.RequiredCertifications)
}

func TestFromFileMissing(t *testing.T) {
	_, err := FromFile(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}

func TestFromFileInvalid(t *testing.T) {
	path := filepath.Join(t.TempDir(), "job.yaml")
	require.NoError(t, os.WriteFile(path, []byte("required-skills: []\n"), 0o644))

	_, err := FromFile(path)
	assert.Error(t, err)
}
