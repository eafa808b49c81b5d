// Package report renders screening results for the CLI and dumps them to
// files for downstream consumers.
package report

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/devansh-cmd/resume-screener/internal/evaluator"
)

// Render returns a human-readable text report for one screening result.
func Render(result *evaluator.Result) string {
	var b strings.Builder

	fmt.Fprintf(&b, "Candidate: %s\n", result.CandidateProfile.FullName)
	if result.CandidateProfile.Email != "" {
		fmt.Fprintf(&b, "Email:     %s\n", result.CandidateProfile.Email)
	}
	fmt.Fprintf(&b, "Decision:  %s (confidence %.2f)\n", strings.ToUpper(result.ScreeningResult), result.ConfidenceScore)

	if len(result.MatchReasons) > 0 {
		b.WriteString("Reasons:\n")
		for _, reason := range result.MatchReasons {
			fmt.Fprintf(&b, "  %s\n", reason)
		}
	}

	if len(result.MissingRequirements) > 0 {
		b.WriteString("Missing requirements:\n")
		for _, missing := range result.MissingRequirements {
			fmt.Fprintf(&b, "  - %s\n", missing)
		}
	}

	if len(result.ErrorMessages) > 0 {
		b.WriteString("Errors:\n")
		for _, msg := range result.ErrorMessages {
			fmt.Fprintf(&b, "  - %s\n", msg)
		}
	}

	return b.String()
}

// DumpToTmpFile writes the result as indented JSON to a temp file and
// returns its name.
func DumpToTmpFile(result *evaluator.Result) (string, error) {
	file, err := os.CreateTemp("", "screening_*.json")
	if err != nil {
		return "", err
	}
	defer file.Close()

	enc := json.NewEncoder(file)
	enc.SetIndent("", "  ")
	if err := enc.Encode(result); err != nil {
		return "", err
	}
	return file.Name(), nil
}
