package cmd

import (
	"context"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/devansh-cmd/resume-screener/internal/logger"
	"github.com/devansh-cmd/resume-screener/internal/screening"
)

var batchCmd = &cobra.Command{
	Use:   "batch [directory]",
	Short: "Screen every resume in a directory against the same job requirements",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		batch(cmd, args[0])
	},
}

func init() {
	rootCmd.AddCommand(batchCmd)

	batchCmd.Flags().StringP("requirements", "r", "", "a YAML file with job requirements. Defaults to the config file or built-in defaults.")
	batchCmd.Flags().IntP("concurrency", "c", 0, "max concurrent screenings. Defaults to a sensible bound.")
	batchCmd.Flags().Bool("failed-only", false, "list only failed candidates in the summary")
}

func batch(cmd *cobra.Command, dir string) {
	ctx := context.Background()

	logger, err := logger.New(viper.GetBool("json"), viper.GetBool("debug"))
	if err != nil {
		log.Fatalf("creating a logger: %s", err)
	}

	config, err := getConfig()
	if err != nil {
		logger.Fatal("getting a config", zap.Error(err))
	}

	reqs, err := resolveRequirements(config, cmd.Flag("requirements").Value.String())
	if err != nil {
		logger.Fatal("resolving job requirements", zap.Error(err))
	}

	candidates, err := collectCandidates(dir)
	if err != nil {
		logger.Fatal("collecting resumes", zap.Error(err), zap.String("dir", dir))
	}
	if len(candidates) == 0 {
		logger.Info("exiting", zap.String("reason", "no resume files found"), zap.String("dir", dir))
		return
	}

	logger.Info("starting the batch screening",
		zap.String("dir", dir),
		zap.Int("count", len(candidates)),
	)

	limit, _ := cmd.Flags().GetInt("concurrency")
	runner := screening.New(logger)
	items, err := runner.RunBatch(ctx, candidates, reqs, limit)
	if err != nil {
		logger.Fatal("batch screening failed", zap.Error(err))
	}

	failedOnly, _ := cmd.Flags().GetBool("failed-only")
	printBatchSummary(items, failedOnly)
}

// collectCandidates gathers the screenable files of a directory in a stable
// order.
func collectCandidates(dir string) ([]screening.Candidate, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, err
	}

	var candidates []screening.Candidate
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		ext := strings.ToLower(filepath.Ext(entry.Name()))
		if ext != ".txt" && ext != ".json" && ext != ".html" {
			continue
		}

		input, err := loadResumeInput(filepath.Join(dir, entry.Name()))
		if err != nil {
			return nil, err
		}
		candidates = append(candidates, screening.Candidate{
			Label: entry.Name(),
			Input: input,
		})
	}

	sort.Slice(candidates, func(i, j int) bool { return candidates[i].Label < candidates[j].Label })
	return candidates, nil
}

func printBatchSummary(items []screening.BatchItem, failedOnly bool) {
	passed := 0
	for _, item := range items {
		if item.Result.Passed() {
			passed++
			if failedOnly {
				continue
			}
		}

		marker := "FAIL"
		if item.Result.Passed() {
			marker = "PASS"
		}
		fmt.Printf("%-40s %s (confidence %.2f)\n", item.Label, marker, item.Result.ConfidenceScore)

		for _, missing := range item.Result.MissingRequirements {
			fmt.Printf("%40s   - %s\n", "", missing)
		}
		for _, msg := range item.Result.ErrorMessages {
			fmt.Printf("%40s   ! %s\n", "", msg)
		}
	}

	fmt.Printf("\n%d of %d candidates passed\n", passed, len(items))
}
