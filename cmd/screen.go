package cmd

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/manifoldco/promptui"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/devansh-cmd/resume-screener/internal/evaluator"
	"github.com/devansh-cmd/resume-screener/internal/logger"
	"github.com/devansh-cmd/resume-screener/internal/report"
	"github.com/devansh-cmd/resume-screener/internal/resume"
	"github.com/devansh-cmd/resume-screener/internal/screening"
)

const (
	PromptShowProfile = "Show extracted profile"
	PromptDumpToFile  = "Dump result to file"
	PromptExit        = "Exit"
)

var errExit = errors.New("exit requested")

var resultPrompt = promptui.Select{
	Label: "What next?",
	Items: []string{PromptShowProfile, PromptDumpToFile, PromptExit},
}

var screenCmd = &cobra.Command{
	Use:   "screen [resume file]",
	Short: "Screen a single resume against job requirements",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		screen(cmd, args[0])
	},
}

func init() {
	rootCmd.AddCommand(screenCmd)

	screenCmd.Flags().StringP("requirements", "r", "", "a YAML file with job requirements. Defaults to the config file or built-in defaults.")
	screenCmd.Flags().BoolP("non-interactive", "n", false, "print the report and exit without prompting")
}

// screen is the main command for a single resume.
func screen(cmd *cobra.Command, resumePath string) {
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

	input, err := loadResumeInput(resumePath)
	if err != nil {
		logger.Fatal("loading resume", zap.Error(err), zap.String("path", resumePath))
	}

	logger.Info("starting the screening", zap.String("resume", resumePath))

	runner := screening.New(logger)
	result := runner.Run(ctx, input, reqs)

	fmt.Print(report.Render(&result))

	if cmd.Flag("non-interactive").Value.String() == "true" {
		if !result.Passed() {
			os.Exit(1)
		}
		return
	}

	for {
		_, action, err := resultPrompt.Run()
		if err != nil {
			logger.Fatal("exiting", zap.Error(err))
		}

		if err := handleAction(action, logger, &result); err != nil {
			if errors.Is(err, errExit) {
				return
			}
			logger.Fatal("exiting", zap.Error(err))
		}
	}
}

func handleAction(action string, logger *zap.Logger, result *evaluator.Result) error {
	switch action {
	case PromptShowProfile:
		pretty, _ := json.MarshalIndent(result.CandidateProfile, "", "  ")
		fmt.Println(string(pretty))
		return nil
	case PromptDumpToFile:
		filename, err := report.DumpToTmpFile(result)
		if err != nil {
			return fmt.Errorf("dump result to file: %w", err)
		}
		logger.Info("dumping result to file", zap.String("filename", filename))
		return nil
	case PromptExit:
		return errExit
	default:
		return fmt.Errorf("invalid action: %s", action)
	}
}

// loadResumeInput reads a resume file. JSON files feed the structured path,
// everything else is treated as raw text.
func loadResumeInput(path string) (resume.Input, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return resume.Input{}, err
	}

	if strings.EqualFold(filepath.Ext(path), ".json") {
		var structured map[string]any
		if err := json.Unmarshal(data, &structured); err != nil {
			return resume.Input{}, fmt.Errorf("parsing structured resume %q: %w", path, err)
		}
		return resume.NewStructuredInput(structured), nil
	}

	return resume.NewRawInput(string(data)), nil
}
