// Package screening sequences the parse, extract and evaluate stages. The
// runner never lets an error escape: any stage failure yields a sentinel fail
// result with the original message preserved in the error messages.
package screening

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/devansh-cmd/resume-screener/internal/evaluator"
	"github.com/devansh-cmd/resume-screener/internal/features"
	applog "github.com/devansh-cmd/resume-screener/internal/logger"
	"github.com/devansh-cmd/resume-screener/internal/parser"
	"github.com/devansh-cmd/resume-screener/internal/requirements"
	"github.com/devansh-cmd/resume-screener/internal/resume"
	"github.com/devansh-cmd/resume-screener/internal/util"
)

// Pipeline stage names used in stage errors and log fields.
const (
	StageParse    = "parse"
	StageExtract  = "extract"
	StageEvaluate = "evaluate"
)

// rawTextLogLimit bounds the resume excerpt attached to debug logs.
const rawTextLogLimit = 120

// StageError annotates a failure with the pipeline stage it occurred in.
type StageError struct {
	Stage string
	Err   error
}

func (e *StageError) Error() string {
	return fmt.Sprintf("%s: %v", e.Stage, e.Err)
}

func (e *StageError) Unwrap() error {
	return e.Err
}

// Runner executes screening calls. All state is call-local, so a single
// Runner is safe for concurrent use.
type Runner struct {
	logger *zap.Logger
	parser *parser.Parser
}

// New creates a Runner. A nil logger is replaced with a no-op one.
func New(logger *zap.Logger) *Runner {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Runner{
		logger: logger,
		parser: parser.New(),
	}
}

// Run screens one resume against the given requirements. It always returns a
// result; callers distinguish a genuine fail from a pipeline failure by
// checking ErrorMessages.
func (r *Runner) Run(ctx context.Context, input resume.Input, reqs requirements.JobRequirements) evaluator.Result {
	logger := applog.WithFields(r.logger, zap.String(applog.FieldScreeningID, uuid.NewString()))

	if input.Kind == resume.KindRaw {
		logger.Debug("raw input received",
			zap.String("excerpt", util.TruncateForLog(input.Text, rawTextLogLimit)))
	}

	profile, err := r.parseStage(ctx, input)
	if err != nil {
		logger.Warn("parse stage failed", zap.Error(err))
		return sentinelResult(err)
	}
	logger.Info("parse",
		zap.String(applog.FieldCandidate, profile.FullName),
		zap.Int("education_entries", len(profile.Education)),
		zap.Int("experience_entries", len(profile.WorkExperience)),
		zap.Int("skills", len(profile.Skills)),
		zap.Int("certifications", len(profile.Certifications)),
	)

	feats, err := r.extractStage(profile)
	if err != nil {
		logger.Warn("extract stage failed", zap.Error(err))
		return sentinelResultWithProfile(profile, err)
	}
	logger.Info("extract",
		zap.Int("total_years_experience", feats.TotalYearsExperience),
		zap.Int("skill_match_percentage", feats.SkillMatchPercentage),
		zap.String("education_level", feats.EducationLevel),
	)

	result, err := r.evaluateStage(profile, feats, reqs)
	if err != nil {
		logger.Warn("evaluate stage failed", zap.Error(err))
		return sentinelResultWithProfile(profile, err)
	}
	logger.Info("evaluate",
		zap.String("decision", result.ScreeningResult),
		zap.Float64("confidence", result.ConfidenceScore),
		zap.Int("reasons", len(result.MatchReasons)),
		zap.Int("missing", len(result.MissingRequirements)),
	)

	return result
}

// parseStage wraps the parser, annotating failures with the stage name.
func (r *Runner) parseStage(_ context.Context, input resume.Input) (profile resume.Profile, err error) {
	defer recoverStage(StageParse, &err)

	profile, perr := r.parser.Parse(input)
	if perr != nil {
		return resume.Profile{}, &StageError{Stage: StageParse, Err: perr}
	}
	return profile, nil
}

// extractStage should not fail given the defensive parser defaults, but the
// boundary still catches unexpected panics.
func (r *Runner) extractStage(profile resume.Profile) (feats features.Set, err error) {
	defer recoverStage(StageExtract, &err)
	return features.Extract(profile), nil
}

func (r *Runner) evaluateStage(profile resume.Profile, feats features.Set, reqs requirements.JobRequirements) (result evaluator.Result, err error) {
	defer recoverStage(StageEvaluate, &err)
	return evaluator.EvaluateFeatures(profile, feats, reqs), nil
}

func recoverStage(stage string, err *error) {
	if r := recover(); r != nil {
		*err = &StageError{Stage: stage, Err: fmt.Errorf("unexpected failure: %v", r)}
	}
}

func sentinelResult(err error) evaluator.Result {
	profile := resume.Profile{}
	profile.Normalize()
	return sentinelResultWithProfile(profile, err)
}

// sentinelResultWithProfile is shaped like a zero-confidence fail so that
// downstream consumers need no special case beyond checking ErrorMessages.
func sentinelResultWithProfile(profile resume.Profile, err error) evaluator.Result {
	return evaluator.Result{
		CandidateProfile:    profile,
		ScreeningResult:     evaluator.DecisionFail,
		MatchReasons:        []string{},
		ConfidenceScore:     0,
		MissingRequirements: []string{},
		ErrorMessages:       []string{err.Error()},
	}
}
