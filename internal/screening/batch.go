package screening

import (
	"context"

	"golang.org/x/sync/errgroup"

	"github.com/devansh-cmd/resume-screener/internal/evaluator"
	"github.com/devansh-cmd/resume-screener/internal/requirements"
	"github.com/devansh-cmd/resume-screener/internal/resume"
)

// defaultBatchLimit bounds concurrent screenings when the caller passes no
// explicit limit.
const defaultBatchLimit = 8

// Candidate pairs an input with a caller-chosen label, typically a file name.
type Candidate struct {
	Label string
	Input resume.Input
}

// BatchItem is the outcome for one candidate of a batch run.
type BatchItem struct {
	Label  string
	Result evaluator.Result
}

// RunBatch screens every candidate against the same requirements
// concurrently. Each call is independent, so the fan-out needs no locking;
// results come back in input order.
func (r *Runner) RunBatch(ctx context.Context, candidates []Candidate, reqs requirements.JobRequirements, limit int) ([]BatchItem, error) {
	if limit <= 0 {
		limit = defaultBatchLimit
	}

	items := make([]BatchItem, len(candidates))

	group, ctx := errgroup.WithContext(ctx)
	group.SetLimit(limit)
	for i, candidate := range candidates {
		group.Go(func() error {
			items[i] = BatchItem{
				Label:  candidate.Label,
				Result: r.Run(ctx, candidate.Input, reqs),
			}
			return nil
		})
	}

	if err := group.Wait(); err != nil {
		return nil, err
	}
	return items, nil
}

// RunAgainstJobs screens one candidate against several requirement sets. The
// profile is parsed once and reused for every evaluation.
func (r *Runner) RunAgainstJobs(ctx context.Context, input resume.Input, jobs []requirements.JobRequirements) []evaluator.Result {
	results := make([]evaluator.Result, len(jobs))

	profile, err := r.parseStage(ctx, input)
	if err != nil {
		for i := range results {
			results[i] = sentinelResult(err)
		}
		return results
	}

	feats, err := r.extractStage(profile)
	if err != nil {
		for i := range results {
			results[i] = sentinelResultWithProfile(profile, err)
		}
		return results
	}

	group, _ := errgroup.WithContext(ctx)
	group.SetLimit(defaultBatchLimit)
	for i, job := range jobs {
		group.Go(func() error {
			result, err := r.evaluateStage(profile, feats, job)
			if err != nil {
				result = sentinelResultWithProfile(profile, err)
			}
			results[i] = result
			return nil
		})
	}
	_ = group.Wait()

	return results
}
