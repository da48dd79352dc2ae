package bgremove

import (
	"context"
	"path/filepath"
	"runtime"

	"github.com/gammazero/workerpool"
)

// Job names one input image and the path its result is written to.
type Job struct {
	Input  string
	Output string
}

// Result is the outcome of a single Job.
type Result struct {
	Job   Job
	Stats Stats
	Err   error
}

// RemoveBackgroundFiles runs the default remover over jobs.
func RemoveBackgroundFiles(ctx context.Context, jobs []Job, workers int) []Result {
	return defaultRemover.RemoveBackgroundFiles(ctx, jobs, workers)
}

// RemoveBackgroundFiles processes every job on a pool of at most workers
// goroutines (NumCPU when workers < 1). Jobs are independent: a failing job
// never stops the others. A job whose output path repeats an earlier job's is
// not run and fails with a DuplicateOutputError. Jobs that have not started
// when ctx is done are reported with ctx.Err(). Results are returned in the
// order of jobs.
func (r *Remover) RemoveBackgroundFiles(ctx context.Context, jobs []Job, workers int) []Result {
	if workers < 1 {
		workers = runtime.NumCPU()
	}
	if workers > len(jobs) {
		workers = len(jobs)
	}

	results := make([]Result, len(jobs))
	if len(jobs) == 0 {
		return results
	}

	claimed := make(map[string]string, len(jobs))

	wp := workerpool.New(workers)
	for i, job := range jobs {
		i, job := i, job

		out := filepath.Clean(job.Output)
		if first, ok := claimed[out]; ok {
			results[i] = Result{Job: job, Err: &DuplicateOutputError{Output: job.Output, Input: first}}
			continue
		}
		claimed[out] = job.Input

		wp.Submit(func() {
			results[i].Job = job
			if err := ctx.Err(); err != nil {
				results[i].Err = err
				return
			}
			results[i].Stats, results[i].Err = r.RemoveBackgroundFile(job.Input, job.Output)
		})
	}
	wp.StopWait()

	return results
}
