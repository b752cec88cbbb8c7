package faber

import (
	"context"
	"runtime"

	"github.com/gammazero/workerpool"
	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"
)

// Job is one file submitted to a Pool: a filename/source pair plus the
// Config its compilation should run under.
type Job struct {
	Filename string
	Source   string
	Config   Config
}

// Result is one Job's outcome. Exactly one of Output or Err is set.
// TraceID lets a driver correlate this result with the CompileError's
// own TraceID when Err is a *CompileError.
type Result struct {
	Filename string
	Output   string
	Err      error
	TraceID  uuid.UUID
}

// Pool runs many independent compilations concurrently. Each
// compilation is single-threaded and shares no mutable state with any
// other beyond the read-only lexer/parser/emitter lookup tables, so
// width is bounded only by Concurrency.
type Pool struct {
	Concurrency int
}

// NewPool returns a Pool with the given worker width. A width of zero
// or less is treated as 1.
func NewPool(concurrency int) *Pool {
	if concurrency <= 0 {
		concurrency = 1
	}
	return &Pool{Concurrency: concurrency}
}

// CompileAll runs Compile for every job, returning one Result per job
// in the same order regardless of completion order. It returns early
// only if ctx is canceled; individual job failures are reported in
// their Result, not as a function error.
func (p *Pool) CompileAll(ctx context.Context, jobs []Job) ([]Result, error) {
	results := make([]Result, len(jobs))
	wp := workerpool.New(p.Concurrency)
	group, groupCtx := errgroup.WithContext(ctx)
	group.SetLimit(p.Concurrency)

	for i, job := range jobs {
		i, job := i, job
		wp.Submit(func() {
			group.Go(func() error {
				select {
				case <-groupCtx.Done():
					return groupCtx.Err()
				default:
				}
				out, err := Compile(job.Filename, job.Source, job.Config)
				res := Result{Filename: job.Filename, Output: out, Err: err}
				if cerr, ok := err.(*CompileError); ok {
					res.TraceID = cerr.TraceID
				}
				results[i] = res
				return nil
			})
		})
	}

	wp.StopWait()
	if err := group.Wait(); err != nil {
		return results, err
	}
	return results, nil
}

// CompileAll runs a batch of jobs through a Pool sized to
// runtime.GOMAXPROCS(0), for callers that don't need to tune
// concurrency explicitly.
func CompileAll(ctx context.Context, jobs []Job) ([]Result, error) {
	return NewPool(runtime.GOMAXPROCS(0)).CompileAll(ctx, jobs)
}
