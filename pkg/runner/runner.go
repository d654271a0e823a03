package runner

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"runtime"
	"sync"

	"github.com/yaklabco/snipsync/pkg/diffutil"
	"github.com/yaklabco/snipsync/pkg/docformat"
	"github.com/yaklabco/snipsync/pkg/fsutil"
	"github.com/yaklabco/snipsync/pkg/rewrite"
)

// Runner orchestrates snippet synchronization across many documents.
// Documents are independent, so processing is embarrassingly parallel;
// all scan state lives inside the per-document rewriter.
type Runner struct{}

// New creates a Runner.
func New() *Runner {
	return &Runner{}
}

// Run discovers documents under opts.Paths and processes them
// concurrently with a worker pool. Per-document failures are recorded in
// the outcomes rather than aborting the run; the returned error is
// reserved for discovery failures and cancellation. Outcomes are ordered
// deterministically regardless of worker scheduling.
func (r *Runner) Run(ctx context.Context, opts Options) (*Result, error) {
	files, err := Discover(ctx, opts)
	if err != nil {
		return nil, err
	}

	result := &Result{Files: make([]FileOutcome, 0, len(files))}
	result.Stats.FilesDiscovered = len(files)

	if len(files) == 0 {
		return result, nil
	}

	jobs := opts.Jobs
	if jobs <= 0 {
		jobs = runtime.NumCPU()
	}
	if jobs > len(files) {
		jobs = len(files)
	}

	workCh := make(chan string)
	outCh := make(chan FileOutcome)

	var wg sync.WaitGroup
	for range jobs {
		wg.Add(1)
		go func() {
			defer wg.Done()
			r.worker(ctx, workCh, outCh, opts)
		}()
	}

	go func() {
		defer close(workCh)
		for _, path := range files {
			select {
			case <-ctx.Done():
				return
			case workCh <- path:
			}
		}
	}()

	go func() {
		wg.Wait()
		close(outCh)
	}()

	outcomes := make(map[string]FileOutcome, len(files))
	for outcome := range outCh {
		outcomes[outcome.Path] = outcome
	}

	for _, path := range files {
		if outcome, ok := outcomes[path]; ok {
			result.accumulate(outcome)
		}
	}

	if ctx.Err() != nil {
		return result, fmt.Errorf("run cancelled: %w", ctx.Err())
	}
	return result, nil
}

func (r *Runner) worker(ctx context.Context, workCh <-chan string, outCh chan<- FileOutcome, opts Options) {
	for path := range workCh {
		select {
		case <-ctx.Done():
			return
		default:
		}

		outcome := r.processDocument(ctx, path, opts)

		select {
		case <-ctx.Done():
			return
		case outCh <- outcome:
		}
	}
}

// processDocument runs one document through the rewriter and applies the
// mode-dependent side effects: a diff in check mode, an atomic
// write-if-changed otherwise.
func (r *Runner) processDocument(ctx context.Context, path string, opts Options) FileOutcome {
	outcome := FileOutcome{Path: path}

	fail := func(err error) FileOutcome {
		outcome.Error = fmt.Errorf("%s: %w", path, err)
		return outcome
	}

	info, err := os.Stat(path)
	if err != nil {
		return fail(err)
	}
	original, err := os.ReadFile(path)
	if err != nil {
		return fail(err)
	}

	rw := rewrite.New(docformat.ForPath(path), path)
	rw.GuessLang = opts.GuessLang

	updated, err := rw.Rewrite(original)
	if err != nil {
		return fail(err)
	}

	outcome.Changed = !bytes.Equal(original, updated)
	if !outcome.Changed {
		return outcome
	}

	if opts.Check {
		outcome.Diff = diffutil.Generate(path, original, updated)
		return outcome
	}

	written, err := fsutil.WriteAtomicIfChanged(ctx, path, updated, info.Mode().Perm())
	if err != nil {
		return fail(err)
	}
	outcome.Written = written
	return outcome
}
