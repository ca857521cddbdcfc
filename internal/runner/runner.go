// Package runner orchestrates declaration generation runs.
package runner

import (
	"context"
	"io"
	"log/slog"
	"path/filepath"
	"sync"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/yacobolo/scsstypes/internal/artifact"
	"github.com/yacobolo/scsstypes/internal/config"
	"github.com/yacobolo/scsstypes/internal/dts"
	"github.com/yacobolo/scsstypes/internal/errs"
	"github.com/yacobolo/scsstypes/internal/modules"
)

// Extractor produces the class names of one source file.
type Extractor interface {
	Extract(ctx context.Context, path string) modules.Extraction
}

// Reporter receives user-facing run notices.
type Reporter interface {
	Start()
	Success(elapsed time.Duration)
	Failure(err error)
	ExtractionFailed(path string, err error)
	Reaped(result artifact.ReapResult)
}

// Runner drives extraction, synthesis, reconciliation and reaping.
type Runner struct {
	opts      config.Options
	pattern   string
	fs        artifact.FS
	extractor Extractor
	sync      *artifact.Synchronizer
	reporter  Reporter
	logger    *slog.Logger
}

// New creates a runner. reporter and logger may be nil.
func New(opts config.Options, fsys artifact.FS, extractor Extractor, reporter Reporter, logger *slog.Logger) *Runner {
	if reporter == nil {
		reporter = nopReporter{}
	}
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &Runner{
		opts:      opts,
		pattern:   artifact.ResolvePattern(opts.Root, opts.FileGlob),
		fs:        fsys,
		extractor: extractor,
		sync: artifact.NewSynchronizer(fsys, dts.Options{
			Banner:               opts.Banner,
			Name:                 opts.Name,
			ExportNames:          opts.ExportNames,
			AdditionalProperties: opts.AdditionalProperties,
		}),
		reporter: reporter,
		logger:   logger,
	}
}

// Pattern returns the resolved source glob.
func (r *Runner) Pattern() string {
	return r.pattern
}

// Files returns the sources currently matched by the glob.
func (r *Runner) Files() ([]string, error) {
	return r.fs.Glob(r.pattern)
}

// RunInitial runs the startup batch when Initialize is set, then reaps
// orphans when RemoveOrphans is set.
func (r *Runner) RunInitial(ctx context.Context) (Summary, error) {
	return r.run(ctx, r.opts.Initialize)
}

// Run generates every matched source and reaps orphans when RemoveOrphans is set,
// regardless of Initialize.
func (r *Runner) Run(ctx context.Context) (Summary, error) {
	return r.run(ctx, true)
}

func (r *Runner) run(ctx context.Context, generate bool) (Summary, error) {
	start := time.Now()
	summary := Summary{}

	err := r.logRun(generate, func() error {
		files, err := r.Files()
		if err != nil {
			return err
		}
		summary.Files = len(files)

		var runErr error
		if generate {
			runErr = r.generate(ctx, files, &summary)
		}
		if r.opts.RemoveOrphans {
			if err := r.reap(ctx, files, &summary); err != nil && runErr == nil {
				runErr = err
			}
		}
		return runErr
	})

	summary.Duration = time.Since(start)
	return summary, err
}

// RunOnChange handles one changed path.
//
// Under modules-only a non-module path is ignored outright. A path in the
// current glob match set is regenerated; reaping then runs when RemoveOrphans
// is set, which also covers sources that were just deleted.
func (r *Runner) RunOnChange(ctx context.Context, path string) (Summary, error) {
	start := time.Now()

	if r.opts.ModulesOnly && !r.opts.IsModule(path) {
		r.logger.Debug("ignoring non-module change", "file", path)
		return Summary{}, nil
	}

	files, err := r.Files()
	if err != nil {
		return Summary{}, r.logRun(true, func() error { return err })
	}

	summary := Summary{}
	match, ok := findFile(files, path)
	if !ok {
		r.logger.Debug("change outside file glob", "file", path, "glob", r.pattern)
	}

	err = r.logRun(ok, func() error {
		var runErr error
		if ok {
			summary.Files = 1
			runErr = r.generate(ctx, []string{match}, &summary)
		}
		if r.opts.RemoveOrphans {
			if err := r.reap(ctx, files, &summary); err != nil && runErr == nil {
				runErr = err
			}
		}
		return runErr
	})

	summary.Duration = time.Since(start)
	return summary, err
}

// Generate runs one batch over files without reporting.
func (r *Runner) Generate(ctx context.Context, files []string) (Summary, error) {
	start := time.Now()
	summary := Summary{Files: len(files)}
	err := r.generate(ctx, files, &summary)
	summary.Duration = time.Since(start)
	return summary, err
}

// Reap removes orphaned declarations against the current glob match set.
func (r *Runner) Reap(ctx context.Context) (Summary, error) {
	start := time.Now()

	files, err := r.Files()
	if err != nil {
		return Summary{}, err
	}

	summary := Summary{Files: len(files)}
	err = r.reap(ctx, files, &summary)
	summary.Duration = time.Since(start)
	return summary, err
}

// generate validates the batch, then fans out one unit per file. Every unit
// settles before generate returns; unit errors are joined.
func (r *Runner) generate(ctx context.Context, files []string, summary *Summary) error {
	if err := r.validate(files); err != nil {
		return err
	}

	var (
		mu       sync.Mutex
		unitErrs []error
		g        errgroup.Group
	)
	if r.opts.Concurrency > 0 {
		g.SetLimit(r.opts.Concurrency)
	}

	for _, file := range files {
		file := file
		g.Go(func() error {
			action, err := r.unit(ctx, file)

			mu.Lock()
			defer mu.Unlock()
			if err != nil {
				summary.Failed = append(summary.Failed, file)
				unitErrs = append(unitErrs, err)
				return nil
			}
			summary.record(file, action)
			return nil
		})
	}
	_ = g.Wait()

	summary.sort()
	return errs.Join(unitErrs...)
}

// unit is the strictly sequential pipeline of one file
func (r *Runner) unit(ctx context.Context, file string) (artifact.Action, error) {
	result := r.extractor.Extract(ctx, file)
	if result.Failed() {
		r.reporter.ExtractionFailed(file, result.Err)
	}

	action, err := r.sync.Reconcile(ctx, result)
	if err != nil {
		r.logger.Error("reconcile failed", "file", file, "error", err)
		return action, err
	}

	r.logger.Debug("reconciled declaration", "file", file, "action", action.String())
	return action, nil
}

// validate enforces the modules-only policy over a whole batch
func (r *Runner) validate(files []string) error {
	if !r.opts.ModulesOnly {
		return nil
	}

	var offending []string
	for _, file := range files {
		if !r.opts.IsModule(file) {
			offending = append(offending, file)
		}
	}
	if len(offending) > 0 {
		return errs.NewPolicyError(offending)
	}
	return nil
}

func (r *Runner) reap(ctx context.Context, files []string, summary *Summary) error {
	result, err := artifact.Reap(ctx, r.fs, files, r.pattern, r.opts.Concurrency)
	if err != nil {
		r.logger.Error("orphan scan failed", "glob", r.pattern, "error", err)
		return err
	}

	summary.Orphans = append(summary.Orphans, result.Deleted...)
	for path, failure := range result.Failed {
		r.logger.Warn("orphan removal failed", "file", path, "error", failure)
	}
	r.reporter.Reaped(result)
	return result.Err()
}

// logRun reports the outcome of fn. A regeneration (notify set) prints a start
// notice followed by exactly one success or failure notice. Reap-only work
// stays silent unless it fails.
func (r *Runner) logRun(notify bool, fn func() error) error {
	start := time.Now()
	if notify {
		r.reporter.Start()
	}

	if err := fn(); err != nil {
		r.logger.Error("run failed", "error", err, "policy", errs.IsPolicy(err))
		r.reporter.Failure(err)
		return err
	}

	elapsed := time.Since(start)
	r.logger.Info("run finished", "duration", elapsed, "generated", notify)
	if notify {
		r.reporter.Success(elapsed)
	}
	return nil
}

// findFile returns the glob entry naming the same file as path
func findFile(files []string, path string) (string, bool) {
	target := absClean(path)
	for _, f := range files {
		if absClean(f) == target {
			return f, true
		}
	}
	return "", false
}

func absClean(path string) string {
	if abs, err := filepath.Abs(path); err == nil {
		return abs
	}
	return filepath.Clean(path)
}

type nopReporter struct{}

func (nopReporter) Start() {}
func (nopReporter) Success(time.Duration) {}
func (nopReporter) Failure(error) {}
func (nopReporter) ExtractionFailed(string, error) {}
func (nopReporter) Reaped(artifact.ReapResult) {}
