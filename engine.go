package scsstypes

import (
	"context"
	"io"
	"log/slog"
	"os"
	"sort"

	"github.com/yacobolo/scsstypes/internal/artifact"
	"github.com/yacobolo/scsstypes/internal/errs"
	"github.com/yacobolo/scsstypes/internal/modules"
	"github.com/yacobolo/scsstypes/internal/report"
	"github.com/yacobolo/scsstypes/internal/runner"
	"github.com/yacobolo/scsstypes/internal/sass"
)

// Settings carries runtime collaborators that are not part of Options.
type Settings struct {
	Output   io.Writer    // run notices (default os.Stdout)
	Logger   *slog.Logger // diagnostics (default discarded)
	Color    bool         // force colored notices
	Verbose  bool         // print per-file details
	Compiler Compiler     // style compiler override (default Dart Sass)
}

// SourceStatus describes one tracked source file.
type SourceStatus struct {
	Path        string `json:"path"`
	Module      bool   `json:"module"`
	Declaration bool   `json:"declaration"`
}

// Engine wires compiler, extractor, synchronizer and reaper for one set of options.
type Engine struct {
	opts      Options
	fs        artifact.FS
	dartSass  *sass.DartSass
	extractor *modules.Extractor
	runner    *runner.Runner
	logger    *slog.Logger
}

// NewEngine validates opts and builds the pipeline. The Dart Sass process is
// only started when the first .scss or .sass file is compiled.
func NewEngine(opts Options, settings Settings) (*Engine, error) {
	if err := opts.Validate(); err != nil {
		return nil, err
	}

	if settings.Output == nil {
		settings.Output = os.Stdout
	}
	if settings.Logger == nil {
		settings.Logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}

	e := &Engine{
		opts:   opts,
		fs:     artifact.LocalFS{},
		logger: settings.Logger,
	}

	styles := settings.Compiler
	if styles == nil {
		e.dartSass = sass.NewDartSass(opts.SassBinary, opts.SassTimeout, settings.Logger)
		styles = e.dartSass
	}

	loadPaths, err := loadPathResolver(opts)
	if err != nil {
		return nil, err
	}

	e.extractor = modules.NewExtractor(sass.NewRouter(styles), modules.ExtractorOptions{
		LoadPaths:  loadPaths,
		Convention: opts.LocalsConvention,
		Namer:      modules.NamerFor(opts.ScopedNames, opts.ClassNameLength),
		Logger:     settings.Logger,
	})

	reporter := report.NewReporter(settings.Output, report.Options{
		Quiet:     opts.Quiet,
		UseColors: settings.Color,
		Verbose:   settings.Verbose,
	})

	e.runner = runner.New(opts, e.fs, e.extractor, reporter, settings.Logger)
	return e, nil
}

func loadPathResolver(opts Options) (modules.LoadPathResolver, error) {
	if len(opts.LoadPaths) > 0 {
		return modules.StaticLoadPaths(opts.LoadPaths), nil
	}
	resolver, err := modules.NewRootResolver(opts.SourceRoot, nil, 0)
	if err != nil {
		return nil, errs.Wrap(err, "load path cache")
	}
	return resolver, nil
}

// Options returns the options the engine was built with.
func (e *Engine) Options() Options {
	return e.opts
}

// Run generates every matched source, then reaps orphans when RemoveOrphans is set.
func (e *Engine) Run(ctx context.Context) (Summary, error) {
	return e.runner.Run(ctx)
}

// Clean only removes orphaned declarations.
func (e *Engine) Clean(ctx context.Context) (Summary, error) {
	return e.runner.Reap(ctx)
}

// Files returns the sources matched by the glob.
func (e *Engine) Files() ([]string, error) {
	return e.runner.Files()
}

// Sources reports module status and declaration presence for every matched source.
func (e *Engine) Sources() ([]SourceStatus, error) {
	files, err := e.Files()
	if err != nil {
		return nil, err
	}

	statuses := make([]SourceStatus, 0, len(files))
	for _, file := range files {
		exists, err := e.fs.Exists(artifact.DeclarationPath(file))
		if err != nil {
			return nil, errs.Wrapf(err, "stat declaration of %s", file)
		}
		statuses = append(statuses, SourceStatus{
			Path:        file,
			Module:      e.opts.IsModule(file),
			Declaration: exists,
		})
	}

	sort.Slice(statuses, func(i, j int) bool {
		return statuses[i].Path < statuses[j].Path
	})
	return statuses, nil
}

// Inspect extracts one file without touching its declaration.
func (e *Engine) Inspect(ctx context.Context, path string) Extraction {
	return e.extractor.Extract(ctx, path)
}

// Declaration renders the declaration text path would receive, or "" when
// it would have none.
func (e *Engine) Declaration(ctx context.Context, path string) (string, error) {
	result := e.Inspect(ctx, path)
	if result.Failed() {
		return "", result.Err
	}
	if len(result.Names()) == 0 {
		return "", nil
	}
	return synthesize(result.Names(), e.opts)
}

// Close stops the Dart Sass process if one was started.
func (e *Engine) Close() error {
	if e.dartSass != nil {
		return e.dartSass.Close()
	}
	return nil
}
