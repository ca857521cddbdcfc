package modules

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/yacobolo/scsstypes/internal/config"
	"github.com/yacobolo/scsstypes/internal/errs"
	"github.com/yacobolo/scsstypes/internal/sass"
)

// Extraction is the outcome of extracting one source file.
// A failed extraction carries Err and no locals.
type Extraction struct {
	Source string
	Locals *Locals
	Err    error
}

// Failed reports whether the extraction produced no result.
func (e Extraction) Failed() bool {
	return e.Err != nil || e.Locals == nil
}

// Names returns the extracted class names, or nil on failure.
func (e Extraction) Names() []string {
	if e.Failed() {
		return nil
	}
	return e.Locals.Names()
}

// ExtractorOptions configures an Extractor.
type ExtractorOptions struct {
	LoadPaths  LoadPathResolver
	Convention config.LocalsConvention
	Namer      Namer
	Logger     *slog.Logger
}

// Extractor turns a style source file into its exported class names.
type Extractor struct {
	compiler   sass.Compiler
	loadPaths  LoadPathResolver
	convention config.LocalsConvention
	namer      Namer
	logger     *slog.Logger
}

// NewExtractor creates an extractor backed by compiler.
func NewExtractor(compiler sass.Compiler, opts ExtractorOptions) *Extractor {
	if opts.LoadPaths == nil {
		opts.LoadPaths = StaticLoadPaths(nil)
	}
	if opts.Convention == "" {
		opts.Convention = config.ConventionCamelCaseOnly
	}
	if opts.Namer == nil {
		opts.Namer = DevelopmentNamer
	}
	if opts.Logger == nil {
		opts.Logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &Extractor{
		compiler:   compiler,
		loadPaths:  opts.LoadPaths,
		convention: opts.Convention,
		namer:      opts.Namer,
		logger:     opts.Logger,
	}
}

// Extract compiles path and collects its local names.
// Failures are logged and returned as a failed Extraction, never as a panic.
func (e *Extractor) Extract(ctx context.Context, path string) (result Extraction) {
	result.Source = path

	defer func() {
		if r := recover(); r != nil {
			result.Locals = nil
			result.Err = errs.Newf("extract %s: %v", path, r)
			e.logger.Error("extraction panicked", "file", path, "panic", fmt.Sprint(r))
		}
	}()

	compiled, err := e.compiler.Compile(ctx, path, e.loadPaths.LoadPaths(path))
	if err != nil {
		result.Err = errs.Wrapf(err, "compile %s", path)
		e.logger.Error("style compilation failed", "file", path, "error", err)
		return result
	}

	locals, err := Scope(compiled, path, e.namer)
	if err != nil {
		result.Err = errs.Wrapf(err, "scope %s", path)
		e.logger.Error("css modules pass failed", "file", path, "error", err)
		return result
	}

	result.Locals = ApplyConvention(e.convention, locals)
	e.logger.Debug("extracted class names", "file", path, "count", result.Locals.Len())
	return result
}
