package sass

import (
	"context"
	"log/slog"
	"net/url"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/bep/godartsass/v2"

	"github.com/yacobolo/scsstypes/internal/errs"
)

// DartSass compiles SCSS and indented Sass through the Dart Sass embedded protocol.
// The compiler process is started on first use and shared by concurrent callers.
type DartSass struct {
	binary  string
	timeout time.Duration
	logger  *slog.Logger

	once       sync.Once
	transpiler *godartsass.Transpiler
	startErr   error
}

// NewDartSass prepares a compiler backed by the given sass executable.
func NewDartSass(binary string, timeout time.Duration, logger *slog.Logger) *DartSass {
	if binary == "" {
		binary = "sass"
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &DartSass{binary: binary, timeout: timeout, logger: logger}
}

func (d *DartSass) start() error {
	d.once.Do(func() {
		d.logger.Debug("Starting Dart Sass", "binary", d.binary)
		d.transpiler, d.startErr = godartsass.Start(godartsass.Options{
			DartSassEmbeddedFilename: d.binary,
			Timeout:                  d.timeout,
			LogEventHandler: func(e godartsass.LogEvent) {
				d.logger.Warn("sass", "message", e.Message)
			},
		})
		if d.startErr != nil {
			d.startErr = errs.WithHintf(errs.Wrapf(d.startErr, "start %s", d.binary),
				"install Dart Sass >= 1.63 or point sass-binary at it")
		}
	})
	return d.startErr
}

// Compile compiles path with loadPaths as include paths.
func (d *DartSass) Compile(ctx context.Context, path string, loadPaths []string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	if err := d.start(); err != nil {
		return "", err
	}

	// #nosec G304 - path comes from the configured glob
	source, err := os.ReadFile(path)
	if err != nil {
		return "", errs.Wrapf(err, "read %s", path)
	}

	abs, err := filepath.Abs(path)
	if err != nil {
		return "", errs.Wrapf(err, "resolve %s", path)
	}

	res, err := d.transpiler.Execute(godartsass.Args{
		Source:       string(source),
		URL:          fileURL(abs),
		IncludePaths: loadPaths,
		OutputStyle:  godartsass.OutputStyleExpanded,
		SourceSyntax: syntaxFor(path),
	})
	if err != nil {
		return "", errs.Wrapf(err, "compile %s", path)
	}
	return res.CSS, nil
}

// Close stops the compiler process if it was started.
func (d *DartSass) Close() error {
	if d.transpiler == nil {
		return nil
	}
	return d.transpiler.Close()
}

func syntaxFor(path string) godartsass.SourceSyntax {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".sass":
		return godartsass.SourceSyntaxSASS
	case ".css":
		return godartsass.SourceSyntaxCSS
	default:
		return godartsass.SourceSyntaxSCSS
	}
}

func fileURL(abs string) string {
	p := filepath.ToSlash(abs)
	if !strings.HasPrefix(p, "/") {
		p = "/" + p
	}
	return (&url.URL{Scheme: "file", Path: p}).String()
}
