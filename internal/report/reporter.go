// Package report prints run notices and tables to the console.
package report

import (
	"fmt"
	"io"
	"os"
	"strings"
	"sync"
	"time"

	"github.com/yacobolo/scsstypes/internal/artifact"
	"github.com/yacobolo/scsstypes/internal/errs"
)

// Options controls console output.
type Options struct {
	Quiet     bool
	UseColors bool // force colors on
	Verbose   bool // print per-file warnings and reaped paths
}

// Reporter writes user-facing run notices. It is safe for concurrent use.
type Reporter struct {
	mu        sync.Mutex
	w         io.Writer
	quiet     bool
	verbose   bool
	useColors bool
}

// NewReporter creates a reporter writing to w.
func NewReporter(w io.Writer, opts Options) *Reporter {
	return &Reporter{
		w:         w,
		quiet:     opts.Quiet,
		verbose:   opts.Verbose,
		useColors: ShouldUseColors(opts.UseColors),
	}
}

// ShouldUseColors determines if colors should be enabled
func ShouldUseColors(force bool) bool {
	// Explicit flag wins
	if force {
		return true
	}

	if os.Getenv("NO_COLOR") != "" {
		return false
	}

	if os.Getenv("FORCE_COLOR") != "" {
		return true
	}

	if os.Getenv("GITHUB_ACTIONS") == "true" {
		return true
	}

	// Auto-detect TTY
	if fileInfo, err := os.Stdout.Stat(); err == nil && (fileInfo.Mode()&os.ModeCharDevice) != 0 {
		return true
	}

	return false
}

// Start announces a run.
func (r *Reporter) Start() {
	r.println("♻️  Regenerating SCSS types...")
}

// Success announces a finished run.
func (r *Reporter) Success(elapsed time.Duration) {
	r.println(RenderStyle(StyleGreen, fmt.Sprintf("✅ SCSS types regenerated in %dms", elapsed.Milliseconds()), r.useColors))
}

// Failure reports a failed run. Messages already carrying the ❌ marker
// (policy violations) are printed verbatim; anything else gets a generic prefix.
func (r *Reporter) Failure(err error) {
	if err == nil {
		return
	}

	msg := err.Error()
	if !strings.Contains(msg, errs.Marker) {
		msg = errs.Marker + " Error regenerating SCSS types: " + msg
	}
	for _, line := range strings.Split(msg, "\n") {
		r.println(RenderStyle(StyleRed, line, r.useColors))
	}

	for _, hint := range errs.GetAllHints(err) {
		r.println(RenderStyle(StyleGray, "Hint: "+hint, r.useColors))
	}
}

// ExtractionFailed warns that a file kept its previous declaration.
func (r *Reporter) ExtractionFailed(path string, err error) {
	if !r.verbose {
		return
	}
	r.println(fmt.Sprintf("%s %v", RenderStyle(StyleYellow, path+":", r.useColors), err))
}

// Reaped lists removed orphan declarations.
func (r *Reporter) Reaped(result artifact.ReapResult) {
	if r.verbose {
		for _, path := range result.Deleted {
			r.println(RenderStyle(StyleGray, "🗑  "+path, r.useColors))
		}
	}
	if err := result.Err(); err != nil {
		r.println(RenderStyle(StyleYellow, "Could not remove orphaned declarations: "+err.Error(), r.useColors))
	}
}

// UseColors returns whether colors are enabled
func (r *Reporter) UseColors() bool {
	return r.useColors
}

func (r *Reporter) println(line string) {
	if r.quiet {
		return
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	fmt.Fprintln(r.w, line)
}
