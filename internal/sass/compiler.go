// Package sass turns style sources into standard CSS.
package sass

import (
	"context"
	"os"
	"path/filepath"
	"strings"

	"github.com/yacobolo/scsstypes/internal/errs"
)

// Compiler compiles one style source file into CSS text.
// loadPaths are the module search roots handed to the compiler for imports.
type Compiler interface {
	Compile(ctx context.Context, path string, loadPaths []string) (string, error)
}

// CompilerFunc adapts a function to the Compiler interface.
type CompilerFunc func(ctx context.Context, path string, loadPaths []string) (string, error)

// Compile calls f.
func (f CompilerFunc) Compile(ctx context.Context, path string, loadPaths []string) (string, error) {
	return f(ctx, path, loadPaths)
}

// Plain reads plain CSS sources as they are.
type Plain struct{}

// Compile returns the file contents.
func (Plain) Compile(ctx context.Context, path string, _ []string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	// #nosec G304 - path comes from the configured glob
	data, err := os.ReadFile(path)
	if err != nil {
		return "", errs.Wrapf(err, "read %s", path)
	}
	return string(data), nil
}

// Router dispatches on the source file extension.
type Router struct {
	byExt map[string]Compiler
}

// NewRouter routes .scss and .sass to styles and .css to Plain.
func NewRouter(styles Compiler) *Router {
	return &Router{
		byExt: map[string]Compiler{
			".scss": styles,
			".sass": styles,
			".css":  Plain{},
		},
	}
}

// Handle registers c for files ending in ext (".less", ".pcss", ...).
func (r *Router) Handle(ext string, c Compiler) {
	r.byExt[strings.ToLower(ext)] = c
}

// Compile forwards to the compiler registered for the extension of path.
func (r *Router) Compile(ctx context.Context, path string, loadPaths []string) (string, error) {
	ext := strings.ToLower(filepath.Ext(path))
	c, ok := r.byExt[ext]
	if !ok || c == nil {
		return "", errs.Newf("no compiler for %q files (%s)", ext, path)
	}
	return c.Compile(ctx, path, loadPaths)
}
