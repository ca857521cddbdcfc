// Package artifact keeps generated declaration files in step with their sources.
package artifact

import (
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/bmatcuk/doublestar/v4"

	"github.com/yacobolo/scsstypes/internal/errs"
)

// Extension is appended to a source path to name its declaration.
const Extension = ".d.ts"

// FS is the filesystem surface used for sources and declarations.
type FS interface {
	Glob(pattern string) ([]string, error)
	ReadFile(path string) ([]byte, error)
	WriteFile(path string, data []byte) error
	Remove(path string) error
	Exists(path string) (bool, error)
}

// LocalFS is the operating system filesystem.
type LocalFS struct{}

// Glob expands a doublestar pattern ("src/**/*.module.scss") to matching files, sorted.
func (LocalFS) Glob(pattern string) ([]string, error) {
	matches, err := doublestar.FilepathGlob(pattern, doublestar.WithFilesOnly())
	if err != nil {
		return nil, errs.Wrapf(err, "glob pattern %q", pattern)
	}
	sort.Strings(matches)
	return matches, nil
}

// ReadFile reads path.
func (LocalFS) ReadFile(path string) ([]byte, error) {
	// #nosec G304 - path comes from the configured glob
	return os.ReadFile(path)
}

// WriteFile writes data to path, creating or truncating it.
func (LocalFS) WriteFile(path string, data []byte) error {
	// #nosec G306 - declarations are meant to be read by editors and bundlers
	return os.WriteFile(path, data, 0o644)
}

// Remove deletes path.
func (LocalFS) Remove(path string) error {
	return os.Remove(path)
}

// Exists reports whether path exists.
func (LocalFS) Exists(path string) (bool, error) {
	_, err := os.Stat(path)
	if err == nil {
		return true, nil
	}
	if errs.Is(err, fs.ErrNotExist) {
		return false, nil
	}
	return false, err
}

// DeclarationPath returns the declaration sibling of a source: "a.module.scss" → "a.module.scss.d.ts".
func DeclarationPath(source string) string {
	return source + Extension
}

// SourcePath recovers the source path of a declaration.
func SourcePath(declaration string) (string, bool) {
	if !strings.HasSuffix(declaration, Extension) {
		return "", false
	}
	return strings.TrimSuffix(declaration, Extension), true
}

// DeclarationGlob returns the pattern matching the declarations of sources matched by pattern.
func DeclarationGlob(pattern string) string {
	return pattern + Extension
}

// ResolvePattern anchors a relative pattern at root.
func ResolvePattern(root, pattern string) string {
	if root == "" || filepath.IsAbs(pattern) {
		return pattern
	}
	return filepath.Join(root, pattern)
}
