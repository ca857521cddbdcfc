package modules

import (
	"os"
	"path/filepath"

	lru "github.com/hashicorp/golang-lru/v2"
)

// LoadPathResolver supplies the include paths used to compile a source file.
type LoadPathResolver interface {
	LoadPaths(source string) []string
}

// StaticLoadPaths returns the same include paths for every file.
type StaticLoadPaths []string

// LoadPaths implements LoadPathResolver.
func (s StaticLoadPaths) LoadPaths(string) []string {
	return s
}

// RootResolver finds the nearest directory containing a project marker
// (tsconfig.json by default) above a source file and returns
// <project>/<sourceRoot> as its single load path.
type RootResolver struct {
	sourceRoot string
	markers    []string
	fallback   []string
	cache      *lru.Cache[string, []string]
}

// NewRootResolver creates a resolver caching up to size directories.
// fallback is used when no marker is found.
func NewRootResolver(sourceRoot string, fallback []string, size int) (*RootResolver, error) {
	if size <= 0 {
		size = 256
	}
	cache, err := lru.New[string, []string](size)
	if err != nil {
		return nil, err
	}
	return &RootResolver{
		sourceRoot: sourceRoot,
		markers:    []string{"tsconfig.json", "jsconfig.json"},
		fallback:   fallback,
		cache:      cache,
	}, nil
}

// LoadPaths implements LoadPathResolver.
func (r *RootResolver) LoadPaths(source string) []string {
	abs, err := filepath.Abs(source)
	if err != nil {
		return r.fallback
	}
	dir := filepath.Dir(abs)

	if paths, ok := r.cache.Get(dir); ok {
		return paths
	}

	paths := r.fallback
	if project, ok := r.findProject(dir); ok {
		paths = []string{filepath.Join(project, r.sourceRoot)}
	}
	r.cache.Add(dir, paths)
	return paths
}

func (r *RootResolver) findProject(dir string) (string, bool) {
	for {
		for _, marker := range r.markers {
			if info, err := os.Stat(filepath.Join(dir, marker)); err == nil && !info.IsDir() {
				return dir, true
			}
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return "", false
		}
		dir = parent
	}
}
