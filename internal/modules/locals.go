// Package modules extracts the exported local names of a CSS module.
//
// Extraction compiles the source, scans the compiled CSS for locally scoped
// identifiers, and applies a locals convention to the resulting keys:
//
//	ex := modules.NewExtractor(compiler, modules.ExtractorOptions{
//		LoadPaths:  modules.StaticLoadPaths{"src"},
//		Convention: config.ConventionCamelCaseOnly,
//	})
//	result := ex.Extract(ctx, "src/button.module.scss")
//	if result.Failed() {
//		// keep the previous declaration
//	}
package modules

// Locals is an insertion-ordered mapping of local names to their scoped identifiers.
type Locals struct {
	names  []string
	scoped map[string]string
}

// NewLocals returns an empty mapping.
func NewLocals() *Locals {
	return &Locals{scoped: make(map[string]string)}
}

// Add records name unless it is already present; the first value wins.
func (l *Locals) Add(name, scoped string) {
	if _, exists := l.scoped[name]; exists {
		return
	}
	l.names = append(l.names, name)
	l.scoped[name] = scoped
}

// Names returns the names in first-seen order.
func (l *Locals) Names() []string {
	out := make([]string, len(l.names))
	copy(out, l.names)
	return out
}

// Lookup returns the scoped identifier for name.
func (l *Locals) Lookup(name string) (string, bool) {
	v, ok := l.scoped[name]
	return v, ok
}

// Len returns the number of names.
func (l *Locals) Len() int {
	return len(l.names)
}
