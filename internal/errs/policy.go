package errs

import (
	"strings"
)

// Marker prefixes every line of a policy violation so reporters can tell it apart
// from unexpected failures at a glance.
const Marker = "❌"

// PolicyError reports that a batch contained files rejected by the modules-only policy.
// The whole batch is refused; no declaration is written for any file in it.
type PolicyError struct {
	Files []string // offending (non-module) files
}

func (e *PolicyError) Error() string {
	lines := []string{
		Marker + " All files must be SCSS modules.",
		Marker + " You can disable this check by setting modulesOnly to false",
		Marker + " Note that this may lead to unexpected behavior.",
	}
	for _, f := range e.Files {
		lines = append(lines, Marker+" Not a module: "+f)
	}
	return strings.Join(lines, "\n")
}

// NewPolicyError builds a PolicyError carrying a configuration hint.
func NewPolicyError(files []string) error {
	return WithHint(&PolicyError{Files: files},
		"set modules-only: false in .scsstypes.yaml (or pass --modules-only=false) to generate declarations for plain style sheets")
}

// IsPolicy reports whether err is, or wraps, a PolicyError.
func IsPolicy(err error) bool {
	var pe *PolicyError
	return As(err, &pe)
}
