package scsstypes

import (
	"github.com/yacobolo/scsstypes/internal/config"
	"github.com/yacobolo/scsstypes/internal/modules"
	"github.com/yacobolo/scsstypes/internal/runner"
	"github.com/yacobolo/scsstypes/internal/sass"
)

// Options configures generation. See DefaultOptions for the defaults.
type Options = config.Options

// LocalsConvention selects how class names become declaration keys.
type LocalsConvention = config.LocalsConvention

// Locals conventions.
const (
	ConventionAsIs          = config.ConventionAsIs
	ConventionCamelCase     = config.ConventionCamelCase
	ConventionCamelCaseOnly = config.ConventionCamelCaseOnly
	ConventionDashes        = config.ConventionDashes
	ConventionDashesOnly    = config.ConventionDashesOnly
)

// ScopedNames selects the scoped class name generator.
type ScopedNames = config.ScopedNames

// Scoped name modes.
const (
	ScopedDevelopment = config.ScopedDevelopment
	ScopedProduction  = config.ScopedProduction
)

// Summary counts what a run did.
type Summary = runner.Summary

// Extraction is the outcome of extracting one source file.
type Extraction = modules.Extraction

// Compiler compiles one style source into CSS.
type Compiler = sass.Compiler

// CompilerFunc adapts a function to Compiler.
type CompilerFunc = sass.CompilerFunc

// DefaultOptions returns the default options.
func DefaultOptions() Options {
	return config.Default()
}
