// Package config holds the single configuration struct consumed by every stage
// of the declaration pipeline.
package config

import (
	"regexp"
	"strings"
	"time"

	"github.com/yacobolo/scsstypes/internal/errs"
)

// LocalsConvention selects how exported local names are cased.
type LocalsConvention string

// Locals conventions, named after their postcss-modules equivalents
const (
	ConventionAsIs          LocalsConvention = "asIs"
	ConventionCamelCase     LocalsConvention = "camelCase"
	ConventionCamelCaseOnly LocalsConvention = "camelCaseOnly"
	ConventionDashes        LocalsConvention = "dashes"
	ConventionDashesOnly    LocalsConvention = "dashesOnly"
)

// ScopedNames selects the generator used for scoped (hashed) class names.
type ScopedNames string

// Scoped name modes
const (
	ScopedDevelopment ScopedNames = "development"
	ScopedProduction  ScopedNames = "production"
)

// DefaultBanner is written at the top of every generated declaration.
const DefaultBanner = "// This file is generated automatically do not modify it by hand"

// Options holds generator configuration
type Options struct {
	Banner               string           `yaml:"banner"`                // Leading comment of the generated file
	FileGlob             string           `yaml:"file-glob"`             // "src/**/*.module.scss", relative to Root
	Initialize           bool             `yaml:"initialize"`            // Run a full batch on startup
	ModulesOnly          bool             `yaml:"modules-only"`          // Reject batches / ignore changes for non-module files
	Name                 string           `yaml:"name"`                  // Generated interface name
	ExportNames          []string         `yaml:"export-name"`           // Exported constants, the first one is the default export
	RemoveOrphans        bool             `yaml:"remove-orphans"`        // Delete declarations whose source is gone
	LocalsConvention     LocalsConvention `yaml:"locals-convention"`     // Casing applied to extracted names
	AdditionalProperties bool             `yaml:"additional-properties"` // Generated interface accepts unknown keys

	Root            string        `yaml:"root"`              // Project root the glob is resolved against (default: cwd)
	SourceRoot      string        `yaml:"source-root"`       // Directory next to tsconfig.json used as sass load path
	LoadPaths       []string      `yaml:"load-paths"`        // Explicit load paths, disables discovery when set
	ModuleSuffixes  []string      `yaml:"module-suffixes"`   // Filename suffixes that mark a style module
	ScopedNames     ScopedNames   `yaml:"scoped-names"`      // Scoped name generator: development or production
	ClassNameLength int           `yaml:"class-name-length"` // Length of production scoped names
	SassBinary      string        `yaml:"sass-binary"`       // Dart Sass executable with embedded protocol support
	SassTimeout     time.Duration `yaml:"sass-timeout"`      // Per-compilation timeout (0 = library default)
	Concurrency     int           `yaml:"concurrency"`       // Max files processed at once (0 = all at once)
	Quiet           bool          `yaml:"quiet"`             // Suppress run notices
}

// Default returns the documented defaults.
func Default() Options {
	return Options{
		Banner:               DefaultBanner,
		FileGlob:             "src/**/*.module.scss",
		Initialize:           true,
		ModulesOnly:          true,
		Name:                 "Styles",
		ExportNames:          []string{"styles"},
		RemoveOrphans:        true,
		LocalsConvention:     ConventionCamelCaseOnly,
		AdditionalProperties: false,
		SourceRoot:           "src",
		ModuleSuffixes:       []string{".module.scss", ".module.sass", ".module.css"},
		ScopedNames:          ScopedDevelopment,
		ClassNameLength:      5,
		SassBinary:           "sass",
	}
}

var identifierPattern = regexp.MustCompile(`^[A-Za-z_$][A-Za-z0-9_$]*$`)

// Validate checks the options for values no run could succeed with.
func (o Options) Validate() error {
	if strings.TrimSpace(o.FileGlob) == "" {
		return errs.New("fileGlob is required")
	}
	if strings.TrimSpace(o.Name) == "" {
		return errs.New("name is required")
	}
	if !identifierPattern.MatchString(o.Name) {
		return errs.Newf("name %q is not a valid identifier", o.Name)
	}
	if len(o.ExportNames) == 0 {
		return errs.New("at least one export name is required")
	}
	for _, name := range o.ExportNames {
		if !identifierPattern.MatchString(name) {
			return errs.Newf("export name %q is not a valid identifier", name)
		}
	}
	if !o.LocalsConvention.Valid() {
		return errs.WithHintf(errs.Newf("unknown locals convention %q", o.LocalsConvention),
			"use one of %s", strings.Join(conventionNames(), ", "))
	}
	switch o.ScopedNames {
	case ScopedDevelopment, ScopedProduction:
	default:
		return errs.Newf("unknown scoped names mode %q", o.ScopedNames)
	}
	if o.ClassNameLength <= 0 {
		return errs.Newf("class name length must be positive, got %d", o.ClassNameLength)
	}
	if o.Concurrency < 0 {
		return errs.Newf("concurrency must not be negative, got %d", o.Concurrency)
	}
	return nil
}

// Valid reports whether c is a known convention.
func (c LocalsConvention) Valid() bool {
	switch c {
	case ConventionAsIs, ConventionCamelCase, ConventionCamelCaseOnly, ConventionDashes, ConventionDashesOnly:
		return true
	}
	return false
}

func conventionNames() []string {
	return []string{
		string(ConventionAsIs),
		string(ConventionCamelCase),
		string(ConventionCamelCaseOnly),
		string(ConventionDashes),
		string(ConventionDashesOnly),
	}
}

// IsModule reports whether path names a style module by filename suffix.
func (o Options) IsModule(path string) bool {
	for _, suffix := range o.ModuleSuffixes {
		if strings.HasSuffix(path, suffix) {
			return true
		}
	}
	return false
}
