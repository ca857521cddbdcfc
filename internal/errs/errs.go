// Package errs provides error handling for scsstypes.
//
// It re-exports github.com/cockroachdb/errors so callers get stack traces,
// wrapping and user-facing hints from a single import:
//
//	if err := fsys.WriteFile(path, data); err != nil {
//	    return errs.Wrapf(err, "write %s", path)
//	}
//
//	return errs.WithHint(err, "set modules-only: false to allow plain style sheets")
//
// For full documentation see: https://pkg.go.dev/github.com/cockroachdb/errors
package errs

import (
	stderrors "errors"

	crdb "github.com/cockroachdb/errors"
)

// Core error creation and wrapping
var (
	New   = crdb.New
	Newf  = crdb.Newf
	Wrap  = crdb.Wrap
	Wrapf = crdb.Wrapf
)

// User-facing hints
var (
	WithHint     = crdb.WithHint
	WithHintf    = crdb.WithHintf
	GetAllHints  = crdb.GetAllHints
	FlattenHints = crdb.FlattenHints
)

// Error inspection
var (
	Is = crdb.Is
	As = crdb.As
)

// Join combines the non-nil errors of a batch. It returns nil when every unit succeeded.
var Join = stderrors.Join
