// Package parse: sentinel error set (the ParseError class).
// All parsing failures wrap exactly one of these sentinels; tests and
// callers match them via errors.Is.

package parse

import "errors"

var (
	// ErrEmptyInput indicates empty or whitespace-only input.
	ErrEmptyInput = errors.New("parse: empty input")

	// ErrBadNumber indicates a token that is not a valid number.
	ErrBadNumber = errors.New("parse: invalid number")

	// ErrRaggedRows indicates rows (or vectors) of inconsistent length.
	ErrRaggedRows = errors.New("parse: rows have inconsistent lengths")

	// ErrNotTwoDim indicates input whose structure is not a 2-D matrix
	// (e.g. a bracketed literal of the wrong nesting depth with no
	// free-form reading either).
	ErrNotTwoDim = errors.New("parse: input is not a two-dimensional matrix")
)
