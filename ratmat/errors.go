// Package ratmat: sentinel error set.
// This file defines ONLY package-level sentinel errors used across the
// ratmat package. All operations return these sentinels and tests check
// them via errors.Is. No operation panics on user-triggered conditions.

package ratmat

import "errors"

// Every message is prefixed with "ratmat: ..." for consistency and to
// allow easy grepping across logs. Sentinels are returned plainly from
// detection sites; facades wrap them with fmt.Errorf("ctx: %w", ErrX) —
// callers still match via errors.Is.

var (
	// ErrInvalidDimensions indicates that requested matrix dimensions are
	// non-positive. Constructors validate shape before allocation.
	ErrInvalidDimensions = errors.New("ratmat: dimensions must be > 0")

	// ErrOutOfRange indicates that a row or column index is outside valid
	// bounds. Public indexers (At/Set and the row operations) return this,
	// never panic.
	ErrOutOfRange = errors.New("ratmat: index out of range")

	// ErrDimensionMismatch indicates incompatible dimensions between
	// operands, e.g. Augment with different row counts, ragged FromRows
	// input, or Mul where a.Cols != b.Rows.
	ErrDimensionMismatch = errors.New("ratmat: dimension mismatch")

	// ErrNilMatrix indicates that a nil *Dense (receiver or argument) was
	// passed where a matrix is required.
	ErrNilMatrix = errors.New("ratmat: nil matrix")

	// ErrNilEntry indicates a nil *big.Rat value where an entry or factor
	// is required (Set, ScaleRow, AddScaledRow).
	ErrNilEntry = errors.New("ratmat: nil rational entry")

	// ErrNaNInf signals a NaN or ±Inf float where a finite value is
	// required; non-finite floats have no rational promotion.
	ErrNaNInf = errors.New("ratmat: NaN or Inf has no rational value")
)
