// Package gauss: sentinel error set (the validation class).
// Shape violations are detected before any elimination work begins, so a
// failed call never produces a partial Log. Algorithmic non-results
// (singularity, zero determinant, rank deficiency) are deliberately NOT
// errors — they are logged outcomes.

package gauss

import "errors"

var (
	// ErrNilMatrix indicates a nil operand where a matrix is required.
	ErrNilMatrix = errors.New("gauss: nil matrix")

	// ErrNonSquare signals that a square matrix was required (Cramer's
	// coefficient matrix) but the input wasn't.
	ErrNonSquare = errors.New("gauss: matrix is not square")

	// ErrDimensionMismatch indicates incompatible operand dimensions:
	// Add/Sub with different shapes, Multiply with inner mismatch, or a
	// Cramer right-hand side whose length differs from the system size.
	ErrDimensionMismatch = errors.New("gauss: dimension mismatch")

	// ErrNotColumnVector signals a Cramer right-hand side that is not a
	// single-column matrix.
	ErrNotColumnVector = errors.New("gauss: right-hand side must be a single column")
)
