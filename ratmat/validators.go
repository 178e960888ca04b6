// Package: ratmat
//
// Purpose:
//   - Provide a single, canonical source of truth for common validation
//     checks so kernels and facades stay minimal.
//   - Return plain sentinel errors (no wrapping) so call sites can wrap
//     uniformly.
//
// Determinism & Performance:
//   - All checks are pure, deterministic and allocate nothing.
//
// Note:
//   - Each composite validator follows a fixed sequence (NotNil → Shape).

package ratmat

import "fmt"

// validatorErrorf tags a sentinel with the validator name for consistent
// labeling across the package.
func validatorErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// ValidateNotNil ensures the matrix reference is non-nil.
// Complexity: O(1).
func ValidateNotNil(m *Dense) error {
	if m == nil {
		return validatorErrorf("ValidateNotNil", ErrNilMatrix)
	}

	return nil
}

// ValidateSameShape ensures a and b are non-nil with equal dimensions.
// Complexity: O(1).
func ValidateSameShape(a, b *Dense) error {
	if a == nil || b == nil {
		return validatorErrorf("ValidateSameShape", ErrNilMatrix)
	}
	if a.r != b.r {
		return validatorErrorf("ValidateSameShape: Rows", ErrDimensionMismatch)
	}
	if a.c != b.c {
		return validatorErrorf("ValidateSameShape: Columns", ErrDimensionMismatch)
	}

	return nil
}

// ValidateSquare checks that m is non-nil and square (Rows == Cols).
// Complexity: O(1).
func ValidateSquare(m *Dense) error {
	if m == nil {
		return validatorErrorf("ValidateSquare", ErrNilMatrix)
	}
	if m.r != m.c {
		return validatorErrorf("ValidateSquare", ErrDimensionMismatch)
	}

	return nil
}

// ValidateMulCompatible checks that a and b are non-nil and that the
// inner dimensions agree (a.Cols == b.Rows).
// Complexity: O(1).
func ValidateMulCompatible(a, b *Dense) error {
	if a == nil || b == nil {
		return validatorErrorf("ValidateMulCompatible", ErrNilMatrix)
	}
	if a.c != b.r {
		return validatorErrorf("ValidateMulCompatible", ErrDimensionMismatch)
	}

	return nil
}

// ValidateColumnVector checks that b is a non-nil single-column matrix
// with exactly n rows.
// Complexity: O(1).
func ValidateColumnVector(b *Dense, n int) error {
	if b == nil {
		return validatorErrorf("ValidateColumnVector", ErrNilMatrix)
	}
	if b.c != 1 || b.r != n {
		return validatorErrorf("ValidateColumnVector", ErrDimensionMismatch)
	}

	return nil
}
