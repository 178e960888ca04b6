// Package gauss: the shared row-reduction engine.
//
// Purpose:
//   - One pivoting/elimination sweep serving RREF, triangularization,
//     determinant and inverse.
//   - Column-major sweep with a row pointer: columns that contribute no
//     pivot are skipped without advancing the pointer, which is how rank
//     deficiency and free variables surface in the trace.
//
// Determinism:
//   - Pivot selection always takes the FIRST row (top to bottom) with a
//     non-zero entry — never magnitude-based. Arithmetic is exact, so
//     there is no rounding to stabilize, and the choice fixes which
//     elementary operations appear in the Log.

package gauss

import (
	"errors"
	"fmt"
	"math/big"

	"github.com/aluzardo/ratsteps/ratmat"
)

// Operation name constants for unified error wrapping.
const (
	opRREF        = "RREF"
	opTriangular  = "UpperTriangular"
	opDeterminant = "Determinant"
	opInverse     = "Inverse"
	opCramer      = "Cramer"
	opAdd         = "Add"
	opSub         = "Sub"
	opMultiply    = "Multiply"
	opTranspose   = "Transpose"
)

// gaussErrorf wraps err with an operation tag, preserving the sentinel
// via %w. Use only when err != nil.
func gaussErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// shapeErr converts a ratmat validator failure into this package's
// validation class: nil operands map to ErrNilMatrix, everything else
// to ErrDimensionMismatch.
func shapeErr(tag string, err error) error {
	if errors.Is(err, ratmat.ErrNilMatrix) {
		return gaussErrorf(tag, ErrNilMatrix)
	}

	return gaussErrorf(tag, ErrDimensionMismatch)
}

// reduceMode selects the elimination variant.
type reduceMode int

const (
	// modeRREF scales each pivot to 1 and eliminates the pivot column
	// from every other row.
	modeRREF reduceMode = iota

	// modeTriangular never scales rows and eliminates only below the
	// pivot, preserving the diagonal magnitudes and the swap sign that
	// the determinant needs.
	modeTriangular
)

// one is the constant pivots are compared against before scaling.
var one = big.NewRat(1, 1)

// reduceInPlace runs the shared sweep on the leading `limit` columns of
// m, recording one Step per elementary change into log, and returns the
// number of row swaps performed (the determinant's sign source). Row
// operations still span every column, so an augmented right block is
// carried along without ever being pivoted — pass m.Cols() to sweep the
// whole matrix. A nil log disables recording for callers that only need
// the reduced matrix.
//
// Invariant: every recorded snapshot differs from its predecessor by
// exactly the one operation its Op names.
// Complexity: O(rows²·cols) rational operations.
func reduceInPlace(m *ratmat.Dense, log *Log, mode reduceMode, limit int) int {
	rec := func(op Op, desc string) {
		if log != nil {
			log.record(op, desc, m)
		}
	}
	rows, cols := m.Shape()
	if limit > cols {
		limit = cols
	}
	swaps := 0
	r := 0
	for c := 0; c < limit && r < rows; c++ {
		// Pivot search: first row at or below r with a non-zero entry.
		piv := -1
		for i := r; i < rows; i++ {
			if sgn, _ := m.Sign(i, c); sgn != 0 {
				piv = i

				break
			}
		}
		if piv < 0 {
			continue // no pivot in this column; r stays put
		}

		if piv != r {
			_ = m.SwapRows(piv, r) // indices derived from validated shape
			swaps++
			rec(
				Op{Kind: KindSwap, Row: piv, Other: r, Col: c},
				fmt.Sprintf("Swap row %d with row %d", piv+1, r+1),
			)
		}

		switch mode {
		case modeRREF:
			// Normalize the pivot to 1, then clear the column everywhere else.
			pivot, _ := m.At(r, c)
			if pivot.Cmp(one) != 0 {
				_ = m.ScaleRow(r, new(big.Rat).Inv(pivot))
				rec(
					Op{Kind: KindScale, Row: r, Col: c, Factor: ratCopy(pivot)},
					fmt.Sprintf("Divide row %d by %s", r+1, ratmat.FmtRat(pivot)),
				)
			}
			for i := 0; i < rows; i++ {
				if i == r {
					continue
				}
				factor, _ := m.At(i, c)
				if factor.Sign() == 0 {
					continue
				}
				// Pivot is 1 here, so the factor is the entry itself.
				_ = m.AddScaledRow(i, r, new(big.Rat).Neg(factor))
				rec(
					Op{Kind: KindCombine, Row: i, Other: r, Col: c, Factor: ratCopy(factor)},
					fmt.Sprintf("R%d <- R%d - (%s)*R%d", i+1, i+1, ratmat.FmtRat(factor), r+1),
				)
			}
		case modeTriangular:
			// No scaling: eliminate below the pivot with the exact ratio.
			pivot, _ := m.At(r, c)
			for i := r + 1; i < rows; i++ {
				entry, _ := m.At(i, c)
				if entry.Sign() == 0 {
					continue
				}
				factor := new(big.Rat).Quo(entry, pivot)
				_ = m.AddScaledRow(i, r, new(big.Rat).Neg(factor))
				rec(
					Op{Kind: KindCombine, Row: i, Other: r, Col: c, Factor: ratCopy(factor)},
					fmt.Sprintf("R%d <- R%d - (%s)*R%d", i+1, i+1, ratmat.FmtRat(factor), r+1),
				)
			}
		}
		r++
	}

	return swaps
}

// RREF reduces a copy of m to reduced row echelon form, returning the
// result and the full Step trace. The input is never mutated.
//
// Rank deficiency is not an error: pivotless columns are simply skipped
// and the final matrix contains the corresponding free columns.
//
// Errors: ErrNilMatrix. Complexity: O(rows²·cols).
func RREF(m *ratmat.Dense) (*ratmat.Dense, Log, error) {
	if ratmat.ValidateNotNil(m) != nil {
		return nil, nil, gaussErrorf(opRREF, ErrNilMatrix)
	}
	work := m.Clone()
	log := make(Log, 0, work.Rows()*work.Cols()+2)
	log.record(Op{Kind: KindInitial, Col: -1}, "Initial matrix", work)
	reduceInPlace(work, &log, modeRREF, work.Cols())
	log.record(Op{Kind: KindResult, Col: -1}, "Result: RREF", work)

	return work, log, nil
}

// UpperTriangular forward-eliminates a copy of m to upper triangular
// form U without row scaling, returning the result and the Step trace.
//
// Errors: ErrNilMatrix. Complexity: O(rows²·cols).
func UpperTriangular(m *ratmat.Dense) (*ratmat.Dense, Log, error) {
	if ratmat.ValidateNotNil(m) != nil {
		return nil, nil, gaussErrorf(opTriangular, ErrNilMatrix)
	}
	work := m.Clone()
	log := make(Log, 0, work.Rows()*work.Cols()+2)
	log.record(Op{Kind: KindInitial, Col: -1}, "Initial matrix", work)
	reduceInPlace(work, &log, modeTriangular, work.Cols())
	log.record(Op{Kind: KindResult, Col: -1}, "Result: U (upper triangular)", work)

	return work, log, nil
}
