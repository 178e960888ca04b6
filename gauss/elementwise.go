// Package gauss: elementwise arithmetic with a per-cell trace.
//
// Purpose:
//   - Add/Sub/Multiply over exact rationals, logging one Step per result
//     cell in row-major order: the working result starts as zeros and
//     the viewer watches it fill in, cell by cell.
//   - Add and Sub share one kernel differing only in sign — the usual
//     way to keep the two loops from drifting apart.

package gauss

import (
	"fmt"
	"math/big"
	"strings"

	"github.com/aluzardo/ratsteps/ratmat"
)

// fmtApprox renders a rational rounded to the configured precision, the
// compact form step descriptions use for operands and results.
func fmtApprox(r *big.Rat, precision int) string {
	f, _ := r.Float64()

	return ratmat.FmtNum(f, precision)
}

// addSub computes C = A ± B with one KindCell step per cell.
// sign is +1 for Add, −1 for Sub; verb and opTag label the trace and the
// error wrapping respectively.
func addSub(a, b *ratmat.Dense, sign int64, symbol, verb, opTag string, opts ...Option) (*ratmat.Dense, Log, error) {
	if err := ratmat.ValidateSameShape(a, b); err != nil {
		return nil, nil, shapeErr(opTag, err)
	}
	o := gatherOptions(opts...)

	rows, cols := a.Shape()
	res, err := ratmat.NewDense(rows, cols)
	if err != nil {
		return nil, nil, gaussErrorf(opTag, err)
	}
	log := make(Log, 0, rows*cols+2)
	log.record(Op{Kind: KindInitial, Col: -1}, "Initial result matrix (zeros)", res)

	scale := big.NewRat(sign, 1)
	for i := 0; i < rows; i++ {
		for j := 0; j < cols; j++ {
			av, _ := a.At(i, j) // shape validated above
			bv, _ := b.At(i, j)
			val := new(big.Rat).Mul(scale, bv)
			val.Add(av, val)
			_ = res.Set(i, j, val)
			log.record(
				Op{Kind: KindCell, Row: i, Col: j, Value: ratCopy(val)},
				fmt.Sprintf("C[%d,%d] = %s %s %s = %s",
					i+1, j+1,
					fmtApprox(av, o.precision), symbol, fmtApprox(bv, o.precision),
					fmtApprox(val, o.precision)),
				res,
			)
		}
	}

	log.record(Op{Kind: KindResult, Col: -1}, verb, res)

	return res, log, nil
}

// Add computes C = A + B, logging every cell update and a terminal
// "complete" step with the full result.
// Errors: ErrNilMatrix, ErrDimensionMismatch (shape differs).
// Complexity: O(r*c).
func Add(a, b *ratmat.Dense, opts ...Option) (*ratmat.Dense, Log, error) {
	return addSub(a, b, +1, "+", "Addition complete: A + B", opAdd, opts...)
}

// Sub computes C = A − B, logging every cell update and a terminal
// "complete" step with the full result.
// Errors: ErrNilMatrix, ErrDimensionMismatch (shape differs).
// Complexity: O(r*c).
func Sub(a, b *ratmat.Dense, opts ...Option) (*ratmat.Dense, Log, error) {
	return addSub(a, b, -1, "-", "Subtraction complete: A - B", opSub, opts...)
}

// Multiply computes C = A × B with one KindCell step per result cell;
// each description names every term of the dot-product sum.
// Errors: ErrNilMatrix, ErrDimensionMismatch (inner dimensions differ).
// Complexity: O(r*n*c).
func Multiply(a, b *ratmat.Dense, opts ...Option) (*ratmat.Dense, Log, error) {
	if err := ratmat.ValidateMulCompatible(a, b); err != nil {
		return nil, nil, shapeErr(opMultiply, err)
	}
	o := gatherOptions(opts...)

	rows, inner, cols := a.Rows(), a.Cols(), b.Cols()
	res, err := ratmat.NewDense(rows, cols)
	if err != nil {
		return nil, nil, gaussErrorf(opMultiply, err)
	}
	log := make(Log, 0, rows*cols+2)
	log.record(Op{Kind: KindInitial, Col: -1}, "Initial result matrix (zeros)", res)

	terms := make([]string, inner)
	t := new(big.Rat)
	for i := 0; i < rows; i++ {
		for j := 0; j < cols; j++ {
			val := new(big.Rat)
			for k := 0; k < inner; k++ {
				av, _ := a.At(i, k)
				bv, _ := b.At(k, j)
				val.Add(val, t.Mul(av, bv))
				terms[k] = fmtApprox(av, o.precision) + "*" + fmtApprox(bv, o.precision)
			}
			_ = res.Set(i, j, val)
			log.record(
				Op{Kind: KindCell, Row: i, Col: j, Value: ratCopy(val)},
				fmt.Sprintf("C[%d,%d] = %s = %s",
					i+1, j+1, strings.Join(terms, " + "), fmtApprox(val, o.precision)),
				res,
			)
		}
	}

	log.record(Op{Kind: KindResult, Col: -1}, "Product complete: A·B", res)

	return res, log, nil
}
