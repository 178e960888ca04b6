// Package gauss: determinant via traced triangularization.

package gauss

import (
	"fmt"
	"math/big"

	"github.com/aluzardo/ratsteps/ratmat"
)

// Determinant computes det(m) exactly by triangularizing without row
// scaling, tracking the sign contributed by row swaps, and multiplying
// the diagonal: det = ∏ U[i,i] × (−1)^swaps.
//
// A non-square input is a logged non-result, not an error: the returned
// value is nil, err is nil, and the Log's terminal note says the
// determinant is not defined. Every swap and elimination of a square run
// is logged exactly as in UpperTriangular; the terminal step carries the
// exact value in Op.Value.
//
// Errors: ErrNilMatrix. Complexity: O(n³).
func Determinant(m *ratmat.Dense) (*big.Rat, Log, error) {
	if ratmat.ValidateNotNil(m) != nil {
		return nil, nil, gaussErrorf(opDeterminant, ErrNilMatrix)
	}
	work := m.Clone()
	log := make(Log, 0, work.Rows()*work.Cols()+2)
	log.record(Op{Kind: KindInitial, Col: -1}, "Initial matrix", work)

	if !work.IsSquare() {
		log.record(
			Op{Kind: KindNote, Col: -1},
			"Matrix is not square: determinant is not defined",
			work,
		)

		return nil, log, nil
	}

	swaps := reduceInPlace(work, &log, modeTriangular, work.Cols())

	det := big.NewRat(1, 1)
	n := work.Rows()
	for i := 0; i < n; i++ {
		d, _ := work.At(i, i)
		det.Mul(det, d)
	}
	if swaps%2 == 1 {
		det.Neg(det)
	}
	log.record(
		Op{Kind: KindDeterminant, Col: -1, Value: ratCopy(det)},
		fmt.Sprintf("Determinant = diagonal product * (-1)^swaps = %s", ratmat.FmtRat(det)),
		work,
	)

	return det, log, nil
}

// detValue computes det(m) for a square matrix without recording steps.
// Shared scratch path for Cramer, which logs determinant values but not
// the eliminations behind them.
func detValue(m *ratmat.Dense) *big.Rat {
	work := m.Clone()
	swaps := reduceInPlace(work, nil, modeTriangular, work.Cols())
	det := big.NewRat(1, 1)
	for i := 0; i < work.Rows(); i++ {
		d, _ := work.At(i, i)
		det.Mul(det, d)
	}
	if swaps%2 == 1 {
		det.Neg(det)
	}

	return det
}
