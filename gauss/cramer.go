// Package gauss: Cramer's rule via traced column substitution.

package gauss

import (
	"fmt"
	"math/big"

	"github.com/aluzardo/ratsteps/ratmat"
)

// CramerResult bundles everything a Cramer solve produces: the exact
// solution (nil when no unique solution exists), the coefficient
// determinant, the per-column substituted determinants, and the solution
// components both exactly and as float64 conveniences.
type CramerResult struct {
	// Solution is the exact n×1 solution vector, nil when det(A) == 0.
	Solution *ratmat.Dense

	// Det is det(A), always computed exactly.
	Det *big.Rat

	// ColumnDets holds det(Aᵢ) per substituted column, empty when
	// det(A) == 0.
	ColumnDets []*big.Rat

	// Exact holds xᵢ = det(Aᵢ)/det(A) as exact rationals.
	Exact []*big.Rat

	// Approx holds the float64 evaluation of Exact, for display
	// convenience only.
	Approx []float64
}

// Cramer solves A·x = b by Cramer's rule: det(A) plus one determinant
// per column of A with that column replaced by b.
//
// Preconditions fail with sentinels BEFORE any step is recorded, so a
// validation failure never yields a partial Log: b must be a single
// column (ErrNotColumnVector), A square (ErrNonSquare), and b as long as
// A is wide (ErrDimensionMismatch).
//
// A zero determinant is a logged non-result: Solution is nil, err is
// nil, and the Log keeps the determinant step plus a terminal note that
// no unique solution exists. Otherwise each column index contributes a
// substitution step, a determinant step, and a quotient step, and the
// terminal step holds the solution vector.
//
// Errors: ErrNilMatrix, ErrNotColumnVector, ErrNonSquare,
// ErrDimensionMismatch. Complexity: O(n⁴) rational operations.
func Cramer(a, b *ratmat.Dense) (*CramerResult, Log, error) {
	if ratmat.ValidateNotNil(a) != nil || ratmat.ValidateNotNil(b) != nil {
		return nil, nil, gaussErrorf(opCramer, ErrNilMatrix)
	}
	if b.Cols() != 1 {
		return nil, nil, gaussErrorf(opCramer, ErrNotColumnVector)
	}
	if ratmat.ValidateSquare(a) != nil {
		return nil, nil, gaussErrorf(opCramer, ErrNonSquare)
	}
	n := a.Rows()
	// Single-column shape is already established; only the length can
	// still disagree here.
	if ratmat.ValidateColumnVector(b, n) != nil {
		return nil, nil, gaussErrorf(opCramer, ErrDimensionMismatch)
	}

	aug, err := ratmat.Augment(a, b)
	if err != nil {
		return nil, nil, gaussErrorf(opCramer, err)
	}
	log := make(Log, 0, 3*n+3)
	log.record(Op{Kind: KindInitial, Col: -1}, "Augmented system [A|b]", aug)

	detA := detValue(a)
	log.record(
		Op{Kind: KindDeterminant, Col: -1, Value: ratCopy(detA)},
		fmt.Sprintf("det(A) = %s", ratmat.FmtRat(detA)),
		a,
	)

	res := &CramerResult{Det: detA}
	if detA.Sign() == 0 {
		log.record(
			Op{Kind: KindNote, Col: -1},
			"det(A) = 0: Cramer's rule does not apply (no unique solution)",
			a,
		)

		return res, log, nil
	}

	solution, err := ratmat.NewDense(n, 1)
	if err != nil {
		return nil, nil, gaussErrorf(opCramer, err)
	}
	for i := 0; i < n; i++ {
		sub := a.Clone()
		if err = sub.ReplaceColumn(i, b); err != nil {
			return nil, nil, gaussErrorf(opCramer, err)
		}
		log.record(
			Op{Kind: KindSubstitute, Col: i},
			fmt.Sprintf("A_%d: replace column %d with b", i+1, i+1),
			sub,
		)

		detAi := detValue(sub)
		res.ColumnDets = append(res.ColumnDets, detAi)
		log.record(
			Op{Kind: KindDeterminant, Col: i, Value: ratCopy(detAi)},
			fmt.Sprintf("det(A_%d) = %s", i+1, ratmat.FmtRat(detAi)),
			sub,
		)

		xi := new(big.Rat).Quo(detAi, detA)
		res.Exact = append(res.Exact, xi)
		f, _ := xi.Float64()
		res.Approx = append(res.Approx, f)
		if err = solution.Set(i, 0, xi); err != nil {
			return nil, nil, gaussErrorf(opCramer, err)
		}

		cell, err := ratmat.FromRows([][]*big.Rat{{xi}})
		if err != nil {
			return nil, nil, gaussErrorf(opCramer, err)
		}
		log.record(
			Op{Kind: KindQuotient, Col: i, Value: ratCopy(xi)},
			fmt.Sprintf("x_%d = det(A_%d) / det(A) = %s/%s",
				i+1, i+1, ratmat.FmtRat(detAi), ratmat.FmtRat(detA)),
			cell,
		)
	}

	res.Solution = solution
	log.record(Op{Kind: KindResult, Col: -1}, "Solution vector x", solution)

	return res, log, nil
}
