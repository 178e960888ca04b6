// Package gauss: inversion via traced augmented-matrix reduction.

package gauss

import "github.com/aluzardo/ratsteps/ratmat"

// Inverse computes A⁻¹ by building the augmented matrix [A|Iₙ] and
// reducing it in RREF mode. When the left n×n block reduces to the
// identity, the right block is the inverse and the terminal step
// announces success; otherwise A is singular.
//
// Both non-square input and singularity are logged non-results, not
// errors: the returned matrix is nil, err is nil, and the Log's terminal
// note explains why. Every swap, scale and elimination on the augmented
// matrix is traced exactly as in RREF.
//
// Errors: ErrNilMatrix. Complexity: O(n³).
func Inverse(m *ratmat.Dense) (*ratmat.Dense, Log, error) {
	if ratmat.ValidateNotNil(m) != nil {
		return nil, nil, gaussErrorf(opInverse, ErrNilMatrix)
	}

	log := make(Log, 0, 2*m.Rows()*m.Cols()+2)
	if !m.IsSquare() {
		log.record(Op{Kind: KindInitial, Col: -1}, "Initial matrix", m)
		log.record(
			Op{Kind: KindNote, Col: -1},
			"Matrix is not square: no inverse exists",
			m,
		)

		return nil, log, nil
	}

	n := m.Rows()
	eye, err := ratmat.Identity(n)
	if err != nil {
		return nil, nil, gaussErrorf(opInverse, err)
	}
	aug, err := ratmat.Augment(m, eye)
	if err != nil {
		return nil, nil, gaussErrorf(opInverse, err)
	}

	log.record(Op{Kind: KindInitial, Col: -1}, "Augmented matrix [A|I]", aug)
	// Sweep only the n coefficient columns: the identity block is carried
	// by the row operations but never pivoted, so a singular run stops
	// once the left block is exhausted.
	reduceInPlace(aug, &log, modeRREF, n)

	left, err := aug.Block(0, 0, n, n)
	if err != nil {
		return nil, nil, gaussErrorf(opInverse, err)
	}
	if !left.IsIdentity() {
		log.record(
			Op{Kind: KindNote, Col: -1},
			"Left block is not I: matrix is singular, no inverse exists",
			aug,
		)

		return nil, log, nil
	}

	right, err := aug.Block(0, n, n, n)
	if err != nil {
		return nil, nil, gaussErrorf(opInverse, err)
	}
	log.record(
		Op{Kind: KindResult, Col: -1},
		"Left block is I: right block is A^-1",
		aug,
	)

	return right, log, nil
}
