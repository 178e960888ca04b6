// Package gauss: the two-step transpose trace.

package gauss

import "github.com/aluzardo/ratsteps/ratmat"

// Transpose returns Aᵀ with a Log of exactly two steps: the original
// matrix and the transposed result. No elementary row operations are
// involved, but the trace contract (initial step, result step) still
// holds.
//
// Errors: ErrNilMatrix. Complexity: O(r*c).
func Transpose(m *ratmat.Dense) (*ratmat.Dense, Log, error) {
	if ratmat.ValidateNotNil(m) != nil {
		return nil, nil, gaussErrorf(opTranspose, ErrNilMatrix)
	}

	log := make(Log, 0, 2)
	log.record(Op{Kind: KindInitial, Col: -1}, "Original matrix A", m)
	t := m.Transpose()
	log.record(
		Op{Kind: KindResult, Col: -1},
		"Transpose: A^T (rows and columns exchanged)",
		t,
	)

	return t, log, nil
}
