// Package gauss: the step recorder.
//
// Purpose:
//   - Define the Step/Op/Log trio every engine appends to.
//   - Enforce the snapshot discipline: a Step stores a deep copy of the
//     working matrix taken at record time, so later mutations can never
//     rewrite an earlier entry.
//   - Carry structured metadata (OpKind plus indices and factors) so a
//     renderer highlights affected rows without re-parsing description
//     text.

package gauss

import (
	"math/big"

	"github.com/aluzardo/ratsteps/ratmat"
)

// OpKind tags the elementary change a Step records. Exactly one change
// per Step: a swap, a scale, a row combination, a per-cell write, or one
// of the bookkeeping markers that open and close a Log.
type OpKind int

const (
	// KindInitial opens every Log with the untouched input.
	KindInitial OpKind = iota

	// KindSwap is an exchange of rows Row and Other.
	KindSwap

	// KindScale is a division of row Row by Factor (the pivot value).
	KindScale

	// KindCombine is the elimination step Row ← Row − Factor·Other.
	KindCombine

	// KindSubstitute marks a Cramer column substitution: column Col of
	// the coefficient matrix replaced by the right-hand side.
	KindSubstitute

	// KindDeterminant carries an exact determinant in Value (det(A) or a
	// Cramer det(Aᵢ), with Col identifying which).
	KindDeterminant

	// KindQuotient carries one Cramer solution component in Value:
	// x_Col = det(A_Col)/det(A).
	KindQuotient

	// KindCell is one elementwise write: cell (Row, Col) set to Value.
	KindCell

	// KindNote is a terminal explanation for a logged non-result:
	// non-square determinant, singular inverse, zero-determinant Cramer.
	KindNote

	// KindResult closes a Log that reached a definitive matrix result.
	KindResult
)

// Op is the structured description of a Step's elementary change. Field
// roles depend on Kind (indices are 0-based; descriptions render them
// 1-based for the viewer):
//
//	KindSwap:        Row, Other — the exchanged rows.
//	KindScale:       Row, Factor — row divided by Factor.
//	KindCombine:     Row, Other, Factor — Row ← Row − Factor·Other.
//	KindSubstitute:  Col — substituted column index.
//	KindDeterminant: Value; Col is −1 for det(A), the column index for a
//	                 Cramer det(Aᵢ).
//	KindQuotient:    Col, Value — solution component x_Col.
//	KindCell:        Row, Col, Value — the written cell.
//
// Unused fields are zero (indices default to −1 where 0 is meaningful).
type Op struct {
	Kind   OpKind
	Row    int
	Col    int
	Other  int
	Factor *big.Rat
	Value  *big.Rat
}

// Step is one recorded transformation: structured metadata, a rendered
// human-readable description, and a value-copied snapshot of the matrix
// immediately after the change.
type Step struct {
	Op          Op
	Description string
	Snapshot    *ratmat.Dense
}

// Log is the ordered trace of an engine run. Insertion order is the only
// order; a Log always opens with a KindInitial step and closes with a
// terminal step (KindResult, KindDeterminant, or KindNote).
type Log []Step

// record appends one Step, cloning the matrix so the snapshot is
// independent of the live working state. Factor/Value held by op must
// already be copies owned by the Step.
func (l *Log) record(op Op, desc string, m *ratmat.Dense) {
	*l = append(*l, Step{Op: op, Description: desc, Snapshot: m.Clone()})
}

// Final returns the last step of the log, or a zero Step for an empty
// log. Convenience for callers that only want the terminal state.
func (l Log) Final() Step {
	if len(l) == 0 {
		return Step{}
	}

	return l[len(l)-1]
}

// ratCopy returns an owned copy of r (nil stays nil). Ops must never
// alias engine-owned scratch values.
func ratCopy(r *big.Rat) *big.Rat {
	if r == nil {
		return nil
	}

	return new(big.Rat).Set(r)
}
