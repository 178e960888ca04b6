// Package gauss implements the step-producing linear-algebra engines:
// every operation returns its exact result together with an ordered Log
// of Steps, one per elementary transformation, each carrying a
// value-copied snapshot of the working matrix.
//
// 🚀 What is gauss?
//
//	The classical Gaussian-elimination family over exact rationals:
//	  • RREF — reduced row echelon form, scaling pivots to 1
//	  • UpperTriangular — forward elimination without row scaling
//	  • Determinant — triangularization with row-swap sign tracking
//	  • Inverse — augmented [A|I] reduction to [I|A⁻¹]
//	  • Cramer — n+1 exact determinants per solve
//	  • Add / Sub / Multiply — per-cell traced elementwise arithmetic
//	  • Transpose — the two-step before/after trace
//
// ✨ Key properties:
//   - Exact arithmetic throughout (*big.Rat): the trace never drifts
//   - First-nonzero pivoting, never magnitude-based: with exact
//     arithmetic there is nothing to stabilize, and the deterministic
//     trace is the contract a viewer and a test suite step through
//   - Structured step metadata: each Step carries an Op tagged variant
//     (swap, scale, combine, ...) so renderers never re-parse text
//   - Snapshots are deep copies; mutating a result never rewrites history
//
// Failure model:
//   - Shape violations (ErrNonSquare, ErrDimensionMismatch,
//     ErrNotColumnVector, ErrNilMatrix) fail before any step is
//     recorded — no partial logs.
//   - Algorithmic non-results (singular inverse, zero-determinant
//     Cramer, non-square determinant) are NOT errors: they return a nil
//     result with a complete Log whose terminal note explains why no
//     definitive numeric answer exists.
//
// All entry points are pure and stateless; concurrent calls on
// independent inputs need no coordination.
package gauss
