// Package ratmat provides the exact rational matrix substrate used by
// every step-producing algorithm in ratsteps.
//
// The ratmat package provides:
//
//   - Dense, a row-major matrix of arbitrary-precision rationals
//     (*big.Rat), with safe At/Set accessors that return errors instead
//     of panicking.
//   - The elementary row operations (SwapRows, ScaleRow, AddScaledRow)
//     that Gaussian-elimination engines are built from.
//   - Structure helpers: Augment for [A|B] joins, Block for submatrix
//     extraction, ReplaceColumn for Cramer-style column substitution,
//     plus exact Transpose and Mul.
//   - The compact numeric formatter (FmtNum, FmtRat, FmtMatrix) used to
//     render both final answers and intermediate snapshots.
//
// Entries are always fully reduced with a positive denominator — a
// guarantee inherited from big.Rat and relied upon by callers that
// compare values or render them.
//
// Matrices here are small by design (UI-bounded, roughly 20×20); the
// package favors exactness and a readable trace over throughput.
package ratmat
