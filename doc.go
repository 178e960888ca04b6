// Package ratsteps is an educational, exact-arithmetic linear-algebra
// engine: every classical operation returns not just its result but an
// ordered trace of every intermediate matrix state, so a viewer can step
// forward and backward through each elementary row operation.
//
// 🚀 What is ratsteps?
//
//	A pure-Go library built on arbitrary-precision rational arithmetic
//	(math/big.Rat) that brings together:
//		• Exact matrices: rational entries, always in lowest terms
//		• Row reduction: RREF and upper triangularization, step by step
//		• Determinants: triangularization with row-swap sign tracking
//		• Inversion: augmented [A|I] reduction to [I|A⁻¹]
//		• Cramer's rule: n+1 exact determinants per solve
//		• Elementwise arithmetic: add, subtract, multiply with a
//		  per-cell trace of the scalar computation
//		• Parsing & formatting: free-form text in, compact numbers out
//
// ✨ Why choose ratsteps?
//
//   - Numerically exact – no floating-point drift across eliminations
//   - Fully traced – each step records one elementary change and a
//     value-copied snapshot; earlier steps never mutate retroactively
//   - Pure Go – no cgo, no hidden deps, safe for concurrent callers
//
// Everything is organized under three subpackages:
//
//	ratmat/ — the rational Dense matrix, validators and formatter
//	parse/  — free-form and bracketed text → matrix conversion
//	gauss/  — the step-producing elimination and arithmetic engines
//
// See the examples in each package for usage patterns.
package ratsteps
