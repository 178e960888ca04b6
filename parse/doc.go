// Package parse converts free-form textual input into exact rational
// matrices for the ratsteps engines.
//
// Two syntaxes are accepted, tried in order:
//
//  1. A bracketed literal such as "[[1,2],[3,4]]". Semicolons are
//     treated as row separators equivalent to commas before structural
//     parsing, and the structure must be exactly two-dimensional
//     (ParseVectors additionally accepts a one-dimensional literal,
//     which it reads as a single vector).
//  2. Free-form text: rows separated by newlines or semicolons, values
//     within a row by whitespace or commas — "1 2; 3 4" and
//     "[[1,2],[3,4]]" parse to the identical matrix.
//
// Numeric tokens are promoted to exact rationals straight from their
// decimal text, so "0.1" becomes 1/10 with no binary float detour.
//
// All failures surface as the package's ParseError sentinels
// (ErrEmptyInput, ErrBadNumber, ErrRaggedRows, ErrNotTwoDim) — matched
// with errors.Is, never silently coerced.
package parse
