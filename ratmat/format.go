// Package ratmat: compact numeric formatting.
//
// Purpose:
//   - Render numbers the way a step viewer wants them: integers without
//     decimal noise, fractions exactly, floats rounded with trailing
//     zeros stripped.
//   - FmtMatrix renders whole snapshots in the same bracketed layout the
//     Dense String dump uses.

package ratmat

import (
	"math"
	"math/big"
	"strconv"
	"strings"
)

// DefaultPrecision is the number of decimal places used by callers that
// have no better idea (mirrors the step engines' default).
const DefaultPrecision = 2

// emptyMatrix is the token FmtMatrix renders for a nil matrix.
const emptyMatrix = "[]"

// FmtNum renders x rounded to `decimals` places in compact form: if the
// rounded value is within 10^-decimals of its nearest integer it is
// rendered as a bare integer; otherwise trailing zeros and a trailing
// decimal point are stripped. Negative decimals are treated as zero.
// Complexity: O(decimals).
func FmtNum(x float64, decimals int) string {
	if decimals < 0 {
		decimals = 0
	}
	if math.IsNaN(x) || math.IsInf(x, 0) {
		return strconv.FormatFloat(x, 'g', -1, 64)
	}
	pow := math.Pow(10, float64(decimals))
	v := math.Round(x*pow) / pow
	nearest := math.Round(v)
	if math.Abs(v-nearest) < math.Pow(10, -float64(decimals)) {
		s := strconv.FormatFloat(nearest, 'f', 0, 64)
		if s == "-0" {
			s = "0"
		}

		return s
	}
	s := strconv.FormatFloat(v, 'f', decimals, 64)
	s = strings.TrimRight(s, "0")
	s = strings.TrimRight(s, ".")

	return s
}

// FmtRat renders a rational exactly: "p/q" in lowest terms, or the bare
// integer when the denominator is one. A nil value renders empty.
// Complexity: O(digits).
func FmtRat(r *big.Rat) string {
	if r == nil {
		return ""
	}

	return r.RatString()
}

// FmtMatrix renders a matrix with rounded, compact cells: one bracketed
// row per line, cells joined by ", ", the whole wrapped in brackets. A
// nil matrix renders as the empty-brackets token.
// Complexity: O(r*c).
func FmtMatrix(m *Dense, precision int) string {
	if m == nil {
		return emptyMatrix
	}
	rows := make([]string, m.r)
	cells := make([]string, m.c)
	for i := 0; i < m.r; i++ {
		base := i * m.c
		for j := 0; j < m.c; j++ {
			f, _ := m.data[base+j].Float64()
			cells[j] = FmtNum(f, precision)
		}
		rows[i] = "[" + strings.Join(cells, ", ") + "]"
	}

	return "[" + strings.Join(rows, "\n ") + "]"
}
