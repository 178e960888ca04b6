// Package parse: text → matrix conversion.
//
// Purpose:
//   - Turn user-typed matrix text into ratmat.Dense values with exact
//     rational entries.
//   - Keep the two-stage contract of the step viewer: try the bracketed
//     literal reading first, fall back to free-form rows, and surface
//     every failure as a ParseError sentinel.
//
// Determinism:
//   - Pure functions; fixed scan order; no global state.

package parse

import (
	"fmt"
	"math/big"
	"regexp"
	"strconv"
	"strings"

	"github.com/aluzardo/ratsteps/ratmat"
)

// Row and cell separators for the free-form syntax.
var (
	rowSep  = regexp.MustCompile(`[;\n]+`)
	cellSep = regexp.MustCompile(`[\s,]+`)
)

// ParseMatrix converts text into a matrix.
//
// A bracketed literal ("[[1,2],[3,4]]", semicolons equivalent to commas)
// is tried first and must be exactly two-dimensional; anything else is
// read as free-form rows ("1 2; 3 4"). Both readings of the same matrix
// yield identical results.
//
// Errors: ErrEmptyInput, ErrBadNumber, ErrRaggedRows, ErrNotTwoDim.
// Complexity: O(len(text)).
func ParseMatrix(text string) (*ratmat.Dense, error) {
	s := strings.TrimSpace(text)
	if s == "" {
		return nil, ErrEmptyInput
	}
	if rows, ok := literalRows(strings.ReplaceAll(s, ";", ",")); ok {
		return buildMatrix(rows)
	}
	rows, err := freeformRows(s)
	if err != nil {
		return nil, err
	}

	return buildMatrix(rows)
}

// ParseVectors converts text into a matrix of column vectors: each input
// row (or 1-D literal) is one vector, and vectors become columns of the
// result. All vectors must share the same dimension.
//
// Errors: ErrEmptyInput, ErrBadNumber, ErrRaggedRows, ErrNotTwoDim.
// Complexity: O(len(text)).
func ParseVectors(text string) (*ratmat.Dense, error) {
	s := strings.TrimSpace(text)
	if s == "" {
		return nil, ErrEmptyInput
	}
	if vecs, ok := literalVectors(strings.ReplaceAll(s, ";", ",")); ok {
		return buildTransposed(vecs)
	}
	vecs, err := freeformRows(s)
	if err != nil {
		return nil, err
	}

	return buildTransposed(vecs)
}

// ---------- free-form reading ----------

// freeformRows splits text into rows on [;\n]+ and cells on [\s,]+,
// returning the raw numeric tokens per row.
func freeformRows(s string) ([][]string, error) {
	var rows [][]string
	for _, part := range rowSep.Split(s, -1) {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		var row []string
		for _, tok := range cellSep.Split(part, -1) {
			if tok == "" {
				continue
			}
			row = append(row, tok)
		}
		if len(row) > 0 {
			rows = append(rows, row)
		}
	}
	if len(rows) == 0 {
		return nil, ErrNotTwoDim
	}

	return rows, nil
}

// ---------- token → rational promotion ----------

// ratFromToken promotes one numeric token to an exact rational. The
// decimal text feeds Rat.SetString directly, so "0.1" is exactly 1/10;
// strconv pre-validates so malformed tokens fail as ErrBadNumber.
func ratFromToken(tok string) (*big.Rat, error) {
	f, err := strconv.ParseFloat(tok, 64)
	if err != nil {
		return nil, fmt.Errorf("%w: %q", ErrBadNumber, tok)
	}
	if r, ok := new(big.Rat).SetString(tok); ok {
		return r, nil
	}
	// Exotic but valid float spellings (hex floats, underscores) are not
	// Rat syntax; promote the parsed value instead.
	r, err := ratmat.RatFromFloat(f)
	if err != nil {
		return nil, fmt.Errorf("%w: %q", ErrBadNumber, tok)
	}

	return r, nil
}

// buildMatrix materializes token rows into a Dense, validating
// rectangularity.
func buildMatrix(rows [][]string) (*ratmat.Dense, error) {
	if len(rows) == 0 || len(rows[0]) == 0 {
		return nil, ErrNotTwoDim
	}
	cols := len(rows[0])
	m, err := ratmat.NewDense(len(rows), cols)
	if err != nil {
		return nil, ErrNotTwoDim
	}
	for i, row := range rows {
		if len(row) != cols {
			return nil, fmt.Errorf("%w: row %d has %d values, want %d", ErrRaggedRows, i+1, len(row), cols)
		}
		for j, tok := range row {
			v, err := ratFromToken(tok)
			if err != nil {
				return nil, err
			}
			if err = m.Set(i, j, v); err != nil {
				return nil, err
			}
		}
	}

	return m, nil
}

// buildTransposed materializes token vectors (one per input row) into a
// Dense whose columns are the vectors.
func buildTransposed(vecs [][]string) (*ratmat.Dense, error) {
	if len(vecs) == 0 || len(vecs[0]) == 0 {
		return nil, ErrNotTwoDim
	}
	dim := len(vecs[0])
	m, err := ratmat.NewDense(dim, len(vecs))
	if err != nil {
		return nil, ErrNotTwoDim
	}
	for j, vec := range vecs {
		if len(vec) != dim {
			return nil, fmt.Errorf("%w: vector %d has %d values, want %d", ErrRaggedRows, j+1, len(vec), dim)
		}
		for i, tok := range vec {
			v, err := ratFromToken(tok)
			if err != nil {
				return nil, err
			}
			if err = m.Set(i, j, v); err != nil {
				return nil, err
			}
		}
	}

	return m, nil
}

// ---------- bracketed-literal reading ----------

// litNode is one node of a bracketed literal: either a numeric leaf
// (token) or a list of child nodes.
type litNode struct {
	token  string
	list   []litNode
	isList bool
}

// literalRows reads a bracketed literal and returns its token rows when
// the structure is exactly 2-D and rectangular. ok=false means "not a
// usable literal" — the caller falls back to the free-form reading, the
// same recovery order the step viewer has always used.
func literalRows(s string) ([][]string, bool) {
	root, ok := scanLiteral(s)
	if !ok {
		return nil, false
	}

	return rowsFrom2D(root)
}

// literalVectors is literalRows plus acceptance of a 1-D literal, read
// as a single vector.
func literalVectors(s string) ([][]string, bool) {
	root, ok := scanLiteral(s)
	if !ok {
		return nil, false
	}
	if rows, ok2 := rowsFrom2D(root); ok2 {
		return rows, true
	}
	// 1-D literal: a flat list of numbers is one vector.
	if root.isList && len(root.list) > 0 {
		row := make([]string, len(root.list))
		for i, ch := range root.list {
			if ch.isList {
				return nil, false
			}
			row[i] = ch.token
		}

		return [][]string{row}, true
	}

	return nil, false
}

// rowsFrom2D extracts rectangular token rows from a strictly 2-D node.
func rowsFrom2D(root litNode) ([][]string, bool) {
	if !root.isList || len(root.list) == 0 {
		return nil, false
	}
	rows := make([][]string, len(root.list))
	width := -1
	for i, rowNode := range root.list {
		if !rowNode.isList || len(rowNode.list) == 0 {
			return nil, false
		}
		if width < 0 {
			width = len(rowNode.list)
		} else if len(rowNode.list) != width {
			return nil, false
		}
		row := make([]string, len(rowNode.list))
		for j, cell := range rowNode.list {
			if cell.isList {
				return nil, false // deeper than 2-D
			}
			row[j] = cell.token
		}
		rows[i] = row
	}

	return rows, true
}

// scanLiteral tokenizes and parses exactly one bracketed value spanning
// the whole input. Numeric tokens are validated here so a malformed
// literal falls back to the free-form reading instead of half-parsing.
func scanLiteral(s string) (litNode, bool) {
	toks, ok := lexLiteral(s)
	if !ok {
		return litNode{}, false
	}
	pos := 0
	root, ok := parseValue(toks, &pos)
	if !ok || pos != len(toks) {
		return litNode{}, false
	}

	return root, true
}

// lexLiteral splits a literal into "[", "]", "," and number tokens.
func lexLiteral(s string) ([]string, bool) {
	var toks []string
	i := 0
	for i < len(s) {
		ch := s[i]
		switch {
		case ch == ' ' || ch == '\t' || ch == '\n' || ch == '\r':
			i++
		case ch == '[' || ch == ']' || ch == ',':
			toks = append(toks, string(ch))
			i++
		default:
			j := i
			for j < len(s) && !strings.ContainsRune("[], \t\n\r", rune(s[j])) {
				j++
			}
			tok := s[i:j]
			if _, err := strconv.ParseFloat(tok, 64); err != nil {
				return nil, false
			}
			toks = append(toks, tok)
			i = j
		}
	}

	return toks, len(toks) > 0
}

// parseValue parses one value (number or bracketed list) at *pos.
func parseValue(toks []string, pos *int) (litNode, bool) {
	if *pos >= len(toks) {
		return litNode{}, false
	}
	tok := toks[*pos]
	switch tok {
	case "[":
		*pos++
		node := litNode{isList: true}
		for {
			if *pos >= len(toks) {
				return litNode{}, false
			}
			if toks[*pos] == "]" {
				*pos++

				return node, len(node.list) > 0 // reject empty lists
			}
			if len(node.list) > 0 {
				if toks[*pos] != "," {
					return litNode{}, false
				}
				*pos++
			}
			child, ok := parseValue(toks, pos)
			if !ok {
				return litNode{}, false
			}
			node.list = append(node.list, child)
		}
	case "]", ",":
		return litNode{}, false
	default:
		*pos++

		return litNode{token: tok}, true
	}
}
