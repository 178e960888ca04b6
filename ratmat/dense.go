// Package ratmat - Dense storage (row-major) & safe accessors.
//
// Purpose:
//   - Provide a row-major buffer of *big.Rat with the explicit index
//     formula i*cols + j.
//   - Guarantee safety at the public surface: At/Set and the row
//     operations return errors instead of panicking.
//   - Keep algorithmic determinism (fixed loop orders, no map iteration).
//   - Guarantee value semantics at the boundary: At returns a copy, Set
//     stores a copy, Clone reallocates every entry. Engines rely on this
//     to keep recorded snapshots immutable.
//
// Complexity quicksheet:
//   - NewDense/Identity: O(r*c); At/Set: O(1); Clone/Equal: O(r*c);
//     row operations: O(cols); Augment/Block/Transpose: O(r*c);
//     Mul: O(r*n*c).

package ratmat

import (
	"fmt"
	"math"
	"math/big"
	"strconv"
	"strings"
)

// ---------- error context tags ----------

const (
	ctxAt        = "At"
	ctxSet       = "Set"
	ctxSwap      = "SwapRows"
	ctxScale     = "ScaleRow"
	ctxAddScaled = "AddScaledRow"
	ctxBlock     = "Block"
	ctxColumn    = "Column"
	ctxReplace   = "ReplaceColumn"
)

// denseErrorf wraps an error with a uniform Dense context and callsite
// indices, preserving the sentinel via %w.
func denseErrorf(method string, row, col int, err error) error {
	return fmt.Errorf("Dense.%s(%d,%d): %w", method, row, col, err)
}

// Dense is a concrete row-major matrix of exact rationals.
//   - r,c hold dimensions (rows, cols), both >= 1.
//   - data is a flat buffer of length r*c in row-major order
//     (offset = i*c + j); entries are never nil.
type Dense struct {
	r, c int        // row and column counts (>=1)
	data []*big.Rat // contiguous row-major storage (len == r*c, entries non-nil)
}

// Compile-time assertion for fmt.Stringer conformance.
var _ fmt.Stringer = (*Dense)(nil)

// NewDense creates an r×c zero matrix using row-major storage.
// Returns ErrInvalidDimensions when rows <= 0 or cols <= 0.
// Complexity: O(r*c) time and memory.
func NewDense(rows, cols int) (*Dense, error) {
	if rows <= 0 || cols <= 0 {
		return nil, ErrInvalidDimensions
	}
	data := make([]*big.Rat, rows*cols)
	for i := range data {
		data[i] = new(big.Rat) // zero value, already in lowest terms
	}

	return &Dense{r: rows, c: cols, data: data}, nil
}

// Identity creates the n×n identity matrix.
// Returns ErrInvalidDimensions when n <= 0.
// Complexity: O(n²).
func Identity(n int) (*Dense, error) {
	m, err := NewDense(n, n)
	if err != nil {
		return nil, err
	}
	for i := 0; i < n; i++ {
		m.data[i*n+i].SetInt64(1)
	}

	return m, nil
}

// FromRows builds a Dense from a slice of rational rows, deep-copying
// every entry so the caller's values stay independent.
// Errors: ErrInvalidDimensions (no rows / no cols), ErrDimensionMismatch
// (ragged rows), ErrNilEntry (nil *big.Rat cell).
// Complexity: O(r*c).
func FromRows(rows [][]*big.Rat) (*Dense, error) {
	if len(rows) == 0 || len(rows[0]) == 0 {
		return nil, ErrInvalidDimensions
	}
	cols := len(rows[0])
	m, err := NewDense(len(rows), cols)
	if err != nil {
		return nil, err
	}
	for i, row := range rows {
		if len(row) != cols {
			return nil, fmt.Errorf("FromRows: row %d: %w", i, ErrDimensionMismatch)
		}
		for j, v := range row {
			if v == nil {
				return nil, fmt.Errorf("FromRows: row %d col %d: %w", i, j, ErrNilEntry)
			}
			m.data[i*cols+j].Set(v)
		}
	}

	return m, nil
}

// FromInts builds a Dense from integer rows. Same shape rules as FromRows.
// Complexity: O(r*c).
func FromInts(rows [][]int64) (*Dense, error) {
	if len(rows) == 0 || len(rows[0]) == 0 {
		return nil, ErrInvalidDimensions
	}
	cols := len(rows[0])
	m, err := NewDense(len(rows), cols)
	if err != nil {
		return nil, err
	}
	for i, row := range rows {
		if len(row) != cols {
			return nil, fmt.Errorf("FromInts: row %d: %w", i, ErrDimensionMismatch)
		}
		for j, v := range row {
			m.data[i*cols+j].SetInt64(v)
		}
	}

	return m, nil
}

// FromFloats builds a Dense from float64 rows, promoting each value to an
// exact rational via its shortest exact decimal representation (0.1
// becomes 1/10, not the binary 3602879701896397/36028797018963968).
// Errors: shape errors as in FromRows; ErrNaNInf for non-finite values.
// Complexity: O(r*c).
func FromFloats(rows [][]float64) (*Dense, error) {
	if len(rows) == 0 || len(rows[0]) == 0 {
		return nil, ErrInvalidDimensions
	}
	cols := len(rows[0])
	m, err := NewDense(len(rows), cols)
	if err != nil {
		return nil, err
	}
	for i, row := range rows {
		if len(row) != cols {
			return nil, fmt.Errorf("FromFloats: row %d: %w", i, ErrDimensionMismatch)
		}
		for j, v := range row {
			r, err := RatFromFloat(v)
			if err != nil {
				return nil, fmt.Errorf("FromFloats: row %d col %d: %w", i, j, err)
			}
			m.data[i*cols+j].Set(r)
		}
	}

	return m, nil
}

// RatFromFloat promotes a finite float64 to an exact rational using its
// shortest decimal representation. Returns ErrNaNInf for NaN or ±Inf.
func RatFromFloat(v float64) (*big.Rat, error) {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return nil, ErrNaNInf
	}
	// strconv's shortest round-trip form is a decimal (possibly with an
	// exponent), which Rat.SetString converts exactly.
	if r, ok := new(big.Rat).SetString(strconv.FormatFloat(v, 'g', -1, 64)); ok {
		return r, nil
	}

	// Unreachable for finite inputs; keep a lossless fallback anyway.
	return new(big.Rat).SetFloat64(v), nil
}

// Rows returns the row count. Complexity: O(1).
func (m *Dense) Rows() int { return m.r }

// Cols returns the column count. Complexity: O(1).
func (m *Dense) Cols() int { return m.c }

// Shape packs Rows() and Cols() into a single call. Complexity: O(1).
func (m *Dense) Shape() (rows, cols int) { return m.r, m.c }

// IsSquare reports whether the matrix is square. Complexity: O(1).
func (m *Dense) IsSquare() bool { return m.r == m.c }

// indexOf computes the row-major offset or returns ErrOutOfRange.
// Kept unexported so panics cannot reach the public surface.
func (m *Dense) indexOf(row, col int) (int, error) {
	if row < 0 || row >= m.r {
		return 0, ErrOutOfRange
	}
	if col < 0 || col >= m.c {
		return 0, ErrOutOfRange
	}

	return row*m.c + col, nil
}

// At returns a copy of the value at (row, col) or ErrOutOfRange.
// The copy keeps callers from aliasing internal storage.
// Complexity: O(1).
func (m *Dense) At(row, col int) (*big.Rat, error) {
	off, err := m.indexOf(row, col)
	if err != nil {
		return nil, denseErrorf(ctxAt, row, col, err)
	}

	return new(big.Rat).Set(m.data[off]), nil
}

// Set stores a copy of v at (row, col).
// Errors: ErrOutOfRange for bounds, ErrNilEntry for nil v.
// Complexity: O(1).
func (m *Dense) Set(row, col int, v *big.Rat) error {
	off, err := m.indexOf(row, col)
	if err != nil {
		return denseErrorf(ctxSet, row, col, err)
	}
	if v == nil {
		return denseErrorf(ctxSet, row, col, ErrNilEntry)
	}
	m.data[off].Set(v)

	return nil
}

// Sign reports the sign (-1, 0, +1) of the entry at (row, col) without
// copying it. Complexity: O(1).
func (m *Dense) Sign(row, col int) (int, error) {
	off, err := m.indexOf(row, col)
	if err != nil {
		return 0, denseErrorf(ctxAt, row, col, err)
	}

	return m.data[off].Sign(), nil
}

// Clone returns a deep copy: new buffer, every entry reallocated.
// Mutations of the clone never affect the original — the property the
// step recorder depends on. Complexity: O(r*c).
func (m *Dense) Clone() *Dense {
	cp := make([]*big.Rat, len(m.data))
	for i, v := range m.data {
		cp[i] = new(big.Rat).Set(v)
	}

	return &Dense{r: m.r, c: m.c, data: cp}
}

// Equal reports exact entrywise equality (same shape, same rationals).
// Complexity: O(r*c).
func (m *Dense) Equal(o *Dense) bool {
	if o == nil || m.r != o.r || m.c != o.c {
		return false
	}
	for i, v := range m.data {
		if v.Cmp(o.data[i]) != 0 {
			return false
		}
	}

	return true
}

// IsIdentity reports whether m is exactly the identity matrix.
// Complexity: O(r*c).
func (m *Dense) IsIdentity() bool {
	if m.r != m.c {
		return false
	}
	var want int64
	for i := 0; i < m.r; i++ {
		for j := 0; j < m.c; j++ {
			want = 0
			if i == j {
				want = 1
			}
			if m.data[i*m.c+j].Cmp(big.NewRat(want, 1)) != 0 {
				return false
			}
		}
	}

	return true
}

// SwapRows exchanges rows i and j in place.
// Complexity: O(cols).
func (m *Dense) SwapRows(i, j int) error {
	if i < 0 || i >= m.r {
		return denseErrorf(ctxSwap, i, j, ErrOutOfRange)
	}
	if j < 0 || j >= m.r {
		return denseErrorf(ctxSwap, i, j, ErrOutOfRange)
	}
	if i == j {
		return nil
	}
	bi, bj := i*m.c, j*m.c
	for k := 0; k < m.c; k++ {
		m.data[bi+k], m.data[bj+k] = m.data[bj+k], m.data[bi+k]
	}

	return nil
}

// ScaleRow multiplies every entry of row i by factor, in place.
// Errors: ErrOutOfRange, ErrNilEntry.
// Complexity: O(cols).
func (m *Dense) ScaleRow(i int, factor *big.Rat) error {
	if i < 0 || i >= m.r {
		return denseErrorf(ctxScale, i, 0, ErrOutOfRange)
	}
	if factor == nil {
		return denseErrorf(ctxScale, i, 0, ErrNilEntry)
	}
	base := i * m.c
	for k := 0; k < m.c; k++ {
		m.data[base+k].Mul(m.data[base+k], factor)
	}

	return nil
}

// AddScaledRow performs row_dst += factor * row_src, in place.
// dst == src is rejected as out of contract (the result would double the
// row mid-iteration). Errors: ErrOutOfRange, ErrNilEntry.
// Complexity: O(cols).
func (m *Dense) AddScaledRow(dst, src int, factor *big.Rat) error {
	if dst < 0 || dst >= m.r || src < 0 || src >= m.r || dst == src {
		return denseErrorf(ctxAddScaled, dst, src, ErrOutOfRange)
	}
	if factor == nil {
		return denseErrorf(ctxAddScaled, dst, src, ErrNilEntry)
	}
	bd, bs := dst*m.c, src*m.c
	t := new(big.Rat)
	for k := 0; k < m.c; k++ {
		t.Mul(m.data[bs+k], factor)
		m.data[bd+k].Add(m.data[bd+k], t)
	}

	return nil
}

// Augment joins two matrices horizontally into [A|B].
// Errors: ErrNilMatrix, ErrDimensionMismatch (row counts differ).
// Complexity: O(r*(ca+cb)).
func Augment(a, b *Dense) (*Dense, error) {
	if a == nil || b == nil {
		return nil, fmt.Errorf("Augment: %w", ErrNilMatrix)
	}
	if a.r != b.r {
		return nil, fmt.Errorf("Augment: %w", ErrDimensionMismatch)
	}
	out, err := NewDense(a.r, a.c+b.c)
	if err != nil {
		return nil, err
	}
	for i := 0; i < a.r; i++ {
		for j := 0; j < a.c; j++ {
			out.data[i*out.c+j].Set(a.data[i*a.c+j])
		}
		for j := 0; j < b.c; j++ {
			out.data[i*out.c+a.c+j].Set(b.data[i*b.c+j])
		}
	}

	return out, nil
}

// Block extracts a copy of the rows×cols submatrix whose top-left corner
// is (r0, c0). The copy is independent of the receiver.
// Errors: ErrInvalidDimensions (empty window), ErrOutOfRange (window
// escapes the matrix). Complexity: O(rows*cols).
func (m *Dense) Block(r0, c0, rows, cols int) (*Dense, error) {
	if rows <= 0 || cols <= 0 {
		return nil, fmt.Errorf("Dense.%s(%d,%d): %w", ctxBlock, rows, cols, ErrInvalidDimensions)
	}
	if r0 < 0 || c0 < 0 || r0+rows > m.r || c0+cols > m.c {
		return nil, fmt.Errorf("Dense.%s(%d,%d): %w", ctxBlock, r0, c0, ErrOutOfRange)
	}
	out, err := NewDense(rows, cols)
	if err != nil {
		return nil, err
	}
	for i := 0; i < rows; i++ {
		for j := 0; j < cols; j++ {
			out.data[i*cols+j].Set(m.data[(r0+i)*m.c+(c0+j)])
		}
	}

	return out, nil
}

// Column returns a copy of column j as an r×1 matrix.
// Complexity: O(rows).
func (m *Dense) Column(j int) (*Dense, error) {
	if j < 0 || j >= m.c {
		return nil, denseErrorf(ctxColumn, 0, j, ErrOutOfRange)
	}

	return m.Block(0, j, m.r, 1)
}

// ReplaceColumn overwrites column j with the entries of the r×1 matrix
// col, in place. Used by Cramer-style column substitution.
// Errors: ErrOutOfRange (bad j), ErrNilMatrix, ErrDimensionMismatch.
// Complexity: O(rows).
func (m *Dense) ReplaceColumn(j int, col *Dense) error {
	if j < 0 || j >= m.c {
		return denseErrorf(ctxReplace, 0, j, ErrOutOfRange)
	}
	if col == nil {
		return fmt.Errorf("Dense.%s(%d): %w", ctxReplace, j, ErrNilMatrix)
	}
	if col.r != m.r || col.c != 1 {
		return fmt.Errorf("Dense.%s(%d): %w", ctxReplace, j, ErrDimensionMismatch)
	}
	for i := 0; i < m.r; i++ {
		m.data[i*m.c+j].Set(col.data[i])
	}

	return nil
}

// Transpose returns a new matrix with rows and columns swapped (mᵀ).
// The receiver is never mutated. Complexity: O(r*c).
func (m *Dense) Transpose() *Dense {
	out := &Dense{r: m.c, c: m.r, data: make([]*big.Rat, len(m.data))}
	for i := 0; i < m.r; i++ {
		base := i * m.c
		for j := 0; j < m.c; j++ {
			out.data[j*m.r+i] = new(big.Rat).Set(m.data[base+j])
		}
	}

	return out
}

// Mul performs exact matrix multiplication C = A × B.
// Fixed i→k→j loop order over the flat buffers; operands are not
// mutated. Errors: ErrNilMatrix, ErrDimensionMismatch (inner mismatch).
// Complexity: O(r*n*c).
func Mul(a, b *Dense) (*Dense, error) {
	if err := ValidateMulCompatible(a, b); err != nil {
		return nil, fmt.Errorf("Mul: %w", err)
	}
	out, err := NewDense(a.r, b.c)
	if err != nil {
		return nil, err
	}
	t := new(big.Rat)
	for i := 0; i < a.r; i++ {
		for k := 0; k < a.c; k++ {
			av := a.data[i*a.c+k]
			if av.Sign() == 0 {
				continue // zero term contributes nothing
			}
			for j := 0; j < b.c; j++ {
				t.Mul(av, b.data[k*b.c+j])
				cell := out.data[i*out.c+j]
				cell.Add(cell, t)
			}
		}
	}

	return out, nil
}

// String provides a readable row-wise dump with exact entries, one
// bracketed row per line. Intended for debugging, not hot paths.
// Complexity: O(r*c).
func (m *Dense) String() string {
	var b strings.Builder
	for i := 0; i < m.r; i++ {
		b.WriteString("[")
		base := i * m.c
		for j := 0; j < m.c; j++ {
			b.WriteString(m.data[base+j].RatString())
			if j+1 < m.c {
				b.WriteString(", ")
			}
		}
		b.WriteString("]\n")
	}

	return b.String()
}
