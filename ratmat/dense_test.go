// Package ratmat_test contains unit tests for the exact rational Dense
// matrix: constructors, accessors, row operations and structure helpers.
package ratmat_test

import (
	"math"
	"math/big"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/aluzardo/ratsteps/ratmat"
)

// mustFromInts builds a Dense from integer rows or fails the test.
func mustFromInts(t *testing.T, rows [][]int64) *ratmat.Dense {
	t.Helper()
	m, err := ratmat.FromInts(rows)
	require.NoError(t, err)

	return m
}

// mustAt reads one entry or fails the test.
func mustAt(t *testing.T, m *ratmat.Dense, i, j int) *big.Rat {
	t.Helper()
	v, err := m.At(i, j)
	require.NoError(t, err)

	return v
}

func TestNewDense_DefaultZero(t *testing.T) {
	m, err := ratmat.NewDense(3, 2)
	require.NoError(t, err)
	require.Equal(t, 3, m.Rows())
	require.Equal(t, 2, m.Cols())
	for i := 0; i < 3; i++ {
		for j := 0; j < 2; j++ {
			require.Zero(t, mustAt(t, m, i, j).Sign())
		}
	}
}

func TestNewDense_InvalidDimensions(t *testing.T) {
	for _, tc := range []struct{ r, c int }{{0, 3}, {3, 0}, {-1, 2}, {0, 0}} {
		_, err := ratmat.NewDense(tc.r, tc.c)
		require.ErrorIs(t, err, ratmat.ErrInvalidDimensions)
	}
}

func TestIdentity(t *testing.T) {
	m, err := ratmat.Identity(3)
	require.NoError(t, err)
	require.True(t, m.IsIdentity())
	require.True(t, m.IsSquare())

	_, err = ratmat.Identity(0)
	require.ErrorIs(t, err, ratmat.ErrInvalidDimensions)
}

func TestFromRows_RaggedAndNil(t *testing.T) {
	_, err := ratmat.FromRows([][]*big.Rat{
		{big.NewRat(1, 1), big.NewRat(2, 1)},
		{big.NewRat(3, 1)},
	})
	require.ErrorIs(t, err, ratmat.ErrDimensionMismatch)

	_, err = ratmat.FromRows([][]*big.Rat{{big.NewRat(1, 1), nil}})
	require.ErrorIs(t, err, ratmat.ErrNilEntry)
}

func TestFromFloats_ExactDecimalPromotion(t *testing.T) {
	m, err := ratmat.FromFloats([][]float64{{0.1, 0.5, 2.25}})
	require.NoError(t, err)

	// 0.1 promotes by its decimal spelling, not its binary expansion.
	require.Zero(t, mustAt(t, m, 0, 0).Cmp(big.NewRat(1, 10)))
	require.Zero(t, mustAt(t, m, 0, 1).Cmp(big.NewRat(1, 2)))
	require.Zero(t, mustAt(t, m, 0, 2).Cmp(big.NewRat(9, 4)))
}

func TestFromFloats_NaNInf(t *testing.T) {
	_, err := ratmat.FromFloats([][]float64{{math.NaN()}})
	require.ErrorIs(t, err, ratmat.ErrNaNInf)
	_, err = ratmat.FromFloats([][]float64{{math.Inf(1)}})
	require.ErrorIs(t, err, ratmat.ErrNaNInf)
}

func TestAtSet_Bounds(t *testing.T) {
	m := mustFromInts(t, [][]int64{{1, 2}, {3, 4}})

	_, err := m.At(2, 0)
	require.ErrorIs(t, err, ratmat.ErrOutOfRange)
	_, err = m.At(0, -1)
	require.ErrorIs(t, err, ratmat.ErrOutOfRange)

	err = m.Set(0, 2, big.NewRat(1, 1))
	require.ErrorIs(t, err, ratmat.ErrOutOfRange)
	err = m.Set(0, 0, nil)
	require.ErrorIs(t, err, ratmat.ErrNilEntry)
}

func TestAt_ReturnsCopy(t *testing.T) {
	m := mustFromInts(t, [][]int64{{7}})
	v := mustAt(t, m, 0, 0)
	v.SetInt64(99) // mutate the copy

	require.Zero(t, mustAt(t, m, 0, 0).Cmp(big.NewRat(7, 1)))
}

func TestClone_Independence(t *testing.T) {
	m := mustFromInts(t, [][]int64{{1, 2}, {3, 4}})
	cp := m.Clone()
	require.True(t, m.Equal(cp))

	require.NoError(t, cp.Set(0, 0, big.NewRat(42, 1)))
	require.Zero(t, mustAt(t, m, 0, 0).Cmp(big.NewRat(1, 1)))
	require.False(t, m.Equal(cp))
}

func TestSwapRows(t *testing.T) {
	m := mustFromInts(t, [][]int64{{1, 2}, {3, 4}})
	require.NoError(t, m.SwapRows(0, 1))
	require.True(t, m.Equal(mustFromInts(t, [][]int64{{3, 4}, {1, 2}})))

	require.ErrorIs(t, m.SwapRows(0, 2), ratmat.ErrOutOfRange)
}

func TestScaleRow(t *testing.T) {
	m := mustFromInts(t, [][]int64{{2, 4}, {1, 1}})
	require.NoError(t, m.ScaleRow(0, big.NewRat(1, 2)))
	require.True(t, m.Equal(mustFromInts(t, [][]int64{{1, 2}, {1, 1}})))

	require.ErrorIs(t, m.ScaleRow(5, big.NewRat(1, 1)), ratmat.ErrOutOfRange)
	require.ErrorIs(t, m.ScaleRow(0, nil), ratmat.ErrNilEntry)
}

func TestAddScaledRow(t *testing.T) {
	m := mustFromInts(t, [][]int64{{1, 2}, {3, 4}})
	// R2 <- R2 + (-3)*R1
	require.NoError(t, m.AddScaledRow(1, 0, big.NewRat(-3, 1)))
	require.True(t, m.Equal(mustFromInts(t, [][]int64{{1, 2}, {0, -2}})))

	require.ErrorIs(t, m.AddScaledRow(0, 0, big.NewRat(1, 1)), ratmat.ErrOutOfRange)
	require.ErrorIs(t, m.AddScaledRow(0, 1, nil), ratmat.ErrNilEntry)
}

func TestAugment(t *testing.T) {
	a := mustFromInts(t, [][]int64{{1, 2}, {3, 4}})
	b := mustFromInts(t, [][]int64{{5}, {6}})

	ab, err := ratmat.Augment(a, b)
	require.NoError(t, err)
	require.True(t, ab.Equal(mustFromInts(t, [][]int64{{1, 2, 5}, {3, 4, 6}})))

	_, err = ratmat.Augment(a, mustFromInts(t, [][]int64{{1}}))
	require.ErrorIs(t, err, ratmat.ErrDimensionMismatch)
	_, err = ratmat.Augment(nil, b)
	require.ErrorIs(t, err, ratmat.ErrNilMatrix)
}

func TestBlock(t *testing.T) {
	m := mustFromInts(t, [][]int64{{1, 2, 3}, {4, 5, 6}, {7, 8, 9}})

	blk, err := m.Block(1, 1, 2, 2)
	require.NoError(t, err)
	require.True(t, blk.Equal(mustFromInts(t, [][]int64{{5, 6}, {8, 9}})))

	// The copy is independent of the source.
	require.NoError(t, blk.Set(0, 0, big.NewRat(0, 1)))
	require.Zero(t, mustAt(t, m, 1, 1).Cmp(big.NewRat(5, 1)))

	_, err = m.Block(2, 2, 2, 2)
	require.ErrorIs(t, err, ratmat.ErrOutOfRange)
	_, err = m.Block(0, 0, 0, 1)
	require.ErrorIs(t, err, ratmat.ErrInvalidDimensions)
}

func TestColumnAndReplaceColumn(t *testing.T) {
	m := mustFromInts(t, [][]int64{{1, 2}, {3, 4}})

	col, err := m.Column(1)
	require.NoError(t, err)
	require.True(t, col.Equal(mustFromInts(t, [][]int64{{2}, {4}})))

	b := mustFromInts(t, [][]int64{{9}, {8}})
	require.NoError(t, m.ReplaceColumn(0, b))
	require.True(t, m.Equal(mustFromInts(t, [][]int64{{9, 2}, {8, 4}})))

	require.ErrorIs(t, m.ReplaceColumn(5, b), ratmat.ErrOutOfRange)
	require.ErrorIs(t, m.ReplaceColumn(0, mustFromInts(t, [][]int64{{1}})), ratmat.ErrDimensionMismatch)
}

func TestTranspose(t *testing.T) {
	m := mustFromInts(t, [][]int64{{1, 2, 3}, {4, 5, 6}})
	tr := m.Transpose()
	require.True(t, tr.Equal(mustFromInts(t, [][]int64{{1, 4}, {2, 5}, {3, 6}})))

	// Round trip restores the original.
	require.True(t, tr.Transpose().Equal(m))
}

func TestMul_Exact(t *testing.T) {
	a := mustFromInts(t, [][]int64{{1, 2}, {3, 4}})
	b := mustFromInts(t, [][]int64{{5, 6}, {7, 8}})

	c, err := ratmat.Mul(a, b)
	require.NoError(t, err)
	require.True(t, c.Equal(mustFromInts(t, [][]int64{{19, 22}, {43, 50}})))

	_, err = ratmat.Mul(a, mustFromInts(t, [][]int64{{1, 2}}))
	require.ErrorIs(t, err, ratmat.ErrDimensionMismatch)
}

func TestMul_Fractions(t *testing.T) {
	half, err := ratmat.FromRows([][]*big.Rat{
		{big.NewRat(1, 2), big.NewRat(0, 1)},
		{big.NewRat(0, 1), big.NewRat(1, 3)},
	})
	require.NoError(t, err)
	scale := mustFromInts(t, [][]int64{{2, 0}, {0, 3}})

	c, err := ratmat.Mul(half, scale)
	require.NoError(t, err)
	require.True(t, c.IsIdentity())
}

func TestString_ExactDump(t *testing.T) {
	m, err := ratmat.FromRows([][]*big.Rat{{big.NewRat(1, 2), big.NewRat(3, 1)}})
	require.NoError(t, err)
	require.Equal(t, "[1/2, 3]\n", m.String())
}
