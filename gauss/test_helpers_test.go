package gauss_test

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/aluzardo/ratsteps/gauss"
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

// kinds extracts the OpKind sequence of a log for order assertions.
func kinds(log gauss.Log) []gauss.OpKind {
	out := make([]gauss.OpKind, len(log))
	for i, s := range log {
		out[i] = s.Op.Kind
	}

	return out
}

// requireRat asserts an exact rational value.
func requireRat(t *testing.T, want *big.Rat, got *big.Rat) {
	t.Helper()
	require.NotNil(t, got)
	require.Zero(t, want.Cmp(got), "want %s, got %s", want.RatString(), got.RatString())
}
