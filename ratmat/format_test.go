package ratmat_test

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/aluzardo/ratsteps/ratmat"
)

func TestFmtNum(t *testing.T) {
	tests := []struct {
		name     string
		x        float64
		decimals int
		want     string
	}{
		{"integer stays bare", 2.0, 2, "2"},
		{"near integer collapses", 2.0000001, 2, "2"},
		{"negative integer", -3.0, 2, "-3"},
		{"negative zero normalizes", -0.0001, 2, "0"},
		{"half", 1.5, 2, "1.5"},
		{"trailing zeros trimmed", 1.5, 4, "1.5"},
		{"rounded down", 2.345, 2, "2.34"},
		{"rounded half away", 0.125, 2, "0.13"},
		{"third at two decimals", 1.0 / 3.0, 2, "0.33"},
		{"third at four decimals", 1.0 / 3.0, 4, "0.3333"},
		{"zero decimals", 2.6, 0, "3"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			require.Equal(t, tc.want, ratmat.FmtNum(tc.x, tc.decimals))
		})
	}
}

func TestFmtRat(t *testing.T) {
	require.Equal(t, "", ratmat.FmtRat(nil))
	require.Equal(t, "1/2", ratmat.FmtRat(big.NewRat(1, 2)))
	require.Equal(t, "2", ratmat.FmtRat(big.NewRat(4, 2)))
	require.Equal(t, "-3", ratmat.FmtRat(big.NewRat(-3, 1)))
}

func TestFmtMatrix(t *testing.T) {
	require.Equal(t, "[]", ratmat.FmtMatrix(nil, 2))

	m := mustFromInts(t, [][]int64{{1, 2}, {3, 4}})
	require.Equal(t, "[[1, 2]\n [3, 4]]", ratmat.FmtMatrix(m, 2))
}

func TestFmtMatrix_Fractions(t *testing.T) {
	m, err := ratmat.FromRows([][]*big.Rat{
		{big.NewRat(1, 2), big.NewRat(1, 3)},
	})
	require.NoError(t, err)
	require.Equal(t, "[[0.5, 0.33]]", ratmat.FmtMatrix(m, 2))
	require.Equal(t, "[[0.5, 0.3333]]", ratmat.FmtMatrix(m, 4))
}
