package gauss_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/aluzardo/ratsteps/gauss"
)

func TestWithPrecision_PanicsOnNegative(t *testing.T) {
	require.PanicsWithValue(t,
		"gauss: WithPrecision requires decimals >= 0",
		func() { gauss.WithPrecision(-1) })
}

func TestWithPrecision_ZeroIsValid(t *testing.T) {
	a := mustFromInts(t, [][]int64{{1}})
	b := mustFromInts(t, [][]int64{{2}})

	_, log, err := gauss.Add(a, b, gauss.WithPrecision(0))
	require.NoError(t, err)
	require.Equal(t, "C[1,1] = 1 + 2 = 3", log[1].Description)
}

func TestDefaultPrecision(t *testing.T) {
	require.Equal(t, 2, gauss.DefaultPrecision)
}
