package msa_test

import (
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/strucbio/bioutil/msa"
)

func TestRankedPairs(t *testing.T) {
	pairs := msa.RankedPairs(
		[]int{10, 3},
		[]int{2, 7},
		[]float64{1.5, -0.5},
	)

	require.Equal(t, []msa.RankedPair{
		{Row: 10, Col: 2, Value: 1.5, Zscore: 1.5, Separation: 8},
		{Row: 3, Col: 7, Value: -0.5, Zscore: -0.5, Separation: 4},
	}, pairs)
}

func TestFilterPairs(t *testing.T) {
	pairs := []msa.RankedPair{
		{Row: 10, Col: 2, Value: 2.5, Zscore: 2.5, Separation: 8},
		{Row: 5, Col: 4, Value: 3.0, Zscore: 3.0, Separation: 1},
		{Row: 20, Col: 6, Value: 0.5, Zscore: 0.5, Separation: 14},
	}

	out, err := msa.FilterPairs(pairs, "zscore > 2 AND separation >= 5")
	require.NoError(t, err)
	require.Equal(t, pairs[:1], out)

	out, err = msa.FilterPairs(pairs, "row == 20")
	require.NoError(t, err)
	require.Equal(t, pairs[2:], out)

	out, err = msa.FilterPairs(pairs, "value > 100")
	require.NoError(t, err)
	require.Empty(t, out)

	_, err = msa.FilterPairs(pairs, "AND AND")
	require.Error(t, err)
}
