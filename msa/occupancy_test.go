package msa_test

import (
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/strucbio/bioutil/msa"
)

func TestOccupancy(t *testing.T) {
	m := alignment(t,
		"AC-E",
		"A--E",
	)

	require.Equal(t, []float64{1, 0.5, 0, 1}, msa.Occupancy(m, msa.ByColumn, false))
	require.Equal(t, []float64{2, 1, 0, 2}, msa.Occupancy(m, msa.ByColumn, true))

	require.Equal(t, []float64{0.75, 0.5}, msa.Occupancy(m, msa.ByRow, false))
	require.Equal(t, []float64{3, 2}, msa.Occupancy(m, msa.ByRow, true))
}
