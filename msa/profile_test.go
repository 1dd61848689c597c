package msa_test

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/strucbio/bioutil/msa"
)

func TestProfileRoundTrip(t *testing.T) {
	m := alignment(t, "AC-E", "ACDE")
	p := msa.NewProfile(m)
	require.Equal(t, []string{"a", "b"}, p.Labels)
	require.Len(t, p.Entropy, 4)
	require.Equal(t, []float64{1, 1, 0.5, 1}, p.Occupancy)

	var buf bytes.Buffer
	require.NoError(t, msa.WriteProfile(&buf, p))

	got, err := msa.ReadProfile(&buf)
	require.NoError(t, err)
	require.Equal(t, p, got)
}

func TestReadProfileError(t *testing.T) {
	_, err := msa.ReadProfile(bytes.NewReader([]byte{0xc1}))
	require.Error(t, err)
}
