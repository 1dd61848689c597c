package msa_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/strucbio/bioutil/msa"
)

func alignment(t *testing.T, seqs ...string) *msa.MSA {
	t.Helper()
	labels := make([]string, len(seqs))
	for i := range seqs {
		labels[i] = string(rune('a' + i))
	}
	m, err := msa.New(labels, seqs)
	require.NoError(t, err)
	return m
}

func TestShannonEntropy(t *testing.T) {
	ln2 := math.Log(2)

	// Column 0 is conserved, column 1 is evenly split, column 2 mixes case.
	m := alignment(t, "AAa", "ACA")
	h := msa.ShannonEntropy(m)
	require.InDelta(t, 0, h[0], 1e-12)
	require.InDelta(t, ln2, h[1], 1e-12)
	require.InDelta(t, 0, h[2], 1e-12)
}

func TestShannonEntropyGaps(t *testing.T) {
	ln2 := math.Log(2)

	m := alignment(t, "A-", "A-")
	// Gap-only column has zero entropy either way.
	require.InDelta(t, 0, msa.ShannonEntropy(m)[1], 1e-12)
	require.InDelta(t, 0, msa.ShannonEntropy(m, msa.CountGaps())[1], 1e-12)

	m = alignment(t, "A", "-")
	// Omitting gaps leaves a conserved column; counting them splits it.
	require.InDelta(t, 0, msa.ShannonEntropy(m)[0], 1e-12)
	require.InDelta(t, ln2, msa.ShannonEntropy(m, msa.CountGaps())[0], 1e-12)
}

func TestShannonEntropyAmbiguity(t *testing.T) {
	ln2 := math.Log(2)

	// B is allocated half to D and half to N.
	m := alignment(t, "B", "B")
	require.InDelta(t, ln2, msa.ShannonEntropy(m)[0], 1e-12)
	require.InDelta(t, 0, msa.ShannonEntropy(m, msa.NoAmbiguity())[0], 1e-12)

	// X spreads across the twenty standard amino acids.
	m = alignment(t, "X")
	require.InDelta(t, math.Log(20), msa.ShannonEntropy(m)[0], 1e-12)
}
