package numutil_test

import (
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/strucbio/bioutil/numutil"
)

func TestAtomicMass(t *testing.T) {
	require.Equal(t, 12.0, numutil.AtomicMass("C"))
	require.Equal(t, 1.0, numutil.AtomicMass("H"))
	require.Equal(t, 0.0, numutil.AtomicMass("Xx"))
}

func TestMasses(t *testing.T) {
	require.Equal(t, []float64{14, 12, 0, 16}, numutil.Masses([]string{"N", "C", "Fe", "O"}))
	require.Empty(t, numutil.Masses(nil))
}
