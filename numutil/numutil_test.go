package numutil_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/strucbio/bioutil/numutil"
	"gonum.org/v1/gonum/mat"
)

func TestDiv0(t *testing.T) {
	require.Equal(t, 2.0, numutil.Div0(4, 2))
	require.Equal(t, 0.0, numutil.Div0(1, 0))
	require.Equal(t, 0.0, numutil.Div0(0, 0))
	require.Equal(t, 0.0, numutil.Div0(-1, 0))
}

func TestWMean(t *testing.T) {
	avg, err := numutil.WMean([]float64{1, 2, 3}, []float64{1, 1, 2})
	require.NoError(t, err)
	require.InDelta(t, 2.25, avg, 1e-12)

	avg, err = numutil.WMean([]float64{1, 2}, []float64{0, 0})
	require.NoError(t, err)
	require.Equal(t, 0.0, avg)

	_, err = numutil.WMean([]float64{1}, []float64{1, 2})
	require.ErrorIs(t, err, numutil.ErrLengthMismatch)
}

func TestBin2Dec(t *testing.T) {
	require.EqualValues(t, 0, numutil.Bin2Dec(nil))
	require.EqualValues(t, 1, numutil.Bin2Dec([]bool{true}))
	require.EqualValues(t, 6, numutil.Bin2Dec([]bool{false, true, true}))
	require.EqualValues(t, 5, numutil.Bin2Dec([]bool{true, false, true}))
}

func TestDist(t *testing.T) {
	d, err := numutil.Dist([]float64{0, 0, 0}, []float64{3, 4, 0})
	require.NoError(t, err)
	require.InDelta(t, 5, d, 1e-12)

	_, err = numutil.Dist([]float64{0}, []float64{1, 2})
	require.ErrorIs(t, err, numutil.ErrLengthMismatch)
}

func TestDistUnitcell(t *testing.T) {
	// 9 apart in a cell of 10 is 1 apart under minimum image.
	d, err := numutil.DistUnitcell([]float64{0.5}, []float64{9.5}, []float64{10})
	require.NoError(t, err)
	require.InDelta(t, 1, d, 1e-12)

	_, err = numutil.DistUnitcell([]float64{0}, []float64{1}, []float64{10, 10})
	require.ErrorIs(t, err, numutil.ErrLengthMismatch)
}

func TestSqrtm(t *testing.T) {
	a := mat.NewDense(2, 2, []float64{4, 0, 0, 9})
	root, err := numutil.Sqrtm(a)
	require.NoError(t, err)

	var sq mat.Dense
	sq.Mul(root, root)
	for i := 0; i < 2; i++ {
		for j := 0; j < 2; j++ {
			require.InDelta(t, a.At(i, j), sq.At(i, j), 1e-9)
		}
	}
}

func TestAddEnds(t *testing.T) {
	xs, ys, err := numutil.AddEnds(
		[]float64{1, 2, 3, 7, 8},
		[]float64{10, 20, 30, 70, 80},
	)
	require.NoError(t, err)
	require.Equal(t, []float64{1, 2, 3, 4, 7, 8}, xs)

	require.Len(t, ys, 6)
	require.True(t, math.IsNaN(ys[3]))
	require.Equal(t, []float64{10, 20, 30}, ys[:3])
	require.Equal(t, []float64{70, 80}, ys[4:])

	_, _, err = numutil.AddEnds([]float64{1}, []float64{1})
	require.ErrorIs(t, err, numutil.ErrTooShort)

	_, _, err = numutil.AddEnds([]float64{1, 2}, []float64{1})
	require.ErrorIs(t, err, numutil.ErrLengthMismatch)
}

func TestInterpY(t *testing.T) {
	xs, ys := numutil.InterpY([]float64{0, 0, 10, 10})
	require.Equal(t, len(xs), len(ys))
	// The jump from 0 to 10 gets intermediate samples.
	require.Greater(t, len(xs), 4)
	for i := 1; i < len(ys); i++ {
		require.LessOrEqual(t, math.Abs(ys[i]-ys[i-1]), 10.0/4+1e-9)
	}

	xs, ys = numutil.InterpY(nil)
	require.Nil(t, xs)
	require.Nil(t, ys)
}
