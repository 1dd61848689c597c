package msa

import (
	"math"
	"sort"

	"gonum.org/v1/gonum/mat"
)

type rankOptions struct {
	zscore       bool
	ascending    bool
	skipDiagonal bool
	threshold    float64
}

// RankOption configures RankOrder.
type RankOption func(*rankOptions)

// Zscore normalizes each column to zero mean and unit standard deviation
// before ranking; the returned values are then z-scores.
func Zscore() RankOption {
	return func(o *rankOptions) {
		o.zscore = true
	}
}

// Ascending ranks lowest values first instead of highest.
func Ascending() RankOption {
	return func(o *rankOptions) {
		o.ascending = true
	}
}

// SkipDiagonal excludes diagonal elements when ranking a symmetric matrix.
func SkipDiagonal() RankOption {
	return func(o *rankOptions) {
		o.skipDiagonal = true
	}
}

// SymmetryThreshold sets the maximum absolute difference between a matrix
// and its transpose for the matrix to count as symmetric. Default 1e-4.
func SymmetryThreshold(t float64) RankOption {
	return func(o *rankOptions) {
		o.threshold = t
	}
}

// RankOrder returns the element indices of a and the corresponding values
// sorted by value, descending by default. For a symmetric matrix only the
// lower triangle is ranked, with diagonal elements unless SkipDiagonal is
// given.
func RankOrder(a mat.Matrix, opts ...RankOption) (rows, cols []int, values []float64) {
	o := rankOptions{threshold: 1e-4}
	for _, opt := range opts {
		opt(&o)
	}

	r, c := a.Dims()
	if r == 0 || c == 0 {
		return nil, nil, nil
	}

	symm := false
	if r == c {
		symm = true
		for i := 0; i < r && symm; i++ {
			for j := i + 1; j < c; j++ {
				if math.Abs(a.At(i, j)-a.At(j, i)) >= o.threshold {
					symm = false
					break
				}
			}
		}
	}

	work := mat.DenseCopyOf(a)
	if o.zscore {
		zscoreColumns(work)
	}

	for i := 0; i < r; i++ {
		jmax := c
		if symm {
			jmax = i + 1
			if o.skipDiagonal {
				jmax = i
			}
		}
		for j := 0; j < jmax; j++ {
			rows = append(rows, i)
			cols = append(cols, j)
			values = append(values, work.At(i, j))
		}
	}

	order := make([]int, len(values))
	for i := range order {
		order[i] = i
	}
	sort.SliceStable(order, func(x, y int) bool {
		if o.ascending {
			return values[order[x]] < values[order[y]]
		}
		return values[order[x]] > values[order[y]]
	})

	outRows := make([]int, len(order))
	outCols := make([]int, len(order))
	outValues := make([]float64, len(order))
	for k, idx := range order {
		outRows[k] = rows[idx]
		outCols[k] = cols[idx]
		outValues[k] = values[idx]
	}
	return outRows, outCols, outValues
}

// zscoreColumns normalizes each column of a to zero mean and unit standard
// deviation, in place. Population standard deviation is used.
func zscoreColumns(a *mat.Dense) {
	r, c := a.Dims()
	for j := 0; j < c; j++ {
		var mean float64
		for i := 0; i < r; i++ {
			mean += a.At(i, j)
		}
		mean /= float64(r)

		var variance float64
		for i := 0; i < r; i++ {
			d := a.At(i, j) - mean
			variance += d * d
		}
		std := math.Sqrt(variance / float64(r))

		for i := 0; i < r; i++ {
			a.Set(i, j, (a.At(i, j)-mean)/std)
		}
	}
}
