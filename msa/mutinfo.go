package msa

import (
	"errors"
	"math"

	"gonum.org/v1/gonum/mat"
)

var (
	// ErrNotSquare is returned when a matrix argument is not square.
	ErrNotSquare = errors.New("matrix is not square")
	// ErrShapeMismatch is returned when matrix and vector shapes disagree.
	ErrShapeMismatch = errors.New("matrix and entropy shapes do not match")
	// ErrUnknownNorm is returned for an unrecognized normalization.
	ErrUnknownNorm = errors.New("unknown normalization")
	// ErrJointNorm directs joint-entropy normalization to MutinfoMatrix.
	ErrJointNorm = errors.New("joint entropy normalization is applied by MutinfoMatrix with JointNorm")
)

// JointNorm normalizes the mutual information of each column pair by the
// joint entropy of the pair.
func JointNorm() StatOption {
	return func(o *statOptions) {
		o.jointNorm = true
	}
}

// MutinfoMatrix returns the matrix of mutual information between alignment
// column pairs, in nats, computed from joint probabilities. Ambiguous
// amino-acid counts are allocated the same way as in ShannonEntropy, with
// joint counts of a pair of ambiguous amino acids allocated to all potential
// combinations. Gaps count as a distinct symbol.
func MutinfoMatrix(m *MSA, opts ...StatOption) *mat.Dense {
	o := statOptions{}
	for _, opt := range opts {
		opt(&o)
	}

	cols := m.Cols()
	rows := m.Rows()
	mi := mat.NewDense(cols, cols, nil)

	const n = numLetters + 1
	single := make([][]float64, cols)
	for j := 0; j < cols; j++ {
		single[j] = make([]float64, n)
		for i := 0; i < rows; i++ {
			for _, sw := range symbolWeights(m.at(i, j), !o.noAmbiguity) {
				single[j][sw.index] += sw.weight
			}
		}
	}

	joint := make([]float64, n*n)
	total := float64(rows)
	for j := 0; j < cols-1; j++ {
		for k := j + 1; k < cols; k++ {
			for i := range joint {
				joint[i] = 0
			}
			for i := 0; i < rows; i++ {
				for _, a := range symbolWeights(m.at(i, j), !o.noAmbiguity) {
					for _, b := range symbolWeights(m.at(i, k), !o.noAmbiguity) {
						joint[a.index*n+b.index] += a.weight * b.weight
					}
				}
			}

			var info, jointEntropy float64
			for a := 0; a < n; a++ {
				if single[j][a] == 0 {
					continue
				}
				pa := single[j][a] / total
				for b := 0; b < n; b++ {
					pab := joint[a*n+b] / total
					if pab == 0 || single[k][b] == 0 {
						continue
					}
					pb := single[k][b] / total
					info += pab * math.Log(pab/(pa*pb))
					jointEntropy -= pab * math.Log(pab)
				}
			}
			if o.jointNorm {
				if jointEntropy == 0 {
					info = 0
				} else {
					info /= jointEntropy
				}
			}
			mi.Set(j, k, info)
			mi.Set(k, j, info)
		}
	}
	return mi
}

// Norm selects a mutual information normalization for ApplyMutinfoNorm.
type Norm string

const (
	// NormSumEnt divides by H(X) + H(Y).
	NormSumEnt Norm = "sument"
	// NormMinEnt divides by min(H(X), H(Y)).
	NormMinEnt Norm = "minent"
	// NormMaxEnt divides by max(H(X), H(Y)).
	NormMaxEnt Norm = "maxent"
	// NormMinCon divides by min(H(X|Y), H(Y|X)).
	NormMinCon Norm = "mincon"
	// NormMaxCon divides by max(H(X|Y), H(Y|X)).
	NormMaxCon Norm = "maxcon"
	// NormJoint is rejected; use MutinfoMatrix with JointNorm instead.
	NormJoint Norm = "joint"
)

// ApplyMutinfoNorm returns a copy of the mutual information matrix mi with
// the selected normalization applied, where entropy holds the per-column
// entropies. A zero divisor zeroes the entry.
func ApplyMutinfoNorm(mi *mat.Dense, entropy []float64, norm Norm) (*mat.Dense, error) {
	r, c := mi.Dims()
	if r != c {
		return nil, ErrNotSquare
	}
	if len(entropy) != r {
		return nil, ErrShapeMismatch
	}

	var div func(i, j float64, v float64) float64
	switch norm {
	case NormSumEnt:
		div = func(i, j, _ float64) float64 { return i + j }
	case NormMinEnt:
		div = func(i, j, _ float64) float64 { return math.Min(i, j) }
	case NormMaxEnt:
		div = func(i, j, _ float64) float64 { return math.Max(i, j) }
	case NormMinCon:
		div = func(i, j, v float64) float64 { return math.Min(i-v, j-v) }
	case NormMaxCon:
		div = func(i, j, v float64) float64 { return math.Max(i-v, j-v) }
	case NormJoint:
		return nil, ErrJointNorm
	default:
		return nil, ErrUnknownNorm
	}

	out := mat.DenseCopyOf(mi)
	for i := 0; i < r; i++ {
		for j := 0; j < c; j++ {
			v := out.At(i, j)
			d := div(entropy[i], entropy[j], v)
			if d == 0 {
				out.Set(i, j, 0)
			} else {
				out.Set(i, j, v/d)
			}
		}
	}
	return out, nil
}

// Corr selects a correction for ApplyMutinfoCorr.
type Corr string

const (
	// CorrAPC is the average product correction.
	CorrAPC Corr = "apc"
	// CorrASC is the average sum correction.
	CorrASC Corr = "asc"
)

// ErrUnknownCorr is returned for an unrecognized correction.
var ErrUnknownCorr = errors.New("unknown correction")

// ApplyMutinfoCorr returns a copy of the mutual information matrix mi with
// the average product (apc) or average sum (asc) correction applied.
func ApplyMutinfoCorr(mi *mat.Dense, corr Corr) (*mat.Dense, error) {
	r, c := mi.Dims()
	if r != c {
		return nil, ErrNotSquare
	}
	if corr != CorrAPC && corr != CorrASC {
		return nil, ErrUnknownCorr
	}

	avgPos := make([]float64, r)
	var avg float64
	for i := 0; i < r; i++ {
		var sum float64
		for j := 0; j < c; j++ {
			sum += mi.At(i, j)
		}
		avgPos[i] = sum / float64(r-1)
		avg += avgPos[i]
	}
	avg /= float64(r)

	out := mat.DenseCopyOf(mi)
	for i := 0; i < r; i++ {
		for j := 0; j < c; j++ {
			v := out.At(i, j)
			if corr == CorrAPC {
				out.Set(i, j, v-avgPos[i]*avgPos[j]/avg)
			} else {
				out.Set(i, j, v-(avgPos[i]+avgPos[j]-avg))
			}
		}
	}
	return out, nil
}
