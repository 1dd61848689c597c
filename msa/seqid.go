package msa

import (
	"errors"
	"fmt"

	"gonum.org/v1/gonum/mat"
)

// ErrSeqidRange is returned when a sequence identity threshold is out of (0, 1].
var ErrSeqidRange = errors.New("seqid must satisfy 0 < seqid <= 1")

func upper(c byte) byte {
	if c >= 'a' && c <= 'z' {
		c -= 'a' - 'A'
	}
	return c
}

// seqid returns the fraction of identical characters between rows i and j
// over the columns where at least one of the two has a residue. Columns
// gapped in both sequences are ignored; 0 when no column qualifies.
func (m *MSA) seqid(i, j int) float64 {
	var score, ncols float64
	for k := 0; k < m.Cols(); k++ {
		a, b := m.at(i, k), m.at(j, k)
		ga, gb := isGap(a), isGap(b)
		if ga && gb {
			continue
		}
		ncols++
		if !ga && !gb && upper(a) == upper(b) {
			score++
		}
	}
	if ncols == 0 {
		return 0
	}
	return score / ncols
}

// SeqidMatrix returns the pairwise sequence identity matrix of the
// alignment: symmetric, with a unit diagonal.
func SeqidMatrix(m *MSA) *mat.Dense {
	out := mat.NewDense(m.Rows(), m.Rows(), nil)
	for i := 0; i < m.Rows(); i++ {
		out.Set(i, i, 1)
		for j := i + 1; j < m.Rows(); j++ {
			s := m.seqid(i, j)
			out.Set(i, j, s)
			out.Set(j, i, s)
		}
	}
	return out
}

// UniqueSequences returns a boolean mask over the rows of the alignment. A
// sequence sharing identity of seqid or more with a sequence coming before
// itself gets false.
func UniqueSequences(m *MSA, seqid float64) ([]bool, error) {
	if seqid <= 0 || seqid > 1 {
		return nil, fmt.Errorf("%w: %v", ErrSeqidRange, seqid)
	}

	unique := make([]bool, m.Rows())
	for i := range unique {
		unique[i] = true
	}
	for j := 1; j < m.Rows(); j++ {
		for i := 0; i < j; i++ {
			if m.seqid(i, j) >= seqid {
				unique[j] = false
				break
			}
		}
	}
	return unique, nil
}
