package msa

import "math"

const (
	numLetters = 26
	gapIndex   = numLetters
)

// The twenty standard amino acids; X distributes across these.
var standard = []byte("ACDEFGHIKLMNPQRSTVWY")

type symbolWeight struct {
	index  int
	weight float64
}

var spreadX []symbolWeight

func init() {
	spreadX = make([]symbolWeight, len(standard))
	for i, c := range standard {
		spreadX[i] = symbolWeight{index: int(c - 'A'), weight: 1 / float64(len(standard))}
	}
}

func split(a, b byte) []symbolWeight {
	return []symbolWeight{
		{index: int(a - 'A'), weight: 0.5},
		{index: int(b - 'A'), weight: 0.5},
	}
}

// symbolWeights maps an alignment byte to weighted letter counts, case
// insensitive. With ambiguity, B is allocated to D and N, Z to E and Q, J to
// I and L, and X to the twenty standard amino acids; U and O stay distinct.
// Non-alphabet bytes count as gaps.
func symbolWeights(c byte, ambiguity bool) []symbolWeight {
	if c >= 'a' && c <= 'z' {
		c -= 'a' - 'A'
	}
	if c < 'A' || c > 'Z' {
		return []symbolWeight{{index: gapIndex, weight: 1}}
	}

	if ambiguity {
		switch c {
		case 'B':
			return split('D', 'N')
		case 'Z':
			return split('E', 'Q')
		case 'J':
			return split('I', 'L')
		case 'X':
			return spreadX
		}
	}
	return []symbolWeight{{index: int(c - 'A'), weight: 1}}
}

type statOptions struct {
	noAmbiguity bool
	countGaps   bool
	jointNorm   bool
}

// StatOption configures ShannonEntropy and MutinfoMatrix.
type StatOption func(*statOptions)

// NoAmbiguity treats every alphabet character as a distinct type instead of
// allocating ambiguous amino-acid counts.
func NoAmbiguity() StatOption {
	return func(o *statOptions) {
		o.noAmbiguity = true
	}
}

// CountGaps counts gaps as a distinct character with its own probability
// instead of adjusting the probabilities of the amino acids present. Only
// ShannonEntropy honors it; MutinfoMatrix always counts gaps.
func CountGaps() StatOption {
	return func(o *statOptions) {
		o.countGaps = true
	}
}

// ShannonEntropy returns the per-column Shannon entropy of the alignment in
// nats. A column of gaps only has zero entropy.
func ShannonEntropy(m *MSA, opts ...StatOption) []float64 {
	o := statOptions{}
	for _, opt := range opts {
		opt(&o)
	}

	entropy := make([]float64, m.Cols())
	counts := make([]float64, numLetters+1)
	for j := 0; j < m.Cols(); j++ {
		for k := range counts {
			counts[k] = 0
		}
		for i := 0; i < m.Rows(); i++ {
			for _, sw := range symbolWeights(m.at(i, j), !o.noAmbiguity) {
				counts[sw.index] += sw.weight
			}
		}

		total := float64(m.Rows())
		last := gapIndex
		if !o.countGaps {
			total -= counts[gapIndex]
			last = gapIndex - 1
		}
		if total <= 0 {
			continue
		}

		var h float64
		for k := 0; k <= last; k++ {
			if counts[k] == 0 {
				continue
			}
			p := counts[k] / total
			h -= p * math.Log(p)
		}
		entropy[j] = h
	}
	return entropy
}
