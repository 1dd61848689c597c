// Package msa provides multiple-sequence-alignment analysis: per-column
// entropy and occupancy, coevolution matrices and their corrections, and
// ranking of coupled column pairs.
package msa

import (
	"errors"
	"fmt"

	"github.com/strucbio/bioutil/internal/ordmap"
)

var (
	// ErrEmpty is returned when an alignment has no sequences or no columns.
	ErrEmpty = errors.New("empty alignment")
	// ErrRagged is returned when sequences differ in length.
	ErrRagged = errors.New("sequences differ in length")
	// ErrLabelCount is returned when labels and sequences differ in count.
	ErrLabelCount = errors.New("label and sequence counts differ")
)

// MSA is a multiple sequence alignment: rows are labeled sequences, columns
// are alignment positions. The zero value is not usable; use New.
type MSA struct {
	data []byte
	rows int
	cols int
	m    *ordmap.Map[string, int]
}

// New creates an alignment from equally long sequences and their labels.
// Labels must be unique.
func New(labels []string, seqs []string) (*MSA, error) {
	if len(labels) != len(seqs) {
		return nil, ErrLabelCount
	}
	if len(seqs) == 0 || len(seqs[0]) == 0 {
		return nil, ErrEmpty
	}

	cols := len(seqs[0])
	m := &MSA{
		data: make([]byte, 0, len(seqs)*cols),
		rows: len(seqs),
		cols: cols,
		m:    ordmap.New[string, int](),
	}
	for i, seq := range seqs {
		if len(seq) != cols {
			return nil, fmt.Errorf("%w: sequence %q", ErrRagged, labels[i])
		}
		if err := m.m.Add(labels[i], i); err != nil {
			return nil, fmt.Errorf("label %q: %w", labels[i], err)
		}
		m.data = append(m.data, seq...)
	}
	return m, nil
}

// Rows returns the number of sequences.
func (m *MSA) Rows() int { return m.rows }

// Cols returns the number of alignment positions.
func (m *MSA) Cols() int { return m.cols }

// Labels returns the sequence labels in row order. The returned slice is
// shared and must not be modified.
func (m *MSA) Labels() []string { return m.m.Keys() }

// Index returns the row of the sequence with the given label.
func (m *MSA) Index(label string) (int, bool) {
	return m.m.Get(label)
}

// Sequence returns the sequence at the given row.
func (m *MSA) Sequence(i int) string {
	return string(m.data[i*m.cols : (i+1)*m.cols])
}

func (m *MSA) at(i, j int) byte {
	return m.data[i*m.cols+j]
}
