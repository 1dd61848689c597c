package msa

import (
	"fmt"
	"io"

	msgpack "github.com/vmihailenco/msgpack/v5"
)

// Profile holds per-column results computed from an alignment, ready to be
// serialized next to the data they were computed from.
type Profile struct {
	Labels    []string
	Entropy   []float64
	Occupancy []float64
}

// NewProfile computes a profile with default settings: ambiguity-aware
// entropy with gaps omitted, and per-column occupancy fractions.
func NewProfile(m *MSA) *Profile {
	return &Profile{
		Labels:    append([]string(nil), m.Labels()...),
		Entropy:   ShannonEntropy(m),
		Occupancy: Occupancy(m, ByColumn, false),
	}
}

// WriteProfile encodes the profile to w as msgpack.
func WriteProfile(w io.Writer, p *Profile) error {
	enc := msgpack.GetEncoder()
	enc.Reset(w)
	defer msgpack.PutEncoder(enc)

	if err := enc.EncodeMulti(p.Labels, p.Entropy, p.Occupancy); err != nil {
		return fmt.Errorf("failed to encode profile: %w", err)
	}
	return nil
}

// ReadProfile decodes a profile written by WriteProfile.
func ReadProfile(r io.Reader) (*Profile, error) {
	dec := msgpack.GetDecoder()
	dec.Reset(r)
	defer msgpack.PutDecoder(dec)

	var p Profile
	if err := dec.DecodeMulti(&p.Labels, &p.Entropy, &p.Occupancy); err != nil {
		return nil, fmt.Errorf("failed to decode profile: %w", err)
	}
	return &p, nil
}
