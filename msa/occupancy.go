package msa

// Axis selects the direction of a per-axis calculation.
type Axis int

const (
	// ByColumn computes one value per alignment position.
	ByColumn Axis = iota
	// ByRow computes one value per sequence.
	ByRow
)

func isGap(c byte) bool {
	if c >= 'a' && c <= 'z' {
		c -= 'a' - 'A'
	}
	return c < 'A' || c > 'Z'
}

// Occupancy returns the fraction of non-gap characters per column or per
// row. When count is true, raw counts are returned instead of fractions.
func Occupancy(m *MSA, axis Axis, count bool) []float64 {
	var occ []float64
	var denom float64
	if axis == ByColumn {
		occ = make([]float64, m.Cols())
		denom = float64(m.Rows())
	} else {
		occ = make([]float64, m.Rows())
		denom = float64(m.Cols())
	}

	for i := 0; i < m.Rows(); i++ {
		for j := 0; j < m.Cols(); j++ {
			if isGap(m.at(i, j)) {
				continue
			}
			if axis == ByColumn {
				occ[j]++
			} else {
				occ[i]++
			}
		}
	}

	if !count {
		for k := range occ {
			occ[k] /= denom
		}
	}
	return occ
}
