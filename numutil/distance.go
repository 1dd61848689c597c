package numutil

import "math"

// Dist returns the Euclidean distance between coordinate vectors a and b.
func Dist(a, b []float64) (float64, error) {
	if len(a) != len(b) {
		return 0, ErrLengthMismatch
	}

	var sum float64
	for i := range a {
		d := a[i] - b[i]
		sum += d * d
	}
	return math.Sqrt(sum), nil
}

// DistUnitcell returns the Euclidean distance between a and b under the
// minimum-image convention for an orthorhombic unit cell. Every coordinate
// difference is wrapped to within half a cell edge.
func DistUnitcell(a, b, cell []float64) (float64, error) {
	if len(a) != len(b) || len(a) != len(cell) {
		return 0, ErrLengthMismatch
	}

	var sum float64
	for i := range a {
		d := a[i] - b[i]
		d -= math.Round(d/cell[i]) * cell[i]
		sum += d * d
	}
	return math.Sqrt(sum), nil
}
