package numutil

// Integer atomic masses for the elements common in macromolecules.
var masses = map[string]float64{
	"C": 12,
	"N": 14,
	"S": 32,
	"O": 16,
	"H": 1,
}

// AtomicMass returns the mass of the given element symbol, 0 when unknown.
func AtomicMass(element string) float64 {
	return masses[element]
}

// Masses maps a slice of element symbols to their atomic masses.
func Masses(elements []string) []float64 {
	out := make([]float64, len(elements))
	for i, e := range elements {
		out[i] = AtomicMass(e)
	}
	return out
}
