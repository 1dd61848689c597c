// Package numutil provides small numeric helpers shared across the toolkit.
package numutil

import (
	"errors"
	"math"
)

// ErrLengthMismatch is returned when paired slices differ in length.
var ErrLengthMismatch = errors.New("slice length mismatch")

// Div0 divides a by b, returning 0 instead of an infinity or NaN when the
// division is undefined.
func Div0(a, b float64) float64 {
	c := a / b
	if math.IsInf(c, 0) || math.IsNaN(c) {
		return 0
	}
	return c
}

// WMean returns the weighted average of values. A zero total weight yields 0
// per Div0 semantics rather than an error.
func WMean(values, weights []float64) (float64, error) {
	if len(values) != len(weights) {
		return 0, ErrLengthMismatch
	}

	var numer, denom float64
	for i, v := range values {
		numer += v * weights[i]
		denom += weights[i]
	}
	return Div0(numer, denom), nil
}

// Bin2Dec converts a little-endian binary array to its decimal value.
func Bin2Dec(bits []bool) uint64 {
	var y uint64
	for i, b := range bits {
		if b {
			y += 1 << i
		}
	}
	return y
}
