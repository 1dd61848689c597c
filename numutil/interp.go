package numutil

import (
	"errors"
	"math"
)

// ErrTooShort is returned when an axis has fewer than two samples.
var ErrTooShort = errors.New("need at least two samples")

// AddEnds finds breaks in the uniformly stepped axis x, extends each break by
// one step and inserts NaN at the corresponding position in y, so that curves
// drawn from the result show gaps instead of connecting across breaks. The
// dominant step is the most common difference between consecutive samples.
func AddEnds(x, y []float64) ([]float64, []float64, error) {
	if len(x) != len(y) {
		return nil, nil, ErrLengthMismatch
	}
	if len(x) < 2 {
		return nil, nil, ErrTooShort
	}

	counts := map[float64]int{}
	var step float64
	best := 0
	for i := 1; i < len(x); i++ {
		d := x[i] - x[i-1]
		counts[d]++
		if counts[d] > best {
			best = counts[d]
			step = d
		}
	}

	xs := []float64{x[0]}
	ys := []float64{y[0]}
	for i := 1; i < len(x); i++ {
		if x[i]-x[i-1] != step {
			xs = append(xs, x[i-1]+step)
			ys = append(ys, math.NaN())
		}
		xs = append(xs, x[i])
		ys = append(ys, y[i])
	}
	return xs, ys, nil
}

// InterpY densifies steep segments of y, sampled at unit-spaced positions, so
// that consecutive output samples differ by at most the value range divided
// by the number of samples. Intermediate points are linearly interpolated.
func InterpY(y []float64) ([]float64, []float64) {
	n := len(y)
	if n == 0 {
		return nil, nil
	}

	lo, hi := y[0], y[0]
	for _, v := range y[1:] {
		lo = math.Min(lo, v)
		hi = math.Max(hi, v)
	}
	dy := (hi - lo) / float64(n)

	xs := []float64{0}
	ys := []float64{y[0]}
	for i := 0; i < n-1; i++ {
		y1, y2 := y[i], y[i+1]
		x1, x2 := float64(i), float64(i+1)
		if math.Abs(y2-y1) > dy && dy > 0 {
			sdy := dy
			if y2 < y1 {
				sdy = -dy
			}
			for yp := y1 + sdy; (sdy > 0 && yp < y2) || (sdy < 0 && yp > y2); yp += sdy {
				xp := (yp-y1)/(y2-y1)*(x2-x1) + x1
				xs = append(xs, xp)
				ys = append(ys, yp)
			}
		}
		xs = append(xs, x2)
		ys = append(ys, y2)
	}
	return xs, ys
}
