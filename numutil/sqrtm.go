package numutil

import (
	"errors"
	"math"

	"gonum.org/v1/gonum/mat"
)

// ErrFactorization is returned when a matrix decomposition fails to converge.
var ErrFactorization = errors.New("matrix factorization failed")

// Sqrtm returns the square root of a matrix computed from its singular value
// decomposition, U * sqrt(S) * Vᵀ.
func Sqrtm(a mat.Matrix) (*mat.Dense, error) {
	var svd mat.SVD
	if ok := svd.Factorize(a, mat.SVDThin); !ok {
		return nil, ErrFactorization
	}

	var u, v mat.Dense
	svd.UTo(&u)
	svd.VTo(&v)

	values := svd.Values(nil)
	for i, s := range values {
		values[i] = math.Sqrt(s)
	}
	d := mat.NewDiagDense(len(values), values)

	var ud, root mat.Dense
	ud.Mul(&u, d)
	root.Mul(&ud, v.T())
	return &root, nil
}
