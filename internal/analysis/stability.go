package analysis

import (
	"errors"

	"gonum.org/v1/gonum/mat"

	"github.com/san-kum/dynsys/internal/system"
)

// ErrEigenFailed indicates the eigendecomposition did not converge.
var ErrEigenFailed = errors.New("analysis: eigendecomposition failed")

// Stability evaluates the Jacobian at point and returns its eigenvalues.
// The fixed point is linearly stable when every eigenvalue has a negative
// real part. Requires the Jacobian capability on the container.
func Stability(sys *system.System, point []float64) ([]complex128, error) {
	jac, ok := sys.Jacobian()
	if !ok {
		return nil, system.ErrNoJacobian
	}
	if len(point) != sys.Dimension() {
		return nil, system.ErrDimensionMismatch
	}

	n := sys.Dimension()
	j := mat.NewDense(n, n, nil)
	jac(j, point)

	var eig mat.Eigen
	if !eig.Factorize(j, mat.EigenNone) {
		return nil, ErrEigenFailed
	}
	return eig.Values(nil), nil
}

// IsStable reports whether every eigenvalue has strictly negative real
// part.
func IsStable(values []complex128) bool {
	for _, v := range values {
		if real(v) >= 0 {
			return false
		}
	}
	return len(values) > 0
}
