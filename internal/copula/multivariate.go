package copula

import (
	"math"

	"gonum.org/v1/gonum/mat"

	"github.com/san-kum/copula/internal/gauss"
)

// MultivariateLogPDF returns the aggregate Gaussian copula log density
// of the K x N observation matrix obs (one observation per column,
// entries on copula scale) under the correlation structure given by
// the K x K lower Cholesky factor chol, summed over all N columns.
//
// With A the columnwise quantile transform of obs and X the solution
// of chol X = A:
//
//	sum log c = -N * sum(log diag(chol)) - 0.5*(|X|^2 - |A|^2)
//
// Neither Sigma^-1 nor det(Sigma) is ever formed; both enter through
// the factor. K <= 1 and N == 0 carry no dependence and return 0.
// A factor with a non-positive diagonal propagates NaN.
func MultivariateLogPDF(obs *mat.Dense, chol *mat.TriDense) (float64, error) {
	k, n := obs.Dims()
	ck, kind := chol.Triangle()
	if kind != mat.Lower {
		return 0, ErrNotLower
	}
	if ck != k {
		return 0, ErrShapeMismatch
	}
	if k <= 1 || n == 0 {
		return 0, nil
	}

	lat := gauss.QuantileDense(obs)
	logDetHalf := gauss.SumLogDiag(chol)

	x, err := gauss.SolveLower(chol, lat)
	if err != nil {
		// Singular factor: same invalid-input contract as the
		// scalar kernels, never a silently wrong finite value.
		return math.NaN(), nil
	}

	return -float64(n)*logDetHalf - 0.5*(gauss.SumSquaresDense(x)-gauss.SumSquaresDense(lat)), nil
}
