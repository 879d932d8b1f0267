package copula

import (
	"gonum.org/v1/gonum/mat"
)

// Checked variants validate numeric domains before delegating to the
// unchecked kernels. They exist for boundary layers (CLI, config
// loading); inner loops call the raw kernels directly.

func validCorrelation(rho float64) bool { return rho > -1 && rho < 1 }

func onCopulaScale(x float64) bool { return x > 0 && x < 1 }

// CheckedBivariateLogPDF is BivariateLogPDF with fail-fast validation.
func CheckedBivariateLogPDF(u, v, rho float64) (float64, error) {
	if !validCorrelation(rho) {
		return 0, ErrCorrelationRange
	}
	if !onCopulaScale(u) || !onCopulaScale(v) {
		return 0, ErrUnitInterval
	}
	return BivariateLogPDF(u, v, rho), nil
}

// CheckedBivariateLogPDFBatch is BivariateLogPDFBatch with fail-fast
// validation of rho and every pair entry.
func CheckedBivariateLogPDFBatch(u, v []float64, rho float64) (float64, error) {
	if !validCorrelation(rho) {
		return 0, ErrCorrelationRange
	}
	if len(u) != len(v) {
		return 0, ErrLengthMismatch
	}
	for i := range u {
		if !onCopulaScale(u[i]) || !onCopulaScale(v[i]) {
			return 0, ErrUnitInterval
		}
	}
	return BivariateLogPDFBatch(u, v, rho)
}

// CheckedMultivariateLogPDF is MultivariateLogPDF with fail-fast
// validation of the factor diagonal and every observation entry.
func CheckedMultivariateLogPDF(obs *mat.Dense, chol *mat.TriDense) (float64, error) {
	ck, kind := chol.Triangle()
	if kind != mat.Lower {
		return 0, ErrNotLower
	}
	for i := 0; i < ck; i++ {
		if !(chol.At(i, i) > 0) {
			return 0, ErrCholeskyDiagonal
		}
	}
	k, n := obs.Dims()
	for i := 0; i < k; i++ {
		for j := 0; j < n; j++ {
			if !onCopulaScale(obs.At(i, j)) {
				return 0, ErrUnitInterval
			}
		}
	}
	return MultivariateLogPDF(obs, chol)
}

// CheckedBivariateCDF is BivariateCDF with fail-fast validation.
func CheckedBivariateCDF(u1, u2, rho float64) (float64, error) {
	if !validCorrelation(rho) {
		return 0, ErrCorrelationRange
	}
	if !onCopulaScale(u1) || !onCopulaScale(u2) {
		return 0, ErrUnitInterval
	}
	return BivariateCDF(u1, u2, rho), nil
}
