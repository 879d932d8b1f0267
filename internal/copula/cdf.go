package copula

import (
	"math"

	"github.com/san-kum/copula/internal/gauss"
)

// BivariateCDF returns the bivariate Gaussian copula CDF at (u1, u2)
// with correlation rho, a probability in [0, 1], built from Owen's T:
//
//	C(u1,u2) = (u1+u2)/2 - T(p1, alpha1) - T(p2, alpha2) - d
//
// where p1, p2 are the normal quantiles, alphaI = (pJ/pI - rho)/sqrt(1-rho^2),
// and d = 1/2 exactly when one coordinate is strictly below the median
// and the other is not. The comparison is deliberately asymmetric: 0.5
// itself counts as "not below" on both sides, so d = 0 whenever either
// coordinate equals 0.5 unless the other is strictly below it.
//
// A quantile of exactly zero (u = 0.5) puts a division by zero inside
// the corresponding alpha; like every other domain edge this is left
// to the arithmetic.
func BivariateCDF(u1, u2, rho float64) float64 {
	a := 1 / math.Sqrt(1-rho*rho)
	p1 := gauss.Quantile(u1)
	p2 := gauss.Quantile(u2)
	alpha1 := a * (p2/p1 - rho)
	alpha2 := a * (p1/p2 - rho)

	d := 0.0
	if (u1 < 0.5 && u2 >= 0.5) || (u1 >= 0.5 && u2 < 0.5) {
		d = 0.5
	}

	return 0.5*(u1+u2) - gauss.OwenT(p1, alpha1) - gauss.OwenT(p2, alpha2) - d
}
