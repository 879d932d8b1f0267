// Package copula evaluates the Gaussian copula density and CDF.
//
// The four kernels share one identity, the multivariate normal density
// divided by the product of its marginal densities, specialized four
// ways:
//
//   - [BivariateLogPDF]: one pair, scalar correlation
//   - [BivariateLogPDFBatch]: batched pairs, shared correlation, fused sum
//   - [MultivariateLogPDF]: K-dimensional columns against a Cholesky factor
//   - [BivariateCDF]: copula CDF on the unit square via Owen's T
//
// All kernels work on log scale throughout, so they compose into
// log-likelihood accumulation without overflow.
//
// # Domain policy
//
// The kernels do not validate their numeric domains. A correlation with
// rho^2 >= 1, a copula-scale input outside (0,1), or a Cholesky factor
// with a non-positive diagonal produces NaN (or a divergent value)
// through ordinary arithmetic, keeping the hot path branch-free. Shape
// disagreements are programming errors and are reported explicitly.
// Callers that want fail-fast validation use the Checked variants:
//
//	lp, err := copula.CheckedBivariateLogPDF(0.7, 0.3, 0.5)
package copula
