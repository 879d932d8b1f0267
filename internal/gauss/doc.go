// Package gauss provides the normal-distribution primitives and
// reductions the copula kernels are built on:
//
//   - [Quantile]: standard-normal quantile (inverse CDF)
//   - [Phi]: standard-normal CDF
//   - [Log1m]: log(1-x) without cancellation for small x
//   - [OwenT]: Owen's T bivariate-normal tail probability
//   - [Dot], [SumSquares]: SIMD-accelerated vector reductions
//   - [SolveLower]: lower-triangular solve by forward substitution
//
// All functions are pure and safe for concurrent use. Out-of-domain
// inputs yield NaN rather than panics, so callers inside hot numeric
// loops never pay for validation they did upstream:
//
//	z := gauss.Quantile(0.975) // 1.959963...
//	z = gauss.Quantile(1.2)    // NaN
package gauss
