package gauss

import (
	"math"

	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/stat/distuv"
)

// Quantile returns the standard-normal quantile Phi^-1(p).
// It maps (0,1) onto the reals with Quantile(0.5) == 0, returns
// -Inf/+Inf at the closed endpoints, and NaN for anything outside
// [0,1] (including NaN itself).
func Quantile(p float64) float64 {
	if !(p >= 0 && p <= 1) {
		return math.NaN()
	}
	return distuv.UnitNormal.Quantile(p)
}

// QuantileSlice applies Quantile elementwise and returns a new slice.
func QuantileSlice(p []float64) []float64 {
	out := make([]float64, len(p))
	for i, v := range p {
		out[i] = Quantile(v)
	}
	return out
}

// QuantileDense applies Quantile elementwise to a matrix and returns
// a new matrix of the same shape.
func QuantileDense(m *mat.Dense) *mat.Dense {
	r, c := m.Dims()
	out := mat.NewDense(r, c, nil)
	out.Apply(func(_, _ int, v float64) float64 { return Quantile(v) }, m)
	return out
}

// Phi returns the standard-normal CDF at x.
func Phi(x float64) float64 {
	return distuv.UnitNormal.CDF(x)
}

// Log1m returns log(1-x), avoiding cancellation when x is small.
func Log1m(x float64) float64 {
	return math.Log1p(-x)
}
