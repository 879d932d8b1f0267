package gauss

import (
	"math"

	"github.com/viterin/vek"
	"gonum.org/v1/gonum/mat"
)

// Dot returns the inner product of x and y. Lengths must match;
// callers validate shapes before entering the hot path.
func Dot(x, y []float64) float64 {
	if len(x) == 0 {
		return 0
	}
	return vek.Dot(x, y)
}

// SumSquares returns the sum of squared entries of x.
func SumSquares(x []float64) float64 {
	if len(x) == 0 {
		return 0
	}
	return vek.Dot(x, x)
}

// SumSquaresDense returns the sum of squared entries of m. Views with
// a row stride wider than the column count are reduced row by row.
func SumSquaresDense(m *mat.Dense) float64 {
	raw := m.RawMatrix()
	if raw.Rows == 0 || raw.Cols == 0 {
		return 0
	}
	if raw.Stride == raw.Cols {
		return SumSquares(raw.Data[:raw.Rows*raw.Cols])
	}
	var sum float64
	for i := 0; i < raw.Rows; i++ {
		row := raw.Data[i*raw.Stride : i*raw.Stride+raw.Cols]
		sum += SumSquares(row)
	}
	return sum
}

// SumLogDiag returns the sum of the logs of the diagonal entries of a
// triangular factor. For a Cholesky factor L of Sigma this equals
// log(det Sigma)/2. A non-positive diagonal entry yields -Inf or NaN,
// which the callers propagate unchanged.
func SumLogDiag(l *mat.TriDense) float64 {
	n, _ := l.Triangle()
	var sum float64
	for i := 0; i < n; i++ {
		sum += math.Log(l.At(i, i))
	}
	return sum
}
