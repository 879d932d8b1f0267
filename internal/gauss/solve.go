package gauss

import "gonum.org/v1/gonum/mat"

// SolveLower solves L X = A for X, where L is lower triangular with
// positive diagonal. The triangular structure routes gonum's Solve
// through forward substitution; no inverse is ever formed.
func SolveLower(l *mat.TriDense, a *mat.Dense) (*mat.Dense, error) {
	var x mat.Dense
	if err := x.Solve(l, a); err != nil {
		return nil, err
	}
	return &x, nil
}
