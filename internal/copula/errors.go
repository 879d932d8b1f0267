package copula

import "errors"

// Shape errors indicate caller bugs and are always reported.
// Numeric-domain errors are only raised by the Checked wrappers;
// the raw kernels let NaN propagate instead.
var (
	// ErrLengthMismatch indicates paired slices of different lengths.
	ErrLengthMismatch = errors.New("copula: paired inputs have different lengths")

	// ErrShapeMismatch indicates a Cholesky factor whose order does not
	// match the observation dimension.
	ErrShapeMismatch = errors.New("copula: observation and Cholesky dimensions disagree")

	// ErrNotLower indicates a factor stored as upper triangular.
	ErrNotLower = errors.New("copula: Cholesky factor must be lower triangular")

	// ErrCorrelationRange indicates a correlation outside (-1, 1).
	ErrCorrelationRange = errors.New("copula: correlation must lie in (-1, 1)")

	// ErrUnitInterval indicates a copula-scale value outside (0, 1).
	ErrUnitInterval = errors.New("copula: copula-scale input outside (0, 1)")

	// ErrCholeskyDiagonal indicates a non-positive diagonal entry.
	ErrCholeskyDiagonal = errors.New("copula: Cholesky factor has non-positive diagonal entry")
)
