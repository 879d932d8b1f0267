package copula

import (
	"errors"
	"math"
	"testing"

	"gonum.org/v1/gonum/mat"
)

func TestCheckedBivariateLogPDF(t *testing.T) {
	tests := []struct {
		name      string
		u, v, rho float64
		err       error
	}{
		{"valid", 0.7, 0.3, 0.5, nil},
		{"rho at boundary", 0.7, 0.3, 1, ErrCorrelationRange},
		{"rho beyond", 0.7, 0.3, -1.2, ErrCorrelationRange},
		{"u at zero", 0, 0.3, 0.5, ErrUnitInterval},
		{"v at one", 0.7, 1, 0.5, ErrUnitInterval},
		{"u NaN", math.NaN(), 0.3, 0.5, ErrUnitInterval},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := CheckedBivariateLogPDF(tt.u, tt.v, tt.rho)
			if !errors.Is(err, tt.err) {
				t.Fatalf("err = %v, want %v", err, tt.err)
			}
			if err == nil {
				want := BivariateLogPDF(tt.u, tt.v, tt.rho)
				if got != want {
					t.Errorf("checked = %v, raw = %v", got, want)
				}
			}
		})
	}
}

func TestCheckedBivariateLogPDFBatch(t *testing.T) {
	u := []float64{0.2, 0.5, 0.8}
	v := []float64{0.6, 0.1, 0.9}

	if _, err := CheckedBivariateLogPDFBatch(u, v, 1.5); !errors.Is(err, ErrCorrelationRange) {
		t.Errorf("expected ErrCorrelationRange, got %v", err)
	}
	if _, err := CheckedBivariateLogPDFBatch(u, v[:2], 0.5); !errors.Is(err, ErrLengthMismatch) {
		t.Errorf("expected ErrLengthMismatch, got %v", err)
	}
	if _, err := CheckedBivariateLogPDFBatch([]float64{0.2, 1.1, 0.8}, v, 0.5); !errors.Is(err, ErrUnitInterval) {
		t.Errorf("expected ErrUnitInterval, got %v", err)
	}

	got, err := CheckedBivariateLogPDFBatch(u, v, 0.5)
	if err != nil {
		t.Fatal(err)
	}
	want, _ := BivariateLogPDFBatch(u, v, 0.5)
	if got != want {
		t.Errorf("checked = %v, raw = %v", got, want)
	}
}

func TestCheckedMultivariateLogPDF(t *testing.T) {
	obs := mat.NewDense(2, 2, []float64{
		0.3, 0.6,
		0.7, 0.2,
	})

	bad := mat.NewTriDense(2, mat.Lower, []float64{1, 0, 0.5, 0})
	if _, err := CheckedMultivariateLogPDF(obs, bad); !errors.Is(err, ErrCholeskyDiagonal) {
		t.Errorf("expected ErrCholeskyDiagonal, got %v", err)
	}

	outOfRange := mat.NewDense(2, 2, []float64{
		0.3, 1.6,
		0.7, 0.2,
	})
	if _, err := CheckedMultivariateLogPDF(outOfRange, lowerFromRho(0.5)); !errors.Is(err, ErrUnitInterval) {
		t.Errorf("expected ErrUnitInterval, got %v", err)
	}

	got, err := CheckedMultivariateLogPDF(obs, lowerFromRho(0.5))
	if err != nil {
		t.Fatal(err)
	}
	want, _ := MultivariateLogPDF(obs, lowerFromRho(0.5))
	if got != want {
		t.Errorf("checked = %v, raw = %v", got, want)
	}
}

func TestCheckedBivariateCDF(t *testing.T) {
	if _, err := CheckedBivariateCDF(0.3, 0.7, -1); !errors.Is(err, ErrCorrelationRange) {
		t.Errorf("expected ErrCorrelationRange, got %v", err)
	}
	if _, err := CheckedBivariateCDF(0.3, -0.1, 0.2); !errors.Is(err, ErrUnitInterval) {
		t.Errorf("expected ErrUnitInterval, got %v", err)
	}

	got, err := CheckedBivariateCDF(0.3, 0.7, 0.2)
	if err != nil {
		t.Fatal(err)
	}
	if got != BivariateCDF(0.3, 0.7, 0.2) {
		t.Error("checked and raw CDF disagree")
	}
}
