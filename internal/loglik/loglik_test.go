package loglik

import (
	"context"
	"errors"
	"math"
	"testing"

	"gonum.org/v1/gonum/mat"

	"github.com/san-kum/copula/internal/copula"
)

func testSample(n int) PairSample {
	// Deterministic copula-scale pairs covering the unit square.
	u := make([]float64, n)
	v := make([]float64, n)
	for i := 0; i < n; i++ {
		u[i] = (float64(i) + 0.5) / float64(n)
		v[i] = math.Mod(0.37+0.61*float64(i), 1)
		if v[i] == 0 {
			v[i] = 0.5
		}
	}
	return PairSample{U: u, V: v}
}

func TestAccumulate_MatchesScalarSum(t *testing.T) {
	sample := testSample(37)
	ctx := context.Background()

	for _, workers := range []int{1, 2, 4, 0} {
		got, err := Accumulate(ctx, sample, 0.6, workers)
		if err != nil {
			t.Fatalf("workers=%d: %v", workers, err)
		}

		var want float64
		for i := range sample.U {
			want += copula.BivariateLogPDF(sample.U[i], sample.V[i], 0.6)
		}

		if math.Abs(got-want) > 1e-9*math.Max(1, math.Abs(want)) {
			t.Errorf("workers=%d: got %v, want %v", workers, got, want)
		}
	}
}

func TestAccumulate_EdgeCases(t *testing.T) {
	ctx := context.Background()

	got, err := Accumulate(ctx, PairSample{}, 0.5, 4)
	if err != nil || got != 0 {
		t.Errorf("empty sample = (%v, %v), want (0, nil)", got, err)
	}

	bad := PairSample{U: []float64{0.5}, V: []float64{0.5, 0.6}}
	if _, err := Accumulate(ctx, bad, 0.5, 1); !errors.Is(err, copula.ErrLengthMismatch) {
		t.Errorf("expected ErrLengthMismatch, got %v", err)
	}

	canceled, cancel := context.WithCancel(ctx)
	cancel()
	if _, err := Accumulate(canceled, testSample(10), 0.5, 2); !errors.Is(err, context.Canceled) {
		t.Errorf("expected context.Canceled, got %v", err)
	}
}

func TestAccumulateMatrix_MatchesSingleCall(t *testing.T) {
	obs := mat.NewDense(2, 12, nil)
	sample := testSample(12)
	for j := 0; j < 12; j++ {
		obs.Set(0, j, sample.U[j])
		obs.Set(1, j, sample.V[j])
	}
	chol := mat.NewTriDense(2, mat.Lower, []float64{1, 0, 0.4, math.Sqrt(1 - 0.16)})

	want, err := copula.MultivariateLogPDF(obs, chol)
	if err != nil {
		t.Fatal(err)
	}

	for _, workers := range []int{1, 3, 5} {
		got, err := AccumulateMatrix(context.Background(), obs, chol, workers)
		if err != nil {
			t.Fatalf("workers=%d: %v", workers, err)
		}
		if math.Abs(got-want) > 1e-9*math.Max(1, math.Abs(want)) {
			t.Errorf("workers=%d: got %v, want %v", workers, got, want)
		}
	}
}

func TestGridValues(t *testing.T) {
	g := Grid{Min: -0.9, Max: 0.9, Steps: 7}
	vals := g.Values()
	if len(vals) != 7 {
		t.Fatalf("len = %d, want 7", len(vals))
	}
	if vals[0] != -0.9 || math.Abs(vals[6]-0.9) > 1e-12 {
		t.Errorf("endpoints wrong: %v", vals)
	}
	if math.Abs(vals[3]) > 1e-12 {
		t.Errorf("midpoint should be 0, got %v", vals[3])
	}

	single := Grid{Min: 0.2, Max: 0.8, Steps: 1}.Values()
	if len(single) != 1 || single[0] != 0.2 {
		t.Errorf("degenerate grid = %v", single)
	}
}

func TestProfile_PeaksNearTrueRho(t *testing.T) {
	// A strongly concordant sample should prefer positive rho.
	n := 50
	u := make([]float64, n)
	v := make([]float64, n)
	for i := 0; i < n; i++ {
		u[i] = (float64(i) + 0.5) / float64(n)
		v[i] = 0.9*u[i] + 0.05
	}
	sample := PairSample{U: u, V: v}

	rhos, lls, err := Profile(context.Background(), sample, Grid{Min: -0.9, Max: 0.9, Steps: 19}, 2)
	if err != nil {
		t.Fatal(err)
	}

	best, bestLL := ArgMax(rhos, lls)
	if best <= 0 {
		t.Errorf("expected positive rho to win, got %v (ll=%v)", best, bestLL)
	}
	if math.IsInf(bestLL, -1) {
		t.Error("profile produced no finite log-likelihood")
	}
}
