package gauss

import (
	"math"
	"testing"
)

func TestOwenT_ClosedForms(t *testing.T) {
	// T(0, a) = atan(a) / 2pi
	for _, a := range []float64{0.1, 0.5, 1, 2, 10} {
		want := math.Atan(a) / (2 * math.Pi)
		if got := OwenT(0, a); math.Abs(got-want) > 1e-14 {
			t.Errorf("OwenT(0, %v) = %v, want %v", a, got, want)
		}
	}

	// T(h, 1) = Phi(h)(1 - Phi(h)) / 2
	for _, h := range []float64{0.1, 0.5, 1, 2, 3} {
		want := 0.5 * Phi(h) * (1 - Phi(h))
		if got := OwenT(h, 1); math.Abs(got-want) > 1e-13 {
			t.Errorf("OwenT(%v, 1) = %v, want %v", h, got, want)
		}
	}

	// a -> Inf: T(h, Inf) = (1 - Phi(h)) / 2 for h > 0
	for _, h := range []float64{0.5, 1, 2} {
		want := 0.5 * (1 - Phi(h))
		if got := OwenT(h, math.Inf(1)); math.Abs(got-want) > 1e-13 {
			t.Errorf("OwenT(%v, Inf) = %v, want %v", h, got, want)
		}
	}
}

func TestOwenT_Symmetries(t *testing.T) {
	hs := []float64{0.2, 0.7, 1.5}
	as := []float64{0.3, 0.9, 1.8, 5}

	for _, h := range hs {
		for _, a := range as {
			if got, want := OwenT(-h, a), OwenT(h, a); math.Abs(got-want) > 1e-14 {
				t.Errorf("OwenT not even in h at (%v, %v): %v vs %v", h, a, got, want)
			}
			if got, want := OwenT(h, -a), -OwenT(h, a); math.Abs(got-want) > 1e-14 {
				t.Errorf("OwenT not odd in a at (%v, %v): %v vs %v", h, a, got, want)
			}
		}
	}

	if OwenT(1.3, 0) != 0 {
		t.Error("OwenT(h, 0) should be exactly 0")
	}
}

func TestOwenT_RecurrenceIdentity(t *testing.T) {
	// T(h,a) + T(ah, 1/a) = [Phi(h) + Phi(ah)]/2 - Phi(h)Phi(ah), a > 0
	for _, h := range []float64{0.3, 1, 2} {
		for _, a := range []float64{0.25, 0.8, 1.6, 4} {
			lhs := OwenT(h, a) + OwenT(a*h, 1/a)
			rhs := 0.5*(Phi(h)+Phi(a*h)) - Phi(h)*Phi(a*h)
			if math.Abs(lhs-rhs) > 1e-13 {
				t.Errorf("identity fails at h=%v a=%v: %v vs %v", h, a, lhs, rhs)
			}
		}
	}
}

func TestOwenT_NaN(t *testing.T) {
	if !math.IsNaN(OwenT(math.NaN(), 1)) || !math.IsNaN(OwenT(1, math.NaN())) {
		t.Error("NaN inputs must propagate")
	}
}
