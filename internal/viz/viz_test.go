package viz

import (
	"strings"
	"testing"
)

func TestSurface(t *testing.T) {
	out := Surface(0.5, 20, 10)
	if out == "" {
		t.Fatal("empty surface")
	}
	if !strings.Contains(out, "+0.500") {
		t.Error("surface header should include rho")
	}
	if strings.Contains(out, "?") {
		t.Error("interior cells should never be NaN")
	}
}

func TestSurface_DefaultDims(t *testing.T) {
	if Surface(0, 0, 0) == "" {
		t.Error("zero dims should fall back to defaults")
	}
}

func TestProfilePlot(t *testing.T) {
	rhos := []float64{-0.5, 0, 0.5}
	lls := []float64{-3.2, -1.1, -2.4}
	out := ProfilePlot(rhos, lls, 40, 8)
	if out == "" {
		t.Fatal("empty plot")
	}
	if !strings.Contains(out, "rho in [-0.50, 0.50]") {
		t.Error("caption missing rho range")
	}

	if ProfilePlot(nil, nil, 40, 8) != "" {
		t.Error("empty input should render nothing")
	}
	if ProfilePlot(rhos, lls[:2], 40, 8) != "" {
		t.Error("mismatched input should render nothing")
	}
}

func TestClampRho(t *testing.T) {
	if got := clampRho(2); got != rhoLimit {
		t.Errorf("clampRho(2) = %v", got)
	}
	if got := clampRho(-2); got != -rhoLimit {
		t.Errorf("clampRho(-2) = %v", got)
	}
	if got := clampRho(0.3); got != 0.3 {
		t.Errorf("clampRho(0.3) = %v", got)
	}
}
