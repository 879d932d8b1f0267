// Package viz renders copula densities and likelihood profiles for
// the terminal.
package viz

import (
	"fmt"
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/san-kum/copula/internal/copula"
)

var (
	headerStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("86")).Bold(true)
	frameStyle  = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("240")).Padding(0, 1)
	axisStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
	helpStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))

	// Cold-to-hot ramp for density levels.
	shadeStyles = []lipgloss.Style{
		lipgloss.NewStyle().Foreground(lipgloss.Color("17")),
		lipgloss.NewStyle().Foreground(lipgloss.Color("24")),
		lipgloss.NewStyle().Foreground(lipgloss.Color("31")),
		lipgloss.NewStyle().Foreground(lipgloss.Color("38")),
		lipgloss.NewStyle().Foreground(lipgloss.Color("45")),
		lipgloss.NewStyle().Foreground(lipgloss.Color("220")),
		lipgloss.NewStyle().Foreground(lipgloss.Color("208")),
		lipgloss.NewStyle().Foreground(lipgloss.Color("196")),
	}
	shadeRunes = []rune(" .:-=+*#%@")
)

// Surface renders the bivariate copula log density over the unit
// square as a shaded heatmap. Cells are evaluated at their centers, so
// the open-interval domain is never touched at its boundary.
func Surface(rho float64, width, height int) string {
	if width <= 0 {
		width = 40
	}
	if height <= 0 {
		height = 20
	}

	vals := make([][]float64, height)
	lo, hi := math.Inf(1), math.Inf(-1)
	for r := 0; r < height; r++ {
		vals[r] = make([]float64, width)
		// Row 0 at the top of the screen is v close to 1.
		v := (float64(height-r) - 0.5) / float64(height)
		for c := 0; c < width; c++ {
			u := (float64(c) + 0.5) / float64(width)
			lp := copula.BivariateLogPDF(u, v, rho)
			vals[r][c] = lp
			if !math.IsNaN(lp) && !math.IsInf(lp, 0) {
				lo = math.Min(lo, lp)
				hi = math.Max(hi, lp)
			}
		}
	}

	var b strings.Builder
	for r := 0; r < height; r++ {
		for c := 0; c < width; c++ {
			b.WriteString(shadeCell(vals[r][c], lo, hi))
		}
		if r < height-1 {
			b.WriteByte('\n')
		}
	}

	header := headerStyle.Render(fmt.Sprintf("gaussian copula log density  rho=%+.3f", rho))
	axes := axisStyle.Render("u: left to right, v: bottom to top, both on (0,1)")
	return header + "\n" + frameStyle.Render(b.String()) + "\n" + axes
}

func shadeCell(lp, lo, hi float64) string {
	if math.IsNaN(lp) {
		return "?"
	}
	t := 0.0
	if hi > lo {
		t = (lp - lo) / (hi - lo)
	}
	if math.IsInf(lp, 1) {
		t = 1
	}
	t = math.Max(0, math.Min(1, t))

	r := shadeRunes[int(t*float64(len(shadeRunes)-1)+0.5)]
	s := shadeStyles[int(t*float64(len(shadeStyles)-1)+0.5)]
	return s.Render(string(r))
}
