package viz

import (
	"fmt"

	"github.com/guptarohit/asciigraph"
)

// ProfilePlot renders a log-likelihood sweep over rho as an ASCII
// line chart.
func ProfilePlot(rhos, lls []float64, width, height int) string {
	if len(rhos) == 0 || len(lls) != len(rhos) {
		return ""
	}
	if width <= 0 {
		width = 80
	}
	if height <= 0 {
		height = 12
	}

	caption := fmt.Sprintf("log-likelihood over rho in [%.2f, %.2f]", rhos[0], rhos[len(rhos)-1])
	return asciigraph.Plot(lls,
		asciigraph.Height(height),
		asciigraph.Width(width),
		asciigraph.Caption(caption),
	)
}
