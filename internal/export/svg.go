package export

import (
	"fmt"
	"math"
	"os"
	"strings"
)

const (
	svgWidth   = 640.0
	svgHeight  = 360.0
	svgMargin  = 40.0
	background = "#0a0a0a"
	lineColor  = "#00ff88"
	axisColor  = "#444466"
)

// ProfileSVG renders a correlation sweep as an SVG polyline.
func ProfileSVG(path string, rhos, lls []float64) error {
	if len(rhos) != len(lls) {
		return fmt.Errorf("export: %d grid points but %d log-likelihoods", len(rhos), len(lls))
	}
	if len(rhos) < 2 {
		return fmt.Errorf("export: need at least 2 grid points for an SVG profile")
	}

	lo, hi := math.Inf(1), math.Inf(-1)
	for _, ll := range lls {
		if math.IsNaN(ll) || math.IsInf(ll, 0) {
			continue
		}
		lo = math.Min(lo, ll)
		hi = math.Max(hi, ll)
	}
	if lo > hi {
		return fmt.Errorf("export: no finite log-likelihoods to plot")
	}
	if hi == lo {
		hi = lo + 1
	}

	plotW := svgWidth - 2*svgMargin
	plotH := svgHeight - 2*svgMargin
	rhoSpan := rhos[len(rhos)-1] - rhos[0]
	if rhoSpan == 0 {
		rhoSpan = 1
	}

	var pts strings.Builder
	for i := range rhos {
		if math.IsNaN(lls[i]) || math.IsInf(lls[i], 0) {
			continue
		}
		x := svgMargin + plotW*(rhos[i]-rhos[0])/rhoSpan
		y := svgHeight - svgMargin - plotH*(lls[i]-lo)/(hi-lo)
		pts.WriteString(fmt.Sprintf("%.1f,%.1f ", x, y))
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf(`<?xml version="1.0" encoding="UTF-8"?>
<svg xmlns="http://www.w3.org/2000/svg" width="%.0f" height="%.0f" viewBox="0 0 %.0f %.0f">
<rect width="100%%" height="100%%" fill="%s"/>
`, svgWidth, svgHeight, svgWidth, svgHeight, background))

	sb.WriteString(fmt.Sprintf(`<line x1="%.1f" y1="%.1f" x2="%.1f" y2="%.1f" stroke="%s"/>
`, svgMargin, svgHeight-svgMargin, svgWidth-svgMargin, svgHeight-svgMargin, axisColor))
	sb.WriteString(fmt.Sprintf(`<line x1="%.1f" y1="%.1f" x2="%.1f" y2="%.1f" stroke="%s"/>
`, svgMargin, svgMargin, svgMargin, svgHeight-svgMargin, axisColor))

	sb.WriteString(fmt.Sprintf(`<polyline points="%s" fill="none" stroke="%s" stroke-width="2"/>
`, strings.TrimSpace(pts.String()), lineColor))

	sb.WriteString(fmt.Sprintf(`<text x="%.1f" y="%.1f" fill="%s" font-size="12">rho %.2f .. %.2f</text>
</svg>
`, svgMargin, svgHeight-12, axisColor, rhos[0], rhos[len(rhos)-1]))

	return os.WriteFile(path, []byte(sb.String()), 0644)
}
