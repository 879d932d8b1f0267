package viz

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/san-kum/copula/internal/copula"
)

const (
	coarseStep = 0.05
	fineStep   = 0.005
	rhoLimit   = 0.995
)

// ExploreModel is an interactive density explorer: arrow keys sweep
// the correlation and the surface re-renders live.
type ExploreModel struct {
	rho           float64
	width, height int
	u, v          float64
}

// NewExplore returns an explorer starting at the given correlation.
func NewExplore(rho float64, width, height int) ExploreModel {
	return ExploreModel{rho: clampRho(rho), width: width, height: height, u: 0.7, v: 0.3}
}

func (m ExploreModel) Init() tea.Cmd { return nil }

func (m ExploreModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "esc", "ctrl+c":
			return m, tea.Quit
		case "left":
			m.rho = clampRho(m.rho - coarseStep)
		case "right":
			m.rho = clampRho(m.rho + coarseStep)
		case "down":
			m.rho = clampRho(m.rho - fineStep)
		case "up":
			m.rho = clampRho(m.rho + fineStep)
		case "0":
			m.rho = 0
		}
	}
	return m, nil
}

func (m ExploreModel) View() string {
	lp := copula.BivariateLogPDF(m.u, m.v, m.rho)
	cdf := copula.BivariateCDF(m.u, m.v, m.rho)

	status := axisStyle.Render(fmt.Sprintf(
		"at (u=%.2f, v=%.2f): log density %+.4f, CDF %.4f", m.u, m.v, lp, cdf))
	help := helpStyle.Render("left/right: coarse rho  up/down: fine  0: independence  q: quit")

	return Surface(m.rho, m.width, m.height) + "\n" + status + "\n" + help
}

func clampRho(rho float64) float64 {
	if rho > rhoLimit {
		return rhoLimit
	}
	if rho < -rhoLimit {
		return -rhoLimit
	}
	return rho
}
