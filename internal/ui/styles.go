package ui

import "github.com/charmbracelet/lipgloss"

// Semantic colors
const (
	colorHealthy  = lipgloss.Color("2")  // green
	colorWarning  = lipgloss.Color("3")  // yellow
	colorCritical = lipgloss.Color("1")  // red
	colorGraph    = lipgloss.Color("45") // cyan
	colorMuted    = lipgloss.Color("244")
	colorBorder   = lipgloss.Color("60")
)

// Thresholds for metric severity levels
const (
	warningThreshold  = 50.0
	criticalThreshold = 80.0
)

// Styles
var (
	titleStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("45"))
	subtleStyle = lipgloss.NewStyle().Foreground(colorMuted)
	labelStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("81")).Bold(true)
	gaugeFill   = "█"
	gaugeEmpty  = "░"
	cardStyle   = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(colorBorder).
			Padding(0, 1).
			MarginRight(1)

	menuStyle = lipgloss.NewStyle().
			Border(lipgloss.NormalBorder()).
			BorderForeground(colorBorder).
			Padding(0, 1)
	tabStyle       = lipgloss.NewStyle().Foreground(lipgloss.Color("7")).Padding(0, 1)
	activeTabStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("11")).Bold(true).Padding(0, 1)

	footerStyle = lipgloss.NewStyle().Padding(0, 1)
)

// thresholdColor returns green below 50%, yellow below 80% and red above.
func thresholdColor(pct float64) lipgloss.Color {
	switch {
	case pct >= criticalThreshold:
		return colorCritical
	case pct >= warningThreshold:
		return colorWarning
	default:
		return colorHealthy
	}
}
