package viewer

import (
	"github.com/charmbracelet/lipgloss"

	"uniplot/internal/plot"
)

// The header takes the first series colour and errors the second, so the
// chrome matches what the plot draws. Everything else stays in the
// terminal's own grays.
var (
	headerColor = plot.DefaultPalette[0]
	alertColor  = plot.DefaultPalette[1]
	mutedColor  = lipgloss.Color("8")
	edgeColor   = lipgloss.Color("240")

	appStyle   = lipgloss.NewStyle()
	boxStyle   = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(edgeColor).Padding(0, 1)
	titleStyle = lipgloss.NewStyle().Foreground(headerColor).Bold(true)
	dimStyle   = lipgloss.NewStyle().Foreground(mutedColor)
	errStyle   = lipgloss.NewStyle().Foreground(alertColor).Bold(true)
)
