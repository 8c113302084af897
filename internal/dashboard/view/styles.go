package view

import (
	"stocksight/internal/dashboard/service"

	"github.com/charmbracelet/lipgloss"
)

// Styles.
var (
	titleStyle    = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("12"))
	subtitleStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
	labelStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
	valueStyle    = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("15"))
	gainStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("10"))
	lossStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))
	neutralStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("250"))
	symbolStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("12"))
	chartStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("14"))
	forecastStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("13"))
	emptyStyle    = lipgloss.NewStyle().Italic(true).Foreground(lipgloss.Color("245"))

	cardStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("240")).
			Padding(0, 1)
	selectedCardStyle = cardStyle.BorderForeground(lipgloss.Color("12"))
	errorStyle        = lipgloss.NewStyle().
				Border(lipgloss.NormalBorder()).
				BorderForeground(lipgloss.Color("9")).
				Foreground(lipgloss.Color("9")).
				Padding(0, 1)
	insightStyle = lipgloss.NewStyle().
			Border(lipgloss.NormalBorder(), false, false, false, true).
			BorderForeground(lipgloss.Color("12")).
			PaddingLeft(1)
)

func signStyle(positive bool) lipgloss.Style {
	if positive {
		return gainStyle
	}
	return lossStyle
}

func toneStyle(tone service.Tone) lipgloss.Style {
	switch tone {
	case service.ToneGreen:
		return gainStyle
	case service.ToneRed:
		return lossStyle
	default:
		return neutralStyle
	}
}
