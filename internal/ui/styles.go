package ui

import "github.com/charmbracelet/lipgloss"

// Neon HUD palette
const (
	ColorVoidBlack  = "#14141A" // Background
	ColorNeonBlue   = "#00A6FF" // Accent/Active
	ColorFrostWhite = "#E6F0FA" // Primary text
	ColorDimGray    = "#40404C" // Panels/Borders
	ColorSignalRed  = "#C41E3A" // Alerts/Errors
	ColorPaleCyan   = "#8FBCBB" // Graphs/Normal metrics
)

var (
	PanelStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color(ColorNeonBlue)).
			Padding(0, 1)

	TitleStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color(ColorNeonBlue)).
			Bold(true)

	TextStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color(ColorFrostWhite))

	MetricLabelStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color(ColorDimGray))

	MetricValueStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color(ColorPaleCyan))

	AlertStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color(ColorSignalRed)).
			Bold(true)

	GraphStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color(ColorPaleCyan))

	AlertGraphStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color(ColorSignalRed))

	TabStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color(ColorDimGray)).
			Padding(0, 2)

	ActiveTabStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color(ColorVoidBlack)).
			Background(lipgloss.Color(ColorNeonBlue)).
			Bold(true).
			Padding(0, 2)
)
