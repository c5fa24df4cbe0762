package ui

import (
	"fmt"
	"time"

	"github.com/charmbracelet/lipgloss"
)

type FooterModel struct {
	width int
}

func NewFooterModel() FooterModel {
	return FooterModel{}
}

func (m *FooterModel) SetSize(w int) {
	m.width = w
}

func (m FooterModel) View() string {
	if m.width == 0 {
		return ""
	}

	style := lipgloss.NewStyle().
		Width(m.width).
		Background(lipgloss.Color(ColorDimGray)).
		Foreground(lipgloss.Color(ColorFrostWhite)).
		Padding(0, 1)

	left := fmt.Sprintf("Futuristic HUD | %s", time.Now().Format("15:04:05"))
	right := "q: Quit | tab: Switch | /: Filter | k: Terminate | r: Weather"

	spacerWidth := m.width - lipgloss.Width(left) - lipgloss.Width(right) - 4
	if spacerWidth < 0 {
		spacerWidth = 0
	}
	spacer := lipgloss.NewStyle().Width(spacerWidth).Render("")

	return style.Render(left + spacer + right)
}
