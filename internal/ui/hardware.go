package ui

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"

	"github.com/Komil-goat/Futuristic-HUD/internal/metrics"
)

type HardwareModel struct {
	width   int
	height  int
	stats   metrics.HardwareStats
	history []float64
}

func NewHardwareModel() HardwareModel {
	return HardwareModel{}
}

func (m *HardwareModel) SetStats(stats metrics.HardwareStats, history []float64) {
	m.stats = stats
	m.history = history
}

func (m *HardwareModel) SetSize(w, h int) {
	m.width = w
	m.height = h
}

func (m HardwareModel) View() string {
	if m.width == 0 || m.height == 0 {
		return ""
	}

	style := PanelStyle.Width(m.width - 2).Height(m.height - 2)

	cpuTitle := TitleStyle.Render(fmt.Sprintf("CPU Load: %.1f%%", m.stats.CPULoadPercent))
	graph := GraphStyle.Render(renderSparkline(m.history, m.width-6))
	if m.stats.CPULoadPercent > 80 {
		graph = AlertGraphStyle.Render(renderSparkline(m.history, m.width-6))
	}

	ramPct := 0
	if m.stats.RAMTotalGB > 0 {
		ramPct = int(m.stats.RAMUsedGB / m.stats.RAMTotalGB * 100)
	}
	ramTitle := TitleStyle.Render(fmt.Sprintf("RAM: %.2f / %.2f GB", m.stats.RAMUsedGB, m.stats.RAMTotalGB))
	ramBar := renderBar(ramPct, 100, m.width-6, fmt.Sprintf("Mem %d%%", ramPct))

	content := lipgloss.JoinVertical(lipgloss.Left,
		cpuTitle,
		graph,
		"",
		ramTitle,
		ramBar,
	)

	return style.Render(content)
}
