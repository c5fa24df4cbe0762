package ui

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

type WeatherModel struct {
	core   Core
	width  int
	height int
}

func NewWeatherModel(core Core) WeatherModel {
	return WeatherModel{core: core}
}

func (m WeatherModel) Update(msg tea.Msg) (WeatherModel, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if msg.String() == "r" {
			m.core.RequestWeatherRefresh()
		}
	}
	return m, nil
}

func (m *WeatherModel) SetSize(w, h int) {
	m.width = w
	m.height = h
}

func (m WeatherModel) View() string {
	if m.width == 0 || m.height == 0 {
		return ""
	}

	style := PanelStyle.Width(m.width - 2).Height(m.height - 2)
	title := TitleStyle.Render("Weather (Open-Meteo)")
	hint := MetricLabelStyle.Render("r: refresh")

	var body string
	switch {
	case m.core.WeatherLoading():
		body = TextStyle.Render("Loading...")
	default:
		reading, ok := m.core.Weather()
		if !ok {
			body = MetricLabelStyle.Render("No data (yet).")
			break
		}
		body = lipgloss.JoinVertical(lipgloss.Left,
			TextStyle.Render(fmt.Sprintf("Summary:     %s", reading.Summary)),
			TextStyle.Render(fmt.Sprintf("Temperature: %.1f °C", reading.TemperatureC)),
			TextStyle.Render(fmt.Sprintf("Wind:        %.1f km/h", reading.WindKph)),
			MetricLabelStyle.Render(fmt.Sprintf("Fetched at %s", reading.FetchedAt.Format("15:04:05"))),
		)
	}

	return style.Render(lipgloss.JoinVertical(lipgloss.Left,
		title,
		"",
		body,
		"",
		hint,
	))
}
