package ui

import (
	"math/rand"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/Komil-goat/Futuristic-HUD/internal/config"
	"github.com/Komil-goat/Futuristic-HUD/internal/metrics"
	"github.com/Komil-goat/Futuristic-HUD/internal/weather"
)

// Core is the part of the monitor the presentation layer drives: one Tick
// per frame, copy-returning read accessors, and the two mutating calls.
type Core interface {
	Tick()
	Hardware() metrics.HardwareStats
	CPUHistory() []float64
	Processes(filter string) []metrics.ProcessInfo
	TerminateProcess(pid int32) error
	Weather() (weather.Reading, bool)
	WeatherLoading() bool
	RequestWeatherRefresh()
}

type Tab int

const (
	TabHardware Tab = iota
	TabProcesses
	TabWeather
	tabCount
)

func (t Tab) String() string {
	switch t {
	case TabHardware:
		return "Hardware"
	case TabProcesses:
		return "Processes"
	case TabWeather:
		return "Weather"
	}
	return "?"
}

type TickMsg time.Time

// tickRand adds jitter to the poll interval. Safe here: tick() is only
// called from the single-threaded Bubble Tea event loop.
var tickRand = rand.New(rand.NewSource(time.Now().UnixNano()))

func tick(interval time.Duration) tea.Cmd {
	// Jitter: +-10% around the configured interval
	jitter := time.Duration(tickRand.Int63n(int64(interval)/5) - int64(interval)/10)
	return tea.Tick(interval+jitter, func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}

type RootModel struct {
	core     Core
	interval time.Duration

	activeTab Tab

	hardware HardwareModel
	process  ProcessModel
	weather  WeatherModel
	footer   FooterModel

	width, height int
}

func NewRootModel(core Core, cfg *config.Profile) RootModel {
	interval := time.Second
	maxRows := 0
	if cfg != nil {
		interval = time.Duration(cfg.RefreshInterval) * time.Millisecond
		maxRows = cfg.MaxProcesses
	}

	return RootModel{
		core:     core,
		interval: interval,
		hardware: NewHardwareModel(),
		process:  NewProcessModel(core, maxRows),
		weather:  NewWeatherModel(core),
		footer:   NewFooterModel(),
	}
}

func (m RootModel) Init() tea.Cmd {
	return tea.Batch(m.process.Init(), tick(m.interval))
}

func (m RootModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		// The filter input owns the keyboard while active.
		if m.activeTab == TabProcesses && m.process.filtering {
			m.process, cmd = m.process.Update(msg)
			return m, cmd
		}

		switch msg.String() {
		case "q", "ctrl+c":
			return m, tea.Quit
		case "tab":
			m.activeTab = (m.activeTab + 1) % tabCount
		case "shift+tab":
			m.activeTab = (m.activeTab + tabCount - 1) % tabCount
		case "1":
			m.activeTab = TabHardware
		case "2":
			m.activeTab = TabProcesses
		case "3":
			m.activeTab = TabWeather
		default:
			switch m.activeTab {
			case TabProcesses:
				m.process, cmd = m.process.Update(msg)
				cmds = append(cmds, cmd)
			case TabWeather:
				m.weather, cmd = m.weather.Update(msg)
				cmds = append(cmds, cmd)
			}
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.resizeModules()

	case TickMsg:
		m.core.Tick()
		m.hardware.SetStats(m.core.Hardware(), m.core.CPUHistory())
		m.process.Refresh()
		cmds = append(cmds, tick(m.interval))
	}

	return m, tea.Batch(cmds...)
}

func (m *RootModel) resizeModules() {
	if m.width == 0 || m.height == 0 {
		return
	}

	// One line for the tab bar, one for the footer.
	h := m.height - 2
	if h < 1 {
		h = 1
	}

	m.hardware.SetSize(m.width, h)
	m.process.SetSize(m.width, h)
	m.weather.SetSize(m.width, h)
	m.footer.SetSize(m.width)
}

func (m RootModel) tabBar() string {
	var tabs []string
	for t := Tab(0); t < tabCount; t++ {
		if t == m.activeTab {
			tabs = append(tabs, ActiveTabStyle.Render(t.String()))
		} else {
			tabs = append(tabs, TabStyle.Render(t.String()))
		}
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, tabs...)
}

func (m RootModel) View() string {
	if m.width == 0 {
		return "Initializing..."
	}

	var body string
	switch m.activeTab {
	case TabHardware:
		body = m.hardware.View()
	case TabProcesses:
		body = m.process.View()
	case TabWeather:
		body = m.weather.View()
	}

	return lipgloss.JoinVertical(lipgloss.Left,
		m.tabBar(),
		body,
		m.footer.View(),
	)
}
