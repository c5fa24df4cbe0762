package ui

import (
	"fmt"
	"strconv"

	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

type ProcessModel struct {
	core      Core
	table     table.Model
	textInput textinput.Model
	width     int
	height    int
	filter    string
	filtering bool
	status    string
	maxRows   int
}

func NewProcessModel(core Core, maxRows int) ProcessModel {
	columns := []table.Column{
		{Title: "PID", Width: 8},
		{Title: "Name", Width: 30},
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithFocused(true),
		table.WithHeight(10),
	)

	s := table.DefaultStyles()
	s.Header = s.Header.
		Border(lipgloss.NormalBorder(), false, false, true, false).
		BorderForeground(lipgloss.Color(ColorDimGray)).
		Bold(true)
	s.Selected = s.Selected.
		Foreground(lipgloss.Color(ColorVoidBlack)).
		Background(lipgloss.Color(ColorNeonBlue)).
		Bold(false)
	t.SetStyles(s)

	ti := textinput.New()
	ti.Placeholder = "Search by name or PID"
	ti.Prompt = "/"
	ti.CharLimit = 64
	ti.Width = 24

	return ProcessModel{
		core:      core,
		table:     t,
		textInput: ti,
		maxRows:   maxRows,
	}
}

func (m ProcessModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m ProcessModel) Update(msg tea.Msg) (ProcessModel, tea.Cmd) {
	var cmd tea.Cmd

	if m.filtering {
		switch msg := msg.(type) {
		case tea.KeyMsg:
			switch msg.String() {
			case "enter", "esc":
				m.filtering = false
				m.filter = m.textInput.Value()
				m.table.Focus()
				m.Refresh()
				return m, nil
			}
		}
		m.textInput, cmd = m.textInput.Update(msg)
		m.filter = m.textInput.Value() // Live filter
		m.Refresh()
		return m, cmd
	}

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "/":
			m.filtering = true
			m.textInput.Focus()
			m.table.Blur()
			return m, textinput.Blink
		case "k":
			if row := m.table.SelectedRow(); len(row) > 0 {
				pid, err := strconv.ParseInt(row[0], 10, 32)
				if err != nil {
					break
				}
				if err := m.core.TerminateProcess(int32(pid)); err != nil {
					m.status = fmt.Sprintf("Failed to terminate PID %d: %v", pid, err)
				} else {
					m.status = fmt.Sprintf("Sent terminate to PID %d", pid)
				}
			}
		}
	}

	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

// Refresh re-reads the filtered snapshot from the core.
func (m *ProcessModel) Refresh() {
	procs := m.core.Processes(m.filter)
	if m.maxRows > 0 && len(procs) > m.maxRows {
		procs = procs[:m.maxRows]
	}

	rows := make([]table.Row, len(procs))
	for i, p := range procs {
		rows[i] = table.Row{
			strconv.Itoa(int(p.PID)),
			p.Name,
		}
	}
	m.table.SetRows(rows)
}

func (m *ProcessModel) SetSize(w, h int) {
	m.width = w
	m.height = h

	// Header, filter line, status line and panel chrome.
	tableHeight := h - 6
	if tableHeight < 1 {
		tableHeight = 1
	}
	m.table.SetHeight(tableHeight)

	cols := m.table.Columns()
	cols[0].Width = 8
	remaining := w - 8 - 8
	if remaining < 10 {
		remaining = 10
	}
	cols[1].Width = remaining
	m.table.SetColumns(cols)
}

func (m ProcessModel) View() string {
	if m.width == 0 || m.height == 0 {
		return ""
	}

	style := PanelStyle.Width(m.width - 2).Height(m.height - 2)

	title := fmt.Sprintf("Processes (%d)", len(m.table.Rows()))
	if m.filtering {
		title = m.textInput.View()
	} else if m.filter != "" {
		title = fmt.Sprintf("Filter: %s (%d)", m.filter, len(m.table.Rows()))
	}

	status := ""
	if m.status != "" {
		status = TextStyle.Render(m.status)
	}

	return style.Render(lipgloss.JoinVertical(lipgloss.Left,
		TitleStyle.Render(title),
		m.table.View(),
		status,
	))
}
