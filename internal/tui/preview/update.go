package preview

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/alexisbeaulieu97/paperkit/pkg/theme"
)

// Update handles Bubbletea messages. While the seed input is focused,
// letters go to the input; esc leaves it so single-key commands work.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		return m, nil
	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c":
		m.quitted = true
		return m, tea.Quit
	case "enter":
		m.notice = ""
		m.apply(strings.TrimSpace(m.input.Value()))
		m.input.Blur()
		return m, nil
	case "tab":
		m.dark = !m.dark
		m.notice = ""
		m.apply(m.source)
		return m, nil
	case "esc":
		m.input.Blur()
		return m, nil
	}

	if m.input.Focused() {
		var cmd tea.Cmd
		m.input, cmd = m.input.Update(msg)
		return m, cmd
	}

	switch msg.String() {
	case "q":
		m.quitted = true
		return m, tea.Quit
	case "v":
		m.toggleVersion()
		return m, nil
	case "/", "i":
		return m, m.input.Focus()
	}
	return m, nil
}

// toggleVersion switches between the Material 2 and 3 stock themes. Derived
// schemes only exist for Material 3, so a seed must be cleared first.
func (m *Model) toggleVersion() {
	if m.source != "" {
		m.notice = "clear the seed to switch between Material 2 and 3"
		return
	}
	m.notice = ""
	if m.version == theme.V3 {
		m.version = theme.V2
	} else {
		m.version = theme.V3
	}
	m.apply("")
}
