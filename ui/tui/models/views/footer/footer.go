// Copyright (c) 2026 Keymaster Team
// Keynav - keyboard-aware form navigation
// This source code is licensed under the MIT license found in the LICENSE file.
package footer

import (
	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/toeirei/keynav/ui/tui/models/components/keyhelp"
	"github.com/toeirei/keynav/ui/tui/models/helpers/status"
	"github.com/toeirei/keynav/ui/tui/util"
)

var (
	infoStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("42"))
	errorStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("196"))
)

type Model struct {
	baseKeyMap help.KeyMap
	size       util.Size
	help       *keyhelp.Model
	status     status.Msg
}

func New(baseKeyMap help.KeyMap) *Model {
	return &Model{
		baseKeyMap: baseKeyMap,
		help:       keyhelp.New(),
	}
}

func (m Model) Init() tea.Cmd {
	return nil
}

func (m *Model) Update(msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case util.AnnounceKeyMapMsg:
		// inject baseKeyMap
		return m.help.Update(util.AnnounceKeyMapMsg{
			KeyMap: util.MergeKeyMaps(msg.KeyMap, m.baseKeyMap),
		})
	case status.Msg:
		m.status = msg
		return nil
	case tea.KeyMsg:
		m.status = status.Msg{}
		return nil
	}

	m.size.Update(msg)
	return m.help.Update(msg)
}

// Status is the notice currently shown, if any.
func (m Model) Status() status.Msg {
	return m.status
}

func (m Model) view() string {
	if m.status.Text == "" {
		return m.help.View()
	}
	style := infoStyle
	if m.status.Error {
		style = errorStyle
	}
	return lipgloss.JoinVertical(lipgloss.Left,
		style.MaxWidth(m.size.Width).Render(m.status.Text),
		m.help.View(),
	)
}

func (m Model) View() string {
	h_pos := lipgloss.Left
	if m.help.Expanded {
		h_pos = lipgloss.Center
	}

	return lipgloss.
		NewStyle().
		BorderStyle(lipgloss.NormalBorder()).
		BorderTop(true).
		Render(lipgloss.Place(
			m.size.Width, max(m.size.Height-1, 0),
			h_pos, lipgloss.Top,
			m.view(),
		))
}

func (m *Model) Focus() (tea.Cmd, help.KeyMap) {
	return nil, nil
}

func (m *Model) Blur() {}

var _ util.Model = (*Model)(nil)

func (m *Model) ToggleExpanded() {
	m.help.ToggleExpanded()
}

func (m Model) Expanded() bool {
	return m.help.Expanded
}
