// Copyright (c) 2026 Keymaster Team
// Keynav - keyboard-aware form navigation
// This source code is licensed under the MIT license found in the LICENSE file.

// Package toolbar is the accessory strip docked above the on-screen
// keyboard: Done on the left, previous and next on the right.
package toolbar

import (
	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/toeirei/keynav/ui/tui/util"
)

type Button int

const (
	ButtonDone Button = iota
	ButtonPrevious
	ButtonNext
)

// PressedMsg is sent when an enabled button is clicked.
type PressedMsg struct {
	Button Button
}

func Press(b Button) tea.Cmd {
	return func() tea.Msg { return PressedMsg{Button: b} }
}

// State is the part of the form the toolbar reflects.
type State interface {
	IsAtFirst() bool
	IsAtLast() bool
}

// Height is the number of lines the toolbar needs while shown.
const Height = 3

type Model struct {
	state   State
	buttons [3]button
	size    util.Size
}

func New(state State, done, previous, next string) *Model {
	return &Model{
		state: state,
		buttons: [3]button{
			ButtonDone:     newButton(done),
			ButtonPrevious: newButton(previous),
			ButtonNext:     newButton(next),
		},
	}
}

func (m Model) Init() tea.Cmd {
	return nil
}

func (m *Model) refresh() {
	m.buttons[ButtonPrevious].Disabled = m.state.IsAtFirst()
	m.buttons[ButtonNext].Disabled = m.state.IsAtLast()
}

func (m *Model) Update(msg tea.Msg) tea.Cmd {
	if m.size.Update(msg) {
		return nil
	}

	m.refresh()
	if msg, ok := msg.(tea.MouseMsg); ok && msg.Action == tea.MouseActionPress && msg.Button == tea.MouseButtonLeft {
		if b, ok := m.buttonAt(msg.X); ok && !m.buttons[b].Disabled {
			return Press(b)
		}
	}
	return nil
}

// layout returns the starting column of every button.
func (m Model) layout() [3]int {
	prevW := lipgloss.Width(m.buttons[ButtonPrevious].View())
	nextW := lipgloss.Width(m.buttons[ButtonNext].View())
	doneW := lipgloss.Width(m.buttons[ButtonDone].View())
	nextX := max(m.size.Width-nextW, doneW)
	prevX := max(nextX-prevW, doneW)
	return [3]int{ButtonDone: 0, ButtonPrevious: prevX, ButtonNext: nextX}
}

func (m Model) buttonAt(x int) (Button, bool) {
	starts := m.layout()
	for _, b := range []Button{ButtonDone, ButtonPrevious, ButtonNext} {
		w := lipgloss.Width(m.buttons[b].View())
		if x >= starts[b] && x < starts[b]+w {
			return b, true
		}
	}
	return 0, false
}

func (m Model) View() string {
	m.refresh()
	starts := m.layout()
	done := m.buttons[ButtonDone].View()
	gap := starts[ButtonPrevious] - lipgloss.Width(done)

	return lipgloss.JoinHorizontal(
		lipgloss.Top,
		done,
		lipgloss.NewStyle().Width(gap).Render(""),
		m.buttons[ButtonPrevious].View(),
		m.buttons[ButtonNext].View(),
	)
}

func (m *Model) Focus() (tea.Cmd, help.KeyMap) {
	return nil, nil
}

func (m *Model) Blur() {}

var _ util.Model = (*Model)(nil)
