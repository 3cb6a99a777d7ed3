// Copyright (c) 2026 Keymaster Team
// Keynav - keyboard-aware form navigation
// This source code is licensed under the MIT license found in the LICENSE file.

// Package vkeyboard draws the on-screen keyboard and announces it the way a
// mobile platform would: a will-show notification carrying the end frame
// before it appears and a will-hide notification before it goes away.
package vkeyboard

import (
	"strings"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/toeirei/keynav/core/keyboard"
	"github.com/toeirei/keynav/core/notify"
	"github.com/toeirei/keynav/i18n"
	"github.com/toeirei/keynav/ui/tui/util"
	"github.com/toeirei/keynav/util/slicest"
)

// RequestMsg asks the keyboard to show itself with layout Type, or to hide.
type RequestMsg struct {
	Visible bool
	Type    keyboard.Type
}

func Request(visible bool, t keyboard.Type) tea.Cmd {
	return func() tea.Msg { return RequestMsg{Visible: visible, Type: t} }
}

var (
	panelStyle = lipgloss.NewStyle().
			Border(lipgloss.NormalBorder(), true, false, false, false).
			BorderForeground(lipgloss.Color("240"))
	titleStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
	keyStyle   = lipgloss.NewStyle().
			Foreground(lipgloss.Color("231")).
			Background(lipgloss.Color("237")).
			Padding(0, 1).
			MarginRight(1)
)

type Model struct {
	center  *notify.Center
	visible bool
	kind    keyboard.Type
	size    util.Size
}

func New(center *notify.Center) *Model {
	return &Model{center: center}
}

// FrameHeight is the number of lines the keyboard for t occupies: a border,
// a title and one line per key row.
func FrameHeight(t keyboard.Type) int {
	return len(keyboard.Layout(t)) + 2
}

func (m Model) Visible() bool { return m.visible }

func (m Model) Type() keyboard.Type { return m.kind }

func (m Model) Init() tea.Cmd {
	return nil
}

func (m *Model) Update(msg tea.Msg) tea.Cmd {
	if m.size.Update(msg) {
		return nil
	}

	if msg, ok := msg.(RequestMsg); ok {
		switch {
		case msg.Visible && (!m.visible || msg.Type != m.kind):
			m.visible, m.kind = true, msg.Type
			frame := notify.Rect{
				Width:  float64(m.size.Width),
				Height: float64(FrameHeight(msg.Type)),
			}
			m.center.Post(notify.KeyboardWillShowNotification(frame))
			m.center.Post(notify.Notification{Name: notify.KeyboardDidShow})
		case !msg.Visible && m.visible:
			m.visible = false
			m.center.Post(notify.KeyboardWillHideNotification())
			m.center.Post(notify.Notification{Name: notify.KeyboardDidHide})
		}
	}
	return nil
}

func (m Model) View() string {
	if !m.visible {
		return ""
	}

	title := titleStyle.Render(i18n.T("keyboard.title", i18n.T("keyboard_type."+m.kind.String())))
	rows := slicest.Map(keyboard.Layout(m.kind), func(row []string) string {
		caps := slicest.Map(row, func(k string) string {
			if strings.TrimSpace(k) == "" {
				k = " "
			}
			return keyStyle.Render(k)
		})
		return lipgloss.PlaceHorizontal(m.size.Width, lipgloss.Center, lipgloss.JoinHorizontal(lipgloss.Top, caps...))
	})

	return panelStyle.Render(
		lipgloss.JoinVertical(lipgloss.Left, append([]string{title}, rows...)...),
	)
}

func (m *Model) Focus() (tea.Cmd, help.KeyMap) {
	return nil, nil
}

func (m *Model) Blur() {}

var _ util.Model = (*Model)(nil)
