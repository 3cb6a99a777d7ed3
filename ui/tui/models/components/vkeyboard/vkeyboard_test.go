// Copyright (c) 2026 Keymaster Team
// Keynav - keyboard-aware form navigation
// This source code is licensed under the MIT license found in the LICENSE file.
package vkeyboard

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/stretchr/testify/require"
	"github.com/toeirei/keynav/core/keyboard"
	"github.com/toeirei/keynav/core/notify"
	"github.com/toeirei/keynav/i18n"
)

func TestKeyboard_PostsShowAndHide(t *testing.T) {
	i18n.Init("en")
	center := notify.NewCenter()
	var posted []notify.Name
	var frames []notify.Rect
	for _, name := range []notify.Name{notify.KeyboardWillShow, notify.KeyboardDidShow, notify.KeyboardWillHide, notify.KeyboardDidHide} {
		center.Subscribe(name, func(n notify.Notification) {
			posted = append(posted, n.Name)
			if frame, ok := n.UserInfo[notify.KeyboardFrameEndKey].(notify.Rect); ok {
				frames = append(frames, frame)
			}
		})
	}

	m := New(center)
	m.Update(tea.WindowSizeMsg{Width: 60, Height: 10})

	m.Update(RequestMsg{Visible: true, Type: keyboard.NumberPad})
	require.True(t, m.Visible())
	require.Equal(t, []notify.Name{notify.KeyboardWillShow, notify.KeyboardDidShow}, posted)
	require.Equal(t, []notify.Rect{{Width: 60, Height: float64(FrameHeight(keyboard.NumberPad))}}, frames)

	// same keyboard again: nothing to announce
	m.Update(RequestMsg{Visible: true, Type: keyboard.NumberPad})
	require.Len(t, posted, 2)

	// switching layouts re-announces the new frame
	m.Update(RequestMsg{Visible: true, Type: keyboard.EmailAddress})
	require.Len(t, posted, 4)
	require.Equal(t, keyboard.EmailAddress, m.Type())

	m.Update(RequestMsg{Visible: false})
	require.False(t, m.Visible())
	require.Equal(t, []notify.Name{notify.KeyboardWillHide, notify.KeyboardDidHide}, posted[4:])

	m.Update(RequestMsg{Visible: false})
	require.Len(t, posted, 6, "hiding a hidden keyboard posts nothing")
}

func TestKeyboard_ViewMatchesFrameHeight(t *testing.T) {
	i18n.Init("en")
	m := New(notify.NewCenter())
	m.Update(tea.WindowSizeMsg{Width: 60, Height: 10})
	require.Empty(t, m.View())

	for _, kt := range keyboard.Types() {
		m.Update(RequestMsg{Visible: true, Type: kt})
		view := m.View()
		require.Equal(t, FrameHeight(kt), lipgloss.Height(view), "height of %v", kt)
	}

	m.Update(RequestMsg{Visible: true, Type: keyboard.DecimalPad})
	require.Contains(t, m.View(), "Decimal pad")
}

func TestRequest(t *testing.T) {
	msg := Request(true, keyboard.WebSearch)()
	require.Equal(t, RequestMsg{Visible: true, Type: keyboard.WebSearch}, msg)
}
