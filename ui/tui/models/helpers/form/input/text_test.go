// Copyright (c) 2026 Keymaster Team
// Keynav - keyboard-aware form navigation
// This source code is licensed under the MIT license found in the LICENSE file.
package forminput

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/stretchr/testify/require"
	"github.com/toeirei/keynav/ui/tui/models/helpers/form"
)

func TestText_EnterSubmitsAndEscIsDone(t *testing.T) {
	in := NewText("Text 1", "Enter Text 1")
	in.Focus()

	_, action := in.Update(tea.KeyMsg{Type: tea.KeyEnter})
	require.Equal(t, form.ActionSubmit, action)

	_, action = in.Update(tea.KeyMsg{Type: tea.KeyEsc})
	require.Equal(t, form.ActionDone, action)
}

func TestText_TypesOnlyWhileFocused(t *testing.T) {
	in := NewText("Text 1", "")

	in.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("a")})
	require.Empty(t, in.Get())

	in.Focus()
	require.True(t, in.Focused())
	in.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("ab")})
	require.Equal(t, "ab", in.Get())

	in.Blur()
	require.False(t, in.Focused())
}

func TestText_ViewMatchesHeightAndWidth(t *testing.T) {
	in := NewText("Text 10", "Enter Text 10")
	in.Set("hello")

	view := in.View(50)
	require.Equal(t, in.Height(), lipgloss.Height(view))
	require.Equal(t, 50, lipgloss.Width(view))
	require.Contains(t, view, "hello")
}
