// Copyright (c) 2026 Keymaster Team
// Keynav - keyboard-aware form navigation
// This source code is licensed under the MIT license found in the LICENSE file.
package form

import (
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/toeirei/keynav/i18n"
)

type KeyMap struct {
	Next   key.Binding
	Prev   key.Binding
	Done   key.Binding
	Submit key.Binding
	Focus  key.Binding
	Copy   key.Binding
	Scroll key.Binding
}

func (km KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{km.Prev, km.Next, km.Done, km.Submit, km.Focus, km.Scroll}
}

func (km KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{km.Prev, km.Next, km.Done},
		{km.Submit, km.Copy},
		{km.Focus, km.Scroll},
	}
}

var _ help.KeyMap = (*KeyMap)(nil)

// DefaultKeyMap builds the bindings with help texts in the active language.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Next: key.NewBinding(
			key.WithKeys("tab", "down", "ctrl+n"),
			key.WithHelp("tab/↓", i18n.T("help.next")),
		),
		Prev: key.NewBinding(
			key.WithKeys("shift+tab", "up", "ctrl+p"),
			key.WithHelp("shift+tab/↑", i18n.T("help.previous")),
		),
		Done: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", i18n.T("help.done")),
		),
		Submit: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", i18n.T("help.submit")),
		),
		Focus: key.NewBinding(
			key.WithKeys("enter", "1", "2", "3", "4", "5", "6", "7", "8", "9", "0"),
			key.WithHelp("enter/0-9", i18n.T("help.focus")),
		),
		Copy: key.NewBinding(
			key.WithKeys("ctrl+y"),
			key.WithHelp("ctrl+y", i18n.T("help.copy")),
		),
		Scroll: key.NewBinding(
			key.WithKeys("pgup", "pgdown"),
			key.WithHelp("pgup/pgdn", i18n.T("help.scroll")),
		),
	}
}

// update enables exactly the bindings that do something in the current
// state, mirroring the toolbar's disabled buttons.
func (km *KeyMap) update(focused, atFirst, atLast bool) {
	km.Next.SetEnabled(focused && !atLast)
	km.Prev.SetEnabled(focused && !atFirst)
	km.Done.SetEnabled(focused)
	km.Submit.SetEnabled(focused)
	km.Copy.SetEnabled(focused)
	km.Focus.SetEnabled(!focused)
	km.Scroll.SetEnabled(!focused)
}
