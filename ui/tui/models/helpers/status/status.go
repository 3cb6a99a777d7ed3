// Copyright (c) 2026 Keymaster Team
// Keynav - keyboard-aware form navigation
// This source code is licensed under the MIT license found in the LICENSE file.

// Package status carries one-line notices to the footer.
package status

import tea "github.com/charmbracelet/bubbletea"

type Msg struct {
	Text  string
	Error bool
}

func Info(text string) tea.Cmd {
	return func() tea.Msg { return Msg{Text: text} }
}

func Error(text string) tea.Cmd {
	return func() tea.Msg { return Msg{Text: text, Error: true} }
}
