// Copyright (c) 2026 Keymaster Team
// Keynav - keyboard-aware form navigation
// This source code is licensed under the MIT license found in the LICENSE file.
package toolbar

import (
	"github.com/charmbracelet/lipgloss"
)

type button struct {
	Label    string
	Disabled bool

	DisabledStyle lipgloss.Style
	EnabledStyle  lipgloss.Style
}

func newButton(label string) button {
	base := lipgloss.NewStyle().
		Padding(0, 2).
		Border(lipgloss.RoundedBorder())
	return button{
		Label: label,
		DisabledStyle: base.
			BorderForeground(lipgloss.Color("238")).
			Foreground(lipgloss.Color("238")),
		EnabledStyle: base.
			BorderForeground(lipgloss.Color("205")).
			Foreground(lipgloss.Color("205")).
			Bold(true),
	}
}

func (b button) View() string {
	if b.Disabled {
		return b.DisabledStyle.Render(b.Label)
	}
	return b.EnabledStyle.Render(b.Label)
}
