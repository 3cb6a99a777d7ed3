// Copyright (c) 2026 Keymaster Team
// Keynav - keyboard-aware form navigation
// This source code is licensed under the MIT license found in the LICENSE file.
package windowtitle

import tea "github.com/charmbracelet/bubbletea"

type titleMsg string

// Set replaces the variable part of the window title; "" leaves only the base.
func Set(title string) tea.Cmd {
	return func() tea.Msg { return titleMsg(title) }
}
