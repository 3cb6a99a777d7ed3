// Copyright (c) 2026 Keymaster Team
// Keynav - keyboard-aware form navigation
// This source code is licensed under the MIT license found in the LICENSE file.
package stack

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/toeirei/keynav/ui/tui/util"
	"github.com/toeirei/keynav/util/slicest"
)

// MsgFilter may rewrite msg before model sees it; returning nil drops it.
type MsgFilter = func(model util.Model, msg tea.Msg) tea.Msg

func applyMessageFilters(model util.Model, msg tea.Msg, msgFilters []MsgFilter) tea.Msg {
	return slicest.ReduceD(msgFilters, msg, func(msgFilter MsgFilter, msg tea.Msg) tea.Msg {
		if msg == nil {
			return nil
		}
		return msgFilter(model, msg)
	})
}

// mouseTarget returns the item under the pointer and msg translated into
// that item's coordinates.
func (s *Model) mouseTarget(msg tea.MouseMsg) (int, tea.MouseMsg, bool) {
	offset := 0
	for i, item := range s.items {
		if item.size == 0 {
			continue
		}
		if i > 0 {
			offset += s.Gap
		}
		pos := msg.X
		if s.Orientation == Vertical {
			pos = msg.Y
		}
		if pos >= offset && pos < offset+item.size {
			if s.Orientation == Vertical {
				msg.Y -= offset
			} else {
				msg.X -= offset
			}
			return i, msg, true
		}
		offset += item.size
	}
	return 0, msg, false
}
