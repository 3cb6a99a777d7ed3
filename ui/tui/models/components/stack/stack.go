// Copyright (c) 2026 Keymaster Team
// Keynav - keyboard-aware form navigation
// This source code is licensed under the MIT license found in the LICENSE file.
package stack

import (
	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/toeirei/keynav/ui/tui/util"
	"github.com/toeirei/keynav/util/slicest"
)

const (
	Vertical   Orientation = true
	Horizontal Orientation = false
)

type Orientation bool

// Model lays its items out along one axis. Size messages are split between
// the items, mouse messages go to the item under the pointer and every other
// message is broadcast.
type Model struct {
	Orientation Orientation
	Align       lipgloss.Position
	Gap         int
	MsgFilters  []MsgFilter

	items        []Item
	size         util.Size
	focusedIndex Focus
}

type Item struct {
	Model      *util.Model
	SizeConfig SizeConfig
	MsgFilters []MsgFilter
	size       int
	oldSize    int
}

func (s Model) Init() tea.Cmd {
	return tea.Batch(slicest.Map(s.items, func(item Item) tea.Cmd {
		return (*item.Model).Init()
	})...)
}

func (s *Model) Update(msg tea.Msg) tea.Cmd {
	var cmds []tea.Cmd

	switch m := msg.(type) {
	case tea.WindowSizeMsg:
		s.size.Update(m)
		s.calculateItemSizes()
		return tea.Batch(s.updateResizedItems(true)...)
	case tea.MouseMsg:
		if i, translated, ok := s.mouseTarget(m); ok {
			cmds = append(cmds, s.updateItem(s.items[i], translated))
		}
	default:
		cmds = append(cmds, slicest.Map(s.items, func(item Item) tea.Cmd {
			return s.updateItem(item, msg)
		})...)
	}

	// items may have changed what their SizeConfig reports
	s.calculateItemSizes()
	cmds = append(cmds, s.updateResizedItems(false)...)

	return tea.Batch(cmds...)
}

func (s *Model) updateItem(item Item, msg tea.Msg) tea.Cmd {
	msg = applyMessageFilters(*item.Model, msg, item.MsgFilters)
	msg = applyMessageFilters(*item.Model, msg, s.MsgFilters)
	if msg == nil {
		return nil
	}
	return (*item.Model).Update(msg)
}

func (s Model) View() string {
	var joiner func(pos lipgloss.Position, strs ...string) string
	var styler func(size int, margin int) lipgloss.Style
	switch s.Orientation {
	case Vertical:
		joiner = lipgloss.JoinVertical
		styler = func(size int, margin int) lipgloss.Style {
			return lipgloss.
				NewStyle().
				Width(s.size.Width).
				Height(size).
				MaxWidth(s.size.Width).
				MaxHeight(size + margin).
				MarginTop(margin)
		}
	case Horizontal:
		joiner = lipgloss.JoinHorizontal
		styler = func(size int, margin int) lipgloss.Style {
			return lipgloss.
				NewStyle().
				Width(size).
				Height(s.size.Height).
				MaxWidth(size + margin).
				MaxHeight(s.size.Height).
				MarginLeft(margin)
		}
	}

	var rendered []string
	for _, item := range s.items {
		// collapsed items take no room at all, not even an empty line
		if item.size == 0 {
			continue
		}
		margin := 0
		if len(rendered) > 0 {
			margin = s.Gap
		}
		rendered = append(rendered, styler(item.size, margin).Render((*item.Model).View()))
	}

	return joiner(s.Align, rendered...)
}

// Sizes reports the size each item got in the last layout pass.
func (s Model) Sizes() []int {
	return slicest.Map(s.items, func(item Item) int { return item.size })
}

func (s *Model) Focus() (tea.Cmd, help.KeyMap) {
	if len(s.items) == 0 {
		return nil, nil
	}
	if s.focusedIndex == FocusAll() {
		cmds := make([]tea.Cmd, len(s.items))
		keyMaps := make([]help.KeyMap, len(s.items))

		for i, item := range s.items {
			cmds[i], keyMaps[i] = (*item.Model).Focus()
		}

		return tea.Batch(cmds...), util.MergeKeyMaps(keyMaps...)
	}
	return (*s.items[s.focusedIndex].Model).Focus()
}

func (s *Model) Blur() {
	if len(s.items) == 0 {
		return
	}
	if s.focusedIndex == FocusAll() {
		for _, item := range s.items {
			(*item.Model).Blur()
		}
	} else {
		(*s.items[s.focusedIndex].Model).Blur()
	}
}

var _ util.Model = (*Model)(nil)

type Focus int

func FocusAll() Focus        { return -1 }
func FocusIndex(i int) Focus { return Focus(i) }

func (s *Model) SetFocus(focus Focus) (tea.Cmd, help.KeyMap) {
	s.Blur()
	s.focusedIndex = util.Clamp(FocusAll(), focus, Focus(len(s.items)-1))
	return s.Focus()
}
