// Copyright (c) 2026 Keymaster Team
// Keynav - keyboard-aware form navigation
// This source code is licensed under the MIT license found in the LICENSE file.

// Package form renders a core form controller as a scrollable column of
// inputs and translates keys, clicks and toolbar presses into controller
// calls. The controller stays the single owner of focus; the inputs only
// mirror it.
package form

import (
	"strings"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	coreform "github.com/toeirei/keynav/core/form"
	"github.com/toeirei/keynav/i18n"
	"github.com/toeirei/keynav/ui/tui/models/components/toolbar"
	"github.com/toeirei/keynav/ui/tui/models/components/vkeyboard"
	"github.com/toeirei/keynav/ui/tui/models/helpers/status"
	windowtitle "github.com/toeirei/keynav/ui/tui/models/helpers/title"
	"github.com/toeirei/keynav/ui/tui/util"
)

type FormInput interface {
	Title() string
	Focus() tea.Cmd
	Blur()
	Focused() bool
	Update(msg tea.Msg) (tea.Cmd, Action)
	Set(string)
	Get() string
	Height() int
	View(width int) string
}

// rowGap is the number of blank lines between two inputs.
const rowGap = 1

// writeClipboard is swapped out in tests.
var writeClipboard = clipboard.WriteAll

type Model struct {
	KeyMap KeyMap

	ctrl     *coreform.Controller
	inputs   []FormInput
	shown    coreform.Focus
	viewport viewport.Model
	size     util.Size
}

func (f Model) Init() tea.Cmd {
	return f.announce()
}

func (f *Model) Update(msg tea.Msg) tea.Cmd {
	if f.size.Update(msg) {
		f.viewport.Width, f.viewport.Height = f.size.Width, f.size.Height
		f.render()
		f.scrollToFocus()
		return nil
	}

	var cmd tea.Cmd
	switch msg := msg.(type) {
	case toolbar.PressedMsg:
		f.press(msg.Button)
	case tea.KeyMsg:
		cmd = f.handleKey(msg)
	case tea.MouseMsg:
		cmd = f.handleMouse(msg)
	default:
		// cursor blink and friends
		if i, ok := f.ctrl.Focused(); ok {
			cmd, _ = f.inputs[i].Update(msg)
		}
	}

	syncCmd := f.sync()
	f.render()
	return tea.Batch(cmd, syncCmd)
}

func (f *Model) press(b toolbar.Button) {
	switch b {
	case toolbar.ButtonDone:
		f.ctrl.Done()
	case toolbar.ButtonPrevious:
		f.ctrl.Previous()
	case toolbar.ButtonNext:
		f.ctrl.Next()
	}
}

func (f *Model) handleKey(msg tea.KeyMsg) tea.Cmd {
	i, focused := f.ctrl.Focused()
	if !focused {
		switch {
		case key.Matches(msg, f.KeyMap.Focus):
			f.focusFromKey(msg.String())
		case key.Matches(msg, f.KeyMap.Scroll):
			step := max(f.viewport.Height/2, 1)
			if msg.String() == "pgup" {
				step = -step
			}
			f.viewport.SetYOffset(f.viewport.YOffset + step)
		}
		return nil
	}

	switch {
	case key.Matches(msg, f.KeyMap.Next):
		f.ctrl.Next()
		return nil
	case key.Matches(msg, f.KeyMap.Prev):
		f.ctrl.Previous()
		return nil
	case key.Matches(msg, f.KeyMap.Copy):
		return copyCmd(i, f.inputs[i].Get())
	}

	cmd, action := f.inputs[i].Update(msg)
	_ = f.ctrl.SetValue(i, f.inputs[i].Get())

	switch action {
	case ActionNext:
		f.ctrl.Next()
	case ActionPrev:
		f.ctrl.Previous()
	case ActionSubmit:
		f.ctrl.Submit(i)
		return tea.Batch(cmd, status.Info(i18n.T("status.submitted", i+1)))
	case ActionDone:
		f.ctrl.Done()
	}
	return cmd
}

// focusFromKey maps enter to the first field and 1..9, 0 to fields 0..9.
func (f *Model) focusFromKey(k string) {
	target := 0
	if len(k) == 1 && k[0] >= '0' && k[0] <= '9' {
		target = (int(k[0]-'0') + 9) % 10
	}
	_ = f.ctrl.FocusField(target)
}

func (f *Model) handleMouse(msg tea.MouseMsg) tea.Cmd {
	if msg.Action != tea.MouseActionPress {
		return nil
	}
	if msg.Button != tea.MouseButtonLeft {
		var cmd tea.Cmd
		f.viewport, cmd = f.viewport.Update(msg)
		return cmd
	}

	y := msg.Y + f.viewport.YOffset
	for i, input := range f.inputs {
		top := f.rowTop(i)
		if y >= top && y < top+input.Height() {
			_ = f.ctrl.FocusField(i)
			break
		}
	}
	return nil
}

func copyCmd(index int, value string) tea.Cmd {
	return func() tea.Msg {
		if err := writeClipboard(value); err != nil {
			return status.Msg{Text: i18n.T("status.copy_failed", err), Error: true}
		}
		return status.Msg{Text: i18n.T("status.copied", index+1)}
	}
}

// sync moves input focus to match the controller and announces what
// changed: the keyboard to show, the active key bindings and the window
// title.
func (f *Model) sync() tea.Cmd {
	want := f.ctrl.Focus()
	if want == f.shown {
		return nil
	}

	if f.shown.Set && f.shown.Index >= 0 && f.shown.Index < len(f.inputs) {
		f.inputs[f.shown.Index].Blur()
	}
	f.shown = want

	var cmds []tea.Cmd
	title := ""
	if i, ok := f.ctrl.Focused(); ok {
		cmds = append(cmds, f.inputs[i].Focus())
		title = f.inputs[i].Title()
		f.scrollToFocus()
	}

	_, visible := f.ctrl.Focused()
	cmds = append(cmds,
		vkeyboard.Request(visible, f.ctrl.FocusedKeyboardType()),
		windowtitle.Set(title),
		f.announce(),
	)
	return tea.Batch(cmds...)
}

func (f *Model) announce() tea.Cmd {
	_, focused := f.ctrl.Focused()
	f.KeyMap.update(focused, f.ctrl.IsAtFirst(), f.ctrl.IsAtLast())
	return util.AnnounceKeyMapCmd(f.KeyMap)
}

func (f Model) rowTop(i int) int {
	top := 0
	for _, input := range f.inputs[:i] {
		top += input.Height() + rowGap
	}
	return top
}

// scrollToFocus keeps the focused row inside the viewport.
func (f *Model) scrollToFocus() {
	i, ok := f.ctrl.Focused()
	if !ok || f.viewport.Height <= 0 {
		return
	}
	top := f.rowTop(i)
	bottom := top + f.inputs[i].Height()
	switch {
	case top < f.viewport.YOffset:
		f.viewport.SetYOffset(top)
	case bottom > f.viewport.YOffset+f.viewport.Height:
		f.viewport.SetYOffset(bottom - f.viewport.Height)
	}
}

func (f *Model) render() {
	rows := make([]string, 0, len(f.inputs))
	for _, input := range f.inputs {
		rows = append(rows, input.View(f.size.Width))
	}
	f.viewport.SetContent(strings.Join(rows, strings.Repeat("\n", rowGap+1)))
}

func (f Model) View() string {
	return f.viewport.View()
}

// YOffset is the first content line currently visible.
func (f Model) YOffset() int {
	return f.viewport.YOffset
}

func (f *Model) Focus() (tea.Cmd, help.KeyMap) {
	_, focused := f.ctrl.Focused()
	f.KeyMap.update(focused, f.ctrl.IsAtFirst(), f.ctrl.IsAtLast())
	return nil, f.KeyMap
}

func (f *Model) Blur() {}

var _ util.Model = (*Model)(nil)
