// Copyright (c) 2026 Keymaster Team
// Keynav - keyboard-aware form navigation
// This source code is licensed under the MIT license found in the LICENSE file.
package form

import (
	"errors"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/require"
	coreform "github.com/toeirei/keynav/core/form"
	"github.com/toeirei/keynav/core/keyboard"
	"github.com/toeirei/keynav/ui/tui/models/components/toolbar"
	"github.com/toeirei/keynav/ui/tui/models/components/vkeyboard"
	"github.com/toeirei/keynav/ui/tui/models/helpers/status"
)

type fakeInput struct {
	title   string
	value   string
	focused bool
}

func (f *fakeInput) Title() string  { return f.title }
func (f *fakeInput) Focus() tea.Cmd { f.focused = true; return nil }
func (f *fakeInput) Blur()          { f.focused = false }
func (f *fakeInput) Focused() bool  { return f.focused }
func (f *fakeInput) Set(v string)   { f.value = v }
func (f *fakeInput) Get() string    { return f.value }
func (f *fakeInput) Height() int    { return 3 }
func (f *fakeInput) View(int) string {
	return "a\nb\nc"
}

func (f *fakeInput) Update(msg tea.Msg) (tea.Cmd, Action) {
	km, ok := msg.(tea.KeyMsg)
	if !ok {
		return nil, ActionNone
	}
	switch km.Type {
	case tea.KeyEnter:
		return nil, ActionSubmit
	case tea.KeyEsc:
		return nil, ActionDone
	case tea.KeyRunes:
		f.value += string(km.Runes)
	}
	return nil, ActionNone
}

func newTestForm(t *testing.T, n int, opts ...coreform.Opt) (*Model, *coreform.Controller, []*fakeInput) {
	t.Helper()
	ctrl, err := coreform.New(n, opts...)
	require.NoError(t, err)

	inputs := make([]*fakeInput, n)
	formOpts := make([]NewOpt, n)
	for i := range inputs {
		inputs[i] = &fakeInput{title: string(rune('A' + i))}
		formOpts[i] = WithInput(inputs[i])
	}
	f := New(ctrl, formOpts...)
	f.Update(tea.WindowSizeMsg{Width: 40, Height: 8})
	return f, ctrl, inputs
}

func keyMsg(s string) tea.KeyMsg {
	switch s {
	case "tab":
		return tea.KeyMsg{Type: tea.KeyTab}
	case "shift+tab":
		return tea.KeyMsg{Type: tea.KeyShiftTab}
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEsc}
	case "ctrl+y":
		return tea.KeyMsg{Type: tea.KeyCtrlY}
	}
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

// collect runs cmd and flattens batches into their messages.
func collect(cmd tea.Cmd) []tea.Msg {
	if cmd == nil {
		return nil
	}
	msg := cmd()
	if batch, ok := msg.(tea.BatchMsg); ok {
		var out []tea.Msg
		for _, c := range batch {
			out = append(out, collect(c)...)
		}
		return out
	}
	return []tea.Msg{msg}
}

func findMsg[T any](msgs []tea.Msg) (T, bool) {
	for _, m := range msgs {
		if t, ok := m.(T); ok {
			return t, true
		}
	}
	var zero T
	return zero, false
}

func TestForm_EnterFocusesFirstField(t *testing.T) {
	f, ctrl, inputs := newTestForm(t, 3)

	msgs := collect(f.Update(keyMsg("enter")))

	i, ok := ctrl.Focused()
	require.True(t, ok)
	require.Equal(t, 0, i)
	require.True(t, inputs[0].focused)

	req, ok := findMsg[vkeyboard.RequestMsg](msgs)
	require.True(t, ok)
	require.True(t, req.Visible)
	require.Equal(t, keyboard.Default, req.Type)
}

func TestForm_DigitsFocusFields(t *testing.T) {
	f, ctrl, _ := newTestForm(t, 12)

	f.Update(keyMsg("3"))
	i, _ := ctrl.Focused()
	require.Equal(t, 2, i)

	f.Update(keyMsg("esc"))
	f.Update(keyMsg("0"))
	i, _ = ctrl.Focused()
	require.Equal(t, 9, i)
}

func TestForm_TabMovesFocusAndBlursPrevious(t *testing.T) {
	f, ctrl, inputs := newTestForm(t, 3)
	require.NoError(t, ctrl.FocusField(1))
	f.Update(nil)

	msgs := collect(f.Update(keyMsg("tab")))

	i, _ := ctrl.Focused()
	require.Equal(t, 2, i)
	require.False(t, inputs[1].focused)
	require.True(t, inputs[2].focused)

	req, ok := findMsg[vkeyboard.RequestMsg](msgs)
	require.True(t, ok)
	require.Equal(t, keyboard.NumberPad, req.Type)

	f.Update(keyMsg("shift+tab"))
	i, _ = ctrl.Focused()
	require.Equal(t, 1, i)
}

func TestForm_EscHidesKeyboard(t *testing.T) {
	f, ctrl, inputs := newTestForm(t, 2)
	f.Update(keyMsg("enter"))

	msgs := collect(f.Update(keyMsg("esc")))

	_, ok := ctrl.Focused()
	require.False(t, ok)
	require.False(t, inputs[0].focused)
	req, found := findMsg[vkeyboard.RequestMsg](msgs)
	require.True(t, found)
	require.False(t, req.Visible)
}

func TestForm_TypingWritesThroughToController(t *testing.T) {
	f, ctrl, _ := newTestForm(t, 2)
	f.Update(keyMsg("enter"))

	f.Update(keyMsg("h"))
	f.Update(keyMsg("i"))

	require.Equal(t, []string{"hi", ""}, ctrl.Values())
}

func TestForm_SubmitKeepsFocus(t *testing.T) {
	var submitted []int
	f, ctrl, _ := newTestForm(t, 2, coreform.WithOnSubmit(func(i int, _ string) {
		submitted = append(submitted, i)
	}))
	f.Update(keyMsg("enter"))

	msgs := collect(f.Update(keyMsg("enter")))

	i, ok := ctrl.Focused()
	require.True(t, ok)
	require.Equal(t, 0, i)
	require.Equal(t, []int{0}, submitted)
	_, found := findMsg[status.Msg](msgs)
	require.True(t, found)
}

func TestForm_ToolbarPresses(t *testing.T) {
	f, ctrl, _ := newTestForm(t, 3)
	require.NoError(t, ctrl.FocusField(1))

	f.Update(toolbar.PressedMsg{Button: toolbar.ButtonNext})
	i, _ := ctrl.Focused()
	require.Equal(t, 2, i)

	f.Update(toolbar.PressedMsg{Button: toolbar.ButtonPrevious})
	i, _ = ctrl.Focused()
	require.Equal(t, 1, i)

	f.Update(toolbar.PressedMsg{Button: toolbar.ButtonDone})
	_, ok := ctrl.Focused()
	require.False(t, ok)
}

func TestForm_ClickFocusesRow(t *testing.T) {
	f, ctrl, _ := newTestForm(t, 3)

	// rows are three lines high with one blank line between them
	f.Update(tea.MouseMsg{X: 5, Y: 5, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft})

	i, ok := ctrl.Focused()
	require.True(t, ok)
	require.Equal(t, 1, i)

	f.Update(tea.MouseMsg{X: 5, Y: 3, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft})
	i, _ = ctrl.Focused()
	require.Equal(t, 1, i)
}

func TestForm_ScrollsFocusedRowIntoView(t *testing.T) {
	f, ctrl, _ := newTestForm(t, 5)

	require.NoError(t, ctrl.FocusField(4))
	f.Update(nil)

	// row 4 spans lines 16..18, the viewport is 8 lines high
	require.Equal(t, 11, f.YOffset())

	require.NoError(t, ctrl.FocusField(0))
	f.Update(nil)
	require.Equal(t, 0, f.YOffset())
}

func TestForm_KeyMapFollowsPosition(t *testing.T) {
	f, ctrl, _ := newTestForm(t, 2)
	require.False(t, f.KeyMap.Next.Enabled())
	require.True(t, f.KeyMap.Focus.Enabled())

	require.NoError(t, ctrl.FocusField(0))
	f.Update(nil)
	require.True(t, f.KeyMap.Next.Enabled())
	require.False(t, f.KeyMap.Prev.Enabled())
	require.False(t, f.KeyMap.Focus.Enabled())

	f.Update(keyMsg("tab"))
	require.False(t, f.KeyMap.Next.Enabled())
	require.True(t, f.KeyMap.Prev.Enabled())
}

func TestForm_CopyReportsClipboardResult(t *testing.T) {
	orig := writeClipboard
	t.Cleanup(func() { writeClipboard = orig })
	var written string
	writeClipboard = func(s string) error { written = s; return nil }

	f, ctrl, inputs := newTestForm(t, 2)
	require.NoError(t, ctrl.FocusField(1))
	f.Update(nil)
	inputs[1].Set("x")

	msgs := collect(f.Update(keyMsg("ctrl+y")))
	st, ok := findMsg[status.Msg](msgs)
	require.True(t, ok)
	require.False(t, st.Error)
	require.Equal(t, "x", written)

	writeClipboard = func(string) error { return errors.New("no clipboard") }
	msgs = collect(f.Update(keyMsg("ctrl+y")))
	st, _ = findMsg[status.Msg](msgs)
	require.True(t, st.Error)
}
