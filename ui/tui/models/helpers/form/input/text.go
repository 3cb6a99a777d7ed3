// Copyright (c) 2026 Keymaster Team
// Keynav - keyboard-aware form navigation
// This source code is licensed under the MIT license found in the LICENSE file.
package forminput

import (
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/toeirei/keynav/ui/tui/models/helpers/form"
)

const labelWidth = 10

var (
	labelStyle = lipgloss.NewStyle().
			Width(labelWidth).
			Bold(true)
	boxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("240")).
			Padding(0, 1)
	focusedBoxStyle = boxStyle.
			BorderForeground(lipgloss.Color("205"))
)

// Text is one labelled row: a fixed-width label and a bordered text field.
type Text struct {
	Label       string
	Placeholder string
	KeyMap      TextKeyMap

	input textinput.Model
}

type TextKeyMap struct {
	Submit key.Binding
	Done   key.Binding
}

func NewText(label, placeholder string) *Text {
	input := textinput.New()
	input.Prompt = ""
	input.Placeholder = placeholder
	return &Text{
		Label:       label,
		Placeholder: placeholder,
		KeyMap: TextKeyMap{
			Submit: key.NewBinding(key.WithKeys("enter")),
			Done:   key.NewBinding(key.WithKeys("esc")),
		},
		input: input,
	}
}

func (t *Text) Title() string { return t.Label }

func (t *Text) Focus() tea.Cmd {
	return t.input.Focus()
}

func (t *Text) Blur() {
	t.input.Blur()
}

func (t *Text) Focused() bool {
	return t.input.Focused()
}

func (t *Text) Get() string {
	return t.input.Value()
}

func (t *Text) Set(value string) {
	t.input.SetValue(value)
}

func (t *Text) Update(msg tea.Msg) (tea.Cmd, form.Action) {
	if msg, ok := msg.(tea.KeyMsg); ok {
		switch {
		case key.Matches(msg, t.KeyMap.Submit):
			return nil, form.ActionSubmit
		case key.Matches(msg, t.KeyMap.Done):
			return nil, form.ActionDone
		}
	}

	var cmd tea.Cmd
	t.input, cmd = t.input.Update(msg)
	return cmd, form.ActionNone
}

// Height is the number of lines View renders.
func (t *Text) Height() int { return 3 }

func (t *Text) View(width int) string {
	box := boxStyle
	if t.input.Focused() {
		box = focusedBoxStyle
	}

	// border and padding take two columns each side
	inner := max(width-labelWidth-4, 1)
	t.input.Width = max(inner-1, 1)

	return lipgloss.JoinHorizontal(
		lipgloss.Center,
		labelStyle.Render(t.Label),
		box.Width(inner+2).Render(t.input.View()),
	)
}

var _ form.FormInput = (*Text)(nil)
