// Copyright (c) 2026 Keymaster Team
// Keynav - keyboard-aware form navigation
// This source code is licensed under the MIT license found in the LICENSE file.
package form

import (
	"github.com/charmbracelet/bubbles/viewport"
	coreform "github.com/toeirei/keynav/core/form"
)

type NewOpt = func(form *Model)

// New builds a form view over ctrl. Inputs are matched to controller fields
// by position; extra inputs are ignored and missing ones are an error of the
// caller.
func New(ctrl *coreform.Controller, opts ...NewOpt) *Model {
	form := &Model{
		KeyMap:   DefaultKeyMap(),
		ctrl:     ctrl,
		shown:    ctrl.Focus(),
		viewport: viewport.New(0, 0),
	}
	for _, opt := range opts {
		opt(form)
	}
	if len(form.inputs) > ctrl.Len() {
		form.inputs = form.inputs[:ctrl.Len()]
	}
	_, focused := ctrl.Focused()
	form.KeyMap.update(focused, ctrl.IsAtFirst(), ctrl.IsAtLast())
	for i, input := range form.inputs {
		if v, err := ctrl.Value(i); err == nil {
			input.Set(v)
		}
	}
	return form
}

func WithInput(input FormInput) NewOpt {
	return func(form *Model) {
		form.inputs = append(form.inputs, input)
	}
}

func WithKeyMap(keyMap KeyMap) NewOpt {
	return func(form *Model) {
		form.KeyMap = keyMap
	}
}
