// Copyright (c) 2026 Keymaster Team
// Keynav - keyboard-aware form navigation
// This source code is licensed under the MIT license found in the LICENSE file.

// Package sampleform is the demo form: one text field per controller field,
// labelled and numbered from 1.
package sampleform

import (
	coreform "github.com/toeirei/keynav/core/form"
	"github.com/toeirei/keynav/i18n"
	"github.com/toeirei/keynav/ui/tui/models/helpers/form"
	forminput "github.com/toeirei/keynav/ui/tui/models/helpers/form/input"
)

func New(ctrl *coreform.Controller) *form.Model {
	opts := make([]form.NewOpt, 0, ctrl.Len())
	for i := range ctrl.Len() {
		opts = append(opts, form.WithInput(forminput.NewText(
			i18n.T("form.label", i+1),
			i18n.T("form.placeholder", i+1),
		)))
	}
	return form.New(ctrl, opts...)
}
