// Copyright (c) 2026 Keymaster Team
// Keynav - keyboard-aware form navigation
// This source code is licensed under the MIT license found in the LICENSE file.
package config

import (
	"fmt"

	"github.com/toeirei/keynav/core/form"
	"github.com/toeirei/keynav/core/keyboard"
)

// KeyboardTable is the stock table with keyboard.types applied on top.
func (c Config) KeyboardTable() (keyboard.Table, error) {
	overrides, err := keyboard.ParseTable(c.Keyboard.Types)
	if err != nil {
		return nil, fmt.Errorf("keyboard.types: %w", err)
	}
	return keyboard.DefaultTable().Merge(overrides), nil
}

// NewController builds the form controller the settings describe.
func (c Config) NewController(opts ...form.Opt) (*form.Controller, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}
	table, err := c.KeyboardTable()
	if err != nil {
		return nil, err
	}

	all := []form.Opt{form.WithKeyboardTable(table)}
	if c.Navigation.Previous == PreviousLegacy {
		all = append(all, form.WithLegacyPrevious())
	}
	return form.New(c.Fields.Count, append(all, opts...)...)
}
