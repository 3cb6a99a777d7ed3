// Copyright (c) 2026 Keymaster Team
// Keynav - keyboard-aware form navigation
// This source code is licensed under the MIT license found in the LICENSE file.
package config

import (
	"testing"

	"github.com/toeirei/keynav/core/keyboard"
)

func TestKeyboardTable_AppliesOverrides(t *testing.T) {
	c := Default()
	c.Keyboard.Types = map[string]string{"0": "email", "2": "default"}

	table, err := c.KeyboardTable()
	if err != nil {
		t.Fatal(err)
	}
	if got := table.Lookup(0); got != keyboard.EmailAddress {
		t.Errorf("field 0: got %v", got)
	}
	if got := table.Lookup(2); got != keyboard.Default {
		t.Errorf("field 2: got %v", got)
	}
	if got := table.Lookup(3); got != keyboard.DecimalPad {
		t.Errorf("field 3 should keep the stock entry, got %v", got)
	}
}

func TestKeyboardTable_RejectsUnknownType(t *testing.T) {
	c := Default()
	c.Keyboard.Types = map[string]string{"1": "braille"}
	if _, err := c.KeyboardTable(); err == nil {
		t.Fatal("expected an error for an unknown keyboard type")
	}
}

func TestNewController_PreviousMode(t *testing.T) {
	c := Default()
	c.Fields.Count = 3
	c.Navigation.Previous = PreviousLegacy

	ctrl, err := c.NewController()
	if err != nil {
		t.Fatal(err)
	}
	if ctrl.Len() != 3 {
		t.Fatalf("expected 3 fields, got %d", ctrl.Len())
	}
	if err := ctrl.FocusField(0); err != nil {
		t.Fatal(err)
	}
	ctrl.Previous()
	if _, ok := ctrl.Focused(); ok {
		t.Fatal("legacy previous on the first field must leave no usable focus")
	}

	c.Navigation.Previous = PreviousClamp
	ctrl, err = c.NewController()
	if err != nil {
		t.Fatal(err)
	}
	_ = ctrl.FocusField(0)
	ctrl.Previous()
	if i, ok := ctrl.Focused(); !ok || i != 0 {
		t.Fatalf("clamped previous should stay on field 0, got %d %v", i, ok)
	}
}

func TestNewController_InvalidConfig(t *testing.T) {
	c := Default()
	c.Fields.Count = 0
	if _, err := c.NewController(); err == nil {
		t.Fatal("expected validation error")
	}
}
