// Copyright (c) 2026 Keymaster Team
// Keynav - keyboard-aware form navigation
// This source code is licensed under the MIT license found in the LICENSE file.
package cli

import (
	"bytes"
	"context"
	"os"
	"strings"
	"testing"

	"github.com/toeirei/keynav/config"
)

// isolate keeps config discovery away from the developer's real files.
func isolate(t *testing.T) {
	t.Helper()
	dir := t.TempDir()
	t.Setenv("HOME", dir)
	t.Setenv("XDG_CONFIG_HOME", dir)
	t.Chdir(dir)
}

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cmd := NewRootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestRoot_RefusesWithoutTerminal(t *testing.T) {
	isolate(t)
	origTerm, origRun := isTerminal, runTUI
	t.Cleanup(func() { isTerminal, runTUI = origTerm, origRun })

	isTerminal = func() bool { return false }
	runTUI = func(context.Context, config.Config) error {
		t.Fatal("TUI must not start without a terminal")
		return nil
	}

	if _, err := execute(t); err == nil {
		t.Fatal("expected an error when stdout is not a terminal")
	}
}

func TestRoot_FlagsReachTheTUI(t *testing.T) {
	isolate(t)
	origTerm, origRun := isTerminal, runTUI
	t.Cleanup(func() { isTerminal, runTUI = origTerm, origRun })

	var got config.Config
	isTerminal = func() bool { return true }
	runTUI = func(_ context.Context, c config.Config) error {
		got = c
		return nil
	}

	if _, err := execute(t, "--fields", "4", "--previous", "legacy", "--lang", "de"); err != nil {
		t.Fatal(err)
	}
	if got.Fields.Count != 4 || got.Navigation.Previous != config.PreviousLegacy || got.Language != "de" {
		t.Fatalf("flags not applied: %+v", got)
	}
}

func TestRoot_RejectsInvalidPreviousMode(t *testing.T) {
	isolate(t)
	if _, err := execute(t, "keyboard-types", "--previous", "wrap"); err == nil {
		t.Fatal("expected a validation error")
	}
}

func TestRoot_MissingConfigFlagFile(t *testing.T) {
	isolate(t)
	_, err := execute(t, "keyboard-types", "--config", "does-not-exist.yaml")
	if err == nil || !strings.Contains(err.Error(), "--config") {
		t.Fatalf("expected a --config error, got %v", err)
	}
}

func TestRoot_EmptyConfigFileUsesDefaults(t *testing.T) {
	isolate(t)
	origTerm, origRun := isTerminal, runTUI
	t.Cleanup(func() { isTerminal, runTUI = origTerm, origRun })

	if err := os.WriteFile("empty.yaml", nil, 0o644); err != nil {
		t.Fatal(err)
	}
	var got config.Config
	isTerminal = func() bool { return true }
	runTUI = func(_ context.Context, c config.Config) error {
		got = c
		return nil
	}

	if _, err := execute(t, "--config", "empty.yaml", "--previous", "legacy"); err != nil {
		t.Fatal(err)
	}
	if got.Fields.Count != 10 || got.Navigation.Previous != config.PreviousLegacy {
		t.Fatalf("expected defaults plus flags, got %+v", got)
	}
}
