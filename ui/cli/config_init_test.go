// Copyright (c) 2026 Keymaster Team
// Keynav - keyboard-aware form navigation
// This source code is licensed under the MIT license found in the LICENSE file.
package cli

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/AlecAivazis/survey/v2"
	"github.com/AlecAivazis/survey/v2/terminal"
	"github.com/toeirei/keynav/config"
)

func stubWriter(t *testing.T) *config.Config {
	t.Helper()
	orig := writeConfig
	t.Cleanup(func() { writeConfig = orig })

	written := &config.Config{}
	writeConfig = func(c *config.Config, system bool) (string, error) {
		*written = *c
		if system {
			return "/etc/keynav/keynav.yaml", nil
		}
		return "keynav.yaml", nil
	}
	return written
}

func TestConfigInit_WritesDefaults(t *testing.T) {
	isolate(t)
	written := stubWriter(t)

	if _, err := execute(t, "config", "init"); err != nil {
		t.Fatal(err)
	}
	if written.Fields.Count != 10 || written.Navigation.Previous != config.PreviousClamp {
		t.Fatalf("unexpected config: %+v", *written)
	}
}

func TestConfigInit_Interactive(t *testing.T) {
	isolate(t)
	written := stubWriter(t)
	orig := askOne
	t.Cleanup(func() { askOne = orig })

	askOne = func(p survey.Prompt, response any, _ ...survey.AskOpt) error {
		out := response.(*string)
		switch p := p.(type) {
		case *survey.Input:
			*out = "4"
		case *survey.Select:
			*out = p.Options[len(p.Options)-1]
		}
		return nil
	}

	if _, err := execute(t, "config", "init", "--interactive"); err != nil {
		t.Fatal(err)
	}
	if written.Fields.Count != 4 || written.Navigation.Previous != config.PreviousLegacy {
		t.Fatalf("answers not applied: %+v", *written)
	}
}

func TestConfigInit_InterruptAborts(t *testing.T) {
	isolate(t)
	stubWriter(t)
	orig := askOne
	t.Cleanup(func() { askOne = orig })

	askOne = func(survey.Prompt, any, ...survey.AskOpt) error {
		return terminal.InterruptErr
	}

	_, err := execute(t, "config", "init", "-i")
	if !errors.Is(err, ErrAborted) {
		t.Fatalf("expected ErrAborted, got %v", err)
	}
}

func TestConfigInit_AppliesGlobalFlags(t *testing.T) {
	isolate(t)
	written := stubWriter(t)

	if _, err := execute(t, "config", "init", "--fields", "3", "--previous", "legacy", "--lang", "de"); err != nil {
		t.Fatal(err)
	}
	if written.Fields.Count != 3 || written.Navigation.Previous != config.PreviousLegacy || written.Language != "de" {
		t.Fatalf("flags not applied: %+v", *written)
	}
}

func TestConfigInit_InvalidFlagRejected(t *testing.T) {
	isolate(t)
	stubWriter(t)

	if _, err := execute(t, "config", "init", "--previous", "sideways"); err == nil {
		t.Fatal("expected an invalid --previous to be rejected")
	}
}

func TestConfigInit_RefusesToOverwrite(t *testing.T) {
	isolate(t)
	written := stubWriter(t)

	path, err := config.GetConfigPath(false)
	if err != nil {
		t.Fatal(err)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, []byte("fields:\n  count: 2\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	_, err = execute(t, "config", "init")
	if !errors.Is(err, ErrConfigExists) {
		t.Fatalf("expected ErrConfigExists, got %v", err)
	}
	if written.Fields.Count != 0 {
		t.Fatalf("config was written despite existing file: %+v", *written)
	}

	if _, err := execute(t, "config", "init", "--force"); err != nil {
		t.Fatal(err)
	}
	if written.Fields.Count != 10 {
		t.Fatalf("--force did not write defaults: %+v", *written)
	}
}

func TestValidateFieldCount(t *testing.T) {
	for in, ok := range map[string]bool{"1": true, "12": true, "0": false, "-3": false, "x": false} {
		if err := validateFieldCount(in); (err == nil) != ok {
			t.Errorf("validateFieldCount(%q) = %v", in, err)
		}
	}
}
